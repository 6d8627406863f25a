//go:build !debugassert

package validate

import "github.com/duskvale/relicshuffle/pkg/storage"

// AssertUnique is a no-op outside the debugassert build tag. Callers
// invoke it unconditionally; only a debugassert build actually pays
// for the check (see unique_debugassert.go).
func AssertUnique(st *storage.Storage) {}
