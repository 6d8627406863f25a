package randomizer

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/duskvale/relicshuffle/pkg/script"
	"github.com/duskvale/relicshuffle/pkg/solver"
)

// HashSpoilerLog returns the SHA3-512 hex digest of a spoiler log's
// textual form, reproducing spec.md §8's "hash of spoiler log" family
// of scenarios (S1 and friends). SpoilerLog.String formats spheres and
// checkpoints in a fixed order, so two runs with identical placements
// hash identically regardless of goroutine scheduling.
func HashSpoilerLog(log *solver.SpoilerLog) string {
	digest := sha3.Sum512([]byte(log.String()))
	return hex.EncodeToString(digest[:])
}

// HashScript returns the SHA3-512 hex digest of a script re-serialized
// to text, letting a caller confirm two randomization runs produced a
// byte-identical rewritten script without diffing the full text
// (spec.md §8 scenario S9's round-trip check, and the source package's
// HashSupplements/HashStorage pair this mirrors).
func HashScript(s *script.Script) string {
	digest := sha3.Sum512([]byte(script.StringifyScript(s)))
	return hex.EncodeToString(digest[:])
}
