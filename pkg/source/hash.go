package source

import (
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"

	"github.com/duskvale/relicshuffle/pkg/storage"
)

// HashSupplements returns the SHA3-512 hex digest of the five
// supplement files' concatenated raw text, in the fixed
// weapons/chests/seals/shops/events order. This is [EXPANSION]
// provenance the original spec doesn't call for explicitly but that
// every other determinism-sensitive seam in this module exposes
// (SPEC_FULL.md's AMBIENT STACK section) — it lets a CLI invocation
// or a regression test confirm two runs consumed byte-identical
// supplement input before comparing their output hashes.
func HashSupplements(files SupplementFiles) string {
	h := sha3.New512()
	for _, text := range []string{files.WeaponsYML, files.ChestsYML, files.SealsYML, files.ShopsYML, files.EventsYML} {
		h.Write([]byte(text))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// HashStorage returns the SHA3-512 hex digest of a debug-formatted
// Storage, reproducing spec.md §8's "hash of debug-printed source
// Storage" invariant (scenario S2). Go's %#v on these structs is the
// closest stdlib analogue to Rust's derived Debug output. Every spot
// (in AllSpots order, its requirement expression printed by value
// rather than as a pointer address) and then every item (in AllItems
// order) is written with %#v, so the digest depends only on the
// Storage's contents.
func HashStorage(st *storage.Storage) string {
	var b strings.Builder
	for _, sp := range st.AllSpots() {
		req := sp.Requirements
		sp.Requirements = nil
		fmt.Fprintf(&b, "%#v", sp)
		if req != nil {
			fmt.Fprintf(&b, " %#v", *req)
		}
		b.WriteByte('\n')
	}
	for _, it := range st.AllItems() {
		fmt.Fprintf(&b, "%#v\n", it)
	}
	digest := sha3.Sum512([]byte(b.String()))
	return hex.EncodeToString(digest[:])
}
