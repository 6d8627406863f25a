// Package solver implements the spoiler solver: the randomized,
// progression-respecting assignment of items to spots described in
// spec.md §4.3, run as a retry loop of parallel speculative attempts
// (spec.md §5).
package solver

// Options controls a single randomization run, corresponding to
// spec.md §6's randomize options plus the EasyMode [EXPANSION] this
// rewrite adds (SPEC_FULL.md §4.3).
type Options struct {
	Seed string

	// ShuffleSecretRoms includes the fixed secret-ROM spots/items in
	// the shuffle; otherwise each ROM stays on its own spot.
	ShuffleSecretRoms bool

	// NeedGlitches relaxes requirement evaluation: flags prefixed
	// "glitch:" are treated as always-satisfied rather than ordinary
	// unsatisfiable flags, opening up routes that assume sequence
	// breaks. See allOfSatisfied in reachable.go.
	NeedGlitches bool

	// AbsolutelyShuffle merges every placement class into one shared
	// pool so any item may land in any type-compatible spot, instead
	// of permuting only within each of the five/six kind pools.
	AbsolutelyShuffle bool

	// EasyMode pre-seeds the player's starting inventory with a small
	// fixed set of early-game conveniences before the sphere search
	// begins, shrinking (not eliminating) the early progression
	// bottleneck. [EXPANSION], SPEC_FULL.md §4.3.
	EasyMode bool
}

// easyModeStartingFlags lists the flags considered owned from the
// very first sphere when Options.EasyMode is set.
var easyModeStartingFlags = []string{"handScanner", "shuriken"}
