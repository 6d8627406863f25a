package solver

import (
	"strings"

	"github.com/duskvale/relicshuffle/pkg/logic"
	"github.com/duskvale/relicshuffle/pkg/storage"
)

// glitchFlagPrefix marks a requirement flag that names a sequence
// break rather than an item or event. These never appear as an
// item's own name (pkg/source never constructs one), so by default
// they are unsatisfiable like any other flag nothing owns; with
// Options.NeedGlitches set, every "glitch:" flag is treated as
// unconditionally satisfied instead. This is the solver's only
// reachability extension beyond pkg/logic.Reachable, so it is kept
// local to this package rather than pushed into pkg/logic, which has
// no notion of glitches at all.
const glitchFlagPrefix = "glitch:"

func siteReachable(spot storage.Spot, owned map[string]struct{}, orbs uint8, needGlitches bool) bool {
	if spot.Requirements == nil || spot.Requirements.Unconditional() {
		return true
	}
	for _, group := range spot.Requirements.Alternatives {
		if allOfSatisfied(group, owned, orbs, needGlitches) {
			return true
		}
	}
	return false
}

func allOfSatisfied(group logic.AllOf, owned map[string]struct{}, orbs uint8, needGlitches bool) bool {
	for _, f := range group.Flags {
		if strings.HasPrefix(f.Name(), glitchFlagPrefix) {
			if !needGlitches {
				return false
			}
			continue
		}
		if f.IsSacredOrb() {
			count, ok := f.SacredOrbCount()
			if !ok || count > orbs {
				return false
			}
			continue
		}
		if _, ok := owned[f.Name()]; !ok {
			return false
		}
	}
	return true
}
