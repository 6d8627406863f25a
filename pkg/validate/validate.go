// Package validate independently re-checks a shuffled Storage after
// the solver has produced it: a bounded sphere walk confirming every
// spot is reachable (spec.md §4.3 Validation), plus a debug-only
// uniqueness assertion (spec.md §4.4).
package validate

import (
	"fmt"

	"github.com/duskvale/relicshuffle/pkg/logic"
	"github.com/duskvale/relicshuffle/pkg/storage"
)

// maxIterations bounds the post-solve reachability walk. spec.md
// §4.3's Validation fixes this at 100: any failure here is fatal,
// since it means the solver produced an invalid log rather than that
// a retry is warranted.
const maxIterations = 100

// UnreachableError reports that the walk failed to reach every spot —
// a sphere reached nothing new, or maxIterations spheres ran out —
// meaning the solver's output is invalid.
type UnreachableError struct {
	RemainingSpots int
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("validation failed: %d spot(s) remain unreached", e.RemainingSpots)
}

// pairing is the (spot, item) the walk checks together: the item's own
// name is what gets added to the owned-flag set once its spot is
// reached, since the walk is checking the *shuffled* arrangement using
// only the reachability predicate, not re-deriving a placement.
type pairing struct {
	spot storage.Spot
	item storage.Item
}

// Reachability independently walks the shuffled Storage using only
// is_reachable, confirming every spot can be reached from owned=∅,
// orbs=0 within maxIterations spheres (spec.md §4.3, §8 invariant 7).
func Reachability(st *storage.Storage) error {
	remaining := allPairings(st)

	owned := make(map[string]struct{})
	var orbs uint8

	for iteration := 0; iteration < maxIterations; iteration++ {
		if len(remaining) == 0 {
			return nil
		}

		var reached, stillRemaining []pairing
		for _, p := range remaining {
			if logic.Reachable(p.spot.Requirements, owned, orbs) {
				reached = append(reached, p)
			} else {
				stillRemaining = append(stillRemaining, p)
			}
		}

		if len(reached) == 0 {
			return &UnreachableError{RemainingSpots: len(remaining)}
		}

		for _, p := range reached {
			owned[p.item.Name.Name()] = struct{}{}
			if p.item.Name.IsSacredOrb() {
				orbs++
			}
		}
		remaining = stillRemaining
	}

	return &UnreachableError{RemainingSpots: len(remaining)}
}

func allPairings(st *storage.Storage) []pairing {
	var out []pairing
	for i, spot := range st.MainWeaponSpots {
		out = append(out, pairing{spot, st.MainWeaponItems[i]})
	}
	for i, spot := range st.SubWeaponSpots {
		out = append(out, pairing{spot, st.SubWeaponItems[i]})
	}
	for i, spot := range st.ChestSpots {
		out = append(out, pairing{spot, st.ChestItems[i]})
	}
	for i, spot := range st.SealSpots {
		out = append(out, pairing{spot, st.SealItems[i]})
	}
	for i, spot := range st.RomSpots {
		out = append(out, pairing{spot, st.RomItems[i]})
	}
	for shopIdx, spot := range st.ShopSpots {
		for slot := 0; slot < 3; slot++ {
			idx := shopIdx*3 + slot
			if idx < len(st.ShopItems) {
				out = append(out, pairing{spot, st.ShopItems[idx]})
			}
		}
	}
	return out
}
