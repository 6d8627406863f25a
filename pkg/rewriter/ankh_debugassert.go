//go:build debugassert

package rewriter

import "fmt"

// ankhJewelName is the sub-weapon whose stacking is capped at one per
// chest/special-chest slot (spec.md §4.6: "Ankh-Jewel safety").
const ankhJewelName = "ankhJewel"

// assertAnkhJewelCount panics if item is an ankh-jewel placement with a
// count above 1 — the solver must never produce such a placement; this
// exists to catch a solver regression, not to handle a real case.
func assertAnkhJewelCount(item ResolvedItem) error {
	if item.Name == ankhJewelName && item.Count > 1 {
		panic(fmt.Sprintf("rewriter: ankh jewel placed with count=%d, want <= 1", item.Count))
	}
	return nil
}
