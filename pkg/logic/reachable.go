package logic

import "github.com/duskvale/relicshuffle/pkg/flag"

// Reachable implements spec.md §4.2's is_reachable predicate. It is
// pure, total, and intentionally branch-lean: this is the solver's
// innermost, hottest operation.
//
// owned holds the names of strategy flags the player currently has; it
// is queried by membership only, never mutated. sacredOrbCount is the
// number of sacred orbs currently held.
func Reachable(expr *Expression, owned map[string]struct{}, sacredOrbCount uint8) bool {
	if expr.Unconditional() {
		return true
	}
	for _, group := range expr.Alternatives {
		if allOfSatisfied(group, owned, sacredOrbCount) {
			return true
		}
	}
	return false
}

func allOfSatisfied(group AllOf, owned map[string]struct{}, sacredOrbCount uint8) bool {
	for _, f := range group.Flags {
		if f.IsSacredOrb() {
			count, ok := f.SacredOrbCount()
			if !ok || count > sacredOrbCount {
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

// Owned builds the membership set Reachable expects from a list of
// flags; a convenience for tests and the validator.
func Owned(flags ...flag.StrategyFlag) map[string]struct{} {
	m := make(map[string]struct{}, len(flags))
	for _, f := range flags {
		m[f.Name()] = struct{}{}
	}
	return m
}
