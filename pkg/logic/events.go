package logic

import (
	"fmt"
	"sort"

	"github.com/duskvale/relicshuffle/pkg/flag"
)

// maxEventExpansionIterations is the stall detector from spec.md §4.1.
// It is not a hard algorithmic limit on legitimate event nesting depth —
// a well-formed event DAG converges in far fewer rounds — but a bound
// past which non-convergence indicates a cycle or malformed data.
const maxEventExpansionIterations = 100

// EventCycleError reports that event expansion failed to converge — a
// round made no progress, or maxEventExpansionIterations rounds ran out —
// meaning the event DAG almost certainly contains a cycle.
type EventCycleError struct {
	Pending []string // event names that never resolved
}

func (e *EventCycleError) Error() string {
	return fmt.Sprintf("event expansion stalled with %d unresolved event(s): %v",
		len(e.Pending), e.Pending)
}

// ExpandEvents resolves a set of named events (each an Expression that
// may reference other events via "event:" flags) into fully-inlined
// Expressions containing only item-flag and sacred-orb requirements.
//
// Events form a DAG; this repeatedly partitions events into resolved
// (no remaining event reference) and pending, and substitutes resolved
// definitions into pending ones, per spec.md §4.1 steps 1-4.
func ExpandEvents(events map[string]*Expression) (map[string]*Expression, error) {
	resolved := make(map[string]*Expression, len(events))
	pending := make(map[string]*Expression, len(events))
	for name, expr := range events {
		pending[name] = expr
	}

	for iteration := 0; iteration < maxEventExpansionIterations; iteration++ {
		if len(pending) == 0 {
			return resolved, nil
		}

		progressed := false
		for name, expr := range pending {
			if expr.HasEventReference() {
				continue
			}
			resolved[name] = expr
			delete(pending, name)
			progressed = true
		}
		if len(pending) == 0 {
			return resolved, nil
		}

		resolvedNames := sortedKeys(resolved)
		for name, expr := range pending {
			newExpr := expr
			for _, eventName := range resolvedNames {
				def := resolved[eventName]
				if newExpr.referencesEvent(flag.NewEvent(eventName)) {
					newExpr = newExpr.substituteEvent(flag.NewEvent(eventName), def)
					progressed = true
				}
			}
			pending[name] = newExpr
		}

		if !progressed {
			break
		}
	}

	if len(pending) == 0 {
		return resolved, nil
	}
	names := make([]string, 0, len(pending))
	for name := range pending {
		names = append(names, name)
	}
	return nil, &EventCycleError{Pending: names}
}

// ApplyEvents rewrites expr so that every "event:" reference is replaced
// by its fully-resolved definition from resolved. This is the "once, to
// every spot's requirement expression" pass described at the end of
// spec.md §4.1.
func ApplyEvents(expr *Expression, resolved map[string]*Expression) *Expression {
	names := sortedKeys(resolved)
	for expr.HasEventReference() {
		progressed := false
		for _, eventName := range names {
			def := resolved[eventName]
			ef := flag.NewEvent(eventName)
			if expr.referencesEvent(ef) {
				expr = expr.substituteEvent(ef, def)
				progressed = true
			}
		}
		if !progressed {
			// An event reference remains that resolved doesn't cover;
			// leave it as-is rather than loop forever. The caller
			// (pkg/source) treats any surviving event: flag as a bug.
			break
		}
	}
	return expr
}

// sortedKeys returns resolved's event names in a fixed, deterministic
// order. Substitution order must not depend on Go's randomized map
// iteration: when an expression references two or more events, the
// final flag order it ends up with — and therefore every downstream
// hash of a formatted Storage or spoiler log (spec.md §8) — would
// otherwise vary from run to run.
func sortedKeys(resolved map[string]*Expression) []string {
	names := make([]string, 0, len(resolved))
	for name := range resolved {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
