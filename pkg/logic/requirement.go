// Package logic implements the propositional reachability calculus over
// StrategyFlags: disjunctive-normal-form requirement expressions, the
// event-expansion pass that eliminates forward references by iterative
// substitution, and the reachability predicate the solver's sphere walk
// is built on.
package logic

import (
	"github.com/duskvale/relicshuffle/pkg/flag"
)

// AllOf is a conjunction: every flag in the group must hold.
type AllOf struct {
	Flags []flag.StrategyFlag
}

// Contains reports whether f already appears in the group.
func (a AllOf) Contains(f flag.StrategyFlag) bool {
	for _, x := range a.Flags {
		if x.Equal(f) {
			return true
		}
	}
	return false
}

// without returns a copy of a with every occurrence of f removed.
func (a AllOf) without(f flag.StrategyFlag) AllOf {
	out := make([]flag.StrategyFlag, 0, len(a.Flags))
	for _, x := range a.Flags {
		if !x.Equal(f) {
			out = append(out, x)
		}
	}
	return AllOf{Flags: out}
}

// merged returns the deduplicated union of a and extra, preserving a's
// original order followed by any new flags from extra.
func (a AllOf) merged(extra []flag.StrategyFlag) AllOf {
	out := make([]flag.StrategyFlag, len(a.Flags), len(a.Flags)+len(extra))
	copy(out, a.Flags)
	for _, f := range extra {
		found := false
		for _, x := range out {
			if x.Equal(f) {
				found = true
				break
			}
		}
		if !found {
			out = append(out, f)
		}
	}
	return AllOf{Flags: out}
}

// Expression is a requirement in disjunctive normal form: a list of AllOf
// alternatives, any one of which being satisfied satisfies the whole
// expression. A nil Expression (or one with zero alternatives) means
// unconditionally reachable.
type Expression struct {
	Alternatives []AllOf
}

// Unconditional reports whether the expression has no alternatives, i.e.
// is trivially satisfied.
func (e *Expression) Unconditional() bool {
	return e == nil || len(e.Alternatives) == 0
}

// referencesEvent reports whether any alternative mentions the given
// event flag.
func (e *Expression) referencesEvent(event flag.StrategyFlag) bool {
	if e == nil {
		return false
	}
	for _, group := range e.Alternatives {
		if group.Contains(event) {
			return true
		}
	}
	return false
}

// HasEventReference reports whether any alternative mentions any
// "event:" flag. Used to detect stalled expansion rounds.
func (e *Expression) HasEventReference() bool {
	if e == nil {
		return false
	}
	for _, group := range e.Alternatives {
		for _, f := range group.Flags {
			if f.IsEvent() {
				return true
			}
		}
	}
	return false
}

// substituteEvent rewrites e by replacing every occurrence of the event
// flag in every AllOf group with the groups of replacement, per the
// distributive rewrite in spec.md §4.1:
//
//	For a target AllOf group G containing event:X whose definition is
//	AnyOfAllOf [E1, E2, …]: replace G with { (G \ {event:X}) ∪ Ei } for
//	each i, deduplicating flags within each new AllOf. Groups not
//	mentioning event:X pass through unchanged.
func (e *Expression) substituteEvent(event flag.StrategyFlag, replacement *Expression) *Expression {
	if e == nil {
		return nil
	}
	out := make([]AllOf, 0, len(e.Alternatives))
	for _, group := range e.Alternatives {
		if !group.Contains(event) {
			out = append(out, group)
			continue
		}
		base := group.without(event)
		if replacement.Unconditional() {
			out = append(out, base)
			continue
		}
		for _, ei := range replacement.Alternatives {
			out = append(out, base.merged(ei.Flags))
		}
	}
	return &Expression{Alternatives: out}
}
