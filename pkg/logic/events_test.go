package logic

import (
	"reflect"
	"testing"

	"github.com/duskvale/relicshuffle/pkg/flag"
)

func allOf(names ...string) AllOf {
	flags := make([]flag.StrategyFlag, len(names))
	for i, n := range names {
		flags[i] = flag.New(n)
	}
	return AllOf{Flags: flags}
}

func exprNames(e *Expression) [][]string {
	out := make([][]string, len(e.Alternatives))
	for i, group := range e.Alternatives {
		names := make([]string, len(group.Flags))
		for j, f := range group.Flags {
			names[j] = f.Name()
		}
		out[i] = names
	}
	return out
}

// S3: E1: [[event:E2, c]], E2: [[a], [b]] -> E1 expands to [[c,a], [c,b]]
func TestExpandEvents_S3(t *testing.T) {
	e1 := &Expression{Alternatives: []AllOf{allOf("event:E2", "c")}}
	e2 := &Expression{Alternatives: []AllOf{allOf("a"), allOf("b")}}

	resolved, err := ExpandEvents(map[string]*Expression{"E1": e1, "E2": e2})
	if err != nil {
		t.Fatalf("ExpandEvents: %v", err)
	}

	got := exprNames(resolved["E1"])
	want := [][]string{{"c", "a"}, {"c", "b"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("E1 expansion = %v, want %v", got, want)
	}
}

// S4: [[event:A, event:B, c]] with A=[[d,e,f]], B=[[g,h],[i,j]]
// -> [[c,d,e,f,g,h],[c,d,e,f,i,j]]
func TestExpandEvents_S4Distributive(t *testing.T) {
	target := &Expression{Alternatives: []AllOf{allOf("event:A", "event:B", "c")}}
	a := &Expression{Alternatives: []AllOf{allOf("d", "e", "f")}}
	b := &Expression{Alternatives: []AllOf{allOf("g", "h"), allOf("i", "j")}}

	resolved, err := ExpandEvents(map[string]*Expression{"A": a, "B": b, "target": target})
	if err != nil {
		t.Fatalf("ExpandEvents: %v", err)
	}

	got := exprNames(resolved["target"])
	want := [][]string{{"c", "d", "e", "f", "g", "h"}, {"c", "d", "e", "f", "i", "j"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("distributive expansion = %v, want %v", got, want)
	}
}

func TestExpandEvents_CycleDetected(t *testing.T) {
	a := &Expression{Alternatives: []AllOf{allOf("event:B")}}
	b := &Expression{Alternatives: []AllOf{allOf("event:A")}}

	_, err := ExpandEvents(map[string]*Expression{"A": a, "B": b})
	if err == nil {
		t.Fatal("expected event cycle error, got nil")
	}
	var cycleErr *EventCycleError
	if !asEventCycleError(err, &cycleErr) {
		t.Fatalf("expected *EventCycleError, got %T: %v", err, err)
	}
}

func asEventCycleError(err error, target **EventCycleError) bool {
	ce, ok := err.(*EventCycleError)
	if ok {
		*target = ce
	}
	return ok
}

func TestApplyEvents_NoReferenceLeftover(t *testing.T) {
	e1 := &Expression{Alternatives: []AllOf{allOf("event:E2", "c")}}
	e2 := &Expression{Alternatives: []AllOf{allOf("a"), allOf("b")}}
	resolved, err := ExpandEvents(map[string]*Expression{"E1": e1, "E2": e2})
	if err != nil {
		t.Fatalf("ExpandEvents: %v", err)
	}

	spotReq := &Expression{Alternatives: []AllOf{allOf("event:E1")}}
	applied := ApplyEvents(spotReq, resolved)
	if applied.HasEventReference() {
		t.Fatalf("expected no remaining event references, got %v", exprNames(applied))
	}
}
