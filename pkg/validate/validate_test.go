package validate

import (
	"testing"

	"github.com/duskvale/relicshuffle/pkg/flag"
	"github.com/duskvale/relicshuffle/pkg/logic"
	"github.com/duskvale/relicshuffle/pkg/storage"
)

func TestReachability_AllUnconditional(t *testing.T) {
	st := &storage.Storage{
		ChestSpots: []storage.Spot{
			storage.NewSpot(storage.SpotChest, storage.FieldSurface, 0, "c0", nil),
			storage.NewSpot(storage.SpotChest, storage.FieldSurface, 1, "c1", nil),
		},
		ChestItems: []storage.Item{
			storage.NewChestItem(0, flag.New("a")),
			storage.NewChestItem(1, flag.New("b")),
		},
	}
	if err := Reachability(st); err != nil {
		t.Fatalf("Reachability: %v", err)
	}
}

func TestReachability_DetectsSelfLock(t *testing.T) {
	gated := &logic.Expression{Alternatives: []logic.AllOf{{Flags: []flag.StrategyFlag{flag.New("needsA")}}}}
	st := &storage.Storage{
		ChestSpots: []storage.Spot{
			storage.NewSpot(storage.SpotChest, storage.FieldSurface, 0, "c0", gated),
		},
		ChestItems: []storage.Item{
			// Nothing ever grants "needsA": this spot can never open.
			storage.NewChestItem(0, flag.New("somethingElse")),
		},
	}
	err := Reachability(st)
	if err == nil {
		t.Fatal("expected an UnreachableError")
	}
	if _, ok := err.(*UnreachableError); !ok {
		t.Fatalf("expected *UnreachableError, got %T", err)
	}
}

func TestReachability_ChainedGate(t *testing.T) {
	gated := &logic.Expression{Alternatives: []logic.AllOf{{Flags: []flag.StrategyFlag{flag.New("keyA")}}}}
	st := &storage.Storage{
		ChestSpots: []storage.Spot{
			storage.NewSpot(storage.SpotChest, storage.FieldSurface, 0, "c0", nil),
			storage.NewSpot(storage.SpotChest, storage.FieldSurface, 1, "c1", gated),
		},
		ChestItems: []storage.Item{
			storage.NewChestItem(0, flag.New("keyA")),
			storage.NewChestItem(1, flag.New("keyB")),
		},
	}
	if err := Reachability(st); err != nil {
		t.Fatalf("Reachability: %v", err)
	}
}
