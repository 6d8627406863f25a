package solver

import (
	"fmt"
	"strings"

	"github.com/duskvale/relicshuffle/pkg/storage"
)

// CheckpointKind labels a single placement decision recorded in a
// SpoilerLog. It mirrors storage.SpotKind plus Event: spec.md §4.3
// lists Event among the checkpoint kinds because the original
// implementation logs event-trigger side effects inline with item
// checkpoints. This rewrite's Source Builder fully inlines events
// before the solver ever runs (pkg/logic.ExpandEvents/ApplyEvents), so
// no Event checkpoint is ever produced here — CheckpointEvent exists
// only so the kind enum matches spec.md's vocabulary exactly.
type CheckpointKind int

const (
	CheckpointMainWeapon CheckpointKind = iota
	CheckpointSubWeapon
	CheckpointChest
	CheckpointSeal
	CheckpointShop
	CheckpointRom
	CheckpointEvent
)

func (k CheckpointKind) String() string {
	switch k {
	case CheckpointMainWeapon:
		return "MainWeapon"
	case CheckpointSubWeapon:
		return "SubWeapon"
	case CheckpointChest:
		return "Chest"
	case CheckpointSeal:
		return "Seal"
	case CheckpointShop:
		return "Shop"
	case CheckpointRom:
		return "Rom"
	case CheckpointEvent:
		return "Event"
	default:
		return fmt.Sprintf("CheckpointKind(%d)", int(k))
	}
}

func checkpointKindOf(spotKind storage.SpotKind) CheckpointKind {
	switch spotKind {
	case storage.SpotMainWeapon:
		return CheckpointMainWeapon
	case storage.SpotSubWeapon:
		return CheckpointSubWeapon
	case storage.SpotChest:
		return CheckpointChest
	case storage.SpotSeal:
		return CheckpointSeal
	case storage.SpotShop:
		return CheckpointShop
	case storage.SpotRom:
		return CheckpointRom
	default:
		return CheckpointEvent
	}
}

// Checkpoint is a single (kind, spot, item) placement decision.
type Checkpoint struct {
	Kind CheckpointKind
	Spot storage.Spot
	Slot int // meaningful only for CheckpointShop
	Item storage.Item
}

func (c Checkpoint) String() string {
	if c.Kind == CheckpointShop {
		return fmt.Sprintf("%s[%d]@%s: %s", c.Kind, c.Slot, c.Spot.Name, c.Item.Name)
	}
	return fmt.Sprintf("%s@%s: %s", c.Kind, c.Spot.Name, c.Item.Name)
}

// Sphere is one progression tier: every checkpoint reachable given the
// flags owned after the previous sphere.
type Sphere struct {
	Checkpoints []Checkpoint
}

// SpoilerLog is the complete record of a placement decision, grouped
// by sphere, per spec.md §4.3. Maps is the separate tail list for
// non-progression-critical map items.
type SpoilerLog struct {
	Progression []Sphere
	Maps        []Checkpoint
	Attempts    int
}

// String formats the log in sphere order; this is the textual form
// spec.md §8 scenario S1's spoiler-log hash is computed over.
func (l *SpoilerLog) String() string {
	var b strings.Builder
	for i, sphere := range l.Progression {
		fmt.Fprintf(&b, "sphere %d:\n", i)
		for _, cp := range sphere.Checkpoints {
			fmt.Fprintf(&b, "  %s\n", cp)
		}
	}
	if len(l.Maps) > 0 {
		b.WriteString("maps:\n")
		for _, cp := range l.Maps {
			fmt.Fprintf(&b, "  %s\n", cp)
		}
	}
	return b.String()
}
