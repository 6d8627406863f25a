package storage

import (
	"fmt"

	"github.com/duskvale/relicshuffle/pkg/logic"
)

// SpotKind discriminates the closed set of spot variants, grounded on
// the Spot enum in dataset/spot.rs.
type SpotKind int

const (
	SpotMainWeapon SpotKind = iota
	SpotSubWeapon
	SpotChest
	SpotSeal
	SpotShop
	SpotRom
)

func (k SpotKind) String() string {
	switch k {
	case SpotMainWeapon:
		return "MainWeapon"
	case SpotSubWeapon:
		return "SubWeapon"
	case SpotChest:
		return "Chest"
	case SpotSeal:
		return "Seal"
	case SpotShop:
		return "Shop"
	case SpotRom:
		return "Rom"
	default:
		return fmt.Sprintf("SpotKind(%d)", int(k))
	}
}

// Spot is a placement location: a fixed coordinate in the game world
// that can hold exactly one Item (three, for a Shop). Requirements is
// nil for a spot reachable unconditionally.
type Spot struct {
	Kind         SpotKind
	Field        FieldID
	SrcIdx       int
	Name         string
	Requirements *logic.Expression

	// ShopNames holds the Shop variant's three comma-separated talk
	// names; empty for every other kind. dataset/spot.rs's Shop variant
	// panics if its name doesn't split into exactly three parts, which
	// this package enforces at construction via NewShopSpot rather than
	// deferring to a String() call.
	ShopNames [3]string
}

// NewSpot constructs a non-shop Spot. Requirements may be nil.
func NewSpot(kind SpotKind, field FieldID, srcIdx int, name string, req *logic.Expression) Spot {
	return Spot{Kind: kind, Field: field, SrcIdx: srcIdx, Name: name, Requirements: req}
}

// NewShopSpot constructs a Shop spot from its three talk names. This is
// the sole construction path for SpotShop; the three-name invariant is
// checked here once rather than at every later consumer.
func NewShopSpot(field FieldID, srcIdx int, names [3]string, req *logic.Expression) Spot {
	return Spot{
		Kind:         SpotShop,
		Field:        field,
		SrcIdx:       srcIdx,
		Name:         fmt.Sprintf("%s,%s,%s", names[0], names[1], names[2]),
		Requirements: req,
		ShopNames:    names,
	}
}

// Reachable reports whether this spot's requirements are satisfied by
// the given owned-flag set and sacred orb count.
func (s Spot) Reachable(owned map[string]struct{}, sacredOrbCount uint8) bool {
	return logic.Reachable(s.Requirements, owned, sacredOrbCount)
}

func (s Spot) String() string {
	return fmt.Sprintf("%s@%s#%d(%s)", s.Kind, s.Field, s.SrcIdx, s.Name)
}
