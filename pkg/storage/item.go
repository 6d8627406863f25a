package storage

import (
	"fmt"

	"github.com/duskvale/relicshuffle/pkg/flag"
)

// ItemKind discriminates the closed set of item variants. Per spec.md
// §9's recommended strategy, Item is a discriminated union over this
// tag with per-kind payload fields rather than virtual dispatch — the
// operation set is small and stable.
type ItemKind int

const (
	ItemMainWeapon ItemKind = iota
	ItemSubWeaponBody
	ItemSubWeaponAmmo
	ItemChestItem
	ItemSeal
	ItemShopItem
	ItemRom
)

func (k ItemKind) String() string {
	switch k {
	case ItemMainWeapon:
		return "MainWeapon"
	case ItemSubWeaponBody:
		return "SubWeaponBody"
	case ItemSubWeaponAmmo:
		return "SubWeaponAmmo"
	case ItemChestItem:
		return "ChestItem"
	case ItemSeal:
		return "Seal"
	case ItemShopItem:
		return "ShopItem"
	case ItemRom:
		return "Rom"
	default:
		return fmt.Sprintf("ItemKind(%d)", int(k))
	}
}

// shopDisplayableSubWeapons lists the sub-weapon bodies that may appear
// in a shop slot; the remainder are key items that never vend.
var shopDisplayableSubWeapons = map[string]bool{
	"pistol":      true,
	"buckler":     true,
	"handScanner": true,
}

// Item is the content that occupies a Spot. SrcIdx is the item's source
// coordinate within its own kind's supplement list, kept for trace
// diagnostics (spoiler log provenance, error messages); it plays no role
// in placement logic itself.
type Item struct {
	Kind   ItemKind
	Name   flag.StrategyFlag
	SrcIdx int // shop items additionally use ShopSlot below
	// ShopSlot is the 0/1/2 slot index within a Shop spot, valid only
	// when Kind == ItemShopItem.
	ShopSlot int
}

// NewMainWeapon, NewSubWeaponBody, ... construct items of each kind.
func NewMainWeapon(srcIdx int, name flag.StrategyFlag) Item {
	return Item{Kind: ItemMainWeapon, Name: name, SrcIdx: srcIdx}
}

func NewSubWeaponBody(srcIdx int, name flag.StrategyFlag) Item {
	return Item{Kind: ItemSubWeaponBody, Name: name, SrcIdx: srcIdx}
}

func NewSubWeaponAmmo(srcIdx int, name flag.StrategyFlag) Item {
	return Item{Kind: ItemSubWeaponAmmo, Name: name, SrcIdx: srcIdx}
}

func NewChestItem(srcIdx int, name flag.StrategyFlag) Item {
	return Item{Kind: ItemChestItem, Name: name, SrcIdx: srcIdx}
}

func NewSeal(srcIdx int, name flag.StrategyFlag) Item {
	return Item{Kind: ItemSeal, Name: name, SrcIdx: srcIdx}
}

func NewShopItem(shopIdx, itemIdx int, name flag.StrategyFlag) Item {
	return Item{Kind: ItemShopItem, Name: name, SrcIdx: shopIdx, ShopSlot: itemIdx}
}

// NewRom constructs a secret-ROM cartridge item. Secret ROMs are a
// collectible category separate from the five core placement kinds;
// they are only included in randomization when the solver's
// Options.ShuffleSecretRoms is set (see pkg/solver), otherwise each
// stays on its source spot.
func NewRom(srcIdx int, name flag.StrategyFlag) Item {
	return Item{Kind: ItemRom, Name: name, SrcIdx: srcIdx}
}

// IsConsumable reports whether the item is ammo or similar stackable
// content, as opposed to a one-time pickup.
func (it Item) IsConsumable() bool {
	return it.Kind == ItemSubWeaponAmmo
}

// IsMap reports whether the item is one of the non-progression-critical
// map items, which never go in shops and are logged in the spoiler log's
// separate maps tail rather than a progression sphere.
func (it Item) IsMap() bool {
	return it.Kind == ItemChestItem && isMapFlagName(it.Name.Name())
}

// mapFlagNames lists the chest-item flags that denote a map pickup.
// Maps are never progression-critical (spec.md §4.3 Spoiler Log).
var mapFlagNames = map[string]bool{
	"mapGateOfGuidance":          true,
	"mapMausoleumOfTheGiants":    true,
	"mapTempleOfTheSun":          true,
	"mapSpringInTheSky":          true,
	"mapInfernoCavern":           true,
	"mapChamberOfExtinction":     true,
	"mapTwinLabyrinthsLeft":      true,
	"mapEndlessCorridor":         true,
	"mapShrineOfTheMother":       true,
	"mapGateOfIllusion":          true,
	"mapGraveyardOfTheGiants":    true,
	"mapTempleOfMoonlight":       true,
	"mapTowerOfTheGoddess":       true,
	"mapTowerOfRuin":             true,
	"mapChamberOfBirth":          true,
	"mapTwinLabyrinthsRight":     true,
	"mapDimensionalCorridor":     true,
	"mapTrueShrineOfTheMother":   true,
}

func isMapFlagName(name string) bool {
	return mapFlagNames[name]
}

// CanDisplayInShop implements the name-predicate can_display_in_shop
// policy spec.md §9's Open Questions settles on (over the
// flag-modulo alternative): it is the version closer to the current
// YAML vocabulary, and is the version this implementation's tests and
// hashes are stable against.
func (it Item) CanDisplayInShop() bool {
	switch it.Kind {
	case ItemMainWeapon:
		return false
	case ItemSubWeaponBody:
		return shopDisplayableSubWeapons[it.Name.Name()]
	case ItemSubWeaponAmmo:
		return true
	case ItemChestItem:
		// Boots (matched by name) cannot be sold in shops; sacred orbs
		// and maps never vend either.
		return !it.IsMap() && !it.Name.IsSacredOrb() && it.Name.Name() != "boots"
	case ItemSeal:
		return false
	case ItemShopItem:
		return true
	case ItemRom:
		return false
	default:
		return false
	}
}
