package rewriter

import (
	"fmt"

	"github.com/duskvale/relicshuffle/pkg/script"
	"github.com/duskvale/relicshuffle/pkg/storage"
)

// decorativeChestSkin is the fixed op1 value a rewritten chest object
// uses when it is standing in for equipment/rom content rather than the
// chest's own original skin/state — the same constant objectfactory.rs
// uses for both the shutter and special-chest equipment/rom paths.
const decorativeChestSkin = 40

func mainWeaponObject(old script.Object, item ResolvedItem, starts []script.Start) script.Object {
	return script.Object{
		Number: script.ObjectMainWeapon,
		X:      old.X, Y: old.Y,
		Op1: int32(item.Number), Op2: int32(item.Flag), Op3: old.Op3, Op4: old.Op4,
		Starts: starts,
	}
}

func subWeaponObject(old script.Object, item ResolvedItem, starts []script.Start) script.Object {
	return script.Object{
		Number: script.ObjectSubWeapon,
		X:      old.X, Y: old.Y,
		Op1: int32(item.Number), Op2: int32(item.Count), Op3: int32(item.Flag), Op4: old.Op4,
		Starts: starts,
	}
}

func sealObject(old script.Object, item ResolvedItem, starts []script.Start) script.Object {
	return script.Object{
		Number: script.ObjectSeal,
		X:      old.X, Y: old.Y,
		Op1: int32(item.Number), Op2: int32(item.Flag), Op3: old.Op3, Op4: old.Op4,
		Starts: starts,
	}
}

// chestItemNumber returns the chest-content number a chest operand
// carries for equipment/rom content: the item's own catalog number, or
// 100+number for a secret ROM (spec.md's supplemented Rom kind, which
// shares the chest object tag with equipment but is offset into its own
// numeric band, per script/data/objectfactory.rs).
func chestItemNumber(item ResolvedItem) int32 {
	if item.Kind == storage.ItemRom {
		return 100 + int32(item.Number)
	}
	return int32(item.Number)
}

func chestObject(old script.Object, op1 int32, itemNumber int32, flag int32, starts []script.Start) script.Object {
	return script.Object{
		Number: script.ObjectChest,
		X:      old.X, Y: old.Y,
		Op1: op1, Op2: itemNumber, Op3: flag, Op4: old.Op4,
		Starts: starts,
	}
}

// RewriteShutter rewrites a shutter-style pedestal or seal (an object
// gated by a room-entry start flag): a main weapon, sub weapon, or
// seal pedestal is edited in place keeping its starts as-is, while
// equipment/rom content gets the hide-at-startup Start treatment since
// it is replacing an object kind that never had that bookkeeping of its
// own (spec.md §4.6).
func RewriteShutter(old script.Object, startFlag uint32, item ResolvedItem) (script.Object, error) {
	switch item.Kind {
	case storage.ItemMainWeapon:
		starts, err := startsAsIs(old, item.Flag)
		if err != nil {
			return script.Object{}, err
		}
		return mainWeaponObject(old, item, starts), nil
	case storage.ItemSubWeaponBody, storage.ItemSubWeaponAmmo:
		if err := assertAnkhJewelCount(item); err != nil {
			return script.Object{}, err
		}
		starts, err := startsAsIs(old, item.Flag)
		if err != nil {
			return script.Object{}, err
		}
		return subWeaponObject(old, item, starts), nil
	case storage.ItemSeal:
		starts, err := startsAsIs(old, item.Flag)
		if err != nil {
			return script.Object{}, err
		}
		return sealObject(old, item, starts), nil
	case storage.ItemChestItem, storage.ItemRom:
		starts, err := startsThatHideWhenStartup(old, startFlag)
		if err != nil {
			return script.Object{}, err
		}
		return chestObject(old, decorativeChestSkin, chestItemNumber(item), int32(item.Flag), starts), nil
	default:
		return script.Object{}, fmt.Errorf("rewriter: %s cannot occupy a shutter pedestal", item.Kind)
	}
}

// RewriteSpecialChest rewrites a stand-alone chest whose open animation
// is decorative: the chest's own open-flag bookkeeping is kept. For
// equipment/rom content the old item-flag Start is dropped outright;
// main weapon, sub weapon and seal content keep their starts as-is, with
// the old item-flag Start retargeted to the new item's flag (spec.md
// §4.6).
func RewriteSpecialChest(old script.Object, item ResolvedItem) (script.Object, error) {
	switch item.Kind {
	case storage.ItemMainWeapon:
		starts, err := startsAsIs(old, item.Flag)
		if err != nil {
			return script.Object{}, err
		}
		return mainWeaponObject(old, item, starts), nil
	case storage.ItemSubWeaponBody, storage.ItemSubWeaponAmmo:
		if err := assertAnkhJewelCount(item); err != nil {
			return script.Object{}, err
		}
		starts, err := startsAsIs(old, item.Flag)
		if err != nil {
			return script.Object{}, err
		}
		return subWeaponObject(old, item, starts), nil
	case storage.ItemSeal:
		starts, err := startsAsIs(old, item.Flag)
		if err != nil {
			return script.Object{}, err
		}
		return sealObject(old, item, starts), nil
	case storage.ItemChestItem, storage.ItemRom:
		starts, err := startsWithoutOldFlag(old)
		if err != nil {
			return script.Object{}, err
		}
		return chestObject(old, decorativeChestSkin, chestItemNumber(item), int32(item.Flag), starts), nil
	default:
		return script.Object{}, fmt.Errorf("rewriter: %s cannot occupy a special chest", item.Kind)
	}
}

// RewriteChest rewrites a regular chest. Main weapons, sub weapons, and
// seals need a dedicated pedestal object alongside an emptied chest
// frame (the two-object pattern spec.md §4.6 describes); equipment and
// rom content already share the chest's own object tag, so only the one
// object is edited in place.
func RewriteChest(old script.Object, item ResolvedItem) ([]script.Object, error) {
	switch item.Kind {
	case storage.ItemMainWeapon:
		frame, err := createEmptyChest(old, item.Flag)
		if err != nil {
			return nil, err
		}
		starts, err := startsThatHideWhenStartupAndTaken(old, item.Flag)
		if err != nil {
			return nil, err
		}
		return []script.Object{frame, mainWeaponObject(old, item, starts)}, nil
	case storage.ItemSubWeaponBody, storage.ItemSubWeaponAmmo:
		if err := assertAnkhJewelCount(item); err != nil {
			return nil, err
		}
		frame, err := createEmptyChest(old, item.Flag)
		if err != nil {
			return nil, err
		}
		starts, err := startsThatHideWhenStartupAndTaken(old, item.Flag)
		if err != nil {
			return nil, err
		}
		return []script.Object{frame, subWeaponObject(old, item, starts)}, nil
	case storage.ItemSeal:
		frame, err := createEmptyChest(old, item.Flag)
		if err != nil {
			return nil, err
		}
		starts, err := startsThatHideWhenStartupAndTaken(old, item.Flag)
		if err != nil {
			return nil, err
		}
		return []script.Object{frame, sealObject(old, item, starts)}, nil
	case storage.ItemChestItem, storage.ItemRom:
		starts, err := startsAsIs(old, item.Flag)
		if err != nil {
			return nil, err
		}
		return []script.Object{chestObject(old, old.Op1, chestItemNumber(item), int32(item.Flag), starts)}, nil
	default:
		return nil, fmt.Errorf("rewriter: %s cannot occupy a chest", item.Kind)
	}
}

// createEmptyChest builds the frame half of a regular chest's
// two-object pattern: op1 (the chest skin/state) is kept, op2 is
// cleared to -1 since the frame itself no longer carries an item
// number, and op3 reuses op1 rather than a real flag since the frame
// has nothing left to gate.
func createEmptyChest(old script.Object, newItemFlag uint32) (script.Object, error) {
	starts, err := startsAsIs(old, newItemFlag)
	if err != nil {
		return script.Object{}, err
	}
	return chestObject(old, old.Op1, -1, old.Op1, starts), nil
}
