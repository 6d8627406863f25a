// Package rewriter edits a parsed script.Script in place to apply a
// spoiler log: every item-bearing Object is rewritten to dispense the
// item the solver placed there, plus the matching shop Talk dialogue
// patch (spec.md §4.6, §4.7). Every exported function here is a pure
// function of its inputs — same (old model, spoiler log) always
// produces byte-identical output.
package rewriter

import (
	"hash/fnv"

	"github.com/duskvale/relicshuffle/pkg/storage"
)

// ResolvedItem is the script-level numeric form of a placed
// storage.Item: the concrete in-kind item number, sub-weapon ammo
// count, and completion flag an Object's operand slots actually carry.
// The real game derives these from a fixed content table that lives in
// the codec annex this rewrite does not reverse-engineer (see
// DESIGN.md); ResolveItem synthesizes a stable substitute so the
// edit-kind logic below has concrete operands to work with.
type ResolvedItem struct {
	Kind   storage.ItemKind
	Name   string
	Number uint8
	Count  uint16
	Flag   uint32
}

// ResolveItem derives a ResolvedItem for item. Number is the item's
// position within its own kind (SrcIdx — exactly the catalog order
// weapons.yml/chests.yml/seals.yml/shops.yml already assign), Count is
// a flat ammo batch size for consumable sub-weapons, and Flag is a
// stable FNV-1a hash of the item's name standing in for the numeric
// world-flag id the real game's data tables assign per item.
func ResolveItem(item storage.Item) ResolvedItem {
	r := ResolvedItem{
		Kind:   item.Kind,
		Name:   item.Name.Name(),
		Number: uint8(item.SrcIdx),
		Flag:   flagID(item.Name.Name()),
	}
	if item.Kind == storage.ItemSubWeaponAmmo {
		r.Count = 1
	}
	return r
}

func flagID(name string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(name))
	return h.Sum32()
}
