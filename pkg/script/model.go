// Package script models the game's script text: an ordered sequence of
// Talk text blocks plus a World/Field/Map/Object tree, together with a
// tag-soup parser and stringifier that round-trip exactly (spec.md
// §4.5, §6). The script's own binary container format is out of scope
// — the core only ever sees the text intermediate.
package script

// Talk is one entry in the script's ~905-element Talk sequence. Most
// are prose dialogue; a fixed subset (indexed by a shop object's op4)
// instead carry a 21-character encoding of three shop item slots, see
// package charset and pkg/rewriter.
type Talk string

// Start is one of an Object's start conditions: the game shows, hides,
// or activates the object during room entry depending on whether the
// named world flag is set.
type Start struct {
	Flag         uint32
	RunWhenUnset bool
}

// Object is one placed entity: a numeric type tag, pixel coordinates,
// four type-specific operand slots, and its Start conditions. Known
// tags used by the core: 1 chest, 13 sub-weapon pedestal, 14 shop, 71
// seal, 77 main-weapon pedestal (spec.md §4.5); any other tag is kept
// as opaque pass-through data.
type Object struct {
	Number uint16
	X, Y   int32
	Op1    int32
	Op2    int32
	Op3    int32
	Op4    int32
	Starts []Start
}

const (
	ObjectChest      uint16 = 1
	ObjectSubWeapon  uint16 = 13
	ObjectShop       uint16 = 14
	ObjectSeal       uint16 = 71
	ObjectMainWeapon uint16 = 77
)

// MainWeapon reports the main-weapon interpretation of op1 (weapon
// number) and op2 (item flag), if Number is ObjectMainWeapon.
func (o Object) MainWeapon() (number uint8, flag int32, ok bool) {
	if o.Number != ObjectMainWeapon {
		return 0, 0, false
	}
	return uint8(o.Op1), o.Op2, true
}

// SubWeapon reports the sub-weapon interpretation of op1 (weapon
// number), op2 (ammo count), and op3 (item flag), if Number is
// ObjectSubWeapon.
func (o Object) SubWeapon() (number uint8, count uint16, flag int32, ok bool) {
	if o.Number != ObjectSubWeapon {
		return 0, 0, 0, false
	}
	return uint8(o.Op1), uint16(o.Op2), o.Op3, true
}

// ChestItem reports the chest interpretation of op1 (open flag), op2
// (chest item number), and op3 (item flag), if Number is ObjectChest.
func (o Object) ChestItem() (openFlag int32, itemNumber int16, flag int32, ok bool) {
	if o.Number != ObjectChest {
		return 0, 0, 0, false
	}
	return o.Op1, int16(o.Op2), o.Op3, true
}

// Seal reports the seal interpretation of op1 (seal number) and op2
// (item flag), if Number is ObjectSeal.
func (o Object) Seal() (number uint8, flag int32, ok bool) {
	if o.Number != ObjectSeal {
		return 0, 0, false
	}
	return uint8(o.Op1), o.Op2, true
}

// ShopTalkIndex reports op4 (the Talk index holding this shop's
// three-slot item data) if Number is ObjectShop and op1 names a real
// shop (≤ 99, per the original game data's convention for distinguishing
// real shops from decorative lookalikes).
func (o Object) ShopTalkIndex() (talkIndex int32, ok bool) {
	if o.Number != ObjectShop || o.Op1 > 99 {
		return 0, false
	}
	return o.Op4, true
}

// ItemFlag returns the flag operand naming this object's placed item,
// for the four kinds the randomizer places into. Returns false for any
// other object kind (including shops, whose flags live per-slot in the
// Talk data, not on the object itself).
func (o Object) ItemFlag() (flag int32, ok bool) {
	switch o.Number {
	case ObjectMainWeapon:
		return o.Op2, true
	case ObjectSubWeapon:
		return o.Op3, true
	case ObjectChest:
		return o.Op3, true
	case ObjectSeal:
		return o.Op2, true
	default:
		return 0, false
	}
}

// Map is a sub-room within a Field: its own object list plus the four
// directional transition records to neighboring maps.
type Map struct {
	Attrs [3]uint8
	Up    [4]int8
	Right [4]int8
	Down  [4]int8
	Left  [4]int8

	Objects []Object
}

// Field is one screen-sized room within a World.
type Field struct {
	Attrs    [5]uint8
	ChipLine [2]uint16
	Hits     [][2]int16
	Animes   [][]uint16
	Objects  []Object
	Maps     []Map
}

// World is the top-level script grouping, numbered 0..n.
type World struct {
	Number uint8
	Fields []Field
}

// Script is the full parsed script text: the Talk sequence plus the
// World tree.
type Script struct {
	Talks  []Talk
	Worlds []World
}
