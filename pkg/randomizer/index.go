package randomizer

import "github.com/duskvale/relicshuffle/pkg/script"

// objectRef locates one Object within a Script's tree: either directly
// under a Field, or nested under one of the Field's Maps.
type objectRef struct {
	world, field int
	mapIdx       int // -1 when the object is a direct Field child
	objIdx       int
}

// scriptIndex groups a Script's Objects by type tag, in document
// traversal order (World → Field → Field.Objects, then
// Field.Maps → Map.Objects). **Open Question resolved here:** the
// codec annex that would let a Spot name its exact script Object is
// out of scope (see DESIGN.md), so this rewrite assumes what every
// hand-authored supplement file and script are built against in
// practice — the Nth chest-tagged Object encountered in this order
// corresponds to the Nth chest record in chests.yml, and likewise per
// kind. This is exactly the same ordering contract pkg/source and
// pkg/solver already rely on between a kind's Spots and Items.
type scriptIndex struct {
	mainWeapon []objectRef
	subWeapon  []objectRef
	chest      []objectRef
	seal       []objectRef
	shop       []objectRef
}

func buildScriptIndex(s *script.Script) scriptIndex {
	var idx scriptIndex
	for w, world := range s.Worlds {
		for f, field := range world.Fields {
			for o, obj := range field.Objects {
				idx.add(obj.Number, objectRef{world: w, field: f, mapIdx: -1, objIdx: o})
			}
			for m, mp := range field.Maps {
				for o, obj := range mp.Objects {
					idx.add(obj.Number, objectRef{world: w, field: f, mapIdx: m, objIdx: o})
				}
			}
		}
	}
	return idx
}

func (idx *scriptIndex) add(tag uint16, ref objectRef) {
	switch tag {
	case script.ObjectMainWeapon:
		idx.mainWeapon = append(idx.mainWeapon, ref)
	case script.ObjectSubWeapon:
		idx.subWeapon = append(idx.subWeapon, ref)
	case script.ObjectChest:
		idx.chest = append(idx.chest, ref)
	case script.ObjectSeal:
		idx.seal = append(idx.seal, ref)
	case script.ObjectShop:
		idx.shop = append(idx.shop, ref)
	}
}

// objectsAt returns the mutable Objects slice a ref's object lives in,
// and the object's position within it.
func objectsAt(s *script.Script, ref objectRef) (*[]script.Object, int) {
	field := &s.Worlds[ref.world].Fields[ref.field]
	if ref.mapIdx < 0 {
		return &field.Objects, ref.objIdx
	}
	return &field.Maps[ref.mapIdx].Objects, ref.objIdx
}

// replaceObject swaps the object at ref for replacement, which may
// contain one object (an in-place edit) or two (the regular-chest
// frame+pedestal pattern) — the slice grows in place when needed.
func replaceObject(s *script.Script, ref objectRef, replacement []script.Object) {
	objects, i := objectsAt(s, ref)
	if len(replacement) == 1 {
		(*objects)[i] = replacement[0]
		return
	}
	tail := append([]script.Object{}, (*objects)[i+1:]...)
	*objects = append((*objects)[:i], replacement...)
	*objects = append(*objects, tail...)
}
