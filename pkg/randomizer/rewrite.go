package randomizer

import (
	"fmt"

	"github.com/duskvale/relicshuffle/pkg/rewriter"
	"github.com/duskvale/relicshuffle/pkg/script"
	"github.com/duskvale/relicshuffle/pkg/solver"
	"github.com/duskvale/relicshuffle/pkg/storage"
)

// RewriteScript applies every checkpoint in log to a copy of old,
// returning the rewritten script (spec.md §4.6, §4.7). old is never
// mutated.
//
// Secret-ROM checkpoints (CheckpointRom) are recorded in the spoiler
// log and affect the shuffled Storage, but are not mirrored into the
// script: the retrieved corpus has no script-object wiring for secret
// ROM pickups (they are likely event/flag driven rather than
// Object-borne in the original game), so there is nothing in this
// package's script model to rewrite for them. Noted rather than
// silently dropped.
func RewriteScript(old *script.Script, log *solver.SpoilerLog) (*script.Script, error) {
	out := cloneScript(old)
	idx := buildScriptIndex(out)

	checkpoints := make([]solver.Checkpoint, 0)
	for _, sphere := range log.Progression {
		checkpoints = append(checkpoints, sphere.Checkpoints...)
	}
	checkpoints = append(checkpoints, log.Maps...)

	shopSlots := make(map[int][3]*rewriter.ShopPlacement)
	for _, cp := range checkpoints {
		switch cp.Kind {
		case solver.CheckpointMainWeapon:
			if err := rewritePedestal(out, idx.mainWeapon, cp); err != nil {
				return nil, err
			}
		case solver.CheckpointSubWeapon:
			if err := rewritePedestal(out, idx.subWeapon, cp); err != nil {
				return nil, err
			}
		case solver.CheckpointSeal:
			if err := rewritePedestal(out, idx.seal, cp); err != nil {
				return nil, err
			}
		case solver.CheckpointChest:
			if err := rewriteChestCheckpoint(out, idx.chest, cp); err != nil {
				return nil, err
			}
		case solver.CheckpointShop:
			shopIdx := cp.Spot.SrcIdx
			placement, err := shopPlacementFor(cp.Item)
			if err != nil {
				return nil, err
			}
			slots := shopSlots[shopIdx]
			slots[cp.Slot] = placement
			shopSlots[shopIdx] = slots
		case solver.CheckpointRom:
			// Intentionally not mirrored into the script, see doc comment.
		}
	}

	for shopIdx, placements := range shopSlots {
		if shopIdx >= len(idx.shop) {
			return nil, fmt.Errorf("randomizer: shop index %d has no matching script object", shopIdx)
		}
		if err := rewriteShop(out, idx.shop[shopIdx], placements); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func rewritePedestal(s *script.Script, refs []objectRef, cp solver.Checkpoint) error {
	if cp.Spot.SrcIdx >= len(refs) {
		return fmt.Errorf("randomizer: %s index %d has no matching script object", cp.Kind, cp.Spot.SrcIdx)
	}
	ref := refs[cp.Spot.SrcIdx]
	objects, i := objectsAt(s, ref)
	old := (*objects)[i]
	item := rewriter.ResolveItem(cp.Item)
	rewritten, err := rewriter.RewriteShutter(old, 0, item)
	if err != nil {
		return fmt.Errorf("randomizer: rewrite %s: %w", cp.Kind, err)
	}
	(*objects)[i] = rewritten
	return nil
}

func rewriteChestCheckpoint(s *script.Script, refs []objectRef, cp solver.Checkpoint) error {
	if cp.Spot.SrcIdx >= len(refs) {
		return fmt.Errorf("randomizer: chest index %d has no matching script object", cp.Spot.SrcIdx)
	}
	ref := refs[cp.Spot.SrcIdx]
	objects, i := objectsAt(s, ref)
	old := (*objects)[i]
	item := rewriter.ResolveItem(cp.Item)
	rewritten, err := rewriter.RewriteChest(old, item)
	if err != nil {
		return fmt.Errorf("randomizer: rewrite chest: %w", err)
	}
	replaceObject(s, ref, rewritten)
	return nil
}

func rewriteShop(s *script.Script, ref objectRef, placements [3]*rewriter.ShopPlacement) error {
	objects, i := objectsAt(s, ref)
	obj := (*objects)[i]
	talkIdx, ok := obj.ShopTalkIndex()
	if !ok {
		return fmt.Errorf("randomizer: object at shop index is not a real shop")
	}
	if int(talkIdx) >= len(s.Talks) {
		return fmt.Errorf("randomizer: shop talk index %d out of range", talkIdx)
	}

	old, err := rewriter.DecodeShopSlots(string(s.Talks[talkIdx]))
	if err != nil {
		return fmt.Errorf("randomizer: decode shop slots: %w", err)
	}
	newSlots := rewriter.ReplaceShopSlots(old, placements)
	newText, err := rewriter.EncodeShopSlots(newSlots)
	if err != nil {
		return fmt.Errorf("randomizer: encode shop slots: %w", err)
	}
	s.Talks[talkIdx] = script.Talk(newText)
	return nil
}

// shopPlacementFor maps a placed storage.Item onto the shop-slot
// encoding's three-way kind tag (spec.md §4.7).
func shopPlacementFor(item storage.Item) (*rewriter.ShopPlacement, error) {
	resolved := rewriter.ResolveItem(item)
	var kind rewriter.ShopSlotKind
	switch item.Kind {
	case storage.ItemSubWeaponBody, storage.ItemSubWeaponAmmo:
		kind = rewriter.ShopSlotSubWeapon
	case storage.ItemChestItem, storage.ItemShopItem:
		kind = rewriter.ShopSlotEquipment
	case storage.ItemRom:
		kind = rewriter.ShopSlotRom
	default:
		return nil, fmt.Errorf("randomizer: %s cannot occupy a shop slot", item.Kind)
	}
	return &rewriter.ShopPlacement{
		Kind:      kind,
		Number:    resolved.Number,
		AmmoCount: uint8(resolved.Count),
		SetFlag:   uint16(resolved.Flag),
	}, nil
}
