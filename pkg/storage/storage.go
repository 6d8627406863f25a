package storage

// Storage is the complete source data set for a single randomization
// run: every Spot the game offers grouped by kind, and every Item
// available to be placed into them. Grouping by kind (rather than one
// flat list with a shared enum key) mirrors dataset/storage.rs and
// lets the solver and rewriter address "the sub weapon pool" directly
// without a filter pass.
type Storage struct {
	MainWeaponSpots []Spot
	SubWeaponSpots  []Spot
	ChestSpots      []Spot
	SealSpots       []Spot
	ShopSpots       []Spot
	RomSpots        []Spot

	MainWeaponItems []Item
	SubWeaponItems  []Item // bodies and ammo interleaved, SrcIdx-ordered
	ChestItems      []Item
	SealItems       []Item
	ShopItems       []Item // flattened, 3 per shop in ShopSpots order
	RomItems        []Item
}

// AllSpots returns every spot across all six kinds, in
// MainWeapon, SubWeapon, Chest, Seal, Shop, Rom order.
func (s *Storage) AllSpots() []Spot {
	out := make([]Spot, 0, len(s.MainWeaponSpots)+len(s.SubWeaponSpots)+len(s.ChestSpots)+len(s.SealSpots)+len(s.ShopSpots)+len(s.RomSpots))
	out = append(out, s.MainWeaponSpots...)
	out = append(out, s.SubWeaponSpots...)
	out = append(out, s.ChestSpots...)
	out = append(out, s.SealSpots...)
	out = append(out, s.ShopSpots...)
	out = append(out, s.RomSpots...)
	return out
}

// AllItems returns every item across all six kinds, in the same
// MainWeapon, SubWeapon, Chest, Seal, Shop, Rom order as AllSpots.
func (s *Storage) AllItems() []Item {
	out := make([]Item, 0, len(s.MainWeaponItems)+len(s.SubWeaponItems)+len(s.ChestItems)+len(s.SealItems)+len(s.ShopItems)+len(s.RomItems))
	out = append(out, s.MainWeaponItems...)
	out = append(out, s.SubWeaponItems...)
	out = append(out, s.ChestItems...)
	out = append(out, s.SealItems...)
	out = append(out, s.ShopItems...)
	out = append(out, s.RomItems...)
	return out
}

// SpotsOf returns the spot slice for a single kind. Shop spots hold
// three item slots each; callers that need per-slot addressing should
// combine this with ShopItems directly rather than through Item.
func (s *Storage) SpotsOf(kind SpotKind) []Spot {
	switch kind {
	case SpotMainWeapon:
		return s.MainWeaponSpots
	case SpotSubWeapon:
		return s.SubWeaponSpots
	case SpotChest:
		return s.ChestSpots
	case SpotSeal:
		return s.SealSpots
	case SpotShop:
		return s.ShopSpots
	case SpotRom:
		return s.RomSpots
	default:
		return nil
	}
}

// ItemsOf returns the item slice whose kind pool corresponds to a spot
// kind (e.g. SpotSubWeapon's pool is SubWeaponItems, which holds both
// ItemSubWeaponBody and ItemSubWeaponAmmo entries).
func (s *Storage) ItemsOf(kind SpotKind) []Item {
	switch kind {
	case SpotMainWeapon:
		return s.MainWeaponItems
	case SpotSubWeapon:
		return s.SubWeaponItems
	case SpotChest:
		return s.ChestItems
	case SpotSeal:
		return s.SealItems
	case SpotShop:
		return s.ShopItems
	case SpotRom:
		return s.RomItems
	default:
		return nil
	}
}

// Clone makes a shallow copy of Storage whose spot/item slices are
// independent backing arrays. The solver clones the source Storage
// once to write the adopted placement into, so the caller's source is
// left unmodified; its speculative attempts build their own pool
// slices rather than cloning a Storage.
func (s *Storage) Clone() *Storage {
	clone := &Storage{
		MainWeaponSpots: append([]Spot(nil), s.MainWeaponSpots...),
		SubWeaponSpots:  append([]Spot(nil), s.SubWeaponSpots...),
		ChestSpots:      append([]Spot(nil), s.ChestSpots...),
		SealSpots:       append([]Spot(nil), s.SealSpots...),
		ShopSpots:       append([]Spot(nil), s.ShopSpots...),
		RomSpots:        append([]Spot(nil), s.RomSpots...),

		MainWeaponItems: append([]Item(nil), s.MainWeaponItems...),
		SubWeaponItems:  append([]Item(nil), s.SubWeaponItems...),
		ChestItems:      append([]Item(nil), s.ChestItems...),
		SealItems:       append([]Item(nil), s.SealItems...),
		ShopItems:       append([]Item(nil), s.ShopItems...),
		RomItems:        append([]Item(nil), s.RomItems...),
	}
	return clone
}

// Placement is a single resolved (Spot, Item) pairing, the unit the
// solver produces and the rewriter and spoiler log both consume.
type Placement struct {
	Spot Spot
	Item Item
}

// ShopPlacement groups the three placements that occupy one shop spot's
// talk slots, in slot order. The rewriter's shop-talk codec
// (pkg/rewriter) operates on this triple at once, since all three
// slots are encoded into a single talk script entry.
type ShopPlacement struct {
	Spot  Spot
	Items [3]Item
}
