package solver

import "github.com/duskvale/relicshuffle/pkg/storage"

// classes lists the five YAML-driven kinds in Storage's canonical
// order. Rom is handled separately (gated by Options.ShuffleSecretRoms
// rather than participating in the ordinary class pools).
var classes = []storage.SpotKind{
	storage.SpotMainWeapon,
	storage.SpotSubWeapon,
	storage.SpotChest,
	storage.SpotSeal,
	storage.SpotShop,
}

// site is one placement slot: an ordinary spot holds exactly one, a
// shop spot holds three (Slot 0..2). The sphere search and final
// assignment both work over sites rather than storage.Spot directly so
// that shop triples and single-item spots share one placement
// machinery instead of needing separate code paths.
type site struct {
	spot storage.Spot
	slot int
}

func sitesFor(spots []storage.Spot) []site {
	sites := make([]site, 0, len(spots))
	for _, spot := range spots {
		if spot.Kind == storage.SpotShop {
			sites = append(sites, site{spot: spot, slot: 0}, site{spot: spot, slot: 1}, site{spot: spot, slot: 2})
			continue
		}
		sites = append(sites, site{spot: spot, slot: 0})
	}
	return sites
}

// pool pairs a kind's sites with its items for one attempt. When
// Options.AbsolutelyShuffle is set, every class's pool is merged into
// a single pseudo-class so items can cross kind boundaries subject to
// the shop/consumable typing checks in canPlace.
type pool struct {
	sites []site
	items []storage.Item
}

// buildPools returns one pool per placement class, merging all five
// classes into one if opts.AbsolutelyShuffle is set, and appending a
// Rom pool if opts.ShuffleSecretRoms is set. consumableSlots records,
// per shop spot name, which of its three original slots held a
// consumable — shop slot typing is fixed hardware, not something the
// randomizer redesigns (see canPlace).
func buildPools(src *storage.Storage, opts Options) ([]pool, map[string][3]bool) {
	consumableSlots := consumableSlotsByShopName(src)

	var pools []pool
	if opts.AbsolutelyShuffle {
		merged := pool{}
		for _, kind := range classes {
			merged.sites = append(merged.sites, sitesFor(src.SpotsOf(kind))...)
			merged.items = append(merged.items, src.ItemsOf(kind)...)
		}
		pools = append(pools, merged)
	} else {
		for _, kind := range classes {
			pools = append(pools, pool{
				sites: sitesFor(src.SpotsOf(kind)),
				items: append([]storage.Item(nil), src.ItemsOf(kind)...),
			})
		}
	}
	if opts.ShuffleSecretRoms {
		pools = append(pools, pool{
			sites: sitesFor(src.RomSpots),
			items: append([]storage.Item(nil), src.RomItems...),
		})
	}
	return pools, consumableSlots
}

func consumableSlotsByShopName(src *storage.Storage) map[string][3]bool {
	out := make(map[string][3]bool, len(src.ShopSpots))
	idx := 0
	for _, spot := range src.ShopSpots {
		var slots [3]bool
		for slot := 0; slot < 3; slot++ {
			if idx < len(src.ShopItems) {
				slots[slot] = src.ShopItems[idx].IsConsumable()
			}
			idx++
		}
		out[spot.Name] = slots
	}
	return out
}

// canPlace reports whether item may legally occupy a site, honoring
// shop-display and consumable-slot typing (spec.md §4.3 Constraints).
// consumableSlots is the per-shop fixed typing computed once per solve
// by consumableSlotsByShopName.
func canPlace(s site, item storage.Item, consumableSlots map[string][3]bool) bool {
	if s.spot.Kind == storage.SpotRom || item.Kind == storage.ItemRom {
		return s.spot.Kind == storage.SpotRom && item.Kind == storage.ItemRom
	}
	if s.spot.Kind != storage.SpotShop {
		return true
	}
	if !item.CanDisplayInShop() {
		return false
	}
	return item.IsConsumable() == consumableSlots[s.spot.Name][s.slot]
}
