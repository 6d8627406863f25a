package solver

import (
	"sort"

	"github.com/duskvale/relicshuffle/pkg/rng"
	"github.com/duskvale/relicshuffle/pkg/storage"
)

// maxSpheres bounds the sphere-search loop itself, distinct from
// validate's post-solve bounded walk (spec.md §4.3 Validation uses
// 100); an attempt that hasn't converged by then is abandoned exactly
// like an attempt that found an empty reached-set with spots still
// remaining, so the retry loop tries a fresh sub-seed.
const maxSpheres = 1000

// attempt runs one full speculative placement: sphere search over
// every pool built from opts, returning the resulting SpoilerLog, or
// ok=false if this sub-seed failed to produce a feasible full
// placement (spec.md §4.3 step 3).
func attempt(subSeed uint64, src *storage.Storage, opts Options) (*SpoilerLog, bool) {
	r := rng.NewRNG(subSeed, "solver-attempt", nil)
	pools, consumableSlots := buildPools(src, opts)

	owned := make(map[string]struct{})
	if opts.EasyMode {
		for _, f := range easyModeStartingFlags {
			owned[f] = struct{}{}
		}
	}
	var orbs uint8

	// remaining tracks, per pool, the sites not yet assigned and the
	// items not yet placed.
	type remainingPool struct {
		sites []site
		items []storage.Item
	}
	remaining := make([]remainingPool, len(pools))
	totalSites := 0
	for i, p := range pools {
		remaining[i] = remainingPool{sites: append([]site(nil), p.sites...), items: append([]storage.Item(nil), p.items...)}
		totalSites += len(p.sites)
	}

	log := &SpoilerLog{}

	for step := 0; step < maxSpheres && totalSites > 0; step++ {
		type reachedSite struct {
			poolIdx int
			siteIdx int
		}
		var reached []reachedSite
		for pi := range remaining {
			for si, s := range remaining[pi].sites {
				if siteReachable(s.spot, owned, orbs, opts.NeedGlitches) {
					reached = append(reached, reachedSite{pi, si})
				}
			}
		}

		if len(reached) == 0 {
			return nil, false
		}

		r.Shuffle(len(reached), func(i, j int) { reached[i], reached[j] = reached[j], reached[i] })

		sphere := Sphere{}
		// Process pools back-to-front by index within a pool so
		// removing a matched site/item by index doesn't invalidate
		// the indices of sites not yet processed in this round.
		toRemove := make(map[int][]int) // poolIdx -> siteIdx list, descending
		for _, rs := range reached {
			rp := &remaining[rs.poolIdx]
			s := rp.sites[rs.siteIdx]

			eligible := make([]int, 0, len(rp.items))
			for ii, it := range rp.items {
				if canPlace(s, it, consumableSlots) {
					eligible = append(eligible, ii)
				}
			}
			if len(eligible) == 0 {
				return nil, false
			}
			chosen := eligible[r.Intn(len(eligible))]
			item := rp.items[chosen]

			kind := checkpointKindOf(s.spot.Kind)
			cp := Checkpoint{Kind: kind, Spot: s.spot, Slot: s.slot, Item: item}
			if item.IsMap() {
				log.Maps = append(log.Maps, cp)
			} else {
				sphere.Checkpoints = append(sphere.Checkpoints, cp)
			}

			owned[item.Name.Name()] = struct{}{}
			if item.Name.IsSacredOrb() {
				orbs++
			}

			rp.items = removeItemAt(rp.items, chosen)
			toRemove[rs.poolIdx] = append(toRemove[rs.poolIdx], rs.siteIdx)
			totalSites--
		}

		for pi, indices := range toRemove {
			sort.Sort(sort.Reverse(sort.IntSlice(indices)))
			for _, idx := range indices {
				remaining[pi].sites = removeSiteAt(remaining[pi].sites, idx)
			}
		}

		if len(sphere.Checkpoints) > 0 {
			log.Progression = append(log.Progression, sphere)
		}
	}

	if totalSites > 0 {
		return nil, false
	}
	return log, true
}

func removeItemAt(items []storage.Item, idx int) []storage.Item {
	items[idx] = items[len(items)-1]
	return items[:len(items)-1]
}

func removeSiteAt(sites []site, idx int) []site {
	sites[idx] = sites[len(sites)-1]
	return sites[:len(sites)-1]
}
