package solver

import (
	"fmt"
	"runtime"

	"github.com/duskvale/relicshuffle/pkg/rng"
	"github.com/duskvale/relicshuffle/pkg/storage"
)

// maxOuterIterations bounds the retry loop: spec.md §5 specifies a
// hard cap of 100,000 iterations of N parallel attempts each, a bound
// "effectively unreachable for valid configurations".
const maxOuterIterations = 100000

// InfeasibleError reports that the solver exhausted its retry cap
// without finding a valid placement (spec.md §4.3, §7).
type InfeasibleError struct {
	Seed     string
	Attempts int
}

func (e *InfeasibleError) Error() string {
	return fmt.Sprintf("no feasible placement found for seed %q after %d attempts", e.Seed, e.Attempts)
}

// Solve runs the spoiler solver's retry loop against src, returning the
// shuffled Storage and its SpoilerLog.
//
// Determinism (spec.md §5): the master RNG is derived once from
// opts.Seed and its uint64 stream is consumed in strict sequential
// order, N values per outer iteration (N = runtime.NumCPU(), minimum
// 1). All N sub-seeds in an iteration are launched as goroutines and
// joined before any result is examined; the first successful result
// in launch order is adopted — not the fastest finisher — so the
// outcome depends only on opts.Seed, never on scheduling or core
// count.
func Solve(src *storage.Storage, opts Options) (*storage.Storage, *SpoilerLog, error) {
	master := rng.NewRNG(rng.SeedFromString(opts.Seed), "solver-master", nil)

	n := runtime.NumCPU()
	if n < 1 {
		n = 1
	}

	type result struct {
		log *SpoilerLog
		ok  bool
	}

	for iteration := 0; iteration < maxOuterIterations; iteration++ {
		subSeeds := make([]uint64, n)
		for i := range subSeeds {
			subSeeds[i] = master.Uint64()
		}

		results := make([]result, n)
		done := make(chan int, n)
		for i, seed := range subSeeds {
			go func(i int, seed uint64) {
				log, ok := attempt(seed, src, opts)
				results[i] = result{log: log, ok: ok}
				done <- i
			}(i, seed)
		}
		for range subSeeds {
			<-done
		}

		for i := 0; i < n; i++ {
			if results[i].ok {
				results[i].log.Attempts = (iteration + 1) * n
				shuffled := applyPlacements(src, results[i].log)
				return shuffled, results[i].log, nil
			}
		}
	}

	return nil, nil, &InfeasibleError{Seed: opts.Seed, Attempts: maxOuterIterations * n}
}

// applyPlacements clones src and overwrites each placed spot's item
// per the spoiler log's checkpoints, per spec.md §3's Lifecycle: the
// solver produces a fresh Storage by cloning the source, and never
// mutates a spot, name, or requirement.
func applyPlacements(src *storage.Storage, log *SpoilerLog) *storage.Storage {
	out := src.Clone()

	checkpoints := make([]Checkpoint, 0)
	for _, sphere := range log.Progression {
		checkpoints = append(checkpoints, sphere.Checkpoints...)
	}
	checkpoints = append(checkpoints, log.Maps...)

	for _, cp := range checkpoints {
		applyCheckpoint(out, cp)
	}
	return out
}

func applyCheckpoint(st *storage.Storage, cp Checkpoint) {
	switch cp.Kind {
	case CheckpointMainWeapon:
		setItem(st.MainWeaponSpots, st.MainWeaponItems, cp)
	case CheckpointSubWeapon:
		setItem(st.SubWeaponSpots, st.SubWeaponItems, cp)
	case CheckpointChest:
		setItem(st.ChestSpots, st.ChestItems, cp)
	case CheckpointSeal:
		setItem(st.SealSpots, st.SealItems, cp)
	case CheckpointRom:
		setItem(st.RomSpots, st.RomItems, cp)
	case CheckpointShop:
		setShopItem(st.ShopSpots, st.ShopItems, cp)
	}
}

// setItem finds the spot matching cp.Spot's source index within spots
// and overwrites the corresponding slot in items. Spots and items
// share index position by construction (pkg/source builds them in
// lock-step per record), so SrcIdx alone locates both.
func setItem(spots []storage.Spot, items []storage.Item, cp Checkpoint) {
	for i, spot := range spots {
		if spot.SrcIdx == cp.Spot.SrcIdx {
			items[i] = cp.Item
			return
		}
	}
}

func setShopItem(spots []storage.Spot, items []storage.Item, cp Checkpoint) {
	for shopIdx, spot := range spots {
		if spot.SrcIdx != cp.Spot.SrcIdx {
			continue
		}
		idx := shopIdx*3 + cp.Slot
		items[idx] = cp.Item
		return
	}
}
