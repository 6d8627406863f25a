package source

import (
	"github.com/duskvale/relicshuffle/pkg/flag"
	"github.com/duskvale/relicshuffle/pkg/storage"
)

// secretRoms is the fixed list of secret-ROM cartridge spots. Unlike
// the five YAML-driven kinds, ROMs are a small, unconfigurable set of
// collectibles baked into the original game rather than something a
// supplement author edits — there is no roms.yml in spec.md §6's
// external-interfaces list. They're appended to every built Storage
// unconditionally; pkg/solver only actually shuffles them when
// solver.Options.ShuffleSecretRoms is set, otherwise each stays on
// its own spot.
var secretRoms = []string{
	"romGameStart",
	"romFirstHalfComplete",
	"romPlayTime3",
	"romPlayTime5",
	"romPlayTime10",
	"romNoDeathTempleOfTheSun",
	"romAllAnkhJewels",
	"romAllWeapons",
	"romAllEndings",
}

// buildRoms constructs the fixed rom spots and items, unconditionally
// reachable (no requirement gates a secret ROM).
func buildRoms() ([]storage.Spot, []storage.Item) {
	spots := make([]storage.Spot, len(secretRoms))
	items := make([]storage.Item, len(secretRoms))
	for i, name := range secretRoms {
		spots[i] = storage.NewSpot(storage.SpotRom, storage.FieldSurface, i, name, nil)
		items[i] = storage.NewRom(i, flag.New(name))
	}
	return spots, items
}
