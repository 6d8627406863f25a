package source

import (
	"fmt"
	"sort"

	"github.com/duskvale/relicshuffle/pkg/flag"
	"github.com/duskvale/relicshuffle/pkg/logic"
	"github.com/duskvale/relicshuffle/pkg/storage"
)

// Warning is a non-fatal diagnostic raised while building a Storage.
// spec.md §7 classifies missing-requirement-target and shop-name
// replacement failures as log-only: they never abort the build.
type Warning struct {
	Message string
}

func (w Warning) String() string { return w.Message }

// fieldOf resolves a record's optional field name, defaulting to
// FieldSurface when absent. The distilled supplement-record shape
// in spec.md §6 omits a field key entirely; the real YAML vocabulary
// needs one to populate storage.Spot.Field, so this package accepts an
// optional "field" key per record and falls back to Surface with a
// warning when it's missing or unrecognized, rather than making field
// placement mandatory everywhere a test fixture omits it.
func fieldOf(name string, warnings *[]Warning) storage.FieldID {
	if name == "" {
		return storage.FieldSurface
	}
	id, ok := storage.ParseFieldID(name)
	if !ok {
		*warnings = append(*warnings, Warning{Message: fmt.Sprintf("unknown field name %q, defaulting to Surface", name)})
		return storage.FieldSurface
	}
	return id
}

// BuildSource parses the five supplement files into a source Storage,
// per spec.md §4.1: parse records, expand named events against
// themselves, then apply the resolved events to every spot's
// requirement expression so only item-flag and sacred-orb
// requirements remain. It never fails on a missing requirement target;
// that is reported as a Warning instead (spec.md §7).
func BuildSource(files SupplementFiles) (*storage.Storage, []Warning, error) {
	var warnings []Warning

	weapons, err := unmarshalWeaponsWithField(files.WeaponsYML)
	if err != nil {
		return nil, nil, err
	}
	chests, err := unmarshalChestsWithField(files.ChestsYML)
	if err != nil {
		return nil, nil, err
	}
	seals, err := unmarshalSealsWithField(files.SealsYML)
	if err != nil {
		return nil, nil, err
	}
	shops, err := unmarshalShopsWithField(files.ShopsYML)
	if err != nil {
		return nil, nil, err
	}
	eventsFile, err := unmarshalEvents(files.EventsYML)
	if err != nil {
		return nil, nil, err
	}

	events := make(map[string]*logic.Expression, len(eventsFile.Events))
	for _, e := range eventsFile.Events {
		events[e.Name] = parseRequirements(e.Requirements)
	}
	resolved, err := logic.ExpandEvents(events)
	if err != nil {
		return nil, nil, fmt.Errorf("expanding events: %w", err)
	}

	st := &storage.Storage{}

	for i, r := range weapons.MainWeapons {
		req := logic.ApplyEvents(parseRequirements(r.Requirements), resolved)
		st.MainWeaponSpots = append(st.MainWeaponSpots, storage.NewSpot(storage.SpotMainWeapon, fieldOf(r.Field, &warnings), i, r.Name, req))
		st.MainWeaponItems = append(st.MainWeaponItems, storage.NewMainWeapon(i, flag.New(r.Name)))
	}
	for i, r := range weapons.SubWeapons {
		req := logic.ApplyEvents(parseRequirements(r.Requirements), resolved)
		st.SubWeaponSpots = append(st.SubWeaponSpots, storage.NewSpot(storage.SpotSubWeapon, fieldOf(r.Field, &warnings), i, r.Name, req))
		st.SubWeaponItems = append(st.SubWeaponItems, storage.NewSubWeaponBody(i, flag.New(r.Name)))
	}
	for i, r := range chests.Chests {
		req := logic.ApplyEvents(parseRequirements(r.Requirements), resolved)
		st.ChestSpots = append(st.ChestSpots, storage.NewSpot(storage.SpotChest, fieldOf(r.Field, &warnings), i, r.Name, req))
		st.ChestItems = append(st.ChestItems, storage.NewChestItem(i, flag.New(r.Name)))
	}
	for i, r := range seals.Seals {
		req := logic.ApplyEvents(parseRequirements(r.Requirements), resolved)
		st.SealSpots = append(st.SealSpots, storage.NewSpot(storage.SpotSeal, fieldOf(r.Field, &warnings), i, r.Name, req))
		st.SealItems = append(st.SealItems, storage.NewSeal(i, flag.New(r.Name)))
	}
	for i, r := range shops.Shops {
		names, err := parseShopNames(r.Names)
		if err != nil {
			return nil, nil, fmt.Errorf("shop %d: %w", i, err)
		}
		req := logic.ApplyEvents(parseRequirements(r.Requirements), resolved)
		st.ShopSpots = append(st.ShopSpots, storage.NewShopSpot(fieldOf(r.Field, &warnings), i, names, req))
		for slot, name := range names {
			st.ShopItems = append(st.ShopItems, storage.NewShopItem(i, slot, flag.New(name)))
		}
	}

	st.RomSpots, st.RomItems = buildRoms()

	warnings = append(warnings, wareMissingRequirements(st)...)

	return st, warnings, nil
}

// wareMissingRequirements reports every requirement flag that names no
// item in the built Storage and isn't a sacred-orb threshold, mirroring
// create_source.rs's ware_missing_requirements pass: a log-only
// diagnostic, never a build failure (spec.md §3 Invariants, §7).
func wareMissingRequirements(st *storage.Storage) []Warning {
	itemNames := make(map[string]struct{})
	for _, it := range st.AllItems() {
		itemNames[it.Name.Name()] = struct{}{}
	}

	seen := make(map[string]struct{})
	var missing []string
	for _, spot := range st.AllSpots() {
		if spot.Requirements == nil {
			continue
		}
		for _, group := range spot.Requirements.Alternatives {
			for _, f := range group.Flags {
				if f.IsSacredOrb() || f.IsEvent() {
					continue
				}
				name := f.Name()
				if _, ok := itemNames[name]; ok {
					continue
				}
				if _, dup := seen[name]; dup {
					continue
				}
				seen[name] = struct{}{}
				missing = append(missing, name)
			}
		}
	}
	sort.Strings(missing)

	warnings := make([]Warning, 0, len(missing))
	for _, name := range missing {
		warnings = append(warnings, Warning{Message: fmt.Sprintf("missing item: %q", name)})
	}
	return warnings
}
