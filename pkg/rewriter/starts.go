package rewriter

import (
	"fmt"

	"github.com/duskvale/relicshuffle/pkg/script"
)

// sentinelFlag is the hide-unconditionally marker the original format
// reserves; spec.md §4.6 names it directly.
const sentinelFlag uint32 = 99999

// startsWithoutOldFlag drops the Start entry (if any) matching old's own
// item flag, keeping every other Start untouched. This is the common
// base every edit kind below builds from.
func startsWithoutOldFlag(old script.Object) ([]script.Start, error) {
	itemFlag, ok := old.ItemFlag()
	if !ok {
		return nil, fmt.Errorf("rewriter: object %d has no item-flag interpretation", old.Number)
	}
	out := make([]script.Start, 0, len(old.Starts))
	for _, s := range old.Starts {
		if s.Flag == uint32(itemFlag) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

// startsAsIs keeps old's starts unchanged except the old item-flag is
// replaced by newFlag, and only if the old object actually had a start
// keyed on its own item flag to begin with (pedestal-style objects that
// never hid behind a flag stay unconditional).
func startsAsIs(old script.Object, newFlag uint32) ([]script.Start, error) {
	itemFlag, ok := old.ItemFlag()
	if !ok {
		return nil, fmt.Errorf("rewriter: object %d has no item-flag interpretation", old.Number)
	}
	out, err := startsWithoutOldFlag(old)
	if err != nil {
		return nil, err
	}
	for _, s := range old.Starts {
		if s.Flag == uint32(itemFlag) {
			out = append(out, script.Start{Flag: newFlag, RunWhenUnset: false})
			break
		}
	}
	return out, nil
}

// startsThatHideWhenStartup builds the Start list for a shutter-style
// pedestal receiving a chest-native item (equipment/rom): a sentinel
// hiding the object until startup evaluation runs, the room-entry start
// flag, then every old start except the stale sentinel.
func startsThatHideWhenStartup(old script.Object, startFlag uint32) ([]script.Start, error) {
	base, err := startsWithoutOldFlag(old)
	if err != nil {
		return nil, err
	}
	out := []script.Start{
		{Flag: sentinelFlag, RunWhenUnset: true},
		{Flag: startFlag, RunWhenUnset: true},
	}
	for _, s := range base {
		if s.Flag != sentinelFlag {
			out = append(out, s)
		}
	}
	return out, nil
}

// startsThatHideWhenStartupAndTaken is startsThatHideWhenStartup plus a
// "taken" flag: used for the item half of a regular chest's two-object
// pattern, where old must be the chest frame (so its open-flag can be
// reused as the room-entry condition).
func startsThatHideWhenStartupAndTaken(old script.Object, newFlag uint32) ([]script.Start, error) {
	openFlag, _, _, ok := old.ChestItem()
	if !ok {
		return nil, fmt.Errorf("rewriter: expected a chest object, got tag %d", old.Number)
	}
	base, err := startsWithoutOldFlag(old)
	if err != nil {
		return nil, err
	}
	out := []script.Start{
		{Flag: sentinelFlag, RunWhenUnset: true},
		{Flag: uint32(openFlag), RunWhenUnset: true},
		{Flag: newFlag, RunWhenUnset: false},
	}
	for _, s := range base {
		if s.Flag != sentinelFlag {
			out = append(out, s)
		}
	}
	return out, nil
}
