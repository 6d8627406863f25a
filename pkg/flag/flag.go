// Package flag implements StrategyFlag, the textual predicate that names
// either an item the player has obtained or an event the player has
// triggered. Two families of flag carry special meaning to the solver:
// sacred-orb counts (parametric, thresholded) and events (eliminated
// before the solver ever sees them).
package flag

import (
	"strconv"
	"strings"
)

// sacredOrbPrefix and eventPrefix are the two recognized flag namespaces.
const (
	sacredOrbPrefix = "sacredOrb:"
	eventPrefix     = "event:"
)

// StrategyFlag is a short textual identifier such as "holyGrail",
// "event:openedAnkh", or "sacredOrb:4". It is immutable once constructed.
type StrategyFlag struct {
	name string
}

// New wraps a raw flag name. It does not validate the sacred-orb suffix;
// use IsSacredOrb/SacredOrbCount for that, mirroring the source format's
// permissive constructor with debug-only shape checks.
func New(name string) StrategyFlag {
	return StrategyFlag{name: name}
}

// Name returns the raw flag text.
func (f StrategyFlag) Name() string {
	return f.name
}

// String implements fmt.Stringer.
func (f StrategyFlag) String() string {
	return f.name
}

// Equal reports whether two flags have the same name.
func (f StrategyFlag) Equal(other StrategyFlag) bool {
	return f.name == other.name
}

// IsSacredOrb reports whether the flag names a sacred-orb threshold,
// i.e. starts with "sacredOrb:".
func (f StrategyFlag) IsSacredOrb() bool {
	return strings.HasPrefix(f.name, sacredOrbPrefix)
}

// SacredOrbCount returns the threshold suffix of a sacred-orb flag
// (0-255). The caller must have checked IsSacredOrb first; an
// unparsable or out-of-range suffix returns 0, false.
func (f StrategyFlag) SacredOrbCount() (uint8, bool) {
	if !f.IsSacredOrb() {
		return 0, false
	}
	suffix := f.name[len(sacredOrbPrefix):]
	n, err := strconv.ParseUint(suffix, 10, 8)
	if err != nil {
		return 0, false
	}
	return uint8(n), true
}

// IsEvent reports whether the flag names an event, i.e. starts with
// "event:". Events must be eliminated by source construction before the
// solver runs; see pkg/source for the expansion pass.
func (f StrategyFlag) IsEvent() bool {
	return strings.HasPrefix(f.name, eventPrefix)
}

// EventName returns the flag's event suffix (the part after "event:").
// The caller must have checked IsEvent first.
func (f StrategyFlag) EventName() string {
	return strings.TrimPrefix(f.name, eventPrefix)
}

// NewSacredOrb builds a sacred-orb flag for the given threshold.
func NewSacredOrb(count uint8) StrategyFlag {
	return StrategyFlag{name: sacredOrbPrefix + strconv.Itoa(int(count))}
}

// NewEvent builds an event flag wrapping the given event name.
func NewEvent(name string) StrategyFlag {
	return StrategyFlag{name: eventPrefix + name}
}
