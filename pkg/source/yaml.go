// Package source builds a source Storage from the game's YAML
// supplement files: the five hand-authored tables describing every
// item-placement spot, its logical requirements, and the named events
// that factor out commonly reused preconditions.
package source

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/duskvale/relicshuffle/pkg/flag"
	"github.com/duskvale/relicshuffle/pkg/logic"
)

// recordWithField is the shape shared by every non-shop, non-event YAML
// element: a display name, an optional field name (see fieldOf in
// build.go), and a list of comma-joined AllOf strings.
type recordWithField struct {
	Name         string   `yaml:"name"`
	Field        string   `yaml:"field"`
	Requirements []string `yaml:"requirements"`
}

// shopRecordWithField is a shop element: a comma-triple of talk names
// instead of a single name, otherwise identical to recordWithField.
type shopRecordWithField struct {
	Names        string   `yaml:"names"`
	Field        string   `yaml:"field"`
	Requirements []string `yaml:"requirements"`
}

// eventRecord is a named event definition. Events have no field or
// spot identity of their own; they exist only to be expanded away
// during source construction (spec.md §4.1).
type eventRecord struct {
	Name         string   `yaml:"name"`
	Requirements []string `yaml:"requirements"`
}

type weaponsFile struct {
	MainWeapons []recordWithField `yaml:"main_weapons"`
	SubWeapons  []recordWithField `yaml:"sub_weapons"`
}

type chestsFile struct {
	Chests []recordWithField `yaml:"chests"`
}

type sealsFile struct {
	Seals []recordWithField `yaml:"seals"`
}

type shopsFile struct {
	Shops []shopRecordWithField `yaml:"shops"`
}

type eventsFile struct {
	Events []eventRecord `yaml:"events"`
}

// SupplementFiles holds the raw YAML text of the five supplement
// files, exactly as read from disk. Keeping them as strings (rather
// than pre-parsed) lets HashSupplements hash the byte-identical input
// the rest of the pipeline consumes.
type SupplementFiles struct {
	WeaponsYML string
	ChestsYML  string
	SealsYML   string
	ShopsYML   string
	EventsYML  string
}

// parseRequirements turns a list of comma-joined flag strings into an
// AnyOfAllOf logic.Expression. An empty list means unconditionally
// reachable, represented as a nil *logic.Expression per spec.md §3.
func parseRequirements(reqs []string) *logic.Expression {
	if len(reqs) == 0 {
		return nil
	}
	alternatives := make([]logic.AllOf, 0, len(reqs))
	for _, group := range reqs {
		alternatives = append(alternatives, parseAllOf(group))
	}
	return &logic.Expression{Alternatives: alternatives}
}

func parseAllOf(group string) logic.AllOf {
	parts := strings.Split(group, ",")
	flags := make([]flag.StrategyFlag, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		flags = append(flags, flag.New(p))
	}
	return logic.AllOf{Flags: flags}
}

// parseShopNames splits a shop record's "names" field into exactly
// three parts. dataset/spot.rs's Shop variant enforces this with a
// debug assertion; here it is a returned error so a malformed
// supplement file fails BuildSource cleanly instead of panicking.
func parseShopNames(names string) ([3]string, error) {
	parts := strings.Split(names, ",")
	if len(parts) != 3 {
		return [3]string{}, fmt.Errorf("shop names %q: want 3 comma-separated names, got %d", names, len(parts))
	}
	return [3]string{parts[0], parts[1], parts[2]}, nil
}

func unmarshalWeaponsWithField(text string) (weaponsFile, error) {
	var f weaponsFile
	if err := yaml.Unmarshal([]byte(text), &f); err != nil {
		return weaponsFile{}, fmt.Errorf("parsing weapons.yml: %w", err)
	}
	return f, nil
}

func unmarshalChestsWithField(text string) (chestsFile, error) {
	var f chestsFile
	if err := yaml.Unmarshal([]byte(text), &f); err != nil {
		return chestsFile{}, fmt.Errorf("parsing chests.yml: %w", err)
	}
	return f, nil
}

func unmarshalSealsWithField(text string) (sealsFile, error) {
	var f sealsFile
	if err := yaml.Unmarshal([]byte(text), &f); err != nil {
		return sealsFile{}, fmt.Errorf("parsing seals.yml: %w", err)
	}
	return f, nil
}

func unmarshalShopsWithField(text string) (shopsFile, error) {
	var f shopsFile
	if err := yaml.Unmarshal([]byte(text), &f); err != nil {
		return shopsFile{}, fmt.Errorf("parsing shops.yml: %w", err)
	}
	return f, nil
}

func unmarshalEvents(text string) (eventsFile, error) {
	var f eventsFile
	if err := yaml.Unmarshal([]byte(text), &f); err != nil {
		return eventsFile{}, fmt.Errorf("parsing events.yml: %w", err)
	}
	return f, nil
}
