// Package randomizer binds the Source Builder, Script Model, Solver,
// Validator and Object Rewriter into the four operations spec.md §6
// exposes across the external interface boundary: build_source,
// parse_script, randomize, stringify_script.
package randomizer

import (
	"fmt"

	"github.com/duskvale/relicshuffle/pkg/script"
	"github.com/duskvale/relicshuffle/pkg/solver"
	"github.com/duskvale/relicshuffle/pkg/source"
	"github.com/duskvale/relicshuffle/pkg/storage"
	"github.com/duskvale/relicshuffle/pkg/validate"
)

// Options controls a single randomization run. It is the solver's
// Options verbatim: the solver already carries every knob spec.md §6
// and its [EXPANSION] (EasyMode) call for, so this package adds
// nothing of its own.
type Options = solver.Options

// Result is everything one randomize call produces: the shuffled
// source storage, the spoiler log explaining why it's reachable, and
// the rewritten script ready to be stringified back to text.
type Result struct {
	Storage    *storage.Storage
	SpoilerLog *solver.SpoilerLog
	Script     *script.Script
}

// BuildSource parses the five YAML supplement files into the graph of
// spots and items the solver operates over (spec.md §4.1, §6
// build_source).
func BuildSource(files source.SupplementFiles) (*storage.Storage, []source.Warning, error) {
	return source.BuildSource(files)
}

// ParseScript parses a script.txt's raw bytes into the tag tree
// (spec.md §4.5, §6 parse_script).
func ParseScript(data []byte) (*script.Script, error) {
	return script.ParseScript(string(data))
}

// StringifyScript serializes a script back to the tag-soup text form
// (spec.md §4.5, §6 stringify_script). The output always round-trips
// through ParseScript to an equal tree.
func StringifyScript(s *script.Script) []byte {
	return []byte(script.StringifyScript(s))
}

// Randomize runs the full pipeline against an already-built Storage
// and an already-parsed script: solve for a placement, validate it,
// then rewrite the script to match (spec.md §6 randomize).
//
// Validation runs even though Solve's own search already guarantees
// reachability by construction — spec.md §4.4 specifies the Validator
// as a standing post-condition check independent of how the
// placement was produced, catching a regression in the solver itself
// rather than trusting its output blindly.
func Randomize(old *script.Script, src *storage.Storage, opts Options) (*Result, error) {
	shuffled, log, err := solver.Solve(src, opts)
	if err != nil {
		return nil, fmt.Errorf("randomizer: solve: %w", err)
	}
	if err := validate.Reachability(shuffled); err != nil {
		return nil, fmt.Errorf("randomizer: %w", err)
	}
	validate.AssertUnique(shuffled)

	rewritten, err := RewriteScript(old, log)
	if err != nil {
		return nil, fmt.Errorf("randomizer: rewrite script: %w", err)
	}

	return &Result{Storage: shuffled, SpoilerLog: log, Script: rewritten}, nil
}
