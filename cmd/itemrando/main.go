package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/duskvale/relicshuffle/pkg/randomizer"
	"github.com/duskvale/relicshuffle/pkg/source"
)

const version = "1.0.0"

var (
	dataDir           = flag.String("data", "", "Directory holding weapons.yml, chests.yml, seals.yml, shops.yml, events.yml (required)")
	scriptPath        = flag.String("script", "", "Path to the game's script.txt (required)")
	outputDir         = flag.String("output", ".", "Output directory for the rewritten script and spoiler log")
	seed              = flag.String("seed", "", "Randomization seed (required)")
	shuffleSecretRoms = flag.Bool("shuffle-roms", false, "Include secret ROMs in the shuffle")
	needGlitches      = flag.Bool("need-glitches", false, "Treat glitch-gated routes as always satisfied")
	absolutelyShuffle = flag.Bool("absolutely-shuffle", false, "Merge every placement class into one shared pool")
	easyMode          = flag.Bool("easy-mode", false, "Pre-seed a small set of early-game conveniences")
	verbose           = flag.Bool("verbose", false, "Enable verbose output")
	versionF          = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("itemrando version %s\n", version)
		os.Exit(0)
	}

	if *dataDir == "" || *scriptPath == "" || *seed == "" {
		fmt.Fprintln(os.Stderr, "Error: -data, -script and -seed are all required")
		printUsage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if *verbose {
		fmt.Printf("Loading supplement files from %s\n", *dataDir)
	}
	files, err := loadSupplementFiles(*dataDir)
	if err != nil {
		return fmt.Errorf("failed to load supplement files: %w", err)
	}

	st, warnings, err := randomizer.BuildSource(files)
	if err != nil {
		return fmt.Errorf("failed to build source: %w", err)
	}
	if *verbose {
		for _, w := range warnings {
			fmt.Printf("warning: %s\n", w)
		}
	}

	if *verbose {
		fmt.Printf("Loading script from %s\n", *scriptPath)
	}
	rawScript, err := os.ReadFile(*scriptPath)
	if err != nil {
		return fmt.Errorf("failed to read script: %w", err)
	}
	oldScript, err := randomizer.ParseScript(rawScript)
	if err != nil {
		return fmt.Errorf("failed to parse script: %w", err)
	}

	opts := randomizer.Options{
		Seed:              *seed,
		ShuffleSecretRoms: *shuffleSecretRoms,
		NeedGlitches:      *needGlitches,
		AbsolutelyShuffle: *absolutelyShuffle,
		EasyMode:          *easyMode,
	}

	if *verbose {
		fmt.Printf("Randomizing with seed %q\n", opts.Seed)
	}
	start := time.Now()
	result, err := randomizer.Randomize(oldScript, st, opts)
	if err != nil {
		return fmt.Errorf("randomization failed: %w", err)
	}
	elapsed := time.Since(start)

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	scriptOut := filepath.Join(*outputDir, "script.txt")
	if err := os.WriteFile(scriptOut, randomizer.StringifyScript(result.Script), 0644); err != nil {
		return fmt.Errorf("failed to write rewritten script: %w", err)
	}

	logOut := filepath.Join(*outputDir, "spoiler_log.txt")
	if err := os.WriteFile(logOut, []byte(result.SpoilerLog.String()), 0644); err != nil {
		return fmt.Errorf("failed to write spoiler log: %w", err)
	}

	fmt.Printf("Successfully randomized (seed=%q, attempts=%d) in %v\n", opts.Seed, result.SpoilerLog.Attempts, elapsed)
	fmt.Printf("  Script:       %s\n", scriptOut)
	fmt.Printf("  Spoiler log:  %s\n", logOut)
	if *verbose {
		fmt.Printf("  Spoiler hash: %s\n", randomizer.HashSpoilerLog(result.SpoilerLog))
		fmt.Printf("  Script hash:  %s\n", randomizer.HashScript(result.Script))
	}

	return nil
}

func loadSupplementFiles(dir string) (source.SupplementFiles, error) {
	read := func(name string) (string, error) {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	var files source.SupplementFiles
	var err error
	if files.WeaponsYML, err = read("weapons.yml"); err != nil {
		return files, err
	}
	if files.ChestsYML, err = read("chests.yml"); err != nil {
		return files, err
	}
	if files.SealsYML, err = read("seals.yml"); err != nil {
		return files, err
	}
	if files.ShopsYML, err = read("shops.yml"); err != nil {
		return files, err
	}
	if files.EventsYML, err = read("events.yml"); err != nil {
		return files, err
	}
	return files, nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "\nUsage: itemrando -data <dir> -script <script.txt> -seed <seed> [options]")
	fmt.Fprintln(os.Stderr, "\nRun 'itemrando -version' to print the version")
}
