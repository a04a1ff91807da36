// Command cottonfuzz loads a dungeon and runs the coverage-guided input
// fuzzer of spec.md §4.10, appending discovered crashes and run-ending
// routes (victory or death) to the two files named by -crashes/-routes (spec.md §6's
// "two append-only files").
package main

import (
	"flag"
	"fmt"
	"os"

	"cotton/internal/config"
	"cotton/internal/dungeon"
	"cotton/internal/fuzzer"
)

func main() {
	level := flag.Int("l", 0, "level number to load")
	seed := flag.Uint64("s", 1, "PRNG seed")
	maxPasses := flag.Int("max-passes", -1, "mutation passes per queue entry (-1 = take from -config)")
	alphabet := flag.String("alphabet", "", "mutation alphabet (empty = take from -config)")
	crashesPath := flag.String("crashes", "crashes.log", "append-only crash log path")
	routesPath := flag.String("routes", "routes.log", "append-only discovered-route log path")
	configPath := flag.String("config", "", "YAML tunables file (defaults built in if omitted)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: cottonfuzz dungeon.xml [-l N] [-s N] [-max-passes N] [-alphabet STR] [-crashes FILE] [-routes FILE] [-config FILE]")
		os.Exit(255)
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cottonfuzz: %v\n", err)
			os.Exit(255)
		}
		cfg = loaded
	}
	if *maxPasses < 0 {
		*maxPasses = cfg.Fuzzer.MaxPassesPerEntry
	}
	if *alphabet == "" {
		*alphabet = cfg.Fuzzer.Alphabet
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "cottonfuzz: %v\n", err)
		os.Exit(255)
	}
	defer f.Close()

	w, err := dungeon.Load(f, *level, *seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cottonfuzz: %v\n", err)
		os.Exit(255)
	}

	crashesFile, err := os.OpenFile(*crashesPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cottonfuzz: %v\n", err)
		os.Exit(255)
	}
	defer crashesFile.Close()

	routesFile, err := os.OpenFile(*routesPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cottonfuzz: %v\n", err)
		os.Exit(255)
	}
	defer routesFile.Close()

	fz := fuzzer.New(w, []byte(*alphabet), *maxPasses, crashesFile, routesFile)
	fz.Run()

	fmt.Printf("crashes found: %d\n", len(fz.CrashesFound))
	fmt.Printf("routes found: %d\n", len(fz.RoutesFound))
}
