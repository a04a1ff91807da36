// Command cotton runs the headless beat simulator interactively, reading
// one input byte from stdin per beat (or replaying a fixed sequence given
// with -m), and prints a text snapshot after each beat. Flag layout and
// exit-code discipline follow spec.md §6; the flag.Parse()-driven shape
// is grounded on the teacher's main_cli.go pattern (melvinzhang-squava).
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"cotton/internal/beat"
	"cotton/internal/config"
	"cotton/internal/dungeon"
	"cotton/internal/render"
)

func main() {
	level := flag.Int("l", 0, "level number to load")
	seed := flag.Uint64("s", 1, "PRNG seed")
	item := flag.String("i", "", "preload an item by XML name (not modeled by this core)")
	moves := flag.String("m", "", "pre-played input sequence; interactive stdin if empty")
	configPath := flag.String("config", "", "YAML tunables file (defaults built in if omitted)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: cotton dungeon.xml [-l N] [-s N] [-i NAME] [-m STRING] [-config FILE]")
		os.Exit(255)
	}
	if *item != "" {
		fmt.Fprintf(os.Stderr, "cotton: -i %s ignored, item preloading is out of scope\n", *item)
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cotton: %v\n", err)
			os.Exit(255)
		}
		cfg = loaded
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "cotton: %v\n", err)
		os.Exit(255)
	}
	defer f.Close()

	w, err := dungeon.Load(f, *level, *seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cotton: %v\n", err)
		os.Exit(255)
	}
	if w.Width != cfg.Board.Width || w.Height != cfg.Board.Height {
		fmt.Fprintf(os.Stderr, "cotton: note: dungeon board is %dx%d, configured default is %dx%d\n",
			w.Width, w.Height, cfg.Board.Width, cfg.Board.Height)
	}

	if *moves != "" {
		os.Exit(runScripted(w, []byte(*moves)))
	}
	os.Exit(runInteractive(w))
}

func runScripted(w *dungeon.World, inputs []byte) int {
	for i, in := range inputs {
		outcome := beat.Do(w, in)
		fmt.Print(render.Snapshot(w, len(inputs)-i-1).String())
		if code, done := exitCodeFor(outcome); done {
			return code
		}
	}
	return 0
}

func runInteractive(w *dungeon.World) int {
	reader := bufio.NewReader(os.Stdin)
	fmt.Print(render.Snapshot(w, 0).String())
	for {
		b, err := reader.ReadByte()
		if err != nil {
			return 0
		}
		if b == 'q' {
			return 0
		}
		outcome := beat.Do(w, b)
		fmt.Print(render.Snapshot(w, 0).String())
		if code, done := exitCodeFor(outcome); done {
			return code
		}
	}
}

func exitCodeFor(outcome beat.Outcome) (code int, done bool) {
	switch outcome {
	case beat.Victory:
		return 0, true
	case beat.Death:
		return 254, true
	default:
		return 0, false
	}
}
