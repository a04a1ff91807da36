// Package fuzzer implements the coverage-guided input fuzzer of
// spec.md §4.10: mutate previously-tried input sequences, run each
// candidate against a fresh clone of the initial world, and record
// crashes and run-ending routes (victory or death) to append-only files. Runs single-threaded
// and in-process, recovering invariant.Violation panics in place of the
// source's forked-child-plus-signal crash detection (spec.md §9,
// "Fork-based fuzzing -> in-process").
package fuzzer

import (
	"fmt"
	"io"
	"math/rand"

	"cotton/internal/beat"
	"cotton/internal/dungeon"
	"cotton/internal/invariant"
)

// DefaultAlphabet is the fuzzer's input alphabet: move in the four
// cardinal directions or plant a bomb. Unlike the solver, the fuzzer
// never emits 'z' (scroll), since item use is outside this core's scope.
var DefaultAlphabet = []byte("efij<")

// Crash is a recorded invariant violation, tagged with the exact input
// sequence that triggered it so it can be replayed.
type Crash struct {
	Inputs  []byte
	Message string
}

// Route is a recorded terminal outcome (victory or death) for some
// explored input sequence.
type Route struct {
	Inputs  []byte
	Outcome beat.Outcome
}

// Fuzzer holds the mutable state of one fuzzing run: the trie of
// sequences already tried, the queue of sequences still worth mutating
// further, and the output sinks for crashes and routes.
type Fuzzer struct {
	initial      *dungeon.World
	alphabet     []byte
	maxPasses    int
	rng          *rand.Rand
	trie         *trie
	queue        []queueEntry
	crashes      io.Writer
	routes       io.Writer
	CrashesFound []Crash
	RoutesFound  []Route
}

type queueEntry struct {
	inputs []byte
	cycle  int
}

// New builds a Fuzzer seeded from initial's own World.Seed, writing
// discovered crashes and routes to crashesW/routesW as they are found.
func New(initial *dungeon.World, alphabet []byte, maxPasses int, crashesW, routesW io.Writer) *Fuzzer {
	if alphabet == nil {
		alphabet = DefaultAlphabet
	}
	f := &Fuzzer{
		initial:   initial,
		alphabet:  alphabet,
		maxPasses: maxPasses,
		rng:       rand.New(rand.NewSource(int64(initial.Seed))),
		trie:      newTrie(),
		crashes:   crashesW,
		routes:    routesW,
	}
	f.trie.insert(nil)
	f.queue = append(f.queue, queueEntry{inputs: nil})
	return f
}

// Run drains the queue, applying up to maxPasses mutation passes per
// entry and enqueueing every newly-discovered, still-ongoing sequence it
// finds along the way. It stops once the queue is empty.
func (f *Fuzzer) Run() {
	for len(f.queue) > 0 {
		entry := f.queue[0]
		f.queue = f.queue[1:]

		for pass := 0; pass < f.maxPasses; pass++ {
			k := f.rng.Intn(entry.cycle + 1)
			candidate := mutateStacked(f.rng, f.alphabet, entry.inputs, k)
			if !f.trie.insert(candidate) {
				continue
			}

			outcome, crashed, msg := f.simulate(candidate)
			switch {
			case crashed:
				f.recordCrash(candidate, msg)
			case outcome == beat.Victory, outcome == beat.Death:
				f.recordRoute(candidate, outcome)
			default:
				entry.cycle++
				f.queue = append(f.queue, queueEntry{inputs: candidate, cycle: entry.cycle})
			}
		}
	}
}

// simulate replays inputs from a fresh clone of the initial world,
// recovering an invariant.Violation into a crash report instead of
// letting it unwind out of the fuzzer loop.
func (f *Fuzzer) simulate(inputs []byte) (outcome beat.Outcome, crashed bool, message string) {
	defer func() {
		if r := recover(); r != nil {
			v, ok := r.(invariant.Violation)
			if !ok {
				panic(r)
			}
			crashed = true
			message = v.Message
		}
	}()

	w := f.initial.Clone()
	for _, in := range inputs {
		outcome = beat.Do(w, in)
		if outcome != beat.Ongoing {
			break
		}
	}
	return outcome, false, ""
}

func (f *Fuzzer) recordCrash(inputs []byte, message string) {
	c := Crash{Inputs: append([]byte(nil), inputs...), Message: message}
	f.CrashesFound = append(f.CrashesFound, c)
	if f.crashes != nil {
		fmt.Fprintf(f.crashes, "%s\t%s\n", string(c.Inputs), c.Message)
	}
}

func (f *Fuzzer) recordRoute(inputs []byte, outcome beat.Outcome) {
	r := Route{Inputs: append([]byte(nil), inputs...), Outcome: outcome}
	f.RoutesFound = append(f.RoutesFound, r)
	if f.routes != nil {
		fmt.Fprintf(f.routes, "%s\t%s\n", string(r.Inputs), outcomeName(outcome))
	}
}

func outcomeName(o beat.Outcome) string {
	switch o {
	case beat.Victory:
		return "victory"
	case beat.Death:
		return "death"
	default:
		return "ongoing"
	}
}
