// Package search implements the best-first route solver of spec.md §4.10:
// given a loaded dungeon, find an input sequence that reaches the stairs
// with the miniboss and sarcophagus both dead, and confirm the route is
// robust by replaying it against 256 differently-seeded copies of the
// same board. Grounded on the teacher's internal/threading worker pool
// (internal/search/workerpool.go) for the concurrent exploration fan-out.
package search

import (
	"sync"

	"cotton/internal/beat"
	"cotton/internal/dungeon"
	"cotton/internal/mathutil"
)

const (
	// NumBuckets is the Frontier's fitness-indexed bucket count.
	NumBuckets = 64
	// QueueCap bounds the Frontier's total size; Push evicts the worst
	// bucket's newest entry on overflow.
	QueueCap = 65536
	// FitnessSlack bounds how much worse than the best fitness seen so
	// far a route may be and still get enqueued.
	FitnessSlack = 6
)

// Inputs is the six one-beat extensions the solver tries from every
// popped route (spec.md §4.10's "each of 6 possible inputs").
var Inputs = [6]byte{'e', 'f', 'i', 'j', '<', 'z'}

// Route is a queued partial path: the world snapshot it leads to and the
// full input string that produced it from the initial state.
type Route struct {
	World  *dungeon.World
	Inputs []byte
}

// Fitness scores w: 255 if the player is dead, else current_beat minus
// two points per major kill plus a fraction of the remaining distance to
// the stairs (spec.md §4.10, the "newer variant" per spec.md §9).
func Fitness(w *dungeon.World) int {
	if !w.Player().Alive() {
		return 255
	}
	miniboss, saro := 0, 0
	if w.MinibossKilled {
		miniboss = 1
	}
	if w.SarcophagusKilled {
		saro = 1
	}
	dist := w.Player().Pos.Sub(w.Stairs).L1()
	return int(w.CurrentBeat) - 2*miniboss - 2*saro + dist*2/5
}

// Won reports whether w is a winning state: the player stands on the
// stairs with both the miniboss and the sarcophagus dead.
func Won(w *dungeon.World) bool {
	return w.Player().Alive() && w.Player().Pos == w.Stairs &&
		w.MinibossKilled && w.SarcophagusKilled
}

func bucketFor(fitness int) int {
	return mathutil.IntMax(0, mathutil.IntMin(fitness, NumBuckets-1))
}

// Frontier is the solver's 64-bucket fitness-indexed priority queue.
// Lower fitness buckets pop first; entries within a bucket pop FIFO.
type Frontier struct {
	mu      sync.Mutex
	buckets [NumBuckets][]*Route
	size    int
}

// NewFrontier returns an empty Frontier.
func NewFrontier() *Frontier {
	return &Frontier{}
}

// Push enqueues r under the bucket for fitness, evicting the worst
// bucket's newest entry if this push would exceed QueueCap.
func (f *Frontier) Push(r *Route, fitness int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b := bucketFor(fitness)
	f.buckets[b] = append(f.buckets[b], r)
	f.size++
	if f.size > QueueCap {
		f.evictWorstLocked()
	}
}

func (f *Frontier) evictWorstLocked() {
	for b := NumBuckets - 1; b >= 0; b-- {
		if n := len(f.buckets[b]); n > 0 {
			f.buckets[b] = f.buckets[b][:n-1]
			f.size--
			return
		}
	}
}

// Pop removes and returns the route in the lowest non-empty bucket.
func (f *Frontier) Pop() (*Route, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for b := 0; b < NumBuckets; b++ {
		if len(f.buckets[b]) > 0 {
			r := f.buckets[b][0]
			f.buckets[b] = f.buckets[b][1:]
			f.size--
			return r, true
		}
	}
	return nil, false
}

// Len reports the Frontier's current total size.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.size
}

// Solution is a winning route that passed seed validation.
type Solution struct {
	Inputs    []byte
	Successes int
}

// Solve runs the best-first search from initial until the frontier runs
// dry, returning every winning route that cleared the 64/256 validation
// threshold. workers <= 0 means GOMAXPROCS-many.
func Solve(initial *dungeon.World, workers int) []Solution {
	frontier := NewFrontier()
	frontier.Push(&Route{World: initial.Clone()}, Fitness(initial))

	var mu sync.Mutex
	bestScore := Fitness(initial)
	var solutions []Solution

	pool := NewWorkerPool(workers)
	pool.Start()
	defer pool.Stop()

	for {
		route, ok := frontier.Pop()
		if !ok {
			break
		}
		for _, in := range Inputs {
			in, route := in, route
			pool.Submit(func() {
				extendRoute(initial, route, in, frontier, &mu, &bestScore, &solutions)
			})
		}
		pool.Wait()
	}
	return solutions
}

func extendRoute(initial *dungeon.World, route *Route, in byte, frontier *Frontier, mu *sync.Mutex, bestScore *int, solutions *[]Solution) {
	next := route.World.Clone()
	beat.Do(next, in)

	nextInputs := make([]byte, len(route.Inputs)+1)
	copy(nextInputs, route.Inputs)
	nextInputs[len(route.Inputs)] = in

	if Won(next) {
		successes := Validate(initial, nextInputs)
		if successes >= ValidationThreshold {
			mu.Lock()
			*solutions = append(*solutions, Solution{Inputs: nextInputs, Successes: successes})
			mu.Unlock()
		}
		return
	}

	fitness := Fitness(next)
	mu.Lock()
	withinSlack := fitness < *bestScore+FitnessSlack
	if fitness < *bestScore {
		*bestScore = fitness
	}
	mu.Unlock()

	if withinSlack {
		frontier.Push(&Route{World: next, Inputs: nextInputs}, fitness)
	}
}
