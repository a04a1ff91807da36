package search

import (
	"context"

	"golang.org/x/sync/errgroup"

	"cotton/internal/beat"
	"cotton/internal/dungeon"
)

const (
	// ValidationSeeds is how many re-seeded replays a candidate winning
	// route is checked against.
	ValidationSeeds = 256
	// ValidationThreshold is the minimum number of those replays that
	// must also win for the route to be recorded (spec.md §4.10).
	ValidationThreshold = 64
)

// Validate replays inputs from fresh copies of initial seeded 0..255 and
// reports how many of those replays also reach a winning state. Board
// geometry is unchanged across seeds; only seed-derived randomness (enemy
// AI via internal/ai's enemySeedFor) differs, so this measures how much a
// route depends on favorable RNG rather than on level layout.
func Validate(initial *dungeon.World, inputs []byte) int {
	results := make([]bool, ValidationSeeds)
	g, _ := errgroup.WithContext(context.Background())
	for s := 0; s < ValidationSeeds; s++ {
		s := s
		g.Go(func() error {
			w := initial.Clone()
			w.Seed = uint64(s)
			for _, in := range inputs {
				if beat.Do(w, in) != beat.Ongoing {
					break
				}
			}
			results[s] = Won(w)
			return nil
		})
	}
	_ = g.Wait()

	successes := 0
	for _, ok := range results {
		if ok {
			successes++
		}
	}
	return successes
}
