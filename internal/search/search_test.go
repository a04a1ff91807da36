package search

import (
	"testing"

	"cotton/internal/classdata"
	"cotton/internal/dungeon"
	"cotton/internal/geom"
)

func openRoomWorld() *dungeon.World {
	w := dungeon.New(10, 10)
	for y := 1; y < 9; y++ {
		for x := 1; x < 9; x++ {
			*w.TileAt(geom.C(int8(x), int8(y))) = dungeon.Tile{Class: classdata.Floor, Occupant: dungeon.NoOccupant}
		}
	}
	w.Monsters = append(w.Monsters, dungeon.Monster{Class: classdata.Player, HP: 20, Pos: geom.C(2, 2)})
	w.TileAt(geom.C(2, 2)).Occupant = dungeon.PlayerIndex
	w.Stairs = geom.C(7, 7)
	*w.TileAt(w.Stairs) = dungeon.Tile{Class: classdata.Stairs, Occupant: dungeon.NoOccupant}
	w.MinibossKilled = true
	w.SarcophagusKilled = true
	return w
}

func TestFitnessAtStairsIsBeatMinusBothKillBonuses(t *testing.T) {
	w := openRoomWorld()
	w.Player().Pos = w.Stairs
	if f := Fitness(w); f != int(w.CurrentBeat)-4 {
		t.Errorf("expected fitness == current_beat - 4 at the stairs with both kills, got %d", f)
	}
}

func TestFitnessIsMaxedOnDeadPlayer(t *testing.T) {
	w := openRoomWorld()
	w.Player().HP = 0
	if Fitness(w) != 255 {
		t.Errorf("expected fitness 255 for a dead player")
	}
}

func TestWonRequiresStairsAndBothKills(t *testing.T) {
	w := openRoomWorld()
	w.Player().Pos = w.Stairs
	if !Won(w) {
		t.Errorf("expected Won to be true at the stairs with both kills done")
	}
	w.SarcophagusKilled = false
	if Won(w) {
		t.Errorf("expected Won to be false without the sarcophagus kill")
	}
}

func TestFrontierPopsLowestFitnessBucketFirst(t *testing.T) {
	f := NewFrontier()
	high := &Route{Inputs: []byte("high")}
	low := &Route{Inputs: []byte("low")}
	f.Push(high, 40)
	f.Push(low, 2)

	got, ok := f.Pop()
	if !ok || string(got.Inputs) != "low" {
		t.Fatalf("expected the low-fitness route to pop first, got %v", got)
	}
	got, ok = f.Pop()
	if !ok || string(got.Inputs) != "high" {
		t.Fatalf("expected the high-fitness route to pop second, got %v", got)
	}
	if _, ok := f.Pop(); ok {
		t.Errorf("expected the frontier to be empty")
	}
}

func TestFrontierEvictsWorstBucketOnOverflow(t *testing.T) {
	f := NewFrontier()
	for i := 0; i < QueueCap; i++ {
		f.Push(&Route{}, 0)
	}
	// Pushing past the cap should evict from the worst (highest-fitness)
	// bucket rather than growing past QueueCap.
	f.Push(&Route{Inputs: []byte("worst")}, 63)
	if f.Len() != QueueCap {
		t.Fatalf("expected size capped at %d, got %d", QueueCap, f.Len())
	}
	if len(f.buckets[63]) != 0 {
		t.Errorf("the just-pushed worst-bucket entry should have been evicted, got %d entries in bucket 63", len(f.buckets[63]))
	}
}

func TestSolveFindsAWinningRouteInAnOpenRoom(t *testing.T) {
	w := openRoomWorld()
	// Both kills are already marked done; the player just needs to step
	// onto the adjacent stairs tile to win.
	w.Player().Pos = geom.C(6, 7)
	w.TileAt(geom.C(2, 2)).Occupant = dungeon.NoOccupant
	w.TileAt(geom.C(6, 7)).Occupant = dungeon.PlayerIndex

	solutions := Solve(w, 1)
	if len(solutions) == 0 {
		t.Fatalf("expected at least one winning route from an open room next to the stairs")
	}
}
