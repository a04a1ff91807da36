package fuzzer

import (
	"bytes"
	"testing"

	"cotton/internal/beat"
	"cotton/internal/classdata"
	"cotton/internal/dungeon"
	"cotton/internal/geom"
)

func openRoomWorld() *dungeon.World {
	w := dungeon.New(8, 8)
	for y := 1; y < 7; y++ {
		for x := 1; x < 7; x++ {
			*w.TileAt(geom.C(int8(x), int8(y))) = dungeon.Tile{Class: classdata.Floor, Occupant: dungeon.NoOccupant}
		}
	}
	w.Monsters = append(w.Monsters, dungeon.Monster{Class: classdata.Player, HP: 20, Pos: geom.C(2, 2)})
	w.TileAt(geom.C(2, 2)).Occupant = dungeon.PlayerIndex
	w.Stairs = geom.C(5, 5)
	*w.TileAt(w.Stairs) = dungeon.Tile{Class: classdata.Stairs, Occupant: dungeon.NoOccupant}
	w.MinibossKilled = true
	return w
}

func TestNewSeedsQueueWithEmptySequence(t *testing.T) {
	f := New(openRoomWorld(), nil, 4, nil, nil)
	if len(f.queue) != 1 || f.queue[0].inputs != nil {
		t.Fatalf("expected the queue to start with a single empty-sequence entry")
	}
}

func TestSimulateReportsOngoingOutcomeWithoutCrashing(t *testing.T) {
	w := openRoomWorld()
	f := New(w, nil, 4, nil, nil)
	outcome, crashed, msg := f.simulate([]byte{'f'})
	if crashed {
		t.Fatalf("a plain move in an open room should never crash, got %q", msg)
	}
	if outcome != beat.Ongoing {
		t.Errorf("expected Ongoing, got %v", outcome)
	}
}

func TestRunRecordsAWinningRouteOntoStairs(t *testing.T) {
	w := openRoomWorld()
	w.Player().Pos = geom.C(4, 5)
	w.TileAt(geom.C(2, 2)).Occupant = dungeon.NoOccupant
	w.TileAt(geom.C(4, 5)).Occupant = dungeon.PlayerIndex

	var crashesBuf, routesBuf bytes.Buffer
	f := New(w, []byte("i"), 64, &crashesBuf, &routesBuf)
	f.Run()

	if len(f.RoutesFound) == 0 {
		t.Fatalf("expected at least one recorded route from a single-alphabet walk toward the stairs")
	}
	if routesBuf.Len() == 0 {
		t.Errorf("expected the routes writer to have received output")
	}
}
