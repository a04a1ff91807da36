package dungeon

import (
	"testing"

	"cotton/internal/classdata"
	"cotton/internal/geom"
)

func freshPlayerWorld() *World {
	w := New(5, 5)
	w.Monsters = append(w.Monsters, Monster{Class: classdata.Player, HP: 10, Pos: geom.C(1, 1)})
	w.TileAt(geom.C(1, 1)).Occupant = PlayerIndex
	return w
}

func TestCheckInvariantsPassesOnFreshWorld(t *testing.T) {
	w := freshPlayerWorld()
	w.CheckInvariants() // must not panic
}

func TestCheckInvariantsCatchesOccupantMismatch(t *testing.T) {
	w := freshPlayerWorld()
	w.Board[w.index(geom.C(1, 1))].Occupant = NoOccupant
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic on occupant/position mismatch")
		}
	}()
	w.CheckInvariants()
}

func TestCheckInvariantsCatchesDuplicateOccupancy(t *testing.T) {
	w := freshPlayerWorld()
	w.Monsters = append(w.Monsters, Monster{Class: classdata.GreenSlime, HP: 5, Pos: geom.C(1, 1)})
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic on duplicate tile occupancy")
		}
	}()
	w.CheckInvariants()
}

func TestCheckInvariantsCatchesBrokenBorder(t *testing.T) {
	w := freshPlayerWorld()
	w.Board[0].HP = 1
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic on a breached border")
		}
	}()
	w.CheckInvariants()
}
