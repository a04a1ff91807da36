package dungeon

import (
	"testing"

	"cotton/internal/classdata"
	"cotton/internal/geom"
)

func TestCloneIsIndependent(t *testing.T) {
	w := freshPlayerWorld()
	clone := w.Clone()
	clone.Player().HP = 1
	clone.Board[clone.index(geom.C(2, 2))].Class = classdata.Fire
	clone.Monsters = append(clone.Monsters, Monster{Class: classdata.Bat, HP: 3})

	if w.Player().HP == 1 {
		t.Errorf("mutating the clone's player leaked into the original")
	}
	if w.Board[w.index(geom.C(2, 2))].Class == classdata.Fire {
		t.Errorf("mutating the clone's board leaked into the original")
	}
	if len(w.Monsters) == len(clone.Monsters) {
		t.Errorf("appending to the clone's monster slice leaked into the original")
	}
}

func TestCloneRoundTripEqual(t *testing.T) {
	w := freshPlayerWorld()
	clone := w.Clone()
	if !Equal(w, clone) {
		t.Errorf("a freshly cloned world should compare equal to its source")
	}
	clone.CurrentBeat = 7
	if Equal(w, clone) {
		t.Errorf("Equal should notice a divergent CurrentBeat")
	}
}
