package beat

import (
	"testing"

	"cotton/internal/classdata"
	"cotton/internal/dungeon"
	"cotton/internal/geom"
)

func emptyRoomWorld() *dungeon.World {
	w := dungeon.New(10, 10)
	for y := 1; y < 9; y++ {
		for x := 1; x < 9; x++ {
			*w.TileAt(geom.C(int8(x), int8(y))) = dungeon.Tile{Class: classdata.Floor, Occupant: dungeon.NoOccupant}
		}
	}
	w.Monsters = append(w.Monsters, dungeon.Monster{Class: classdata.Player, HP: 20, Pos: geom.C(5, 5)})
	w.TileAt(geom.C(5, 5)).Occupant = dungeon.PlayerIndex
	return w
}

func TestConfusionReversesInput(t *testing.T) {
	w := emptyRoomWorld()
	w.Player().Confusion = 1
	Do(w, 'f') // down, but confusion negates it to up
	if w.Player().Pos != geom.C(5, 4) {
		t.Fatalf("expected player at (5,4), got %v", w.Player().Pos)
	}
	if w.Player().Confusion != 0 {
		t.Errorf("confusion should have decremented to 0")
	}
}

func TestCurrentBeatIncrementsExactlyOnce(t *testing.T) {
	w := emptyRoomWorld()
	before := w.CurrentBeat
	Do(w, 'z')
	if w.CurrentBeat != before+1 {
		t.Errorf("expected exactly one increment, got %d -> %d", before, w.CurrentBeat)
	}
}

func TestBombSymmetricBlast(t *testing.T) {
	w := emptyRoomWorld()
	bombPos := geom.C(7, 7)
	w.Monsters = append(w.Monsters, dungeon.Monster{Class: classdata.Bomb, HP: 1, Pos: bombPos, Delay: 1})
	bombIdx := len(w.Monsters) - 1
	w.TileAt(bombPos).Occupant = bombIdx
	slimePos := geom.C(8, 8)
	w.Monsters = append(w.Monsters, dungeon.Monster{Class: classdata.GreenSlime, HP: 3, Pos: slimePos})
	slimeIdx := len(w.Monsters) - 1
	w.TileAt(slimePos).Occupant = slimeIdx

	Do(w, 'z')

	if w.Monsters[slimeIdx].Alive() {
		t.Errorf("slime caught in the blast should be dead")
	}
	if !w.BombExploded {
		t.Errorf("BombExploded should be set")
	}
	if w.TileAt(bombPos).Class != classdata.Floor || w.TileAt(slimePos).Class != classdata.Floor {
		t.Errorf("floor tiles in the blast should remain floor")
	}
}

func TestVictoryGateRequiresMinibossKilled(t *testing.T) {
	w := emptyRoomWorld()
	w.Stairs = geom.C(6, 5)
	*w.TileAt(w.Stairs) = dungeon.Tile{Class: classdata.Stairs, Occupant: dungeon.NoOccupant}
	if Do(w, 'i') == Victory {
		t.Fatalf("standing on stairs without the miniboss dead should not win")
	}
	w.MinibossKilled = true
	if Do(w, 'z') != Victory {
		t.Errorf("standing on stairs with the miniboss dead should win")
	}
}

func TestDeathOutcomeWhenPlayerHPDropsToZero(t *testing.T) {
	w := emptyRoomWorld()
	w.Player().HP = 0
	if Do(w, 'z') != Death {
		t.Errorf("a dead player should report Death")
	}
}

func TestFireTileDamagesStationaryPlayer(t *testing.T) {
	w := emptyRoomWorld()
	*w.TileAt(w.Player().Pos) = dungeon.Tile{Class: classdata.Fire, Occupant: dungeon.PlayerIndex}
	before := w.Player().HP
	Do(w, 'z')
	if w.Player().HP != before-2 {
		t.Errorf("standing still on fire should cost 2 hp, got %d -> %d", before, w.Player().HP)
	}
}
