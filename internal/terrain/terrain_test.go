package terrain

import (
	"testing"

	"cotton/internal/classdata"
	"cotton/internal/dungeon"
	"cotton/internal/geom"
)

func wallWorld() *dungeon.World {
	w := dungeon.New(10, 10)
	w.Monsters = append(w.Monsters, dungeon.Monster{Class: classdata.Player, HP: 10, Pos: geom.C(2, 2)})
	w.TileAt(geom.C(2, 2)).Occupant = dungeon.PlayerIndex
	return w
}

func TestDigFailsOnHardWall(t *testing.T) {
	w := wallWorld()
	pos := geom.C(5, 5)
	*w.TileAt(pos) = dungeon.Tile{Class: classdata.Wall, HP: classdata.HPIndestructible, Occupant: dungeon.NoOccupant}
	if Dig(w, pos, 2, false) {
		t.Errorf("power 2 should not crack an indestructible wall")
	}
}

func TestDigBreaksSoftWallToFloor(t *testing.T) {
	w := wallWorld()
	pos := geom.C(5, 5)
	*w.TileAt(pos) = dungeon.Tile{Class: classdata.Wall, HP: 2, Occupant: dungeon.NoOccupant}
	if !Dig(w, pos, 2, false) {
		t.Fatalf("power 2 should crack an hp-2 wall")
	}
	if w.TileAt(pos).Class != classdata.Floor {
		t.Errorf("a non-elemental-zone wall should become floor, got %v", w.TileAt(pos).Class)
	}
}

func TestDigZone2BecomesFire(t *testing.T) {
	w := wallWorld()
	pos := geom.C(5, 5)
	*w.TileAt(pos) = dungeon.Tile{Class: classdata.Wall, HP: 2, Zone: classdata.Zone2, Occupant: dungeon.NoOccupant}
	Dig(w, pos, 2, false)
	if w.TileAt(pos).Class != classdata.Fire {
		t.Errorf("zone-2 hp-2 wall should become fire, got %v", w.TileAt(pos).Class)
	}
}

func TestDigZone4ChainDemolition(t *testing.T) {
	w := wallWorld()
	center := geom.C(5, 5)
	*w.TileAt(center) = dungeon.Tile{Class: classdata.Wall, HP: 1, Zone: classdata.Zone4, Occupant: dungeon.NoOccupant}
	for _, off := range geom.Plus {
		*w.TileAt(center.Add(off)) = dungeon.Tile{Class: classdata.Wall, HP: 1, Zone: classdata.Zone4, Occupant: dungeon.NoOccupant}
	}
	if !Dig(w, center, 2, false) {
		t.Fatalf("expected the center dig to succeed")
	}
	for _, off := range geom.Plus {
		if w.TileAt(center.Add(off)).Class != classdata.Floor {
			t.Errorf("chain demolition should have cleared %v", off)
		}
	}
}

func TestApplyElementFireIceMakesWater(t *testing.T) {
	tile := &dungeon.Tile{Class: classdata.Fire}
	ApplyElement(tile, classdata.Ice)
	if tile.Class != classdata.Water {
		t.Errorf("fire+ice should yield water, got %v", tile.Class)
	}
}

func TestApplyElementFireWaterMakesFloor(t *testing.T) {
	tile := &dungeon.Tile{Class: classdata.Water}
	ApplyElement(tile, classdata.Fire)
	if tile.Class != classdata.Floor {
		t.Errorf("fire+water should yield floor, got %v", tile.Class)
	}
}

func TestApplyElementStairsImmutable(t *testing.T) {
	tile := &dungeon.Tile{Class: classdata.Stairs}
	ApplyElement(tile, classdata.Fire)
	if tile.Class != classdata.Stairs {
		t.Errorf("stairs must never transmute")
	}
}

func TestBombPlantReusesDeadSlot(t *testing.T) {
	w := wallWorld()
	w.Monsters = append(w.Monsters, dungeon.Monster{Class: classdata.Bomb, HP: 0})
	before := len(w.Monsters)
	BombPlant(w, geom.C(3, 3), 3)
	if len(w.Monsters) != before {
		t.Errorf("expected the dead bomb slot to be reused, not a new append")
	}
}

func TestBombDetonateDestroysTrapsAndDamagesMonsters(t *testing.T) {
	w := wallWorld()
	center := geom.C(5, 5)
	for _, off := range geom.Square3x3 {
		*w.TileAt(center.Add(off)) = dungeon.Tile{Class: classdata.Floor, Occupant: dungeon.NoOccupant}
	}
	w.Monsters = append(w.Monsters, dungeon.Monster{Class: classdata.GreenSlime, HP: 3, Pos: center.Add(geom.C(1, 0))})
	w.TileAt(center.Add(geom.C(1, 0))).Occupant = len(w.Monsters) - 1

	var hit int
	BombDetonate(w, center, func(w *dungeon.World, targetIdx int, dmg int, dir geom.Coord, dtype dungeon.DamageType) {
		hit++
		w.Monsters[targetIdx].HP -= dmg
	})
	if !w.BombExploded {
		t.Errorf("BombExploded should be set")
	}
	if !w.TileAt(center).TrapDestroyed {
		t.Errorf("center tile should have traps destroyed")
	}
	if hit != 1 {
		t.Errorf("expected exactly one monster hit, got %d", hit)
	}
}
