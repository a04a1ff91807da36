package fov

import (
	"testing"

	"cotton/internal/classdata"
	"cotton/internal/dungeon"
	"cotton/internal/geom"
)

func smallWorld() *dungeon.World {
	w := dungeon.New(20, 20)
	w.Monsters = append(w.Monsters, dungeon.Monster{Class: classdata.Player, HP: 10, Pos: geom.C(5, 5)})
	w.TileAt(geom.C(5, 5)).Occupant = dungeon.PlayerIndex
	return w
}

func TestCanSeeRejectsOutOfBoundingBox(t *testing.T) {
	w := smallWorld()
	if CanSee(w, geom.C(18, 18)) {
		t.Errorf("target far outside the +-10/+-5 box should be rejected")
	}
}

func TestCanSeeOpenFloorIsVisible(t *testing.T) {
	w := smallWorld()
	if !CanSee(w, geom.C(7, 5)) {
		t.Errorf("unobstructed floor two tiles away should be visible")
	}
}

func TestCanSeeBlockedByWall(t *testing.T) {
	w := smallWorld()
	w.TileAt(geom.C(6, 5)).Class = classdata.Wall
	if CanSee(w, geom.C(7, 5)) {
		t.Errorf("a wall directly between the player and the target should block sight")
	}
}

func TestAdjustLightsSplatsAndDecays(t *testing.T) {
	w := smallWorld()
	center := geom.C(10, 10)
	AdjustLights(w, center, 1)
	if w.TileAt(center).Light <= w.TileAt(geom.C(12, 10)).Light {
		t.Errorf("light should fall off with distance from center")
	}
}

func TestAdjustLightsNegativeNeverGoesBelowZero(t *testing.T) {
	w := smallWorld()
	AdjustLights(w, geom.C(10, 10), -1)
	if w.TileAt(geom.C(10, 10)).Light < 0 {
		t.Errorf("light should clamp at zero")
	}
}

func TestCastLightRevealsLitVisibleTiles(t *testing.T) {
	w := smallWorld()
	AdjustLights(w, w.Player().Pos, 1)
	CastLight(w)
	if !w.TileAt(w.Player().Pos).Revealed {
		t.Errorf("the player's own well-lit tile should be revealed")
	}
}
