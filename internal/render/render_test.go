package render

import (
	"strings"
	"testing"

	"cotton/internal/classdata"
	"cotton/internal/dungeon"
	"cotton/internal/geom"
)

func smallWorld() *dungeon.World {
	w := dungeon.New(4, 4)
	*w.TileAt(geom.C(2, 2)) = dungeon.Tile{Class: classdata.Floor, Occupant: dungeon.NoOccupant, Revealed: true}
	w.Monsters = append(w.Monsters, dungeon.Monster{Class: classdata.Player, HP: 7, Pos: geom.C(2, 2)})
	w.TileAt(geom.C(2, 2)).Occupant = dungeon.PlayerIndex
	return w
}

func TestSnapshotRowCountMatchesHeight(t *testing.T) {
	w := smallWorld()
	v := Snapshot(w, 0)
	if len(v.Rows) != w.Height {
		t.Fatalf("expected %d rows, got %d", w.Height, len(v.Rows))
	}
	for _, row := range v.Rows {
		if len(row) != w.Width {
			t.Errorf("expected row width %d, got %d (%q)", w.Width, len(row), row)
		}
	}
}

func TestSnapshotDrawsPlayerGlyphOnRevealedTile(t *testing.T) {
	w := smallWorld()
	v := Snapshot(w, 0)
	if r := []rune(v.Rows[2])[2]; r != '@' {
		t.Errorf("expected the player glyph '@' at (2,2), got %q", r)
	}
}

func TestSnapshotHidesUnrevealedFloorAsSpace(t *testing.T) {
	w := smallWorld()
	*w.TileAt(geom.C(1, 1)) = dungeon.Tile{Class: classdata.Floor, Occupant: dungeon.NoOccupant, Revealed: false}
	v := Snapshot(w, 0)
	if r := []rune(v.Rows[1])[1]; r != ' ' {
		t.Errorf("expected unrevealed floor to render as a space, got %q", r)
	}
}

func TestSnapshotAlwaysShowsTheIndestructibleBorder(t *testing.T) {
	w := smallWorld()
	v := Snapshot(w, 0)
	if r := []rune(v.Rows[0])[0]; r != '#' {
		t.Errorf("expected the border wall glyph at (0,0), got %q", r)
	}
}

func TestViewStringIncludesStatusLine(t *testing.T) {
	w := smallWorld()
	v := Snapshot(w, 3)
	s := v.String()
	if !strings.Contains(s, "hp=7") || !strings.Contains(s, "inputs_remaining=3") {
		t.Errorf("expected the status line to report hp and inputs_remaining, got %q", s)
	}
}
