// Package render turns a dungeon.World into a plain-text snapshot: board
// glyphs plus a status line. It has no terminal coupling (no ANSI, no raw
// mode) -- that belongs to cmd/cotton alone, per spec.md §6's "driver-only"
// scoping of the terminal layer. Grounded on the teacher's
// internal/game/rendering.go in spirit only: where that file walks a
// raycast frame buffer, this one walks the flat tile/monster arrays
// directly, since there is no pixel buffer in a headless simulator.
package render

import (
	"fmt"
	"strings"

	"cotton/internal/classdata"
	"cotton/internal/dungeon"
)

// StatusLine carries the scalar fields a driver or fuzzer crash report
// wants alongside the board: player HP, the current beat, and (for replay
// tooling) how many queued inputs remain.
type StatusLine struct {
	PlayerHP       int
	CurrentBeat    uint64
	InputsRemaining int
}

// View is the pure, read-only rendering snapshot: one string per board row
// (top to bottom) plus the status line. Nothing in View is ever fed back
// into the simulator.
type View struct {
	Rows   []string
	Status StatusLine
}

// Snapshot walks w's board and monster array and renders a View. Revealed
// tiles and the monsters standing on them draw as their class glyph;
// unrevealed tiles draw as a space, other than the indestructible border
// which always draws as a wall (it is never meaningfully hidden).
func Snapshot(w *dungeon.World, inputsRemaining int) View {
	rows := make([]string, w.Height)
	var b strings.Builder
	for y := 0; y < w.Height; y++ {
		b.Reset()
		for x := 0; x < w.Width; x++ {
			b.WriteRune(glyphAt(w, x, y))
		}
		rows[y] = b.String()
	}
	return View{
		Rows: rows,
		Status: StatusLine{
			PlayerHP:        w.Player().HP,
			CurrentBeat:     w.CurrentBeat,
			InputsRemaining: inputsRemaining,
		},
	}
}

func glyphAt(w *dungeon.World, x, y int) rune {
	idx := y*w.Width + x
	tile := w.Board[idx]
	if tile.HP == classdata.HPIndestructible && tile.Class == classdata.Wall {
		return tile.Class.Glyph()
	}
	if !tile.Revealed {
		return ' '
	}
	if tile.Occupant != dungeon.NoOccupant {
		m := w.Monsters[tile.Occupant]
		if m.Alive() {
			return classdata.Info(m.Class).Glyph
		}
	}
	return tile.Class.Glyph()
}

// String joins the board rows with a trailing status line, the shape
// cmd/cotton prints each beat.
func (v View) String() string {
	var b strings.Builder
	for _, row := range v.Rows {
		b.WriteString(row)
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "hp=%d beat=%d inputs_remaining=%d\n",
		v.Status.PlayerHP, v.Status.CurrentBeat, v.Status.InputsRemaining)
	return b.String()
}
