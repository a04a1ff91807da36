package dungeon

import (
	"cotton/internal/geom"
	"cotton/internal/invariant"
)

func invariantInBounds(idx int, c geom.Coord) {
	invariant.Check(idx >= 0, "dungeon: coordinate %v out of bounds", c)
}

// CheckInvariants verifies the universal invariants spec.md §8 lists:
// tile<->monster back-reference consistency, no two live monsters sharing
// a tile, and an intact indestructible border. It is called by tests and
// at the end of Load; panicking here always indicates a
// bug in the simulator, never a malformed dungeon.
func (w *World) CheckInvariants() {
	seen := make(map[int]bool, len(w.Monsters))
	for i := range w.Monsters {
		m := &w.Monsters[i]
		if !m.Alive() {
			continue
		}
		idx := w.index(m.Pos)
		invariant.Check(idx >= 0, "monster %d at out-of-bounds pos %v", i, m.Pos)
		invariant.Check(w.Board[idx].Occupant == i, "monster %d at %v but tile occupant is %d", i, m.Pos, w.Board[idx].Occupant)
		invariant.Check(!seen[idx], "two live monsters share tile %v", m.Pos)
		seen[idx] = true
	}
	for idx := range w.Board {
		occ := w.Board[idx].Occupant
		if occ == NoOccupant {
			continue
		}
		invariant.Check(occ >= 0 && occ < len(w.Monsters), "tile %d has out-of-range occupant %d", idx, occ)
		m := &w.Monsters[occ]
		invariant.Check(m.Alive(), "tile %d occupant %d is dead", idx, occ)
		invariant.Check(w.index(m.Pos) == idx, "tile %d occupant %d reports pos %v", idx, occ, m.Pos)
	}
	for x := 0; x < w.Width; x++ {
		invariant.Check(w.Board[x].HP == 5, "top border breached at x=%d", x)
		invariant.Check(w.Board[(w.Height-1)*w.Width+x].HP == 5, "bottom border breached at x=%d", x)
	}
	for y := 0; y < w.Height; y++ {
		invariant.Check(w.Board[y*w.Width].HP == 5, "left border breached at y=%d", y)
		invariant.Check(w.Board[y*w.Width+w.Width-1].HP == 5, "right border breached at y=%d", y)
	}
	invariant.Check(len(w.Monsters) > 0, "no player: monster array is empty")
}
