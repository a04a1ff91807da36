package ai

import (
	"cotton/internal/combat"
	"cotton/internal/dungeon"
	"cotton/internal/geom"
	"cotton/internal/mathutil"
	"cotton/internal/movement"
)

// basicSeek is the axis-choosing pursuit behavior most enemies use. The
// tie-break cascade below, including rule 6's "dx > 0 and player.x >
// spawn.x" quirk, is preserved verbatim from the source per spec.md §9's
// explicit instruction to keep it rather than "fix" it.
func basicSeek(w *dungeon.World, idx int) {
	m := &w.Monsters[idx]
	p := w.Player()
	d := p.Pos.Sub(m.Pos)
	dx, dy := int(d.X), int(d.Y)

	vertical := chooseAxis(w, idx, dx, dy)
	m.Vertical = vertical

	var offset geom.Coord
	if vertical {
		offset = geom.C(0, int8(mathutil.IntSign(dy)))
	} else {
		offset = geom.C(int8(mathutil.IntSign(dx)), 0)
	}
	movement.EnemyMove(w, idx, offset, combat.EnemyAttack, combat.Damage)
}

func chooseAxis(w *dungeon.World, idx int, dx, dy int) bool {
	m := &w.Monsters[idx]
	p := w.Player()

	if dy == 0 {
		return false
	}
	if dx == 0 {
		return true
	}

	blockedVert := !movement.CanMove(w, idx, geom.C(0, int8(mathutil.IntSign(dy))))
	blockedHoriz := !movement.CanMove(w, idx, geom.C(int8(mathutil.IntSign(dx)), 0))
	if blockedVert {
		return false
	}
	if blockedHoriz {
		return true
	}

	if m.Pos.Y == p.PrevPos.Y {
		return false
	}
	if m.Pos.X == p.PrevPos.X {
		return true
	}

	if m.PrevPos.Y == p.Pos.Y {
		return false
	}
	if m.PrevPos.X == p.Pos.X {
		return true
	}

	if mathutil.IntAbs(dy) == 1 || mathutil.IntAbs(dx) == 1 {
		return m.Vertical
	}

	if m.PrevPos.Y == p.PrevPos.Y || m.PrevPos.X == p.PrevPos.X {
		return dx > 0 && int(p.Pos.X) > int(w.Spawn.X)
	}

	return m.Vertical
}

// diagonalSeek is the bomber's movement, which only ever steps diagonally:
// toward the player's quadrant first, then the two other diagonals on
// fallback; when the player shares a row or column it tries the two
// diagonals on the player's side.
func diagonalSeek(w *dungeon.World, idx int) {
	m := &w.Monsters[idx]
	d := w.Player().Pos.Sub(m.Pos)
	sy := int8(mathutil.IntSign(int(d.Y)))
	sx := int8(mathutil.IntSign(int(d.X)))

	switch {
	case d.Y == 0:
		tryMoves(w, idx, geom.C(sx, 1), geom.C(sx, -1))
	case d.X == 0:
		tryMoves(w, idx, geom.C(1, sy), geom.C(-1, sy))
	default:
		tryMoves(w, idx, geom.C(sx, sy), geom.C(1, -sy*int8copysign(sx)), geom.C(-1, sy*int8copysign(sx)))
	}
}

// int8copysign returns 1 if sx >= 0, else -1, as an int8 sign helper for
// the diagonal fallback offsets above.
func int8copysign(sx int8) int8 {
	if sx < 0 {
		return -1
	}
	return 1
}

// mooreSeek prefers the diagonal 8-neighbor step toward the player, with a
// left-biased axis fallback on failure (mirrored when the player is to
// the west).
func mooreSeek(w *dungeon.World, idx int) {
	m := &w.Monsters[idx]
	d := w.Player().Pos.Sub(m.Pos)
	sx := int8(mathutil.IntSign(int(d.X)))
	sy := int8(mathutil.IntSign(int(d.Y)))

	primary := geom.C(sx, sy)
	if d.X < 0 {
		tryMoves(w, idx, primary, geom.C(0, sy), geom.C(sx, 0))
	} else {
		tryMoves(w, idx, primary, geom.C(sx, 0), geom.C(0, sy))
	}
}
