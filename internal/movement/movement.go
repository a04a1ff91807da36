// Package movement implements the simulator's movement primitives:
// CanMove/BeforeMove/Move/ForcedMove, and the enemy/player turn
// resolution built on top of them (spec.md §4.1). Grounded on the
// teacher's internal/collision CanMoveTo bounds-and-occupancy checks and
// internal/game/tb_combat.go's monsterMoveTurnBased sequencing, adapted
// from continuous-coordinate collision to the grid's index-based
// occupancy model.
package movement

import (
	"cotton/internal/classdata"
	"cotton/internal/dungeon"
	"cotton/internal/geom"
	"cotton/internal/terrain"
)

// Outcome is the result of an attempted enemy or player action.
type Outcome int

const (
	MoveFail Outcome = iota
	MoveSuccess
	MoveAttack
	MoveSpecial
)

// AttackFunc performs an attacker's attack on whatever occupies the
// attacker's destination tile. Injected by the combat package so that
// movement need not import it (combat already depends on movement for
// ForcedMove-based knockback).
type AttackFunc func(w *dungeon.World, attackerIdx int, dir geom.Coord)

// DamageFunc applies raw damage to a monster, bypassing attack-specific
// exceptions. Used for trampling and for the player's own weapon hits.
type DamageFunc func(w *dungeon.World, targetIdx int, dmg int, dir geom.Coord, dtype dungeon.DamageType)

// NoAttack is a placeholder AttackFunc for ForcedMove calls that can
// never land on the player (e.g. the monster a lunge pushes).
func NoAttack(w *dungeon.World, attackerIdx int, dir geom.Coord) {}

// CanMove reports whether the monster at idx may step by offset.
func CanMove(w *dungeon.World, idx int, offset geom.Coord) bool {
	m := &w.Monsters[idx]
	dest := m.Pos.Add(offset)
	if !w.InBounds(dest) {
		return false
	}
	if occ := w.MonsterAt(dest); occ != nil {
		return occ == w.Player()
	}
	destTile := w.TileAt(dest)
	if w.TileAt(m.Pos).Class == classdata.Wall {
		// Only SPIDER can be embedded in a wall.
		return destTile.Class == classdata.Wall && !destTile.Torch
	}
	return destTile.Class != classdata.Wall
}

// BeforeMove is the universal pre-move filter: freeze, water, and tar all
// consume the move without displacement.
func BeforeMove(w *dungeon.World, idx int) bool {
	m := &w.Monsters[idx]
	if m.Freeze > 0 {
		return false
	}
	info := classdata.Info(m.Class)
	tile := w.TileAt(m.Pos)
	if tile.Class == classdata.Water && !info.Flying {
		tile.Class = classdata.Floor
		return false
	}
	if tile.Class == classdata.Tar && !info.Flying && !m.Untrapped {
		m.Untrapped = true
		return false
	}
	return true
}

// Move relocates the monster at idx to dest unconditionally, updating
// tile back-references and move history.
func Move(w *dungeon.World, idx int, dest geom.Coord) {
	m := &w.Monsters[idx]
	w.TileAt(m.Pos).Occupant = dungeon.NoOccupant
	m.PrevPos = m.Pos
	m.Pos = dest
	m.Untrapped = false
	w.TileAt(dest).Occupant = idx
}

// ForcedMove is used by wind, bounce traps, and knockback. It ignores
// confusion, delay, and digging: it either attacks the player, steps
// into empty space, or silently fails.
func ForcedMove(w *dungeon.World, idx int, offset geom.Coord, attack AttackFunc) Outcome {
	if !BeforeMove(w, idx) {
		return MoveSpecial
	}
	m := &w.Monsters[idx]
	dest := m.Pos.Add(offset)
	if !w.InBounds(dest) {
		return MoveFail
	}
	if occ := w.MonsterAt(dest); occ != nil {
		if occ == w.Player() {
			attack(w, idx, offset)
			return MoveAttack
		}
		return MoveFail
	}
	if w.TileAt(dest).Class == classdata.Wall {
		return MoveFail
	}
	Move(w, idx, dest)
	return MoveSuccess
}

// Knockback pushes the monster at idx one step in dir and sets its
// post-knockback delay.
func Knockback(w *dungeon.World, idx int, dir geom.Coord, delay int) {
	ForcedMove(w, idx, dir, NoAttack)
	w.Monsters[idx].Delay = delay
}

// EnemyMove is enemy_move(m, offset) from spec.md §4.1: set the class
// cooldown, try the move, and fall back to trampling or digging before
// giving up.
func EnemyMove(w *dungeon.World, idx int, offset geom.Coord, attack AttackFunc, damage DamageFunc) Outcome {
	m := &w.Monsters[idx]
	info := classdata.Info(m.Class)
	m.Delay = info.BeatDelay

	if !BeforeMove(w, idx) {
		return MoveSpecial
	}
	if m.Confusion > 0 {
		offset = offset.Neg()
	}
	dest := m.Pos.Add(offset)
	if occ := w.MonsterAt(dest); occ != nil && occ == w.Player() {
		attack(w, idx, offset)
		return MoveAttack
	}
	if CanMove(w, idx, offset) {
		Move(w, idx, dest)
		return MoveSuccess
	}
	if !m.Aggro && info.Dig == 4 {
		for _, off := range geom.Plus {
			pos := m.Pos.Add(off)
			if !w.InBounds(pos) {
				continue
			}
			if t := w.TileAt(pos).Occupant; t != dungeon.NoOccupant {
				damage(w, t, 1, off, dungeon.DmgNormal)
			}
		}
		return MoveSpecial
	}
	power := info.Dig
	if m.Confusion > 0 {
		power--
	}
	if terrain.Dig(w, dest, power, false) {
		return MoveSpecial
	}
	m.Delay = 0
	return MoveFail
}

// PlayerMove is player_move(offset) from spec.md §4.1.
func PlayerMove(w *dungeon.World, offset geom.Coord, damage DamageFunc) Outcome {
	if w.SlidingOnIce {
		return MoveFail
	}
	const playerIdx = dungeon.PlayerIndex
	if !BeforeMove(w, playerIdx) {
		return MoveSpecial
	}
	p := w.Player()
	if p.Confusion > 0 {
		offset = offset.Neg()
	}
	dest := p.Pos.Add(offset)
	onOoze := w.TileAt(p.Pos).Class == classdata.Ooze

	if !w.InBounds(dest) {
		return MoveFail
	}
	destTile := w.TileAt(dest)
	if destTile.Class == classdata.Wall {
		power := 2
		if onOoze {
			power = 0
		}
		if terrain.Dig(w, dest, power, false) {
			return MoveSpecial
		}
		return MoveFail
	}
	if occ := destTile.Occupant; occ != dungeon.NoOccupant {
		dmg := 5
		if onOoze {
			dmg = 0
		}
		damage(w, occ, dmg, offset, dungeon.DmgWeapon)
		return MoveAttack
	}

	Move(w, playerIdx, dest)
	w.PlayerMoved = true
	if w.BootsOn {
		Lunge(w, offset, damage)
	}
	if w.MinerCap {
		power := 2
		if w.TileAt(w.Player().Pos).Class == classdata.Ooze {
			power = 0
		}
		for _, off := range geom.Plus {
			terrain.Dig(w, w.Player().Pos.Add(off), power, false)
		}
	}
	return MoveSuccess
}

// Lunge performs the Boots of Lunging's up-to-three extra free steps in
// the direction of the player's last move, dealing a final hit if the
// chain ends against a monster.
func Lunge(w *dungeon.World, dir geom.Coord, damage DamageFunc) {
	for i := 0; i < 3; i++ {
		p := w.Player()
		dest := p.Pos.Add(dir)
		if !w.InBounds(dest) {
			return
		}
		destTile := w.TileAt(dest)
		if occ := destTile.Occupant; occ != dungeon.NoOccupant {
			damage(w, occ, 4, dir, dungeon.DmgNormal)
			Knockback(w, occ, dir, 1)
			return
		}
		if destTile.Class == classdata.Wall {
			return
		}
		Move(w, dungeon.PlayerIndex, dest)
	}
}
