// Package beat drives one tick of the turn engine: player, then enemies
// in fixed priority order, then traps (spec.md §4.8). It is the single
// mutation entry point the solver and fuzzer call on their world copies,
// grounded on the teacher's internal/game/tb_combat.go turn sequencing
// loop.
package beat

import (
	"cotton/internal/ai"
	"cotton/internal/classdata"
	"cotton/internal/combat"
	"cotton/internal/dungeon"
	"cotton/internal/fov"
	"cotton/internal/geom"
	"cotton/internal/movement"
	"cotton/internal/terrain"
)

// Outcome is the result of a single Do call.
type Outcome int

const (
	Ongoing Outcome = iota
	Victory
	Death
)

// Do advances w by exactly one beat given the raw input byte ('e','f',
// 'i','j','<','z', or anything else for a no-op) and reports the
// resulting game state.
func Do(w *dungeon.World, input byte) Outcome {
	playerTurn(w, input)

	if w.Player().Alive() {
		enemyTurn(w)
	}
	if w.Player().Alive() {
		trapTurn(w)
	}

	w.CurrentBeat++

	switch {
	case !w.Player().Alive():
		return Death
	case w.TileAt(w.Player().Pos).Class == classdata.Stairs && w.MinibossKilled:
		return Victory
	default:
		return Ongoing
	}
}

func decrementCountdown(n int) int {
	if n > 0 {
		return n - 1
	}
	return n
}

func playerTurn(w *dungeon.World, input byte) {
	p := w.Player()
	p.Freeze = decrementCountdown(p.Freeze)
	w.PlayerMoved = false

	var dir geom.Coord
	moved := false
	switch input {
	case 'e':
		dir = geom.C(-1, 0)
		moved = true
	case 'f':
		dir = geom.C(0, 1)
		moved = true
	case 'i':
		dir = geom.C(1, 0)
		moved = true
	case 'j':
		dir = geom.C(0, -1)
		moved = true
	case '<':
		terrain.BombPlant(w, p.Pos, 3)
	case 'z':
		// Scroll usage belongs to the inventory/item system this core
		// does not model; treated as a no-op.
	default:
		// Unrecognized input (including quit) is a no-op at this layer.
	}

	if moved {
		outcome := movement.PlayerMove(w, dir, combat.Damage)
		if outcome == movement.MoveSuccess {
			w.LastDir = dir
		}
	}
	// Confusion ticks down after this beat's input has been resolved, so a
	// confusion of 1 still reverses the current input.
	p.Confusion = decrementCountdown(p.Confusion)

	switch {
	case w.SlidingOnIce:
		movement.ForcedMove(w, dungeon.PlayerIndex, w.LastDir, combat.EnemyAttack)
	case !w.PlayerMoved && w.TileAt(p.Pos).Class == classdata.Fire:
		combat.Damage(w, dungeon.PlayerIndex, 2, geom.Coord{}, dungeon.DmgNormal)
	}

	w.SlidingOnIce = w.PlayerMoved && w.TileAt(w.Player().Pos).Class == classdata.Ice

	fov.CastLight(w)
}

func enemyTurn(w *dungeon.World) {
	for i := 1; i < len(w.Monsters); i++ {
		m := &w.Monsters[i]
		if !m.Alive() {
			continue
		}
		m.Confusion = decrementCountdown(m.Confusion)
		m.Freeze = decrementCountdown(m.Freeze)

		info := classdata.Info(m.Class)

		// A bomb's fuse detonates the instant it reaches zero, in the
		// same beat as its final decrement, rather than waiting for a
		// beat where it was already zero on entry.
		if info.Behavior == classdata.BombTick {
			if m.Delay > 0 {
				m.Delay--
			}
			if m.Delay == 0 {
				combat.BombDetonate(w, i)
			}
			continue
		}

		if !m.Aggro && fov.CanSee(w, m.Pos) && m.Pos.Sub(w.Player().Pos).L2() <= info.Radius2 {
			m.Aggro = true
		}
		if m.Delay > 0 {
			m.Delay--
			continue
		}
		if m.Freeze > 0 {
			continue
		}
		ai.Act(w, i)
	}
}

func trapTurn(w *dungeon.World) {
	for _, trap := range w.Traps {
		if trap.Pos.Zero() {
			continue
		}
		if w.TileAt(trap.Pos).TrapDestroyed {
			continue
		}
		idx := w.TileAt(trap.Pos).Occupant
		if idx == dungeon.NoOccupant {
			continue
		}
		m := &w.Monsters[idx]
		if !m.Alive() {
			continue
		}
		info := classdata.Info(m.Class)
		if info.Flying || m.Untrapped {
			continue
		}
		m.Untrapped = true
		fireTrap(w, idx, trap)
	}
}

func fireTrap(w *dungeon.World, idx int, trap dungeon.Trap) {
	m := &w.Monsters[idx]
	switch trap.Class {
	case classdata.Omnibounce:
		dir := m.Pos.Sub(m.PrevPos).Sign()
		movement.ForcedMove(w, idx, dir, combat.EnemyAttack)
	case classdata.Bounce:
		movement.ForcedMove(w, idx, trap.Dir, combat.EnemyAttack)
	case classdata.Spike:
		combat.Damage(w, idx, 4, geom.Coord{}, dungeon.DmgBomb)
	case classdata.Trapdoor, classdata.Teleport:
		removeFromBoard(w, idx)
	case classdata.Confuse:
		if m.Confusion == 0 {
			m.Confusion = 10
		}
	case classdata.BombTrap:
		if idx == dungeon.PlayerIndex {
			terrain.BombPlant(w, trap.Pos, 2)
		}
	case classdata.TempoDown, classdata.TempoUp, classdata.FirePig:
		// No effect in this core (spec.md §4.6).
	}
}

// removeFromBoard unplaces a monster caught by a trapdoor or teleport
// trap. The source game respawns the player elsewhere; without a second
// level to respawn into, unplacing is modeled the same way any other
// removal is: HP goes to zero and the tile back-reference clears.
func removeFromBoard(w *dungeon.World, idx int) {
	m := &w.Monsters[idx]
	w.TileAt(m.Pos).Occupant = dungeon.NoOccupant
	m.HP = 0
}
