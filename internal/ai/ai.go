// Package ai implements the enemy behaviors dispatched by ClassInfo.Behavior
// (spec.md §4.5). Grounded on the teacher's internal/monster/monster_ai.go
// per-state dispatch, replacing its function-pointer table with a switch
// over the classdata.BehaviorKind sum type per spec.md §9.
package ai

import (
	"math/rand"

	"cotton/internal/classdata"
	"cotton/internal/combat"
	"cotton/internal/dungeon"
	"cotton/internal/geom"
	"cotton/internal/movement"
)

// Act runs the behavior attached to the monster at idx for one beat.
func Act(w *dungeon.World, idx int) {
	m := &w.Monsters[idx]
	switch classdata.Info(m.Class).Behavior {
	case classdata.Nop, classdata.Todo:
		return
	case classdata.BasicSeek:
		basicSeek(w, idx)
	case classdata.DiagonalSeek:
		diagonalSeek(w, idx)
	case classdata.MooreSeek:
		mooreSeek(w, idx)
	case classdata.BatBehavior:
		bat(w, idx)
	case classdata.BlackBatBehavior:
		blackBat(w, idx)
	case classdata.Parry:
		parry(w, idx)
	case classdata.BombTick:
		// Bombs detonate from the beat driver's enemy loop directly, the
		// instant their fuse reaches zero, rather than through Act.
	}
}

// enemySeedFor derives a deterministic per-beat RNG from the world's seed
// and current beat, rather than embedding a mutable rand.Rand in World
// (which would make Clone non-trivial). Mixed with idx so that multiple
// enemies acting in the same beat don't draw the same stream.
func enemySeedFor(w *dungeon.World, idx int) int64 {
	return int64(w.Seed*1000003 + w.CurrentBeat*97 + uint64(idx))
}

func tryMoves(w *dungeon.World, idx int, offsets ...geom.Coord) {
	for _, off := range offsets {
		if off.Zero() {
			continue
		}
		if movement.EnemyMove(w, idx, off, combat.EnemyAttack, combat.Damage) != movement.MoveFail {
			return
		}
	}
}

// bat takes a pseudo-random cardinal step drawn from a 4-element
// permutation of the cardinal directions, trying each until one succeeds.
func bat(w *dungeon.World, idx int) {
	r := rand.New(rand.NewSource(enemySeedFor(w, idx)))
	dirs := []geom.Coord{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	order := r.Perm(len(dirs))
	shuffled := make([]geom.Coord, len(dirs))
	for i, j := range order {
		shuffled[i] = dirs[j]
	}
	tryMoves(w, idx, shuffled...)
}

// blackBat steps directly onto the player when adjacent; otherwise it
// behaves exactly like bat.
func blackBat(w *dungeon.World, idx int) {
	m := &w.Monsters[idx]
	d := w.Player().Pos.Sub(m.Pos)
	if d.L1() == 1 {
		tryMoves(w, idx, d)
		return
	}
	bat(w, idx)
}

// parry drives the bladesman state machine: state 0 seeks normally, state
// 1 lunges twice toward where the player was, state 2 resets to seeking.
func parry(w *dungeon.World, idx int) {
	m := &w.Monsters[idx]
	switch m.State {
	case 0:
		basicSeek(w, idx)
	case 1:
		dir := w.Player().PrevPos.Sub(m.Pos).Sign()
		movement.EnemyMove(w, idx, dir, combat.EnemyAttack, combat.Damage)
		movement.EnemyMove(w, idx, dir, combat.EnemyAttack, combat.Damage)
		m.State = 2
		m.Delay = 0
	default:
		m.State = 0
	}
}
