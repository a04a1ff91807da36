// Package combat implements spec.md §4.3/§4.4: the enemy attack
// dispatcher and the damage/kill state machine, the largest switch in the
// simulator. Grounded on the teacher's internal/game/tb_combat.go
// monsterAttackTurnBased and internal/character/character.go's per-type
// combat switch, generalized from the RPG's stat/equipment resolution to
// the class-tagged special cases spec.md enumerates.
package combat

import (
	"cotton/internal/classdata"
	"cotton/internal/dungeon"
	"cotton/internal/geom"
	"cotton/internal/movement"
	"cotton/internal/terrain"
)

// Damage applies dmg points of dtype damage to the monster at targetIdx
// arriving from direction dir, running every pre- and post-damage special
// case spec.md §4.4 lists before falling through to a plain HP subtraction.
func Damage(w *dungeon.World, targetIdx int, dmg int, dir geom.Coord, dtype dungeon.DamageType) {
	m := &w.Monsters[targetIdx]
	if !m.Alive() {
		return
	}

	switch m.Class {
	case classdata.MineStatue:
		BombDetonate(w, targetIdx)
		return
	case classdata.WindStatue, classdata.BombStatue:
		if dtype != dungeon.DmgBomb {
			delay := 0
			if m.State != 0 {
				delay = 2
			}
			movement.Knockback(w, targetIdx, dir, delay)
			return
		}
	case classdata.Crate1, classdata.Crate2:
		if dmg < 3 {
			movement.Knockback(w, targetIdx, dir, 1)
			return
		}
	}

	if dmg == 0 {
		return
	}

	switch {
	case m.Class == classdata.BombShroom:
		m.Class = classdata.BombShroomPrimed
		m.Delay = 3
		return
	case classdata.IsHiddenMimic(m.Class):
		if dtype != dungeon.DmgBomb && m.State != 2 {
			return
		}
	case m.Class == classdata.Mole || m.Class == classdata.Ghost:
		if m.State != 1 {
			return
		}
	case m.Class == classdata.BladeNovice || m.Class == classdata.BladeMaster:
		if dtype != dungeon.DmgBomb && m.State != 2 {
			movement.Knockback(w, targetIdx, dir, 1)
			m.State = 1
			return
		}
	case classdata.IsRider(m.Class):
		movement.Knockback(w, targetIdx, dir, 1)
		m.Class = classdata.RiderToSkeletank(m.Class)
		return
	case classdata.IsSkeletank(m.Class):
		if !skeletankCorrectSide(m, dir) {
			movement.Knockback(w, targetIdx, dir, 1)
			if dmg >= m.HP {
				m.Class = classdata.SkeletankToSkeleton(m.Class)
				m.HP = 1
			}
			return
		}
	case classdata.IsArmadillo(m.Class) && m.State == 3:
		m.PrevPos = w.Player().Pos
		return
	case m.Class == classdata.IceBeetle || m.Class == classdata.FireBeetle:
		movement.Knockback(w, targetIdx, dir, 1)
		elem := classdata.Ice
		if m.Class == classdata.FireBeetle {
			elem = classdata.Fire
		}
		for _, off := range geom.Plus {
			pos := m.Pos.Add(off)
			if w.InBounds(pos) {
				terrain.ApplyElement(w.TileAt(pos), elem)
			}
		}
		return
	case m.Class == classdata.Goolem:
		terrain.ApplyElement(w.TileAt(w.Player().Pos), classdata.Ooze)
	}

	m.HP -= dmg
	if m.HP <= 0 {
		MonsterKill(w, targetIdx, dtype)
		return
	}

	switch {
	case (classdata.IsSkeleton(m.Class) || classdata.IsSkeletank(m.Class)) && m.HP == 1:
		m.Class = classdata.Headless
		m.Delay = 0
		m.Aggro = true
	case m.Class == classdata.Monkey2 || m.Class == classdata.TeleMonkey ||
		m.Class == classdata.Assassin2 || m.Class == classdata.Banshee1 || m.Class == classdata.Banshee2:
		movement.Knockback(w, targetIdx, dir, 1)
	}
}

// skeletankCorrectSide reports whether dir strikes a skeletank from the
// side perpendicular to its body orientation, the only side that lands
// real damage instead of bouncing off.
func skeletankCorrectSide(m *dungeon.Monster, dir geom.Coord) bool {
	if m.Vertical {
		return dir.X != 0 && dir.Y == 0
	}
	return dir.Y != 0 && dir.X == 0
}

// MonsterKill finalizes a monster's death: clears its HP and tile
// back-reference, then runs the class-specific on-death effects spec.md
// §4.4 lists.
func MonsterKill(w *dungeon.World, idx int, dtype dungeon.DamageType) {
	m := &w.Monsters[idx]
	m.HP = 0
	w.TileAt(m.Pos).Occupant = dungeon.NoOccupant

	switch {
	case m.Class == classdata.Pixie || m.Class == classdata.BombShroomPrimed:
		BombDetonate(w, idx)
	case (m.Class == classdata.Warlock1 || m.Class == classdata.Warlock2) && dtype == dungeon.DmgWeapon:
		movement.Move(w, dungeon.PlayerIndex, m.Pos)
	case m.Class == classdata.IceSlime || m.Class == classdata.Yeti:
		terrain.ApplyElement(w.TileAt(m.Pos), classdata.Ice)
	case m.Class == classdata.FireSlime || m.Class == classdata.HellHound:
		terrain.ApplyElement(w.TileAt(m.Pos), classdata.Fire)
	case m.Class == classdata.Bomber:
		terrain.BombPlant(w, m.Pos, 3)
	}

	if classdata.IsMiniboss(m.Class) {
		w.MinibossKilled = true
	}
	if classdata.IsSarcophagus(m.Class) {
		w.SarcophagusKilled = true
	}
	if m.Class == classdata.Harpy {
		w.HarpiesKilled++
	}
}

// BombDetonate fires the bomb at idx, then clears it like any other kill
// (a bomb's own death never triggers a second detonation, since
// MonsterKill only detonates Pixie and primed Bombshrooms).
func BombDetonate(w *dungeon.World, idx int) {
	pos := w.Monsters[idx].Pos
	terrain.BombDetonate(w, pos, Damage)
	m := &w.Monsters[idx]
	m.HP = 0
	w.TileAt(pos).Occupant = dungeon.NoOccupant
}

// removeSelf vanishes a monster without running MonsterKill's on-death
// effects, for CONF_MONKEY and PIXIE's attack-time self-removal.
func removeSelf(w *dungeon.World, idx int) {
	m := &w.Monsters[idx]
	w.TileAt(m.Pos).Occupant = dungeon.NoOccupant
	m.HP = 0
}

// EnemyAttack is the enemy attack dispatcher of spec.md §4.3: a plain hit
// on the player, with per-class exceptions.
func EnemyAttack(w *dungeon.World, attackerIdx int, dir geom.Coord) {
	m := &w.Monsters[attackerIdx]
	switch m.Class {
	case classdata.ConfMonkey:
		w.Player().Confusion = 2
		removeSelf(w, attackerIdx)
		return
	case classdata.Pixie:
		removeSelf(w, attackerIdx)
		return
	case classdata.Shove1, classdata.Shove2:
		oldPos := w.Player().Pos
		if movement.ForcedMove(w, dungeon.PlayerIndex, dir, movement.NoAttack) == movement.MoveSuccess {
			movement.Move(w, attackerIdx, oldPos)
			return
		}
	}
	Damage(w, dungeon.PlayerIndex, 1, dir, dungeon.DmgNormal)
}
