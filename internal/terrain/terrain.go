// Package terrain implements wall digging, bomb detonation and planting,
// and the elemental tile transmutation rules. Grounded on the teacher's
// internal/collision bounds-checked board loops and internal/world
// tile_manager.go, generalized from ebiten's continuous world to the
// grid model in cotton/internal/dungeon.
package terrain

import (
	"cotton/internal/classdata"
	"cotton/internal/dungeon"
	"cotton/internal/fov"
	"cotton/internal/geom"
)

// ApplyElement sets tile to the incoming elemental class, honoring the
// combination rule fire+ice -> water, fire+water -> floor. Elemental
// beetles, goolems and elemental deaths use it; bomb blasts use
// applyBombBlast instead. Stairs are immutable under any element.
func ApplyElement(tile *dungeon.Tile, incoming classdata.TileClass) {
	if tile.Class == classdata.Stairs {
		return
	}
	switch {
	case incoming == classdata.Ice && tile.Class == classdata.Fire:
		tile.Class = classdata.Water
	case incoming == classdata.Fire && tile.Class == classdata.Water:
		tile.Class = classdata.Floor
	default:
		tile.Class = incoming
	}
}

// applyBombBlast is bomb_detonate's own tile rule, distinct from
// ApplyElement: water thaws to floor, ice melts to water, and every other
// class -- ordinary floor included -- is left unchanged. Stairs are
// immutable under any element.
func applyBombBlast(tile *dungeon.Tile) {
	switch tile.Class {
	case classdata.Stairs:
		return
	case classdata.Water:
		tile.Class = classdata.Floor
	case classdata.Ice:
		tile.Class = classdata.Water
	}
}

// Dig attempts to break the wall at pos with the given digging power.
// z4 marks a recursive chain-demolition call so doors stop the chain and
// the chain itself only unrolls once (spec.md §4.2). Reports success.
func Dig(w *dungeon.World, pos geom.Coord, power int, z4 bool) bool {
	if !w.InBounds(pos) {
		return false
	}
	tile := w.TileAt(pos)
	if tile.Class != classdata.Wall {
		return false
	}
	if z4 && tile.HP == classdata.HPDoor {
		return false
	}
	if tile.HP > power {
		return false
	}

	oldHP, oldZone, wasTorched := tile.HP, tile.Zone, tile.Torch

	switch {
	case oldZone == classdata.Zone2 && oldHP == 2:
		tile.Class = classdata.Fire
	case oldZone == classdata.Zone3 && oldHP == 2:
		tile.Class = classdata.Ice
	default:
		tile.Class = classdata.Floor
	}
	tile.HP = 0
	tile.Torch = false

	if spider := w.MonsterAt(pos); spider != nil && spider.Class == classdata.Spider {
		spider.Class = classdata.FreeSpider
		spider.Delay = 1
	}

	if wasTorched {
		fov.AdjustLights(w, pos, -1)
	}

	if !z4 && oldZone == classdata.Zone4 && (oldHP == 1 || oldHP == 2) {
		chainPower := power
		if chainPower > 2 {
			chainPower = 2
		}
		for _, off := range geom.Plus {
			Dig(w, pos.Add(off), chainPower, true)
		}
	}
	return true
}

// BombDetonate is bomb_detonate(m): a 3x3 blast centered on m's position
// that destroys traps, transmutes terrain, damages every monster caught
// in it, and cracks soft walls. It does not itself remove m; callers that
// want the bomb monster gone clear its HP the way any other kill does.
func BombDetonate(w *dungeon.World, center geom.Coord, damageFn func(w *dungeon.World, targetIdx int, dmg int, dir geom.Coord, dtype dungeon.DamageType)) {
	w.BombExploded = true
	for _, off := range geom.Square3x3 {
		pos := center.Add(off)
		if !w.InBounds(pos) {
			continue
		}
		tile := w.TileAt(pos)
		tile.TrapDestroyed = true
		applyBombBlast(tile)

		if idx := tile.Occupant; idx != dungeon.NoOccupant && w.Monsters[idx].Alive() {
			damageFn(w, idx, 4, off, dungeon.DmgBomb)
		}
		if tile.Class == classdata.Wall && tile.HP < classdata.HPIndestructible {
			Dig(w, pos, tile.HP, false)
		}
	}
}

// BombPlant allocates a BOMB from the monster free-list (the first dead
// Bomb-class slot, or a fresh append if none is free) and arms it with a
// 1 HP fuse that ticks down over delay beats via the generic enemy loop.
func BombPlant(w *dungeon.World, pos geom.Coord, delay int) {
	for i := range w.Monsters {
		m := &w.Monsters[i]
		if m.Class == classdata.Bomb && !m.Alive() {
			*m = dungeon.Monster{Class: classdata.Bomb, HP: 1, Pos: pos, PrevPos: pos, Delay: delay}
			w.TileAt(pos).Occupant = i
			return
		}
	}
	w.Monsters = append(w.Monsters, dungeon.Monster{Class: classdata.Bomb, HP: 1, Pos: pos, PrevPos: pos, Delay: delay})
	w.TileAt(pos).Occupant = len(w.Monsters) - 1
}
