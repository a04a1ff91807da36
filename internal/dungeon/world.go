// Package dungeon holds the simulator's single aggregate state: the board,
// the monster and trap arrays, and the run-global flags and counters. It is
// the value type every other package (movement, combat, ai, fov, beat,
// search, fuzzer) operates on by pointer during a beat and copies by value
// between beats.
package dungeon

import (
	"cotton/internal/classdata"
	"cotton/internal/geom"
)

// NoOccupant marks a tile with no monster standing on it.
const NoOccupant = -1

// Tile is one board cell. See spec.md §3 for the field semantics.
type Tile struct {
	Class        classdata.TileClass
	HP           int // wall hardness: 0=door, 1-4=diggable, 5=indestructible edge
	Zone         int // 1-4, biome-like classifier for dig chaining / death transmutation
	Torch        bool
	Revealed     bool
	TrapDestroyed bool
	Light        int
	Occupant     int // index into World.Monsters, or NoOccupant
}

// Monster is one live or dead actor. Index 0 in World.Monsters is always
// the player. A dead monster (HP <= 0) stays in the slice (the original's
// free-list-friendly lifecycle, see spec.md §3 "Lifecycle") but is skipped
// by iteration helpers and cleared from any tile occupancy.
type Monster struct {
	Class      classdata.MonsterClass
	HP         int
	Pos        geom.Coord
	PrevPos    geom.Coord
	Delay      int // 0-15 in the original's packed counter; plain int here
	Confusion  int // 0-15
	Freeze     int // 0-7
	State      int // 0-3
	Aggro      bool
	Vertical   bool
	Untrapped  bool
}

// Alive reports whether m is still in play.
func (m Monster) Alive() bool { return m.HP > 0 }

// Trap is an immortal board fixture. "Destroyed" lives on the tile
// (Tile.TrapDestroyed), not here, since destruction is a property of the
// cell a bomb touched, not of the trap record itself.
type Trap struct {
	Class classdata.TrapClass
	Pos   geom.Coord
	Dir   geom.Coord
}

// World is the single aggregate simulator state, held by value. The board
// is a flat row-major slice instead of a slice-of-slices so that Clone is a
// cheap, obviously-correct value copy (see spec.md §9, "Intrusive
// next-pointers -> indices" and §4.10's snapshot-by-value-copy design).
type World struct {
	Width, Height int
	Board         []Tile

	// Monsters[0] is always the player. The rest are in priority-tiebreak
	// order fixed at load time (spec.md §4.9): array order doubles as the
	// stable tiebreak when two classes share a Priority.
	Monsters []Monster
	Traps    []Trap

	PlayerMoved       bool
	BombExploded      bool
	SlidingOnIce      bool
	BootsOn           bool
	MinerCap          bool
	MinibossKilled    bool
	SarcophagusKilled bool
	HarpiesKilled     int
	CurrentBeat       uint64
	Seed              uint64
	Stairs            geom.Coord
	Spawn             geom.Coord
	IFrames           int
	CharacterSelect   int

	// LastDir is the direction of the player's most recent successful
	// move, used to replay an ice slide as a forced move the following
	// beat (spec.md §4.8).
	LastDir geom.Coord
}

// New allocates an empty, wall-bordered world of the given interior size
// (width x height, excluding the 1-tile indestructible border spec.md §3
// requires). The border keeps movement and FOV free of bounds checks
// (invariant 5).
func New(width, height int) *World {
	w := &World{
		Width:    width + 2,
		Height:   height + 2,
		Board:    make([]Tile, (width+2)*(height+2)),
		Monsters: make([]Monster, 0, 64),
		Traps:    make([]Trap, 0, 16),
	}
	for y := 0; y < w.Height; y++ {
		for x := 0; x < w.Width; x++ {
			idx := y*w.Width + x
			if x == 0 || y == 0 || x == w.Width-1 || y == w.Height-1 {
				w.Board[idx] = Tile{Class: classdata.Wall, HP: classdata.HPIndestructible, Occupant: NoOccupant}
			} else {
				w.Board[idx] = Tile{Class: classdata.Floor, Occupant: NoOccupant}
			}
		}
	}
	return w
}

// index returns the flat board index for c, or -1 if c is out of bounds.
func (w *World) index(c geom.Coord) int {
	x, y := int(c.X), int(c.Y)
	if x < 0 || y < 0 || x >= w.Width || y >= w.Height {
		return -1
	}
	return y*w.Width + x
}

// InBounds reports whether c addresses a tile on the board.
func (w *World) InBounds(c geom.Coord) bool { return w.index(c) >= 0 }

// TileAt returns the tile at c. Callers must only pass in-bounds
// coordinates; the board border guarantees every coordinate reachable by
// movement is in bounds (invariant 5).
func (w *World) TileAt(c geom.Coord) *Tile {
	idx := w.index(c)
	invariantInBounds(idx, c)
	return &w.Board[idx]
}

// MonsterAt returns the monster occupying c, or nil.
func (w *World) MonsterAt(c geom.Coord) *Monster {
	t := w.TileAt(c)
	if t.Occupant == NoOccupant {
		return nil
	}
	return &w.Monsters[t.Occupant]
}

// Player returns the player monster (always index 0).
func (w *World) Player() *Monster { return &w.Monsters[0] }

// PlayerIndex is the fixed array index of the player.
const PlayerIndex = 0
