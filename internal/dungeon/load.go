package dungeon

import (
	"encoding/xml"
	"fmt"
	"io"

	"cotton/internal/classdata"
	"cotton/internal/geom"
)

// LoadError wraps any failure while reading or validating a dungeon file.
// Per spec.md §7, load errors are fatal: the CLI layer prints the message
// and exits 255.
type LoadError struct {
	cause error
}

func (e *LoadError) Error() string { return "dungeon: " + e.cause.Error() }
func (e *LoadError) Unwrap() error { return e.cause }

func loadErrorf(format string, args ...any) *LoadError {
	return &LoadError{cause: fmt.Errorf(format, args...)}
}

// xmlDungeon mirrors the on-disk format sketched in spec.md §6. Parsing is
// intentionally minimal: dungeon-file fidelity is out of this simulator's
// scope, and this loader exists so the CLI binaries have something real to
// read rather than a stub.
type xmlDungeon struct {
	XMLName   xml.Name   `xml:"dungeon"`
	Character int        `xml:"character,attr"`
	NumLevels int        `xml:"numLevels,attr"`
	Levels    []xmlLevel `xml:"level"`
}

type xmlLevel struct {
	Num     int         `xml:"num,attr"`
	Tiles   []xmlEntity `xml:"tile"`
	Enemies []xmlEntity `xml:"enemy"`
	Traps   []xmlEntity `xml:"trap"`
	// Chests, crates, shrines, and items share the same attribute shape
	// but are not modeled as simulator entities -- the inventory/loot
	// system they belong to is out of this core's scope (see DESIGN.md).
	Chests  []xmlEntity `xml:"chest"`
	Crates  []xmlEntity `xml:"crate"`
	Shrines []xmlEntity `xml:"shrine"`
	Items   []xmlEntity `xml:"item"`
}

type xmlEntity struct {
	X       int `xml:"x,attr"`
	Y       int `xml:"y,attr"`
	Type    int `xml:"type,attr"`
	Subtype int `xml:"subtype,attr"`
	Zone    int `xml:"zone,attr"`
	Torch   int `xml:"torch,attr"`
}

// tileTypeTable maps the XML `type` attribute to classdata.TileClass.
// Attribute names themselves are matched by encoding/xml through the
// struct tags on xmlEntity, so there is no attribute-name hash.
var tileTypeTable = map[int]classdata.TileClass{
	0:  classdata.Wall,
	1:  classdata.Floor,
	3:  classdata.Shop,
	4:  classdata.Water,
	8:  classdata.Tar,
	9:  classdata.Stairs,
	10: classdata.Fire,
	11: classdata.Ice,
	17: classdata.Ooze,
}

var trapTypeTable = map[int]classdata.TrapClass{
	0: classdata.Omnibounce,
	1: classdata.Bounce,
	2: classdata.Spike,
	3: classdata.Trapdoor,
	4: classdata.Teleport,
	5: classdata.Confuse,
	6: classdata.BombTrap,
	7: classdata.TempoDown,
	8: classdata.TempoUp,
	9: classdata.FirePig,
}

// Load parses a dungeon XML document (the root <dungeon> element) and
// returns the world for the requested level, 1-indexed, with the given
// seed. Only the external shape of the format is honored; see DESIGN.md's
// ledger for what is and is not modeled.
func Load(r io.Reader, level int, seed uint64) (*World, error) {
	var doc xmlDungeon
	dec := xml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, loadErrorf("malformed XML: %w", err)
	}

	var lvl *xmlLevel
	for i := range doc.Levels {
		if doc.Levels[i].Num == level {
			lvl = &doc.Levels[i]
			break
		}
	}
	if lvl == nil {
		return nil, loadErrorf("level %d not found", level)
	}

	spawn, err := computeSpawn(lvl)
	if err != nil {
		return nil, err
	}

	w := New(30, 30)
	w.Seed = seed
	w.Spawn = spawn
	w.Monsters = append(w.Monsters, Monster{Class: classdata.Player, HP: classdata.Info(classdata.Player).MaxHP, Pos: spawn, PrevPos: spawn})
	w.TileAt(spawn).Occupant = PlayerIndex

	for _, te := range lvl.Tiles {
		class, ok := tileTypeTable[te.Type]
		if !ok {
			return nil, loadErrorf("unknown tile type %d at (%d,%d)", te.Type, te.X, te.Y)
		}
		c := offsetCoord(te, spawn)
		if !w.InBounds(c) {
			return nil, loadErrorf("tile at (%d,%d) placed outside the padded board", te.X, te.Y)
		}
		if class == classdata.Stairs {
			w.Stairs = c
		}
		*w.TileAt(c) = Tile{
			Class:    class,
			HP:       wallHPFor(class, te.Subtype),
			Zone:     te.Zone,
			Torch:    te.Torch != 0,
			Occupant: NoOccupant,
		}
	}
	// Re-stamp the player's occupancy in case a <tile> entry overwrote it.
	w.TileAt(spawn).Occupant = PlayerIndex

	for _, ee := range lvl.Enemies {
		class := classdata.MonsterClass(ee.Type)
		if !classdata.Known(class) {
			return nil, loadErrorf("unknown monster type %d at (%d,%d)", ee.Type, ee.X, ee.Y)
		}
		c := offsetCoord(ee, spawn)
		if !w.InBounds(c) {
			return nil, loadErrorf("enemy at (%d,%d) placed outside the padded board", ee.X, ee.Y)
		}
		if w.TileAt(c).Occupant != NoOccupant {
			return nil, loadErrorf("enemy at (%d,%d) collides with an existing monster", ee.X, ee.Y)
		}
		idx := len(w.Monsters)
		w.Monsters = append(w.Monsters, Monster{
			Class:   class,
			HP:      classdata.Info(class).MaxHP,
			Pos:     c,
			PrevPos: c,
		})
		w.TileAt(c).Occupant = idx
	}
	sortMonstersByPriority(w)

	for _, te := range lvl.Traps {
		class, ok := trapTypeTable[te.Type]
		if !ok {
			return nil, loadErrorf("unknown trap type %d at (%d,%d)", te.Type, te.X, te.Y)
		}
		c := offsetCoord(te, spawn)
		if !w.InBounds(c) {
			return nil, loadErrorf("trap at (%d,%d) placed outside the padded board", te.X, te.Y)
		}
		w.Traps = append(w.Traps, Trap{Class: class, Pos: c, Dir: trapDirFor(te.Subtype)})
	}

	w.CheckInvariants()
	return w, nil
}

func wallHPFor(class classdata.TileClass, subtype int) int {
	if class != classdata.Wall {
		return 0
	}
	switch {
	case subtype == 0:
		return classdata.HPDoor
	case subtype >= classdata.HPDiggableMin && subtype <= classdata.HPDiggableMax:
		return subtype
	default:
		return classdata.HPIndestructible
	}
}

func trapDirFor(subtype int) geom.Coord {
	switch subtype {
	case 0:
		return geom.C(0, -1)
	case 1:
		return geom.C(0, 1)
	case 2:
		return geom.C(-1, 0)
	case 3:
		return geom.C(1, 0)
	default:
		return geom.C(0, 0)
	}
}

// computeSpawn scans every entity once to find the offset that keeps all
// coordinates in the 1..30 interior range once applied, per spec.md §6.
func computeSpawn(lvl *xmlLevel) (geom.Coord, error) {
	minX, minY := int(^uint(0)>>1), int(^uint(0)>>1)
	maxX, maxY := -minX, -minY
	seen := false
	scan := func(x, y int) {
		seen = true
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}
	for _, e := range lvl.Tiles {
		scan(e.X, e.Y)
	}
	for _, e := range lvl.Enemies {
		scan(e.X, e.Y)
	}
	for _, e := range lvl.Traps {
		scan(e.X, e.Y)
	}
	if !seen {
		return geom.Coord{}, loadErrorf("level has no entities to place")
	}
	// The player stands at the origin of the entity coordinates.
	scan(0, 0)
	if maxX-minX > 28 || maxY-minY > 28 {
		return geom.Coord{}, loadErrorf("level spans %dx%d, too large for the 30x30 interior", maxX-minX+1, maxY-minY+1)
	}
	offX := 1 - minX
	offY := 1 - minY
	return geom.C(int8(offX), int8(offY)), nil
}

func offsetCoord(e xmlEntity, spawn geom.Coord) geom.Coord {
	return geom.C(int8(e.X)+spawn.X, int8(e.Y)+spawn.Y)
}

// sortMonstersByPriority orders Monsters[1:] by ascending ClassInfo
// priority, breaking ties by the original XML document order (stable
// sort), and fixes it for the rest of the run (spec.md §4.9, invariant 6).
func sortMonstersByPriority(w *World) {
	rest := w.Monsters[1:]
	// Insertion sort: the enemy counts in a single dungeon level are small
	// (tens, not thousands) and this keeps the sort visibly stable without
	// pulling in sort.SliceStable's reflection-based comparator path.
	for i := 1; i < len(rest); i++ {
		for j := i; j > 0 && classdata.Info(rest[j].Class).Priority < classdata.Info(rest[j-1].Class).Priority; j-- {
			rest[j], rest[j-1] = rest[j-1], rest[j]
		}
	}
	// Board occupancy indices shifted under the monsters they point to;
	// re-stamp them against the freshly sorted array.
	for idx := range w.Board {
		w.Board[idx].Occupant = NoOccupant
	}
	for i := range w.Monsters {
		if w.Monsters[i].Alive() {
			w.TileAt(w.Monsters[i].Pos).Occupant = i
		}
	}
}
