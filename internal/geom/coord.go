// Package geom implements the 2-D grid primitives the rest of the
// simulator is built on: signed 8-bit coordinate pairs, componentwise
// arithmetic, and the small set of shape constants enemy AI and digging
// sweep over.
package geom

import "cotton/internal/mathutil"

// Coord is a signed 8-bit (x, y) pair. The board is small enough (32x32
// padded) that int8 comfortably holds every on-board and off-board-by-a-few
// position used during movement resolution.
type Coord struct {
	X, Y int8
}

// C is a short constructor, mirroring how callers write literal offsets.
func C(x, y int8) Coord { return Coord{X: x, Y: y} }

// Add returns the componentwise sum.
func (c Coord) Add(o Coord) Coord { return Coord{c.X + o.X, c.Y + o.Y} }

// Sub returns the componentwise difference.
func (c Coord) Sub(o Coord) Coord { return Coord{c.X - o.X, c.Y - o.Y} }

// Neg returns the componentwise negation.
func (c Coord) Neg() Coord { return Coord{-c.X, -c.Y} }

// Scale multiplies both components by a scalar.
func (c Coord) Scale(k int8) Coord { return Coord{c.X * k, c.Y * k} }

// Sign returns the componentwise sign: each component becomes -1, 0, or 1.
func (c Coord) Sign() Coord {
	return Coord{
		X: int8(mathutil.IntSign(int(c.X))),
		Y: int8(mathutil.IntSign(int(c.Y))),
	}
}

// L1 returns the Manhattan norm |x| + |y|.
func (c Coord) L1() int {
	return mathutil.IntAbs(int(c.X)) + mathutil.IntAbs(int(c.Y))
}

// L2 returns the squared Euclidean norm x*x + y*y.
func (c Coord) L2() int {
	return int(c.X)*int(c.X) + int(c.Y)*int(c.Y)
}

// Zero reports whether both components are zero.
func (c Coord) Zero() bool { return c.X == 0 && c.Y == 0 }

// Shape constants: small offset sets enemy AI, digging, and bombs sweep
// over relative to an origin tile.

// Plus is the four cardinal neighbors (used by trample and Miner's Cap dig).
var Plus = []Coord{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Square3x3 is the eight neighbors plus center, used by bomb blasts.
var Square3x3 = []Coord{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {0, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Cone3x5 is a forward-facing 3-wide, 5-deep cone used by a few ranged
// attacks in the original game; kept here as a named shape constant per
// spec.md's geometry primitives list even though no class in classdata
// currently consumes it.
var Cone3x5 = []Coord{
	{0, 1}, {-1, 2}, {0, 2}, {1, 2}, {-1, 3}, {0, 3}, {1, 3}, {0, 4},
}

// Diagonals is the four diagonal neighbors.
var Diagonals = []Coord{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

// Moore8 is all eight neighbors, cardinal then diagonal.
var Moore8 = []Coord{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}
