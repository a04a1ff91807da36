// Package fov implements the simulator's visibility and lighting rules:
// bounding-box-gated line-of-sight for AI aggro checks, and the
// radial light splat plus line-of-sight reveal scan that drives what the
// renderer shows as revealed. Grounded on the teacher's internal/collision CastRay /
// CheckLineOfSight DDA walk, adapted from continuous float64 coordinates
// to the grid's fractional-error stepping described in spec.md §4.7.
package fov

import (
	"math"

	"cotton/internal/classdata"
	"cotton/internal/dungeon"
	"cotton/internal/geom"
)

// RevealLightThreshold is the light level at which a tile in line of sight
// actually gets marked Revealed (spec.md §4.7).
const RevealLightThreshold = 102

// CanSee reports whether the player has unobstructed line of sight to
// dest. Used by the beat driver's aggro check and by AI that seeks line
// of sight.
func CanSee(w *dungeon.World, dest geom.Coord) bool {
	from := w.Player().Pos
	dx := int(dest.X) - int(from.X)
	dy := int(dest.Y) - int(from.Y)
	if dx < -10 || dx > 10 || dy < -5 || dy > 5 {
		return false
	}

	targets := [][2]float64{
		{float64(dest.X) + 0.5, float64(dest.Y) + 0.5}, // center
		{float64(dest.X), float64(dest.Y)},
		{float64(dest.X) + 1, float64(dest.Y)},
		{float64(dest.X), float64(dest.Y) + 1},
		{float64(dest.X) + 1, float64(dest.Y) + 1},
	}
	fx, fy := float64(from.X)+0.5, float64(from.Y)+0.5
	for _, t := range targets {
		if lineClear(w, fx, fy, t[0], t[1]) {
			return true
		}
	}
	return false
}

// lineClear walks one grid step at a time from (x0,y0) toward (x1,y1),
// taking whichever axis has the smaller accumulated fractional error, and
// requiring both neighbor cells clear on a near-tie (the 0.001 threshold
// spec.md §4.7 calls for). Any wall along the path blocks sight.
func lineClear(w *dungeon.World, x0, y0, x1, y1 float64) bool {
	dx := x1 - x0
	dy := y1 - y0
	dist := math.Hypot(dx, dy)
	if dist < 1e-9 {
		return true
	}
	steps := int(math.Ceil(dist))
	errX, errY := 0.0, 0.0
	stepX := dx / dist
	stepY := dy / dist
	cx, cy := x0, y0
	for i := 0; i < steps; i++ {
		errX += math.Abs(stepX)
		errY += math.Abs(stepY)
		var nx, ny float64
		if math.Abs(errX-errY) < 0.001 {
			if isWall(w, int8(cx+stepX), int8(cy)) && isWall(w, int8(cx), int8(cy+stepY)) {
				return false
			}
			nx, ny = cx+stepX, cy+stepY
		} else if errX > errY {
			nx, ny = cx+stepX, cy
		} else {
			nx, ny = cx, cy+stepY
		}
		if isWall(w, int8(nx), int8(ny)) {
			return false
		}
		cx, cy = nx, ny
	}
	return true
}

func isWall(w *dungeon.World, x, y int8) bool {
	c := geom.C(x, y)
	if !w.InBounds(c) {
		return true
	}
	return w.TileAt(c).Class == classdata.Wall
}

// lightFalloff is the 9x9 radial falloff table AdjustLights splats onto
// Tile.Light. Index [dy+4][dx+4], dx/dy in -4..4.
var lightFalloff = buildFalloff()

func buildFalloff() [9][9]int {
	var t [9][9]int
	for dy := -4; dy <= 4; dy++ {
		for dx := -4; dx <= 4; dx++ {
			d := math.Sqrt(float64(dx*dx + dy*dy))
			v := 255 - int(d*64)
			if v < 0 {
				v = 0
			}
			t[dy+4][dx+4] = v
		}
	}
	return t
}

// AdjustLights splats the falloff table centered on pos onto the board,
// scaled by sign: +1 adds a torch's light, -1 removes it. Dig calls it with
// -1 when it destroys a torched wall (spec.md §4.2, §4.7). Loading a
// dungeon does not call it, so torches read from a dungeon file add no
// light.
func AdjustLights(w *dungeon.World, pos geom.Coord, sign int) {
	for dy := -4; dy <= 4; dy++ {
		for dx := -4; dx <= 4; dx++ {
			c := geom.C(pos.X+int8(dx), pos.Y+int8(dy))
			if !w.InBounds(c) {
				continue
			}
			t := w.TileAt(c)
			t.Light += sign * lightFalloff[dy+4][dx+4]
			if t.Light < 0 {
				t.Light = 0
			}
		}
	}
}

// CastLight runs the post-player-turn visibility pass: every tile within
// line of sight of the player whose accumulated light meets
// RevealLightThreshold becomes permanently Revealed. Implemented as a
// bounded scan over the same bounding box CanSee uses rather than
// per-octant recursive shadowcasting, since the box is already the
// hard visibility limit in this simulator.
func CastLight(w *dungeon.World) {
	p := w.Player().Pos
	for dy := -5; dy <= 5; dy++ {
		for dx := -10; dx <= 10; dx++ {
			c := geom.C(p.X+int8(dx), p.Y+int8(dy))
			if !w.InBounds(c) {
				continue
			}
			t := w.TileAt(c)
			if t.Revealed || t.Light < RevealLightThreshold {
				continue
			}
			if CanSee(w, c) {
				t.Revealed = true
			}
		}
	}
}
