package terrain

import "isoworld/internal/world"

type offset struct{ dz, dx int }

var (
	east  = offset{dx: 1}
	west  = offset{dx: -1}
	south = offset{dz: 1}
	north = offset{dz: -1}
)

// rampRule assigns dir when every neighbor in full is a full tile.
type rampRule struct {
	full []offset
	dir  world.Direction
}

// rampRules is ordered by precedence; the first match wins. Three-sided
// enclosures come first, then corners, then single walls.
var rampRules = []rampRule{
	{full: []offset{east, south, west}, dir: world.ZP},
	{full: []offset{east, south, north}, dir: world.XP},
	{full: []offset{west, south, north}, dir: world.XN},
	{full: []offset{east, north, west}, dir: world.ZN},
	{full: []offset{east, south}, dir: world.XPZP},
	{full: []offset{west, north}, dir: world.XNZN},
	{full: []offset{west, south}, dir: world.XNZP},
	{full: []offset{east, north}, dir: world.XPZN},
	{full: []offset{east}, dir: world.XP},
	{full: []offset{south}, dir: world.ZP},
	{full: []offset{west}, dir: world.XN},
	{full: []offset{north}, dir: world.ZN},
}

// RampDirection evaluates the facing rules for cell (y, z, x) against the
// fullness of its four horizontal neighbors. It returns None when no
// neighbor is full.
func RampDirection(grid *world.Grid, y, z, x int) world.Direction {
	for _, rule := range rampRules {
		matched := true
		for _, o := range rule.full {
			if !grid.IsFull(y, z+o.dz, x+o.dx) {
				matched = false
				break
			}
		}
		if matched {
			return rule.dir
		}
	}
	return world.None
}

// CanHoldRamp reports whether (y, z, x) is an air cell with air above and a
// non-ramp tile below.
func CanHoldRamp(grid *world.Grid, y, z, x int) bool {
	return grid.IsEmpty(y, z, x) &&
		grid.IsEmpty(y+1, z, x) &&
		!grid.IsEmpty(y-1, z, x) &&
		!grid.IsRamp(y-1, z, x)
}

func bordersTopsoil(grid *world.Grid, y, z, x int) bool {
	for _, o := range []offset{east, west, south, north} {
		if grid.At(y, z+o.dz, x+o.dx).Type == world.Dirt {
			return true
		}
	}
	return false
}

// InferRamps is the ramp pass. It walks the grid in (y, z, x) order and
// rewrites eligible cells in place, so later cells see ramps placed earlier
// in the walk. A cell whose rules all fail stays air. It returns the number
// of ramps placed.
func InferRamps(grid *world.Grid) int {
	dim := grid.Dimensions()
	placed := 0
	for y := 0; y < dim.Height; y++ {
		for z := 0; z < dim.Depth; z++ {
			for x := 0; x < dim.Width; x++ {
				if !CanHoldRamp(grid, y, z, x) || !bordersTopsoil(grid, y, z, x) {
					continue
				}
				dir := RampDirection(grid, y, z, x)
				if dir == world.None {
					continue
				}
				grid.Set(y, z, x, world.Ramp(world.DirtRamp, dir))
				placed++
			}
		}
	}
	return placed
}
