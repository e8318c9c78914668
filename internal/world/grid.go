package world

// Dimensions defines the extents of a grid in cells.
type Dimensions struct {
	Width  int // X
	Height int // Y, number of layers
	Depth  int // Z
}

// Cells returns the total cell count.
func (d Dimensions) Cells() int {
	return d.Width * d.Height * d.Depth
}

// Grid is a dense, fixed-size 3D array of tiles indexed (y, z, x).
//
// Every accessor is bounds-checked. Queries outside the grid never fail;
// they answer as if the world were surrounded by open air.
type Grid struct {
	dimension Dimensions
	tiles     []Tile
}

// NewGrid allocates an all-air grid. Non-positive extents yield an empty grid.
func NewGrid(dim Dimensions) *Grid {
	if dim.Width < 0 {
		dim.Width = 0
	}
	if dim.Height < 0 {
		dim.Height = 0
	}
	if dim.Depth < 0 {
		dim.Depth = 0
	}
	return &Grid{
		dimension: dim,
		tiles:     make([]Tile, dim.Cells()),
	}
}

func (g *Grid) Dimensions() Dimensions {
	return g.dimension
}

func (g *Grid) index(y, z, x int) int {
	return (y*g.dimension.Depth+z)*g.dimension.Width + x
}

// InBounds reports whether (y, z, x) addresses a cell of the grid.
func (g *Grid) InBounds(y, z, x int) bool {
	return y >= 0 && z >= 0 && x >= 0 &&
		y < g.dimension.Height && z < g.dimension.Depth && x < g.dimension.Width
}

// At returns the tile at (y, z, x), or the zero tile outside the grid.
func (g *Grid) At(y, z, x int) Tile {
	if !g.InBounds(y, z, x) {
		return Tile{}
	}
	return g.tiles[g.index(y, z, x)]
}

// Set writes a tile and reports whether the coordinate was inside the grid.
func (g *Grid) Set(y, z, x int, tile Tile) bool {
	if !g.InBounds(y, z, x) {
		return false
	}
	g.tiles[g.index(y, z, x)] = tile
	return true
}

// Fill overwrites every cell of layer y.
func (g *Grid) Fill(y int, tile Tile) {
	if y < 0 || y >= g.dimension.Height {
		return
	}
	start := g.index(y, 0, 0)
	layer := g.tiles[start : start+g.dimension.Width*g.dimension.Depth]
	for i := range layer {
		layer[i] = tile
	}
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	tiles := make([]Tile, len(g.tiles))
	copy(tiles, g.tiles)
	return &Grid{dimension: g.dimension, tiles: tiles}
}

// Equal reports whether both grids have the same extents and tiles.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.dimension != other.dimension {
		return false
	}
	for i := range g.tiles {
		if g.tiles[i] != other.tiles[i] {
			return false
		}
	}
	return true
}

// Count returns how many cells hold a tile of type t.
func (g *Grid) Count(t TileType) int {
	n := 0
	for _, tile := range g.tiles {
		if tile.Type == t {
			n++
		}
	}
	return n
}

// IsEmpty reports air. Outside the grid is empty.
func (g *Grid) IsEmpty(y, z, x int) bool {
	if !g.InBounds(y, z, x) {
		return true
	}
	return g.tiles[g.index(y, z, x)].Type == Air
}

// IsRamp reports a ramp tile. Outside the grid is never a ramp.
func (g *Grid) IsRamp(y, z, x int) bool {
	if !g.InBounds(y, z, x) {
		return false
	}
	return g.tiles[g.index(y, z, x)].IsRamp
}

// IsFull reports a cell-filling tile. Outside the grid is never full.
func (g *Grid) IsFull(y, z, x int) bool {
	return g.At(y, z, x).IsFull
}

// IsOpen reports air or lava, the tiles that do not enclose a neighbor.
// Outside the grid is not open, so the world boundary counts as enclosing.
func (g *Grid) IsOpen(y, z, x int) bool {
	if !g.InBounds(y, z, x) {
		return false
	}
	t := g.tiles[g.index(y, z, x)].Type
	return t == Air || t == Lava
}

// IsSolidBlock reports a non-air, non-ramp tile: one that hides the cell
// behind it.
func (g *Grid) IsSolidBlock(y, z, x int) bool {
	return !g.IsEmpty(y, z, x) && !g.IsRamp(y, z, x)
}

// IsSurrounded reports whether both vertical neighbors are closed and all four
// horizontal neighbors are closed, non-ramp tiles.
func (g *Grid) IsSurrounded(y, z, x int) bool {
	if g.IsOpen(y+1, z, x) || g.IsOpen(y-1, z, x) {
		return false
	}
	horizontal := [4][2]int{{z + 1, x}, {z - 1, x}, {z, x + 1}, {z, x - 1}}
	for _, n := range horizontal {
		if g.IsOpen(y, n[0], n[1]) || g.IsRamp(y, n[0], n[1]) {
			return false
		}
	}
	return true
}
