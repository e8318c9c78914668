package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Isometric basis vectors, in cell units.
var (
	AxisX = mgl32.Vec2{0.5, -0.25}
	AxisZ = mgl32.Vec2{-0.5, -0.25}
	AxisY = mgl32.Vec2{0, -1}
)

// Projection maps grid indices to isometric world positions and back.
// CellWidth scales the horizontal axes, CellHeight the layer axis.
type Projection struct {
	CellWidth  float32
	CellHeight float32
}

// DefaultProjection is the 32x16 reference projection.
func DefaultProjection() Projection {
	return Projection{CellWidth: 32, CellHeight: 16}
}

// GridToWorld returns the world position of cell (y, z, x).
func (p Projection) GridToWorld(y, z, x int) mgl32.Vec2 {
	return AxisX.Mul(float32(x) * p.CellWidth).
		Add(AxisZ.Mul(float32(z) * p.CellWidth)).
		Add(AxisY.Mul(float32(y) * p.CellHeight))
}

// WorldToGrid inverts GridToWorld on the layer-0 plane and returns the grid
// column (x, z) under the world point. Both results are integral.
func (p Projection) WorldToGrid(wx, wy float32) (x, z float32) {
	half := p.CellWidth / 2
	z = -float32(math.Ceil(float64(wy/half + wx/p.CellWidth)))
	x = -float32(math.Ceil(float64(-wx/p.CellWidth + wy/half)))
	return x, z
}

// WorldToGridAtLayer is WorldToGrid for a point lying on layer y's plane.
func (p Projection) WorldToGridAtLayer(wx, wy float32, y int) (x, z float32) {
	return p.WorldToGrid(wx, wy+float32(y)*p.CellHeight)
}

// LayerShift is how many columns along both X and Z the layer-0 pick of a
// point moves when the point is taken to lie on layer y instead.
func (p Projection) LayerShift(y int) int {
	half := p.CellWidth / 2
	if half == 0 {
		return 0
	}
	return int(math.Round(float64(float32(y) * p.CellHeight / half)))
}
