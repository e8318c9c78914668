// Package mesh turns layers of a tile grid into ordered lists of textured
// quads for an isometric renderer.
package mesh

import "github.com/go-gl/mathgl/mgl32"

// Quad is one textured rectangle draw command.
type Quad struct {
	// Position holds the world x and y of the pivot and, in Z, the draw-order
	// key. Larger keys draw in front.
	Position mgl32.Vec3
	Scale    mgl32.Vec2
	Rotation float32
	Size     mgl32.Vec2
	Pivot    mgl32.Vec2
	// TexRect is (u0, v0, u1, v1) in normalised atlas coordinates.
	TexRect mgl32.Vec4
	Tint    float32
}

// Depth returns the draw-order key.
func (q Quad) Depth() float32 {
	return q.Position.Z()
}

// Layer is the mesh of one horizontal slice of the grid.
type Layer struct {
	Quads []Quad
	// BuiltFull is set when the layer was built without occlusion culling.
	BuiltFull bool
}

// DepthKey is the painter's order of cell (y, z, x): rows nearer the viewer
// and higher layers draw later.
func DepthKey(y, z, x int) float32 {
	return float32(-(x + z) + y*2)
}

const (
	auxDepthOffset    = 0.1
	cursorDepthOffset = 0.5
)

var (
	unitScale   = mgl32.Vec2{1, 1}
	bottomPivot = mgl32.Vec2{0.5, 1}
)

func newQuad(pos mgl32.Vec2, depth, size float32, rect mgl32.Vec4) Quad {
	return Quad{
		Position: mgl32.Vec3{pos.X(), pos.Y(), depth},
		Scale:    unitScale,
		Size:     mgl32.Vec2{size, size},
		Pivot:    bottomPivot,
		TexRect:  rect,
		Tint:     1,
	}
}
