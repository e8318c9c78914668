package mesh

import (
	"isoworld/internal/world"
)

// Builder converts one layer of a grid into quads.
type Builder struct {
	Projection world.Projection
	// HighlightSurrounded swaps the texture of fully enclosed cells for a
	// marker so buried tiles stand out.
	HighlightSurrounded bool
}

func NewBuilder(proj world.Projection, highlightSurrounded bool) *Builder {
	return &Builder{Projection: proj, HighlightSurrounded: highlightSurrounded}
}

// Build emits the quads of layer y in z-major, x-minor order. Quads are not
// sorted by depth key; the renderer resolves overlap with the key.
//
// With occlude set, cells walled in on -X and -Z by solid blocks and covered
// from above are skipped. The result is cheaper but only valid for layers
// that are not the top visible one.
func (b *Builder) Build(grid *world.Grid, y int, occlude bool) Layer {
	layer := Layer{BuiltFull: !occlude}
	dim := grid.Dimensions()
	if y < 0 || y >= dim.Height {
		return layer
	}

	size := b.Projection.CellWidth
	for z := 0; z < dim.Depth; z++ {
		for x := 0; x < dim.Width; x++ {
			if occlude && Hidden(grid, y, z, x) {
				continue
			}
			tile := grid.At(y, z, x)
			if tile.Type == world.Air {
				continue
			}

			pos := b.Projection.GridToWorld(y, z, x)
			depth := DepthKey(y, z, x)
			aux := depth + auxDepthOffset

			rect := TextureRect(tile)
			if b.HighlightSurrounded && grid.IsSurrounded(y, z, x) {
				rect = SurroundedRect
			}
			layer.Quads = append(layer.Quads, newQuad(pos, depth, size, rect))

			if tile.IsFull {
				if grid.IsEmpty(y, z, x+1) || grid.IsRamp(y, z, x+1) {
					layer.Quads = append(layer.Quads, newQuad(pos, aux, size, EastFaceRect))
				}
				if grid.IsEmpty(y, z+1, x) || grid.IsRamp(y, z+1, x) {
					layer.Quads = append(layer.Quads, newQuad(pos, aux, size, SouthFaceRect))
				}
				if grid.IsEmpty(y-1, z, x) {
					layer.Quads = append(layer.Quads,
						newQuad(pos, aux, size, UndersideLeftRect),
						newQuad(pos, aux, size, UndersideRightRect),
					)
				}
			}

			if tile.IsRamp {
				if overlay, ok := rampOverlays[tile.Direction]; ok {
					if overlay.clear == nil || grid.IsEmpty(y, z+overlay.clear[0], x+overlay.clear[1]) {
						layer.Quads = append(layer.Quads, newQuad(pos, aux, size, overlay.rect))
					}
				}
			}
		}
	}
	return layer
}

// Hidden is the conservative occlusion test: solid blocks on the -X and -Z
// sides and anything but air on top.
func Hidden(grid *world.Grid, y, z, x int) bool {
	return grid.IsSolidBlock(y, z, x-1) &&
		grid.IsSolidBlock(y, z-1, x) &&
		!grid.IsEmpty(y+1, z, x)
}
