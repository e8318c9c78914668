package mesh

import (
	"github.com/go-gl/mathgl/mgl32"

	"isoworld/internal/world"
)

// The atlas is an 8x8 sheet; every rectangle below is one cell of it.
var (
	FallbackRect   = mgl32.Vec4{0, 0, 1, 1}
	SurroundedRect = mgl32.Vec4{0.875, 0.875, 1, 1}

	EastFaceRect       = mgl32.Vec4{0.25, 0, 0.375, 0.125}
	SouthFaceRect      = mgl32.Vec4{0.125, 0, 0.25, 0.125}
	UndersideLeftRect  = mgl32.Vec4{0.625, 0.375, 0.75, 0.5}
	UndersideRightRect = mgl32.Vec4{0.75, 0.375, 0.875, 0.5}
)

var blockRects = map[world.TileType]mgl32.Vec4{
	world.Dirt:  {0, 0, 0.125, 0.125},
	world.Stone: {0, 0.25, 0.125, 0.375},
	world.Wood:  {0, 0.5, 0.125, 0.625},
	world.Lava:  {0, 0.75, 0.125, 0.875},
}

var (
	rampXPRect = mgl32.Vec4{0.375, 0, 0.5, 0.125}
	rampZPRect = mgl32.Vec4{0.5, 0, 0.625, 0.125}
	rampXNRect = mgl32.Vec4{0.875, 0, 1, 0.125}
	rampZNRect = mgl32.Vec4{0.75, 0, 0.875, 0.125}
)

// Wood ramps are only ever placed by hand, in the four cardinal facings.
var rampRects = map[world.TileType]map[world.Direction]mgl32.Vec4{
	world.DirtRamp: {
		world.XP:   rampXPRect,
		world.ZP:   rampZPRect,
		world.XN:   rampXNRect,
		world.ZN:   rampZNRect,
		world.XPZP: {0.625, 0, 0.75, 0.125},
		world.XNZN: {0.875, 0.125, 1, 0.25},
		world.XPZN: {0.75, 0.125, 0.875, 0.25},
		world.XNZP: {0.625, 0.125, 0.75, 0.25},
	},
	world.WoodRamp: {
		world.XP: rampXPRect,
		world.ZP: rampZPRect,
		world.XN: rampXNRect,
		world.ZN: rampZNRect,
	},
}

// TextureRect returns the base atlas rectangle for a tile. Combinations
// without an entry fall back to the whole atlas.
func TextureRect(tile world.Tile) mgl32.Vec4 {
	if table, ok := rampRects[tile.Type]; ok {
		if rect, ok := table[tile.Direction]; ok {
			return rect
		}
		return FallbackRect
	}
	if rect, ok := blockRects[tile.Type]; ok {
		return rect
	}
	return FallbackRect
}

// rampOverlay is the extra face drawn on top of a ramp. When clear is set the
// overlay is only drawn if the neighbor at that offset is air.
type rampOverlay struct {
	rect  mgl32.Vec4
	clear *[2]int // (dz, dx)
}

// -X and -Z facing ramps, and the +X+Z and -X-Z corners, have no overlay.
var rampOverlays = map[world.Direction]rampOverlay{
	world.XPZN: {rect: mgl32.Vec4{0.375, 0.375, 0.5, 0.5}},
	world.XNZP: {rect: mgl32.Vec4{0.5, 0.375, 0.625, 0.5}},
	world.XP:   {rect: mgl32.Vec4{0.375, 0.125, 0.5, 0.25}, clear: &[2]int{1, 0}},
	world.ZP:   {rect: mgl32.Vec4{0.5, 0.125, 0.625, 0.25}, clear: &[2]int{0, 1}},
}

// cursorRects is indexed by placeable block kind.
var cursorRects = [...]mgl32.Vec4{
	{0.25, 0.125, 0.375, 0.25},
	{0, 0.5, 0.125, 0.625},
	{0.125, 0.5, 0.25, 0.625},
	{0.25, 0.5, 0.375, 0.625},
	{0.375, 0.5, 0.5, 0.625},
	{0.5, 0.5, 0.625, 0.625},
}
