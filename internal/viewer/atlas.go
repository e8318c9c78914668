package viewer

import (
	"image"
	"image/color"
)

const (
	atlasCells    = 8
	atlasCellSize = 32
)

// Placeholder colours by atlas cell (row, column). Cells not listed are
// left transparent.
var placeholderCells = map[[2]int]color.NRGBA{
	{0, 0}: {R: 0x5d, G: 0x9b, B: 0x3d, A: 255}, // dirt top
	{0, 1}: {R: 0x6b, G: 0x45, B: 0x22, A: 255}, // south face
	{0, 2}: {R: 0x8b, G: 0x5a, B: 0x2b, A: 255}, // east face
	{0, 3}: {R: 0x74, G: 0xa8, B: 0x4f, A: 255},
	{0, 4}: {R: 0x74, G: 0xa8, B: 0x4f, A: 255},
	{0, 5}: {R: 0x6a, G: 0x9e, B: 0x46, A: 255},
	{0, 6}: {R: 0x66, G: 0x99, B: 0x42, A: 255},
	{0, 7}: {R: 0x6a, G: 0x9e, B: 0x46, A: 255},
	{1, 2}: {R: 0xff, G: 0xff, B: 0xff, A: 160}, // empty cursor
	{1, 3}: {R: 0x56, G: 0x86, B: 0x3a, A: 255},
	{1, 4}: {R: 0x56, G: 0x86, B: 0x3a, A: 255},
	{1, 5}: {R: 0x66, G: 0x99, B: 0x42, A: 255},
	{1, 6}: {R: 0x66, G: 0x99, B: 0x42, A: 255},
	{1, 7}: {R: 0x66, G: 0x99, B: 0x42, A: 255},
	{2, 0}: {R: 0x7d, G: 0x7d, B: 0x7d, A: 255}, // stone
	{3, 3}: {R: 0x3b, G: 0x2a, B: 0x1a, A: 255},
	{3, 4}: {R: 0x3b, G: 0x2a, B: 0x1a, A: 255},
	{4, 0}: {R: 0xa0, G: 0x70, B: 0x3c, A: 255}, // wood
	{4, 1}: {R: 0xc0, G: 0x8a, B: 0x4c, A: 200},
	{4, 2}: {R: 0xc0, G: 0x8a, B: 0x4c, A: 200},
	{4, 3}: {R: 0xc0, G: 0x8a, B: 0x4c, A: 200},
	{4, 4}: {R: 0xc0, G: 0x8a, B: 0x4c, A: 200},
	{6, 0}: {R: 0xe0, G: 0x52, B: 0x1b, A: 255}, // lava
	{3, 5}: {R: 0x2a, G: 0x1d, B: 0x12, A: 255}, // underside
	{3, 6}: {R: 0x2a, G: 0x1d, B: 0x12, A: 255},
	{7, 7}: {R: 0xff, G: 0x00, B: 0xff, A: 255}, // surrounded marker
}

// PlaceholderAtlas draws a flat-coloured 8x8 atlas so the viewer runs
// without art. Each coloured cell is an isometric diamond sitting at the
// bottom of its 32x32 sprite.
func PlaceholderAtlas() *image.NRGBA {
	size := atlasCells * atlasCellSize
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for cell, col := range placeholderCells {
		ox := cell[1] * atlasCellSize
		oy := cell[0] * atlasCellSize
		fillDiamond(img, ox, oy+atlasCellSize/2, col)
	}
	return img
}

// fillDiamond fills the 32x16 diamond whose bounding box starts at (ox, oy).
func fillDiamond(img *image.NRGBA, ox, oy int, col color.NRGBA) {
	half := atlasCellSize / 2
	for dy := 0; dy < half; dy++ {
		// Distance from the diamond's horizontal centre line, in rows.
		d := dy - half/2
		if d < 0 {
			d = -d - 1
		}
		inset := d * 2
		for dx := inset; dx < atlasCellSize-inset; dx++ {
			img.SetNRGBA(ox+dx, oy+dy, col)
		}
	}
}

// TexRectBounds converts a normalised (u0, v0, u1, v1) rectangle into pixel
// bounds on an atlas of the given size.
func TexRectBounds(rect [4]float32, width, height int) image.Rectangle {
	return image.Rect(
		int(rect[0]*float32(width)+0.5),
		int(rect[1]*float32(height)+0.5),
		int(rect[2]*float32(width)+0.5),
		int(rect[3]*float32(height)+0.5),
	)
}
