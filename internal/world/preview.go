package world

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

const previewAmbientLight = 0.2

// tileAppearance captures the flat preview colour of a material.
type tileAppearance struct {
	Color    string
	Emission float64
}

var previewAppearances = map[TileType]tileAppearance{
	Dirt:     {Color: "#8b5a2b"},
	DirtRamp: {Color: "#5d9b3d"},
	Stone:    {Color: "#7d7d7d"},
	Wood:     {Color: "#a0703c"},
	WoodRamp: {Color: "#c08a4c"},
	Lava:     {Color: "#e0521b", Emission: 1},
}

type tilePreview struct {
	tile  Tile
	order int
	seq   int
	base  image.Point
}

// RenderPreview draws the layers below cutoff as flat-shaded isometric
// blocks using the projection's cell sizes. Cells hidden under their top and
// viewer-facing neighbors are skipped.
func RenderPreview(g *Grid, proj Projection, cutoff int) *image.NRGBA {
	dim := g.Dimensions()
	if cutoff > dim.Height {
		cutoff = dim.Height
	}
	if cutoff < 0 {
		cutoff = 0
	}

	tileWidth := int(proj.CellWidth)
	tileHeight := tileWidth / 2
	blockHeight := int(proj.CellHeight)

	offsetX := dim.Depth * tileWidth / 2
	offsetY := (dim.Width+dim.Depth-2)*tileHeight/2 + cutoff*blockHeight
	width := offsetX + dim.Width*tileWidth/2 + 1
	height := offsetY + tileHeight + 1
	img := image.NewNRGBA(image.Rect(0, 0, width, height))

	background := color.NRGBA{R: 25, G: 25, B: 25, A: 255}
	draw.Draw(img, img.Bounds(), &image.Uniform{background}, image.Point{}, draw.Src)

	tiles := collectPreviewTiles(g, proj, cutoff, offsetX, offsetY)
	sort.Slice(tiles, func(i, j int) bool {
		if tiles[i].order == tiles[j].order {
			return tiles[i].seq < tiles[j].seq
		}
		return tiles[i].order < tiles[j].order
	})

	for _, info := range tiles {
		h := blockHeight
		if info.tile.IsRamp {
			h = blockHeight / 2
		}
		renderTilePreview(img, info.base.X, info.base.Y, tileWidth, tileHeight, h, info.tile)
	}
	return img
}

// SavePreview renders the preview and writes it as a PNG file.
func SavePreview(g *Grid, proj Projection, cutoff int, path string) error {
	if g == nil {
		return fmt.Errorf("grid is nil")
	}
	if path == "" {
		return fmt.Errorf("preview path is empty")
	}
	img := RenderPreview(g, proj, cutoff)

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create preview directory: %w", err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create preview: %w", err)
	}
	defer file.Close()
	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encode preview: %w", err)
	}
	return nil
}

func collectPreviewTiles(g *Grid, proj Projection, cutoff, offsetX, offsetY int) []tilePreview {
	dim := g.Dimensions()
	tiles := make([]tilePreview, 0, dim.Width*dim.Depth*2)
	seq := 0
	for y := 0; y < cutoff; y++ {
		for z := 0; z < dim.Depth; z++ {
			for x := 0; x < dim.Width; x++ {
				tile := g.At(y, z, x)
				if tile.Type == Air {
					continue
				}
				if y+1 < cutoff && !g.IsEmpty(y+1, z, x) &&
					g.IsSolidBlock(y, z, x+1) && g.IsSolidBlock(y, z+1, x) {
					continue
				}
				pos := proj.GridToWorld(y, z, x)
				tiles = append(tiles, tilePreview{
					tile:  tile,
					order: -(x + z) + y*2,
					seq:   seq,
					base: image.Point{
						X: offsetX + int(math.Round(float64(pos.X()))),
						Y: offsetY + int(math.Round(float64(pos.Y()))),
					},
				})
				seq++
			}
		}
	}
	return tiles
}

func renderTilePreview(img *image.NRGBA, baseX, baseY, tileWidth, tileHeight, blockHeight int, tile Tile) {
	appearance := previewAppearances[tile.Type]
	baseColor, ok := parseHexColor(appearance.Color)
	if !ok {
		baseColor = color.NRGBA{R: 128, G: 128, B: 128, A: 255}
	}
	emission := clamp(appearance.Emission, 0, 1)

	topColor := applyLighting(baseColor, previewAmbientLight+0.4+0.6*emission)
	leftColor := applyLighting(baseColor, previewAmbientLight+0.25+0.4*emission)
	rightColor := applyLighting(baseColor, previewAmbientLight+0.15+0.3*emission)

	topY := baseY + tileHeight - blockHeight
	top := []image.Point{
		{X: baseX, Y: topY - tileHeight},
		{X: baseX + tileWidth/2, Y: topY - tileHeight/2},
		{X: baseX, Y: topY},
		{X: baseX - tileWidth/2, Y: topY - tileHeight/2},
	}
	left := []image.Point{
		{X: baseX - tileWidth/2, Y: topY - tileHeight/2},
		{X: baseX, Y: topY},
		{X: baseX, Y: baseY + tileHeight},
		{X: baseX - tileWidth/2, Y: baseY + tileHeight/2},
	}
	right := []image.Point{
		{X: baseX + tileWidth/2, Y: topY - tileHeight/2},
		{X: baseX, Y: topY},
		{X: baseX, Y: baseY + tileHeight},
		{X: baseX + tileWidth/2, Y: baseY + tileHeight/2},
	}

	fillPolygon(img, left, leftColor)
	fillPolygon(img, right, rightColor)
	fillPolygon(img, top, topColor)
}

func parseHexColor(value string) (color.NRGBA, bool) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(value), "#")
	if len(trimmed) != 6 {
		return color.NRGBA{}, false
	}
	r, ok := parseHexByte(trimmed[0:2])
	if !ok {
		return color.NRGBA{}, false
	}
	g, ok := parseHexByte(trimmed[2:4])
	if !ok {
		return color.NRGBA{}, false
	}
	b, ok := parseHexByte(trimmed[4:6])
	if !ok {
		return color.NRGBA{}, false
	}
	return color.NRGBA{R: r, G: g, B: b, A: 255}, true
}

func parseHexByte(value string) (uint8, bool) {
	v, err := strconv.ParseUint(value, 16, 8)
	if err != nil {
		return 0, false
	}
	return uint8(v), true
}

func applyLighting(base color.NRGBA, factor float64) color.NRGBA {
	factor = clamp(factor, 0, 1)
	r := uint8(math.Round(float64(base.R) * factor))
	g := uint8(math.Round(float64(base.G) * factor))
	b := uint8(math.Round(float64(base.B) * factor))
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

func clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

func fillPolygon(img *image.NRGBA, pts []image.Point, col color.NRGBA) {
	if len(pts) < 3 {
		return
	}
	minY := pts[0].Y
	maxY := pts[0].Y
	for _, p := range pts[1:] {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	bounds := img.Bounds()
	if minY < bounds.Min.Y {
		minY = bounds.Min.Y
	}
	if maxY > bounds.Max.Y-1 {
		maxY = bounds.Max.Y - 1
	}
	crossings := make([]int, 0, len(pts))
	for y := minY; y <= maxY; y++ {
		crossings = crossings[:0]
		for i := range pts {
			j := (i + 1) % len(pts)
			x1, y1 := pts[i].X, pts[i].Y
			x2, y2 := pts[j].X, pts[j].Y
			if y1 == y2 {
				continue
			}
			if y < min(y1, y2) || y >= max(y1, y2) {
				continue
			}
			crossings = append(crossings, x1+(y-y1)*(x2-x1)/(y2-y1))
		}
		if len(crossings) < 2 {
			continue
		}
		sort.Ints(crossings)
		for i := 0; i+1 < len(crossings); i += 2 {
			xStart := crossings[i]
			xEnd := crossings[i+1]
			if xEnd < bounds.Min.X || xStart >= bounds.Max.X {
				continue
			}
			if xStart < bounds.Min.X {
				xStart = bounds.Min.X
			}
			if xEnd > bounds.Max.X-1 {
				xEnd = bounds.Max.X - 1
			}
			for x := xStart; x <= xEnd; x++ {
				idx := (y-bounds.Min.Y)*img.Stride + (x-bounds.Min.X)*4
				img.Pix[idx] = col.R
				img.Pix[idx+1] = col.G
				img.Pix[idx+2] = col.B
				img.Pix[idx+3] = col.A
			}
		}
	}
}
