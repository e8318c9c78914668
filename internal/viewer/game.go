//go:build ebiten

package viewer

import (
	"fmt"
	_ "image/png" // atlas files
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"isoworld/internal/editor"
	"isoworld/internal/mesh"
	"isoworld/internal/world"
)

const (
	panSpeed  = 600.0 // world units per second
	minZoom   = 0.05
	zoomSpeed = 0.1
)

// Game adapts an editor world to the ebiten.Game interface.
type Game struct {
	world *editor.World
	proj  world.Projection
	atlas *ebiten.Image

	camX, camY float64
	zoom       float64

	screenW, screenH int
	pickX, pickZ     int

	quads []mesh.Quad
	op    ebiten.DrawImageOptions
}

// New builds a viewer over w. A nil atlas uses the generated placeholder.
func New(w *editor.World, proj world.Projection, atlas *ebiten.Image) *Game {
	if atlas == nil {
		atlas = ebiten.NewImageFromImage(PlaceholderAtlas())
	}
	return &Game{
		world: w,
		proj:  proj,
		atlas: atlas,
		camY:  -float64(w.Cutoff()) * float64(proj.CellHeight),
		zoom:  1,
	}
}

func keyState(k ebiten.Key) editor.Key {
	d := inpututil.KeyPressDuration(k)
	return editor.Key{Down: d > 0, WasDown: d > 1}
}

// Update handles camera movement and forwards edit input to the world.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	step := panSpeed / float64(ebiten.TPS())
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		g.camY -= step
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		g.camY += step
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		g.camX -= step
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		g.camX += step
	}
	if _, wheel := ebiten.Wheel(); wheel != 0 {
		g.zoom = math.Max(minZoom, g.zoom*(1+wheel*zoomSpeed))
	}

	mx, my := ebiten.CursorPosition()
	wx, wy := g.screenToWorld(mx, my)
	gx, gz := g.proj.WorldToGrid(float32(wx), float32(wy))
	g.pickX, g.pickZ = int(gx), int(gz)

	in := editor.FrameInput{
		GridX:     g.pickX,
		GridZ:     g.pickZ,
		Place:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		CycleKind: keyState(ebiten.KeyN),
		LowerHeld: keyState(ebiten.KeyQ),
		RaiseHeld: keyState(ebiten.KeyE),
		LowerStep: keyState(ebiten.KeyI),
		RaiseStep: keyState(ebiten.KeyP),
	}
	before := g.world.Cutoff()
	g.world.Step(in)
	if in.LowerStep.Pressed() || in.RaiseStep.Pressed() {
		// Keep the top layer in place on screen for single steps.
		g.camY += float64(before-g.world.Cutoff()) * float64(g.proj.CellHeight)
	}
	return nil
}

func (g *Game) screenToWorld(sx, sy int) (float64, float64) {
	wx := (float64(sx)-float64(g.screenW)/2)/g.zoom + g.camX
	wy := (float64(sy)-float64(g.screenH)/2)/g.zoom + g.camY
	return wx, wy
}

// Draw paints the visible layers and the placement cursor back to front.
func (g *Game) Draw(screen *ebiten.Image) {
	g.quads = Frame(g.world, g.quads, g.pickX, g.pickZ)
	for _, q := range g.quads {
		g.drawQuad(screen, q)
	}

	y, z, x := g.world.Target(g.pickX, g.pickZ)
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"fps %.0f\ncutoff %d\nblock %s\ncell (%d, %d, %d)",
		ebiten.ActualFPS(), g.world.Cutoff(), g.world.Kind(), y, z, x,
	))
}

func (g *Game) drawQuad(screen *ebiten.Image, q mesh.Quad) {
	bounds := g.atlas.Bounds()
	src := TexRectBounds(q.TexRect, bounds.Dx(), bounds.Dy())
	if src.Empty() {
		return
	}
	sprite := g.atlas.SubImage(src.Add(bounds.Min)).(*ebiten.Image)

	sx := float64(q.Size.X()*q.Scale.X()) / float64(src.Dx())
	sy := float64(q.Size.Y()*q.Scale.Y()) / float64(src.Dy())

	g.op.GeoM.Reset()
	g.op.GeoM.Scale(sx, sy)
	g.op.GeoM.Translate(
		-float64(q.Size.X()*q.Pivot.X()),
		-float64(q.Size.Y()*q.Pivot.Y()),
	)
	if q.Rotation != 0 {
		g.op.GeoM.Rotate(float64(q.Rotation))
	}
	g.op.GeoM.Translate(float64(q.Position.X())-g.camX, float64(q.Position.Y())-g.camY)
	g.op.GeoM.Scale(g.zoom, g.zoom)
	g.op.GeoM.Translate(float64(g.screenW)/2, float64(g.screenH)/2)

	g.op.ColorScale.Reset()
	g.op.ColorScale.Scale(q.Tint, q.Tint, q.Tint, 1)
	screen.DrawImage(sprite, &g.op)
}

// Layout tracks the window size so the camera stays centred.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.screenW, g.screenH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// LoadAtlas decodes an atlas image from disk.
func LoadAtlas(path string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load atlas: %w", err)
	}
	return img, nil
}
