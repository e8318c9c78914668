//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"isoworld/internal/config"
	"isoworld/internal/editor"
	"isoworld/internal/mesh"
	"isoworld/internal/metrics"
	"isoworld/internal/terrain"
	"isoworld/internal/viewer"
	"isoworld/internal/world"
)

func main() {
	configPath := flag.String("config", "", "path to world configuration file (YAML or JSON)")
	atlasPath := flag.String("atlas", "", "sprite atlas image; empty uses flat placeholder sprites")
	width := flag.Int("width", 1280, "window width")
	height := flag.Int("height", 720, "window height")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("isoviewer: load config: %v", err)
	}

	var atlas *ebiten.Image
	if *atlasPath != "" {
		if atlas, err = viewer.LoadAtlas(*atlasPath); err != nil {
			log.Fatalf("isoviewer: %v", err)
		}
	}

	grid := terrain.NewGenerator(*cfg).Generate()
	proj := world.Projection{CellWidth: cfg.CellWidth, CellHeight: cfg.CellHeight}
	w := editor.NewWorld(grid, mesh.NewBuilder(proj, cfg.HighlightSurrounded), metrics.NewCollector())

	game := viewer.New(w, proj, atlas)

	ebiten.SetWindowTitle("isoworld")
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
