// Package terrain fills a tile grid from the noise fields. Generation is two
// passes: a terrain fill that lays stone, topsoil and lava pockets, then a
// ramp pass that slopes the air cells bordering topsoil.
package terrain

import (
	"log"
	"runtime"
	"sync"

	"isoworld/internal/config"
	"isoworld/internal/noise"
	"isoworld/internal/world"
)

// Generator creates repeatable worlds from a configuration.
type Generator struct {
	cfg     config.Config
	sampler *noise.Sampler
}

// NewGenerator clamps out-of-range noise parameters on its own copy of cfg,
// logging each adjustment, so configurations built in code are as safe as
// loaded ones.
func NewGenerator(cfg config.Config) *Generator {
	for _, adjustment := range cfg.Normalize() {
		log.Printf("generator config: %s", adjustment)
	}
	return &Generator{
		cfg:     cfg,
		sampler: noise.NewSampler(cfg.Seed),
	}
}

// Dimensions returns the grid extents the generator produces.
func (g *Generator) Dimensions() world.Dimensions {
	return world.Dimensions{Width: g.cfg.SizeX, Height: g.cfg.SizeY, Depth: g.cfg.SizeZ}
}

// Generate runs both passes and returns the finished grid. The same
// configuration always produces an identical grid.
func (g *Generator) Generate() *world.Grid {
	grid := world.NewGrid(g.Dimensions())
	g.fill(grid)
	ramps := InferRamps(grid)
	log.Printf("world generation placed %d ramps", ramps)
	return grid
}

// SurfaceHeight is the topsoil layer of column (x, z). Layers below it are
// stone.
func (g *Generator) SurfaceHeight(x, z int) int {
	h := g.sampler.Heightmap(
		float64(x), float64(g.cfg.SizeZ-z),
		g.cfg.TerrainScale, g.cfg.Octaves, g.cfg.Persistence, g.cfg.Lacunarity, g.cfg.ApplyPower,
	)
	return int(h*g.cfg.HeightAmplitude) + g.cfg.BaseHeight
}

// IsLava reports whether cell (y, z, x) lies inside a lava pocket.
func (g *Generator) IsLava(y, z, x int) bool {
	if y > g.cfg.CaveCeiling {
		return false
	}
	scale := g.cfg.CaveScale
	v := g.sampler.Volume(g.cfg.CaveOctaves, float64(x)/scale, float64(y)/scale, float64(z)/scale)
	return v < g.cfg.CaveThreshold
}

// fill is the terrain pass. Layers write disjoint cells, so they are spread
// over a worker pool; the result does not depend on scheduling.
func (g *Generator) fill(grid *world.Grid) {
	dim := grid.Dimensions()
	if dim.Cells() == 0 {
		log.Printf("world generation progress: 100%%")
		return
	}

	// Surface heights are shared by every layer of a column.
	heights := make([]int, dim.Width*dim.Depth)
	for z := 0; z < dim.Depth; z++ {
		for x := 0; x < dim.Width; x++ {
			heights[z*dim.Width+x] = g.SurfaceHeight(x, z)
		}
	}

	log.Printf("world generation progress: 0%%")

	workers := g.workerCount(dim.Height)
	layers := make(chan int, workers)
	done := make(chan int, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range layers {
				g.fillLayer(grid, heights, y)
				done <- y
			}
		}()
	}

	go func() {
		wg.Wait()
		close(done)
	}()

	go func() {
		defer close(layers)
		for y := 0; y < dim.Height; y++ {
			layers <- y
		}
	}()

	generated := 0
	nextLogPercent := 10
	for range done {
		generated++
		progress := generated * 100 / dim.Height
		if progress >= nextLogPercent {
			log.Printf("world generation progress: %d%%", progress)
			nextLogPercent = ((progress / 10) + 1) * 10
		}
	}
}

func (g *Generator) fillLayer(grid *world.Grid, heights []int, y int) {
	dim := grid.Dimensions()
	for z := 0; z < dim.Depth; z++ {
		for x := 0; x < dim.Width; x++ {
			var tile world.Tile
			height := heights[z*dim.Width+x]
			if height > y {
				tile = world.Solid(world.Stone)
			} else if height == y {
				tile = world.Solid(world.Dirt)
			}
			if g.IsLava(y, z, x) {
				tile = world.Tile{Type: world.Lava}
			}
			grid.Set(y, z, x, tile)
		}
	}
}

func (g *Generator) workerCount(layers int) int {
	if layers <= 0 {
		return 1
	}
	if g.cfg.Workers > 0 {
		if g.cfg.Workers < layers {
			return g.cfg.Workers
		}
		return layers
	}
	workers := runtime.GOMAXPROCS(0)
	if workers <= 0 {
		workers = 1
	}
	if workers > layers {
		workers = layers
	}
	return workers
}
