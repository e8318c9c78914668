package terrain

import (
	"bytes"
	"log"
	"math"
	"strings"
	"testing"

	"isoworld/internal/config"
	"isoworld/internal/world"
)

func smallConfig() config.Config {
	cfg := *config.Default()
	cfg.SizeX = 12
	cfg.SizeY = 16
	cfg.SizeZ = 10
	cfg.BaseHeight = 8
	cfg.HeightAmplitude = 3
	cfg.TerrainScale = 5
	cfg.CaveCeiling = 3
	return cfg
}

func silenceLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	originalFlags := log.Flags()
	originalPrefix := log.Prefix()
	originalWriter := log.Writer()
	log.SetFlags(0)
	log.SetPrefix("")
	log.SetOutput(&buf)
	t.Cleanup(func() {
		log.SetOutput(originalWriter)
		log.SetPrefix(originalPrefix)
		log.SetFlags(originalFlags)
	})
	return &buf
}

func TestGeneratorGenerateLogsProgress(t *testing.T) {
	buf := silenceLog(t)

	cfg := smallConfig()
	cfg.SizeY = 4
	grid := NewGenerator(cfg).Generate()
	if grid == nil {
		t.Fatal("expected grid to be generated")
	}

	logs := buf.String()
	for _, marker := range []string{"0%", "25%", "50%", "75%", "100%", "ramps"} {
		if !strings.Contains(logs, marker) {
			t.Fatalf("expected logs to contain %s, got: %s", marker, logs)
		}
	}
}

func TestGeneratorDeterministic(t *testing.T) {
	silenceLog(t)

	cfg := smallConfig()
	first := NewGenerator(cfg).Generate()
	second := NewGenerator(cfg).Generate()
	if !first.Equal(second) {
		t.Fatalf("expected identical grids for identical configuration")
	}

	cfg.Workers = 1
	sequential := NewGenerator(cfg).Generate()
	if !first.Equal(sequential) {
		t.Fatalf("worker count changed the generated grid")
	}

	cfg.Seed++
	other := NewGenerator(cfg).Generate()
	if first.Equal(other) {
		t.Fatalf("expected a different seed to change the grid")
	}
}

func TestGeneratorFlatTerrain(t *testing.T) {
	silenceLog(t)

	cfg := smallConfig()
	cfg.HeightAmplitude = 0
	cfg.CaveThreshold = -100
	grid := NewGenerator(cfg).Generate()

	dim := grid.Dimensions()
	for y := 0; y < dim.Height; y++ {
		for z := 0; z < dim.Depth; z++ {
			for x := 0; x < dim.Width; x++ {
				tile := grid.At(y, z, x)
				var want world.Tile
				switch {
				case y < cfg.BaseHeight:
					want = world.Solid(world.Stone)
				case y == cfg.BaseHeight:
					want = world.Solid(world.Dirt)
				}
				if tile != want {
					t.Fatalf("(%d,%d,%d): got %v want %v", y, z, x, tile, want)
				}
			}
		}
	}
}

func TestGeneratorLavaBand(t *testing.T) {
	silenceLog(t)

	cfg := smallConfig()
	cfg.CaveThreshold = 100
	grid := NewGenerator(cfg).Generate()

	dim := grid.Dimensions()
	for y := 0; y < dim.Height; y++ {
		lava := grid.At(y, 0, 0).Type == world.Lava
		if y <= cfg.CaveCeiling && !lava {
			t.Fatalf("layer %d: expected lava inside the cave band", y)
		}
		if y > cfg.CaveCeiling && lava {
			t.Fatalf("layer %d: lava above the cave ceiling", y)
		}
	}
	if grid.IsFull(0, 0, 0) {
		t.Fatalf("lava must not be full")
	}
}

func TestGeneratorRampInvariants(t *testing.T) {
	silenceLog(t)

	grid := NewGenerator(smallConfig()).Generate()
	dim := grid.Dimensions()
	for y := 0; y < dim.Height; y++ {
		for z := 0; z < dim.Depth; z++ {
			for x := 0; x < dim.Width; x++ {
				tile := grid.At(y, z, x)
				if tile.Type == world.Air && (tile.IsRamp || tile.IsFull) {
					t.Fatalf("(%d,%d,%d): air tile with flags %+v", y, z, x, tile)
				}
				if !tile.IsRamp {
					continue
				}
				if tile.Type != world.DirtRamp || tile.Direction == world.None {
					t.Fatalf("(%d,%d,%d): malformed ramp %+v", y, z, x, tile)
				}
				if y == 0 {
					t.Fatalf("ramp on the bottom layer at (%d,%d)", z, x)
				}
				if grid.IsEmpty(y-1, z, x) || grid.IsRamp(y-1, z, x) {
					t.Fatalf("(%d,%d,%d): ramp without solid support", y, z, x)
				}
			}
		}
	}
}

func TestNewGeneratorClampsConfigBuiltInCode(t *testing.T) {
	buf := silenceLog(t)

	cfg := smallConfig()
	cfg.CaveScale = 0
	cfg.CaveOctaves = 0
	cfg.TerrainScale = -2
	g := NewGenerator(cfg)

	if cfg.CaveScale != 0 || cfg.TerrainScale != -2 {
		t.Fatalf("caller's config must not change, got cave_scale %v terrain_scale %v", cfg.CaveScale, cfg.TerrainScale)
	}
	if g.cfg.CaveScale <= 0 || g.cfg.TerrainScale <= 0 || g.cfg.CaveOctaves < 1 {
		t.Fatalf("expected clamped generator config, got %+v", g.cfg)
	}
	logs := buf.String()
	for _, marker := range []string{"cave_scale", "cave_octaves", "terrain_scale"} {
		if !strings.Contains(logs, marker) {
			t.Fatalf("expected logs to report %s, got: %s", marker, logs)
		}
	}

	for _, c := range [][3]int{{0, 0, 0}, {1, 2, 3}, {3, 9, 11}} {
		v := g.sampler.Volume(g.cfg.CaveOctaves,
			float64(c[2])/g.cfg.CaveScale, float64(c[0])/g.cfg.CaveScale, float64(c[1])/g.cfg.CaveScale)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("cell %v: volume sample %v is not finite", c, v)
		}
	}
}

func TestNewGeneratorValidConfigLogsNothingExtra(t *testing.T) {
	buf := silenceLog(t)
	NewGenerator(smallConfig())
	if buf.Len() != 0 {
		t.Fatalf("valid config should not be adjusted, got: %s", buf.String())
	}
}
