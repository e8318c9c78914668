package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config captures the static parameters of a tile world: grid extents,
// projection scale, terrain shape and mesh building.
type Config struct {
	SizeX int `yaml:"size_x" json:"size_x"`
	SizeY int `yaml:"size_y" json:"size_y"`
	SizeZ int `yaml:"size_z" json:"size_z"`

	CellWidth  float32 `yaml:"cell_width" json:"cell_width"`   // horizontal footprint of a tile in world units
	CellHeight float32 `yaml:"cell_height" json:"cell_height"` // vertical offset between layers

	Seed            int64   `yaml:"seed" json:"seed"`
	TerrainScale    float64 `yaml:"terrain_scale" json:"terrain_scale"`
	Octaves         int     `yaml:"octaves" json:"octaves"`
	Persistence     float64 `yaml:"persistence" json:"persistence"`
	Lacunarity      float64 `yaml:"lacunarity" json:"lacunarity"`
	ApplyPower      bool    `yaml:"apply_power" json:"apply_power"`
	BaseHeight      int     `yaml:"base_height" json:"base_height"`
	HeightAmplitude float64 `yaml:"height_amplitude" json:"height_amplitude"`

	CaveOctaves   int     `yaml:"cave_octaves" json:"cave_octaves"`
	CaveScale     float64 `yaml:"cave_scale" json:"cave_scale"`
	CaveCeiling   int     `yaml:"cave_ceiling" json:"cave_ceiling"` // layers above this are never lava
	CaveThreshold float64 `yaml:"cave_threshold" json:"cave_threshold"`

	Workers             int  `yaml:"workers" json:"workers"` // 0 picks GOMAXPROCS
	HighlightSurrounded bool `yaml:"highlight_surrounded" json:"highlight_surrounded"`

	adjustments []string
}

const minTerrainScale = 0.0001

// Default returns the reference 128^3 world.
func Default() *Config {
	return &Config{
		SizeX: 128,
		SizeY: 128,
		SizeZ: 128,

		CellWidth:  32,
		CellHeight: 16,

		Seed:            1337,
		TerrainScale:    350,
		Octaves:         4,
		Persistence:     0.5,
		Lacunarity:      2.5,
		ApplyPower:      true,
		BaseHeight:      64,
		HeightAmplitude: 25,

		CaveOctaves:   3,
		CaveScale:     32,
		CaveCeiling:   32,
		CaveThreshold: 2.1,

		Workers:             0,
		HighlightSurrounded: true,
	}
}

// Load reads configuration from a YAML or JSON file. An empty path returns
// defaults. Fields missing from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config yaml: %w", err)
		}
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	cfg.adjustments = cfg.Normalize()
	for _, adjustment := range cfg.adjustments {
		log.Printf("config: %s", adjustment)
	}
	return cfg, nil
}

// Adjustments lists the values Load clamped into range.
func (c *Config) Adjustments() []string {
	return c.adjustments
}

// Validate rejects configurations that cannot describe a grid at all. Noise
// parameters are never rejected; see Normalize.
func (c *Config) Validate() error {
	if c.SizeX <= 0 || c.SizeY <= 0 || c.SizeZ <= 0 {
		return errors.New("grid dimensions must be positive")
	}
	if c.SizeY < 2 {
		return errors.New("size_y must be at least 2")
	}
	if c.CellWidth <= 0 || c.CellHeight <= 0 {
		return errors.New("cell_width and cell_height must be positive")
	}
	if c.Workers < 0 {
		return errors.New("workers cannot be negative")
	}
	return nil
}

// Normalize clamps out-of-range noise parameters to the nearest usable value
// and describes every adjustment it made.
func (c *Config) Normalize() []string {
	var adjusted []string
	if c.TerrainScale <= 0 {
		adjusted = append(adjusted, fmt.Sprintf("terrain_scale %g clamped to %g", c.TerrainScale, minTerrainScale))
		c.TerrainScale = minTerrainScale
	}
	if c.Octaves < 1 {
		adjusted = append(adjusted, fmt.Sprintf("octaves %d raised to 1", c.Octaves))
		c.Octaves = 1
	}
	if c.Persistence < 0 {
		adjusted = append(adjusted, fmt.Sprintf("persistence %g raised to 0", c.Persistence))
		c.Persistence = 0
	}
	if c.Persistence > 1 {
		adjusted = append(adjusted, fmt.Sprintf("persistence %g lowered to 1", c.Persistence))
		c.Persistence = 1
	}
	if c.Lacunarity < 1 {
		adjusted = append(adjusted, fmt.Sprintf("lacunarity %g raised to 1", c.Lacunarity))
		c.Lacunarity = 1
	}
	if c.CaveOctaves < 1 {
		adjusted = append(adjusted, fmt.Sprintf("cave_octaves %d raised to 1", c.CaveOctaves))
		c.CaveOctaves = 1
	}
	if c.CaveScale <= 0 {
		adjusted = append(adjusted, fmt.Sprintf("cave_scale %g clamped to %g", c.CaveScale, minTerrainScale))
		c.CaveScale = minTerrainScale
	}
	return adjusted
}
