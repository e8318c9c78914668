package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestValidateDefaultConfig(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default configuration should be valid: %v", err)
	}
	if adjusted := cfg.Normalize(); len(adjusted) != 0 {
		t.Fatalf("default configuration should not need clamping, got %v", adjusted)
	}
}

func TestValidateDetectsInvalidConfigurations(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name: "non positive width",
			mutate: func(cfg *Config) {
				cfg.SizeX = 0
			},
			wantErr: "grid dimensions must be positive",
		},
		{
			name: "single layer",
			mutate: func(cfg *Config) {
				cfg.SizeY = 1
			},
			wantErr: "size_y must be at least 2",
		},
		{
			name: "non positive cell size",
			mutate: func(cfg *Config) {
				cfg.CellHeight = 0
			},
			wantErr: "cell_width and cell_height must be positive",
		},
		{
			name: "negative workers",
			mutate: func(cfg *Config) {
				cfg.Workers = -1
			},
			wantErr: "workers cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatalf("expected an error, got nil")
			}
			if err.Error() != tt.wantErr {
				t.Fatalf("unexpected error: got %q want %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestNormalizeClampsNoiseParameters(t *testing.T) {
	cfg := Default()
	cfg.TerrainScale = -5
	cfg.Octaves = 0
	cfg.Persistence = 1.7
	cfg.Lacunarity = 0.25
	cfg.CaveOctaves = -2

	adjusted := cfg.Normalize()
	if len(adjusted) != 5 {
		t.Fatalf("expected 5 adjustments, got %d: %v", len(adjusted), adjusted)
	}
	if cfg.TerrainScale != minTerrainScale {
		t.Fatalf("terrain scale = %g, want %g", cfg.TerrainScale, minTerrainScale)
	}
	if cfg.Octaves != 1 || cfg.CaveOctaves != 1 {
		t.Fatalf("octaves = %d/%d, want 1/1", cfg.Octaves, cfg.CaveOctaves)
	}
	if cfg.Persistence != 1 {
		t.Fatalf("persistence = %g, want 1", cfg.Persistence)
	}
	if cfg.Lacunarity != 1 {
		t.Fatalf("lacunarity = %g, want 1", cfg.Lacunarity)
	}

	cfg.Persistence = -0.5
	if adjusted := cfg.Normalize(); len(adjusted) != 1 || cfg.Persistence != 0 {
		t.Fatalf("expected persistence raised to 0, got %g (%v)", cfg.Persistence, adjusted)
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load default config: %v", err)
	}
	if want := Default(); !reflect.DeepEqual(cfg, want) {
		t.Fatalf("default configuration mismatch:\nwant: %#v\n got: %#v", want, cfg)
	}
}

func TestLoadReadsJSONFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "world.json")

	cfg := Default()
	cfg.SizeX = 16
	cfg.Seed = 99

	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !reflect.DeepEqual(got, cfg) {
		t.Fatalf("loaded configuration mismatch:\nwant: %#v\n got: %#v", cfg, got)
	}
}

func TestLoadReadsYAMLAndKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "world.yaml")

	body := strings.Join([]string{
		"size_x: 32",
		"size_y: 48",
		"size_z: 24",
		"terrain_scale: 0",
		"cave_threshold: 1.5",
		"highlight_surrounded: false",
	}, "\n")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if got.SizeX != 32 || got.SizeY != 48 || got.SizeZ != 24 {
		t.Fatalf("unexpected size %dx%dx%d", got.SizeX, got.SizeY, got.SizeZ)
	}
	if got.CaveThreshold != 1.5 {
		t.Fatalf("cave threshold = %g, want 1.5", got.CaveThreshold)
	}
	if got.HighlightSurrounded {
		t.Fatalf("expected highlight_surrounded to be disabled")
	}
	if got.TerrainScale != minTerrainScale {
		t.Fatalf("expected zero terrain scale to be clamped, got %g", got.TerrainScale)
	}
	if adjusted := got.Adjustments(); len(adjusted) != 1 || !strings.Contains(adjusted[0], "terrain_scale") {
		t.Fatalf("expected one terrain_scale adjustment, got %v", adjusted)
	}
	if got.Octaves != Default().Octaves || got.CellWidth != Default().CellWidth {
		t.Fatalf("expected unspecified fields to keep defaults, got %#v", got)
	}
}

func TestLoadInvalidConfiguration(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "world.yml")
	if err := os.WriteFile(path, []byte("size_z: -4\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatalf("expected load to fail")
	}
	if !strings.Contains(err.Error(), "validate config: grid dimensions must be positive") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
