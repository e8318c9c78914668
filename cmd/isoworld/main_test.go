package main

import (
	"bytes"
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunWritesPreview(t *testing.T) {
	var buf bytes.Buffer
	originalWriter := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(originalWriter)

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "world.yaml")
	body := strings.Join([]string{
		"size_x: 8",
		"size_y: 12",
		"size_z: 8",
		"base_height: 5",
		"height_amplitude: 2",
		"cave_ceiling: 1",
		"octaves: 0",
	}, "\n")
	if err := os.WriteFile(cfgPath, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	previewPath := filepath.Join(dir, "out", "preview.png")

	err := run(context.Background(), options{configPath: cfgPath, cutoff: 9, previewPath: previewPath})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	info, err := os.Stat(previewPath)
	if err != nil {
		t.Fatalf("stat preview: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("expected non-empty preview")
	}

	logs := buf.String()
	for _, marker := range []string{"octaves 0 raised to 1", "generated 8x12x8 world", "cutoff 9:", "preview written"} {
		if !strings.Contains(logs, marker) {
			t.Fatalf("expected logs to contain %q, got: %s", marker, logs)
		}
	}
}

func TestRunRejectsBadConfig(t *testing.T) {
	log.SetOutput(io.Discard)
	defer log.SetOutput(os.Stderr)

	cfgPath := filepath.Join(t.TempDir(), "world.json")
	if err := os.WriteFile(cfgPath, []byte(`{"size_y": 1}`), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	err := run(context.Background(), options{configPath: cfgPath})
	if err == nil || !strings.Contains(err.Error(), "load config") {
		t.Fatalf("expected load config error, got %v", err)
	}
}

func TestRunStopsMetricsServerOnCancel(t *testing.T) {
	log.SetOutput(io.Discard)
	defer log.SetOutput(os.Stderr)

	cfgPath := filepath.Join(t.TempDir(), "world.json")
	if err := os.WriteFile(cfgPath, []byte(`{"size_x": 4, "size_y": 4, "size_z": 4}`), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := run(ctx, options{configPath: cfgPath, metricsAddr: "127.0.0.1:0"}); err != nil {
		t.Fatalf("run: %v", err)
	}
}
