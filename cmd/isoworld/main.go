package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"isoworld/internal/config"
	"isoworld/internal/editor"
	"isoworld/internal/mesh"
	"isoworld/internal/metrics"
	"isoworld/internal/terrain"
	"isoworld/internal/world"
)

type options struct {
	configPath  string
	cutoff      int
	previewPath string
	metricsAddr string
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "path to world configuration file (YAML or JSON)")
	flag.IntVar(&opts.cutoff, "cutoff", 0, "visible layer cutoff; 0 shows every layer")
	flag.StringVar(&opts.previewPath, "preview", "", "write a PNG preview of the visible layers to this path")
	flag.StringVar(&opts.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address and wait for a signal")
	flag.Parse()

	ctx, cancel := signalContext()
	defer cancel()

	if err := run(ctx, opts); err != nil {
		log.Fatalf("isoworld: %v", err)
	}
}

func run(ctx context.Context, opts options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	collector := metrics.NewCollector()
	collector.ConfigAdjusted(len(cfg.Adjustments()))

	started := time.Now()
	grid := terrain.NewGenerator(*cfg).Generate()
	log.Printf("generated %dx%dx%d world in %s", cfg.SizeX, cfg.SizeY, cfg.SizeZ, time.Since(started).Round(time.Millisecond))
	logTileCounts(grid)

	proj := world.Projection{CellWidth: cfg.CellWidth, CellHeight: cfg.CellHeight}
	builder := mesh.NewBuilder(proj, cfg.HighlightSurrounded)

	started = time.Now()
	w := editor.NewWorld(grid, builder, collector)
	log.Printf("built %d layer meshes in %s", w.Height(), time.Since(started).Round(time.Millisecond))

	if opts.cutoff > 0 {
		w.SetCutoff(opts.cutoff)
	}
	logMeshStats(w)

	if opts.previewPath != "" {
		if err := world.SavePreview(w.Snapshot(), proj, w.Cutoff(), opts.previewPath); err != nil {
			return fmt.Errorf("write preview: %w", err)
		}
		log.Printf("preview written to %s", opts.previewPath)
	}

	if opts.metricsAddr == "" {
		return nil
	}
	return serveMetrics(ctx, opts.metricsAddr, collector)
}

func logTileCounts(grid *world.Grid) {
	for t := world.Air; t <= world.Lava; t++ {
		log.Printf("tiles %-10s %d", t, grid.Count(t))
	}
}

func logMeshStats(w *editor.World) {
	cutoff := w.Cutoff()
	quads := 0
	for y := 0; y < cutoff; y++ {
		quads += len(w.Layer(y).Quads)
	}
	log.Printf("cutoff %d: %d quads in visible layers, %d in the top layer", cutoff, quads, len(w.Layer(cutoff-1).Quads))
}

func serveMetrics(ctx context.Context, addr string, collector *metrics.Collector) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", collector.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("serving metrics on %s/metrics", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve metrics: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown metrics server: %w", err)
	}
	return nil
}

func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(signals)
		select {
		case <-signals:
			cancel()
		case <-ctx.Done():
			return
		}

		time.AfterFunc(10*time.Second, func() {
			log.Printf("forced shutdown after timeout")
			os.Exit(1)
		})
	}()

	return ctx, cancel
}
