package mesh

import (
	"runtime"
	"sync"

	"isoworld/internal/world"
)

// Layers holds the current mesh of every layer of one grid. It is not safe
// for concurrent use; callers serialise access.
type Layers struct {
	builder *Builder
	layers  []Layer
}

func NewLayers(builder *Builder, height int) *Layers {
	if height < 0 {
		height = 0
	}
	return &Layers{builder: builder, layers: make([]Layer, height)}
}

// Len returns the number of layers.
func (l *Layers) Len() int {
	return len(l.layers)
}

// Layer returns the mesh of layer y, or an empty layer when y is out of range.
func (l *Layers) Layer(y int) Layer {
	if y < 0 || y >= len(l.layers) {
		return Layer{}
	}
	return l.layers[y]
}

// Rebuild replaces the mesh of layer y. It reports false, and does nothing,
// when y is out of range.
func (l *Layers) Rebuild(grid *world.Grid, y int, occlude bool) bool {
	if y < 0 || y >= len(l.layers) {
		return false
	}
	l.layers[y] = l.builder.Build(grid, y, occlude)
	return true
}

// BuildAll rebuilds every layer concurrently. The layer just under cutoff is
// built without occlusion, every other layer with it. Each worker writes only
// its own slot, so the result matches a sequential build.
func (l *Layers) BuildAll(grid *world.Grid, cutoff int) {
	if len(l.layers) == 0 {
		return
	}
	workers := runtime.GOMAXPROCS(0)
	if workers > len(l.layers) {
		workers = len(l.layers)
	}
	if workers <= 0 {
		workers = 1
	}

	jobs := make(chan int, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range jobs {
				l.layers[y] = l.builder.Build(grid, y, y != cutoff-1)
			}
		}()
	}
	for y := range l.layers {
		jobs <- y
	}
	close(jobs)
	wg.Wait()
}

// QuadCount returns the number of quads across all layers.
func (l *Layers) QuadCount() int {
	n := 0
	for _, layer := range l.layers {
		n += len(layer.Quads)
	}
	return n
}
