// Package editor owns a live tile world: the grid, the mesh of every layer
// and the visible cutoff. It applies single-tile edits and cutoff changes and
// rebuilds only the layers they affect.
package editor

import (
	"log"
	"sync"

	"isoworld/internal/mesh"
	"isoworld/internal/world"
)

// Recorder observes editor activity. Implementations must be safe to call
// while the editor lock is held.
type Recorder interface {
	LayerRebuilt(mode string, quads int)
	EditApplied(accepted bool)
	CutoffChanged(cutoff int)
}

type nopRecorder struct{}

func (nopRecorder) LayerRebuilt(string, int) {}
func (nopRecorder) EditApplied(bool)         {}
func (nopRecorder) CutoffChanged(int)        {}

// World is the mutable state behind an isometric view. All methods are safe
// for concurrent use; readers never see a layer mid-rebuild.
type World struct {
	mu       sync.RWMutex
	grid     *world.Grid
	builder  *mesh.Builder
	layers   *mesh.Layers
	cutoff   int
	kind     BlockKind
	pending  *pendingRebuilds
	recorder Recorder

	// stale holds hidden layers whose mesh predates an edit on the layer
	// below them. They are rebuilt when a cutoff change exposes them.
	stale map[int]struct{}
}

// NewWorld takes ownership of grid and builds every layer. The cutoff starts
// at the highest allowed value. A nil recorder discards events.
func NewWorld(grid *world.Grid, builder *mesh.Builder, recorder Recorder) *World {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	dim := grid.Dimensions()
	w := &World{
		grid:     grid,
		builder:  builder,
		layers:   mesh.NewLayers(builder, dim.Height),
		pending:  newPendingRebuilds(),
		recorder: recorder,
		stale:    make(map[int]struct{}),
	}
	w.cutoff = w.maxCutoff()

	w.layers.BuildAll(grid, w.cutoff)
	for y := 0; y < w.layers.Len(); y++ {
		mode := rebuildOccluded
		if y == w.cutoff-1 {
			mode = rebuildFull
		}
		w.recorder.LayerRebuilt(mode.String(), len(w.layers.Layer(y).Quads))
	}
	w.recorder.CutoffChanged(w.cutoff)
	return w
}

func (w *World) maxCutoff() int {
	top := w.grid.Dimensions().Height - 1
	if top < 1 {
		return 1
	}
	return top
}

func (w *World) clampCutoff(cutoff int) int {
	if cutoff < 1 {
		return 1
	}
	if top := w.maxCutoff(); cutoff > top {
		return top
	}
	return cutoff
}

// Cutoff returns the number of visible layers; layers at or above it are
// not drawn.
func (w *World) Cutoff() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.cutoff
}

// Kind returns the block kind the next placement from Step will write.
func (w *World) Kind() BlockKind {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.kind
}

// Layer returns the current mesh of layer y. The quad slice is replaced, never
// mutated, on rebuild, so callers may keep it.
func (w *World) Layer(y int) mesh.Layer {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.layers.Layer(y)
}

// Height returns the number of layers.
func (w *World) Height() int {
	return w.grid.Dimensions().Height
}

// Tile returns the tile at (y, z, x).
func (w *World) Tile(y, z, x int) world.Tile {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.grid.At(y, z, x)
}

// Snapshot returns a copy of the grid.
func (w *World) Snapshot() *world.Grid {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.grid.Clone()
}

// Cursor returns the placement preview for the current kind over the layer-0
// pick (gridX, gridZ).
func (w *World) Cursor(gridX, gridZ int) (mesh.Quad, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.builder.CursorQuad(int(w.kind), gridX, gridZ, w.cutoff)
}

// Target maps a layer-0 pick to the cell an edit would write: the layer under
// the cutoff, shifted back along both axes by that layer's height.
func (w *World) Target(gridX, gridZ int) (y, z, x int) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.target(gridX, gridZ)
}

func (w *World) target(gridX, gridZ int) (y, z, x int) {
	y = w.cutoff - 1
	shift := w.builder.Projection.LayerShift(y)
	return y, gridZ - shift, gridX - shift
}

// ApplyEdit writes kind at the layer-0 pick (gridX, gridZ) on the layer under
// the cutoff. The edited layer is rebuilt in full and the layer below it with
// occlusion. Targets outside the grid and unknown kinds are ignored. It
// returns the rebuilt layers in ascending order.
func (w *World) ApplyEdit(gridX, gridZ int, kind BlockKind) []int {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.applyEdit(gridX, gridZ, kind)
	return w.flush()
}

func (w *World) applyEdit(gridX, gridZ int, kind BlockKind) {
	tile, ok := kind.Tile()
	if !ok {
		log.Printf("editor: ignoring edit with unknown block %s", kind)
		w.recorder.EditApplied(false)
		return
	}
	y, z, x := w.target(gridX, gridZ)
	if !w.grid.Set(y, z, x, tile) {
		log.Printf("editor: ignoring edit at (%d, %d): cell (%d, %d, %d) is outside the grid", gridX, gridZ, y, z, x)
		w.recorder.EditApplied(false)
		return
	}
	w.recorder.EditApplied(true)
	w.pending.add(y, rebuildFull)
	w.pending.add(y-1, rebuildOccluded)
	if y+1 < w.grid.Dimensions().Height {
		w.stale[y+1] = struct{}{}
	}
}

// SetCutoff clamps cutoff to [1, height-1] and makes it current. Raising the
// cutoff rebuilds the newly exposed top layer in full and the one below it
// with occlusion; lowering it rebuilds the new top layer in full. A raise of
// more than one layer also rebuilds, with occlusion, any layer it exposes
// that sits on top of an edit made while it was hidden. It returns the
// rebuilt layers in ascending order, none if the cutoff did not change.
func (w *World) SetCutoff(cutoff int) []int {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.setCutoff(cutoff)
	return w.flush()
}

func (w *World) setCutoff(cutoff int) {
	cutoff = w.clampCutoff(cutoff)
	if cutoff == w.cutoff {
		return
	}
	raised := cutoff > w.cutoff
	w.cutoff = cutoff
	w.recorder.CutoffChanged(cutoff)

	w.pending.add(cutoff-1, rebuildFull)
	if raised {
		w.pending.add(cutoff-2, rebuildOccluded)
	}
	for y := range w.stale {
		if y < cutoff {
			w.pending.add(y, rebuildOccluded)
		}
	}
}

// Raise shows one more layer.
func (w *World) Raise() []int {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.setCutoff(w.cutoff + 1)
	return w.flush()
}

// Lower hides the top visible layer.
func (w *World) Lower() []int {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.setCutoff(w.cutoff - 1)
	return w.flush()
}

// flush rebuilds every pending layer once and returns their indices.
func (w *World) flush() []int {
	pending := w.pending.flush()
	if len(pending) == 0 {
		return nil
	}
	rebuilt := make([]int, 0, len(pending))
	for _, p := range pending {
		if !w.layers.Rebuild(w.grid, p.layer, p.mode == rebuildOccluded) {
			continue
		}
		delete(w.stale, p.layer)
		w.recorder.LayerRebuilt(p.mode.String(), len(w.layers.Layer(p.layer).Quads))
		rebuilt = append(rebuilt, p.layer)
	}
	return rebuilt
}
