package editor

// Key is the state of one button this frame and the frame before. Edge
// detection works from the pair, so the caller owns all input history.
type Key struct {
	Down    bool
	WasDown bool
}

// Pressed reports a rising edge.
func (k Key) Pressed() bool {
	return k.Down && !k.WasDown
}

// FrameInput is one frame of user input.
type FrameInput struct {
	// GridX and GridZ are the layer-0 pick under the pointer.
	GridX, GridZ int

	// Place writes the current kind under the pointer every frame it is down.
	Place bool
	// CycleKind advances the current kind on its rising edge.
	CycleKind Key

	// LowerHeld and RaiseHeld move the cutoff every frame while down.
	LowerHeld Key
	RaiseHeld Key
	// LowerStep and RaiseStep move the cutoff once per press.
	LowerStep Key
	RaiseStep Key
}

// Step applies one frame of input: kind cycling, placement, then cutoff
// movement. Rebuilds requested along the way are merged and every affected
// layer is rebuilt once at the end. It returns the rebuilt layers in
// ascending order.
func (w *World) Step(in FrameInput) []int {
	w.mu.Lock()
	defer w.mu.Unlock()

	if in.CycleKind.Pressed() {
		w.kind = NextKind(w.kind)
	}
	if in.Place {
		w.applyEdit(in.GridX, in.GridZ, w.kind)
	}
	if in.LowerHeld.Down {
		w.setCutoff(w.cutoff - 1)
	}
	if in.RaiseHeld.Down {
		w.setCutoff(w.cutoff + 1)
	}
	if in.LowerStep.Pressed() {
		w.setCutoff(w.cutoff - 1)
	}
	if in.RaiseStep.Pressed() {
		w.setCutoff(w.cutoff + 1)
	}
	return w.flush()
}
