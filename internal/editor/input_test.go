package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"isoworld/internal/world"
)

func TestKeyPressed(t *testing.T) {
	assert.True(t, Key{Down: true}.Pressed())
	assert.False(t, Key{Down: true, WasDown: true}.Pressed())
	assert.False(t, Key{WasDown: true}.Pressed())
	assert.False(t, Key{}.Pressed())
}

func TestStepCyclesKindOnRisingEdge(t *testing.T) {
	w := newTestWorld(t, nil)

	w.Step(FrameInput{CycleKind: Key{Down: true}})
	assert.Equal(t, KindWood, w.Kind())

	w.Step(FrameInput{CycleKind: Key{Down: true, WasDown: true}})
	assert.Equal(t, KindWood, w.Kind(), "holding the key does not cycle again")

	for i := 0; i < 5; i++ {
		w.Step(FrameInput{CycleKind: Key{Down: true}})
	}
	assert.Equal(t, KindEmpty, w.Kind(), "kind wraps after the last ramp")
}

func TestStepPlacesCurrentKind(t *testing.T) {
	w := newTestWorld(t, nil)
	w.SetCutoff(6)
	w.Step(FrameInput{CycleKind: Key{Down: true}})

	rebuilt := w.Step(FrameInput{Place: true, GridX: 8, GridZ: 9})

	assert.Equal(t, []int{4, 5}, rebuilt)
	assert.Equal(t, world.Solid(world.Wood), w.Tile(5, 4, 3))
}

func TestStepHeldAndSteppedCutoff(t *testing.T) {
	w := newTestWorld(t, nil)

	w.Step(FrameInput{LowerHeld: Key{Down: true, WasDown: true}})
	assert.Equal(t, 6, w.Cutoff(), "held keys act every frame")

	w.Step(FrameInput{LowerStep: Key{Down: true, WasDown: true}})
	assert.Equal(t, 6, w.Cutoff(), "step keys only act on the press")

	w.Step(FrameInput{LowerStep: Key{Down: true}})
	assert.Equal(t, 5, w.Cutoff())

	rebuilt := w.Step(FrameInput{RaiseStep: Key{Down: true}, RaiseHeld: Key{Down: true}})
	assert.Equal(t, 7, w.Cutoff())
	assert.Equal(t, []int{4, 5, 6}, rebuilt)
	assert.True(t, w.Layer(5).BuiltFull)
	assert.True(t, w.Layer(6).BuiltFull)
	assert.False(t, w.Layer(4).BuiltFull)
}

func TestStepMergesRebuilds(t *testing.T) {
	w := newTestWorld(t, nil)

	// The edit asks for layer 5 occluded; lowering the cutoff then asks for it
	// in full. It is rebuilt once, in full.
	rebuilt := w.Step(FrameInput{Place: true, GridX: 9, GridZ: 9, LowerStep: Key{Down: true}})

	assert.Equal(t, []int{5, 6}, rebuilt)
	assert.Equal(t, 6, w.Cutoff())
	assert.True(t, w.Layer(5).BuiltFull)
}

func TestStepWithoutInputDoesNothing(t *testing.T) {
	w := newTestWorld(t, nil)
	assert.Nil(t, w.Step(FrameInput{}))
}
