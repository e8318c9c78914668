package editor

import "sort"

// rebuildMode is how a layer must be rebuilt. A full rebuild also satisfies
// an occluded one, so it takes priority when both are requested.
type rebuildMode int

const (
	rebuildOccluded rebuildMode = iota + 1
	rebuildFull
)

func (m rebuildMode) String() string {
	if m == rebuildFull {
		return "full"
	}
	return "occluded"
}

type pendingRebuild struct {
	layer int
	mode  rebuildMode
}

// pendingRebuilds merges the layer rebuilds requested while handling one
// command or one frame of input, so every layer is rebuilt at most once.
type pendingRebuilds struct {
	data map[int]rebuildMode
}

func newPendingRebuilds() *pendingRebuilds {
	return &pendingRebuilds{data: make(map[int]rebuildMode)}
}

// add records a rebuild of layer y. Negative layers do not exist and are
// dropped.
func (p *pendingRebuilds) add(y int, mode rebuildMode) {
	if y < 0 {
		return
	}
	if p.data == nil {
		p.data = make(map[int]rebuildMode)
	}
	if existing, ok := p.data[y]; ok && existing >= mode {
		return
	}
	p.data[y] = mode
}

func (p *pendingRebuilds) len() int {
	return len(p.data)
}

// flush returns the merged rebuilds in ascending layer order and resets the
// set.
func (p *pendingRebuilds) flush() []pendingRebuild {
	if len(p.data) == 0 {
		return nil
	}
	out := make([]pendingRebuild, 0, len(p.data))
	for layer, mode := range p.data {
		out = append(out, pendingRebuild{layer: layer, mode: mode})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].layer < out[j].layer })
	p.data = make(map[int]rebuildMode)
	return out
}
