package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPendingRebuildsMerge(t *testing.T) {
	p := newPendingRebuilds()
	p.add(4, rebuildOccluded)
	p.add(2, rebuildFull)
	p.add(4, rebuildFull)
	p.add(2, rebuildOccluded)
	p.add(-1, rebuildFull)

	assert.Equal(t, 2, p.len())
	assert.Equal(t, []pendingRebuild{
		{layer: 2, mode: rebuildFull},
		{layer: 4, mode: rebuildFull},
	}, p.flush())
	assert.Nil(t, p.flush())
}

func TestNextKindCycles(t *testing.T) {
	k := KindEmpty
	var seen []BlockKind
	for i := 0; i < 7; i++ {
		seen = append(seen, k)
		k = NextKind(k)
	}
	assert.Equal(t, []BlockKind{
		KindEmpty, KindWood, KindWoodRampXP, KindWoodRampZP, KindWoodRampZN, KindWoodRampXN, KindEmpty,
	}, seen)
	assert.Equal(t, KindEmpty, NextKind(BlockKind(40)))
	assert.Equal(t, "kind(40)", BlockKind(40).String())
}
