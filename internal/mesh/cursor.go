package mesh

// CursorQuad is the placement preview drawn over column (gridX, gridZ) of the
// layer-0 pick for the given block kind. It reports false for unknown kinds.
// The quad sits at the layer-0 position of the column; its depth key is that
// of the edit target on the layer under cutoff, nudged in front.
func (b *Builder) CursorQuad(kind, gridX, gridZ, cutoff int) (Quad, bool) {
	if kind < 0 || kind >= len(cursorRects) {
		return Quad{}, false
	}
	top := cutoff - 1
	shift := b.Projection.LayerShift(top)
	tx, tz := gridX-shift, gridZ-shift
	pos := b.Projection.GridToWorld(0, gridZ, gridX)
	depth := DepthKey(top, tz, tx) + cursorDepthOffset
	return newQuad(pos, depth, b.Projection.CellWidth, cursorRects[kind]), true
}

const (
	deepLayerTint  = 0.7
	tintRampLayers = 20
)

// LayerTint darkens layers far below the cutoff. The 20 layers beneath it
// brighten linearly toward full intensity.
func LayerTint(y, cutoff int) float32 {
	if y+tintRampLayers > cutoff {
		return deepLayerTint + (1-deepLayerTint)/tintRampLayers*float32(tintRampLayers-(cutoff-y))
	}
	return deepLayerTint
}
