// Package viewer renders an editor world with ebiten. The ebiten-specific
// parts are behind the "ebiten" build tag; draw-list assembly and the
// placeholder atlas build everywhere.
package viewer

import (
	"sort"

	"isoworld/internal/editor"
	"isoworld/internal/mesh"
)

// DrawList appends the quads of every visible layer to dst, tinted by depth
// below the cutoff, and orders them back to front. Quads with equal keys keep
// their layer and traversal order.
func DrawList(w *editor.World, dst []mesh.Quad) []mesh.Quad {
	dst = dst[:0]
	cutoff := w.Cutoff()
	for y := 0; y < cutoff; y++ {
		tint := mesh.LayerTint(y, cutoff)
		for _, q := range w.Layer(y).Quads {
			q.Tint *= tint
			dst = append(dst, q)
		}
	}
	sort.SliceStable(dst, func(i, j int) bool {
		return dst[i].Depth() < dst[j].Depth()
	})
	return dst
}

// Frame is DrawList plus the placement cursor over the layer-0 pick
// (gridX, gridZ). The empty-kind cursor is drawn over everything; cursors of
// placeable blocks are depth-sorted with the terrain so nearer tiles cover
// them.
func Frame(w *editor.World, dst []mesh.Quad, gridX, gridZ int) []mesh.Quad {
	dst = DrawList(w, dst)
	cursor, ok := w.Cursor(gridX, gridZ)
	if !ok {
		return dst
	}
	if w.Kind() == editor.KindEmpty {
		return append(dst, cursor)
	}
	return insertByDepth(dst, cursor)
}

// insertByDepth places q after every quad with a depth key not above its own.
func insertByDepth(quads []mesh.Quad, q mesh.Quad) []mesh.Quad {
	i := sort.Search(len(quads), func(i int) bool {
		return quads[i].Depth() > q.Depth()
	})
	quads = append(quads, mesh.Quad{})
	copy(quads[i+1:], quads[i:])
	quads[i] = q
	return quads
}
