// Package collision implements the layer-scoped hit-box test and the
// per-entity registry of collision callbacks.
package collision

import "ebiten-ski/components"

// Body is anything with a layer and hit boxes
type Body interface {
	Layer() int
	OccupiesLayer(layer int) bool
	HitBoxEdges(layer int) components.Edges
}

// Hits reports whether self touches other. Only an other occupying self's
// current layer can be hit; both hit boxes are taken at that layer.
func Hits(self, other Body) bool {
	layer := self.Layer()
	if !other.OccupiesLayer(layer) {
		return false
	}
	return Overlaps(self.HitBoxEdges(layer), other.HitBoxEdges(layer))
}

// Overlaps tests whether an edge of a lies inside b on both axes.
//
// This is not a symmetric AABB test: when a strictly contains b on an axis
// neither of a's edges on that axis is inside b and the axis reports no
// overlap. Gameplay tuning depends on this, keep it.
func Overlaps(a, b components.Edges) bool {
	vertical := false
	horizontal := false

	// bottom edge of a inside b
	if b.Top <= a.Bottom && b.Bottom >= a.Bottom {
		vertical = true
	}
	// top edge of a inside b
	if b.Top <= a.Top && b.Bottom >= a.Top {
		vertical = true
	}
	// right edge of a inside b
	if b.Left <= a.Right && b.Right >= a.Right {
		horizontal = true
	}
	// left edge of a inside b
	if b.Left <= a.Left && b.Right >= a.Left {
		horizontal = true
	}

	return vertical && horizontal
}
