package components

// HitBox is a rectangle offset from an entity's render anchor (the top-left
// corner of its bounding box)
type HitBox struct {
	Left, Top, Right, Bottom float64
}

// Edges is an absolute rectangle in map coordinates
type Edges struct {
	Left, Top, Right, Bottom float64
}

// Shape describes an entity's size and its per-layer hit boxes
type Shape struct {
	Width, Height float64
	HitBoxes      map[int]HitBox
}

// HitBoxFor returns the hit box declared for a layer, falling back to the
// full bounding box
func (s Shape) HitBoxFor(layer int) HitBox {
	if hb, ok := s.HitBoxes[layer]; ok {
		return hb
	}
	return HitBox{Left: 0, Top: 0, Right: s.Width, Bottom: s.Height}
}

// EdgesAt places the hit box for a layer around a map position, which is the
// centre of the bounding box
func (s Shape) EdgesAt(p Position, layer int) Edges {
	anchorX := p.X - s.Width/2
	anchorY := p.Y - s.Height/2
	hb := s.HitBoxFor(layer)
	return Edges{
		Left:   anchorX + hb.Left,
		Top:    anchorY + hb.Top,
		Right:  anchorX + hb.Right,
		Bottom: anchorY + hb.Bottom,
	}
}

// Layers is the set of depth layers an entity occupies
type Layers map[int]bool

// NewLayers builds a layer set
func NewLayers(layers ...int) Layers {
	l := make(Layers, len(layers))
	for _, layer := range layers {
		l[layer] = true
	}
	return l
}

// Contains reports whether the layer is in the set
func (l Layers) Contains(layer int) bool {
	return l[layer]
}
