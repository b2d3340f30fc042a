package behavior

import "ebiten-ski/entity"

// Static is the behavior of scenery: trees, rocks, jumps and signs never move
// and always draw with the same key
type Static struct {
	key string
}

// NewStatic builds an immobile entity drawn with key
func NewStatic(d entity.Descriptor, key string) *entity.Entity {
	if key == "" {
		key = d.Kind
	}
	e := entity.New(d, &Static{key: key})
	e.IsMoving = false
	return e
}

// Cycle does nothing
func (s *Static) Cycle(e *entity.Entity) {}

// Key returns the fixed sprite key
func (s *Static) Key(e *entity.Entity) string {
	return s.key
}
