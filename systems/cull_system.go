package systems

import (
	"ebiten-ski/ecs"
	"ebiten-ski/entity"
)

// Pursuer is a behavior that can give up the chase. A pursuer that has
// given up loses the protection of its tags.
type Pursuer interface {
	IsPursuing() bool
}

// CullSystem soft-deletes entities that have scrolled far above the
// viewport. The camera anchor is never culled.
type CullSystem struct {
	camera *CameraSystem
	// Distance above the viewport an entity must clear before it goes
	Margin float64
	// Tags that are never culled while still pursuing
	keep map[string]bool
}

// NewCullSystem creates a cull system reading the camera's viewport
func NewCullSystem(camera *CameraSystem, margin float64, keepTags ...string) *CullSystem {
	keep := make(map[string]bool, len(keepTags))
	for _, tag := range keepTags {
		keep[tag] = true
	}
	return &CullSystem{camera: camera, Margin: margin, keep: keep}
}

// Update marks out-of-sight entities deleted; the next prune drops them
func (s *CullSystem) Update(world *ecs.World) {
	line := s.camera.MapAboveViewport() - s.Margin
	for _, actor := range world.GetAllEntities() {
		e, ok := actor.(*entity.Entity)
		if !ok || e.Deleted() || e == s.camera.Anchor() || s.kept(e) {
			continue
		}
		if e.IsAbove(line) {
			e.MarkDeleted()
		}
	}
}

func (s *CullSystem) kept(e *entity.Entity) bool {
	if p, ok := e.Behavior().(Pursuer); ok && !p.IsPursuing() {
		return false
	}
	for tag := range e.Tags {
		if s.keep[tag] {
			return true
		}
	}
	return false
}
