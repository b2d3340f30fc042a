package systems

import (
	"ebiten-ski/ecs"
)

// Advancer is anything that runs one simulation cycle
type Advancer interface {
	Advance()
}

// CycleSystem advances every actor once per world update, in insertion
// order, then prunes what was deleted along the way.
//
// Insertion order is also the collision detection order: an entity's
// callbacks run during its own Advance, so when two entities react to the
// same hit the one added first reacts first.
type CycleSystem struct {
	pruned int
}

// NewCycleSystem creates a new cycle system
func NewCycleSystem() *CycleSystem {
	return &CycleSystem{}
}

// Update advances the world by one cycle
func (s *CycleSystem) Update(world *ecs.World) {
	// Snapshot so entities spawned mid-cycle start on the next one
	for _, actor := range world.GetAllEntities() {
		if actor.Deleted() {
			continue
		}
		if adv, ok := actor.(Advancer); ok {
			adv.Advance()
		}
	}
	s.pruned += world.Prune()
}

// Pruned returns how many actors have been removed since creation
func (s *CycleSystem) Pruned() int {
	return s.pruned
}
