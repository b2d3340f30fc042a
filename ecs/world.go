package ecs

// Actor is anything the world can hold. Embedding *Entity provides Base.
type Actor interface {
	Base() *Entity
	Deleted() bool
}

// World owns the simulated actors in insertion order.
// Insertion order is the detection order used by the cycle systems.
type World struct {
	actors map[EntityID]Actor
	order  []EntityID
	// Systems slice to store all systems
	systems []System
	// Tag-based entity lookup for quick access
	entityTags map[string]map[EntityID]bool
	// Event manager for system communication
	eventManager *EventManager
	cycle        uint64
}

// NewWorld creates a new world
func NewWorld() *World {
	return &World{
		actors:       make(map[EntityID]Actor),
		order:        make([]EntityID, 0),
		systems:      make([]System, 0),
		entityTags:   make(map[string]map[EntityID]bool),
		eventManager: NewEventManager(),
	}
}

// AddEntity adds an actor to the end of the cycle order.
// Adding an id that is already present is a no-op.
func (w *World) AddEntity(actor Actor) {
	id := actor.Base().ID
	if _, exists := w.actors[id]; exists {
		return
	}
	w.actors[id] = actor
	w.order = append(w.order, id)

	for tag := range actor.Base().Tags {
		w.indexTag(id, tag)
	}
}

// RemoveEntity removes an actor from the world
func (w *World) RemoveEntity(entityID EntityID) {
	actor, exists := w.actors[entityID]
	if !exists {
		return
	}

	// Remove entity from tag lookups
	for tag := range actor.Base().Tags {
		delete(w.entityTags[tag], entityID)
		if len(w.entityTags[tag]) == 0 {
			delete(w.entityTags, tag)
		}
	}

	delete(w.actors, entityID)
	for i, id := range w.order {
		if id == entityID {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
}

// Prune removes every actor whose deletion flag is set and returns how many went
func (w *World) Prune() int {
	removed := 0
	kept := w.order[:0]
	for _, id := range w.order {
		actor := w.actors[id]
		if !actor.Deleted() {
			kept = append(kept, id)
			continue
		}
		for tag := range actor.Base().Tags {
			delete(w.entityTags[tag], id)
			if len(w.entityTags[tag]) == 0 {
				delete(w.entityTags, tag)
			}
		}
		delete(w.actors, id)
		removed++
	}
	// clear the tail so pruned ids are not kept alive by the backing array
	for i := len(kept); i < len(w.order); i++ {
		w.order[i] = 0
	}
	w.order = kept
	return removed
}

// AddSystem adds a system to the world
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)
}

// Update runs every system once, in registration order, and counts the cycle
func (w *World) Update() {
	w.cycle++
	for _, system := range w.systems {
		system.Update(w)
	}
}

// Cycle returns the number of completed Update calls
func (w *World) Cycle() uint64 {
	return w.cycle
}

// GetSystems returns all systems registered in the world
func (w *World) GetSystems() []System {
	return w.systems
}

// TagEntity adds a tag to an entity and updates the tag lookup
func (w *World) TagEntity(entityID EntityID, tag string) {
	actor, exists := w.actors[entityID]
	if !exists {
		return
	}

	actor.Base().AddTag(tag)
	w.indexTag(entityID, tag)
}

func (w *World) indexTag(entityID EntityID, tag string) {
	if _, exists := w.entityTags[tag]; !exists {
		w.entityTags[tag] = make(map[EntityID]bool)
	}
	w.entityTags[tag][entityID] = true
}

// GetEntitiesWithTag returns all actors with a specific tag, in cycle order
func (w *World) GetEntitiesWithTag(tag string) []Actor {
	actors := make([]Actor, 0)

	tagged, exists := w.entityTags[tag]
	if !exists {
		return actors
	}
	for _, id := range w.order {
		if tagged[id] {
			actors = append(actors, w.actors[id])
		}
	}

	return actors
}

// GetAllEntities returns a slice of all actors in cycle order
func (w *World) GetAllEntities() []Actor {
	actors := make([]Actor, 0, len(w.order))
	for _, id := range w.order {
		actors = append(actors, w.actors[id])
	}
	return actors
}

// GetEntity returns an actor by its ID
func (w *World) GetEntity(entityID EntityID) Actor {
	actor, exists := w.actors[entityID]
	if !exists {
		return nil
	}
	return actor
}

// Len returns the number of actors currently held
func (w *World) Len() int {
	return len(w.order)
}

// GetEventManager returns the world's event manager
func (w *World) GetEventManager() *EventManager {
	return w.eventManager
}

// EmitEvent is a convenience method to emit an event
func (w *World) EmitEvent(event Event) {
	w.eventManager.Emit(event)
}
