package ecs

import "sync/atomic"

// EntityID is a unique identifier for an entity
type EntityID uint64

var nextEntityID uint64 = 0

// NewEntityID generates a new unique entity ID
func NewEntityID() EntityID {
	return EntityID(atomic.AddUint64(&nextEntityID, 1))
}

// reserveEntityID makes sure generated IDs never collide with an externally supplied one
func reserveEntityID(id EntityID) {
	for {
		cur := atomic.LoadUint64(&nextEntityID)
		if uint64(id) <= cur {
			return
		}
		if atomic.CompareAndSwapUint64(&nextEntityID, cur, uint64(id)) {
			return
		}
	}
}

// Entity is the identity part of every simulated object
type Entity struct {
	ID EntityID
	// Tags can be used for quick identification (e.g., "skier", "obstacle")
	Tags map[string]bool
}

// NewEntity creates a new entity
func NewEntity() *Entity {
	return &Entity{
		ID:   NewEntityID(),
		Tags: make(map[string]bool),
	}
}

// NewEntityWithID creates an entity with an externally supplied id.
// A zero id behaves like NewEntity.
func NewEntityWithID(id EntityID) *Entity {
	if id == 0 {
		return NewEntity()
	}
	reserveEntityID(id)
	return &Entity{
		ID:   id,
		Tags: make(map[string]bool),
	}
}

// Base returns the identity record; embedding types satisfy Actor through it
func (e *Entity) Base() *Entity {
	return e
}

// AddTag adds a tag to the entity
func (e *Entity) AddTag(tag string) {
	e.Tags[tag] = true
}

// HasTag checks if the entity has a specific tag
func (e *Entity) HasTag(tag string) bool {
	return e.Tags[tag]
}

// RemoveTag removes a tag from the entity
func (e *Entity) RemoveTag(tag string) {
	delete(e.Tags, tag)
}
