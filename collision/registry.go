package collision

import "ebiten-ski/ecs"

// Member is an entity that can own a registry and be registered in one
type Member[T any] interface {
	Base() *ecs.Entity
	Deleted() bool
	Hits(other T) bool
}

// Callback runs when other is found touching self
type Callback[T any] func(self, other T)

type slot[T any] struct {
	other     T
	callbacks []Callback[T]
}

// Registry maps other entities to the callbacks fired when they touch the
// owner. Slots keep registration order.
type Registry[T Member[T]] struct {
	order []ecs.EntityID
	slots map[ecs.EntityID]*slot[T]
}

// NewRegistry creates an empty registry
func NewRegistry[T Member[T]]() *Registry[T] {
	return &Registry[T]{
		slots: make(map[ecs.EntityID]*slot[T]),
	}
}

// Register appends fn to other's slot, creating the slot if absent
func (r *Registry[T]) Register(other T, fn Callback[T]) {
	id := other.Base().ID
	if s, ok := r.slots[id]; ok {
		s.callbacks = append(s.callbacks, fn)
		return
	}
	r.slots[id] = &slot[T]{other: other, callbacks: []Callback[T]{fn}}
	r.order = append(r.order, id)
}

// Len returns the number of tracked other entities
func (r *Registry[T]) Len() int {
	return len(r.order)
}

// Callbacks returns how many callbacks are registered against an entity
func (r *Registry[T]) Callbacks(id ecs.EntityID) int {
	if s, ok := r.slots[id]; ok {
		return len(s.callbacks)
	}
	return 0
}

// Check walks the registry on behalf of self. Slots whose entity is deleted
// are dropped; for the rest, if the other entity hits self every callback
// runs with (self, other). Slots and callbacks are snapshotted first so
// callbacks may register or delete freely. It returns the number of slots
// that fired.
func (r *Registry[T]) Check(self T) int {
	if len(r.order) == 0 {
		return 0
	}
	ids := make([]ecs.EntityID, len(r.order))
	copy(ids, r.order)

	fired := 0
	for _, id := range ids {
		s, ok := r.slots[id]
		if !ok {
			continue
		}
		if s.other.Deleted() {
			r.remove(id)
			continue
		}
		if !s.other.Hits(self) {
			continue
		}
		callbacks := make([]Callback[T], len(s.callbacks))
		copy(callbacks, s.callbacks)
		for _, fn := range callbacks {
			fn(self, s.other)
		}
		fired++
	}
	return fired
}

// Clear drops every slot
func (r *Registry[T]) Clear() {
	r.order = r.order[:0]
	r.slots = make(map[ecs.EntityID]*slot[T])
}

func (r *Registry[T]) remove(id ecs.EntityID) {
	delete(r.slots, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			return
		}
	}
}
