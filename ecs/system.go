package ecs

// System defines an interface for work done once per simulation cycle
type System interface {
	// Update is called once per cycle
	Update(world *World)
}
