package systems

import "ebiten-ski/ecs"

// Steerable is what the pointer steers
type Steerable interface {
	Steer(x, y float64)
	IsJumping() bool
}

// SteeringSystem re-targets the steered entity at the map point under the
// pointer every cycle. The camera scrolls with the skier, so a still pointer
// still names a new map point each cycle.
type SteeringSystem struct {
	camera *CameraSystem
	target Steerable

	active bool
	seen   bool
	cx, cy float64
}

// NewSteeringSystem creates a steering system; pointer control starts off
// until the pointer first moves
func NewSteeringSystem(camera *CameraSystem, target Steerable) *SteeringSystem {
	return &SteeringSystem{camera: camera, target: target}
}

// PointerAt records the pointer's canvas position. Moving the pointer hands
// control back to it.
func (s *SteeringSystem) PointerAt(cx, cy float64) {
	if s.seen && (cx != s.cx || cy != s.cy) {
		s.active = true
	}
	s.seen = true
	s.cx, s.cy = cx, cy
}

// Release hands control to the keyboard until the pointer moves again
func (s *SteeringSystem) Release() {
	s.active = false
}

// Active reports whether the pointer is steering
func (s *SteeringSystem) Active() bool {
	return s.active
}

// Update steers toward the pointer; airborne skiers keep their line
func (s *SteeringSystem) Update(world *ecs.World) {
	if !s.active || s.target.IsJumping() {
		return
	}
	s.target.Steer(s.camera.CanvasToMap(s.cx, s.cy))
}
