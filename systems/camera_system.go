package systems

import (
	"math/rand"

	"ebiten-ski/config"
	"ebiten-ski/ecs"
	"ebiten-ski/entity"
)

// How far out of sight positions picked above or below the viewport lie
const offscreenMargin = 50

// CameraSystem handles viewport positioning and scrolling. The viewport is
// anchored on a followed entity: horizontally centred, and FollowOffsetY
// pixels from the top.
type CameraSystem struct {
	anchor *entity.Entity

	// Map position of the viewport's top-left corner
	X, Y float64

	Width, Height float64
	OffsetY       float64
}

// NewCameraSystem creates a new camera system with the configured screen size
func NewCameraSystem() *CameraSystem {
	return &CameraSystem{
		Width:   config.ScreenWidth,
		Height:  config.ScreenHeight,
		OffsetY: config.FollowOffsetY,
	}
}

// Follow anchors the viewport on an entity and snaps to it
func (s *CameraSystem) Follow(e *entity.Entity) {
	s.anchor = e
	s.snap()
}

// Anchor returns the followed entity
func (s *CameraSystem) Anchor() *entity.Entity {
	return s.anchor
}

func (s *CameraSystem) snap() bool {
	if s.anchor == nil {
		return false
	}
	pos := s.anchor.Position()
	oldX, oldY := s.X, s.Y
	s.X = pos.X - s.Width/2
	s.Y = pos.Y - s.OffsetY
	return oldX != s.X || oldY != s.Y
}

// Update updates the camera position to follow the anchor
func (s *CameraSystem) Update(world *ecs.World) {
	if !s.snap() {
		return
	}
	world.EmitEvent(CameraUpdateEvent{
		AnchorID: s.anchor.ID,
		X:        s.X,
		Y:        s.Y,
	})
}

// MapToCanvas converts map coordinates to screen coordinates
func (s *CameraSystem) MapToCanvas(x, y float64) (float64, float64) {
	return x - s.X, y - s.Y
}

// CanvasToMap converts screen coordinates to map coordinates
func (s *CameraSystem) CanvasToMap(cx, cy float64) (float64, float64) {
	return cx + s.X, cy + s.Y
}

// MapBelowViewport is the map y of the bottom edge of the screen
func (s *CameraSystem) MapBelowViewport() float64 {
	return s.Y + s.Height
}

// MapAboveViewport is the map y of the top edge of the screen
func (s *CameraSystem) MapAboveViewport() float64 {
	return s.Y
}

// RandomMapPositionAboveViewport picks a point just out of sight uphill
func (s *CameraSystem) RandomMapPositionAboveViewport(rng *rand.Rand) (float64, float64) {
	return s.X + rng.Float64()*s.Width, s.Y - offscreenMargin - rng.Float64()*s.Height/2
}

// RandomMapPositionBelowViewport picks a point just out of sight downhill
func (s *CameraSystem) RandomMapPositionBelowViewport(rng *rand.Rand) (float64, float64) {
	return s.X + rng.Float64()*s.Width, s.Y + s.Height + offscreenMargin + rng.Float64()*s.Height/2
}

// RandomCentreMapX picks a map x in the middle half of the screen
func (s *CameraSystem) RandomCentreMapX(rng *rand.Rand) float64 {
	return s.X + s.Width/4 + rng.Float64()*s.Width/2
}
