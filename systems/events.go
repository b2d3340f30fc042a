package systems

import (
	"ebiten-ski/ecs"
)

// Event type constants
const (
	EventCrash        ecs.EventType = "crash"
	EventJump         ecs.EventType = "jump"
	EventTrick        ecs.EventType = "trick"
	EventEaten        ecs.EventType = "eaten"
	EventReleased     ecs.EventType = "released"
	EventBoost        ecs.EventType = "boost"
	EventMonsterFull  ecs.EventType = "monster_full"
	EventRecovered    ecs.EventType = "recovered"
	EventCameraUpdate ecs.EventType = "camera_update"
)

// CrashEvent is the negative feedback fired when the skier hits an obstacle
type CrashEvent struct {
	EntityID   ecs.EntityID // Skier that crashed
	ObstacleID ecs.EntityID // What it ran into
	Kind       string       // Obstacle kind, e.g. "tree"
}

// Type returns the event type
func (e CrashEvent) Type() ecs.EventType {
	return EventCrash
}

// JumpEvent is the positive feedback fired when the skier takes off
type JumpEvent struct {
	EntityID ecs.EntityID
	JumpID   ecs.EntityID
	Speed    float64 // Speed after the take-off bonus
}

// Type returns the event type
func (e JumpEvent) Type() ecs.EventType {
	return EventJump
}

// TrickEvent is emitted when a trick starts mid-air
type TrickEvent struct {
	EntityID ecs.EntityID
}

// Type returns the event type
func (e TrickEvent) Type() ecs.EventType {
	return EventTrick
}

// EatenEvent is emitted when a pursuer catches the skier
type EatenEvent struct {
	EntityID  ecs.EntityID // Skier being eaten
	MonsterID ecs.EntityID
}

// Type returns the event type
func (e EatenEvent) Type() ecs.EventType {
	return EventEaten
}

// ReleasedEvent is emitted when the pursuer lets go of the skier
type ReleasedEvent struct {
	EntityID  ecs.EntityID
	MonsterID ecs.EntityID
}

// Type returns the event type
func (e ReleasedEvent) Type() ecs.EventType {
	return EventReleased
}

// BoostEvent is emitted when a speed boost starts and when it wears off
type BoostEvent struct {
	EntityID ecs.EntityID
	Active   bool
	Speed    float64
}

// Type returns the event type
func (e BoostEvent) Type() ecs.EventType {
	return EventBoost
}

// MonsterFullEvent is emitted when a pursuer finishes eating
type MonsterFullEvent struct {
	MonsterID ecs.EntityID
}

// Type returns the event type
func (e MonsterFullEvent) Type() ecs.EventType {
	return EventMonsterFull
}

// RecoveredEvent is emitted when a crash or a jump wears off
type RecoveredEvent struct {
	EntityID ecs.EntityID
	From     string // State the skier recovered from
}

// Type returns the event type
func (e RecoveredEvent) Type() ecs.EventType {
	return EventRecovered
}

// CameraUpdateEvent is emitted when the viewport scrolls
type CameraUpdateEvent struct {
	AnchorID ecs.EntityID
	X, Y     float64 // Map position of the viewport's top-left corner
}

// Type returns the event type
func (e CameraUpdateEvent) Type() ecs.EventType {
	return EventCameraUpdate
}
