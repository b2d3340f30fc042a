// Package entity is the shared core of every simulated object: map position,
// heading or target, hit boxes, collision callbacks and the per-cycle
// advance contract. Kind-specific state lives in a Behavior.
package entity

import (
	"fmt"
	"math"

	"ebiten-ski/collision"
	"ebiten-ski/components"
	"ebiten-ski/ecs"
	"ebiten-ski/motion"
)

// Behavior is the kind-specific part of an entity
type Behavior interface {
	// Cycle runs once per Advance, before collision checks and movement
	Cycle(e *Entity)
	// Key names the facing or animation frame representing the current state
	Key(e *Entity) string
}

// AxisSpeeder is implemented by behaviors that move each axis at its own speed
type AxisSpeeder interface {
	AxisSpeeds(e *Entity) (x, y float64)
}

// TimerOwner is implemented by behaviors holding countdowns that must not
// outlive the entity
type TimerOwner interface {
	CancelTimers()
}

// HitCallback runs when other is found touching self
type HitCallback = collision.Callback[*Entity]

// Descriptor is everything needed to build an entity
type Descriptor struct {
	ID       ecs.EntityID // optional, generated when zero
	Kind     string
	Width    float64
	Height   float64
	HitBoxes map[int]components.HitBox
	Layers   []int // occupied layers, {0} when empty; the first is the current layer
	Speed    float64
}

// Entity is a simulated object
type Entity struct {
	*ecs.Entity

	// IsMoving gates position integration
	IsMoving bool

	kind      string
	pos       components.Position
	layers    components.Layers
	shape     components.Shape
	heading   components.Heading
	target    components.Target
	convicted bool
	speed     float64
	deleted   bool

	tracked    *Entity
	registry   *collision.Registry[*Entity]
	alreadyHit []ecs.EntityID
	behavior   Behavior
}

// New builds an entity from a descriptor. A nil behavior makes a static entity.
func New(d Descriptor, b Behavior) *Entity {
	layers := d.Layers
	if len(layers) == 0 {
		layers = []int{0}
	}
	hitBoxes := make(map[int]components.HitBox, len(d.HitBoxes))
	for layer, hb := range d.HitBoxes {
		hitBoxes[layer] = hb
	}
	e := &Entity{
		Entity:   ecs.NewEntityWithID(d.ID),
		IsMoving: true,
		kind:     d.Kind,
		pos:      components.Position{Layer: layers[0]},
		layers:   components.NewLayers(layers...),
		shape:    components.Shape{Width: d.Width, Height: d.Height, HitBoxes: hitBoxes},
		speed:    d.Speed,
		registry: collision.NewRegistry[*Entity](),
		behavior: b,
	}
	if d.Kind != "" {
		e.AddTag(d.Kind)
	}
	return e
}

func (e *Entity) String() string {
	return fmt.Sprintf("%s<%d>", e.kind, e.ID)
}

// SetBehavior replaces the kind-specific behavior
func (e *Entity) SetBehavior(b Behavior) {
	e.behavior = b
}

// Behavior returns the kind-specific behavior, nil for static entities
func (e *Entity) Behavior() Behavior {
	return e.behavior
}

// Kind returns the descriptor kind, e.g. "tree" or "skier"
func (e *Entity) Kind() string {
	return e.kind
}

// Position returns the current map position
func (e *Entity) Position() components.Position {
	return e.pos
}

// SetPosition moves the entity without touching its layer
func (e *Entity) SetPosition(x, y float64) {
	e.pos.X, e.pos.Y = x, y
}

// SetPositionX moves the entity horizontally only
func (e *Entity) SetPositionX(x float64) {
	e.pos.X = x
}

// SetPositionY moves the entity vertically only
func (e *Entity) SetPositionY(y float64) {
	e.pos.Y = y
}

// SetLayer changes the current layer and makes it the only occupied layer
func (e *Entity) SetLayer(layer int) {
	e.pos.Layer = layer
	e.layers = components.NewLayers(layer)
}

// SetOccupiedLayers declares the occupied layers. The current layer always
// stays a member.
func (e *Entity) SetOccupiedLayers(layers ...int) {
	e.layers = components.NewLayers(layers...)
	e.layers[e.pos.Layer] = true
}

// Layer returns the current layer
func (e *Entity) Layer() int {
	return e.pos.Layer
}

// OccupiesLayer reports whether the entity can be hit on a layer
func (e *Entity) OccupiesLayer(layer int) bool {
	return e.layers.Contains(layer)
}

// Shape returns the entity's size and hit boxes
func (e *Entity) Shape() components.Shape {
	return e.shape
}

// HitBoxEdges returns the hit box for a layer in map coordinates
func (e *Entity) HitBoxEdges(layer int) components.Edges {
	return e.shape.EdgesAt(e.pos, layer)
}

// Bounds returns the full bounding box in map coordinates
func (e *Entity) Bounds() components.Edges {
	return components.Edges{
		Left:   e.pos.X - e.shape.Width/2,
		Top:    e.pos.Y - e.shape.Height/2,
		Right:  e.pos.X + e.shape.Width/2,
		Bottom: e.pos.Y + e.shape.Height/2,
	}
}

// IsAbove reports whether the whole entity lies above the map line y
func (e *Entity) IsAbove(y float64) bool {
	return e.Bounds().Bottom < y
}

// IsBelow reports whether the whole entity lies below the map line y
func (e *Entity) IsBelow(y float64) bool {
	return e.Bounds().Top > y
}

// Speed returns the base speed in map units per cycle
func (e *Entity) Speed() float64 {
	return e.speed
}

// SetSpeed sets the base speed
func (e *Entity) SetSpeed(s float64) {
	e.speed = s
}

// Target returns the point being sought
func (e *Entity) Target() components.Target {
	return e.target
}

// Heading returns the explicit heading, if any
func (e *Entity) Heading() components.Heading {
	return e.heading
}

// Convicted reports whether the current target ignores ordinary SetTarget calls
func (e *Entity) Convicted() bool {
	return e.convicted
}

// SetTarget seeks (x, y) and clears any heading angle. While convicted the
// call is ignored unless override is set; an override clears conviction.
func (e *Entity) SetTarget(x, y float64, override bool) {
	if !e.acceptTarget(override) {
		return
	}
	e.target = e.target.WithX(x).WithY(y)
}

// SetTargetX seeks x horizontally, keeping the vertical target
func (e *Entity) SetTargetX(x float64, override bool) {
	if !e.acceptTarget(override) {
		return
	}
	e.target = e.target.WithX(x)
}

// SetTargetY seeks y vertically, keeping the horizontal target
func (e *Entity) SetTargetY(y float64, override bool) {
	if !e.acceptTarget(override) {
		return
	}
	e.target = e.target.WithY(y)
}

func (e *Entity) acceptTarget(override bool) bool {
	if override {
		e.convicted = false
	}
	if e.convicted {
		return false
	}
	e.heading = components.Heading{}
	return true
}

// MoveTowardWithConviction seeks (x, y) and ignores ordinary retargeting
// until an override
func (e *Entity) MoveTowardWithConviction(x, y float64) {
	e.SetTarget(x, y, true)
	e.convicted = true
}

// ClearTarget stops seeking on both axes
func (e *Entity) ClearTarget() {
	e.target = components.Target{}
	e.convicted = false
}

// SetHeadingAngle sets an explicit heading and clears the target
func (e *Entity) SetHeadingAngle(angle float64) {
	e.heading = components.Heading{Angle: motion.NormalizeAngle(angle), HasAngle: true}
	e.target = components.Target{}
	e.convicted = false
}

// ClearHeading drops the explicit heading
func (e *Entity) ClearHeading() {
	e.heading = components.Heading{}
}

// Facing classifies the current heading, or the delta to the target when no
// heading is set. With neither the entity faces south.
func (e *Entity) Facing() motion.Facing {
	if e.heading.HasAngle {
		return motion.ClassifyAngle(e.heading.Angle)
	}
	if !e.target.IsSet() {
		return motion.South
	}
	return motion.ClassifyDelta(e.TargetDelta())
}

// TargetDelta returns target minus position, zero on axes not being sought
func (e *Entity) TargetDelta() (dx, dy float64) {
	if e.target.HasX {
		dx = e.target.X - e.pos.X
	}
	if e.target.HasY {
		dy = e.target.Y - e.pos.Y
	}
	return dx, dy
}

// Follow re-targets other's position every cycle
func (e *Entity) Follow(other *Entity) {
	e.tracked = other
}

// StopFollowing forgets the tracked entity
func (e *Entity) StopFollowing() {
	e.tracked = nil
}

// Following returns the tracked entity, nil when none
func (e *Entity) Following() *Entity {
	return e.tracked
}

// RegisterHitCallback runs fn(e, other) whenever other is found touching e
func (e *Entity) RegisterHitCallback(other *Entity, fn HitCallback) {
	e.registry.Register(other, fn)
}

// HitCallbacks returns how many callbacks are registered against other
func (e *Entity) HitCallbacks(other *Entity) int {
	return e.registry.Callbacks(other.ID)
}

// Hits reports whether e touches other. Entities already recorded as hit
// are ignored until ResetAlreadyHit.
func (e *Entity) Hits(other *Entity) bool {
	if e.HasAlreadyHit(other.ID) {
		return false
	}
	return collision.Hits(e, other)
}

// MarkAlreadyHit records an encounter so it does not trigger again
func (e *Entity) MarkAlreadyHit(id ecs.EntityID) {
	if e.HasAlreadyHit(id) {
		return
	}
	e.alreadyHit = append(e.alreadyHit, id)
}

// HasAlreadyHit reports whether an encounter with id was recorded
func (e *Entity) HasAlreadyHit(id ecs.EntityID) bool {
	for _, hit := range e.alreadyHit {
		if hit == id {
			return true
		}
	}
	return false
}

// ResetAlreadyHit forgets every recorded encounter
func (e *Entity) ResetAlreadyHit() {
	e.alreadyHit = e.alreadyHit[:0]
}

// CheckCallbacks fires the callbacks of every registered entity touching e
func (e *Entity) CheckCallbacks() int {
	return e.registry.Check(e)
}

// Advance runs one simulation cycle: behavior, collision callbacks,
// re-targeting of the tracked entity, then position integration.
func (e *Entity) Advance() {
	if e.deleted {
		return
	}
	if e.behavior != nil {
		e.behavior.Cycle(e)
	}
	if e.deleted {
		return
	}
	e.CheckCallbacks()
	if e.tracked != nil {
		if e.tracked.Deleted() {
			e.tracked = nil
		} else {
			e.SetTarget(e.tracked.pos.X, e.tracked.pos.Y, true)
		}
	}
	e.move()
}

func (e *Entity) move() {
	if !e.IsMoving || e.deleted {
		return
	}
	if e.heading.HasAngle {
		dx, dy := motion.HeadingVelocity(e.heading.Angle, e.speed)
		e.pos.X += dx
		e.pos.Y += dy
		return
	}
	sx, sy := e.AxisSpeeds()
	if e.target.HasX {
		e.pos.X = motion.StepToward(e.pos.X, e.target.X, sx)
	}
	if e.target.HasY {
		e.pos.Y = motion.StepToward(e.pos.Y, e.target.Y, sy)
	}
}

// AxisSpeeds returns the per-axis speeds used for target seeking
func (e *Entity) AxisSpeeds() (x, y float64) {
	if s, ok := e.behavior.(AxisSpeeder); ok {
		return s.AxisSpeeds(e)
	}
	return e.speed, e.speed
}

// ArrivedAt reports whether every sought axis has been reached
func (e *Entity) ArrivedAt() bool {
	if e.target.HasX && math.Abs(e.target.X-e.pos.X) > 0 {
		return false
	}
	if e.target.HasY && math.Abs(e.target.Y-e.pos.Y) > 0 {
		return false
	}
	return true
}

// MarkDeleted soft-deletes the entity. Pending countdowns are cancelled and
// the registry is dropped; the owning world prunes it later.
func (e *Entity) MarkDeleted() {
	if e.deleted {
		return
	}
	e.deleted = true
	e.IsMoving = false
	e.tracked = nil
	if owner, ok := e.behavior.(TimerOwner); ok {
		owner.CancelTimers()
	}
	e.registry.Clear()
}

// Deleted reports whether MarkDeleted was called
func (e *Entity) Deleted() bool {
	return e.deleted
}

// Draw resolves the key a renderer uses for the current state
func (e *Entity) Draw() string {
	if e.behavior == nil {
		return e.kind
	}
	return e.behavior.Key(e)
}
