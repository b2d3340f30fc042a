// Package behavior holds the kind-specific state machines driven by
// entity.Advance: the player, the pursuer and the drifting snowboarder.
package behavior

import (
	"math"

	"ebiten-ski/components"
	"ebiten-ski/config"
	"ebiten-ski/ecs"
	"ebiten-ski/entity"
	"ebiten-ski/gamelog"
	"ebiten-ski/motion"
	"ebiten-ski/systems"
)

// SkierState is the player's coarse state
type SkierState int

const (
	SkierNormal SkierState = iota
	SkierCrashed
	SkierJumping
	SkierBeingEaten
)

func (s SkierState) String() string {
	switch s {
	case SkierNormal:
		return "normal"
	case SkierCrashed:
		return "crashed"
	case SkierJumping:
		return "jumping"
	case SkierBeingEaten:
		return "being_eaten"
	}
	return "unknown"
}

// Eased speed factors per facing. X eases toward width*factor, Y toward
// height*factor; facings not listed ease toward zero (x) or full speed (y).
const (
	diagonalXFactor = 0.5
	diagonalYFactor = 0.6
	steepXFactor    = 0.33
	steepYFactor    = 0.85

	// Steering targets closer than this horizontally are treated as straight down
	steerSnapDistance = 75
)

var trickKeys = [...]string{"jumping", "somersault1", "somersault2"}

// Skier is the player-controlled entity
type Skier struct {
	*entity.Entity

	cfg         config.SkierConfig
	cycleMillis int
	events      *ecs.EventManager

	state         SkierState
	hasBeenHit    bool
	isJumping     bool
	isTrick       bool
	isBeingEaten  bool
	canBoost      bool
	trickStep     int
	preBoostSpeed float64
	distance      float64
	easeCycles    int
	eatenBy       ecs.EntityID

	// line held at take-off, resumed on landing
	course        components.Target
	courseHeading components.Heading

	speedX motion.SpeedEase
	speedY motion.SpeedEase

	reversion     components.Countdown
	trickTimer    components.Countdown
	boost         components.Countdown
	boostCooldown components.Countdown
}

// NewSkier builds the player. events may be nil.
func NewSkier(d entity.Descriptor, cfg *config.SimConfig, events *ecs.EventManager) *Skier {
	if d.Kind == "" {
		d.Kind = "skier"
	}
	if d.Speed == 0 {
		d.Speed = cfg.Skier.StandardSpeed
	}
	s := &Skier{
		cfg:         cfg.Skier,
		cycleMillis: cfg.Loop.CycleMillis,
		events:      events,
		canBoost:    true,
		easeCycles:  cfg.Skier.TurnEaseCycles,
		speedY:      motion.SpeedEase{Factor: 1},
	}
	s.Entity = entity.New(d, s)
	s.setNormal()
	return s
}

// State returns the coarse state
func (s *Skier) State() SkierState {
	return s.state
}

// HasBeenHit reports whether the skier is immobilized by a crash or a pursuer
func (s *Skier) HasBeenHit() bool {
	return s.hasBeenHit
}

// IsJumping reports whether the skier is airborne
func (s *Skier) IsJumping() bool {
	return s.isJumping
}

// IsPerformingTrick reports whether a mid-air trick is running
func (s *Skier) IsPerformingTrick() bool {
	return s.isTrick
}

// IsBeingEaten reports whether a pursuer holds the skier
func (s *Skier) IsBeingEaten() bool {
	return s.isBeingEaten
}

// EatenByID returns the id of the pursuer holding the skier, zero when free
func (s *Skier) EatenByID() ecs.EntityID {
	return s.eatenBy
}

// CanSpeedBoost reports whether a boost is available
func (s *Skier) CanSpeedBoost() bool {
	return s.canBoost
}

// TrickStep returns the current trick animation step
func (s *Skier) TrickStep() int {
	return s.trickStep
}

// StandardSpeed is the speed the skier returns to after a crash or jump
func (s *Skier) StandardSpeed() float64 {
	return s.cfg.StandardSpeed
}

// Distance is the map distance travelled while moving
func (s *Skier) Distance() float64 {
	return s.distance
}

// SetTurnEaseCycles tunes how quickly speeds adapt after a turn
func (s *Skier) SetTurnEaseCycles(cycles int) {
	s.easeCycles = cycles
}

// ReversionRemaining returns the simulated milliseconds until a crash or jump ends
func (s *Skier) ReversionRemaining() int {
	return s.reversion.Remaining()
}

func (s *Skier) emit(ev ecs.Event) {
	if s.events != nil {
		s.events.Emit(ev)
	}
}

func (s *Skier) setNormal() {
	s.SetSpeed(s.cfg.StandardSpeed)
	s.IsMoving = true
	s.hasBeenHit = false
	s.isJumping = false
	s.isTrick = false
	s.trickStep = 0
	s.trickTimer.Cancel()
	s.SetLayer(0)
	s.state = SkierNormal
}

func (s *Skier) setCrashed() {
	s.IsMoving = false
	s.hasBeenHit = true
	s.isJumping = false
	s.isTrick = false
	s.trickStep = 0
	s.trickTimer.Cancel()
	s.SetLayer(0)
	s.state = SkierCrashed
}

func (s *Skier) setJumping() {
	speed := s.Speed() + s.cfg.JumpSpeedBonus
	s.SetSpeed(speed)
	s.speedY.Set(speed)
	s.IsMoving = true
	s.hasBeenHit = false
	s.isJumping = true
	s.SetLayer(1)
	s.state = SkierJumping
}

// HitObstacle crashes the skier. The obstacle is recorded so staying on top
// of it does not crash again; the crash wears off after CrashMillis, and a
// new crash restarts that wait.
func (s *Skier) HitObstacle(obstacle *entity.Entity) {
	s.MarkAlreadyHit(obstacle.ID)
	if s.isBeingEaten {
		return
	}
	s.immobilize()
	s.reversion.Arm(s.cfg.CrashMillis)
	gamelog.Debugf("%s crashed into %s", s.Entity, obstacle)
	s.emit(systems.CrashEvent{EntityID: s.ID, ObstacleID: obstacle.ID, Kind: obstacle.Kind()})
}

func (s *Skier) immobilize() {
	s.setCrashed()
	s.SetSpeed(s.cfg.StandardSpeed)
}

// HitJump launches the skier onto the jump layer for JumpMillis
func (s *Skier) HitJump(jump *entity.Entity) {
	if s.isBeingEaten {
		return
	}
	if !s.isJumping {
		s.course = s.Target()
		s.courseHeading = s.Heading()
	}
	s.setJumping()
	s.reversion.Arm(s.cfg.JumpMillis)
	gamelog.Debugf("%s jumped off %s at speed %v", s.Entity, jump, s.Speed())
	s.emit(systems.JumpEvent{EntityID: s.ID, JumpID: jump.ID, Speed: s.Speed()})
}

// AttemptTrick starts cycling the trick animation. Only possible mid-air.
func (s *Skier) AttemptTrick() bool {
	if !s.isJumping || s.isTrick {
		return false
	}
	s.isTrick = true
	s.trickStep = 0
	s.trickTimer.Arm(s.cfg.TrickStepMillis)
	s.emit(systems.TrickEvent{EntityID: s.ID})
	return true
}

// SpeedBoost multiplies the speed for BoostMillis, then disables boosting
// for BoostCooldownMillis
func (s *Skier) SpeedBoost() bool {
	if !s.canBoost {
		return false
	}
	s.canBoost = false
	s.preBoostSpeed = s.Speed()
	s.SetSpeed(s.Speed() * s.cfg.BoostFactor)
	s.boost.Arm(s.cfg.BoostMillis)
	s.emit(systems.BoostEvent{EntityID: s.ID, Active: true, Speed: s.Speed()})
	return true
}

// EatenBy hands the skier to a pursuer. Nothing else moves the skier until
// the pursuer is full and releases it.
func (s *Skier) EatenBy(m *Monster) {
	if s.isBeingEaten {
		return
	}
	s.MarkAlreadyHit(m.ID)
	s.immobilize()
	s.reversion.Cancel()
	s.isBeingEaten = true
	s.eatenBy = m.ID
	s.IsMoving = false
	s.state = SkierBeingEaten
	gamelog.Infof("%s is being eaten by %s", s.Entity, m.Entity)
	s.emit(systems.EatenEvent{EntityID: s.ID, MonsterID: m.ID})
	m.StartEating(func() { s.release(m) })
}

func (s *Skier) release(m *Monster) {
	s.isBeingEaten = false
	s.eatenBy = 0
	s.setNormal()
	s.emit(systems.ReleasedEvent{EntityID: s.ID, MonsterID: m.ID})
}

// Steer points the skier at a map position. Ignored while immobilized.
func (s *Skier) Steer(x, y float64) {
	if s.hasBeenHit || s.isBeingEaten {
		return
	}
	if math.Abs(s.Position().X-x) <= steerSnapDistance {
		x = s.Position().X
	}
	s.SetTarget(x, y, false)
}

// StartMovingIfPossible resumes movement unless the skier is immobilized
func (s *Skier) StartMovingIfPossible() {
	if !s.hasBeenHit && !s.isBeingEaten {
		s.IsMoving = true
	}
}

// TurnEast rotates one discrete facing toward east
func (s *Skier) TurnEast() {
	s.setDiscreteDirection(motion.TurnEast(s.Facing()))
}

// TurnWest rotates one discrete facing toward west
func (s *Skier) TurnWest() {
	s.setDiscreteDirection(motion.TurnWest(s.Facing()))
}

// PointSouth faces straight downhill
func (s *Skier) PointSouth() {
	s.setDiscreteDirection(motion.South)
}

// Stop turns sideways to the slope on the side currently faced
func (s *Skier) Stop() {
	switch s.Facing() {
	case motion.West, motion.WsWest, motion.SWest:
		s.setDiscreteDirection(motion.West)
	default:
		s.setDiscreteDirection(motion.East)
	}
}

// StepWest shuffles sideways while stopped
func (s *Skier) StepWest() {
	if s.hasBeenHit || s.isBeingEaten {
		return
	}
	s.SetPositionX(s.Position().X - s.Speed()*2)
}

// StepEast shuffles sideways while stopped
func (s *Skier) StepEast() {
	if s.hasBeenHit || s.isBeingEaten {
		return
	}
	s.SetPositionX(s.Position().X + s.Speed()*2)
}

func (s *Skier) setDiscreteDirection(f motion.Facing) {
	s.SetHeadingAngle(f.Angle())
	if s.hasBeenHit || s.isBeingEaten {
		return
	}
	s.IsMoving = !f.IsStopped()
}

// Reset puts the skier back to a fresh run: normal state, no recorded hits,
// boost available
func (s *Skier) Reset() {
	s.CancelTimers()
	s.ResetAlreadyHit()
	s.isBeingEaten = false
	s.eatenBy = 0
	s.course, s.courseHeading = components.Target{}, components.Heading{}
	s.canBoost = true
	s.distance = 0
	s.speedX = motion.SpeedEase{}
	s.speedY = motion.SpeedEase{Factor: 1}
	s.setNormal()
}

// CancelTimers drops every pending countdown
func (s *Skier) CancelTimers() {
	s.reversion.Cancel()
	s.trickTimer.Cancel()
	s.boost.Cancel()
	s.boostCooldown.Cancel()
}

// Cycle runs the countdowns, eases the axis speeds and keeps a jump going
// downhill on its current line
func (s *Skier) Cycle(e *entity.Entity) {
	s.tick()
	s.ease()

	if s.speedX.Current <= 0 && s.speedY.Current <= 0 {
		s.IsMoving = false
	}
	if s.IsMoving {
		s.distance += s.Speed()
	}
	if s.isJumping {
		s.SetTargetY(s.Position().Y+s.Speed(), true)
	}
}

func (s *Skier) tick() {
	dt := s.cycleMillis
	if s.reversion.Tick(dt) {
		from := s.state
		s.setNormal()
		if from == SkierJumping {
			s.resumeCourse()
		}
		s.emit(systems.RecoveredEvent{EntityID: s.ID, From: from.String()})
	}
	if s.trickTimer.Tick(dt) && s.isTrick {
		s.trickStep = (s.trickStep + 1) % len(trickKeys)
		s.trickTimer.Arm(s.cfg.TrickStepMillis)
	}
	// cooldown first so it starts counting on the cycle after the boost ends
	if s.boostCooldown.Tick(dt) {
		s.canBoost = true
	}
	if s.boost.Tick(dt) {
		s.SetSpeed(s.preBoostSpeed)
		s.boostCooldown.Arm(s.cfg.BoostCooldownMillis)
		s.emit(systems.BoostEvent{EntityID: s.ID, Active: false, Speed: s.Speed()})
	}
}

// resumeCourse puts back the target or heading held at take-off; the
// airborne re-targeting only carried the y goal along
func (s *Skier) resumeCourse() {
	course, heading := s.course, s.courseHeading
	s.course, s.courseHeading = components.Target{}, components.Heading{}
	if heading.HasAngle {
		s.setDiscreteDirection(motion.ClassifyAngle(heading.Angle))
		return
	}
	if course.HasX {
		s.SetTargetX(course.X, false)
	}
	if course.HasY && course.Y > s.Position().Y {
		s.SetTargetY(course.Y, false)
	}
}

func (s *Skier) ease() {
	base := s.Speed()
	facing := s.Facing()

	switch facing {
	case motion.EsEast, motion.WsWest:
		s.speedX.Ease(base, base*diagonalXFactor, diagonalXFactor, s.easeCycles)
	case motion.SEast, motion.SWest:
		s.speedX.Ease(base, base*steepXFactor, steepXFactor, s.easeCycles)
	default:
		s.speedX.Ease(base, 0, s.speedX.Factor, s.easeCycles)
	}

	// airborne vertical speed is set explicitly on take-off
	if s.isJumping {
		return
	}
	switch facing {
	case motion.EsEast, motion.WsWest:
		s.speedY.Ease(base, base*diagonalYFactor, diagonalYFactor, s.easeCycles)
	case motion.SEast, motion.SWest:
		s.speedY.Ease(base, base*steepYFactor, steepYFactor, s.easeCycles)
	case motion.East, motion.West:
		s.speedY.Factor = 1
		s.speedY.Set(0)
	default:
		s.speedY.Ease(base, base, s.speedY.Factor, s.easeCycles)
	}
}

// AxisSpeeds returns the eased per-axis speeds
func (s *Skier) AxisSpeeds(e *entity.Entity) (x, y float64) {
	return s.speedX.Current, s.speedY.Current
}

// Key names the sprite for the current state
func (s *Skier) Key(e *entity.Entity) string {
	switch {
	case s.isBeingEaten:
		return "blank"
	case s.isJumping && s.isTrick:
		return trickKeys[s.trickStep]
	case s.isJumping:
		return "jumping"
	case s.hasBeenHit:
		return "hit"
	}
	return s.Facing().String()
}
