package behavior

import (
	"fmt"
	"math"
	"math/rand"

	"ebiten-ski/components"
	"ebiten-ski/config"
	"ebiten-ski/ecs"
	"ebiten-ski/entity"
	"ebiten-ski/gamelog"
	"ebiten-ski/systems"
)

// MonsterState is the pursuer's coarse state
type MonsterState int

const (
	MonsterWandering MonsterState = iota
	MonsterFollowing
	MonsterEating
	MonsterFull
)

func (s MonsterState) String() string {
	switch s {
	case MonsterWandering:
		return "wandering"
	case MonsterFollowing:
		return "following"
	case MonsterEating:
		return "eating"
	case MonsterFull:
		return "full"
	}
	return "unknown"
}

// Monster chases the skier, eats it, then wanders off uphill
type Monster struct {
	*entity.Entity

	cfg         config.MonsterConfig
	cycleMillis int
	events      *ecs.EventManager
	viewport    entity.Viewport
	rng         *rand.Rand

	state         MonsterState
	eatingStage   int
	stageTimer    components.Countdown
	onDone        func()
	spriteVersion float64
}

// NewMonster builds a pursuer. viewport and rng are needed once it is full.
func NewMonster(d entity.Descriptor, cfg *config.SimConfig, viewport entity.Viewport, rng *rand.Rand, events *ecs.EventManager) *Monster {
	if d.Kind == "" {
		d.Kind = "monster"
	}
	if d.Speed == 0 {
		d.Speed = cfg.Monster.StandardSpeed
	}
	m := &Monster{
		cfg:         cfg.Monster,
		cycleMillis: cfg.Loop.CycleMillis,
		events:      events,
		viewport:    viewport,
		rng:         rng,
	}
	m.Entity = entity.New(d, m)
	return m
}

// State returns the coarse state
func (m *Monster) State() MonsterState {
	return m.state
}

// IsEating reports whether the monster is busy eating
func (m *Monster) IsEating() bool {
	return m.state == MonsterEating
}

// IsFull reports whether the monster has eaten
func (m *Monster) IsFull() bool {
	return m.state == MonsterFull
}

// EatingStage returns the eating animation stage, zero when not eating
func (m *Monster) EatingStage() int {
	return m.eatingStage
}

// Chase follows the skier at the skier's standard speed
func (m *Monster) Chase(s *Skier) {
	m.Follow(s.Entity)
	m.SetSpeed(s.StandardSpeed())
	m.state = MonsterFollowing
}

// StartEating immobilizes the monster and walks the eating stages. onDone
// runs once the last stage is over.
func (m *Monster) StartEating(onDone func()) {
	m.state = MonsterEating
	m.eatingStage = 1
	m.onDone = onDone
	m.IsMoving = false
	m.stageTimer.Arm(m.cfg.EatingStageMillis)
}

// IsPursuing reports whether the monster is still after the skier
func (m *Monster) IsPursuing() bool {
	return m.state != MonsterFull
}

// CancelTimers drops a pending eating stage. A monster removed mid-meal lets
// go of the skier it holds.
func (m *Monster) CancelTimers() {
	m.stageTimer.Cancel()
	if m.state != MonsterEating {
		return
	}
	m.eatingStage = 0
	m.state = MonsterFull
	m.release()
}

// Cycle steps the eating stages and the walking animation
func (m *Monster) Cycle(e *entity.Entity) {
	if m.state == MonsterEating {
		m.IsMoving = false
		if m.stageTimer.Tick(m.cycleMillis) {
			m.eatingStage++
			if m.eatingStage > m.cfg.EatingStages {
				m.finishEating()
			} else {
				m.stageTimer.Arm(m.cfg.EatingStageMillis)
			}
		}
		return
	}

	m.spriteVersion += 0.1
	if m.spriteVersion > 2 {
		m.spriteVersion = 0.1
	}
}

func (m *Monster) finishEating() {
	m.eatingStage = 0
	m.state = MonsterFull
	m.IsMoving = true
	m.StopFollowing()
	m.SetSpeed(m.cfg.StandardSpeed)
	if m.viewport != nil && m.rng != nil {
		x, y := m.viewport.RandomMapPositionAboveViewport(m.rng)
		m.MoveTowardWithConviction(x, y)
	}
	gamelog.Infof("%s is full", m.Entity)
	if m.events != nil {
		m.events.Emit(systems.MonsterFullEvent{MonsterID: m.ID})
	}

	m.release()
}

func (m *Monster) release() {
	done := m.onDone
	m.onDone = nil
	if done != nil {
		done()
	}
}

// Key names the sprite for the current state
func (m *Monster) Key(e *entity.Entity) string {
	if m.state == MonsterEating {
		return fmt.Sprintf("eating%d", m.eatingStage)
	}
	frame := int(math.Ceil(m.spriteVersion))
	if frame < 1 {
		frame = 1
	}
	dx, _ := m.TargetDelta()
	if dx >= 0 {
		return fmt.Sprintf("sEast%d", frame)
	}
	return fmt.Sprintf("sWest%d", frame)
}
