package systems

import (
	"fmt"

	"ebiten-ski/ecs"
	"ebiten-ski/gamelog"
)

// Stats counts what happened during a run
type Stats struct {
	Crashes int
	Jumps   int
	Tricks  int
	Eaten   int
	Boosts  int
}

// FeedbackSystem turns gameplay events into messages, run statistics and a
// short screen flash
type FeedbackSystem struct {
	log   *MessageLog
	subs  map[ecs.EventType]ecs.SubscriptionID
	world *ecs.World
	stats Stats

	// Cycles left on the current flash and its kind
	flash     int
	flashType MessageType
	// How many cycles a flash lasts
	FlashCycles int
}

// NewFeedbackSystem subscribes to the world's gameplay events
func NewFeedbackSystem(world *ecs.World, log *MessageLog) *FeedbackSystem {
	s := &FeedbackSystem{
		log:         log,
		subs:        make(map[ecs.EventType]ecs.SubscriptionID),
		world:       world,
		FlashCycles: 10,
	}
	em := world.GetEventManager()
	s.subs[EventCrash] = em.Subscribe(EventCrash, s.onCrash)
	s.subs[EventJump] = em.Subscribe(EventJump, s.onJump)
	s.subs[EventTrick] = em.Subscribe(EventTrick, s.onTrick)
	s.subs[EventEaten] = em.Subscribe(EventEaten, s.onEaten)
	s.subs[EventReleased] = em.Subscribe(EventReleased, s.onReleased)
	s.subs[EventBoost] = em.Subscribe(EventBoost, s.onBoost)
	return s
}

// Close drops the event subscriptions
func (s *FeedbackSystem) Close() {
	em := s.world.GetEventManager()
	for t, id := range s.subs {
		em.Unsubscribe(t, id)
	}
	s.subs = map[ecs.EventType]ecs.SubscriptionID{}
}

// Update counts the current flash down
func (s *FeedbackSystem) Update(world *ecs.World) {
	if s.flash > 0 {
		s.flash--
	}
}

// Stats returns the run statistics
func (s *FeedbackSystem) Stats() Stats {
	return s.stats
}

// ResetStats starts a new run
func (s *FeedbackSystem) ResetStats() {
	s.stats = Stats{}
	s.flash = 0
}

// Flash returns the active flash type, false when none
func (s *FeedbackSystem) Flash() (MessageType, bool) {
	return s.flashType, s.flash > 0
}

func (s *FeedbackSystem) add(t MessageType, text string) {
	s.log.AddColored(ColoredMessage{Text: text, Type: t, Cycle: s.world.Cycle()})
}

func (s *FeedbackSystem) startFlash(t MessageType) {
	s.flash = s.FlashCycles
	s.flashType = t
}

func (s *FeedbackSystem) onCrash(ev ecs.Event) {
	e := ev.(CrashEvent)
	s.stats.Crashes++
	s.add(MessageTypeCrash, fmt.Sprintf("Ouch! Hit a %s", e.Kind))
	s.startFlash(MessageTypeCrash)
	gamelog.Debugf("crash: entity %d hit %s %d", e.EntityID, e.Kind, e.ObstacleID)
}

func (s *FeedbackSystem) onJump(ev ecs.Event) {
	e := ev.(JumpEvent)
	s.stats.Jumps++
	s.add(MessageTypeJump, "Airborne!")
	s.startFlash(MessageTypeJump)
	gamelog.Debugf("jump: entity %d off %d at speed %v", e.EntityID, e.JumpID, e.Speed)
}

func (s *FeedbackSystem) onTrick(ev ecs.Event) {
	s.stats.Tricks++
	s.add(MessageTypeJump, "Somersault!")
}

func (s *FeedbackSystem) onEaten(ev ecs.Event) {
	e := ev.(EatenEvent)
	s.stats.Eaten++
	s.add(MessageTypeCrash, "The monster got you!")
	s.startFlash(MessageTypeCrash)
	gamelog.Infof("eaten: entity %d by monster %d", e.EntityID, e.MonsterID)
}

func (s *FeedbackSystem) onReleased(ev ecs.Event) {
	s.add(MessageTypeAlert, "Spat out. Keep skiing!")
}

func (s *FeedbackSystem) onBoost(ev ecs.Event) {
	e := ev.(BoostEvent)
	if e.Active {
		s.stats.Boosts++
		s.add(MessageTypeAlert, "Speed boost!")
		return
	}
	s.add(MessageTypeNormal, "Boost over")
}
