package behavior

import (
	"math/rand"
	"testing"

	"github.com/bmizerany/assert"

	"ebiten-ski/config"
	"ebiten-ski/ecs"
	"ebiten-ski/entity"
	"ebiten-ski/systems"
)

func newTestMonster(cfg *config.SimConfig, events *ecs.EventManager) *Monster {
	return NewMonster(entity.Descriptor{Width: 10, Height: 10}, cfg, testViewport, rand.New(rand.NewSource(1)), events)
}

func eatOn(m *Monster, s *Skier) {
	m.RegisterHitCallback(s.Entity, func(_, _ *entity.Entity) {
		s.EatenBy(m)
	})
}

func TestMonsterChasesAtSkierSpeed(t *testing.T) {
	cfg := config.Default()
	s := newTestSkier(cfg, nil)
	m := newTestMonster(cfg, nil)
	m.SetPosition(0, -100)

	assert.Equal(t, MonsterWandering, m.State())
	m.Chase(s)
	assert.Equal(t, MonsterFollowing, m.State())
	assert.Equal(t, s.StandardSpeed(), m.Speed())
	assert.Equal(t, s.Entity, m.Following())

	advance(1, s.Entity, m.Entity)
	assert.Equal(t, -100+s.StandardSpeed(), m.Position().Y)
	assert.Equal(t, "sEast1", m.Draw())
}

func TestMonsterEatsThenReleases(t *testing.T) {
	cfg := config.Default()
	// a crash this short would free the skier early unless eating cancels it
	cfg.Skier.CrashMillis = 200
	em := ecs.NewEventManager()
	rec := newRecorder(em, systems.EventEaten, systems.EventMonsterFull, systems.EventReleased, systems.EventCrash)
	s := newTestSkier(cfg, em)
	m := newTestMonster(cfg, em)
	m.SetPosition(0, -3)
	m.Chase(s)
	eatOn(m, s)

	advance(1, s.Entity, m.Entity)
	assert.Equal(t, SkierBeingEaten, s.State())
	assert.T(t, s.IsBeingEaten())
	assert.T(t, s.HasBeenHit())
	assert.T(t, s.HasAlreadyHit(m.ID))
	assert.Equal(t, m.ID, s.EatenByID())
	assert.Equal(t, "blank", s.Draw())
	assert.Equal(t, MonsterEating, m.State())
	assert.Equal(t, "eating1", m.Draw())
	assert.Equal(t, 1, rec.count(systems.EventEaten))
	assert.Equal(t, 0, rec.count(systems.EventCrash))
	assert.T(t, m.IsPursuing())

	stageCycles := cfg.MillisToCycles(cfg.Monster.EatingStageMillis)
	seen := map[int]int{m.EatingStage(): 1}
	total := stageCycles * cfg.Monster.EatingStages
	for cycle := 2; cycle <= total; cycle++ {
		advance(1, s.Entity, m.Entity)
		assert.Equalf(t, SkierBeingEaten, s.State(), "cycle %d", cycle)
		assert.Tf(t, !s.IsMoving, "cycle %d", cycle)
		assert.Tf(t, !m.IsMoving, "cycle %d", cycle)
		seen[m.EatingStage()]++
	}
	assert.Equal(t, cfg.Monster.EatingStages, len(seen))
	for stage := 1; stage <= cfg.Monster.EatingStages; stage++ {
		assert.Equalf(t, stageCycles, seen[stage], "stage %d", stage)
	}
	assert.Equal(t, 0, rec.count(systems.EventReleased))

	advance(1, s.Entity, m.Entity)
	assert.Equal(t, MonsterFull, m.State())
	assert.T(t, m.IsFull())
	assert.T(t, !m.IsPursuing())
	assert.Equal(t, 0, m.EatingStage())
	assert.T(t, m.Following() == nil)
	assert.T(t, m.Convicted())
	assert.T(t, m.IsMoving)
	assert.Equal(t, cfg.Monster.StandardSpeed, m.Speed())
	assert.Equal(t, testViewport.top-50, m.Target().Y)

	assert.Equal(t, SkierNormal, s.State())
	assert.T(t, !s.IsBeingEaten())
	assert.T(t, s.IsMoving)
	assert.Equal(t, ecs.EntityID(0), s.EatenByID())
	assert.Equal(t, 1, rec.count(systems.EventMonsterFull))
	assert.Equal(t, 1, rec.count(systems.EventReleased))
	assert.Equal(t, 0, rec.count(systems.EventCrash))

	// the same monster is not hungry twice
	advance(10, s.Entity, m.Entity)
	assert.Equal(t, SkierNormal, s.State())
	assert.T(t, m.Position().Y < -3)
}

func TestCrashIgnoredWhileBeingEaten(t *testing.T) {
	cfg := config.Default()
	s := newTestSkier(cfg, nil)
	m := newTestMonster(cfg, nil)
	s.EatenBy(m)
	tree := newObstacle("tree", 0, 0)
	s.HitObstacle(tree)
	s.HitJump(newObstacle("jump", 0, 0))
	assert.Equal(t, SkierBeingEaten, s.State())
	assert.Equal(t, 0, s.ReversionRemaining())
	assert.T(t, s.HasAlreadyHit(tree.ID))

	// a second pursuer cannot take over
	other := newTestMonster(cfg, nil)
	s.EatenBy(other)
	assert.Equal(t, m.ID, s.EatenByID())
	assert.Equal(t, MonsterWandering, other.State())
}

func TestDeletingEatingMonsterFreesSkier(t *testing.T) {
	cfg := config.Default()
	em := ecs.NewEventManager()
	rec := newRecorder(em, systems.EventReleased)
	s := newTestSkier(cfg, em)
	m := newTestMonster(cfg, em)
	s.EatenBy(m)
	assert.Equal(t, SkierBeingEaten, s.State())

	m.MarkDeleted()
	assert.Equal(t, SkierNormal, s.State())
	assert.T(t, !s.IsBeingEaten())
	assert.T(t, s.IsMoving)
	assert.Equal(t, ecs.EntityID(0), s.EatenByID())
	assert.Equal(t, 1, rec.count(systems.EventReleased))
	assert.T(t, !m.IsPursuing())

	advance(1000, s.Entity, m.Entity)
	assert.Equal(t, SkierNormal, s.State())
	assert.Equal(t, 1, rec.count(systems.EventReleased))
}

func TestDeletingIdleMonsterReleasesNothing(t *testing.T) {
	cfg := config.Default()
	m := newTestMonster(cfg, nil)
	m.MarkDeleted()
	assert.Equal(t, MonsterWandering, m.State())
	assert.T(t, m.IsPursuing())
}
