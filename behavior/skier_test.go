package behavior

import (
	"testing"

	"github.com/bmizerany/assert"

	"ebiten-ski/config"
	"ebiten-ski/ecs"
	"ebiten-ski/motion"
	"ebiten-ski/systems"
)

func TestNewSkierStartsNormal(t *testing.T) {
	cfg := config.Default()
	s := newTestSkier(cfg, nil)
	assert.Equal(t, SkierNormal, s.State())
	assert.Equal(t, "skier", s.Kind())
	assert.Equal(t, cfg.Skier.StandardSpeed, s.Speed())
	assert.Equal(t, 0, s.Layer())
	assert.T(t, s.IsMoving)
	assert.T(t, s.CanSpeedBoost())
	assert.Equal(t, "south", s.Draw())
}

func TestCrashRevertsAfterCrashMillis(t *testing.T) {
	cfg := config.Default()
	em := ecs.NewEventManager()
	rec := newRecorder(em, systems.EventCrash, systems.EventRecovered)
	s := newTestSkier(cfg, em)
	tree := newObstacle("tree", 0, 0)
	crashOn(tree, s)

	s.SpeedBoost()
	assert.Equal(t, cfg.Skier.StandardSpeed*cfg.Skier.BoostFactor, s.Speed())

	advance(1, s.Entity, tree)
	assert.Equal(t, SkierCrashed, s.State())
	assert.T(t, s.HasBeenHit())
	assert.T(t, !s.IsMoving)
	assert.T(t, s.HasAlreadyHit(tree.ID))
	assert.Equal(t, cfg.Skier.StandardSpeed, s.Speed())
	assert.Equal(t, "hit", s.Draw())
	assert.Equal(t, 1, rec.count(systems.EventCrash))

	crashCycles := cfg.MillisToCycles(cfg.Skier.CrashMillis)
	for i := 1; i < crashCycles; i++ {
		advance(1, s.Entity, tree)
		assert.Equalf(t, SkierCrashed, s.State(), "cycle %d", i)
	}
	// staying on top of the same tree never crashes again
	assert.Equal(t, 1, rec.count(systems.EventCrash))

	advance(1, s.Entity, tree)
	assert.Equal(t, SkierNormal, s.State())
	assert.T(t, !s.HasBeenHit())
	assert.T(t, s.IsMoving)
	assert.Equal(t, 1, rec.count(systems.EventRecovered))
}

func TestRecordedHitDoesNotExtendCrash(t *testing.T) {
	cfg := config.Default()
	s := newTestSkier(cfg, nil)
	tree := newObstacle("tree", 0, 0)
	crashOn(tree, s)

	advance(1, s.Entity, tree)
	// the tree is overlapped on every one of these cycles
	advance(cfg.MillisToCycles(500), s.Entity, tree)
	assert.Equal(t, cfg.Skier.CrashMillis-500, s.ReversionRemaining())
	assert.Equal(t, 1, tree.HitCallbacks(s.Entity))
}

func TestSecondCrashReschedulesReversion(t *testing.T) {
	cfg := config.Default()
	s := newTestSkier(cfg, nil)
	tree := newObstacle("tree", 0, 0)
	rock := newObstacle("rock", 0, 0)
	crashOn(tree, s)

	advance(1, s.Entity, tree)
	advance(cfg.MillisToCycles(500), s.Entity, tree)
	assert.Equal(t, cfg.Skier.CrashMillis-500, s.ReversionRemaining())

	s.HitObstacle(rock)
	assert.Equal(t, cfg.Skier.CrashMillis, s.ReversionRemaining())

	crashCycles := cfg.MillisToCycles(cfg.Skier.CrashMillis)
	advance(crashCycles-1, s.Entity, tree)
	assert.Equal(t, SkierCrashed, s.State())
	advance(1, s.Entity, tree)
	assert.Equal(t, SkierNormal, s.State())
}

func TestSimultaneousHitsShareOneReversion(t *testing.T) {
	cfg := config.Default()
	em := ecs.NewEventManager()
	rec := newRecorder(em, systems.EventRecovered)
	s := newTestSkier(cfg, em)
	tree := newObstacle("tree", 0, 0)
	rock := newObstacle("rock", 2, 2)
	crashOn(tree, s)
	crashOn(rock, s)

	advance(1, s.Entity, tree, rock)
	assert.T(t, s.HasAlreadyHit(tree.ID))
	assert.T(t, s.HasAlreadyHit(rock.ID))
	assert.Equal(t, cfg.Skier.CrashMillis, s.ReversionRemaining())

	crashCycles := cfg.MillisToCycles(cfg.Skier.CrashMillis)
	advance(crashCycles, s.Entity, tree, rock)
	assert.Equal(t, SkierNormal, s.State())
	assert.Equal(t, 0, s.ReversionRemaining())

	// nothing left to fire
	advance(crashCycles, s.Entity, tree, rock)
	assert.Equal(t, 1, rec.count(systems.EventRecovered))
}

func TestJumpRaisesLayerAndSpeed(t *testing.T) {
	cfg := config.Default()
	em := ecs.NewEventManager()
	rec := newRecorder(em, systems.EventJump)
	s := newTestSkier(cfg, em)
	jump := newObstacle("jump", 0, 0)
	jumpOn(jump, s)

	old := s.Speed()
	advance(1, s.Entity, jump)
	assert.Equal(t, SkierJumping, s.State())
	assert.T(t, s.IsJumping())
	assert.Equal(t, old+cfg.Skier.JumpSpeedBonus, s.Speed())
	_, vy := s.AxisSpeeds(s.Entity)
	assert.Equal(t, old+cfg.Skier.JumpSpeedBonus, vy)
	assert.Equal(t, 1, s.Layer())
	assert.Equal(t, "jumping", s.Draw())

	// airborne skier is off the jump's layer, no repeat take-off
	advance(1, s.Entity, jump)
	assert.Equal(t, 1, rec.count(systems.EventJump))
	assert.Equal(t, old+cfg.Skier.JumpSpeedBonus, s.Speed())
	assert.T(t, s.Position().Y > 0)

	jumpCycles := cfg.MillisToCycles(cfg.Skier.JumpMillis)
	advance(jumpCycles-2, s.Entity, jump)
	assert.Equal(t, SkierJumping, s.State())
	advance(1, s.Entity, jump)
	assert.Equal(t, SkierNormal, s.State())
	assert.Equal(t, 0, s.Layer())
	assert.Equal(t, cfg.Skier.StandardSpeed, s.Speed())
}

func TestLandingKeepsSteeredLine(t *testing.T) {
	cfg := config.Default()
	s := newTestSkier(cfg, nil)
	s.Steer(400, 100000)
	advance(100, s.Entity)
	x := s.Position().X
	assert.T(t, x > 0)

	s.HitJump(newObstacle("jump", 0, 0))
	jumpCycles := cfg.MillisToCycles(cfg.Skier.JumpMillis)
	advance(jumpCycles, s.Entity)
	assert.Equal(t, SkierNormal, s.State())

	// still carving toward the steered point after touching down
	assert.Equal(t, 400.0, s.Target().X)
	assert.Equal(t, 100000.0, s.Target().Y)
	advance(100, s.Entity)
	assert.T(t, s.IsMoving)
	assert.NotEqual(t, motion.East, s.Facing())
	assert.NotEqual(t, motion.West, s.Facing())
	assert.T(t, s.Position().X >= x)
}

func TestLandingKeepsHeading(t *testing.T) {
	cfg := config.Default()
	s := newTestSkier(cfg, nil)
	s.PointSouth()
	s.HitJump(newObstacle("jump", 0, 0))
	advance(cfg.MillisToCycles(cfg.Skier.JumpMillis)+50, s.Entity)
	assert.Equal(t, SkierNormal, s.State())
	assert.Equal(t, motion.South, s.Facing())
	assert.T(t, s.IsMoving)
	y := s.Position().Y
	advance(1, s.Entity)
	assert.T(t, s.Position().Y > y)
}

func TestStillPointerKeepsSkierMoving(t *testing.T) {
	cfg := config.Default()
	world := ecs.NewWorld()
	s := newTestSkier(cfg, nil)
	camera := systems.NewCameraSystem()
	camera.Follow(s.Entity)
	steering := systems.NewSteeringSystem(camera, s)
	steering.PointerAt(320, 400)
	steering.PointerAt(330, 420)

	for i := 0; i < 300; i++ {
		steering.Update(world)
		s.Advance()
		camera.Update(world)
	}
	assert.T(t, s.IsMoving)
	assert.Equal(t, motion.South, s.Facing())
	assert.T(t, s.Position().Y > 300*cfg.Skier.StandardSpeed/2)
}

func TestObstaclesOnOtherLayersAreJumpedOver(t *testing.T) {
	cfg := config.Default()
	s := newTestSkier(cfg, nil)
	tree := newObstacle("tree", 0, 0)
	crashOn(tree, s)
	s.HitJump(newObstacle("jump", 0, 0))

	advance(5, s.Entity, tree)
	assert.Equal(t, SkierJumping, s.State())
	assert.T(t, !s.HasAlreadyHit(tree.ID))
}

func TestTrickCyclesWhileJumping(t *testing.T) {
	cfg := config.Default()
	cfg.Skier.JumpMillis = 10000
	s := newTestSkier(cfg, nil)

	assert.T(t, !s.AttemptTrick(), "no trick on the ground")
	s.HitJump(newObstacle("jump", 0, 0))
	assert.T(t, s.AttemptTrick())
	assert.T(t, !s.AttemptTrick(), "trick already running")
	assert.Equal(t, "jumping", s.Draw())

	step := cfg.MillisToCycles(cfg.Skier.TrickStepMillis)
	want := []string{"somersault1", "somersault2", "jumping", "somersault1"}
	for _, key := range want {
		advance(step, s.Entity)
		assert.Equal(t, key, s.Draw())
	}

	s.HitObstacle(newObstacle("tree", 0, 0))
	assert.T(t, !s.IsPerformingTrick())
	assert.Equal(t, 0, s.TrickStep())
	assert.Equal(t, "hit", s.Draw())
}

func TestSpeedBoostCooldown(t *testing.T) {
	cfg := config.Default()
	em := ecs.NewEventManager()
	rec := newRecorder(em, systems.EventBoost)
	s := newTestSkier(cfg, em)
	base := s.Speed()

	assert.T(t, s.SpeedBoost())
	assert.Equal(t, base*cfg.Skier.BoostFactor, s.Speed())
	assert.T(t, !s.SpeedBoost(), "boost is single use until cooled down")

	boostCycles := cfg.MillisToCycles(cfg.Skier.BoostMillis)
	advance(boostCycles-1, s.Entity)
	assert.Equal(t, base*cfg.Skier.BoostFactor, s.Speed())
	advance(1, s.Entity)
	assert.Equal(t, base, s.Speed())
	assert.T(t, !s.CanSpeedBoost())

	cooldownCycles := cfg.MillisToCycles(cfg.Skier.BoostCooldownMillis)
	advance(cooldownCycles-1, s.Entity)
	assert.T(t, !s.CanSpeedBoost())
	advance(1, s.Entity)
	assert.T(t, s.CanSpeedBoost())
	assert.Equal(t, 2, rec.count(systems.EventBoost))
}

func TestSteeringEasesAxisSpeeds(t *testing.T) {
	cfg := config.Default()
	s := newTestSkier(cfg, nil)
	base := s.Speed()

	s.Steer(100000, 100000)
	assert.Equal(t, motion.EsEast, s.Facing())
	advance(1, s.Entity)
	vx, vy := s.AxisSpeeds(s.Entity)
	assert.T(t, vx > 0 && vx < base*0.5)
	assert.T(t, vy > 0 && vy < base*0.6)

	advance(2*cfg.Skier.TurnEaseCycles, s.Entity)
	vx, vy = s.AxisSpeeds(s.Entity)
	assert.Equal(t, base*0.5, vx)
	assert.Equal(t, base*0.6, vy)
	assert.T(t, s.Position().X > 0)
	assert.T(t, s.Distance() > 0)
}

func TestSteerSnapsNearTargetsStraightDown(t *testing.T) {
	cfg := config.Default()
	s := newTestSkier(cfg, nil)
	s.Steer(50, 300)
	assert.Equal(t, 0.0, s.Target().X)
	assert.Equal(t, motion.South, s.Facing())

	s.Steer(-200, 300)
	assert.Equal(t, motion.SWest, s.Facing())
	assert.Equal(t, "sWest", s.Draw())
}

func TestSteerIgnoredWhileCrashed(t *testing.T) {
	cfg := config.Default()
	s := newTestSkier(cfg, nil)
	s.HitObstacle(newObstacle("tree", 0, 0))
	s.Steer(1000, 1000)
	assert.T(t, !s.Target().IsSet())
	s.StartMovingIfPossible()
	assert.T(t, !s.IsMoving)
	s.TurnEast()
	assert.T(t, !s.IsMoving)
}

func TestDiscreteTurning(t *testing.T) {
	cfg := config.Default()
	s := newTestSkier(cfg, nil)

	s.TurnWest()
	assert.Equal(t, motion.SWest, s.Facing())
	assert.T(t, s.IsMoving)
	s.TurnWest()
	s.TurnWest()
	assert.Equal(t, motion.West, s.Facing())
	assert.T(t, !s.IsMoving)

	s.PointSouth()
	assert.T(t, s.IsMoving)
	s.TurnWest()
	s.Stop()
	assert.Equal(t, motion.West, s.Facing())
	assert.Equal(t, 270.0, s.Heading().Angle)

	s.TurnEast()
	s.TurnEast()
	s.TurnEast()
	s.TurnEast()
	s.Stop()
	assert.Equal(t, motion.East, s.Facing())

	x := s.Position().X
	s.StepWest()
	assert.Equal(t, x-s.Speed()*2, s.Position().X)
	s.StepEast()
	assert.Equal(t, x, s.Position().X)
}

func TestSidewaysFacingStopsSkier(t *testing.T) {
	cfg := config.Default()
	s := newTestSkier(cfg, nil)
	s.Steer(500, -10)
	assert.Equal(t, motion.East, s.Facing())
	advance(2*cfg.Skier.TurnEaseCycles, s.Entity)
	assert.T(t, !s.IsMoving)
}

func TestResetClearsRun(t *testing.T) {
	cfg := config.Default()
	s := newTestSkier(cfg, nil)
	tree := newObstacle("tree", 0, 0)
	s.SpeedBoost()
	s.HitObstacle(tree)
	s.Reset()
	assert.Equal(t, SkierNormal, s.State())
	assert.T(t, !s.HasAlreadyHit(tree.ID))
	assert.T(t, s.CanSpeedBoost())
	assert.Equal(t, 0, s.ReversionRemaining())
	assert.Equal(t, cfg.Skier.StandardSpeed, s.Speed())
}

func TestMarkDeletedCancelsSkierTimers(t *testing.T) {
	cfg := config.Default()
	s := newTestSkier(cfg, nil)
	s.SpeedBoost()
	s.HitObstacle(newObstacle("tree", 0, 0))
	s.MarkDeleted()
	assert.Equal(t, 0, s.ReversionRemaining())
	advance(1000, s.Entity)
	assert.Equal(t, SkierCrashed, s.State())
}
