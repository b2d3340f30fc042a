package screens

import (
	"fmt"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ebiten-ski/behavior"
	"ebiten-ski/config"
	"ebiten-ski/data"
	"ebiten-ski/ecs"
	"ebiten-ski/entity"
	"ebiten-ski/gamelog"
	"ebiten-ski/spawners"
	"ebiten-ski/systems"
	"ebiten-ski/systems/render"
)

// Map pixels per metre of the distance readout
const pixelsPerMetre = 18

// GameScreen handles the main gameplay state
type GameScreen struct {
	*BaseScreen
	world          *ecs.World
	cfg            *config.SimConfig
	renderSystem   *render.System
	steeringSystem *systems.SteeringSystem
	cycleSystem    *systems.CycleSystem
	cameraSystem   *systems.CameraSystem
	cullSystem     *systems.CullSystem
	feedbackSystem *systems.FeedbackSystem
	spawnTable     *spawners.SpawnTable
	entitySpawner  *spawners.EntitySpawner
	skier          *behavior.Skier
	screenStack    *ScreenStack

	lives    int
	gameOver bool
}

// NewGameScreen builds a fresh slope with the skier at the origin
func NewGameScreen(cfg *config.SimConfig, templates *data.EntityTemplateManager, rng *rand.Rand) (*GameScreen, error) {
	world := ecs.NewWorld()
	messageLog := systems.GetMessageLog()
	messageLog.Clear()

	// Initialize all systems
	cycleSystem := systems.NewCycleSystem()
	cameraSystem := systems.NewCameraSystem()
	cullSystem := systems.NewCullSystem(cameraSystem, cfg.Spawn.CullMargin, "pursuer")
	feedbackSystem := systems.NewFeedbackSystem(world, messageLog)
	entitySpawner := spawners.NewEntitySpawner(world, templates, cfg, cameraSystem, rng, messageLog.Add)
	spawnTable := spawners.NewSpawnTable(entitySpawner)
	renderSystem := render.NewSystem(cameraSystem, feedbackSystem)
	for id, t := range templates.Templates {
		renderSystem.SetColor(id, data.ParseHexColor(t.Color))
	}

	skier, err := entitySpawner.CreateSkier(0, 0)
	if err != nil {
		return nil, err
	}
	cameraSystem.Follow(skier.Entity)
	steeringSystem := systems.NewSteeringSystem(cameraSystem, skier)

	// Order matters: steer, advance, then scroll, then fill and trim the slope
	world.AddSystem(steeringSystem)
	world.AddSystem(cycleSystem)
	world.AddSystem(cameraSystem)
	world.AddSystem(spawnTable)
	world.AddSystem(cullSystem)
	world.AddSystem(feedbackSystem)

	s := &GameScreen{
		BaseScreen:     NewBaseScreen(),
		world:          world,
		cfg:            cfg,
		renderSystem:   renderSystem,
		steeringSystem: steeringSystem,
		cycleSystem:    cycleSystem,
		cameraSystem:   cameraSystem,
		cullSystem:     cullSystem,
		feedbackSystem: feedbackSystem,
		spawnTable:     spawnTable,
		entitySpawner:  entitySpawner,
		skier:          skier,
		screenStack:    NewScreenStack(),
		lives:          cfg.Spawn.Lives,
	}
	renderSystem.Status = s.status

	// Losing a life is only final once the monster lets go
	em := world.GetEventManager()
	em.Subscribe(systems.EventEaten, func(ecs.Event) {
		s.lives--
	})
	em.Subscribe(systems.EventReleased, func(ecs.Event) {
		if s.lives <= 0 {
			s.gameOver = true
			return
		}
		s.spawnTable.Reset()
	})

	messageLog.Add("Move the mouse to steer, click to go. Watch out for trees!")
	gamelog.Infof("new run: %d lives", s.lives)
	return s, nil
}

// Stats returns the run statistics and the distance in metres
func (s *GameScreen) Stats() (systems.Stats, int) {
	return s.feedbackSystem.Stats(), s.metres()
}

// Restart clears the slope and puts a fresh skier back at the origin,
// keeping the systems and subscriptions of this screen
func (s *GameScreen) Restart() {
	for _, actor := range s.world.GetAllEntities() {
		if e, ok := actor.(*entity.Entity); ok && e != s.skier.Entity {
			e.MarkDeleted()
		}
	}
	s.world.Prune()

	s.skier.Reset()
	s.skier.ClearTarget()
	s.skier.SetPosition(0, 0)
	s.cameraSystem.Follow(s.skier.Entity)
	s.steeringSystem.Release()
	s.feedbackSystem.ResetStats()
	s.spawnTable.Reset()
	s.lives = s.cfg.Spawn.Lives
	s.gameOver = false
	s.screenStack = NewScreenStack()

	messageLog := systems.GetMessageLog()
	messageLog.Clear()
	messageLog.Add("Back to the top. Watch out for trees!")
	gamelog.Infof("run restarted: %d lives", s.lives)
}

// Close releases the event subscriptions
func (s *GameScreen) Close() {
	s.feedbackSystem.Close()
}

func (s *GameScreen) metres() int {
	return int(s.skier.Distance() / pixelsPerMetre)
}

func (s *GameScreen) status() string {
	boost := "ready"
	if !s.skier.CanSpeedBoost() {
		boost = "--"
	}
	return fmt.Sprintf("%5dm  speed %4.1f  lives %d  boost %s  %s",
		s.metres(), s.skier.Speed(), s.lives, boost, s.skier.State())
}

// Update handles game updates
func (s *GameScreen) Update() error {
	// Toggle the entity inspector with F1 key
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) && s.screenStack.Peek() == nil {
		s.screenStack.Push(NewDebugScreen(s.world))
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) && s.screenStack.Peek() == nil {
		s.screenStack.Push(NewPauseScreen())
		return nil
	}

	// Update the screen stack first to handle modal input
	if err := s.screenStack.Update(); err != nil {
		if err == ErrCloseScreen {
			s.screenStack.Pop()
		}
		return nil
	}

	// Only update the game world if no modal is open
	if s.screenStack.Peek() != nil {
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ErrCloseScreen
	}

	s.handleInput()
	s.world.Update()

	if s.gameOver {
		return ErrGameOver
	}
	return nil
}

// handleInput maps the mouse and keyboard onto the skier
func (s *GameScreen) handleInput() {
	sk := s.skier

	// The steering system re-targets every cycle; moving the mouse takes
	// control back from the keyboard
	cx, cy := ebiten.CursorPosition()
	s.steeringSystem.PointerAt(float64(cx), float64(cy))
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if sk.IsJumping() {
			sk.AttemptTrick()
		} else {
			sk.StartMovingIfPossible()
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA) {
		s.steeringSystem.Release()
		if sk.IsMoving {
			sk.TurnWest()
		} else {
			sk.StepWest()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeyD) {
		s.steeringSystem.Release()
		if sk.IsMoving {
			sk.TurnEast()
		} else {
			sk.StepEast()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		s.steeringSystem.Release()
		sk.Stop()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		s.steeringSystem.Release()
		sk.PointSouth()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		sk.SpeedBoost()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		sk.AttemptTrick()
	}
}

// Draw draws the game screen
func (s *GameScreen) Draw(screen *ebiten.Image) {
	// Draw the game world
	s.renderSystem.Draw(s.world, screen)

	// If there's a screen on the stack, draw it
	if s.screenStack.Peek() != nil {
		s.screenStack.Draw(screen)
	}
}
