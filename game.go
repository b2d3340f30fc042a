package main

import (
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-ski/config"
	"ebiten-ski/data"
	"ebiten-ski/gamelog"
	"ebiten-ski/screens"
)

// Game implements ebiten.Game interface.
type Game struct {
	cfg         *config.SimConfig
	templates   *data.EntityTemplateManager
	rng         *rand.Rand
	screenStack *screens.ScreenStack
	run         *screens.GameScreen
}

// NewGame creates a new game instance showing the start screen
func NewGame(cfg *config.SimConfig, templates *data.EntityTemplateManager, seed int64) *Game {
	g := &Game{
		cfg:         cfg,
		templates:   templates,
		rng:         rand.New(rand.NewSource(seed)),
		screenStack: screens.NewScreenStack(),
	}
	g.screenStack.Push(screens.NewStartScreen())
	return g
}

// Update updates the game state.
func (g *Game) Update() error {
	err := g.screenStack.Update()
	switch err {
	case nil:
		return nil
	case screens.ErrNewGame:
		return g.newRun()
	case screens.ErrGameOver:
		stats, metres := g.run.Stats()
		gamelog.Infof("run over after %dm: %+v", metres, stats)
		g.screenStack.Replace(screens.NewGameOverScreen(stats, metres))
	case screens.ErrCloseScreen:
		g.endRun()
		g.screenStack.Replace(screens.NewStartScreen())
	case screens.ErrQuit:
		g.endRun()
		return ebiten.Termination
	default:
		return err
	}
	return nil
}

// newRun restarts the finished run in place, or builds the first one
func (g *Game) newRun() error {
	if g.run != nil {
		g.run.Restart()
		g.screenStack.Replace(g.run)
		return nil
	}
	run, err := screens.NewGameScreen(g.cfg, g.templates, g.rng)
	if err != nil {
		return err
	}
	g.run = run
	g.screenStack.Replace(run)
	return nil
}

func (g *Game) endRun() {
	if g.run != nil {
		g.run.Close()
		g.run = nil
	}
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.screenStack.Draw(screen)
}

// Layout takes the outside size (e.g., the window size) and returns the (logical) screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenStack.Layout(outsideWidth, outsideHeight)
}
