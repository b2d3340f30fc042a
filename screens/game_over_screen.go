package screens

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ebiten-ski/systems"
)

// GameOverScreen displays the game over message and the run statistics
type GameOverScreen struct {
	*BaseScreen
	stats  systems.Stats
	metres int
}

// NewGameOverScreen creates a new game over screen
func NewGameOverScreen(stats systems.Stats, metres int) *GameOverScreen {
	return &GameOverScreen{
		BaseScreen: NewBaseScreen(),
		stats:      stats,
		metres:     metres,
	}
}

// Update handles input for the game over screen
func (s *GameOverScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return ErrNewGame
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ErrCloseScreen
	}
	return nil
}

// Draw draws the game over screen
func (s *GameOverScreen) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	text := fmt.Sprintf("Game Over!\n\nDistance: %dm\nCrashes: %d  Jumps: %d  Tricks: %d\n\n"+
		"Press Enter to ski again\nPress Escape to return to the start screen",
		s.metres, s.stats.Crashes, s.stats.Jumps, s.stats.Tricks)
	ebitenutil.DebugPrintAt(screen, text, bounds.Dx()/2-120, bounds.Dy()/2-50)
}
