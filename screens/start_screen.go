package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// StartScreen handles the game's start menu
type StartScreen struct {
	*BaseScreen
	selectedOption int
	options        []string
	background     color.Color
	selectedColor  color.Color
}

// NewStartScreen creates a new start screen
func NewStartScreen() *StartScreen {
	return &StartScreen{
		BaseScreen:     NewBaseScreen(),
		selectedOption: 0,
		options: []string{
			"New Run",
			"Quit",
		},
		background:    color.RGBA{250, 250, 250, 255}, // Snow
		selectedColor: color.RGBA{30, 90, 168, 255},   // Skier blue
	}
}

// Update handles input for the start screen
func (s *StartScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		s.selectedOption = (s.selectedOption + len(s.options) - 1) % len(s.options)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		s.selectedOption = (s.selectedOption + 1) % len(s.options)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ErrQuit
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		switch s.selectedOption {
		case 0:
			return ErrNewGame
		case 1:
			return ErrQuit
		}
	}
	return nil
}

// Draw draws the start screen
func (s *StartScreen) Draw(screen *ebiten.Image) {
	screen.Fill(s.background)
	bounds := screen.Bounds()
	centerX := bounds.Dx() / 2

	title := "SKI DOWNHILL"
	ebitenutil.DebugPrintAt(screen, title, centerX-len(title)*3, bounds.Dy()/3)

	for i, option := range s.options {
		y := bounds.Dy()/2 + i*20
		x := centerX - len(option)*3
		if i == s.selectedOption {
			vector.DrawFilledRect(screen, float32(x-16), float32(y+4), 8, 8, s.selectedColor, false)
		}
		ebitenutil.DebugPrintAt(screen, option, x, y)
	}

	hint := "Up/Down to choose, Enter to confirm"
	ebitenutil.DebugPrintAt(screen, hint, centerX-len(hint)*3, bounds.Dy()-40)
}
