package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ModalScreen represents a popup window that appears on top of other screens.
// Any of its close keys dismisses it.
type ModalScreen struct {
	*BaseScreen
	title      string
	content    string
	width      int
	height     int
	background color.Color
	textColor  color.Color
	closeKeys  []ebiten.Key
}

// NewModalScreen creates a new modal screen
func NewModalScreen(title, content string, width, height int, closeKeys ...ebiten.Key) *ModalScreen {
	if len(closeKeys) == 0 {
		closeKeys = []ebiten.Key{ebiten.KeyEscape}
	}
	return &ModalScreen{
		BaseScreen: NewBaseScreen(),
		title:      title,
		content:    content,
		width:      width,
		height:     height,
		background: color.RGBA{0, 0, 0, 200}, // Semi-transparent black
		textColor:  color.White,
		closeKeys:  closeKeys,
	}
}

// NewPauseScreen shows the controls while the slope is frozen
func NewPauseScreen() *ModalScreen {
	help := "Mouse: steer   Click: start moving\n" +
		"Left/Right: turn   Up: stop   Down: straight down\n" +
		"F: speed boost   T: trick while in the air\n" +
		"F1: inspector   P: resume"
	return NewModalScreen("PAUSED", help, 380, 110, ebiten.KeyP, ebiten.KeyEscape)
}

// Draw implements the Screen interface
func (s *ModalScreen) Draw(screen *ebiten.Image) {
	// Calculate center position
	bounds := screen.Bounds()
	x := (bounds.Dx() - s.width) / 2
	y := (bounds.Dy() - s.height) / 2

	// Draw semi-transparent background
	modal := ebiten.NewImage(s.width, s.height)
	modal.Fill(s.background)

	// Draw border
	vector.StrokeRect(modal, 1, 1, float32(s.width-2), float32(s.height-2), 2, s.textColor, false)

	// Draw title
	titleX := (s.width - len(s.title)*6) / 2 // Approximate text width
	ebitenutil.DebugPrintAt(modal, s.title, titleX, 10)

	// Draw content
	ebitenutil.DebugPrintAt(modal, s.content, 10, 30)

	// Draw the modal to the screen
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(modal, op)
}

// Update implements the Screen interface
func (s *ModalScreen) Update() error {
	for _, key := range s.closeKeys {
		if inpututil.IsKeyJustPressed(key) {
			return ErrCloseScreen
		}
	}
	return nil
}
