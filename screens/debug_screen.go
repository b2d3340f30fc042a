package screens

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-ski/ecs"
	"ebiten-ski/entity"
)

// DebugScreen lists every live entity with its position, layer and draw key
type DebugScreen struct {
	*BaseScreen
	world        *ecs.World
	scrollOffset int
	width        int
	height       int
	background   color.Color
	textColor    color.Color
}

// NewDebugScreen creates a new debug screen over a world
func NewDebugScreen(world *ecs.World) *DebugScreen {
	return &DebugScreen{
		BaseScreen:   NewBaseScreen(),
		world:        world,
		scrollOffset: 0,
		width:        560,
		height:       400,
		background:   color.RGBA{0, 0, 0, 220},
		textColor:    color.White,
	}
}

// Update handles input for the debug screen
func (s *DebugScreen) Update() error {
	// Handle scrolling through the entity list with arrow keys
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		s.scrollUp()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		s.scrollDown()
	}

	// ESC or F1 to close debug window
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		return ErrCloseScreen
	}

	return nil
}

// scrollUp moves the view up by one line
func (s *DebugScreen) scrollUp() {
	if s.scrollOffset > 0 {
		s.scrollOffset--
	}
}

// scrollDown moves the view down by one line
func (s *DebugScreen) scrollDown() {
	if s.scrollOffset < s.world.Len()-1 {
		s.scrollOffset++
	}
}

func (s *DebugScreen) lines() []string {
	lines := make([]string, 0, s.world.Len())
	for _, actor := range s.world.GetAllEntities() {
		e, ok := actor.(*entity.Entity)
		if !ok {
			continue
		}
		pos := e.Position()
		lines = append(lines, fmt.Sprintf("%-18s %7.1f %7.1f  L%d  %-5t %s",
			e.String(), pos.X, pos.Y, pos.Layer, e.IsMoving, e.Draw()))
	}
	return lines
}

// Draw renders the debug screen
func (s *DebugScreen) Draw(screen *ebiten.Image) {
	// Calculate center position
	bounds := screen.Bounds()
	x := (bounds.Dx() - s.width) / 2
	y := (bounds.Dy() - s.height) / 2

	modal := ebiten.NewImage(s.width, s.height)
	modal.Fill(s.background)

	// Draw frame
	vector.StrokeRect(modal, 1, 1, float32(s.width-2), float32(s.height-2), 2, s.textColor, false)

	title := fmt.Sprintf("ENTITIES (%d) cycle %d", s.world.Len(), s.world.Cycle())
	titleX := (s.width - len(title)*6) / 2 // Approximate text width
	ebitenutil.DebugPrintAt(modal, title, titleX, 6)
	ebitenutil.DebugPrintAt(modal, "entity                   x       y  layer moving key", 10, 24)

	lines := s.lines()
	startY := 40
	lineHeight := 16
	maxLines := (s.height - startY - 20) / lineHeight

	// Calculate visible range
	startIdx := s.scrollOffset
	if startIdx > len(lines)-maxLines {
		startIdx = len(lines) - maxLines
		if startIdx < 0 {
			startIdx = 0
		}
	}

	for i := 0; i < maxLines && startIdx+i < len(lines); i++ {
		ebitenutil.DebugPrintAt(modal, lines[startIdx+i], 10, startY+i*lineHeight)
	}

	// Draw scroll indicator if needed
	if len(lines) > maxLines {
		barHeight := float32(maxLines) / float32(len(lines)) * float32(s.height-startY)
		barY := float32(startY) + float32(startIdx)/float32(len(lines))*float32(s.height-startY)
		vector.DrawFilledRect(modal, float32(s.width-10), barY, 5, barHeight, s.textColor, false)
	}

	ebitenutil.DebugPrintAt(modal, "Up/Down: Scroll  ESC: Close", 10, s.height-18)

	// Draw the modal to the screen
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(modal, op)
}
