// Package render draws the slope with ebiten. It is kept apart from systems so
// the simulation packages build and test without a display.
package render

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-ski/config"
	"ebiten-ski/ecs"
	"ebiten-ski/entity"
	"ebiten-ski/systems"
)

var (
	snowColor    = color.RGBA{250, 250, 250, 255}
	defaultColor = color.RGBA{128, 128, 128, 255}
	statusColor  = color.RGBA{220, 230, 240, 255}
)

// System draws every entity as a filled box labelled with its draw key
type System struct {
	cameraSystem *systems.CameraSystem // Reference to the camera system
	feedback     *systems.FeedbackSystem
	colors       map[string]color.RGBA

	// Status returns the text of the status strip
	Status func() string
	// ShowKeys labels every entity with its draw key
	ShowKeys bool
	// Log is the message log shown at the bottom of the screen
	Log *systems.MessageLog
}

// NewSystem creates a new rendering system
func NewSystem(camera *systems.CameraSystem, feedback *systems.FeedbackSystem) *System {
	return &System{
		cameraSystem: camera,
		feedback:     feedback,
		colors:       make(map[string]color.RGBA),
		Log:          systems.GetMessageLog(),
	}
}

// SetColor sets the fill color for an entity kind
func (s *System) SetColor(kind string, c color.RGBA) {
	s.colors[kind] = c
}

// Update does nothing; drawing happens in Draw at the display rate
func (s *System) Update(world *ecs.World) {}

// Draw renders the slope, the entities and the overlays
func (s *System) Draw(world *ecs.World, screen *ebiten.Image) {
	screen.Fill(snowColor)

	s.drawEntities(world, screen)
	s.drawFlash(screen)
	s.drawStatus(screen)
	s.drawMessages(screen)
}

func (s *System) drawEntities(world *ecs.World, screen *ebiten.Image) {
	entities := make([]*entity.Entity, 0, world.Len())
	for _, actor := range world.GetAllEntities() {
		if e, ok := actor.(*entity.Entity); ok && !e.Deleted() {
			entities = append(entities, e)
		}
	}
	// Uphill first so nearer entities overlap farther ones
	sort.SliceStable(entities, func(i, j int) bool {
		return entities[i].Bounds().Bottom < entities[j].Bounds().Bottom
	})

	for _, e := range entities {
		bounds := e.Bounds()
		x, y := s.cameraSystem.MapToCanvas(bounds.Left, bounds.Top)
		w, h := bounds.Right-bounds.Left, bounds.Bottom-bounds.Top
		if x+w < 0 || y+h < 0 || x > s.cameraSystem.Width || y > s.cameraSystem.Height {
			continue
		}

		c, ok := s.colors[e.Kind()]
		if !ok {
			c = defaultColor
		}
		key := e.Draw()
		if key == "blank" {
			continue
		}
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), c, false)

		if s.ShowKeys || e == s.cameraSystem.Anchor() {
			ebitenutil.DebugPrintAt(screen, key, int(x), int(y+h)+2)
		}
	}
}

func (s *System) drawFlash(screen *ebiten.Image) {
	if s.feedback == nil {
		return
	}
	t, ok := s.feedback.Flash()
	if !ok {
		return
	}
	c := systems.ColoredMessage{Type: t}.GetColor()
	c.A = 48
	vector.DrawFilledRect(screen, 0, 0, float32(s.cameraSystem.Width), float32(s.cameraSystem.Height), c, false)
}

func (s *System) drawStatus(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(s.cameraSystem.Width), config.StatusHeight, statusColor, false)
	if s.Status != nil {
		ebitenutil.DebugPrintAt(screen, s.Status(), 4, 0)
	}
}

func (s *System) drawMessages(screen *ebiten.Image) {
	const lineHeight = 14
	messages := s.Log.RecentMessages(3)
	y := int(s.cameraSystem.Height) - lineHeight*len(messages) - 4
	for i := len(messages) - 1; i >= 0; i-- {
		msg := messages[i]
		vector.DrawFilledRect(screen, 4, float32(y+4), 6, 6, msg.GetColor(), false)
		ebitenutil.DebugPrintAt(screen, msg.Text, 14, y)
		y += lineHeight
	}
}
