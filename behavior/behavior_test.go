package behavior

import (
	"math/rand"

	"ebiten-ski/config"
	"ebiten-ski/ecs"
	"ebiten-ski/entity"
)

// fixedViewport is a viewport pinned to a known map window
type fixedViewport struct {
	left, top, width, height float64
}

func (v fixedViewport) MapToCanvas(x, y float64) (float64, float64) {
	return x - v.left, y - v.top
}

func (v fixedViewport) CanvasToMap(cx, cy float64) (float64, float64) {
	return cx + v.left, cy + v.top
}

func (v fixedViewport) MapBelowViewport() float64 {
	return v.top + v.height
}

func (v fixedViewport) RandomMapPositionAboveViewport(rng *rand.Rand) (float64, float64) {
	return v.left + rng.Float64()*v.width, v.top - 50
}

func (v fixedViewport) RandomCentreMapX(rng *rand.Rand) float64 {
	return v.left + v.width/4 + rng.Float64()*v.width/2
}

var testViewport = fixedViewport{left: -320, top: -240, width: 640, height: 480}

func newTestSkier(cfg *config.SimConfig, events *ecs.EventManager) *Skier {
	return NewSkier(entity.Descriptor{Width: 10, Height: 10}, cfg, events)
}

func newObstacle(kind string, x, y float64, layers ...int) *entity.Entity {
	e := entity.New(entity.Descriptor{Kind: kind, Width: 10, Height: 10, Layers: layers}, nil)
	e.SetPosition(x, y)
	return e
}

// crashOn wires an obstacle the way the spawner does
func crashOn(obstacle *entity.Entity, s *Skier) {
	obstacle.RegisterHitCallback(s.Entity, func(self, _ *entity.Entity) {
		s.HitObstacle(self)
	})
}

func jumpOn(jump *entity.Entity, s *Skier) {
	jump.RegisterHitCallback(s.Entity, func(self, _ *entity.Entity) {
		s.HitJump(self)
	})
}

// advance runs n cycles over the entities in order
func advance(n int, entities ...*entity.Entity) {
	for i := 0; i < n; i++ {
		for _, e := range entities {
			e.Advance()
		}
	}
}

// recorder collects emitted events by type
type recorder struct {
	events []ecs.Event
}

func newRecorder(em *ecs.EventManager, types ...ecs.EventType) *recorder {
	r := &recorder{}
	for _, t := range types {
		em.Subscribe(t, func(ev ecs.Event) {
			r.events = append(r.events, ev)
		})
	}
	return r
}

func (r *recorder) count(t ecs.EventType) int {
	n := 0
	for _, ev := range r.events {
		if ev.Type() == t {
			n++
		}
	}
	return n
}
