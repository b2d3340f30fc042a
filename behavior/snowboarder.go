package behavior

import (
	"math/rand"

	"ebiten-ski/config"
	"ebiten-ski/entity"
)

// Snowboarder drifts downhill, now and then picking a new line and speed
type Snowboarder struct {
	*entity.Entity

	cfg      config.SnowboarderConfig
	viewport entity.Viewport
	rng      *rand.Rand
}

// NewSnowboarder builds a drifting entity
func NewSnowboarder(d entity.Descriptor, cfg *config.SimConfig, viewport entity.Viewport, rng *rand.Rand) *Snowboarder {
	if d.Kind == "" {
		d.Kind = "snowboarder"
	}
	if d.Speed == 0 {
		d.Speed = cfg.Snowboarder.StandardSpeed
	}
	b := &Snowboarder{
		cfg:      cfg.Snowboarder,
		viewport: viewport,
		rng:      rng,
	}
	b.Entity = entity.New(d, b)
	return b
}

// Cycle occasionally retargets a random x with a jittered speed, and always
// heads for a point well below the visible area
func (b *Snowboarder) Cycle(e *entity.Entity) {
	if b.cfg.RetargetChance > 0 && b.rng.Intn(b.cfg.RetargetChance) == 0 {
		b.SetTargetX(b.viewport.RandomCentreMapX(b.rng), false)
		jitter := b.cfg.SpeedJitter
		b.SetSpeed(b.cfg.StandardSpeed + float64(b.rng.Intn(2*jitter+1)-jitter))
	}
	b.SetTargetY(b.viewport.MapBelowViewport()+b.cfg.BelowViewportOffset, false)
}

// Key names the sprite for the drift direction
func (b *Snowboarder) Key(e *entity.Entity) string {
	dx, _ := b.TargetDelta()
	if dx > 0 {
		return "sEast"
	}
	return "sWest"
}
