package spawners

import (
	"math/rand"

	"github.com/pkg/errors"

	"ebiten-ski/behavior"
	"ebiten-ski/config"
	"ebiten-ski/data"
	"ebiten-ski/ecs"
	"ebiten-ski/entity"
	"ebiten-ski/gamelog"
)

// Viewport is what the spawner needs from the camera
type Viewport interface {
	entity.Viewport
	RandomMapPositionBelowViewport(rng *rand.Rand) (x, y float64)
}

// EntitySpawner manages the creation of game entities and wires their
// collision callbacks against the skier
type EntitySpawner struct {
	world           *ecs.World
	templateManager *data.EntityTemplateManager
	cfg             *config.SimConfig
	viewport        Viewport
	rng             *rand.Rand
	logMessage      func(string) // Function for logging messages

	skier *behavior.Skier
}

// NewEntitySpawner creates a new entity spawner
func NewEntitySpawner(world *ecs.World, templateManager *data.EntityTemplateManager, cfg *config.SimConfig, viewport Viewport, rng *rand.Rand, logFunc func(string)) *EntitySpawner {
	return &EntitySpawner{
		world:           world,
		templateManager: templateManager,
		cfg:             cfg,
		viewport:        viewport,
		rng:             rng,
		logMessage:      logFunc,
	}
}

// Skier returns the skier created by CreateSkier, nil before that
func (s *EntitySpawner) Skier() *behavior.Skier {
	return s.skier
}

func (s *EntitySpawner) template(id string) (*data.EntityTemplate, error) {
	template, exists := s.templateManager.GetTemplate(id)
	if !exists {
		return nil, errors.Errorf("no template found for entity type '%s'", id)
	}
	return template, nil
}

func (s *EntitySpawner) add(e *entity.Entity, template *data.EntityTemplate, x, y float64) {
	e.SetPosition(x, y)
	for _, tag := range template.Tags {
		e.AddTag(tag)
	}
	s.world.AddEntity(e)
}

func (s *EntitySpawner) log(format string, args ...interface{}) {
	gamelog.Debugf(format, args...)
}

// Create builds any entity from its template, dispatching on its behavior
func (s *EntitySpawner) Create(id string, x, y float64) (*entity.Entity, error) {
	template, err := s.template(id)
	if err != nil {
		return nil, err
	}

	switch template.Behavior {
	case data.BehaviorSkier:
		sk, err := s.CreateSkier(x, y)
		if err != nil {
			return nil, err
		}
		return sk.Entity, nil
	case data.BehaviorMonster:
		m, err := s.CreateMonster(id, x, y)
		if err != nil {
			return nil, err
		}
		return m.Entity, nil
	case data.BehaviorSnowboarder:
		b, err := s.CreateSnowboarder(id, x, y)
		if err != nil {
			return nil, err
		}
		return b.Entity, nil
	default:
		return s.CreateStatic(id, x, y)
	}
}

// CreateSkier creates the player at the given position. Entities created
// afterwards react to it.
func (s *EntitySpawner) CreateSkier(x, y float64) (*behavior.Skier, error) {
	template, err := s.template("skier")
	if err != nil {
		return nil, err
	}
	if s.skier != nil && !s.skier.Deleted() {
		return nil, errors.New("a skier already exists")
	}

	sk := behavior.NewSkier(template.Descriptor(), s.cfg, s.world.GetEventManager())
	s.add(sk.Entity, template, x, y)
	s.skier = sk

	s.log("skier %s created at %v,%v", sk.Entity, x, y)
	return sk, nil
}

// CreateStatic creates scenery. Jumps launch the skier, everything else
// crashes it.
func (s *EntitySpawner) CreateStatic(id string, x, y float64) (*entity.Entity, error) {
	template, err := s.template(id)
	if err != nil {
		return nil, err
	}

	e := behavior.NewStatic(template.Descriptor(), template.SpriteKey())
	s.add(e, template, x, y)

	if sk := s.skier; sk != nil {
		if template.HasTag("jump") {
			e.RegisterHitCallback(sk.Entity, func(self, _ *entity.Entity) {
				sk.HitJump(self)
			})
		} else {
			e.RegisterHitCallback(sk.Entity, func(self, _ *entity.Entity) {
				sk.HitObstacle(self)
			})
		}
	}
	return e, nil
}

// CreateMonster creates a pursuer that chases the skier and eats it on contact
func (s *EntitySpawner) CreateMonster(id string, x, y float64) (*behavior.Monster, error) {
	template, err := s.template(id)
	if err != nil {
		return nil, err
	}

	m := behavior.NewMonster(template.Descriptor(), s.cfg, s.viewport, s.rng, s.world.GetEventManager())
	s.add(m.Entity, template, x, y)

	if sk := s.skier; sk != nil {
		m.Chase(sk)
		m.RegisterHitCallback(sk.Entity, func(_, _ *entity.Entity) {
			sk.EatenBy(m)
		})
	}

	if s.logMessage != nil {
		s.logMessage("The " + template.Name + " is coming!")
	}
	s.log("monster %s created at %v,%v", m.Entity, x, y)
	return m, nil
}

// CreateSnowboarder creates a drifting entity that crashes the skier
func (s *EntitySpawner) CreateSnowboarder(id string, x, y float64) (*behavior.Snowboarder, error) {
	template, err := s.template(id)
	if err != nil {
		return nil, err
	}

	b := behavior.NewSnowboarder(template.Descriptor(), s.cfg, s.viewport, s.rng)
	s.add(b.Entity, template, x, y)

	if sk := s.skier; sk != nil {
		b.RegisterHitCallback(sk.Entity, func(self, _ *entity.Entity) {
			sk.HitObstacle(self)
		})
	}
	return b, nil
}
