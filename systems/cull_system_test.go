package systems

import (
	"testing"

	"github.com/bmizerany/assert"

	"ebiten-ski/ecs"
	"ebiten-ski/entity"
)

func TestCullSystemDropsScrolledOffEntities(t *testing.T) {
	world := ecs.NewWorld()
	camera := NewCameraSystem()
	skier := entity.New(entity.Descriptor{Kind: "skier", Width: 10, Height: 10}, nil)
	skier.SetPosition(0, 1000)
	camera.Follow(skier)

	far := entity.New(entity.Descriptor{Kind: "tree", Width: 10, Height: 10}, nil)
	far.SetPosition(0, camera.MapAboveViewport()-200)
	near := entity.New(entity.Descriptor{Kind: "tree", Width: 10, Height: 10}, nil)
	near.SetPosition(0, camera.MapAboveViewport()-20)
	monster := entity.New(entity.Descriptor{Kind: "monster", Width: 10, Height: 10}, nil)
	monster.SetPosition(0, camera.MapAboveViewport()-500)

	for _, e := range []*entity.Entity{skier, far, near, monster} {
		world.AddEntity(e)
	}
	world.AddSystem(NewCullSystem(camera, 100, "monster"))
	world.Update()

	assert.T(t, far.Deleted())
	assert.T(t, !near.Deleted())
	assert.T(t, !monster.Deleted())
	assert.T(t, !skier.Deleted())
	assert.Equal(t, 1, world.Prune())
}

type chaseBehavior struct{ pursuing bool }

func (b *chaseBehavior) Cycle(e *entity.Entity)      {}
func (b *chaseBehavior) Key(e *entity.Entity) string { return "sEast1" }
func (b *chaseBehavior) IsPursuing() bool            { return b.pursuing }

func TestCullSystemDropsPursuersThatGaveUp(t *testing.T) {
	world := ecs.NewWorld()
	camera := NewCameraSystem()
	skier := entity.New(entity.Descriptor{Kind: "skier", Width: 10, Height: 10}, nil)
	camera.Follow(skier)

	chasing := &chaseBehavior{pursuing: true}
	hungry := entity.New(entity.Descriptor{Kind: "monster", Width: 10, Height: 10}, chasing)
	hungry.SetPosition(0, camera.MapAboveViewport()-500)
	full := entity.New(entity.Descriptor{Kind: "monster", Width: 10, Height: 10}, &chaseBehavior{})
	full.SetPosition(0, camera.MapAboveViewport()-500)

	for _, e := range []*entity.Entity{skier, hungry, full} {
		world.AddEntity(e)
	}
	world.AddSystem(NewCullSystem(camera, 100, "monster"))
	world.Update()
	assert.T(t, !hungry.Deleted())
	assert.T(t, full.Deleted())

	chasing.pursuing = false
	world.Update()
	assert.T(t, hungry.Deleted())
}
