package data

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/bmizerany/assert"

	"ebiten-ski/components"
)

func TestLoadDefaultTemplates(t *testing.T) {
	m, err := LoadDefaultTemplates()
	assert.Equal(t, nil, err)

	for _, id := range []string{"skier", "monster", "snowboarder", "smallTree", "tallTree", "rock", "jump"} {
		_, ok := m.GetTemplate(id)
		assert.Tf(t, ok, "missing template %s", id)
	}

	skier, _ := m.GetTemplate("skier")
	assert.Equal(t, BehaviorSkier, skier.Behavior)
	d := skier.Descriptor()
	assert.Equal(t, "skier", d.Kind)
	assert.Equal(t, components.HitBox{Left: 8, Top: 20, Right: 16, Bottom: 34}, d.HitBoxes[0])
	assert.Equal(t, []int{0}, d.Layers)

	tall, _ := m.GetTemplate("tallTree")
	assert.Equal(t, []int{0, 1}, tall.Descriptor().Layers)
	assert.Equal(t, "tallTree", tall.SpriteKey())

	jump, _ := m.GetTemplate("jump")
	assert.Equal(t, 0, len(jump.Descriptor().HitBoxes))
	assert.T(t, jump.HasTag("jump"))
}

func TestWithTagIsSorted(t *testing.T) {
	m, err := LoadDefaultTemplates()
	assert.Equal(t, nil, err)
	obstacles := m.WithTag("obstacle")
	assert.Equal(t, 3, len(obstacles))
	assert.Equal(t, "rock", obstacles[0].ID)
	assert.Equal(t, "smallTree", obstacles[1].ID)
	assert.Equal(t, "tallTree", obstacles[2].ID)
}

func TestPickWeighted(t *testing.T) {
	m := NewEntityTemplateManager()
	assert.Equal(t, nil, m.LoadTemplate([]byte(`{"id":"a","tags":["x"],"spawnWeight":3}`), "a"))
	assert.Equal(t, nil, m.LoadTemplate([]byte(`{"id":"b","tags":["x"],"spawnWeight":1}`), "b"))
	assert.Equal(t, nil, m.LoadTemplate([]byte(`{"id":"c","tags":["x"]}`), "c"))

	rng := rand.New(rand.NewSource(42))
	counts := map[string]int{}
	for i := 0; i < 4000; i++ {
		tpl, ok := m.PickWeighted(rng, "x")
		assert.T(t, ok)
		counts[tpl.ID]++
	}
	assert.Equal(t, 0, counts["c"])
	assert.Tf(t, counts["a"] > 2*counts["b"], "weights not honoured: %v", counts)

	_, ok := m.PickWeighted(rng, "nothing")
	assert.T(t, !ok)
}

func TestLoadTemplateRejectsBadInput(t *testing.T) {
	m := NewEntityTemplateManager()
	assert.NotEqual(t, nil, m.LoadTemplate([]byte(`{`), "broken"))
	assert.NotEqual(t, nil, m.LoadTemplate([]byte(`{"name":"no id"}`), "noid"))
	assert.NotEqual(t, nil, m.LoadTemplate([]byte(`{"id":"x","behavior":"ufo"}`), "ufo"))
	assert.NotEqual(t, nil, m.LoadTemplate([]byte(`{"id":"x","hitBoxes":{"0":[10,0,0,10]}}`), "inverted"))
	assert.Equal(t, 0, len(m.Templates))

	assert.Equal(t, nil, m.LoadTemplate([]byte(`{"id":"sign"}`), "sign"))
	sign, _ := m.GetTemplate("sign")
	assert.Equal(t, BehaviorStatic, sign.Behavior)
}

func TestLoadTemplatesFromDirectory(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644)
		assert.Equal(t, nil, err)
	}
	write("flag.json", `{"id":"flag","width":4,"height":20,"tags":["obstacle"],"spawnWeight":1}`)
	write("notes.txt", `not a template`)

	m := NewEntityTemplateManager()
	assert.Equal(t, nil, m.LoadTemplatesFromDirectory(dir))
	assert.Equal(t, 1, len(m.Templates))

	write("bad.json", `{"id":""}`)
	assert.NotEqual(t, nil, m.LoadTemplatesFromDirectory(dir))
	assert.NotEqual(t, nil, m.LoadTemplatesFromDirectory(filepath.Join(dir, "missing")))
}

func TestParseHexColor(t *testing.T) {
	c := ParseHexColor("#1e5aa8")
	assert.Equal(t, uint8(0x1e), c.R)
	assert.Equal(t, uint8(0x5a), c.G)
	assert.Equal(t, uint8(0xa8), c.B)
	assert.Equal(t, uint8(0xff), c.A)
	assert.Equal(t, uint8(0xff), ParseHexColor("#zzzzzz").R)
}
