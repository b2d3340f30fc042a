package data

import (
	"embed"
	"encoding/json"
	"fmt"
	"image/color"
	"io/fs"
	"math/rand"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"

	"ebiten-ski/components"
	"ebiten-ski/entity"
)

//go:embed templates/*.json
var defaultTemplates embed.FS

// Behavior kinds a template can ask for
const (
	BehaviorSkier       = "skier"
	BehaviorMonster     = "monster"
	BehaviorSnowboarder = "snowboarder"
	BehaviorStatic      = "static"
)

// EntityTemplate represents a template for creating entities (skier, monsters, scenery)
type EntityTemplate struct {
	// Basic info
	ID          string `json:"id"`          // Unique identifier, also the entity kind
	Name        string `json:"name"`        // Display name
	Description string `json:"description"` // Description text

	// Visual appearance
	Sprite string `json:"sprite"` // Draw key for static entities, defaults to the id
	Color  string `json:"color"`  // Color in hex format (e.g. "#00FF00")

	// Geometry
	Width    float64            `json:"width"`
	Height   float64            `json:"height"`
	HitBoxes map[int][4]float64 `json:"hitBoxes"` // Per layer: left, top, right, bottom from the top-left corner
	Layers   []int              `json:"layers"`   // Occupied layers, the first is the starting layer
	Speed    float64            `json:"speed"`    // Zero takes the configured standard speed

	// Behavior
	Behavior    string   `json:"behavior"`    // One of the Behavior* kinds
	Tags        []string `json:"tags"`        // Tags for categorization (e.g. "obstacle", "jump")
	SpawnWeight int      `json:"spawnWeight"` // Relative chance of spawning (higher = more common)
}

// Validate ensures that the template has all required fields
func (t *EntityTemplate) Validate() error {
	if t.ID == "" {
		return errors.New("template id cannot be empty")
	}
	if t.Width < 0 || t.Height < 0 {
		return errors.Errorf("template %s has a negative size", t.ID)
	}
	switch t.Behavior {
	case "", BehaviorSkier, BehaviorMonster, BehaviorSnowboarder, BehaviorStatic:
	default:
		return errors.Errorf("template %s has unknown behavior %q", t.ID, t.Behavior)
	}
	for layer, hb := range t.HitBoxes {
		if hb[2] < hb[0] || hb[3] < hb[1] {
			return errors.Errorf("template %s has an inverted hit box on layer %d", t.ID, layer)
		}
	}
	return nil
}

// HasTag reports whether the template carries a tag
func (t *EntityTemplate) HasTag(tag string) bool {
	for _, tt := range t.Tags {
		if tt == tag {
			return true
		}
	}
	return false
}

// SpriteKey returns the draw key of a static entity
func (t *EntityTemplate) SpriteKey() string {
	if t.Sprite != "" {
		return t.Sprite
	}
	return t.ID
}

// Descriptor converts the template into an entity descriptor
func (t *EntityTemplate) Descriptor() entity.Descriptor {
	hitBoxes := make(map[int]components.HitBox, len(t.HitBoxes))
	for layer, hb := range t.HitBoxes {
		hitBoxes[layer] = components.HitBox{Left: hb[0], Top: hb[1], Right: hb[2], Bottom: hb[3]}
	}
	layers := make([]int, len(t.Layers))
	copy(layers, t.Layers)
	return entity.Descriptor{
		Kind:     t.ID,
		Width:    t.Width,
		Height:   t.Height,
		HitBoxes: hitBoxes,
		Layers:   layers,
		Speed:    t.Speed,
	}
}

// EntityTemplateManager manages all entity templates
type EntityTemplateManager struct {
	Templates map[string]*EntityTemplate
}

// NewEntityTemplateManager creates a new template manager
func NewEntityTemplateManager() *EntityTemplateManager {
	return &EntityTemplateManager{
		Templates: make(map[string]*EntityTemplate),
	}
}

// LoadDefaultTemplates returns a manager holding the built-in templates
func LoadDefaultTemplates() (*EntityTemplateManager, error) {
	m := NewEntityTemplateManager()
	if err := m.LoadTemplatesFromFS(defaultTemplates, "templates"); err != nil {
		return nil, err
	}
	return m, nil
}

// LoadTemplatesFromDirectory loads all JSON template files from a directory
func (m *EntityTemplateManager) LoadTemplatesFromDirectory(dirPath string) error {
	files, err := os.ReadDir(dirPath)
	if err != nil {
		return errors.Wrap(err, "failed to read template directory")
	}

	for _, file := range files {
		if file.IsDir() || filepath.Ext(file.Name()) != ".json" {
			continue
		}

		fullPath := filepath.Join(dirPath, file.Name())
		if err := m.LoadTemplateFromFile(fullPath); err != nil {
			return errors.Wrapf(err, "failed to load template from %s", file.Name())
		}
	}

	return nil
}

// LoadTemplatesFromFS loads all JSON template files from a directory of fsys
func (m *EntityTemplateManager) LoadTemplatesFromFS(fsys fs.FS, dir string) error {
	files, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return errors.Wrap(err, "failed to read template directory")
	}

	for _, file := range files {
		if file.IsDir() || path.Ext(file.Name()) != ".json" {
			continue
		}

		data, err := fs.ReadFile(fsys, path.Join(dir, file.Name()))
		if err != nil {
			return errors.Wrapf(err, "failed to read %s", file.Name())
		}
		if err := m.LoadTemplate(data, file.Name()); err != nil {
			return err
		}
	}

	return nil
}

// LoadTemplateFromFile loads a single entity template from a JSON file
func (m *EntityTemplateManager) LoadTemplateFromFile(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return errors.WithStack(err)
	}
	return m.LoadTemplate(data, filePath)
}

// LoadTemplate parses and stores one template. source names it in errors.
func (m *EntityTemplateManager) LoadTemplate(data []byte, source string) error {
	var template EntityTemplate
	if err := json.Unmarshal(data, &template); err != nil {
		return errors.Wrapf(err, "invalid template json in %s", source)
	}

	if err := template.Validate(); err != nil {
		return errors.Wrapf(err, "invalid template in %s", source)
	}
	if template.Behavior == "" {
		template.Behavior = BehaviorStatic
	}

	// Add to templates map
	m.Templates[template.ID] = &template
	return nil
}

// GetTemplate returns a template by ID
func (m *EntityTemplateManager) GetTemplate(id string) (*EntityTemplate, bool) {
	template, ok := m.Templates[id]
	return template, ok
}

// WithTag returns the templates carrying a tag, sorted by id
func (m *EntityTemplateManager) WithTag(tag string) []*EntityTemplate {
	var result []*EntityTemplate
	for _, t := range m.Templates {
		if t.HasTag(tag) {
			result = append(result, t)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// PickWeighted picks a template carrying tag with probability proportional to
// its spawn weight. It returns false when no template can be picked.
func (m *EntityTemplateManager) PickWeighted(rng *rand.Rand, tag string) (*EntityTemplate, bool) {
	candidates := m.WithTag(tag)
	total := 0
	for _, t := range candidates {
		if t.SpawnWeight > 0 {
			total += t.SpawnWeight
		}
	}
	if total == 0 {
		return nil, false
	}

	roll := rng.Intn(total)
	for _, t := range candidates {
		if t.SpawnWeight <= 0 {
			continue
		}
		if roll < t.SpawnWeight {
			return t, true
		}
		roll -= t.SpawnWeight
	}
	return nil, false
}

// ParseHexColor converts a hex string to a color.RGBA
func ParseHexColor(hex string) (c color.RGBA) {
	c.A = 0xff

	if len(hex) < 7 {
		return
	}

	format := "#%02x%02x%02x"
	_, err := fmt.Sscanf(hex, format, &c.R, &c.G, &c.B)
	if err != nil {
		return color.RGBA{255, 255, 255, 255} // Default white on error
	}

	return
}
