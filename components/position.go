package components

// Position stores an entity's map position and depth layer
type Position struct {
	X, Y  float64
	Layer int
}

// Target is a point an entity seeks. Each axis is optional.
type Target struct {
	X, Y       float64
	HasX, HasY bool
}

// IsSet reports whether at least one axis is being sought
func (t Target) IsSet() bool {
	return t.HasX || t.HasY
}

// WithX returns a copy of the target seeking x on the horizontal axis
func (t Target) WithX(x float64) Target {
	t.X, t.HasX = x, true
	return t
}

// WithY returns a copy of the target seeking y on the vertical axis
func (t Target) WithY(y float64) Target {
	t.Y, t.HasY = y, true
	return t
}

// Heading is either an explicit angle in degrees or nothing.
// Target seeking takes over whenever HasAngle is false.
type Heading struct {
	Angle    float64
	HasAngle bool
}
