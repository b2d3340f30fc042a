// Package motion holds the pure movement rules: discrete facings, axis speed
// easing and position stepping.
package motion

// Facing is one of the seven discrete downhill facings
type Facing int

const (
	East Facing = iota
	EsEast
	SEast
	South
	SWest
	WsWest
	West
)

// Thresholds on the horizontal target delta. The wide band must be crossed
// to count as mostly sideways, the narrow one to leave south.
const (
	SidewaysThreshold = 300.0
	DiagonalThreshold = 75.0
)

var facingNames = [...]string{"east", "esEast", "sEast", "south", "sWest", "wsWest", "west"}

var facingAngles = [...]float64{90, 120, 165, 180, 195, 240, 270}

func (f Facing) String() string {
	if f < East || f > West {
		return "south"
	}
	return facingNames[f]
}

// Angle returns the canonical heading angle for the facing
func (f Facing) Angle() float64 {
	if f < East || f > West {
		return 180
	}
	return facingAngles[f]
}

// IsStopped reports whether the facing represents a full stop across the slope
func (f Facing) IsStopped() bool {
	return f == East || f == West
}

// ClassifyAngle maps an explicit heading angle to a facing
func ClassifyAngle(angle float64) Facing {
	switch {
	case angle <= 90:
		return East
	case angle < 150:
		return EsEast
	case angle < 180:
		return SEast
	case angle == 180:
		return South
	case angle <= 210:
		return SWest
	case angle < 270:
		return WsWest
	default:
		return West
	}
}

// ClassifyDelta maps a target-minus-position delta to a facing
func ClassifyDelta(dx, dy float64) Facing {
	if dy <= 0 {
		if dx > 0 {
			return East
		}
		return West
	}
	switch {
	case dx > SidewaysThreshold:
		return EsEast
	case dx > DiagonalThreshold:
		return SEast
	case dx < -SidewaysThreshold:
		return WsWest
	case dx < -DiagonalThreshold:
		return SWest
	default:
		return South
	}
}

// TurnEast returns the facing one step further east. Turning east from east
// falls back to south.
func TurnEast(f Facing) Facing {
	switch f {
	case West:
		return WsWest
	case WsWest:
		return SWest
	case SWest:
		return South
	case South:
		return SEast
	case SEast:
		return EsEast
	case EsEast:
		return East
	default:
		return South
	}
}

// TurnWest returns the facing one step further west. Turning west from west
// falls back to south.
func TurnWest(f Facing) Facing {
	switch f {
	case East:
		return EsEast
	case EsEast:
		return SEast
	case SEast:
		return South
	case South:
		return SWest
	case SWest:
		return WsWest
	case WsWest:
		return West
	default:
		return South
	}
}
