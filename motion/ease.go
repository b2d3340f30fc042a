package motion

import "math"

// DefaultTurnEaseCycles is how many cycles it takes to fully adopt a new
// target speed
const DefaultTurnEaseCycles = 70

// SpeedEase holds the persisted eased speed of one axis
type SpeedEase struct {
	Current float64
	Factor  float64
}

// Ease moves the current speed toward target by base*factor/cycles and
// returns the new value. A factor of 0 or 1 snaps straight to the target.
// The step is clamped to the remaining distance so the target is reached
// exactly instead of oscillating around it.
func (s *SpeedEase) Ease(base, target, factor float64, cycles int) float64 {
	s.Factor = factor
	if factor == 0 || factor == 1 || cycles <= 0 {
		s.Current = target
		return s.Current
	}
	step := base * (factor / float64(cycles))
	if step < 0 {
		step = -step
	}
	diff := target - s.Current
	if math.Abs(diff) <= step {
		s.Current = target
	} else if diff > 0 {
		s.Current += step
	} else {
		s.Current -= step
	}
	return s.Current
}

// Set overwrites the eased value, used when a state machine forces a speed
func (s *SpeedEase) Set(v float64) {
	s.Current = v
}
