package motion

import "math"

// RoundHalf rounds to the nearest half unit
func RoundHalf(v float64) float64 {
	return math.Round(v*2) / 2
}

// HeadingVelocity returns the per-cycle displacement for an explicit heading.
// Angle 180 points straight down the slope.
func HeadingVelocity(angle, speed float64) (dx, dy float64) {
	d := angle - 90
	if d < 0 {
		d += 360
	}
	rad := d * (math.Pi / 180)
	return RoundHalf(speed * math.Cos(rad)), RoundHalf(speed * math.Sin(rad))
}

// StepToward moves current toward target by at most speed, never overshooting
func StepToward(current, target, speed float64) float64 {
	if speed <= 0 {
		return current
	}
	if math.Abs(current-target) <= speed {
		return target
	}
	if current > target {
		return current - speed
	}
	return current + speed
}

// NormalizeAngle folds an angle into [0, 360)
func NormalizeAngle(angle float64) float64 {
	a := math.Mod(angle, 360)
	if a < 0 {
		a += 360
	}
	return a
}
