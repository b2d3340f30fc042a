package motion

import (
	"math"
	"testing"

	"github.com/bmizerany/assert"
)

func TestEaseConvergesMonotonically(t *testing.T) {
	var s SpeedEase
	base, target, factor := 5.0, 5*0.85, 0.85
	step := base * factor / DefaultTurnEaseCycles

	prev := s.Current
	reached := -1
	for i := 0; i < 200; i++ {
		v := s.Ease(base, target, factor, DefaultTurnEaseCycles)
		assert.Tf(t, v >= prev, "not monotonic at %d: %v < %v", i, v, prev)
		assert.Tf(t, v <= target, "overshoot at %d: %v", i, v)
		prev = v
		if v == target && reached < 0 {
			reached = i
		}
	}
	assert.T(t, reached >= 0, "never reached target")
	// about target/step cycles, the last one snapping
	want := int(math.Round(target / step))
	assert.Tf(t, reached >= want-2 && reached <= want, "reached after %d cycles, want ~%d", reached+1, want)
}

func TestEaseDownward(t *testing.T) {
	s := SpeedEase{Current: 3}
	for i := 0; i < 1000; i++ {
		v := s.Ease(5, 0, 0.33, 70)
		assert.T(t, v >= 0)
	}
	assert.Equal(t, 0.0, s.Current)
}

func TestEaseSnapFactors(t *testing.T) {
	s := SpeedEase{Current: 2}
	assert.Equal(t, 7.0, s.Ease(5, 7, 1, 70))
	assert.Equal(t, 0.0, s.Ease(5, 0, 0, 70))
	assert.Equal(t, 0.0, s.Factor)
}

func TestEaseReachesExactlyWhenWithinOneStep(t *testing.T) {
	s := SpeedEase{Current: 4.99}
	assert.Equal(t, 5.0, s.Ease(5, 5, 0.5, 70))
}
