package components

// Countdown is a cancellable one-shot timer measured in simulated
// milliseconds. Arming an armed countdown replaces the pending deadline.
type Countdown struct {
	remaining int
	armed     bool
}

// Arm schedules the countdown to fire after d milliseconds of simulated time
func (c *Countdown) Arm(d int) {
	c.remaining = d
	c.armed = true
}

// Cancel drops any pending deadline
func (c *Countdown) Cancel() {
	c.remaining = 0
	c.armed = false
}

// Armed reports whether a deadline is pending
func (c *Countdown) Armed() bool {
	return c.armed
}

// Remaining returns the simulated milliseconds left, zero when disarmed
func (c *Countdown) Remaining() int {
	if !c.armed {
		return 0
	}
	return c.remaining
}

// Tick advances the countdown by dt milliseconds and reports whether it fired.
// A fired countdown disarms itself.
func (c *Countdown) Tick(dt int) bool {
	if !c.armed {
		return false
	}
	c.remaining -= dt
	if c.remaining > 0 {
		return false
	}
	c.armed = false
	c.remaining = 0
	return true
}
