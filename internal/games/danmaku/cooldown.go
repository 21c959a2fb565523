package danmaku

import "time"

// Cooldown is a repeating timer gating a rate-limited action.
//
// Elapsed time accumulates across ticks and wraps by modulo on completion, so
// no progress is lost on long frames. Every completed duration yields exactly
// one ready tick: when a single tick completes several durations, the extra
// completions are queued and reported on the following ticks.
type Cooldown struct {
	Duration time.Duration

	elapsed  time.Duration
	pending  int
	finished int
}

// NewCooldown creates a timer that becomes ready every d.
func NewCooldown(d time.Duration) *Cooldown {
	invariant(d > 0, "cooldown duration must be positive, got %v", d)
	return &Cooldown{Duration: d}
}

// Tick advances the timer by dt and reports whether it is ready this tick.
func (c *Cooldown) Tick(dt time.Duration) bool {
	if dt > 0 {
		c.elapsed += dt
		c.finished = int(c.elapsed / c.Duration)
		c.elapsed %= c.Duration
		c.pending += c.finished
	} else {
		c.finished = 0
	}

	if c.pending == 0 {
		return false
	}
	c.pending--
	return true
}

// Finished returns how many durations completed during the last Tick.
func (c *Cooldown) Finished() int {
	return c.finished
}

// Elapsed returns progress towards the next completion.
func (c *Cooldown) Elapsed() time.Duration {
	return c.elapsed
}

// Reset clears progress and any queued completions.
func (c *Cooldown) Reset() {
	c.elapsed = 0
	c.pending = 0
	c.finished = 0
}
