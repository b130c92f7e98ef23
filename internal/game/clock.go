package game

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Tick is one second of session time. Expired is set on the final tick
// of a timed session, exactly once; no further ticks follow it.
type Tick struct {
	Elapsed int
	Expired bool
}

// Clock tracks elapsed wall-clock time against an optional limit and
// delivers one-second ticks on a channel. The owner consumes ticks
// serially, so all session mutation stays on one goroutine. Untimed
// sessions (limit 0) never tick.
//
// Stop is safe to call from any exit path, any number of times.
type Clock struct {
	clk   clockwork.Clock
	limit int

	start    time.Time
	ticks    chan Tick
	stop     chan struct{}
	stopOnce sync.Once
}

// NewClock creates a Clock with the given limit in seconds (0 =
// untimed). Pass clockwork.NewRealClock() outside of tests.
func NewClock(clk clockwork.Clock, limitSecs int) *Clock {
	return &Clock{
		clk:   clk,
		limit: limitSecs,
		ticks: make(chan Tick),
		stop:  make(chan struct{}),
	}
}

// Start records the start time and, for timed sessions, begins ticking.
func (c *Clock) Start() {
	c.start = c.clk.Now()
	if c.limit > 0 {
		go c.run()
	}
}

// C is the tick channel. It is never closed; consumers should select
// against their own teardown signal.
func (c *Clock) C() <-chan Tick {
	return c.ticks
}

// Done is closed when the clock has been stopped. Consumers blocked on
// C should select against it.
func (c *Clock) Done() <-chan struct{} {
	return c.stop
}

// Elapsed returns whole seconds since Start, clamped to the limit for
// timed sessions so the reported time never exceeds it.
func (c *Clock) Elapsed() int {
	elapsed := int(c.clk.Since(c.start) / time.Second)
	if c.limit > 0 && elapsed > c.limit {
		return c.limit
	}
	return elapsed
}

// Stop cancels ticking. Idempotent; must be called on every exit path
// so no timer outlives the session.
func (c *Clock) Stop() {
	c.stopOnce.Do(func() { close(c.stop) })
}

func (c *Clock) run() {
	ticker := c.clk.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.Chan():
		}

		elapsed := c.Elapsed()
		t := Tick{Elapsed: elapsed, Expired: elapsed >= c.limit}

		select {
		case c.ticks <- t:
		case <-c.stop:
			return
		}

		if t.Expired {
			// Expiry is signalled once; stop ticking for good.
			c.Stop()
			return
		}
	}
}
