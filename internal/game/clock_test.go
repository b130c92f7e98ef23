package game

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func TestClock_TicksAndClamps(t *testing.T) {
	fc := clockwork.NewFakeClock()
	c := NewClock(fc, 60)
	c.Start()
	fc.BlockUntil(1)

	var last Tick
	ticks := 0
	for i := 0; i < 75; i++ {
		fc.Advance(time.Second)
		select {
		case last = <-c.C():
			ticks++
		case <-time.After(2 * time.Second):
			// No tick delivered; the clock must have expired.
		}
		if last.Expired {
			break
		}
	}

	if !last.Expired {
		t.Fatal("expected an expired tick within the limit")
	}
	if last.Elapsed != 60 {
		t.Errorf("expired tick elapsed = %d, want 60", last.Elapsed)
	}
	if ticks != 60 {
		t.Errorf("delivered %d ticks, want 60", ticks)
	}

	// 75 real seconds have not passed yet; push past the limit and
	// confirm the clamp.
	fc.Advance(20 * time.Second)
	if got := c.Elapsed(); got != 60 {
		t.Errorf("Elapsed() = %d after overrun, want 60 (clamped)", got)
	}

	// Expiry already fired; no further ticks may arrive.
	select {
	case tick := <-c.C():
		t.Errorf("unexpected tick after expiry: %+v", tick)
	default:
	}
}

func TestClock_UntimedNeverTicks(t *testing.T) {
	fc := clockwork.NewFakeClock()
	c := NewClock(fc, 0)
	c.Start()

	fc.Advance(10 * time.Second)
	select {
	case tick := <-c.C():
		t.Errorf("untimed clock delivered tick %+v", tick)
	default:
	}

	if got := c.Elapsed(); got != 10 {
		t.Errorf("Elapsed() = %d, want 10 (unclamped)", got)
	}
}

func TestClock_StopIsIdempotent(t *testing.T) {
	fc := clockwork.NewFakeClock()
	c := NewClock(fc, 30)
	c.Start()
	fc.BlockUntil(1)

	c.Stop()
	c.Stop()

	fc.Advance(5 * time.Second)
	select {
	case tick := <-c.C():
		t.Errorf("stopped clock delivered tick %+v", tick)
	default:
	}
}
