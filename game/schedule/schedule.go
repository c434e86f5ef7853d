// Package schedule provides the timers that drive game ticks.
package schedule

import "time"

// Ticker is a channel based scheduler for select loops. It must be used
// from the goroutine that reads C.
type Ticker struct {
	ticker   *time.Ticker
	interval time.Duration
}

func NewTicker() *Ticker {
	return &Ticker{}
}

// Start stops the current ticker, if any, and starts a new one.
func (t *Ticker) Start(interval time.Duration) {
	t.Stop()
	if interval <= 0 {
		return
	}
	t.ticker = time.NewTicker(interval)
	t.interval = interval
}

func (t *Ticker) Stop() {
	if t.ticker != nil {
		t.ticker.Stop()
		t.ticker = nil
	}
	t.interval = 0
}

// C returns the live tick channel, or nil when stopped so that a select
// case on it never fires.
func (t *Ticker) C() <-chan time.Time {
	if t.ticker == nil {
		return nil
	}
	return t.ticker.C
}

func (t *Ticker) Interval() time.Duration {
	return t.interval
}

// Poller is a fixed-delay scheduler for frame loops that check the clock
// once per frame.
type Poller struct {
	interval time.Duration
	last     time.Time
	active   bool
	now      func() time.Time
}

func NewPoller(now func() time.Time) *Poller {
	if now == nil {
		now = time.Now
	}
	return &Poller{now: now}
}

// Start re-arms the poller; the first tick is due one interval from now.
func (p *Poller) Start(interval time.Duration) {
	p.interval = interval
	p.last = p.now()
	p.active = interval > 0
}

func (p *Poller) Stop() {
	p.active = false
}

// Due reports whether an interval has elapsed since the last tick and, if
// so, restarts the delay from now.
func (p *Poller) Due(now time.Time) bool {
	if !p.active || now.Sub(p.last) < p.interval {
		return false
	}
	p.last = now
	return true
}

func (p *Poller) Interval() time.Duration {
	return p.interval
}
