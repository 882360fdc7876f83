package timer

import (
	"context"
	"time"

	"liftsim/src/logger"
)

var log = logger.Get()

type TimerAction int

const (
	Start TimerAction = iota
	Stop
)

func (a TimerAction) String() string {
	if a == Start {
		return "start"
	}
	return "stop"
}

// Clock drives the simulation. Each value received from Ticks is one tick.
type Clock interface {
	Ticks() <-chan time.Time
}

// Periodic ticks on a fixed period until stopped through its action channel.
// At most one tick is pending; a newer fire replaces an unread one.
// Once a Stop has been received no tick is delivered until the next Start.
type Periodic struct {
	period  time.Duration
	ticks   chan time.Time
	actions chan TimerAction
}

func NewPeriodic(period time.Duration) *Periodic {
	return &Periodic{
		period:  period,
		ticks:   make(chan time.Time),
		actions: make(chan TimerAction),
	}
}

func (p *Periodic) Ticks() <-chan time.Time {
	return p.ticks
}

func (p *Periodic) Actions() chan<- TimerAction {
	return p.actions
}

// Run owns the ticker until ctx is done.
func (p *Periodic) Run(ctx context.Context) {
	ticker := time.NewTicker(p.period)
	defer ticker.Stop()

	// out is nil while no tick is pending, which disables the send case.
	var out chan<- time.Time
	var pending time.Time

	for {
		select {
		case <-ctx.Done():
			return
		case a := <-p.actions:
			switch a {
			case Start:
				resetTicker(ticker, p.period)
			case Stop:
				stopTicker(ticker)
				out = nil
			}
			log.Debug().Stringer("action", a).Msg("Clock action")
		case t := <-ticker.C:
			if out != nil {
				log.Debug().Msg("Previous tick not consumed, replacing it")
			}
			pending, out = t, p.ticks
		case out <- pending:
			out = nil
		}
	}
}

// Stops the ticker and drains a pending fire.
func stopTicker(t *time.Ticker) {
	t.Stop()
	select {
	case <-t.C:
	default:
	}
}

func resetTicker(t *time.Ticker, period time.Duration) {
	stopTicker(t)
	t.Reset(period)
}

// Manual ticks only when Fire is called. Fire blocks until the tick is received.
type Manual struct {
	ticks chan time.Time
}

func NewManual() *Manual {
	return &Manual{ticks: make(chan time.Time)}
}

func (m *Manual) Ticks() <-chan time.Time {
	return m.ticks
}

func (m *Manual) Fire() {
	m.ticks <- time.Now()
}
