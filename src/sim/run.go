package sim

import (
	"context"
	"fmt"

	"liftsim/src/timer"
	"liftsim/src/types"
)

type ControlKind int

const (
	// ControlReset rebuilds the fleet with the current counts.
	ControlReset ControlKind = iota
	// ControlReinit rebuilds the fleet with the counts carried in the event.
	ControlReinit
)

func (k ControlKind) String() string {
	switch k {
	case ControlReset:
		return "reset"
	case ControlReinit:
		return "reinit"
	}
	return fmt.Sprintf("ControlKind(%d)", int(k))
}

type ControlEvent struct {
	Kind      ControlKind
	NumFloors int
	NumLifts  int
}

// Inputs are the event sources of the run loop. A nil channel is never selected.
type Inputs struct {
	Calls    <-chan types.Call
	Presses  <-chan types.Call
	Controls <-chan ControlEvent
}

// Observer receives a snapshot after every call, control event and tick.
type Observer func(types.Snapshot)

// Run is the single owner of the simulation until ctx is done. Calls are
// dispatched as they arrive and never wait for the next tick. Rejected calls
// and control events are logged and the loop carries on.
func (s *Simulation) Run(ctx context.Context, clock timer.Clock, in Inputs, observe Observer) error {
	publish := func() {
		if observe != nil {
			observe(s.Snapshot())
		}
	}

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("Simulation stopped")
			return ctx.Err()

		case call := <-in.Calls:
			if _, err := s.Call(call); err != nil {
				log.Warn().Err(err).Str("call", call.String()).Msg("Call rejected")
				continue
			}
			publish()

		case press := <-in.Presses:
			if _, err := s.PressButton(press.Floor, press.Dir); err != nil {
				log.Warn().Err(err).Str("press", press.String()).Msg("Button press rejected")
				continue
			}
			publish()

		case ctrl := <-in.Controls:
			if err := s.control(ctrl); err != nil {
				log.Warn().Err(err).Stringer("control", ctrl.Kind).Msg("Control event rejected")
				continue
			}
			publish()

		case <-clock.Ticks():
			if _, err := s.Tick(); err != nil {
				log.Warn().Err(err).Msg("Tick skipped")
				continue
			}
			publish()
		}
	}
}

func (s *Simulation) control(ctrl ControlEvent) error {
	switch ctrl.Kind {
	case ControlReset:
		return s.Reset()
	case ControlReinit:
		return s.Init(ctrl.NumFloors, ctrl.NumLifts)
	}
	return fmt.Errorf("unknown control event %s", ctrl.Kind)
}
