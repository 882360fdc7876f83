// Package sim owns the simulation state and applies calls and ticks to it.
// A Simulation is not safe for concurrent use; Run is its only owner in the
// program.
package sim

import (
	"fmt"

	"liftsim/src/dispatcher"
	"liftsim/src/fleet"
	"liftsim/src/logger"
	"liftsim/src/types"
)

var log = logger.Get()

type Simulation struct {
	state      *State
	dispatcher *dispatcher.Dispatcher
}

func New(mode types.DistanceMode) *Simulation {
	return &Simulation{dispatcher: dispatcher.New(mode)}
}

// Init builds a fresh fleet and swaps it in. On error the previous state stays.
func (s *Simulation) Init(numFloors, numLifts int) error {
	state, err := NewState(numFloors, numLifts)
	if err != nil {
		return err
	}
	s.state = state
	log.Info().
		Str("session", state.SessionID.String()).
		Int("floors", numFloors).
		Int("lifts", numLifts).
		Stringer("distance", s.dispatcher.Mode()).
		Msg("Simulation initialized")
	return nil
}

// Reset re-initializes with the current floor and lift counts.
func (s *Simulation) Reset() error {
	if s.state == nil {
		return ErrNotInitialized
	}
	return s.Init(s.state.Floors.Len(), s.state.Fleet.Len())
}

func (s *Simulation) Initialized() bool {
	return s.state != nil
}

// Call validates a call and hands it to the dispatcher.
func (s *Simulation) Call(call types.Call) (dispatcher.Assignment, error) {
	if s.state == nil {
		return dispatcher.Assignment{}, ErrNotInitialized
	}
	if !s.state.Floors.Contains(call.Floor) {
		return dispatcher.Assignment{}, fmt.Errorf("%w: %d not in [0, %d)", ErrFloorOutOfRange, call.Floor, s.state.Floors.Len())
	}
	if !call.Dir.Valid() {
		return dispatcher.Assignment{}, fmt.Errorf("%w: %s", ErrInvalidDirection, call.Dir)
	}
	return s.dispatcher.Assign(s.state.Fleet, s.state.Reservations, call), nil
}

// PressButton is a hall button press. Terminal floors have a single button,
// which is dispatched without a direction.
func (s *Simulation) PressButton(floor int, dir types.Direction) (dispatcher.Assignment, error) {
	if s.state == nil {
		return dispatcher.Assignment{}, ErrNotInitialized
	}
	f, ok := s.state.Floors.Floor(floor)
	if !ok {
		return dispatcher.Assignment{}, fmt.Errorf("%w: %d not in [0, %d)", ErrFloorOutOfRange, floor, s.state.Floors.Len())
	}

	switch {
	case dir == types.DirUp && f.Buttons.Up, dir == types.DirDown && f.Buttons.Down:
	case dir == types.DirNone && f.Buttons.Single():
	default:
		return dispatcher.Assignment{}, fmt.Errorf("%w: %s on %s", ErrNoSuchButton, dir, f.Label)
	}
	if f.Buttons.Single() {
		dir = types.DirNone
	}
	return s.Call(types.Call{Floor: floor, Dir: dir})
}

// Tick advances every lift by one step.
func (s *Simulation) Tick() ([]fleet.StepResult, error) {
	if s.state == nil {
		return nil, ErrNotInitialized
	}
	s.state.Tick++
	results := s.state.Fleet.Step(s.state.Floors.Len(), s.state.Reservations)
	log.Debug().Uint64("tick", s.state.Tick).Stringers("steps", stringers(results)).Msg("Tick")
	return results, nil
}

// Snapshot returns a deep copy of the current state. It is the zero Snapshot
// before initialization.
func (s *Simulation) Snapshot() types.Snapshot {
	if s.state == nil {
		return types.Snapshot{}
	}
	return types.Snapshot{
		SessionID: s.state.SessionID,
		Tick:      s.state.Tick,
		NumFloors: s.state.Floors.Len(),
		Lifts:     s.state.Fleet.Snapshot(),
		Reserved:  s.state.Reservations.Floors(),
	}
}

func stringers(results []fleet.StepResult) []fmt.Stringer {
	out := make([]fmt.Stringer, len(results))
	for i, r := range results {
		out[i] = r
	}
	return out
}
