package sim

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"liftsim/src/config"
	"liftsim/src/fleet"
)

var (
	ErrNotInitialized   = errors.New("simulation not initialized")
	ErrFloorOutOfRange  = errors.New("floor out of range")
	ErrInvalidDirection = errors.New("invalid direction")
	ErrNoSuchButton     = errors.New("no such call button")
)

// State is everything one initialization owns. It is replaced as a whole on
// re-initialization.
type State struct {
	SessionID    uuid.UUID
	Floors       *fleet.FloorRegistry
	Fleet        *fleet.Fleet
	Reservations *fleet.ReservationTable
	Tick         uint64
}

func NewState(numFloors, numLifts int) (*State, error) {
	if numFloors <= 0 {
		return nil, fmt.Errorf("%w: floors must be positive, got %d", config.ErrInvalidConfig, numFloors)
	}
	if numLifts <= 0 {
		return nil, fmt.Errorf("%w: lifts must be positive, got %d", config.ErrInvalidConfig, numLifts)
	}
	return &State{
		SessionID:    uuid.New(),
		Floors:       fleet.NewFloorRegistry(numFloors),
		Fleet:        fleet.NewFleet(numLifts),
		Reservations: fleet.NewReservationTable(),
	}, nil
}
