package types

import "github.com/google/uuid"

// LiftSnapshot is a read-only copy of one lift, handed to observers.
type LiftSnapshot struct {
	ID          int
	Position    int
	DoorOpen    bool
	MotionState MotionState
	Stops       []Stop
}

// Snapshot is a read-only copy of the whole simulation after a call or a tick.
type Snapshot struct {
	SessionID uuid.UUID
	Tick      uint64
	NumFloors int
	Lifts     []LiftSnapshot
	Reserved  []int
}
