// Package fleet owns the lifts, the floor registry and the reservation table,
// and runs the motion and door state machine one step per lift per tick.
package fleet

import (
	"fmt"

	"liftsim/src/types"
)

type StepResult int

const (
	Held StepResult = iota
	DoorClosed
	DoorOpened
	MovedUp
	MovedDown
)

func (r StepResult) String() string {
	switch r {
	case Held:
		return "held"
	case DoorClosed:
		return "door-closed"
	case DoorOpened:
		return "door-opened"
	case MovedUp:
		return "moved-up"
	case MovedDown:
		return "moved-down"
	}
	return fmt.Sprintf("StepResult(%d)", int(r))
}

// Step advances one lift by one tick.
//  1. An open door closes and nothing else happens this tick.
//  2. A moving lift standing at its head stop opens the door.
//  3. Otherwise a moving lift travels one floor toward its head stop.
//  4. An idle lift with a closed door stays put.
func Step(l *Lift, numFloors int, reservations *ReservationTable) StepResult {
	if l.DoorOpen {
		closeDoor(l)
		return DoorClosed
	}
	if l.MotionState != types.Moving {
		return Held
	}
	if len(l.Stops) == 0 {
		l.MotionState = types.Idle
		return Held
	}

	head := &l.Stops[0]
	if head.Floor == l.Position {
		openDoor(l, reservations)
		return DoorOpened
	}

	if head.Floor > l.Position {
		// Upward moves wrap modulo the floor count and downward moves do not.
		// The wrap never triggers while the head stop is a registry floor.
		l.Position = (l.Position + 1) % numFloors
		head.RemainingDistance--
		return MovedUp
	}
	l.Position--
	head.RemainingDistance--
	return MovedDown
}

// Step advances every lift once, in fleet order.
func (f *Fleet) Step(numFloors int, reservations *ReservationTable) []StepResult {
	results := make([]StepResult, len(f.lifts))
	for i := range f.lifts {
		results[i] = Step(&f.lifts[i], numFloors, reservations)
	}
	return results
}
