package fleet

import (
	"slices"

	"liftsim/src/types"
)

// openDoor serves the head stop: door opens, the floor's reservation is released
// and the stop leaves the queue.
func openDoor(l *Lift, reservations *ReservationTable) {
	l.DoorOpen = true
	reservations.Release(l.Position)
	l.Stops = slices.Delete(l.Stops, 0, 1)
	if len(l.Stops) == 0 {
		l.MotionState = types.Idle
	}
}

func closeDoor(l *Lift) {
	l.DoorOpen = false
}
