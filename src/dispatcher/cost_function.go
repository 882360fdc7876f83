package dispatcher

import (
	"liftsim/src/fleet"
	"liftsim/src/types"
)

// distance is the cost of a lift answering a call.
//   - an empty queue costs the straight distance to the call
//   - otherwise the final queued stop is the lift's travel extent, and a call the
//     lift would only pass in the wrong direction costs the full run out to the
//     extent and back
func distance(lift *fleet.Lift, call types.Call, mode types.DistanceMode) int {
	final, ok := lift.FinalStop()
	if !ok {
		return abs(call.Floor - lift.Position)
	}
	pos, called, extent := lift.Position, call.Floor, final.Floor

	if extent-pos > 0 {
		switch {
		case pos > called:
			return (extent - pos) + (extent - called)
		case call.Dir == types.DirDown && pos < called && called < extent:
			return (extent - pos) + (extent - called)
		}
		return called - pos
	}

	if mode == types.DistanceCorrected {
		switch {
		case pos < called:
			return (pos - extent) + (called - extent)
		case call.Dir == types.DirUp && called < pos && called > extent:
			return (pos - extent) + (called - extent)
		}
		return pos - called
	}

	// Parity rules. Both penalty terms differ from the upward mirror: the first
	// charges (called - pos) instead of (called - extent) and the second counts
	// (pos - extent) twice.
	switch {
	case pos < called:
		return (pos - extent) + (called - pos)
	case call.Dir == types.DirUp && called < pos && called > extent:
		return (pos - extent) + (pos - extent)
	}
	return pos - called
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
