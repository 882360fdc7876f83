package dispatcher

import (
	"fmt"
	"math"

	"liftsim/src/fleet"
	"liftsim/src/logger"
	"liftsim/src/types"
)

var log = logger.Get()

type Outcome int

const (
	Assigned Outcome = iota
	Duplicate
	Dropped
)

func (o Outcome) String() string {
	switch o {
	case Assigned:
		return "assigned"
	case Duplicate:
		return "duplicate"
	case Dropped:
		return "dropped"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Assignment reports what happened to a call. LiftID is -1 when the call was dropped.
type Assignment struct {
	Call     types.Call
	Outcome  Outcome
	LiftID   int
	Distance int
}

type Dispatcher struct {
	mode types.DistanceMode
}

func New(mode types.DistanceMode) *Dispatcher {
	return &Dispatcher{mode: mode}
}

func (d *Dispatcher) Mode() types.DistanceMode {
	return d.mode
}

// Distance exposes the cost of one lift answering a call.
func (d *Dispatcher) Distance(lift *fleet.Lift, call types.Call) int {
	return distance(lift, call, d.mode)
}

// Assign picks the nearest eligible lift and queues the call on it.
//   - ties go to the lowest fleet index
//   - no eligible lift drops the call
//   - an already reserved floor is left alone
func (d *Dispatcher) Assign(f *fleet.Fleet, reservations *fleet.ReservationTable, call types.Call) Assignment {
	assignee, dist, ok := d.findAssignee(f, call)
	if !ok {
		log.Debug().Str("call", call.String()).Msg("No eligible lift, dropping call")
		return Assignment{Call: call, Outcome: Dropped, LiftID: -1}
	}

	if reservations.IsReserved(call.Floor) {
		log.Debug().Str("call", call.String()).Int("lift", assignee).Msg("Floor already reserved")
		return Assignment{Call: call, Outcome: Duplicate, LiftID: assignee, Distance: dist}
	}

	f.Lift(assignee).AddStop(types.Stop{Floor: call.Floor, RemainingDistance: dist})
	reservations.Reserve(call.Floor)
	log.Debug().Str("call", call.String()).Int("lift", assignee).Int("distance", dist).Msg("Assigned call")
	return Assignment{Call: call, Outcome: Assigned, LiftID: assignee, Distance: dist}
}

func (d *Dispatcher) findAssignee(f *fleet.Fleet, call types.Call) (assignee, lowest int, ok bool) {
	lowest = math.MaxInt
	for i := range f.Len() {
		lift := f.Lift(i)
		if !eligible(lift) {
			continue
		}
		dist := distance(lift, call, d.mode)
		if dist < lowest {
			lowest = dist
			assignee = i
			ok = true
		}
	}
	return assignee, lowest, ok
}

// Door state does not matter; a lift with its door open can still take calls.
func eligible(lift *fleet.Lift) bool {
	return lift.MotionState == types.Idle || lift.MotionState == types.Moving
}
