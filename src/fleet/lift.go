package fleet

import (
	"cmp"
	"slices"

	"github.com/tiendc/go-deepcopy"

	"liftsim/src/types"
)

// Lift is one car. Field names match types.LiftSnapshot so snapshots can be
// deep-copied straight out of the fleet.
type Lift struct {
	ID          int
	Position    int
	DoorOpen    bool
	MotionState types.MotionState
	Stops       []types.Stop
}

func NewLift(id int) Lift {
	return Lift{
		ID:          id,
		Position:    0,
		DoorOpen:    false,
		MotionState: types.Idle,
		Stops:       []types.Stop{},
	}
}

// FinalStop returns the last queued stop, which bounds how far the lift will travel.
func (l *Lift) FinalStop() (types.Stop, bool) {
	if len(l.Stops) == 0 {
		return types.Stop{}, false
	}
	return l.Stops[len(l.Stops)-1], true
}

// AddStop queues a stop and keeps the queue ordered by remaining distance.
// Equal distances keep their arrival order.
func (l *Lift) AddStop(stop types.Stop) {
	l.MotionState = types.Moving
	l.Stops = append(l.Stops, stop)
	slices.SortStableFunc(l.Stops, func(a, b types.Stop) int {
		return cmp.Compare(a.RemainingDistance, b.RemainingDistance)
	})
}

// Fleet owns the lifts. Lifts are mutated in place through their index.
type Fleet struct {
	lifts []Lift
}

func NewFleet(numLifts int) *Fleet {
	lifts := make([]Lift, 0, max(numLifts, 0))
	for i := range numLifts {
		lifts = append(lifts, NewLift(i))
	}
	return &Fleet{lifts: lifts}
}

func (f *Fleet) Len() int {
	return len(f.lifts)
}

func (f *Fleet) Lift(i int) *Lift {
	return &f.lifts[i]
}

// Snapshot deep-copies every lift, so nothing in the result aliases the fleet.
func (f *Fleet) Snapshot() []types.LiftSnapshot {
	var out []types.LiftSnapshot
	if err := deepcopy.Copy(&out, &f.lifts); err != nil {
		panic(err)
	}
	return out
}
