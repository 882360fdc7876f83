package types

import (
	"fmt"
	"strings"
)

// Direction is the travel direction requested by a call.
// Terminal floors only have one button and send DirNone.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
)

func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

func (d Direction) Valid() bool {
	return d == DirNone || d == DirUp || d == DirDown
}

type MotionState int

const (
	Idle MotionState = iota
	Moving
)

func (m MotionState) String() string {
	switch m {
	case Idle:
		return "idle"
	case Moving:
		return "moving"
	}
	return fmt.Sprintf("MotionState(%d)", int(m))
}

// Call is a request for a lift, raised at a floor.
type Call struct {
	Floor int
	Dir   Direction
}

func (c Call) String() string {
	return fmt.Sprintf("Call(%d,%s)", c.Floor, c.Dir)
}

// Stop is a floor committed to a lift's queue. RemainingDistance orders the queue.
type Stop struct {
	Floor             int
	RemainingDistance int
}

// DistanceMode selects how the dispatcher penalises calls behind a lift travelling down.
type DistanceMode int

const (
	// DistanceParity keeps the asymmetric downward penalty terms.
	DistanceParity DistanceMode = iota
	// DistanceCorrected mirrors the upward rules exactly for downward travel.
	DistanceCorrected
)

func (m DistanceMode) String() string {
	switch m {
	case DistanceParity:
		return "parity"
	case DistanceCorrected:
		return "corrected"
	}
	return fmt.Sprintf("DistanceMode(%d)", int(m))
}

func ParseDistanceMode(s string) (DistanceMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "parity":
		return DistanceParity, nil
	case "corrected":
		return DistanceCorrected, nil
	}
	return DistanceParity, fmt.Errorf("unknown distance mode %q", s)
}
