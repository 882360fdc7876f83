package fleet

import "fmt"

// Buttons is the call-button layout of a floor.
type Buttons struct {
	Up   bool
	Down bool
}

// Single reports whether the floor has only one call button (a terminal floor).
func (b Buttons) Single() bool {
	return b.Up != b.Down
}

type Floor struct {
	Index   int
	Label   string
	Buttons Buttons
}

// FloorRegistry is the ordered set of floors 0..n-1.
type FloorRegistry struct {
	floors []Floor
}

func NewFloorRegistry(numFloors int) *FloorRegistry {
	floors := make([]Floor, 0, max(numFloors, 0))
	for i := range numFloors {
		floors = append(floors, Floor{
			Index:   i,
			Label:   fmt.Sprintf("Floor %d", i+1),
			Buttons: buttonsFor(i, numFloors),
		})
	}
	return &FloorRegistry{floors: floors}
}

// Top floor is checked first, so a one-floor building only gets a down button.
func buttonsFor(floor, numFloors int) Buttons {
	switch floor {
	case numFloors - 1:
		return Buttons{Down: true}
	case 0:
		return Buttons{Up: true}
	default:
		return Buttons{Up: true, Down: true}
	}
}

func (r *FloorRegistry) Len() int {
	return len(r.floors)
}

func (r *FloorRegistry) Contains(floor int) bool {
	return floor >= 0 && floor < len(r.floors)
}

func (r *FloorRegistry) Floor(floor int) (Floor, bool) {
	if !r.Contains(floor) {
		return Floor{}, false
	}
	return r.floors[floor], true
}

// Floors returns a copy of the registry in index order.
func (r *FloorRegistry) Floors() []Floor {
	out := make([]Floor, len(r.floors))
	copy(out, r.floors)
	return out
}
