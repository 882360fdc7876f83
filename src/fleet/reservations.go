package fleet

import "slices"

// ReservationTable holds the floors that already sit in some lift's stop queue.
// A floor is reserved on assignment and released when a lift opens its door there.
type ReservationTable struct {
	floors map[int]struct{}
}

func NewReservationTable() *ReservationTable {
	return &ReservationTable{floors: make(map[int]struct{})}
}

func (t *ReservationTable) Reserve(floor int) {
	t.floors[floor] = struct{}{}
}

func (t *ReservationTable) IsReserved(floor int) bool {
	_, ok := t.floors[floor]
	return ok
}

func (t *ReservationTable) Release(floor int) {
	delete(t.floors, floor)
}

func (t *ReservationTable) Len() int {
	return len(t.floors)
}

// Floors returns the reserved floors in ascending order.
func (t *ReservationTable) Floors() []int {
	out := make([]int, 0, len(t.floors))
	for floor := range t.floors {
		out = append(out, floor)
	}
	slices.Sort(out)
	return out
}

func (t *ReservationTable) Clear() {
	clear(t.floors)
}
