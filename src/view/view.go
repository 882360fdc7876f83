// Package view draws snapshots as text. It never touches simulation state.
package view

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"liftsim/src/types"
)

// Render writes one status line per lift followed by the shaft, top floor first.
func Render(w io.Writer, snap types.Snapshot) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "tick %d  reserved %v\n", snap.Tick, snap.Reserved)
	for _, lift := range snap.Lifts {
		fmt.Fprintln(bw, LiftLine(lift))
	}
	for floor := snap.NumFloors - 1; floor >= 0; floor-- {
		fmt.Fprintln(bw, shaftRow(snap, floor))
	}
	return bw.Flush()
}

// LiftLine is e.g. "lift 0  floor 2  door open    idle    queue [3:1]".
func LiftLine(lift types.LiftSnapshot) string {
	door := "closed"
	if lift.DoorOpen {
		door = "open"
	}
	stops := make([]string, len(lift.Stops))
	for i, stop := range lift.Stops {
		stops[i] = fmt.Sprintf("%d:%d", stop.Floor+1, stop.RemainingDistance)
	}
	return fmt.Sprintf("lift %d  floor %d  door %-6s  %-6s  queue [%s]",
		lift.ID, lift.Position+1, door, lift.MotionState, strings.Join(stops, " "))
}

func shaftRow(snap types.Snapshot, floor int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%3d ", floor+1)
	for _, lift := range snap.Lifts {
		switch {
		case lift.Position != floor:
			b.WriteString("|   |")
		case lift.DoorOpen:
			b.WriteString("|[ ]|")
		default:
			b.WriteString("|[#]|")
		}
	}
	for _, reserved := range snap.Reserved {
		if reserved == floor {
			b.WriteString(" *")
			break
		}
	}
	return b.String()
}
