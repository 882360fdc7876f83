// Package kbdio is the terminal keyboard driver for the simulator.
// It puts the terminal in raw mode and turns key presses into call and control events.
package kbdio

import (
	"context"
	"fmt"
	"strconv"

	"github.com/eiannone/keyboard"

	"liftsim/src/types"
)

type Kind int

const (
	// KindCall is a call without direction, submitted with Enter.
	KindCall Kind = iota
	// KindPress is a hall button press, submitted with u or d.
	KindPress
	KindReset
	KindPause
	KindQuit
	// KindEdit reports the floor label typed so far.
	KindEdit
)

func (k Kind) String() string {
	switch k {
	case KindCall:
		return "call"
	case KindPress:
		return "press"
	case KindReset:
		return "reset"
	case KindPause:
		return "pause"
	case KindQuit:
		return "quit"
	case KindEdit:
		return "edit"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Event is one keyboard command. Floor is a zero-based index and only set for
// calls and presses. Label is only set for edits.
type Event struct {
	Kind  Kind
	Floor int
	Dir   types.Direction
	Label string
}

func (e Event) Call() types.Call {
	return types.Call{Floor: e.Floor, Dir: e.Dir}
}

const maxDigits = 4

// Parser collects typed floor labels. Labels are one-based, as shown on screen.
type Parser struct {
	digits []rune
}

// Pending returns the floor label typed so far.
func (p *Parser) Pending() string {
	return string(p.digits)
}

// Feed consumes one key and reports an event once a command is complete or
// the floor label changes. A call or press without a floor label is ignored.
func (p *Parser) Feed(r rune, key keyboard.Key) (Event, bool) {
	switch key {
	case keyboard.KeyCtrlC, keyboard.KeyEsc:
		return Event{Kind: KindQuit}, true
	case keyboard.KeyEnter:
		return p.submit(KindCall, types.DirNone)
	case keyboard.KeyBackspace, keyboard.KeyBackspace2:
		if len(p.digits) == 0 {
			return Event{}, false
		}
		p.digits = p.digits[:len(p.digits)-1]
		return p.edit()
	}

	switch {
	case r >= '0' && r <= '9':
		if len(p.digits) == maxDigits {
			return Event{}, false
		}
		p.digits = append(p.digits, r)
		return p.edit()
	case r == 'u' || r == 'U':
		return p.submit(KindPress, types.DirUp)
	case r == 'd' || r == 'D':
		return p.submit(KindPress, types.DirDown)
	case r == 'r' || r == 'R':
		p.digits = p.digits[:0]
		return Event{Kind: KindReset}, true
	case r == 'p' || r == 'P':
		return Event{Kind: KindPause}, true
	case r == 'q' || r == 'Q':
		return Event{Kind: KindQuit}, true
	}
	return Event{}, false
}

func (p *Parser) edit() (Event, bool) {
	return Event{Kind: KindEdit, Label: p.Pending()}, true
}

func (p *Parser) submit(kind Kind, dir types.Direction) (Event, bool) {
	label, err := strconv.Atoi(string(p.digits))
	p.digits = p.digits[:0]
	if err != nil || label < 1 {
		return Event{}, false
	}
	return Event{Kind: kind, Floor: label - 1, Dir: dir}, true
}

// Poll reads the keyboard until ctx is done, the terminal closes or a read fails.
func Poll(ctx context.Context, receiver chan<- Event) error {
	keys, err := keyboard.GetKeys(10)
	if err != nil {
		return fmt.Errorf("open keyboard: %w", err)
	}
	defer keyboard.Close()

	var parser Parser
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case k, ok := <-keys:
			if !ok {
				return nil
			}
			if k.Err != nil {
				return fmt.Errorf("read keyboard: %w", k.Err)
			}
			e, ok := parser.Feed(k.Rune, k.Key)
			if !ok {
				continue
			}
			select {
			case receiver <- e:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}
