package main

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"liftsim/lib/driver-go/kbdio"
	"liftsim/src/logger"
	"liftsim/src/sim"
	"liftsim/src/timer"
	"liftsim/src/types"
	"liftsim/src/view"
)

func init() {
	logger.Init(zerolog.Disabled, io.Discard)
}

// The done channel must not close before the keyboard driver has returned.
func TestPollInput_DoneAfterPollReturns(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var restored atomic.Bool
	poll := func(ctx context.Context, _ chan<- kbdio.Event) error {
		<-ctx.Done()
		time.Sleep(20 * time.Millisecond)
		restored.Store(true)
		return ctx.Err()
	}

	done := pollInput(ctx, poll, make(chan kbdio.Event), logger.Get())
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Input did not stop")
	}
	if !restored.Load() {
		t.Error("Done closed before the keyboard driver returned")
	}
}

type routed struct {
	keys     chan kbdio.Event
	calls    chan types.Call
	presses  chan types.Call
	controls chan sim.ControlEvent
	clock    chan timer.TimerAction
	screen   *bytes.Buffer
	done     chan struct{}
	ctx      context.Context
	cancel   context.CancelFunc
}

func startRouting(t *testing.T) *routed {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	r := &routed{
		keys:     make(chan kbdio.Event),
		calls:    make(chan types.Call, 1),
		presses:  make(chan types.Call, 1),
		controls: make(chan sim.ControlEvent, 1),
		clock:    make(chan timer.TimerAction, 1),
		screen:   &bytes.Buffer{},
		done:     make(chan struct{}),
		ctx:      ctx,
		cancel:   cancel,
	}
	go func() {
		defer close(r.done)
		routeKeys(ctx, cancel, r.keys, routes{
			calls:    r.calls,
			presses:  r.presses,
			controls: r.controls,
			clock:    r.clock,
			screen:   view.NewScreen(r.screen),
		})
	}()
	t.Cleanup(cancel)
	return r
}

func TestRouteKeys_CommandsReachTheirChannels(t *testing.T) {
	r := startRouting(t)

	r.keys <- kbdio.Event{Kind: kbdio.KindPress, Floor: 2, Dir: types.DirUp}
	if got := <-r.presses; got != (types.Call{Floor: 2, Dir: types.DirUp}) {
		t.Errorf("Press routed as %v", got)
	}
	r.keys <- kbdio.Event{Kind: kbdio.KindCall, Floor: 1}
	if got := <-r.calls; got != (types.Call{Floor: 1, Dir: types.DirNone}) {
		t.Errorf("Call routed as %v", got)
	}
	r.keys <- kbdio.Event{Kind: kbdio.KindReset}
	if got := <-r.controls; got.Kind != sim.ControlReset {
		t.Errorf("Reset routed as %+v", got)
	}
}

func TestRouteKeys_PauseToggles(t *testing.T) {
	r := startRouting(t)

	r.keys <- kbdio.Event{Kind: kbdio.KindPause}
	if a := <-r.clock; a != timer.Stop {
		t.Errorf("First pause sent %v", a)
	}
	r.keys <- kbdio.Event{Kind: kbdio.KindPause}
	if a := <-r.clock; a != timer.Start {
		t.Errorf("Second pause sent %v", a)
	}
}

func TestRouteKeys_EditShowsPrompt(t *testing.T) {
	r := startRouting(t)

	r.keys <- kbdio.Event{Kind: kbdio.KindEdit, Label: "12"}
	// Unbuffered keys: the next send only completes once the edit is drawn.
	r.keys <- kbdio.Event{Kind: kbdio.KindPause}
	<-r.clock
	if !strings.Contains(r.screen.String(), "floor> 12\r\n") {
		t.Errorf("Prompt not drawn: %q", r.screen.String())
	}
}

func TestRouteKeys_QuitCancels(t *testing.T) {
	r := startRouting(t)

	r.keys <- kbdio.Event{Kind: kbdio.KindQuit}
	select {
	case <-r.done:
	case <-time.After(time.Second):
		t.Fatal("routeKeys did not return on quit")
	}
	if r.ctx.Err() == nil {
		t.Error("Quit did not cancel the context")
	}
}
