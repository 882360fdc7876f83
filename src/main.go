package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"liftsim/lib/driver-go/kbdio"
	"liftsim/src/config"
	"liftsim/src/logger"
	"liftsim/src/sim"
	"liftsim/src/timer"
	"liftsim/src/types"
	"liftsim/src/view"
)

func main() {
	configPath := flag.String("config", config.DefaultConfigPath, "YAML config file, skipped if missing")
	envPath := flag.String("env", config.DefaultEnvPath, "dotenv file, skipped if missing")
	floors := flag.Int("floors", config.DefaultNumFloors, "Number of floors")
	lifts := flag.Int("lifts", config.DefaultNumLifts, "Number of lifts")
	tick := flag.Duration("tick", config.TickPeriod, "Simulation tick period")
	distance := flag.String("distance", config.DefaultDistanceMode, "Distance rule, parity or corrected")
	logLevel := flag.String("log-level", config.DefaultLogLevel, "Log level")
	logFile := flag.String("log-file", config.DefaultLogFile, "Log file, empty discards logs")
	flag.Parse()

	cfg, err := config.Load(*configPath, *envPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	// Flags given on the command line win over files and environment.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "floors":
			cfg.NumFloors = *floors
		case "lifts":
			cfg.NumLifts = *lifts
		case "tick":
			cfg.TickPeriod = *tick
		case "distance":
			cfg.DistanceMode = *distance
		case "log-level":
			cfg.LogLevel = *logLevel
		case "log-file":
			cfg.LogFile = *logFile
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	level, _ := cfg.Level()
	mode, _ := cfg.Distance()

	// The terminal is in raw mode while the simulation runs, so logs go to a file.
	logOut, err := logger.OpenFile(cfg.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logOut.Close()
	log := logger.Init(level, logOut)

	simulation := sim.New(mode)
	if err := simulation.Init(cfg.NumFloors, cfg.NumLifts); err != nil {
		log.Fatal().Err(err).Msg("Could not initialize simulation")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	clock := timer.NewPeriodic(cfg.TickPeriod)
	go clock.Run(ctx)

	screen := view.NewScreen(os.Stdout)
	keys := make(chan kbdio.Event)
	inputDone := pollInput(ctx, kbdio.Poll, keys, log)

	calls := make(chan types.Call)
	presses := make(chan types.Call)
	controls := make(chan sim.ControlEvent)
	go routeKeys(ctx, cancel, keys, routes{
		calls:    calls,
		presses:  presses,
		controls: controls,
		clock:    clock.Actions(),
		screen:   screen,
	})

	inputs := sim.Inputs{Calls: calls, Presses: presses, Controls: controls}
	err = simulation.Run(ctx, clock, inputs, func(snap types.Snapshot) {
		if err := screen.Show(snap); err != nil {
			log.Error().Err(err).Msg("Render failed")
		}
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("Simulation stopped with error")
	}

	// The keyboard driver restores the terminal when Poll returns.
	cancel()
	<-inputDone
}

// pollInput runs poll until ctx is done. The returned channel is closed once
// poll has returned.
func pollInput(
	ctx context.Context,
	poll func(context.Context, chan<- kbdio.Event) error,
	keys chan<- kbdio.Event,
	log *zerolog.Logger,
) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := poll(ctx, keys); err != nil && !errors.Is(err, context.Canceled) {
			log.Error().Err(err).Msg("Keyboard input stopped")
		}
	}()
	return done
}

// routes are the destinations of keyboard commands.
type routes struct {
	calls    chan<- types.Call
	presses  chan<- types.Call
	controls chan<- sim.ControlEvent
	clock    chan<- timer.TimerAction
	screen   *view.Screen
}

// routeKeys turns keyboard commands into simulation inputs, clock actions and
// prompt updates. Quit cancels ctx.
func routeKeys(ctx context.Context, cancel context.CancelFunc, keys <-chan kbdio.Event, r routes) {
	log := logger.Get()
	paused := false
	setPrompt := func(label string) {
		if err := r.screen.SetPrompt(label); err != nil {
			log.Error().Err(err).Msg("Prompt update failed")
		}
	}

	for {
		var e kbdio.Event
		select {
		case <-ctx.Done():
			return
		case e = <-keys:
		}

		switch e.Kind {
		case kbdio.KindEdit:
			setPrompt(e.Label)
		case kbdio.KindCall:
			setPrompt("")
			send(ctx, r.calls, e.Call())
		case kbdio.KindPress:
			setPrompt("")
			send(ctx, r.presses, e.Call())
		case kbdio.KindReset:
			setPrompt("")
			send(ctx, r.controls, sim.ControlEvent{Kind: sim.ControlReset})
		case kbdio.KindPause:
			action := timer.Stop
			if paused {
				action = timer.Start
			}
			if send(ctx, r.clock, action) {
				paused = !paused
				log.Info().Bool("paused", paused).Msg("Clock toggled")
			}
		case kbdio.KindQuit:
			cancel()
			return
		}
	}
}

func send[T any](ctx context.Context, ch chan<- T, v T) bool {
	select {
	case ch <- v:
		return true
	case <-ctx.Done():
		return false
	}
}
