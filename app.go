package main

import (
	"context"
	"time"

	"StageDJ/emulator"
	"StageDJ/processing"

	"github.com/google/uuid"
	"github.com/sirkon/errors"
	"github.com/sirkon/message"
)

// App is the supervisor: it finds the emulator, polls it on a fixed interval
// and feeds detected events into the state machine. No error ends it; handle
// and read failures start over from locating the process.
type App struct {
	locator      *emulator.Locator
	layout       emulator.Layout
	machine      *processing.Machine
	observers    []processing.Observer
	pollInterval time.Duration
	backoff      time.Duration

	status   emulator.ConnectionStatus
	msg      string
	notified bool
}

// session is everything that lives for one connection to the emulator.
type session struct {
	id     uuid.UUID
	poller *emulator.Poller
	prev   emulator.GameSnapshot
	state  processing.State
}

func NewApp(locator *emulator.Locator,
	layout emulator.Layout,
	machine *processing.Machine,
	pollInterval time.Duration,
	backoff time.Duration,
	observers ...processing.Observer) *App {

	return &App{
		locator:      locator,
		layout:       layout,
		machine:      machine,
		observers:    observers,
		pollInterval: pollInterval,
		backoff:      backoff,
	}
}

// Run loops until ctx is cancelled. Every failed attempt, whether locating or
// a session ending on a read error, waits out the backoff before the next one.
func (a *App) Run(ctx context.Context) error {
	message.Infof("looking for %s", a.locator.Name)

	for {
		handle, err := a.locator.Locate()
		if err != nil {
			if errors.Is(err, emulator.ErrAccessDenied) {
				a.notify(emulator.Disconnected, "emulator found but cannot be opened")
				message.Warningf("cannot open emulator, retrying: %s", err)
			} else {
				a.notify(emulator.Disconnected, "emulator not found")
			}
			if !sleep(ctx, a.backoff) {
				return ctx.Err()
			}
			continue
		}

		err = a.runSession(ctx, handle)
		if cerr := handle.Close(); cerr != nil {
			message.Warningf("close handle: %s", cerr)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		message.Errorf("lost emulator, relocating: %s", err)
		a.notify(emulator.Reconnecting, "reconnecting to emulator")
		if !sleep(ctx, a.backoff) {
			return ctx.Err()
		}
	}
}

func (a *App) runSession(ctx context.Context, handle emulator.Handle) error {
	s := &session{
		id:     uuid.New(),
		poller: emulator.NewPoller(handle, a.layout),
		state:  processing.Waiting{},
	}
	defer func() {
		s.state = a.machine.Release(s.state)
	}()

	first, err := s.poller.Poll()
	if err != nil {
		return errors.Wrap(err, "initial snapshot").Str("session", s.id.String())
	}
	s.prev = first

	message.Infof("session %s: connected, %s", s.id, first)
	a.notify(emulator.Connected, "emulator connected")

	ticker := time.NewTicker(a.pollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		if err := a.step(s); err != nil {
			return errors.Wrap(err, "step").Str("session", s.id.String())
		}
	}
}

// step is one tick: poll, detect, fold events, keep the snapshot, fold a tick.
// Playback errors skip the join and keep the session; anything else is
// returned and ends it.
func (a *App) step(s *session) error {
	next, err := s.poller.Poll()
	if err != nil {
		return err
	}

	events := processing.Detect(s.prev, next)
	for _, e := range events {
		message.Infof("session %s: %s", s.id, e)
		for _, o := range a.observers {
			o.Event(e)
		}
	}

	s.state, err = a.machine.Fold(s.state, events)
	s.prev = next
	if err != nil {
		if !processing.IsPlaybackError(err) {
			return err
		}
		message.Warningf("session %s: no music for this match: %s", s.id, err)
	}

	s.state, err = a.machine.Tick(s.state, processing.Tick{Probe: s.poller})
	return err
}

func (a *App) notify(status emulator.ConnectionStatus, msg string) {
	if a.notified && a.status == status && a.msg == msg {
		return
	}
	a.status = status
	a.msg = msg
	a.notified = true

	message.Info(msg)
	for _, o := range a.observers {
		o.Connection(status, msg)
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
