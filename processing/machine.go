package processing

import (
	"fmt"

	"StageDJ/emulator"

	"github.com/sirkon/errors"
)

const (
	// ErrSongNotFound the playlist has nothing for the joined stage.
	ErrSongNotFound errors.Const = "song not found"
	// ErrPlayback the player could not start the picked song.
	ErrPlayback errors.Const = "playback failed"
)

// State is either Waiting or Playing.
type State interface {
	fmt.Stringer
	state()
}

type Waiting struct{}

// Playing owns the active playback. Once a Playing value has been passed to
// Apply, Fold or Tick the returned state is the owner and the old value must
// not be used again.
type Playing struct {
	playback Playback
	volume   float64
}

func (Waiting) state() {}
func (Playing) state() {}

func (Waiting) String() string   { return "waiting" }
func (p Playing) String() string { return fmt.Sprintf("playing(volume=%.2f)", p.volume) }

// Volume is the level last sent to the playback.
func (p Playing) Volume() float64 {
	return p.volume
}

// VolumePolicy decides playback volume. The volume while paused is
// Base * PausedMultiplier.
type VolumePolicy struct {
	Base             float64
	PausedMultiplier float64
}

func DefaultVolumePolicy() VolumePolicy {
	return VolumePolicy{Base: 0.5, PausedMultiplier: 0.2}
}

func (v VolumePolicy) For(status emulator.Status) float64 {
	if status == emulator.Paused {
		return clampVolume(v.Base * v.PausedMultiplier)
	}
	return clampVolume(v.Base)
}

// Tick asks Playing to re-derive its volume from a fresh status read, in case
// an edge was missed.
type Tick struct {
	Probe StatusProbe
}

type Machine struct {
	playlist Playlist
	player   Player
	volume   VolumePolicy
}

func NewMachine(playlist Playlist, player Player, volume VolumePolicy) *Machine {
	return &Machine{
		playlist: playlist,
		player:   player,
		volume:   volume,
	}
}

// Apply runs one event. Pairs without a transition return the state as is.
// On error the returned state is still valid and owns whatever the input did.
func (m *Machine) Apply(s State, e Event) (State, error) {
	switch st := s.(type) {
	case Waiting:
		if join, ok := e.(GameJoin); ok {
			return m.join(st, join)
		}
	case Playing:
		switch e.(type) {
		case GameLeave:
			st.playback.Stop()
			return Waiting{}, nil
		case GamePause:
			return m.setVolume(st, m.volume.For(emulator.Paused)), nil
		case GameResume:
			return m.setVolume(st, m.volume.For(emulator.Playing)), nil
		}
	}

	return s, nil
}

// Fold applies events in order and stops at the first error; the rest of the
// events are dropped.
func (m *Machine) Fold(s State, events []Event) (State, error) {
	for _, e := range events {
		next, err := m.Apply(s, e)
		if err != nil {
			return next, errors.Wrap(err, "apply "+e.String())
		}
		s = next
	}
	return s, nil
}

// Tick only touches Playing and never changes which state we are in.
func (m *Machine) Tick(s State, t Tick) (State, error) {
	st, ok := s.(Playing)
	if !ok || t.Probe == nil {
		return s, nil
	}

	status, err := t.Probe.PollStatus()
	if err != nil {
		return s, errors.Wrap(err, "tick")
	}

	return m.setVolume(st, m.volume.For(status)), nil
}

// Release stops playback owned by s. Used when a session is abandoned.
func (m *Machine) Release(s State) State {
	if st, ok := s.(Playing); ok {
		st.playback.Stop()
	}
	return Waiting{}
}

func (m *Machine) join(_ Waiting, e GameJoin) (State, error) {
	src, ok := m.playlist.Pick(e.Info.Stage)
	if !ok {
		return Waiting{}, errors.Wrap(ErrSongNotFound, "pick song").Int("stage", int(e.Info.Stage))
	}

	pb, err := m.player.Play(src)
	if err != nil {
		return Waiting{}, errors.Wrap(ErrPlayback, "start song").
			Int("stage", int(e.Info.Stage)).
			Str("source", src.Path).
			Str("cause", err.Error())
	}

	vol := m.volume.For(emulator.Playing)
	pb.SetVolume(vol)
	return Playing{playback: pb, volume: vol}, nil
}

func (m *Machine) setVolume(st Playing, vol float64) Playing {
	if vol == st.volume {
		return st
	}
	st.playback.SetVolume(vol)
	st.volume = vol
	return st
}

// IsPlaybackError reports errors that only cost the current join.
func IsPlaybackError(err error) bool {
	return errors.Is(err, ErrSongNotFound) || errors.Is(err, ErrPlayback)
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
