package processing

import (
	"fmt"

	"StageDJ/emulator"
)

// Event is a change between two snapshots.
type Event interface {
	fmt.Stringer
	event()
}

type GameJoin struct {
	Info emulator.GameSnapshot
}

type GameLeave struct{}

type GamePause struct{}

type GameResume struct{}

func (GameJoin) event()   {}
func (GameLeave) event()  {}
func (GamePause) event()  {}
func (GameResume) event() {}

func (e GameJoin) String() string { return fmt.Sprintf("join(stage=%d)", e.Info.Stage) }
func (GameLeave) String() string  { return "leave" }
func (GamePause) String() string  { return "pause" }
func (GameResume) String() string { return "resume" }

// Detect compares two snapshots. Only the status matters; at most one event
// comes out and skipped states are not filled in.
func Detect(old, new emulator.GameSnapshot) []Event {
	switch old.Status {
	case emulator.Menu:
		if new.Status == emulator.Playing {
			return []Event{GameJoin{Info: new}}
		}
	case emulator.Playing:
		switch new.Status {
		case emulator.Menu:
			return []Event{GameLeave{}}
		case emulator.Paused:
			return []Event{GamePause{}}
		}
	case emulator.Paused:
		switch new.Status {
		case emulator.Menu:
			return []Event{GameLeave{}}
		case emulator.Playing:
			return []Event{GameResume{}}
		}
	}

	return nil
}
