package emulator

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/sirkon/errors"
)

// StageID identifies the loaded stage.
type StageID uint8

type Status byte

const (
	Menu Status = iota
	Playing
	Paused
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	default:
		return "menu"
	}
}

// GameSnapshot is one observation of game state. The underlying reads are not
// atomic with respect to the game, so fields may come from adjacent frames.
type GameSnapshot struct {
	Stage   StageID
	Status  Status
	Elapsed time.Duration
}

func (s GameSnapshot) String() string {
	return fmt.Sprintf("stage=%d status=%s elapsed=%s", s.Stage, s.Status, s.Elapsed)
}

// DecodeStatus folds the two indicator bytes into a Status. The ended check
// comes first because both sentinels can show up while a match tears down.
func DecodeStatus(inGame, paused byte, l Layout) Status {
	switch {
	case paused == byte(l.EndedSentinel):
		return Menu
	case paused == byte(l.PausedSentinel):
		return Paused
	case inGame == 0:
		return Menu
	default:
		return Playing
	}
}

type Poller struct {
	handle Handle
	layout Layout
}

func NewPoller(handle Handle, layout Layout) *Poller {
	return &Poller{handle: handle, layout: layout}
}

// Poll builds a snapshot. A failed read anywhere aborts the whole snapshot.
func (p *Poller) Poll() (GameSnapshot, error) {
	stage, err := p.readByte("stage", p.layout.Stage)
	if err != nil {
		return GameSnapshot{}, err
	}

	status, err := p.PollStatus()
	if err != nil {
		return GameSnapshot{}, err
	}

	snap := GameSnapshot{
		Stage:  StageID(stage),
		Status: status,
	}

	if p.layout.Timer != 0 {
		raw, err := p.read("timer", p.layout.Timer, 4)
		if err != nil {
			return GameSnapshot{}, err
		}
		snap.Elapsed = time.Duration(binary.BigEndian.Uint32(raw)) * time.Second
	}

	return snap, nil
}

// PollStatus reads only the indicator bytes.
func (p *Poller) PollStatus() (Status, error) {
	inGame, err := p.readByte("in-game", p.layout.InGame)
	if err != nil {
		return Menu, err
	}

	paused, err := p.readByte("paused", p.layout.Paused)
	if err != nil {
		return Menu, err
	}

	return DecodeStatus(inGame, paused, p.layout), nil
}

func (p *Poller) readByte(name string, addr HexInt) (byte, error) {
	raw, err := p.read(name, addr, 1)
	if err != nil {
		return 0, err
	}
	return raw[0], nil
}

func (p *Poller) read(name string, addr HexInt, size int) ([]byte, error) {
	raw, err := p.handle.Read(p.layout.Translate(addr), size)
	if err == nil && len(raw) < size {
		err = errors.New("short read").Int("got", len(raw)).Int("want", size)
	}
	if err != nil {
		if errors.Is(err, ErrInvalidRead) {
			return nil, errors.Wrap(err, "read "+name).Uint64("address", uint64(addr))
		}
		return nil, errors.Wrap(ErrInvalidRead, "read "+name).Uint64("address", uint64(addr)).Str("cause", err.Error())
	}
	return raw, nil
}
