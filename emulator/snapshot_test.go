package emulator_test

import (
	"testing"
	"time"

	"StageDJ/emulator"
	"StageDJ/emulator/fakeproc"

	"github.com/google/go-cmp/cmp"
	"github.com/sirkon/errors"
)

func TestDecodeStatus(t *testing.T) {
	l := emulator.DefaultLayout()
	ended := byte(l.EndedSentinel)
	paused := byte(l.PausedSentinel)

	tests := []struct {
		name   string
		inGame byte
		paused byte
		want   emulator.Status
	}{
		{name: "ended wins over in-game", inGame: 1, paused: ended, want: emulator.Menu},
		{name: "ended wins with in-game zero", inGame: 0, paused: ended, want: emulator.Menu},
		{name: "paused", inGame: 1, paused: paused, want: emulator.Paused},
		{name: "paused beats in-game zero", inGame: 0, paused: paused, want: emulator.Paused},
		{name: "menu", inGame: 0, paused: 0, want: emulator.Menu},
		{name: "playing", inGame: 1, paused: 0, want: emulator.Playing},
		{name: "unknown paused byte is playing", inGame: 0x42, paused: 0xEE, want: emulator.Playing},
		{name: "unknown paused byte in menu", inGame: 0, paused: 0xEE, want: emulator.Menu},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := emulator.DecodeStatus(tt.inGame, tt.paused, l); got != tt.want {
				t.Fatalf("DecodeStatus(%#x, %#x) = %s, want %s", tt.inGame, tt.paused, got, tt.want)
			}
		})
	}
}

func TestDecodeStatusIsTotal(t *testing.T) {
	l := emulator.DefaultLayout()
	for g := 0; g < 256; g++ {
		for p := 0; p < 256; p++ {
			switch s := emulator.DecodeStatus(byte(g), byte(p), l); s {
			case emulator.Menu, emulator.Playing, emulator.Paused:
			default:
				t.Fatalf("DecodeStatus(%#x, %#x) produced %d", g, p, s)
			}
		}
	}
}

func newPoller(t *testing.T) (*emulator.Poller, *fakeproc.Process, emulator.Layout) {
	t.Helper()

	l := emulator.DefaultLayout()
	proc := fakeproc.NewProcess(1, emulator.DefaultProcessName)
	sys := fakeproc.NewSystem(proc)
	h, err := sys.Open(1)
	if err != nil {
		t.Fatalf("open fake: %v", err)
	}
	return emulator.NewPoller(h, l), proc, l
}

func TestPollerPoll(t *testing.T) {
	p, proc, l := newPoller(t)
	proc.SetState(l, 8, emulator.Playing)
	proc.Poke(l, l.Timer, 0x00, 0x00, 0x01, 0x2C)

	got, err := p.Poll()
	if err != nil {
		t.Fatalf("poll: %v", err)
	}

	want := emulator.GameSnapshot{Stage: 8, Status: emulator.Playing, Elapsed: 300 * time.Second}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestPollerSkipsTimerWhenDisabled(t *testing.T) {
	l := emulator.DefaultLayout()
	l.Timer = 0
	proc := fakeproc.NewProcess(1, emulator.DefaultProcessName)
	proc.SetState(l, 3, emulator.Paused)
	h, err := fakeproc.NewSystem(proc).Open(1)
	if err != nil {
		t.Fatalf("open fake: %v", err)
	}

	got, err := emulator.NewPoller(h, l).Poll()
	if err != nil {
		t.Fatalf("poll: %v", err)
	}
	if got.Status != emulator.Paused || got.Stage != 3 || got.Elapsed != 0 {
		t.Fatalf("unexpected snapshot %s", got)
	}
}

func TestPollerAbortsOnAnyFailedRead(t *testing.T) {
	l := emulator.DefaultLayout()
	for _, addr := range []emulator.HexInt{l.Stage, l.InGame, l.Paused, l.Timer} {
		p, proc, _ := newPoller(t)
		proc.SetState(l, 8, emulator.Playing)
		proc.Fail(l, addr, true)

		snap, err := p.Poll()
		if !errors.Is(err, emulator.ErrInvalidRead) {
			t.Fatalf("address %#x: expected invalid read, got %v", uint64(addr), err)
		}
		if snap != (emulator.GameSnapshot{}) {
			t.Fatalf("address %#x: partial snapshot returned: %s", uint64(addr), snap)
		}
	}
}

func TestPollStatus(t *testing.T) {
	p, proc, l := newPoller(t)
	proc.SetState(l, 1, emulator.Paused)

	s, err := p.PollStatus()
	if err != nil {
		t.Fatalf("poll status: %v", err)
	}
	if s != emulator.Paused {
		t.Fatalf("got %s, want paused", s)
	}

	proc.Poke(l, l.Paused, byte(l.EndedSentinel))
	if s, _ = p.PollStatus(); s != emulator.Menu {
		t.Fatalf("got %s after match end, want menu", s)
	}
}

type shortHandle struct{}

func (shortHandle) Read(emulator.PhysicalOffset, int) ([]byte, error) { return nil, nil }
func (shortHandle) Close() error                                       { return nil }

func TestPollerShortRead(t *testing.T) {
	_, err := emulator.NewPoller(shortHandle{}, emulator.DefaultLayout()).Poll()
	if !errors.Is(err, emulator.ErrInvalidRead) {
		t.Fatalf("expected invalid read on short read, got %v", err)
	}
}
