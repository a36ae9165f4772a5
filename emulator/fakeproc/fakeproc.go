// Package fakeproc is an in-memory stand-in for a running emulator process.
package fakeproc

import (
	"sync"

	"StageDJ/emulator"

	"github.com/sirkon/errors"
)

// Process is a fake process with a sparse byte-addressed memory keyed by
// physical offset.
type Process struct {
	PID    int
	Name   string
	Denied bool

	m      sync.Mutex
	mem    map[emulator.PhysicalOffset]byte
	failAt map[emulator.PhysicalOffset]bool
}

func NewProcess(pid int, name string) *Process {
	return &Process{
		PID:    pid,
		Name:   name,
		mem:    make(map[emulator.PhysicalOffset]byte),
		failAt: make(map[emulator.PhysicalOffset]bool),
	}
}

// Poke writes bytes at the offset the logical address translates to under l.
func (p *Process) Poke(l emulator.Layout, addr emulator.HexInt, data ...byte) {
	p.m.Lock()
	defer p.m.Unlock()

	off := l.Translate(addr)
	for i, b := range data {
		p.mem[off+emulator.PhysicalOffset(i)] = b
	}
}

// SetState writes the stage and indicator bytes for the given status.
func (p *Process) SetState(l emulator.Layout, stage emulator.StageID, status emulator.Status) {
	p.Poke(l, l.Stage, byte(stage))
	switch status {
	case emulator.Menu:
		p.Poke(l, l.InGame, 0)
		p.Poke(l, l.Paused, 0)
	case emulator.Playing:
		p.Poke(l, l.InGame, 1)
		p.Poke(l, l.Paused, 0)
	case emulator.Paused:
		p.Poke(l, l.InGame, 1)
		p.Poke(l, l.Paused, byte(l.PausedSentinel))
	}
}

// Fail makes reads touching the logical address fail until cleared.
func (p *Process) Fail(l emulator.Layout, addr emulator.HexInt, fail bool) {
	p.m.Lock()
	defer p.m.Unlock()
	p.failAt[l.Translate(addr)] = fail
}

func (p *Process) read(offset emulator.PhysicalOffset, length int) ([]byte, error) {
	p.m.Lock()
	defer p.m.Unlock()

	out := make([]byte, length)
	for i := range out {
		off := offset + emulator.PhysicalOffset(i)
		if p.failAt[off] {
			return nil, errors.Wrap(emulator.ErrInvalidRead, "fake read").Uint64("offset", uint64(off))
		}
		out[i] = p.mem[off]
	}
	return out, nil
}

// System holds a set of fake processes.
type System struct {
	m       sync.Mutex
	procs   []*Process
	listErr error
	opened  int
	closed  int
}

func NewSystem(procs ...*Process) *System {
	return &System{procs: procs}
}

func (s *System) Add(p *Process) {
	s.m.Lock()
	defer s.m.Unlock()
	s.procs = append(s.procs, p)
}

// Remove drops the process, reads through handles to it start failing.
func (s *System) Remove(pid int) {
	s.m.Lock()
	defer s.m.Unlock()
	for i, p := range s.procs {
		if p.PID == pid {
			s.procs = append(s.procs[:i], s.procs[i+1:]...)
			return
		}
	}
}

func (s *System) SetListError(err error) {
	s.m.Lock()
	defer s.m.Unlock()
	s.listErr = err
}

// Opened and Closed count handles handed out and handles closed.
func (s *System) Opened() int {
	s.m.Lock()
	defer s.m.Unlock()
	return s.opened
}

func (s *System) Closed() int {
	s.m.Lock()
	defer s.m.Unlock()
	return s.closed
}

func (s *System) Processes() ([]emulator.ProcessInfo, error) {
	s.m.Lock()
	defer s.m.Unlock()

	if s.listErr != nil {
		return nil, s.listErr
	}

	out := make([]emulator.ProcessInfo, 0, len(s.procs))
	for _, p := range s.procs {
		out = append(out, emulator.ProcessInfo{PID: p.PID, Name: p.Name})
	}
	return out, nil
}

func (s *System) Open(pid int) (emulator.Handle, error) {
	s.m.Lock()
	defer s.m.Unlock()

	for _, p := range s.procs {
		if p.PID != pid {
			continue
		}
		if p.Denied {
			return nil, errors.New("operation not permitted").Int("pid", pid)
		}
		s.opened++
		return &handle{sys: s, pid: pid, proc: p}, nil
	}

	return nil, errors.New("no such process").Int("pid", pid)
}

func (s *System) alive(pid int) bool {
	s.m.Lock()
	defer s.m.Unlock()
	for _, p := range s.procs {
		if p.PID == pid {
			return true
		}
	}
	return false
}

type handle struct {
	sys    *System
	pid    int
	proc   *Process
	closed bool
}

func (h *handle) Read(offset emulator.PhysicalOffset, length int) ([]byte, error) {
	if h.closed {
		return nil, errors.Wrap(emulator.ErrInvalidRead, "handle closed")
	}
	if !h.sys.alive(h.pid) {
		return nil, errors.Wrap(emulator.ErrInvalidRead, "process exited").Int("pid", h.pid)
	}
	return h.proc.read(offset, length)
}

func (h *handle) Close() error {
	if h.closed {
		return nil
	}
	h.closed = true
	h.sys.m.Lock()
	h.sys.closed++
	h.sys.m.Unlock()
	return nil
}
