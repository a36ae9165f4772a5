//go:build linux

package host

import (
	"StageDJ/emulator"

	"github.com/sirkon/errors"
	"golang.org/x/sys/unix"
)

type handle struct {
	pid int
}

// open probes the process with signal 0 so permission problems show up at
// open time rather than on the first read.
func open(pid int) (emulator.Handle, error) {
	if err := unix.Kill(pid, 0); err != nil {
		return nil, errors.Wrap(err, "probe process").Int("pid", pid)
	}
	return &handle{pid: pid}, nil
}

func (h *handle) Read(offset emulator.PhysicalOffset, length int) ([]byte, error) {
	if h.pid == 0 {
		return nil, errors.Wrap(emulator.ErrInvalidRead, "handle closed")
	}

	if length <= 0 {
		return nil, errors.Wrap(emulator.ErrInvalidRead, "empty read").Int("length", length)
	}

	buf := make([]byte, length)
	local := []unix.Iovec{{Base: &buf[0]}}
	local[0].SetLen(length)
	remote := []unix.RemoteIovec{{Base: uintptr(offset), Len: length}}

	n, err := unix.ProcessVMReadv(h.pid, local, remote, 0)
	if err != nil {
		return nil, errors.Wrap(emulator.ErrInvalidRead, "process_vm_readv").Int("pid", h.pid).Str("cause", err.Error())
	}
	if n != length {
		return nil, errors.Wrap(emulator.ErrInvalidRead, "short read").Int("want", length).Int("got", n)
	}

	return buf, nil
}

func (h *handle) Close() error {
	h.pid = 0
	return nil
}
