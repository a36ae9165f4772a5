//go:build windows

package host

import (
	"StageDJ/emulator"

	"github.com/sirkon/errors"
	"golang.org/x/sys/windows"
)

type handle struct {
	h windows.Handle
}

func open(pid int) (emulator.Handle, error) {
	h, err := windows.OpenProcess(windows.PROCESS_VM_READ|windows.PROCESS_QUERY_LIMITED_INFORMATION, false, uint32(pid))
	if err != nil {
		return nil, errors.Wrap(err, "open process").Int("pid", pid)
	}
	return &handle{h: h}, nil
}

func (h *handle) Read(offset emulator.PhysicalOffset, length int) ([]byte, error) {
	if h.h == 0 {
		return nil, errors.Wrap(emulator.ErrInvalidRead, "handle closed")
	}
	if length <= 0 {
		return nil, errors.Wrap(emulator.ErrInvalidRead, "empty read").Int("length", length)
	}

	buf := make([]byte, length)
	var n uintptr
	err := windows.ReadProcessMemory(h.h, uintptr(offset), &buf[0], uintptr(length), &n)
	if err != nil {
		return nil, errors.Wrap(emulator.ErrInvalidRead, "ReadProcessMemory").Uint64("offset", uint64(offset)).Str("cause", err.Error())
	}
	if int(n) != length {
		return nil, errors.Wrap(emulator.ErrInvalidRead, "short read").Int("want", length).Int("got", int(n))
	}

	return buf, nil
}

func (h *handle) Close() error {
	if h.h == 0 {
		return nil
	}
	err := windows.CloseHandle(h.h)
	h.h = 0
	return err
}
