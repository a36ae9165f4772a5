//go:build !linux && !windows

package host

import (
	"runtime"

	"StageDJ/emulator"

	"github.com/sirkon/errors"
)

func open(pid int) (emulator.Handle, error) {
	return nil, errors.New("process memory reads are not supported on this platform").Str("goos", runtime.GOOS).Int("pid", pid)
}
