// Package host gives the engine read access to processes on the local
// machine.
package host

import (
	"StageDJ/emulator"

	"github.com/shirou/gopsutil/v4/process"
	"github.com/sirkon/errors"
)

type System struct{}

func New() *System {
	return &System{}
}

// Processes lists running processes. Processes whose name cannot be read are
// skipped, they are usually ones we could not open anyway.
func (s *System) Processes() ([]emulator.ProcessInfo, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, errors.Wrap(err, "enumerate processes")
	}

	out := make([]emulator.ProcessInfo, 0, len(procs))
	for _, p := range procs {
		name, err := p.Name()
		if err != nil {
			continue
		}
		out = append(out, emulator.ProcessInfo{PID: int(p.Pid), Name: name})
	}

	return out, nil
}

func (s *System) Open(pid int) (emulator.Handle, error) {
	return open(pid)
}
