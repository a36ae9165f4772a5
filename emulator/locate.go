package emulator

import "github.com/sirkon/errors"

// DefaultProcessName is the Dolphin executable name on Windows.
const DefaultProcessName = "Dolphin.exe"

type Locator struct {
	System System
	Name   string
}

func NewLocator(system System, name string) *Locator {
	if name == "" {
		name = DefaultProcessName
	}
	return &Locator{System: system, Name: name}
}

// Locate finds the first process named exactly l.Name and opens it for
// reading. It does not retry.
func (l *Locator) Locate() (Handle, error) {
	procs, err := l.System.Processes()
	if err != nil {
		return nil, errors.Wrap(ErrNotFound, "list processes").Str("cause", err.Error())
	}

	for _, p := range procs {
		if p.Name != l.Name {
			continue
		}

		h, err := l.System.Open(p.PID)
		if err != nil {
			return nil, errors.Wrap(ErrAccessDenied, "open process").Int("pid", p.PID).Str("cause", err.Error())
		}
		return h, nil
	}

	return nil, errors.Wrap(ErrNotFound, "locate").Str("name", l.Name)
}
