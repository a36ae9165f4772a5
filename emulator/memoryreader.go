package emulator

import "github.com/sirkon/errors"

type ConnectionStatus byte

const (
	Disconnected ConnectionStatus = 0
	Connected    ConnectionStatus = 1
	Reconnecting ConnectionStatus = 2
)

func (c ConnectionStatus) String() string {
	switch c {
	case Connected:
		return "connected"
	case Reconnecting:
		return "reconnecting"
	default:
		return "disconnected"
	}
}

const (
	// ErrNotFound no process with the emulator executable name is running.
	ErrNotFound errors.Const = "emulator process not found"
	// ErrAccessDenied the process exists but cannot be opened for reading.
	ErrAccessDenied errors.Const = "emulator process access denied"
	// ErrInvalidRead a single memory read failed. The handle should be dropped.
	ErrInvalidRead errors.Const = "invalid memory read"
)

type ProcessInfo struct {
	PID  int
	Name string
}

// System is the OS capability the engine needs: list processes and open one
// of them for reading.
type System interface {
	Processes() ([]ProcessInfo, error)
	Open(pid int) (Handle, error)
}

// Handle reads bytes from an opened process. It is owned by one session and
// must not be used after Close.
type Handle interface {
	Read(offset PhysicalOffset, length int) ([]byte, error)
	Close() error
}
