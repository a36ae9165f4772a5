package processing

import (
	"sync"

	"StageDJ/emulator"

	"github.com/sirkon/errors"
	"github.com/sirkon/message"
	lua "github.com/yuin/gopher-lua"
)

// Observer is told about connection changes and every detected event.
type Observer interface {
	Connection(status emulator.ConnectionStatus, msg string)
	Event(e Event)
}

// Hooks runs a user Lua script on events. The script may define any of
// gameJoin(stage), gameLeave(), gamePause(), gameResume() and
// connection(status, message). Missing functions are skipped.
type Hooks struct {
	L          *lua.LState
	m          sync.Mutex
	gameJoin   *lua.LFunction
	gameLeave  *lua.LFunction
	gamePause  *lua.LFunction
	gameResume *lua.LFunction
	connection *lua.LFunction
}

func NewHooks() *Hooks {
	h := &Hooks{L: lua.NewState()}

	h.L.SetGlobal("log", h.L.NewFunction(func(L *lua.LState) int {
		message.Info("lua: " + L.CheckString(1))
		return 0
	}))

	return h
}

func (h *Hooks) Close() {
	h.m.Lock()
	defer h.m.Unlock()
	if h.L != nil {
		h.L.Close()
		h.L = nil
	}
}

func (h *Hooks) LoadFile(path string) error {
	h.m.Lock()
	defer h.m.Unlock()

	if err := h.L.DoFile(path); err != nil {
		return errors.Wrap(err, "load hooks").Str("path", path)
	}
	h.cacheCallbacks()
	return nil
}

func (h *Hooks) LoadString(src string) error {
	h.m.Lock()
	defer h.m.Unlock()

	if err := h.L.DoString(src); err != nil {
		return errors.Wrap(err, "load hooks")
	}
	h.cacheCallbacks()
	return nil
}

func (h *Hooks) Event(e Event) {
	switch ev := e.(type) {
	case GameJoin:
		h.call("gameJoin", h.gameJoin, lua.LNumber(ev.Info.Stage))
	case GameLeave:
		h.call("gameLeave", h.gameLeave)
	case GamePause:
		h.call("gamePause", h.gamePause)
	case GameResume:
		h.call("gameResume", h.gameResume)
	}
}

func (h *Hooks) Connection(status emulator.ConnectionStatus, msg string) {
	h.call("connection", h.connection, lua.LString(status.String()), lua.LString(msg))
}

func (h *Hooks) call(name string, fn *lua.LFunction, args ...lua.LValue) {
	if fn == nil {
		return
	}

	h.m.Lock()
	defer h.m.Unlock()
	if h.L == nil {
		return
	}

	err := h.L.CallByParam(lua.P{
		Fn:      fn,
		NRet:    0,
		Protect: true,
	}, args...)
	if err != nil {
		message.Errorf("lua %s: %s", name, err)
	}
}

func (h *Hooks) cacheCallbacks() {
	h.gameJoin = asFunc(h.L.GetGlobal("gameJoin"))
	h.gameLeave = asFunc(h.L.GetGlobal("gameLeave"))
	h.gamePause = asFunc(h.L.GetGlobal("gamePause"))
	h.gameResume = asFunc(h.L.GetGlobal("gameResume"))
	h.connection = asFunc(h.L.GetGlobal("connection"))
}

func asFunc(v lua.LValue) *lua.LFunction {
	if v == lua.LNil {
		return nil
	}
	if f, ok := v.(*lua.LFunction); ok {
		return f
	}
	return nil
}
