//go:build linux

package platform

import (
	"fmt"

	"github.com/holoplot/go-evdev"

	"markestedt/keyglyph/keys"
)

// X11 keycodes are evdev codes shifted by this offset
const x11KeycodeOffset = 8

var evdevKeys = map[evdev.EvCode]keys.Key{
	evdev.KEY_ESC:       keys.Escape,
	evdev.KEY_1:         keys.Key1,
	evdev.KEY_2:         keys.Key2,
	evdev.KEY_3:         keys.Key3,
	evdev.KEY_4:         keys.Key4,
	evdev.KEY_5:         keys.Key5,
	evdev.KEY_6:         keys.Key6,
	evdev.KEY_7:         keys.Key7,
	evdev.KEY_8:         keys.Key8,
	evdev.KEY_9:         keys.Key9,
	evdev.KEY_0:         keys.Key0,
	evdev.KEY_MINUS:     keys.Minus,
	evdev.KEY_EQUAL:     keys.Equal,
	evdev.KEY_BACKSPACE: keys.Backspace,
	evdev.KEY_TAB:       keys.Tab,

	evdev.KEY_Q: keys.Q, evdev.KEY_W: keys.W, evdev.KEY_E: keys.E, evdev.KEY_R: keys.R,
	evdev.KEY_T: keys.T, evdev.KEY_Y: keys.Y, evdev.KEY_U: keys.U, evdev.KEY_I: keys.I,
	evdev.KEY_O: keys.O, evdev.KEY_P: keys.P,
	evdev.KEY_A: keys.A, evdev.KEY_S: keys.S, evdev.KEY_D: keys.D, evdev.KEY_F: keys.F,
	evdev.KEY_G: keys.G, evdev.KEY_H: keys.H, evdev.KEY_J: keys.J, evdev.KEY_K: keys.K,
	evdev.KEY_L: keys.L,
	evdev.KEY_Z: keys.Z, evdev.KEY_X: keys.X, evdev.KEY_C: keys.C, evdev.KEY_V: keys.V,
	evdev.KEY_B: keys.B, evdev.KEY_N: keys.N, evdev.KEY_M: keys.M,

	evdev.KEY_LEFTBRACE:  keys.LeftBracket,
	evdev.KEY_RIGHTBRACE: keys.RightBracket,
	evdev.KEY_ENTER:      keys.Enter,
	evdev.KEY_LEFTCTRL:   keys.LControl,
	evdev.KEY_SEMICOLON:  keys.Semicolon,
	evdev.KEY_APOSTROPHE: keys.Apostrophe,
	evdev.KEY_GRAVE:      keys.Grave,
	evdev.KEY_LEFTSHIFT:  keys.LShift,
	evdev.KEY_BACKSLASH:  keys.BackSlash,
	evdev.KEY_COMMA:      keys.Comma,
	evdev.KEY_DOT:        keys.Dot,
	evdev.KEY_SLASH:      keys.Slash,
	evdev.KEY_RIGHTSHIFT: keys.RShift,
	evdev.KEY_KPASTERISK: keys.NumpadMultiply,
	evdev.KEY_LEFTALT:    keys.LAlt,
	evdev.KEY_SPACE:      keys.Space,
	evdev.KEY_CAPSLOCK:   keys.CapsLock,

	evdev.KEY_F1: keys.F1, evdev.KEY_F2: keys.F2, evdev.KEY_F3: keys.F3, evdev.KEY_F4: keys.F4,
	evdev.KEY_F5: keys.F5, evdev.KEY_F6: keys.F6, evdev.KEY_F7: keys.F7, evdev.KEY_F8: keys.F8,
	evdev.KEY_F9: keys.F9, evdev.KEY_F10: keys.F10, evdev.KEY_F11: keys.F11, evdev.KEY_F12: keys.F12,

	evdev.KEY_NUMLOCK:    keys.NumLock,
	evdev.KEY_SCROLLLOCK: keys.ScrollLock,
	evdev.KEY_KP0:        keys.Numpad0,
	evdev.KEY_KP1:        keys.Numpad1,
	evdev.KEY_KP2:        keys.Numpad2,
	evdev.KEY_KP3:        keys.Numpad3,
	evdev.KEY_KP4:        keys.Numpad4,
	evdev.KEY_KP5:        keys.Numpad5,
	evdev.KEY_KP6:        keys.Numpad6,
	evdev.KEY_KP7:        keys.Numpad7,
	evdev.KEY_KP8:        keys.Numpad8,
	evdev.KEY_KP9:        keys.Numpad9,
	evdev.KEY_KPMINUS:    keys.NumpadSubtract,
	evdev.KEY_KPPLUS:     keys.NumpadAdd,
	evdev.KEY_KPDOT:      keys.NumpadDecimal,
	evdev.KEY_KPENTER:    keys.NumpadEnter,
	evdev.KEY_KPSLASH:    keys.NumpadDivide,
	evdev.KEY_RIGHTCTRL:  keys.RControl,
	evdev.KEY_SYSRQ:      keys.PrintScreen,
	evdev.KEY_RIGHTALT:   keys.RAlt,
	evdev.KEY_HOME:       keys.Home,
	evdev.KEY_UP:         keys.Up,
	evdev.KEY_PAGEUP:     keys.PageUp,
	evdev.KEY_LEFT:       keys.Left,
	evdev.KEY_RIGHT:      keys.Right,
	evdev.KEY_END:        keys.End,
	evdev.KEY_DOWN:       keys.Down,
	evdev.KEY_PAGEDOWN:   keys.PageDown,
	evdev.KEY_INSERT:     keys.Insert,
	evdev.KEY_DELETE:     keys.Delete,
	evdev.KEY_PAUSE:      keys.Pause,
	evdev.KEY_LEFTMETA:   keys.LMeta,
	evdev.KEY_RIGHTMETA:  keys.RMeta,
	evdev.KEY_COMPOSE:    keys.Menu,
}

// evdevName translates an evdev key code to a key identifier
func evdevName(code evdev.EvCode) keys.Key {
	if k, ok := evdevKeys[code]; ok {
		return k
	}
	return keys.Key(fmt.Sprintf("KEY_%d", code))
}
