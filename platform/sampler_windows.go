//go:build windows

package platform

import (
	"fmt"

	"golang.org/x/sys/windows"

	"markestedt/keyglyph/keys"
)

var (
	user32           = windows.NewLazySystemDLL("user32.dll")
	getAsyncKeyState = user32.NewProc("GetAsyncKeyState")
)

const (
	vkFirst = 0x08
	vkLast  = 0xFE
)

// Side-less modifier codes duplicate the left/right ones
var vkSkip = map[uint16]bool{
	0x10: true, // VK_SHIFT
	0x11: true, // VK_CONTROL
	0x12: true, // VK_MENU
}

var vkKeys = map[uint16]keys.Key{
	0x08: keys.Backspace,
	0x09: keys.Tab,
	0x0D: keys.Enter,
	0x13: keys.Pause,
	0x14: keys.CapsLock,
	0x1B: keys.Escape,
	0x20: keys.Space,
	0x21: keys.PageUp,
	0x22: keys.PageDown,
	0x23: keys.End,
	0x24: keys.Home,
	0x25: keys.Left,
	0x26: keys.Up,
	0x27: keys.Right,
	0x28: keys.Down,
	0x2C: keys.PrintScreen,
	0x2D: keys.Insert,
	0x2E: keys.Delete,
	0x30: keys.Key0, 0x31: keys.Key1, 0x32: keys.Key2, 0x33: keys.Key3, 0x34: keys.Key4,
	0x35: keys.Key5, 0x36: keys.Key6, 0x37: keys.Key7, 0x38: keys.Key8, 0x39: keys.Key9,
	0x41: keys.A, 0x42: keys.B, 0x43: keys.C, 0x44: keys.D, 0x45: keys.E,
	0x46: keys.F, 0x47: keys.G, 0x48: keys.H, 0x49: keys.I, 0x4A: keys.J,
	0x4B: keys.K, 0x4C: keys.L, 0x4D: keys.M, 0x4E: keys.N, 0x4F: keys.O,
	0x50: keys.P, 0x51: keys.Q, 0x52: keys.R, 0x53: keys.S, 0x54: keys.T,
	0x55: keys.U, 0x56: keys.V, 0x57: keys.W, 0x58: keys.X, 0x59: keys.Y,
	0x5A: keys.Z,
	0x5B: keys.LMeta,
	0x5C: keys.RMeta,
	0x5D: keys.Menu,
	0x60: keys.Numpad0, 0x61: keys.Numpad1, 0x62: keys.Numpad2, 0x63: keys.Numpad3,
	0x64: keys.Numpad4, 0x65: keys.Numpad5, 0x66: keys.Numpad6, 0x67: keys.Numpad7,
	0x68: keys.Numpad8, 0x69: keys.Numpad9,
	0x6A: keys.NumpadMultiply,
	0x6B: keys.NumpadAdd,
	0x6D: keys.NumpadSubtract,
	0x6E: keys.NumpadDecimal,
	0x6F: keys.NumpadDivide,
	0x70: keys.F1, 0x71: keys.F2, 0x72: keys.F3, 0x73: keys.F4,
	0x74: keys.F5, 0x75: keys.F6, 0x76: keys.F7, 0x77: keys.F8,
	0x78: keys.F9, 0x79: keys.F10, 0x7A: keys.F11, 0x7B: keys.F12,
	0x90: keys.NumLock,
	0x91: keys.ScrollLock,
	0xA0: keys.LShift,
	0xA1: keys.RShift,
	0xA2: keys.LControl,
	0xA3: keys.RControl,
	0xA4: keys.LAlt,
	0xA5: keys.RAlt,
	0xBA: keys.Semicolon,
	0xBB: keys.Equal,
	0xBC: keys.Comma,
	0xBD: keys.Minus,
	0xBE: keys.Dot,
	0xBF: keys.Slash,
	0xC0: keys.Grave,
	0xDB: keys.LeftBracket,
	0xDC: keys.BackSlash,
	0xDD: keys.RightBracket,
	0xDE: keys.Apostrophe,
}

// WindowsSampler polls GetAsyncKeyState for every virtual key
type WindowsSampler struct{}

// NewSampler creates a new Windows keyboard sampler
func NewSampler() (Sampler, error) {
	if err := getAsyncKeyState.Find(); err != nil {
		return nil, fmt.Errorf("failed to load GetAsyncKeyState: %w", err)
	}
	return &WindowsSampler{}, nil
}

// Sample returns the keys whose high-order "down" bit is set
func (s *WindowsSampler) Sample() (keys.Set, error) {
	var down []keys.Key
	for vk := uint16(vkFirst); vk <= vkLast; vk++ {
		if vkSkip[vk] {
			continue
		}
		r, _, _ := getAsyncKeyState.Call(uintptr(vk))
		if r&0x8000 == 0 {
			continue
		}
		down = append(down, vkName(vk))
	}
	return keys.NewSet(down...), nil
}

// Close is a no-op; user32 stays loaded for the process lifetime
func (s *WindowsSampler) Close() error {
	return nil
}

func vkName(vk uint16) keys.Key {
	if k, ok := vkKeys[vk]; ok {
		return k
	}
	return keys.Key(fmt.Sprintf("VK_%02X", vk))
}
