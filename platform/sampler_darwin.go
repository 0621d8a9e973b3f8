//go:build darwin

package platform

/*
#cgo LDFLAGS: -framework CoreGraphics

#include <CoreGraphics/CoreGraphics.h>

static int keyDown(int code) {
    return CGEventSourceKeyState(kCGEventSourceStateCombinedSessionState, (CGKeyCode)code) ? 1 : 0;
}
*/
import "C"

import (
	"fmt"

	"markestedt/keyglyph/keys"
)

// Virtual key codes 0..127 cover every key on Apple keyboards
const darwinMaxKeycode = 127

// Command and Option are reported under their platform names
var darwinKeys = map[int]keys.Key{
	0: keys.A, 1: keys.S, 2: keys.D, 3: keys.F, 4: keys.H, 5: keys.G,
	6: keys.Z, 7: keys.X, 8: keys.C, 9: keys.V, 11: keys.B, 12: keys.Q,
	13: keys.W, 14: keys.E, 15: keys.R, 16: keys.Y, 17: keys.T,
	18: keys.Key1, 19: keys.Key2, 20: keys.Key3, 21: keys.Key4, 22: keys.Key6,
	23: keys.Key5, 24: keys.Equal, 25: keys.Key9, 26: keys.Key7, 27: keys.Minus,
	28: keys.Key8, 29: keys.Key0, 30: keys.RightBracket, 31: keys.O, 32: keys.U,
	33: keys.LeftBracket, 34: keys.I, 35: keys.P, 36: keys.Enter, 37: keys.L,
	38: keys.J, 39: keys.Apostrophe, 40: keys.K, 41: keys.Semicolon,
	42: keys.BackSlash, 43: keys.Comma, 44: keys.Slash, 45: keys.N, 46: keys.M,
	47: keys.Dot, 48: keys.Tab, 49: keys.Space, 50: keys.Grave,
	51: keys.Backspace, 53: keys.Escape,
	54: keys.RCommand,
	55: keys.LCommand,
	56: keys.LShift,
	57: keys.CapsLock,
	58: keys.LOption,
	59: keys.LControl,
	60: keys.RShift,
	61: keys.ROption,
	62: keys.RControl,
	63: keys.Function,
	65: keys.NumpadDecimal,
	67: keys.NumpadMultiply,
	69: keys.NumpadAdd,
	71: keys.NumLock, // Clear
	75: keys.NumpadDivide,
	76: keys.NumpadEnter,
	78: keys.NumpadSubtract,
	81: keys.NumpadEquals,
	82: keys.Numpad0, 83: keys.Numpad1, 84: keys.Numpad2, 85: keys.Numpad3,
	86: keys.Numpad4, 87: keys.Numpad5, 88: keys.Numpad6, 89: keys.Numpad7,
	91: keys.Numpad8, 92: keys.Numpad9,
	96: keys.F5, 97: keys.F6, 98: keys.F7, 99: keys.F3, 100: keys.F8,
	101: keys.F9, 103: keys.F11, 109: keys.F10, 111: keys.F12,
	114: keys.Insert, // Help
	115: keys.Home,
	116: keys.PageUp,
	117: keys.Delete,
	118: keys.F4,
	119: keys.End,
	120: keys.F2,
	121: keys.PageDown,
	122: keys.F1,
	123: keys.Left,
	124: keys.Right,
	125: keys.Down,
	126: keys.Up,
}

// DarwinSampler polls CGEventSourceKeyState. It needs the Input
// Monitoring permission; without it every key reads as up.
type DarwinSampler struct{}

// NewSampler creates a new macOS keyboard sampler
func NewSampler() (Sampler, error) {
	return &DarwinSampler{}, nil
}

// Sample returns every virtual key currently down
func (s *DarwinSampler) Sample() (keys.Set, error) {
	var down []keys.Key
	for code := 0; code <= darwinMaxKeycode; code++ {
		if C.keyDown(C.int(code)) == 0 {
			continue
		}
		down = append(down, darwinName(code))
	}
	return keys.NewSet(down...), nil
}

// Close is a no-op
func (s *DarwinSampler) Close() error {
	return nil
}

func darwinName(code int) keys.Key {
	if k, ok := darwinKeys[code]; ok {
		return k
	}
	return keys.Key(fmt.Sprintf("KC_%d", code))
}
