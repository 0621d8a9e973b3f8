//go:build windows || darwin

package platform

import (
	"context"
	"fmt"
	"log/slog"

	"golang.design/x/hotkey"
)

// modifier names a side-less modifier independent of the OS
type modifier int

const (
	modCtrl modifier = iota
	modShift
	modAlt
	modSuper
)

var hotkeyKeys = map[string]hotkey.Key{
	"a": hotkey.KeyA, "b": hotkey.KeyB, "c": hotkey.KeyC, "d": hotkey.KeyD,
	"e": hotkey.KeyE, "f": hotkey.KeyF, "g": hotkey.KeyG, "h": hotkey.KeyH,
	"i": hotkey.KeyI, "j": hotkey.KeyJ, "k": hotkey.KeyK, "l": hotkey.KeyL,
	"m": hotkey.KeyM, "n": hotkey.KeyN, "o": hotkey.KeyO, "p": hotkey.KeyP,
	"q": hotkey.KeyQ, "r": hotkey.KeyR, "s": hotkey.KeyS, "t": hotkey.KeyT,
	"u": hotkey.KeyU, "v": hotkey.KeyV, "w": hotkey.KeyW, "x": hotkey.KeyX,
	"y": hotkey.KeyY, "z": hotkey.KeyZ,
	"0": hotkey.Key0, "1": hotkey.Key1, "2": hotkey.Key2, "3": hotkey.Key3,
	"4": hotkey.Key4, "5": hotkey.Key5, "6": hotkey.Key6, "7": hotkey.Key7,
	"8": hotkey.Key8, "9": hotkey.Key9,
	"f1": hotkey.KeyF1, "f2": hotkey.KeyF2, "f3": hotkey.KeyF3, "f4": hotkey.KeyF4,
	"f5": hotkey.KeyF5, "f6": hotkey.KeyF6, "f7": hotkey.KeyF7, "f8": hotkey.KeyF8,
	"f9": hotkey.KeyF9, "f10": hotkey.KeyF10, "f11": hotkey.KeyF11, "f12": hotkey.KeyF12,
	"space": hotkey.KeySpace,
}

// GlobalHotkey registers a system-wide hotkey
type GlobalHotkey struct{}

// NewHotkey creates a new global hotkey listener
func NewHotkey() Hotkey {
	return &GlobalHotkey{}
}

// Listen registers combo and reports its presses until ctx is cancelled
func (h *GlobalHotkey) Listen(ctx context.Context, combo KeyCombo) (<-chan Event, error) {
	key, ok := hotkeyKeys[combo.Key]
	if !ok {
		return nil, fmt.Errorf("unsupported hotkey key: %q", combo.Key)
	}

	var mods []hotkey.Modifier
	if combo.Ctrl {
		mods = append(mods, modifierMap[modCtrl])
	}
	if combo.Shift {
		mods = append(mods, modifierMap[modShift])
	}
	if combo.Alt {
		mods = append(mods, modifierMap[modAlt])
	}
	if combo.Win {
		mods = append(mods, modifierMap[modSuper])
	}

	hk := hotkey.New(mods, key)
	if err := hk.Register(); err != nil {
		return nil, fmt.Errorf("failed to register hotkey: %w", err)
	}

	events := make(chan Event, 10)
	go func() {
		defer func() {
			if err := hk.Unregister(); err != nil {
				slog.Warn("Failed to unregister hotkey", "error", err)
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case <-hk.Keydown():
				select {
				case events <- Event{Type: Pressed}:
				default:
				}
			case <-hk.Keyup():
				select {
				case events <- Event{Type: Released}:
				default:
				}
			}
		}
	}()

	return events, nil
}
