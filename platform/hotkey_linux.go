//go:build linux

package platform

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"

	"markestedt/keyglyph/keys"
)

// Lock states that must not stop the hotkey from firing: Caps Lock and
// Num Lock (Mod2 on most X servers)
var ignoredMasks = []uint16{
	0,
	xproto.ModMaskLock,
	xproto.ModMask2,
	xproto.ModMaskLock | xproto.ModMask2,
}

// X11Hotkey grabs a key combination on the root window of the X display.
// Without a display Listen fails and the agent runs without a hotkey.
type X11Hotkey struct{}

// NewHotkey creates a new global hotkey listener
func NewHotkey() Hotkey {
	return &X11Hotkey{}
}

// Listen grabs combo and reports its presses until ctx is cancelled
func (h *X11Hotkey) Listen(ctx context.Context, combo KeyCombo) (<-chan Event, error) {
	code, err := hotkeyKeycode(combo.Key)
	if err != nil {
		return nil, err
	}
	mods := hotkeyModMask(combo)

	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X server: %w", err)
	}
	root := xproto.Setup(conn).DefaultScreen(conn).Root

	for _, extra := range ignoredMasks {
		err := xproto.GrabKeyChecked(conn, true, root, mods|extra, code,
			xproto.GrabModeAsync, xproto.GrabModeAsync).Check()
		if err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to register hotkey: %w", err)
		}
	}

	// Closing the connection ends WaitForEvent with (nil, nil)
	go func() {
		<-ctx.Done()
		xproto.UngrabKey(conn, code, root, xproto.ModMaskAny)
		conn.Close()
	}()

	events := make(chan Event, 10)
	go func() {
		for {
			ev, xerr := conn.WaitForEvent()
			if ev == nil && xerr == nil {
				return
			}
			if xerr != nil {
				slog.Debug("X error while waiting for hotkey", "error", xerr)
				continue
			}

			var e Event
			switch ev := ev.(type) {
			case xproto.KeyPressEvent:
				if ev.Detail != code {
					continue
				}
				e.Type = Pressed
			case xproto.KeyReleaseEvent:
				if ev.Detail != code {
					continue
				}
				e.Type = Released
			default:
				continue
			}

			select {
			case events <- e:
			default:
			}
		}
	}()

	return events, nil
}

// hotkeyKeycode returns the X keycode of a combo key such as "k", "7",
// "f5" or "space"
func hotkeyKeycode(name string) (xproto.Keycode, error) {
	if name != "" {
		for code, k := range evdevKeys {
			if strings.EqualFold(keys.Glyph(k, false), name) {
				return xproto.Keycode(int(code) + x11KeycodeOffset), nil
			}
		}
	}
	return 0, fmt.Errorf("unsupported hotkey key: %q", name)
}

// hotkeyModMask converts the combo modifiers to an X modifier mask.
// Alt is Mod1 and Super is Mod4 on X11.
func hotkeyModMask(combo KeyCombo) uint16 {
	var mask uint16
	if combo.Ctrl {
		mask |= xproto.ModMaskControl
	}
	if combo.Shift {
		mask |= xproto.ModMaskShift
	}
	if combo.Alt {
		mask |= xproto.ModMask1
	}
	if combo.Win {
		mask |= xproto.ModMask4
	}
	return mask
}

