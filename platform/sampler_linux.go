//go:build linux

package platform

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/holoplot/go-evdev"

	"markestedt/keyglyph/keys"
)

// NewSampler creates a keyboard sampler for Linux. The X11 keymap is used
// when a display is reachable; otherwise every evdev keyboard is polled.
func NewSampler() (Sampler, error) {
	x, xerr := newX11Sampler()
	if xerr == nil {
		slog.Info("Sampling keyboard through X11")
		return x, nil
	}
	slog.Warn("X11 unavailable, falling back to evdev", "error", xerr)

	e, err := newEvdevSampler()
	if err != nil {
		return nil, fmt.Errorf("failed to create keyboard sampler: %w", errors.Join(xerr, err))
	}
	slog.Info("Sampling keyboard through evdev", "devices", len(e.devices))
	return e, nil
}

// X11Sampler reads the server-wide keymap with QueryKeymap
type X11Sampler struct {
	conn *xgb.Conn
}

func newX11Sampler() (*X11Sampler, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X server: %w", err)
	}
	return &X11Sampler{conn: conn}, nil
}

// Sample returns the keys whose bit is set in the X keymap
func (s *X11Sampler) Sample() (keys.Set, error) {
	reply, err := xproto.QueryKeymap(s.conn).Reply()
	if err != nil {
		return keys.Set{}, fmt.Errorf("failed to query keymap: %w", err)
	}
	return keys.NewSet(keymapKeys(reply.Keys)...), nil
}

// Close closes the X connection
func (s *X11Sampler) Close() error {
	s.conn.Close()
	return nil
}

// keymapKeys decodes an X keymap bit vector; bit n is X keycode n
func keymapKeys(bits []byte) []keys.Key {
	var down []keys.Key
	for i, b := range bits {
		if b == 0 {
			continue
		}
		for bit := 0; bit < 8; bit++ {
			if b&(1<<bit) == 0 {
				continue
			}
			code := i*8 + bit
			if code < x11KeycodeOffset {
				continue
			}
			down = append(down, evdevName(evdev.EvCode(code-x11KeycodeOffset)))
		}
	}
	return down
}

// EvdevSampler merges the key state of every keyboard under /dev/input
type EvdevSampler struct {
	devices []*evdev.InputDevice
}

func newEvdevSampler() (*EvdevSampler, error) {
	paths, err := evdev.ListDevicePaths()
	if err != nil {
		return nil, fmt.Errorf("failed to list input devices: %w", err)
	}

	s := &EvdevSampler{}
	for _, p := range paths {
		dev, err := evdev.Open(p.Path)
		if err != nil {
			slog.Debug("Skipping input device", "path", p.Path, "error", err)
			continue
		}
		if !isKeyboard(dev) {
			dev.Close()
			continue
		}
		slog.Debug("Polling keyboard", "name", p.Name, "path", p.Path)
		s.devices = append(s.devices, dev)
	}

	if len(s.devices) == 0 {
		return nil, errors.New("no readable keyboard in /dev/input (try adding the user to the 'input' group)")
	}
	return s, nil
}

func isKeyboard(dev *evdev.InputDevice) bool {
	for _, code := range dev.CapableEvents(evdev.EV_KEY) {
		if code == evdev.KEY_A {
			return true
		}
	}
	return false
}

// Sample returns the union of keys held on every keyboard. A device that
// fails to report is left out; the sample fails only if all of them do.
func (s *EvdevSampler) Sample() (keys.Set, error) {
	var down []keys.Key
	var errs []error
	for _, dev := range s.devices {
		state, err := dev.State(evdev.EV_KEY)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		for code, pressed := range state {
			if pressed {
				down = append(down, evdevName(code))
			}
		}
	}
	if len(errs) == len(s.devices) {
		return keys.Set{}, fmt.Errorf("failed to read key state: %w", errors.Join(errs...))
	}
	return keys.NewSet(down...), nil
}

// Close closes every opened device
func (s *EvdevSampler) Close() error {
	var errs []error
	for _, dev := range s.devices {
		if err := dev.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
