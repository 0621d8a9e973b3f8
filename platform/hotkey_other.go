//go:build !windows && !linux && !darwin

package platform

import (
	"context"
	"fmt"
	"runtime"
)

// unsupportedHotkey fails every registration
type unsupportedHotkey struct{}

// NewHotkey returns a listener that cannot register on this OS
func NewHotkey() Hotkey {
	return unsupportedHotkey{}
}

func (unsupportedHotkey) Listen(ctx context.Context, combo KeyCombo) (<-chan Event, error) {
	return nil, fmt.Errorf("global hotkeys are not supported on %s", runtime.GOOS)
}
