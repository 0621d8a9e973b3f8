package platform

import (
	"context"

	"markestedt/keyglyph/keys"
)

// Sampler reads the set of keys currently held down. It polls the global
// input state and never consumes or injects events.
type Sampler interface {
	Sample() (keys.Set, error)
	Close() error
}

// KeyCombo represents a keyboard key combination
type KeyCombo struct {
	Ctrl  bool
	Shift bool
	Alt   bool
	Win   bool
	Key   string // Lower-case key name, e.g. "k" or "f9"
}

// EventType represents the type of hotkey event
type EventType int

const (
	Pressed EventType = iota
	Released
)

// Event represents a hotkey event
type Event struct {
	Type EventType
}

// Hotkey provides global hotkey detection
type Hotkey interface {
	Listen(ctx context.Context, combo KeyCombo) (<-chan Event, error)
}
