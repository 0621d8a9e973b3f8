package dispatch

// EventType is the kind of key-state transition
type EventType string

const (
	Press   EventType = "press"
	Release EventType = "release"
)

// KeyEvent is one key transition as shown to the overlay
type KeyEvent struct {
	Key       string    `json:"key"`
	EventType EventType `json:"event_type"`
}

// ModifierState tracks the case context for letter glyphs
type ModifierState struct {
	ShiftHeld  bool
	CapsLockOn bool
}

// Uppercase reports whether letters should be shown in upper case
func (m ModifierState) Uppercase() bool {
	return m.ShiftHeld || m.CapsLockOn
}
