package keys

import (
	"sort"
	"strings"
)

// Key is a raw key identifier reported by a sampler, e.g. "LShift", "A" or
// "Numpad0". Identity is case-insensitive.
type Key string

// Modifiers
const (
	LAlt     Key = "LAlt"
	RAlt     Key = "RAlt"
	LShift   Key = "LShift"
	RShift   Key = "RShift"
	LControl Key = "LControl"
	RControl Key = "RControl"
	LMeta    Key = "LMeta"
	RMeta    Key = "RMeta"
	CapsLock Key = "CapsLock"

	// Platform names for the macOS modifier keys
	LCommand Key = "LCommand"
	RCommand Key = "RCommand"
	LOption  Key = "LOption"
	ROption  Key = "ROption"
)

// Function keys
const (
	F1  Key = "F1"
	F2  Key = "F2"
	F3  Key = "F3"
	F4  Key = "F4"
	F5  Key = "F5"
	F6  Key = "F6"
	F7  Key = "F7"
	F8  Key = "F8"
	F9  Key = "F9"
	F10 Key = "F10"
	F11 Key = "F11"
	F12 Key = "F12"
)

// Navigation and editing
const (
	Up        Key = "Up"
	Down      Key = "Down"
	Left      Key = "Left"
	Right     Key = "Right"
	Home      Key = "Home"
	End       Key = "End"
	PageUp    Key = "PageUp"
	PageDown  Key = "PageDown"
	Space     Key = "Space"
	Tab       Key = "Tab"
	Enter     Key = "Enter"
	Escape    Key = "Escape"
	Backspace Key = "Backspace"
	Delete    Key = "Delete"
	Insert    Key = "Insert"
)

// Letters
const (
	A Key = "A"
	B Key = "B"
	C Key = "C"
	D Key = "D"
	E Key = "E"
	F Key = "F"
	G Key = "G"
	H Key = "H"
	I Key = "I"
	J Key = "J"
	K Key = "K"
	L Key = "L"
	M Key = "M"
	N Key = "N"
	O Key = "O"
	P Key = "P"
	Q Key = "Q"
	R Key = "R"
	S Key = "S"
	T Key = "T"
	U Key = "U"
	V Key = "V"
	W Key = "W"
	X Key = "X"
	Y Key = "Y"
	Z Key = "Z"
)

// Top-row digits and punctuation
const (
	Key0         Key = "Key0"
	Key1         Key = "Key1"
	Key2         Key = "Key2"
	Key3         Key = "Key3"
	Key4         Key = "Key4"
	Key5         Key = "Key5"
	Key6         Key = "Key6"
	Key7         Key = "Key7"
	Key8         Key = "Key8"
	Key9         Key = "Key9"
	Minus        Key = "Minus"
	Equal        Key = "Equal"
	LeftBracket  Key = "LeftBracket"
	RightBracket Key = "RightBracket"
	BackSlash    Key = "BackSlash"
	Semicolon    Key = "Semicolon"
	Apostrophe   Key = "Apostrophe"
	Comma        Key = "Comma"
	Dot          Key = "Dot"
	Slash        Key = "Slash"
	Grave        Key = "Grave"
)

// Numpad
const (
	Numpad0        Key = "Numpad0"
	Numpad1        Key = "Numpad1"
	Numpad2        Key = "Numpad2"
	Numpad3        Key = "Numpad3"
	Numpad4        Key = "Numpad4"
	Numpad5        Key = "Numpad5"
	Numpad6        Key = "Numpad6"
	Numpad7        Key = "Numpad7"
	Numpad8        Key = "Numpad8"
	Numpad9        Key = "Numpad9"
	NumpadSubtract Key = "NumpadSubtract"
	NumpadAdd      Key = "NumpadAdd"
	NumpadMultiply Key = "NumpadMultiply"
	NumpadDivide   Key = "NumpadDivide"
	NumpadEnter    Key = "NumpadEnter"
	NumpadDecimal  Key = "NumpadDecimal"
	NumpadEquals   Key = "NumpadEquals"
)

// Keys without a dedicated glyph; they display as their identifier.
const (
	NumLock     Key = "NumLock"
	ScrollLock  Key = "ScrollLock"
	PrintScreen Key = "PrintScreen"
	Pause       Key = "Pause"
	Menu        Key = "Menu"
	Function    Key = "Function"
)

// norm returns the case-folded identity of k.
func (k Key) norm() string {
	return strings.ToLower(string(k))
}

// Equal reports whether k and other name the same key.
func (k Key) Equal(other Key) bool {
	return strings.EqualFold(string(k), string(other))
}

// IsShift reports whether k is either shift key.
func IsShift(k Key) bool {
	switch k.norm() {
	case "lshift", "rshift", "shift":
		return true
	}
	return false
}

// IsCapsLock reports whether k is the caps-lock key.
func IsCapsLock(k Key) bool {
	return k.norm() == "capslock"
}

// IsModifier reports whether k maps to one of the held-modifier glyphs.
func IsModifier(k Key) bool {
	g, ok := lookup(k)
	if !ok {
		return false
	}
	for _, m := range modifierOrder {
		if g == m {
			return true
		}
	}
	return g == glyphCapsLock
}

// Set is a KeySet: the keys held down at one instant. A Set is never
// modified after NewSet returns it.
type Set struct {
	m map[string]Key
}

// NewSet builds a Set from ks. Duplicates differing only in case collapse
// to the first occurrence.
func NewSet(ks ...Key) Set {
	m := make(map[string]Key, len(ks))
	for _, k := range ks {
		n := k.norm()
		if _, ok := m[n]; !ok {
			m[n] = k
		}
	}
	return Set{m: m}
}

// Has reports whether k is in the set.
func (s Set) Has(k Key) bool {
	_, ok := s.m[k.norm()]
	return ok
}

// Len returns the number of keys in the set.
func (s Set) Len() int {
	return len(s.m)
}

// HasShift reports whether either shift key is held.
func (s Set) HasShift() bool {
	for _, k := range s.m {
		if IsShift(k) {
			return true
		}
	}
	return false
}

// Difference returns the keys in s that are not in other, in display order.
func (s Set) Difference(other Set) []Key {
	var out []Key
	for n, k := range s.m {
		if _, ok := other.m[n]; !ok {
			out = append(out, k)
		}
	}
	sortKeys(out)
	return out
}

// Sorted returns every key in the set in display order.
func (s Set) Sorted() []Key {
	out := make([]Key, 0, len(s.m))
	for _, k := range s.m {
		out = append(out, k)
	}
	sortKeys(out)
	return out
}

// sortKeys orders modifiers before everything else, then by identifier.
func sortKeys(ks []Key) {
	sort.Slice(ks, func(i, j int) bool {
		mi, mj := IsModifier(ks[i]), IsModifier(ks[j])
		if mi != mj {
			return mi
		}
		return ks[i].norm() < ks[j].norm()
	})
}
