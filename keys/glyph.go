package keys

import "strings"

const (
	glyphAlt      = "⌥"
	glyphShift    = "⇧"
	glyphCtrl     = "⌃"
	glyphMeta     = "⌘"
	glyphCapsLock = "⇪"
)

// modifierOrder is the order held modifiers are drawn in.
var modifierOrder = []string{glyphCtrl, glyphAlt, glyphShift, glyphMeta}

// glyphs maps case-folded identifiers to their display string. Letters are
// handled separately because their glyph depends on case.
var glyphs = map[string]string{
	// Modifiers, with and without a side
	"alt": glyphAlt, "lalt": glyphAlt, "ralt": glyphAlt,
	"shift": glyphShift, "lshift": glyphShift, "rshift": glyphShift,
	"ctrl": glyphCtrl, "control": glyphCtrl, "lcontrol": glyphCtrl, "rcontrol": glyphCtrl,
	"meta": glyphMeta, "lmeta": glyphMeta, "rmeta": glyphMeta,
	"capslock": glyphCapsLock,

	// Function keys
	"f1": "F1", "f2": "F2", "f3": "F3", "f4": "F4",
	"f5": "F5", "f6": "F6", "f7": "F7", "f8": "F8",
	"f9": "F9", "f10": "F10", "f11": "F11", "f12": "F12",

	// Navigation
	"up": "↑", "down": "↓", "left": "←", "right": "→",
	"home": "Home", "end": "End", "pageup": "PgUp", "pagedown": "PgDn",

	// Whitespace and editing
	"space":     "Space",
	"tab":       "Tab",
	"enter":     "Enter",
	"escape":    "Esc",
	"backspace": "⌫",
	"delete":    "Del",
	"insert":    "Ins",

	// Digits
	"key0": "0", "key1": "1", "key2": "2", "key3": "3", "key4": "4",
	"key5": "5", "key6": "6", "key7": "7", "key8": "8", "key9": "9",

	// Punctuation
	"minus":        "-",
	"equal":        "=",
	"leftbracket":  "[",
	"rightbracket": "]",
	"backslash":    `\`,
	"semicolon":    ";",
	"apostrophe":   "'",
	"comma":        ",",
	"dot":          ".",
	"slash":        "/",
	"grave":        "`",

	// Numpad
	"numpad0": "Num0", "numpad1": "Num1", "numpad2": "Num2", "numpad3": "Num3",
	"numpad4": "Num4", "numpad5": "Num5", "numpad6": "Num6", "numpad7": "Num7",
	"numpad8": "Num8", "numpad9": "Num9",
	"numpadsubtract": "Num-",
	"numpadadd":      "Num+",
	"numpadmultiply": "Num*",
	"numpaddivide":   "Num/",
	"numpadenter":    "NumEnter",
}

// aliases normalises platform names for Command and Option that fall
// outside the main table.
var aliases = map[string]string{
	"command":  glyphMeta,
	"lcommand": glyphMeta,
	"rcommand": glyphMeta,
	"cmd":      glyphMeta,
	"option":   glyphAlt,
	"loption":  glyphAlt,
	"roption":  glyphAlt,
}

// Glyph returns the display string for k. Letters are upper-cased when
// uppercase is set and lower-cased otherwise; every other key ignores it.
// The result is never empty.
func Glyph(k Key, uppercase bool) string {
	n := k.norm()
	if len(n) == 1 && n[0] >= 'a' && n[0] <= 'z' {
		if uppercase {
			return strings.ToUpper(n)
		}
		return n
	}
	if g, ok := lookup(k); ok {
		return g
	}
	if k == "" {
		return "?"
	}
	return string(k)
}

func lookup(k Key) (string, bool) {
	n := k.norm()
	if g, ok := glyphs[n]; ok {
		return g, true
	}
	g, ok := aliases[n]
	return g, ok
}

// ModifierGlyphs returns the glyphs the overlay draws as held modifiers,
// in display order.
func ModifierGlyphs() []string {
	out := make([]string, len(modifierOrder))
	copy(out, modifierOrder)
	return out
}

// Supported returns every identifier with a dedicated glyph.
func Supported() []Key {
	out := []Key{
		A, B, C, D, E, F, G, H, I, J, K, L, M,
		N, O, P, Q, R, S, T, U, V, W, X, Y, Z,
		LAlt, RAlt, LShift, RShift, LControl, RControl, LMeta, RMeta, CapsLock,
		LCommand, RCommand, LOption, ROption,
		F1, F2, F3, F4, F5, F6, F7, F8, F9, F10, F11, F12,
		Up, Down, Left, Right, Home, End, PageUp, PageDown,
		Space, Tab, Enter, Escape, Backspace, Delete, Insert,
		Key0, Key1, Key2, Key3, Key4, Key5, Key6, Key7, Key8, Key9,
		Minus, Equal, LeftBracket, RightBracket, BackSlash, Semicolon,
		Apostrophe, Comma, Dot, Slash, Grave,
		Numpad0, Numpad1, Numpad2, Numpad3, Numpad4,
		Numpad5, Numpad6, Numpad7, Numpad8, Numpad9,
		NumpadSubtract, NumpadAdd, NumpadMultiply, NumpadDivide, NumpadEnter,
	}
	return out
}
