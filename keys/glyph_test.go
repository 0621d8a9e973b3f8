package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGlyph(t *testing.T) {
	tests := []struct {
		key       Key
		uppercase bool
		want      string
	}{
		{LAlt, false, "⌥"},
		{RAlt, true, "⌥"},
		{LShift, false, "⇧"},
		{RShift, false, "⇧"},
		{LControl, false, "⌃"},
		{RControl, false, "⌃"},
		{LMeta, false, "⌘"},
		{RMeta, false, "⌘"},
		{CapsLock, false, "⇪"},
		{"Alt", false, "⌥"},
		{"Shift", true, "⇧"},
		{"Ctrl", false, "⌃"},
		{"Control", false, "⌃"},
		{"Meta", false, "⌘"},
		{F1, false, "F1"},
		{F12, true, "F12"},
		{Up, false, "↑"},
		{Down, false, "↓"},
		{Left, false, "←"},
		{Right, false, "→"},
		{PageUp, false, "PgUp"},
		{PageDown, false, "PgDn"},
		{Escape, false, "Esc"},
		{Backspace, false, "⌫"},
		{Delete, false, "Del"},
		{Insert, false, "Ins"},
		{Key7, true, "7"},
		{BackSlash, false, `\`},
		{Grave, true, "`"},
		{Apostrophe, false, "'"},
		{Numpad0, false, "Num0"},
		{NumpadSubtract, false, "Num-"},
		{NumpadAdd, false, "Num+"},
		{NumpadMultiply, false, "Num*"},
		{NumpadDivide, false, "Num/"},
		{NumpadEnter, false, "NumEnter"},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			assert.Equal(t, tt.want, Glyph(tt.key, tt.uppercase))
		})
	}
}

func TestGlyphLetterCase(t *testing.T) {
	assert.Equal(t, "a", Glyph(A, false))
	assert.Equal(t, "A", Glyph(A, true))
	assert.Equal(t, "z", Glyph("z", false))
	assert.Equal(t, "Z", Glyph("z", true))
}

func TestGlyphCaseInsensitiveIdentity(t *testing.T) {
	assert.Equal(t, "⇧", Glyph("lshift", false))
	assert.Equal(t, "PgDn", Glyph("PAGEDOWN", false))
	assert.Equal(t, "Num/", Glyph("numpaddivide", true))
}

func TestGlyphAliases(t *testing.T) {
	for _, k := range []Key{"Command", LCommand, RCommand, "cmd"} {
		assert.Equal(t, "⌘", Glyph(k, false), string(k))
	}
	for _, k := range []Key{"Option", LOption, "ROPTION"} {
		assert.Equal(t, "⌥", Glyph(k, false), string(k))
	}
}

func TestGlyphFallback(t *testing.T) {
	assert.Equal(t, "VK_5D", Glyph("VK_5D", false))
	assert.Equal(t, "ScrollLock", Glyph(ScrollLock, true))
	assert.Equal(t, "?", Glyph("", false))
}

func TestGlyphTotal(t *testing.T) {
	for _, k := range Supported() {
		for _, upper := range []bool{false, true} {
			g := Glyph(k, upper)
			assert.NotEmpty(t, g, string(k))
			assert.Equal(t, g, Glyph(k, upper), "mapper must be pure for %s", k)
		}
	}
}

func TestModifierGlyphsIsCopy(t *testing.T) {
	m := ModifierGlyphs()
	assert.Equal(t, []string{"⌃", "⌥", "⇧", "⌘"}, m)
	m[0] = "x"
	assert.Equal(t, "⌃", ModifierGlyphs()[0])
}
