//go:build linux

package platform

import (
	"testing"

	"github.com/holoplot/go-evdev"
	"github.com/stretchr/testify/assert"

	"markestedt/keyglyph/keys"
)

func TestKeymapKeys(t *testing.T) {
	bits := make([]byte, 32)
	set := func(xcode int) { bits[xcode/8] |= 1 << (xcode % 8) }

	set(int(evdev.KEY_LEFTSHIFT) + x11KeycodeOffset)
	set(int(evdev.KEY_A) + x11KeycodeOffset)
	set(int(evdev.KEY_KPENTER) + x11KeycodeOffset)
	set(3) // below the offset, not a real key

	got := keys.NewSet(keymapKeys(bits)...)
	assert.Equal(t, []keys.Key{keys.LShift, keys.A, keys.NumpadEnter}, got.Sorted())
}

func TestKeymapKeysEmpty(t *testing.T) {
	assert.Empty(t, keymapKeys(make([]byte, 32)))
}

func TestEvdevName(t *testing.T) {
	assert.Equal(t, keys.CapsLock, evdevName(evdev.KEY_CAPSLOCK))
	assert.Equal(t, keys.LMeta, evdevName(evdev.KEY_LEFTMETA))
	assert.Equal(t, keys.Key("KEY_183"), evdevName(183))
}

func TestEvdevTableHasGlyphs(t *testing.T) {
	for code, k := range evdevKeys {
		assert.NotEmpty(t, keys.Glyph(k, false), "code %d", code)
	}
}
