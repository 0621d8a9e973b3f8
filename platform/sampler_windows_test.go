//go:build windows

package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"markestedt/keyglyph/keys"
)

func TestVKName(t *testing.T) {
	assert.Equal(t, keys.LShift, vkName(0xA0))
	assert.Equal(t, keys.CapsLock, vkName(0x14))
	assert.Equal(t, keys.Numpad7, vkName(0x67))
	assert.Equal(t, keys.Key("VK_5F"), vkName(0x5F))
}

func TestGenericModifiersSkipped(t *testing.T) {
	for vk := range vkSkip {
		_, mapped := vkKeys[vk]
		assert.False(t, mapped, "VK %02X", vk)
	}
}
