//go:build darwin

package platform

import "golang.design/x/hotkey"

// modifierMap for macOS: Alt = Option, Super = Command
var modifierMap = map[modifier]hotkey.Modifier{
	modCtrl:  hotkey.ModCtrl,
	modShift: hotkey.ModShift,
	modAlt:   hotkey.ModOption,
	modSuper: hotkey.ModCmd,
}
