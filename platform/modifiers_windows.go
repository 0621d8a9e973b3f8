//go:build windows

package platform

import "golang.design/x/hotkey"

// modifierMap for Windows: Alt = ModAlt, Super = ModWin
var modifierMap = map[modifier]hotkey.Modifier{
	modCtrl:  hotkey.ModCtrl,
	modShift: hotkey.ModShift,
	modAlt:   hotkey.ModAlt,
	modSuper: hotkey.ModWin,
}
