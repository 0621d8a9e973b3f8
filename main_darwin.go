//go:build darwin

package main

import "golang.design/x/hotkey/mainthread"

// runHeadless runs fn while the main thread services the Cocoa event loop
// hotkey registration depends on. The tray does this itself when enabled.
func runHeadless(fn func()) {
	mainthread.Init(fn)
}
