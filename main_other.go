//go:build !darwin

package main

// runHeadless runs fn on the calling goroutine
func runHeadless(fn func()) {
	fn()
}
