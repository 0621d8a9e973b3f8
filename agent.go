package main

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"markestedt/keyglyph/config"
	"markestedt/keyglyph/dispatch"
	"markestedt/keyglyph/platform"
	"markestedt/keyglyph/web"
)

// Agent coordinates keyboard sampling, the overlay server and the pause hotkey
type Agent struct {
	cfg     *config.Config
	sampler platform.Sampler
	hotkey  platform.Hotkey
	loop    *dispatch.Loop
	server  *web.Server
	paused  atomic.Bool
}

// NewAgent creates a new agent instance
func NewAgent(cfg *config.Config) (*Agent, error) {
	sampler, err := platform.NewSampler()
	if err != nil {
		return nil, fmt.Errorf("failed to create keyboard sampler: %w", err)
	}

	return newAgent(cfg, sampler, platform.NewHotkey()), nil
}

func newAgent(cfg *config.Config, sampler platform.Sampler, hotkey platform.Hotkey) *Agent {
	a := &Agent{
		cfg:     cfg,
		sampler: sampler,
		hotkey:  hotkey,
		loop:    dispatch.NewLoop(sampler, dispatch.DefaultBuffer),
	}
	a.server = web.NewServer(cfg, a.Status)
	return a
}

// Status returns "paused" or "running"
func (a *Agent) Status() string {
	if a.paused.Load() {
		return "paused"
	}
	return "running"
}

// TogglePause flips whether key events reach the overlay and returns the
// new paused state
func (a *Agent) TogglePause() bool {
	for {
		old := a.paused.Load()
		if a.paused.CompareAndSwap(old, !old) {
			status := a.Status()
			slog.Info("Overlay state changed", "status", status)
			a.server.BroadcastStatus(status)
			return !old
		}
	}
}

// Run starts the agent's main event loop. It returns when ctx is cancelled
// or quit is closed.
func (a *Agent) Run(ctx context.Context, quit <-chan struct{}) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- a.server.Start(ctx)
	}()

	loopDone := make(chan struct{})
	go func() {
		defer close(loopDone)
		a.loop.Run(ctx)
	}()
	defer func() {
		cancel()
		<-loopDone
		if err := a.sampler.Close(); err != nil {
			slog.Warn("Failed to close keyboard sampler", "error", err)
		}
	}()

	// Registration may wait on the main thread (macOS), so it must not hold
	// up event forwarding
	hotkeyReady := make(chan (<-chan platform.Event), 1)
	go func() {
		hotkeyReady <- a.listenHotkey(ctx)
	}()
	var hotkeyEvents <-chan platform.Event

	slog.Info("KeyGlyph started", "overlay", a.cfg.Web.URL(), "pause_hotkey", a.cfg.Hotkey.Pause)

	// Main event loop
	events := a.loop.Events()
	for {
		select {
		case <-ctx.Done():
			return nil

		case <-quit:
			return nil

		case err := <-serverErr:
			return err

		case evt, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if !a.paused.Load() {
				a.server.BroadcastKey(evt)
			}

		case ch := <-hotkeyReady:
			hotkeyEvents = ch
			hotkeyReady = nil

		case evt := <-hotkeyEvents:
			if evt.Type == platform.Pressed {
				a.TogglePause()
			}
		}
	}
}

// listenHotkey registers the pause hotkey. A nil channel is returned when it
// is disabled or cannot be registered.
func (a *Agent) listenHotkey(ctx context.Context) <-chan platform.Event {
	if a.cfg.Hotkey.Pause == "" {
		return nil
	}

	combo, err := config.ParseHotkey(a.cfg.Hotkey.Pause)
	if err != nil {
		slog.Warn("Failed to parse pause hotkey", "error", err)
		return nil
	}

	events, err := a.hotkey.Listen(ctx, platform.KeyCombo{
		Ctrl:  combo.Ctrl,
		Shift: combo.Shift,
		Alt:   combo.Alt,
		Win:   combo.Win,
		Key:   combo.Key,
	})
	if err != nil {
		slog.Warn("Failed to start hotkey listener", "error", err)
		return nil
	}

	return events
}
