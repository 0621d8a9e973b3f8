package dispatch

import (
	"context"
	"log/slog"
	"time"

	"markestedt/keyglyph/keys"
)

// PollInterval is the time between two keyboard samples (~100 Hz)
const PollInterval = 10 * time.Millisecond

// DefaultBuffer is the event channel capacity used by the agent
const DefaultBuffer = 256

// Sampler returns the keys currently held down
type Sampler interface {
	Sample() (keys.Set, error)
}

// Loop diffs successive keyboard samples into press and release events.
// All of its state is owned by the goroutine running Run.
type Loop struct {
	sampler  Sampler
	interval time.Duration
	events   chan KeyEvent

	prev keys.Set
	mods ModifierState

	failing bool
}

// NewLoop creates a loop reading from sampler. Events that do not fit in a
// channel of the given capacity are dropped.
func NewLoop(sampler Sampler, buffer int) *Loop {
	return &Loop{
		sampler:  sampler,
		interval: PollInterval,
		events:   make(chan KeyEvent, buffer),
		prev:     keys.NewSet(),
	}
}

// Events returns the channel events are emitted on. It is closed when Run
// returns.
func (l *Loop) Events() <-chan KeyEvent {
	return l.events
}

// Modifiers returns the current case context
func (l *Loop) Modifiers() ModifierState {
	return l.mods
}

// Run samples the keyboard every PollInterval until ctx is cancelled.
// Sampling errors skip a tick and never end the loop.
func (l *Loop) Run(ctx context.Context) {
	defer close(l.events)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		l.tick()

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (l *Loop) tick() {
	curr, err := l.sampler.Sample()
	if err != nil {
		// Keep the previous snapshot so held keys are not reported as released
		if !l.failing {
			l.failing = true
			slog.Debug("Keyboard sample failed, skipping ticks", "error", err)
		}
		return
	}
	if l.failing {
		l.failing = false
		slog.Debug("Keyboard sampling recovered")
	}

	for _, evt := range l.Step(curr) {
		l.emit(evt)
	}
}

// Step diffs curr against the previous snapshot, updates the modifier
// state and returns the tick's events: presses first, then releases.
func (l *Loop) Step(curr keys.Set) []KeyEvent {
	pressed := curr.Difference(l.prev)
	released := l.prev.Difference(curr)

	for _, k := range pressed {
		if keys.IsCapsLock(k) {
			l.mods.CapsLockOn = !l.mods.CapsLockOn
		}
	}
	l.mods.ShiftHeld = curr.HasShift()
	upper := l.mods.Uppercase()

	events := make([]KeyEvent, 0, len(pressed)+len(released))
	for _, k := range pressed {
		events = append(events, KeyEvent{Key: keys.Glyph(k, upper), EventType: Press})
	}
	for _, k := range released {
		events = append(events, KeyEvent{Key: keys.Glyph(k, upper), EventType: Release})
	}

	l.prev = curr
	return events
}

// emit never blocks; an event nobody has room for is dropped
func (l *Loop) emit(evt KeyEvent) {
	select {
	case l.events <- evt:
	default:
	}
}
