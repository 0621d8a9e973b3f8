package systray

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPauseTitle(t *testing.T) {
	assert.Equal(t, "Pause", pauseTitle(false))
	assert.Equal(t, "Resume", pauseTitle(true))
}

func TestQuitChannelStartsOpen(t *testing.T) {
	m := NewSystrayManager("http://localhost:7331", nil, nil)

	select {
	case <-m.WaitForQuit():
		t.Fatal("quit channel closed before Quit was clicked")
	default:
	}
}
