package systray

import (
	"log/slog"
	"os/exec"
	"runtime"

	"github.com/getlantern/systray"
)

// SystrayManager manages the system tray icon and menu
type SystrayManager struct {
	overlayURL  string
	iconData    []byte
	togglePause func() bool
	quit        chan struct{}
}

// NewSystrayManager creates a new systray manager. togglePause flips the
// paused state and returns the new value.
func NewSystrayManager(overlayURL string, iconData []byte, togglePause func() bool) *SystrayManager {
	return &SystrayManager{
		overlayURL:  overlayURL,
		iconData:    iconData,
		togglePause: togglePause,
		quit:        make(chan struct{}),
	}
}

// Run starts the system tray (blocking call, must run on the main goroutine)
func (m *SystrayManager) Run() {
	systray.Run(m.onReady, m.onExit)
}

// Stop stops the system tray
func (m *SystrayManager) Stop() {
	systray.Quit()
}

// WaitForQuit returns a channel that will be closed when user clicks Quit
func (m *SystrayManager) WaitForQuit() <-chan struct{} {
	return m.quit
}

// onReady is called when the systray is ready
func (m *SystrayManager) onReady() {
	// Set icon
	if len(m.iconData) > 0 {
		systray.SetIcon(m.iconData)
	}

	// Set tooltip
	systray.SetTitle("⌨")
	systray.SetTooltip("KeyGlyph - On-screen keys")

	// Add menu items
	mOpenOverlay := systray.AddMenuItem("Open Overlay", "Open the key overlay in the browser")
	mPause := systray.AddMenuItem(pauseTitle(false), "Stop or resume showing keys")
	systray.AddSeparator()
	mQuit := systray.AddMenuItem("Quit", "Exit KeyGlyph")

	// Handle menu clicks
	go func() {
		for {
			select {
			case <-mOpenOverlay.ClickedCh:
				openURL(m.overlayURL)
			case <-mPause.ClickedCh:
				if m.togglePause != nil {
					mPause.SetTitle(pauseTitle(m.togglePause()))
				}
			case <-mQuit.ClickedCh:
				slog.Info("User requested quit from system tray")
				close(m.quit)
				systray.Quit()
				return
			}
		}
	}()
}

// onExit is called when the systray is exiting
func (m *SystrayManager) onExit() {
	slog.Info("System tray exited")
}

func pauseTitle(paused bool) string {
	if paused {
		return "Resume"
	}
	return "Pause"
}

// openURL opens url in the default browser
func openURL(url string) {
	slog.Info("Opening overlay", "url", url)

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	default:
		slog.Error("Unsupported platform for opening browser", "platform", runtime.GOOS)
		return
	}

	if err := cmd.Start(); err != nil {
		slog.Error("Failed to open overlay", "error", err)
	}
}
