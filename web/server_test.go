package web

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"markestedt/keyglyph/config"
	"markestedt/keyglyph/dispatch"
)

func newTestServer(t *testing.T, status StatusFunc) (*Server, *httptest.Server) {
	t.Helper()

	cfg := &config.Config{
		Web:     config.WebConfig{Listen: "127.0.0.1", Port: 7331},
		Overlay: config.OverlayConfig{FadeMillis: 1500, MaxKeys: 4},
	}
	s := NewServer(cfg, status)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go s.hub.Run(ctx)

	handler, err := s.Handler()
	require.NoError(t, err)
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	return s, ts
}

func TestHandleConfig(t *testing.T) {
	_, ts := newTestServer(t, nil)

	resp, err := http.Get(ts.URL + "/api/config")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		FadeMillis int      `json:"fadeMs"`
		MaxKeys    int      `json:"maxKeys"`
		Modifiers  []string `json:"modifiers"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 1500, body.FadeMillis)
	assert.Equal(t, 4, body.MaxKeys)
	assert.Equal(t, []string{"⌃", "⌥", "⇧", "⌘"}, body.Modifiers)
}

func TestHandleStatus(t *testing.T) {
	_, ts := newTestServer(t, func() string { return "paused" })

	resp, err := http.Get(ts.URL + "/api/status")
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "paused", body["status"])
	assert.Equal(t, float64(0), body["clients"])
}

func TestAPIRejectsOtherMethods(t *testing.T) {
	_, ts := newTestServer(t, nil)

	for _, path := range []string{"/api/config", "/api/status"} {
		resp, err := http.Post(ts.URL+path, "application/json", strings.NewReader("{}"))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode, path)
	}
}

func TestServesOverlayPage(t *testing.T) {
	_, ts := newTestServer(t, nil)

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "overlay.js")
}

func TestOverlayCountsSharedModifierGlyphs(t *testing.T) {
	_, ts := newTestServer(t, nil)

	resp, err := http.Get(ts.URL + "/overlay.js")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// LShift and RShift both arrive as ⇧; releasing one must leave it drawn
	script := string(body)
	assert.Contains(t, script, "held[evt.key] = (held[evt.key] || 0) + 1;")
	assert.Contains(t, script, "held[evt.key]--;")
	assert.NotContains(t, script, "new Set()")
}

func TestWebSocketReceivesEvents(t *testing.T) {
	s, ts := newTestServer(t, nil)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool {
		return s.hub.ClientCount(context.Background()) == 1
	}, 2*time.Second, 10*time.Millisecond)

	s.BroadcastKey(dispatch.KeyEvent{Key: "⇧", EventType: dispatch.Press})
	s.BroadcastStatus("paused")

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"key-event","data":{"key":"⇧","event_type":"press"}}`, string(data))

	_, data, err = conn.ReadMessage()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"status","data":{"status":"paused"}}`, string(data))
}

func TestHubDropsSlowClient(t *testing.T) {
	h := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go h.Run(ctx)

	// An unbuffered send channel with no writer behind it is always full
	slow := &Client{hub: h, send: make(chan []byte)}
	require.True(t, h.Register(slow))
	require.Equal(t, 1, h.ClientCount(ctx))

	h.BroadcastMessage(Message{Type: MessageTypeStatus, Data: StatusMessage{Status: "running"}})

	require.Eventually(t, func() bool {
		return h.ClientCount(ctx) == 0
	}, 2*time.Second, 10*time.Millisecond)

	_, open := <-slow.send
	assert.False(t, open)
}

func TestBroadcastNeverBlocks(t *testing.T) {
	h := NewHub() // not running, so nothing drains the queue

	done := make(chan struct{})
	go func() {
		for i := 0; i < sendBuffer*2; i++ {
			h.BroadcastMessage(Message{Type: MessageTypeKeyEvent, Data: dispatch.KeyEvent{Key: "a", EventType: dispatch.Press}})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("BroadcastMessage blocked")
	}
}

func TestHubStopRejectsRegistration(t *testing.T) {
	h := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		h.Run(ctx)
		close(stopped)
	}()
	cancel()
	<-stopped

	assert.False(t, h.Register(&Client{hub: h, send: make(chan []byte, 1)}))
	assert.Equal(t, 0, h.ClientCount(context.Background()))
}
