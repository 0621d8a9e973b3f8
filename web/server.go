package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"markestedt/keyglyph/config"
	"markestedt/keyglyph/dispatch"
)

//go:embed static/*
var staticFiles embed.FS

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Streaming software loads the overlay from arbitrary origins
	},
}

const shutdownTimeout = 5 * time.Second

// StatusFunc reports "running" or "paused"
type StatusFunc func() string

// Server serves the overlay page and pushes key events to it
type Server struct {
	web     config.WebConfig
	overlay config.OverlayConfig
	hub     *Hub
	status  StatusFunc
}

// NewServer creates a new overlay server
func NewServer(cfg *config.Config, status StatusFunc) *Server {
	return &Server{
		web:     cfg.Web,
		overlay: cfg.Overlay,
		hub:     NewHub(),
		status:  status,
	}
}

// Handler returns the HTTP routes of the overlay
func (s *Server) Handler() (http.Handler, error) {
	mux := http.NewServeMux()

	// API endpoints
	mux.HandleFunc("/api/config", s.handleConfig)
	mux.HandleFunc("/api/status", s.handleStatus)
	mux.HandleFunc("/ws", s.handleWebSocket)

	// Static files
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to load static files: %w", err)
	}
	mux.Handle("/", http.FileServer(http.FS(staticFS)))

	return mux, nil
}

// Start serves the overlay until ctx is cancelled
func (s *Server) Start(ctx context.Context) error {
	handler, err := s.Handler()
	if err != nil {
		return err
	}

	go s.hub.Run(ctx)

	srv := &http.Server{
		Addr:              s.web.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("Failed to shut down web server", "error", err)
		}
	}()

	slog.Info("Starting web server", "addr", srv.Addr, "url", s.web.URL())

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve overlay: %w", err)
	}
	return nil
}

// ClientCount returns the number of connected overlays
func (s *Server) ClientCount(ctx context.Context) int {
	return s.hub.ClientCount(ctx)
}

// BroadcastKey pushes a key event to every connected overlay
func (s *Server) BroadcastKey(evt dispatch.KeyEvent) {
	s.hub.BroadcastMessage(Message{
		Type: MessageTypeKeyEvent,
		Data: evt,
	})
}

// BroadcastStatus broadcasts a status update to all connected clients
func (s *Server) BroadcastStatus(status string) {
	s.hub.BroadcastMessage(Message{
		Type: MessageTypeStatus,
		Data: StatusMessage{Status: status},
	})
}

// handleWebSocket handles WebSocket connections
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("Failed to upgrade WebSocket connection", "error", err)
		return
	}

	client := &Client{
		hub:  s.hub,
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}

	if !s.hub.Register(client) {
		conn.Close()
		return
	}

	// Start client goroutines
	go client.writePump()
	go client.readPump()
}
