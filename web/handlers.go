package web

import (
	"encoding/json"
	"net/http"

	"markestedt/keyglyph/keys"
)

// handleConfig returns the overlay display settings
func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := struct {
		FadeMillis int      `json:"fadeMs"`
		MaxKeys    int      `json:"maxKeys"`
		Modifiers  []string `json:"modifiers"`
	}{
		FadeMillis: s.overlay.FadeMillis,
		MaxKeys:    s.overlay.MaxKeys,
		Modifiers:  keys.ModifierGlyphs(),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// handleStatus returns whether key events are forwarded and who is watching
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	status := "running"
	if s.status != nil {
		status = s.status()
	}

	response := map[string]any{
		"status":  status,
		"clients": s.ClientCount(r.Context()),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
