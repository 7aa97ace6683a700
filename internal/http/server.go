// Package http provides the keep-alive web server. Hosting platforms
// ping it to keep the bot process alive; it shares no state with the
// dispatcher.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/kingsalmon6969-svg/hermax-bot/internal/logging"
)

// Server is the keep-alive HTTP server.
type Server struct {
	server  *http.Server
	started time.Time
}

// NewServer creates the server.
func NewServer(cfg Config) *Server {
	s := &Server{started: time.Now()}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/healthz", s.handleHealthz)

	s.server = &http.Server{
		Addr:         cfg.listen(),
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	fmt.Fprint(w, "Bot is running!")
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "ok",
		"uptime": time.Since(s.started).Round(time.Second).String(),
	})
}

// Start begins serving in the background.
func (s *Server) Start() {
	logging.L_info("http: listening", "addr", s.server.Addr)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.L_error("http: server failed", "error", err)
		}
	}()
}

// Stop shuts the server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	logging.L_info("http: shutting down")
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("http shutdown failed: %w", err)
	}
	return nil
}
