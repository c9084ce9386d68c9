// Package server exposes running matches over websockets: clients gather in
// rooms, the host starts the game, and every accepted action fans the
// sanitized state back out. The server is the randomness authority; dice in
// client messages are ignored.
package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/sunandbean/cashflow-server-go/internal/config"
	"github.com/sunandbean/cashflow-server-go/internal/session"
)

// Server is the HTTP/websocket front of the hub.
type Server struct {
	cfg    config.ServerConfig
	hub    *Hub
	logger *zap.Logger
	http   *http.Server
}

// New builds the server and its hub.
func New(cfg config.Config, sessions *session.Manager, logger *zap.Logger) *Server {
	hub := NewHub(cfg.Game, sessions, logger)
	return &Server{
		cfg:    cfg.Server,
		hub:    hub,
		logger: logger,
	}
}

// Start runs the hub and the HTTP listener until ListenAndServe returns.
func (s *Server) Start(ctx context.Context) error {
	go s.hub.Run(ctx)

	upgrader := websocket.Upgrader{
		CheckOrigin: s.checkOrigin,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		ServeWS(ctx, s.hub, upgrader, w, r)
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"status":       "ok",
			"active_games": s.hub.sessions.ActiveCount(),
		})
	})

	s.http = &http.Server{
		Addr:         s.cfg.Address,
		Handler:      mux,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	s.logger.Info("websocket server listening", zap.String("address", s.cfg.Address))
	err := s.http.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown drains the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// checkOrigin enforces the configured origin allowlist; "*" allows all.
func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, allowed := range s.cfg.AllowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return false
}
