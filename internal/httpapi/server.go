package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Server exposes read-only introspection for a running collector.
type Server struct {
	Logger *zap.Logger
	Status *StatusBoard
}

func NewServer(l *zap.Logger, b *StatusBoard) *Server {
	return &Server{Logger: l, Status: b}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.AllowAll().Handler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/api/status", s.handleStatus)

	return r
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.Status.Snapshot()); err != nil {
		s.Logger.Warn("status_encode_error", zap.Error(err))
	}
}
