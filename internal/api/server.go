// Package api exposes the inbound HTTP surface: chat, report generation,
// CSV upload, conversation retrieval and reset, health and metrics.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AbhiSharma69/revenue-rescue/internal/conversation"
	"github.com/AbhiSharma69/revenue-rescue/internal/pipeline"
)

type Server struct {
	router   *chi.Mux
	port     int
	pipeline *pipeline.Pipeline
	state    *conversation.State
	store    conversation.Store
	logger   *slog.Logger

	httpServer *http.Server
}

func NewServer(port int, p *pipeline.Pipeline, state *conversation.State, store conversation.Store, logger *slog.Logger) *Server {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	s := &Server{
		router:   router,
		port:     port,
		pipeline: p,
		state:    state,
		store:    store,
		logger:   logger,
	}

	router.Get("/health", s.health)
	router.Handle("/metrics", promhttp.Handler())

	router.Post("/chat", s.chat)
	router.Post("/generate-report", s.generateReport)
	router.Post("/upload", s.upload)
	router.Get("/conversation", s.getConversation)
	router.Post("/conversation/clear", s.clearConversation)

	return s
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("API server starting", "addr", addr)
	s.httpServer = &http.Server{Addr: addr, Handler: s.router}
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
