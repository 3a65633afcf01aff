// Package api exposes launches over HTTP: JSON trajectories, rendered plots
// and animations, and a websocket stream of trajectory samples.
package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	ballistic "github.com/gehtsoft-usa/go_ballisticlaunch"
	"github.com/gehtsoft-usa/go_ballisticlaunch/internal/config"
	"github.com/gehtsoft-usa/go_ballisticlaunch/internal/logging"
	"github.com/gehtsoft-usa/go_ballisticlaunch/internal/observability"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/klauspost/compress/gzhttp"
)

// Server holds the HTTP server and its dependencies.
type Server struct {
	httpServer *http.Server
	handler    http.Handler
	logger     logging.Logger
	metrics    *observability.Collector
	defaults   ballistic.LaunchParameters
	maxSamples int
	upgrader   websocket.Upgrader
	newRunID   func() string
}

// NewServer creates a configured HTTP server. A nil collector disables
// metrics; a nil logger drops logs.
func NewServer(cfg config.Config, logger logging.Logger, metrics *observability.Collector) *Server {
	if logger == nil {
		logger = logging.Noop()
	}
	maxSamples := cfg.MaxSamples
	if maxSamples <= 0 {
		maxSamples = config.DefaultMaxSamples
	}

	s := &Server{
		logger:     logger.With(logging.String("component", "api")),
		metrics:    metrics,
		defaults:   cfg.Defaults,
		maxSamples: maxSamples,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		newRunID: func() string { return uuid.NewString() },
	}

	router := mux.NewRouter()
	router.Use(metricsMiddleware(metrics))

	router.HandleFunc("/healthz", healthz).Methods(http.MethodGet)
	if metrics != nil {
		router.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)
	}

	// The stream route stays outside gzhttp: the upgrade needs the raw connection.
	router.HandleFunc("/api/v1/launch/stream", s.handleStream).Methods(http.MethodGet)
	router.Handle("/api/v1/launch", gzhttp.GzipHandler(http.HandlerFunc(s.handleLaunch))).Methods(http.MethodPost)
	router.Handle("/api/v1/launch/plot.png", gzhttp.GzipHandler(http.HandlerFunc(s.handlePlot))).Methods(http.MethodPost)
	router.Handle("/api/v1/launch/animation.gif", gzhttp.GzipHandler(http.HandlerFunc(s.handleAnimation))).Methods(http.MethodPost)

	s.handler = loggingMiddleware(s.logger)(router)
	s.httpServer = &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           s.handler,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return s
}

// Handler returns the root handler with the middleware chain applied.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// HTTPServer returns the underlying *http.Server for external control (e.g. shutdown).
func (s *Server) HTTPServer() *http.Server {
	return s.httpServer
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeJSON encodes v before writing the status, so an encoding failure
// still reaches the client as a 500 error.
func writeJSON(w http.ResponseWriter, code int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		buf.Reset()
		code = http.StatusInternalServerError
		_ = json.NewEncoder(&buf).Encode(errorResponse{
			Error: "encode response: " + err.Error(),
			Kind:  KindInternal,
		})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(buf.Bytes())
}
