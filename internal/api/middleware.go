package api

import (
	"bufio"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gehtsoft-usa/go_ballisticlaunch/internal/logging"
	"github.com/gehtsoft-usa/go_ballisticlaunch/internal/observability"
	"github.com/gorilla/mux"
)

// statusRecorder remembers the status code written through it. It keeps the
// hijacking and flushing capabilities of the wrapped writer, which the
// websocket upgrade relies on.
type statusRecorder struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
}

func (sr *statusRecorder) WriteHeader(code int) {
	if !sr.wroteHeader {
		sr.statusCode = code
		sr.wroteHeader = true
	}
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	sr.wroteHeader = true
	return sr.ResponseWriter.Write(b)
}

func (sr *statusRecorder) Flush() {
	if f, ok := sr.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (sr *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := sr.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("api: %T does not support hijacking", sr.ResponseWriter)
	}
	conn, rw, err := h.Hijack()
	if err == nil {
		sr.statusCode = http.StatusSwitchingProtocols
		sr.wroteHeader = true
	}
	return conn, rw, err
}

func (sr *statusRecorder) Unwrap() http.ResponseWriter {
	return sr.ResponseWriter
}

// quietPath returns true for health check and scrape paths that should not log at INFO.
func quietPath(path string) bool {
	return path == "/healthz" || path == "/metrics"
}

func loggingMiddleware(logger logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sr := newStatusRecorder(w)

			next.ServeHTTP(sr, r)

			fields := []logging.Field{
				logging.String("method", r.Method),
				logging.String("path", r.URL.Path),
				logging.String("status", strconv.Itoa(sr.statusCode)),
				logging.Int("duration_ms", int(time.Since(start).Milliseconds())),
				logging.String("remote_ip", r.RemoteAddr),
			}
			if id := sr.Header().Get(runIDHeader); id != "" {
				fields = append(fields, logging.String("run_id", id))
			}
			if quietPath(r.URL.Path) {
				logger.Debug(r.Context(), "request", fields...)
				return
			}
			logger.Info(r.Context(), "request", fields...)
		})
	}
}

// metricsMiddleware runs inside the router so the matched route template is
// known and used as the route label.
func metricsMiddleware(metrics *observability.Collector) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		if metrics == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sr := newStatusRecorder(w)

			next.ServeHTTP(sr, r)

			metrics.ObserveRequest(routeLabel(r), r.Method, sr.statusCode, time.Since(start))
		})
	}
}

func routeLabel(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return "unmatched"
}
