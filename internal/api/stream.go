package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	ballistic "github.com/gehtsoft-usa/go_ballisticlaunch"
	"github.com/gehtsoft-usa/go_ballisticlaunch/internal/logging"
	"github.com/gorilla/websocket"
)

const (
	defaultStreamBatch = 256
	maxStreamBatch     = 10000
)

// Stream message types.
const (
	MessagePoints  = "points"
	MessageSummary = "summary"
	MessageError   = "error"
)

type pointsMessage struct {
	Type   string          `json:"type"`
	Points []pointResponse `json:"points"`
}

type summaryMessage struct {
	Type       string `json:"type"`
	ID         string `json:"id"`
	FlightTime any    `json:"flightTime"`
	MaxHeight  any    `json:"maxHeight"`
	Range      any    `json:"range"`
	Samples    int    `json:"samples"`
}

type errorMessage struct {
	Type string `json:"type"`
	errorResponse
}

// parseStreamQuery reads the launch parameters and the batch size from the
// query string. Omitted parameters take the defaults.
func parseStreamQuery(q url.Values, defaults ballistic.LaunchParameters) (ballistic.LaunchParameters, int, error) {
	params := defaults
	fields := []struct {
		name string
		dst  *float64
	}{
		{"speed", &params.Speed},
		{"angle", &params.Angle},
		{"gravity", &params.Gravity},
		{"x", &params.LaunchX},
		{"y", &params.LaunchY},
		{"step", &params.Step},
	}
	for _, f := range fields {
		v := q.Get(f.name)
		if v == "" {
			continue
		}
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return params, 0, fmt.Errorf("query parameter %s: %w", f.name, err)
		}
		*f.dst = x
	}

	batch := defaultStreamBatch
	if v := q.Get("batch"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > maxStreamBatch {
			return params, 0, fmt.Errorf("query parameter batch must be within [1, %d], got %q", maxStreamBatch, v)
		}
		batch = n
	}
	return params, batch, nil
}

// handleStream launches with the query parameters and sends the trajectory
// over a websocket in batches of points, followed by a summary message.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	id := s.newRunID()
	w.Header().Set(runIDHeader, id)

	params, batch, err := parseStreamQuery(r.URL.Query(), s.defaults)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Kind: KindBadRequest})
		return
	}

	header := http.Header{}
	header.Set(runIDHeader, id)
	conn, err := s.upgrader.Upgrade(w, r, header)
	if err != nil {
		// Upgrade has already replied to the client.
		s.logger.Warn(r.Context(), "websocket upgrade failed",
			logging.String("run_id", id),
			logging.Err(err),
		)
		return
	}
	defer conn.Close()

	log := s.logger.With(logging.String("run_id", id))

	sim, points, err := s.launch(r.Context(), id, params)
	if err != nil {
		_, body := launchError(err)
		s.sendError(r, conn, log, body)
		return
	}

	for i := 0; i < len(points); i += batch {
		end := min(i+batch, len(points))
		if !s.send(r, conn, log, pointsMessage{Type: MessagePoints, Points: toPoints(points[i:end])}) {
			return
		}
	}

	summary := summaryMessage{
		Type:       MessageSummary,
		ID:         id,
		FlightTime: jsonNumber(sim.FlightTime()),
		MaxHeight:  jsonNumber(sim.MaxHeight()),
		Range:      jsonNumber(sim.Range()),
		Samples:    len(points),
	}
	if s.send(r, conn, log, summary) {
		closeStream(conn, "")
	}
}

// send encodes the message before writing it, so an encoding failure is
// reported to the client as an error message. It reports whether the stream
// may go on.
func (s *Server) send(r *http.Request, conn *websocket.Conn, log logging.Logger, v any) bool {
	data, err := json.Marshal(v)
	if err != nil {
		log.Error(r.Context(), "stream encode failed", logging.Err(err))
		s.sendError(r, conn, log, errorResponse{Error: "encode message: " + err.Error(), Kind: KindInternal})
		return false
	}
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		log.Warn(r.Context(), "stream write failed", logging.Err(err))
		return false
	}
	return true
}

// sendError sends the error message and closes the stream.
func (s *Server) sendError(r *http.Request, conn *websocket.Conn, log logging.Logger, body errorResponse) {
	if err := conn.WriteJSON(errorMessage{Type: MessageError, errorResponse: body}); err != nil {
		log.Warn(r.Context(), "stream write failed", logging.Err(err))
		return
	}
	closeStream(conn, body.Kind)
}

func closeStream(conn *websocket.Conn, reason string) {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, reason)
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
}
