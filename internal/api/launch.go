package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"strconv"
	"time"

	ballistic "github.com/gehtsoft-usa/go_ballisticlaunch"
	"github.com/gehtsoft-usa/go_ballisticlaunch/internal/config"
	"github.com/gehtsoft-usa/go_ballisticlaunch/internal/logging"
	"github.com/gehtsoft-usa/go_ballisticlaunch/internal/observability"
	"github.com/gehtsoft-usa/go_ballisticlaunch/render"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const runIDHeader = "X-Run-ID"

const maxBodyBytes = 1 << 20

// Error kinds reported in error responses.
const (
	KindBadRequest        = "bad_request"
	KindInvalidFlightTime = "invalid_flight_time"
	KindInvalidStep       = "invalid_step"
	KindTooManySamples    = "too_many_samples"
	KindInternal          = "internal"
)

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
	Value any    `json:"value,omitempty"`
}

type pointResponse struct {
	T  float64 `json:"t"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	VX float64 `json:"vx"`
	VY float64 `json:"vy"`
}

// The analytical values are surfaced as-is, so they may be non-finite
// (see jsonNumber).
type launchResponse struct {
	ID         string                     `json:"id"`
	Parameters ballistic.LaunchParameters `json:"parameters"`
	FlightTime any                        `json:"flightTime"`
	MaxHeight  any                        `json:"maxHeight"`
	Range      any                        `json:"range"`
	Samples    int                        `json:"samples"`
	Points     []pointResponse            `json:"points"`
}

func toPoints(points []ballistic.TrajectoryPoint) []pointResponse {
	out := make([]pointResponse, len(points))
	for i, p := range points {
		velocity := p.Velocity()
		out[i] = pointResponse{
			T:  p.Time().TotalSeconds(),
			X:  p.X(),
			Y:  p.Y(),
			VX: velocity.X,
			VY: velocity.Y,
		}
	}
	return out
}

// launch runs one traced, measured launch. The simulation is returned along
// with the points so callers can read the analytical values of the flight.
func (s *Server) launch(ctx context.Context, id string, params ballistic.LaunchParameters) (*ballistic.Simulation, []ballistic.TrajectoryPoint, error) {
	ctx, span := observability.Tracer().Start(ctx, "launch", trace.WithAttributes(
		attribute.String("launch.run_id", id),
		attribute.Float64("launch.speed", params.Speed),
		attribute.Float64("launch.angle", params.Angle),
		attribute.Float64("launch.gravity", params.Gravity),
		attribute.Float64("launch.x", params.LaunchX),
		attribute.Float64("launch.y", params.LaunchY),
		attribute.Float64("launch.step", params.Step),
	))
	defer span.End()

	log := s.logger.With(logging.String("run_id", id))
	sim := ballistic.CreateSimulationFromParameters(params)

	fail := func(err error) (*ballistic.Simulation, []ballistic.TrajectoryPoint, error) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Warn(ctx, "launch rejected", logging.Err(err))
		return sim, nil, err
	}

	if err := s.checkSamples(sim); err != nil {
		s.metrics.ObserveLaunch(0, 0, err)
		return fail(err)
	}

	start := time.Now()
	points, err := sim.Launch()
	elapsed := time.Since(start)
	s.metrics.ObserveLaunch(len(points), elapsed, err)
	if err != nil {
		return fail(err)
	}

	span.SetAttributes(attribute.Int("launch.samples", len(points)))
	log.Debug(ctx, "launch completed",
		logging.Int("samples", len(points)),
		logging.Duration("elapsed", elapsed),
	)
	return sim, points, nil
}

// checkSamples rejects launches whose sample count would exceed the limit.
// Parameters that Launch itself rejects are left to Launch.
func (s *Server) checkSamples(sim *ballistic.Simulation) error {
	var samplesErr *ballistic.TooManySamplesError
	if _, err := sim.SampleCount(s.maxSamples); errors.As(err, &samplesErr) {
		return err
	}
	return nil
}

func (s *Server) decodeParameters(r *http.Request) (ballistic.LaunchParameters, error) {
	var partial config.PartialParameters
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&partial); err != nil && !errors.Is(err, io.EOF) {
		return ballistic.LaunchParameters{}, err
	}
	return partial.Merge(s.defaults), nil
}

// launchError maps a launch error to its status code and response body.
func launchError(err error) (int, errorResponse) {
	var flightTimeErr *ballistic.InvalidFlightTimeError
	var stepErr *ballistic.InvalidStepError
	var samplesErr *ballistic.TooManySamplesError

	body := errorResponse{Error: err.Error()}
	switch {
	case errors.As(err, &flightTimeErr):
		body.Kind = KindInvalidFlightTime
		body.Value = jsonNumber(flightTimeErr.FlightTime)
	case errors.As(err, &stepErr):
		body.Kind = KindInvalidStep
		body.Value = jsonNumber(stepErr.Step)
	case errors.As(err, &samplesErr):
		body.Kind = KindTooManySamples
		body.Value = samplesErr.Samples
	default:
		body.Kind = KindInternal
		return http.StatusInternalServerError, body
	}
	return http.StatusUnprocessableEntity, body
}

// jsonNumber keeps non-finite values representable in JSON.
func jsonNumber(v float64) any {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return v
}

// prepare assigns a run id, decodes the body and launches. It writes the
// error response itself and reports whether the caller may go on.
func (s *Server) prepare(w http.ResponseWriter, r *http.Request) (string, *ballistic.Simulation, []ballistic.TrajectoryPoint, bool) {
	id := s.newRunID()
	w.Header().Set(runIDHeader, id)

	params, err := s.decodeParameters(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: "invalid request body: " + err.Error(),
			Kind:  KindBadRequest,
		})
		return id, nil, nil, false
	}

	sim, points, err := s.launch(r.Context(), id, params)
	if err != nil {
		code, body := launchError(err)
		writeJSON(w, code, body)
		return id, nil, nil, false
	}
	return id, sim, points, true
}

func (s *Server) handleLaunch(w http.ResponseWriter, r *http.Request) {
	id, sim, points, ok := s.prepare(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, launchResponse{
		ID:         id,
		Parameters: sim.Parameters(),
		FlightTime: jsonNumber(sim.FlightTime()),
		MaxHeight:  jsonNumber(sim.MaxHeight()),
		Range:      jsonNumber(sim.Range()),
		Samples:    len(points),
		Points:     toPoints(points),
	})
}

func (s *Server) handlePlot(w http.ResponseWriter, r *http.Request) {
	_, sim, points, ok := s.prepare(w, r)
	if !ok {
		return
	}
	s.writeImage(w, r, "image/png", func(out io.Writer) error {
		return render.Plot(out, sim, points, render.PlotOptions{})
	})
}

func (s *Server) handleAnimation(w http.ResponseWriter, r *http.Request) {
	_, sim, points, ok := s.prepare(w, r)
	if !ok {
		return
	}
	s.writeImage(w, r, "image/gif", func(out io.Writer) error {
		return render.Animate(out, sim, points, render.AnimationOptions{})
	})
}

// writeImage renders into memory first so a failure still gets a JSON error.
func (s *Server) writeImage(w http.ResponseWriter, r *http.Request, contentType string, draw func(io.Writer) error) {
	var buf bytes.Buffer
	if err := draw(&buf); err != nil {
		s.logger.Error(r.Context(), "render failed",
			logging.String("run_id", w.Header().Get(runIDHeader)),
			logging.Err(err),
		)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error(), Kind: KindInternal})
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
