// Package observability wires Prometheus metrics and OpenTelemetry tracing
// for the launch service.
package observability

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	ballistic "github.com/gehtsoft-usa/go_ballisticlaunch"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Launch outcome labels.
const (
	OutcomeOK                = "ok"
	OutcomeInvalidFlightTime = "invalid_flight_time"
	OutcomeInvalidStep       = "invalid_step"
	OutcomeTooManySamples    = "too_many_samples"
	OutcomeError             = "error"
)

// Collector bundles the Prometheus metrics of launches and of the HTTP
// surface that serves them.
type Collector struct {
	gatherer prometheus.Gatherer

	Launches        *prometheus.CounterVec
	LaunchSamples   prometheus.Histogram
	LaunchDurations prometheus.Histogram

	HTTPRequests  *prometheus.CounterVec
	HTTPDurations *prometheus.HistogramVec
}

// NewCollector registers the metrics against the provided registerer,
// defaulting to the global Prometheus registry when nil.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	launches, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ballistic_launches_total",
		Help: "Total number of launches, labeled by outcome.",
	}, []string{"outcome"}), "ballistic_launches_total")
	if err != nil {
		return nil, err
	}

	samples, err := registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "ballistic_launch_samples",
		Help:    "Number of trajectory samples produced by a successful launch.",
		Buckets: prometheus.ExponentialBuckets(10, 10, 7),
	}), "ballistic_launch_samples")
	if err != nil {
		return nil, err
	}

	durations, err := registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "ballistic_launch_duration_seconds",
		Help:    "Time spent computing a trajectory.",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
	}), "ballistic_launch_duration_seconds")
	if err != nil {
		return nil, err
	}

	requests, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ballistic_http_requests_total",
		Help: "Total number of HTTP requests, labeled by route, method and status code.",
	}, []string{"route", "method", "code"}), "ballistic_http_requests_total")
	if err != nil {
		return nil, err
	}

	httpDurations, err := registerHistogramVec(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ballistic_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"}), "ballistic_http_request_duration_seconds")
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:        gatherer,
		Launches:        launches,
		LaunchSamples:   samples,
		LaunchDurations: durations,
		HTTPRequests:    requests,
		HTTPDurations:   httpDurations,
	}, nil
}

// Outcome maps a launch error to its outcome label.
func Outcome(err error) string {
	var flightTimeErr *ballistic.InvalidFlightTimeError
	var stepErr *ballistic.InvalidStepError
	var samplesErr *ballistic.TooManySamplesError
	switch {
	case err == nil:
		return OutcomeOK
	case errors.As(err, &flightTimeErr):
		return OutcomeInvalidFlightTime
	case errors.As(err, &stepErr):
		return OutcomeInvalidStep
	case errors.As(err, &samplesErr):
		return OutcomeTooManySamples
	default:
		return OutcomeError
	}
}

// ObserveLaunch records the outcome of one launch. Samples and duration are
// only recorded for successful launches.
func (c *Collector) ObserveLaunch(samples int, duration time.Duration, err error) {
	if c == nil {
		return
	}
	c.Launches.WithLabelValues(Outcome(err)).Inc()
	if err != nil {
		return
	}
	c.LaunchSamples.Observe(float64(samples))
	c.LaunchDurations.Observe(duration.Seconds())
}

// Handler exposes a ready-to-use /metrics handler.
func (c *Collector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// ObserveRequest records one served HTTP request.
func (c *Collector) ObserveRequest(route, method string, code int, duration time.Duration) {
	if c == nil {
		return
	}
	c.HTTPRequests.WithLabelValues(route, method, strconv.Itoa(code)).Inc()
	c.HTTPDurations.WithLabelValues(route, method).Observe(duration.Seconds())
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogramVec(reg prometheus.Registerer, vec *prometheus.HistogramVec, name string) (*prometheus.HistogramVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogram(reg prometheus.Registerer, h prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(h); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return h, nil
}
