// Package metrics exposes Prometheus metrics for the RPC surface, uploads
// and game activity.
package metrics

import (
	"context"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "yellowcar"

// Metrics owns a private registry and the collectors registered on it.
// It implements game.Observer and blob.Observer.
type Metrics struct {
	registry *prometheus.Registry

	rpcInFlight prometheus.Gauge
	rpcRequests *prometheus.CounterVec
	rpcDuration *prometheus.HistogramVec

	spotsSubmitted     prometheus.Counter
	friendshipsCreated prometheus.Counter
	uploads            *prometheus.CounterVec
}

// New creates the collectors and registers them, together with the Go
// runtime and process collectors, on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		rpcInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "rpc",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight RPCs.",
		}),
		rpcRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rpc",
			Name:      "requests_total",
			Help:      "Total number of RPCs handled, by procedure and Connect code.",
		}, []string{"procedure", "code"}),
		rpcDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "rpc",
			Name:      "request_duration_seconds",
			Help:      "Duration of RPCs.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		}, []string{"procedure"}),

		spotsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "game",
			Name:      "spots_submitted_total",
			Help:      "Total number of car spots recorded.",
		}),
		friendshipsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "game",
			Name:      "friendships_created_total",
			Help:      "Total number of friendships created.",
		}),
		uploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "blob",
			Name:      "uploads_total",
			Help:      "Total number of image uploads, by result.",
		}, []string{"result"}),
	}

	m.registry.MustRegister(
		m.rpcInFlight,
		m.rpcRequests,
		m.rpcDuration,
		m.spotsSubmitted,
		m.friendshipsCreated,
		m.uploads,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
	return m
}

// Registry returns the registry the collectors live on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns an HTTP handler exposing the registered metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Interceptor records count, latency and in-flight RPCs per procedure.
func (m *Metrics) Interceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			procedure := req.Spec().Procedure
			start := time.Now()

			m.rpcInFlight.Inc()
			defer m.rpcInFlight.Dec()

			resp, err := next(ctx, req)

			code := "ok"
			if err != nil {
				code = connect.CodeOf(err).String()
			}
			m.rpcRequests.WithLabelValues(procedure, code).Inc()
			m.rpcDuration.WithLabelValues(procedure).Observe(time.Since(start).Seconds())
			return resp, err
		}
	}
}

func (m *Metrics) SpotSubmitted(string) {
	m.spotsSubmitted.Inc()
}

func (m *Metrics) FriendshipCreated() {
	m.friendshipsCreated.Inc()
}

func (m *Metrics) UploadFinished(result string) {
	m.uploads.WithLabelValues(result).Inc()
}
