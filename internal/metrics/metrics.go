// Package metrics exposes Prometheus counters for ride activity and RPCs.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors registered for one server. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	ridesCreated     prometheus.Counter
	statusChanges    *prometheus.CounterVec
	rosterChanges    *prometheus.CounterVec
	ratings          prometheus.Counter
	messagesPosted   prometheus.Counter
	lookups          *prometheus.CounterVec
	rpcRequests      *prometheus.CounterVec
	rpcDuration      *prometheus.HistogramVec
}

// New creates and registers the collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		ridesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ridecrew",
			Name:      "rides_created_total",
			Help:      "Rides created.",
		}),
		statusChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ridecrew",
			Name:      "ride_status_changes_total",
			Help:      "Ride status transitions by target status.",
		}, []string{"status"}),
		rosterChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ridecrew",
			Name:      "ride_roster_changes_total",
			Help:      "Roster changes by action (join, leave, add, remove).",
		}, []string{"action"}),
		ratings: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ridecrew",
			Name:      "ride_ratings_total",
			Help:      "Ratings submitted, including overwrites.",
		}),
		messagesPosted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ridecrew",
			Name:      "chat_messages_total",
			Help:      "Chat messages posted.",
		}),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ridecrew",
			Name:      "destination_lookups_total",
			Help:      "Destination lookups by result.",
		}, []string{"result"}),
		rpcRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ridecrew",
			Name:      "rpc_requests_total",
			Help:      "RPCs by procedure and code.",
		}, []string{"procedure", "code"}),
		rpcDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "ridecrew",
			Name:      "rpc_duration_seconds",
			Help:      "RPC latency by procedure.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure"}),
	}

	m.registry.MustRegister(
		m.ridesCreated,
		m.statusChanges,
		m.rosterChanges,
		m.ratings,
		m.messagesPosted,
		m.lookups,
		m.rpcRequests,
		m.rpcDuration,
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) RideCreated() {
	if m == nil {
		return
	}
	m.ridesCreated.Inc()
}

func (m *Metrics) StatusChanged(status string) {
	if m == nil {
		return
	}
	m.statusChanges.WithLabelValues(status).Inc()
}

func (m *Metrics) RosterChanged(action string) {
	if m == nil {
		return
	}
	m.rosterChanges.WithLabelValues(action).Inc()
}

func (m *Metrics) RideRated() {
	if m == nil {
		return
	}
	m.ratings.Inc()
}

func (m *Metrics) MessagePosted() {
	if m == nil {
		return
	}
	m.messagesPosted.Inc()
}

// Lookup records a destination lookup; result is "ok", "no_fix", "invalid"
// (bad query) or "failed" (resolver error).
func (m *Metrics) Lookup(result string) {
	if m == nil {
		return
	}
	m.lookups.WithLabelValues(result).Inc()
}

// ObserveRPC records one RPC outcome.
func (m *Metrics) ObserveRPC(procedure, code string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.rpcRequests.WithLabelValues(procedure, code).Inc()
	m.rpcDuration.WithLabelValues(procedure).Observe(elapsed.Seconds())
}
