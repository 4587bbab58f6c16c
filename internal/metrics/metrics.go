// Package metrics exposes the Prometheus instruments the aggregator records
// against: per-venue connection state, received messages, published summaries,
// and broadcast lag/drops.
package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry groups the instruments the aggregator touches. It is built once
// at startup and threaded into the components that record against it; there
// is no global registry, so tests can construct their own.
type Registry struct {
	ConnectionState  *prometheus.GaugeVec
	MessagesReceived *prometheus.CounterVec
	SummariesSent    prometheus.Counter
	BroadcastLagged  *prometheus.CounterVec
	Subscribers      prometheus.Gauge
}

// NewRegistry creates and registers the aggregator's instruments against reg.
func NewRegistry(reg prometheus.Registerer) *Registry {
	m := &Registry{
		ConnectionState: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "orderbook_venue_connection_state",
			Help: "Venue connection state (0=disconnected, 1=connecting, 2=connected, 3=closed).",
		}, []string{"venue"}),
		MessagesReceived: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "orderbook_venue_messages_received_total",
			Help: "Total venue feed frames received, counted before decoding.",
		}, []string{"venue"}),
		SummariesSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orderbook_summaries_published_total",
			Help: "Total merged Summary values published to the broadcast hub.",
		}),
		BroadcastLagged: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "orderbook_broadcast_subscriber_lagged_total",
			Help: "Total times a subscriber's cursor was advanced to skip buffered summaries it fell behind on.",
		}, []string{"subscriber"}),
		Subscribers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "orderbook_broadcast_subscribers",
			Help: "Current number of active BookSummary stream subscribers.",
		}),
	}

	reg.MustRegister(
		m.ConnectionState,
		m.MessagesReceived,
		m.SummariesSent,
		m.BroadcastLagged,
		m.Subscribers,
	)

	return m
}

// Serve starts a blocking HTTP server exposing /metrics on addr.
func Serve(addr string, gatherer prometheus.Gatherer) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	server := &http.Server{
		Addr:    addr,
		Handler: mux,
	}
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("metrics server: %w", err)
	}
	return nil
}
