// Package rpcserver implements the BookSummary streaming RPC surface: one
// subscription per stream, no replay, and a bounded, non-blocking fan-out
// from the hub the aggregator task publishes to.
package rpcserver

import (
	"github.com/rs/zerolog"

	"github.com/fd1az/orderbook-aggregator/api/orderbook"
	"github.com/fd1az/orderbook-aggregator/internal/broadcast"
	"github.com/fd1az/orderbook-aggregator/internal/metrics"
)

// Service implements orderbook.OrderbookAggregatorServer by subscribing to
// a broadcast.Hub for the duration of each BookSummary call.
type Service struct {
	orderbook.UnimplementedOrderbookAggregatorServer

	hub *broadcast.Hub[*orderbook.Summary]
	reg *metrics.Registry
	log zerolog.Logger
}

// New builds a Service backed by hub. reg may be nil, in which case
// per-subscriber lag is not recorded.
func New(hub *broadcast.Hub[*orderbook.Summary], reg *metrics.Registry, log zerolog.Logger) *Service {
	return &Service{hub: hub, reg: reg, log: log.With().Str("component", "rpcserver").Logger()}
}

// BookSummary streams every Summary published after the subscription is
// established. It never replays prior values and returns only when the
// stream's context is cancelled or a Send fails.
func (s *Service) BookSummary(_ *orderbook.Empty, stream orderbook.OrderbookAggregator_BookSummaryServer) error {
	var onLag func()
	if s.reg != nil {
		onLag = s.reg.BroadcastLagged.WithLabelValues("stream").Inc
	}

	sub := s.hub.Subscribe(onLag)
	defer sub.Unsubscribe()

	if s.reg != nil {
		s.reg.Subscribers.Inc()
		defer s.reg.Subscribers.Dec()
	}

	ctx := stream.Context()
	s.log.Info().Msg("subscriber connected")
	defer s.log.Info().Msg("subscriber disconnected")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case summary, open := <-sub.C:
			if !open {
				return nil
			}
			if err := stream.Send(summary); err != nil {
				return err
			}
		}
	}
}
