package aggregator

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/fd1az/orderbook-aggregator/api/orderbook"
	"github.com/fd1az/orderbook-aggregator/internal/apperror"
	"github.com/fd1az/orderbook-aggregator/internal/book"
	"github.com/fd1az/orderbook-aggregator/internal/broadcast"
	"github.com/fd1az/orderbook-aggregator/internal/venue/binance"
	"github.com/fd1az/orderbook-aggregator/internal/venue/bitstamp"
	"github.com/fd1az/orderbook-aggregator/internal/wsconn"
)

// Task owns both venue connections and both per-venue books for the
// lifetime of one symbol subscription. There is exactly one Task per
// running aggregator process; it terminates — fatally, by design, with no
// reconnect attempt — on the first decode failure, venue error event, or
// disconnect from either feed.
type Task struct {
	Symbol string

	Bitstamp *wsconn.Client
	Binance  *wsconn.Client

	bitstampBook book.Book
	binanceBook  book.Book

	summariesSent prometheus.Counter
	log           zerolog.Logger
}

// New constructs a Task for symbol, wiring pre-configured venue clients.
// Connect has not been called on either client yet; Run dials both.
// summariesSent may be nil, in which case published summaries are not
// counted.
func New(symbol string, bitstampClient, binanceClient *wsconn.Client, summariesSent prometheus.Counter, log zerolog.Logger) *Task {
	return &Task{
		Symbol:        symbol,
		Bitstamp:      bitstampClient,
		Binance:       binanceClient,
		summariesSent: summariesSent,
		log:           log.With().Str("component", "aggregator").Str("symbol", symbol).Logger(),
	}
}

// Run connects to both venues (Bitstamp first, per the original feed's
// dial order), sends Bitstamp's subscription frame, then fairly multiplexes
// both feeds until one of them fails or a conversion error occurs. Every
// merged, two-sided Summary is published to hub. Run returns the first
// fatal error encountered; there is no reconnect.
func (t *Task) Run(ctx context.Context, hub *broadcast.Hub[*orderbook.Summary]) error {
	if err := t.Bitstamp.Connect(ctx); err != nil {
		return apperror.Internal(apperror.CodeVenueConnectionFailed, "bitstamp", err)
	}
	defer t.Bitstamp.Close()

	subMsg, err := bitstamp.MakeSubscriptionPayload(t.Symbol)
	if err != nil {
		return apperror.Internal(apperror.CodeVenueSubscriptionError, "bitstamp", err)
	}
	if err := t.Bitstamp.Send(ctx, subMsg); err != nil {
		return apperror.Internal(apperror.CodeVenueSubscriptionError, "bitstamp", err)
	}

	if err := t.Binance.Connect(ctx); err != nil {
		return apperror.Internal(apperror.CodeVenueConnectionFailed, "binance", err)
	}
	defer t.Binance.Close()

	t.log.Info().Msg("connected to both venues, starting merge loop")

	for {
		var updated bool

		select {
		case <-ctx.Done():
			return ctx.Err()

		case payload, open := <-t.Bitstamp.Messages():
			if !open {
				return t.disconnectErr("bitstamp", t.Bitstamp.Err())
			}

			kind, bids, asks, err := bitstamp.Decode(payload)
			if err != nil {
				if venueErr, ok := err.(*bitstamp.VenueError); ok {
					return apperror.Internal(apperror.CodeVenueError, "bitstamp: "+venueErr.Error(), err)
				}
				return apperror.Internal(apperror.CodeVenueDecodeFailed, "bitstamp", err)
			}
			if kind != bitstamp.EventData {
				continue
			}
			t.bitstampBook.Replace(bids, asks)
			updated = true

		case payload, open := <-t.Binance.Messages():
			if !open {
				return t.disconnectErr("binance", t.Binance.Err())
			}

			bids, asks, err := binance.Decode(payload)
			if err != nil {
				return apperror.Internal(apperror.CodeVenueDecodeFailed, "binance", err)
			}
			t.binanceBook.Replace(bids, asks)
			updated = true
		}

		if !updated {
			continue
		}

		summary, ok, err := BuildSummary(&t.bitstampBook, &t.binanceBook)
		if err != nil {
			return apperror.Internal(apperror.CodeConversionFailed, "publish", err)
		}
		if !ok {
			continue
		}

		if t.summariesSent != nil {
			t.summariesSent.Inc()
		}
		hub.Publish(summary)
	}
}

func (t *Task) disconnectErr(venue string, cause error) error {
	if cause != nil {
		return apperror.Internal(apperror.CodeVenueDisconnected, venue, cause)
	}
	return apperror.New(apperror.CodeVenueDisconnected, apperror.WithContext(venue))
}

// BitstampURL and BinanceURL build the per-venue feed URLs the caller wires
// into wsconn.Config before constructing a Task.
func BitstampURL() string             { return bitstamp.Host }
func BinanceURL(symbol string) string { return binance.URL(symbol) }
