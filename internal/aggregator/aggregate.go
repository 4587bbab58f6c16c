// Package aggregator implements the aggregation step and the long-running
// aggregator task that owns both venue connections and book slots, merges
// them, and publishes a Summary on every update.
package aggregator

import (
	"fmt"
	"math"

	"github.com/fd1az/orderbook-aggregator/api/orderbook"
	"github.com/fd1az/orderbook-aggregator/internal/book"
	"github.com/fd1az/orderbook-aggregator/internal/mergeiter"
)

// Depth is the hard cap on the number of levels published per side.
const Depth = 10

// VenueBitstamp and VenueBinance are the lowercase venue tags SummaryLevels
// carry.
const (
	VenueBitstamp = "bitstamp"
	VenueBinance  = "binance"
)

func priceCmp(a, b book.Level) int {
	return a.Price.Cmp(b.Price)
}

// aggregateLevels merges a Bitstamp side and a Binance side under dir,
// tags each emitted level with its venue, and takes the top Depth. Bitstamp
// is always the "A" argument and Binance always "B": combined with the
// merge iterator's B-wins-on-tie rule, this means a price tie at the best
// level is resolved in Binance's favor. This is a fixed, documented
// convention — changing the argument order changes the tie-break and must
// not be done without updating both together.
func aggregateLevels(bitstampSide, binanceSide book.BookSide, dir mergeiter.Direction) ([]*orderbook.Level, error) {
	chain := mergeiter.NewChain(bitstampSide, binanceSide, priceCmp, dir)
	tagged := chain.Take(Depth)

	out := make([]*orderbook.Level, len(tagged))
	for i, t := range tagged {
		venue := VenueBitstamp
		if t.Tag == mergeiter.Right {
			venue = VenueBinance
		}
		price, _ := t.Value.Price.Float64()
		if math.IsInf(price, 0) || math.IsNaN(price) {
			return nil, &ErrConversion{Field: "price", Value: t.Value.Price.String()}
		}
		amount, _ := t.Value.Qty.Float64()
		if math.IsInf(amount, 0) || math.IsNaN(amount) {
			return nil, &ErrConversion{Field: "quantity", Value: t.Value.Qty.String()}
		}
		out[i] = &orderbook.Level{Exchange: venue, Price: price, Amount: amount}
	}
	return out, nil
}

// BuildSummary computes the merged Summary from both venues' current books.
// If either computed side ends up empty the book is one-sided and no
// Summary is produced (ok=false, ok meaning "safe to publish"). A crossed
// book (negative spread) is not filtered; it is a legitimate transient
// observation of two venues momentarily disagreeing.
//
// An error here means a price or quantity could not be represented as a
// finite float64 — a programming invariant violation that the caller must
// treat as fatal, not a normal empty-book outcome.
func BuildSummary(bitstampBook, binanceBook *book.Book) (summary *orderbook.Summary, ok bool, err error) {
	bids, err := aggregateLevels(bitstampBook.Bids, binanceBook.Bids, mergeiter.Descending)
	if err != nil {
		return nil, false, err
	}
	asks, err := aggregateLevels(bitstampBook.Asks, binanceBook.Asks, mergeiter.Ascending)
	if err != nil {
		return nil, false, err
	}

	if len(bids) == 0 || len(asks) == 0 {
		return nil, false, nil
	}

	spread := asks[0].Price - bids[0].Price

	return &orderbook.Summary{
		Bids:   bids,
		Asks:   asks,
		Spread: spread,
	}, true, nil
}

// ErrConversion signals that a decimal price or quantity could not be
// represented as a finite float64 at the publication boundary — a
// programming invariant violation, not a recoverable condition.
type ErrConversion struct {
	Field string
	Value string
}

func (e *ErrConversion) Error() string {
	return fmt.Sprintf("aggregator: %s %q is not representable as float64", e.Field, e.Value)
}
