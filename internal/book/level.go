// Package book holds the per-venue order book state: levels, sides, and the
// book itself. Nothing in this package talks to a socket or a venue protocol;
// it is pure data plus the sort/comparison rules spec'd for book sides.
package book

import (
	"github.com/shopspring/decimal"
)

// Price and Qty carry the exact decimal value as sent on the wire. Binary
// floating-point is never used here; it is introduced only at the
// publication boundary in internal/aggregator.
type Price = decimal.Decimal
type Qty = decimal.Decimal

// Level is an opaque (price, quantity) snapshot. Levels are never mutated,
// only replaced wholesale alongside the rest of their side.
type Level struct {
	Price Price
	Qty   Qty
}

// Side identifies which side of a book a set of levels belongs to.
type Side int

const (
	Bids Side = iota
	Asks
)

// Less reports the ordering relation for a side: for bids, strictly
// higher price sorts first (descending); for asks, strictly lower price
// sorts first (ascending).
func (s Side) Less(a, b Level) bool {
	switch s {
	case Bids:
		return a.Price.GreaterThan(b.Price)
	default:
		return a.Price.LessThan(b.Price)
	}
}
