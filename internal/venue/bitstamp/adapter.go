// Package bitstamp decodes Bitstamp's order-book WebSocket feed and builds
// the subscription frame it requires. Stateless pure functions, same shape
// as internal/venue/binance.
package bitstamp

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fd1az/orderbook-aggregator/internal/book"
)

// Host is the Bitstamp WebSocket endpoint. The upstream feed advertises this
// with a trailing dot (a root-zone DNS reference); both forms resolve
// identically, so it is normalized here without the dot. See DESIGN.md.
const Host = "wss://ws.bitstamp.net"

// EventKind discriminates the taxonomy of frames Bitstamp sends, tagged by
// the wire "event" field.
type EventKind int

const (
	// EventData covers both the plain "data" event and the update itself;
	// Decode extracts data.bids/data.asks for either.
	EventData EventKind = iota
	// EventAdministrative is e.g. bts:subscription_succeeded — ignore and loop.
	EventAdministrative
	// EventError is bts:error — a venue error the aggregator must surface.
	EventError
)

// VenueError carries the code and message from a bts:error frame.
type VenueError struct {
	Code    int64
	Message string
}

func (e *VenueError) Error() string {
	return fmt.Sprintf("bitstamp venue error %d: %s", e.Code, e.Message)
}

type rawLevel [2]string

type bookUpdate struct {
	Bids []rawLevel `json:"bids"`
	Asks []rawLevel `json:"asks"`
}

// frame is the envelope every Bitstamp message shares: a discriminator
// "event" field plus event-specific payload fields, all optional depending
// on which event this is.
type frame struct {
	Event   string          `json:"event"`
	Channel string          `json:"channel"`
	Data    json.RawMessage `json:"data"`
	Code    int64           `json:"code"`
	Message string          `json:"message"`
}

// Decode parses one Bitstamp text frame. For EventData it also returns the
// decoded bid/ask sides; for the other kinds those are nil. A *VenueError is
// returned as-is (not wrapped) when Event == "bts:error"; any other unmarshal or
// decimal-parse failure is returned as a plain decode error.
func Decode(raw []byte) (kind EventKind, bids, asks book.BookSide, err error) {
	var f frame
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, nil, nil, fmt.Errorf("bitstamp: decode frame: %w", err)
	}

	switch f.Event {
	case "bts:subscription_succeeded":
		return EventAdministrative, nil, nil, nil
	case "bts:error":
		return EventError, nil, nil, &VenueError{Code: f.Code, Message: f.Message}
	default:
		// "data" (the only other value seen in practice) and anything
		// else unrecognized both carry data.bids/data.asks.
		var bu bookUpdate
		if err := json.Unmarshal(f.Data, &bu); err != nil {
			return 0, nil, nil, fmt.Errorf("bitstamp: decode data: %w", err)
		}
		bids, err = toLevels(bu.Bids)
		if err != nil {
			return 0, nil, nil, fmt.Errorf("bitstamp: decode bids: %w", err)
		}
		asks, err = toLevels(bu.Asks)
		if err != nil {
			return 0, nil, nil, fmt.Errorf("bitstamp: decode asks: %w", err)
		}
		return EventData, bids, asks, nil
	}
}

func toLevels(raw []rawLevel) (book.BookSide, error) {
	out := make(book.BookSide, len(raw))
	for i, r := range raw {
		price, err := decimal.NewFromString(r[0])
		if err != nil {
			return nil, fmt.Errorf("price %q: %w", r[0], err)
		}
		qty, err := decimal.NewFromString(r[1])
		if err != nil {
			return nil, fmt.Errorf("quantity %q: %w", r[1], err)
		}
		out[i] = book.Level{Price: price, Qty: qty}
	}
	return out, nil
}

// subscriptionPayload mirrors the exact JSON shape make_subscription_payload
// must emit: {"event":"bts:subscribe","data":{"channel":"order_book_<symbol>"}}.
type subscriptionPayload struct {
	Event string `json:"event"`
	Data  struct {
		Channel string `json:"channel"`
	} `json:"data"`
}

// MakeSubscriptionPayload builds the exact text frame to send immediately
// after the Bitstamp socket opens, for the given symbol.
func MakeSubscriptionPayload(symbol string) ([]byte, error) {
	p := subscriptionPayload{Event: "bts:subscribe"}
	p.Data.Channel = "order_book_" + symbol
	return json.Marshal(p)
}
