// Package binance decodes the Binance partial-book depth stream into the
// common internal level representation. It is a stateless pure function
// package: no socket, no book state, just wire-frame decoding.
package binance

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fd1az/orderbook-aggregator/internal/book"
)

// rawLevel is a single [price, quantity] pair as Binance sends it: two JSON
// strings, never numbers, so exact decimals survive the decode.
type rawLevel [2]string

// depthFrame is the shape of every Binance @depth20 frame. Anything that
// doesn't unmarshal into this (missing bids/asks) is a decode failure.
type depthFrame struct {
	Bids []rawLevel `json:"bids"`
	Asks []rawLevel `json:"asks"`
}

// Decode parses one Binance @depth20@100ms text frame into bid/ask sides.
// Binance frames are always book-update shape; there is no administrative
// or error event taxonomy to discriminate, unlike Bitstamp.
func Decode(frame []byte) (bids, asks book.BookSide, err error) {
	var f depthFrame
	if err := json.Unmarshal(frame, &f); err != nil {
		return nil, nil, fmt.Errorf("binance: decode frame: %w", err)
	}
	if f.Bids == nil || f.Asks == nil {
		return nil, nil, fmt.Errorf("binance: frame missing bids/asks")
	}

	bids, err = toLevels(f.Bids)
	if err != nil {
		return nil, nil, fmt.Errorf("binance: decode bids: %w", err)
	}
	asks, err = toLevels(f.Asks)
	if err != nil {
		return nil, nil, fmt.Errorf("binance: decode asks: %w", err)
	}
	return bids, asks, nil
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

// URL builds the Binance partial-depth WebSocket endpoint for symbol, at the
// top-20, 100ms-cadence stream the aggregator consumes. Binance requires no
// subscription frame — the symbol and stream parameters are in the path.
func URL(symbol string) string {
	return fmt.Sprintf("wss://stream.binance.com:9443/ws/%s@depth20@100ms", symbol)
}
