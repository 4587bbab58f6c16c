package aggregator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fd1az/orderbook-aggregator/internal/book"
)

func lvl(price, qty string) book.Level {
	return book.Level{Price: decimal.RequireFromString(price), Qty: decimal.RequireFromString(qty)}
}

func TestBuildSummary_DisjointPrices(t *testing.T) {
	bitstamp := &book.Book{}
	bitstamp.Replace(book.BookSide{lvl("100.5", "1"), lvl("100.3", "2")}, book.BookSide{})

	binance := &book.Book{}
	binance.Replace(book.BookSide{lvl("100.4", "3"), lvl("100.2", "4")}, book.BookSide{lvl("101", "1")})

	// Give both asks sides a nonzero entry so the book is two-sided.
	bitstamp.Asks = book.BookSide{lvl("101.5", "1")}

	summary, ok, err := BuildSummary(bitstamp, binance)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, summary.Bids, 4)

	assert.Equal(t, "bitstamp", summary.Bids[0].Exchange)
	assert.Equal(t, 100.5, summary.Bids[0].Price)
	assert.Equal(t, "binance", summary.Bids[1].Exchange)
	assert.Equal(t, 100.4, summary.Bids[1].Price)
	assert.Equal(t, "bitstamp", summary.Bids[2].Exchange)
	assert.Equal(t, 100.3, summary.Bids[2].Price)
	assert.Equal(t, "binance", summary.Bids[3].Exchange)
	assert.Equal(t, 100.2, summary.Bids[3].Price)
}

func TestBuildSummary_TieGoesToBinance(t *testing.T) {
	bitstamp := &book.Book{}
	bitstamp.Replace(book.BookSide{lvl("100.5", "1")}, book.BookSide{lvl("101", "1")})

	binance := &book.Book{}
	binance.Replace(book.BookSide{lvl("100.5", "9")}, book.BookSide{lvl("101", "1")})

	summary, ok, err := BuildSummary(bitstamp, binance)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, summary.Bids, 2)

	assert.Equal(t, "binance", summary.Bids[0].Exchange)
	assert.Equal(t, 9.0, summary.Bids[0].Amount)
	assert.Equal(t, "bitstamp", summary.Bids[1].Exchange)
}

func TestBuildSummary_OneSidedBookProducesNoSummary(t *testing.T) {
	bitstamp := &book.Book{}
	bitstamp.Replace(book.BookSide{lvl("100", "1")}, book.BookSide{})

	binance := &book.Book{}
	binance.Replace(book.BookSide{}, book.BookSide{})

	_, ok, err := BuildSummary(bitstamp, binance)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBuildSummary_DepthClamp(t *testing.T) {
	var bitstampBids, binanceBids book.BookSide
	for i := 0; i < 20; i++ {
		bitstampBids = append(bitstampBids, lvl(decimal.NewFromInt(int64(200-i)).String(), "1"))
		binanceBids = append(binanceBids, lvl(decimal.NewFromInt(int64(199-i)).String(), "1"))
	}

	bitstamp := &book.Book{}
	bitstamp.Replace(bitstampBids, book.BookSide{lvl("1000", "1")})

	binance := &book.Book{}
	binance.Replace(binanceBids, book.BookSide{lvl("1000", "1")})

	summary, ok, err := BuildSummary(bitstamp, binance)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, summary.Bids, Depth)

	for i := 0; i < Depth-1; i++ {
		assert.GreaterOrEqual(t, summary.Bids[i].Price, summary.Bids[i+1].Price)
	}
	assert.Equal(t, 200.0, summary.Bids[0].Price)
}

func TestBuildSummary_CrossedBookStillPublishes(t *testing.T) {
	bitstamp := &book.Book{}
	bitstamp.Replace(book.BookSide{lvl("101", "1")}, book.BookSide{})

	binance := &book.Book{}
	binance.Replace(book.BookSide{}, book.BookSide{lvl("100", "1")})

	summary, ok, err := BuildSummary(bitstamp, binance)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, -1.0, summary.Spread)
}
