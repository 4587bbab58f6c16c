package book

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func lvl(price, qty string) Level {
	return Level{
		Price: decimal.RequireFromString(price),
		Qty:   decimal.RequireFromString(qty),
	}
}

func prices(levels BookSide) []string {
	out := make([]string, len(levels))
	for i, l := range levels {
		out[i] = l.Price.String()
	}
	return out
}

func TestSide_Less_BidsDescending(t *testing.T) {
	assert.True(t, Bids.Less(lvl("100", "1"), lvl("99", "1")))
	assert.False(t, Bids.Less(lvl("99", "1"), lvl("100", "1")))
	assert.False(t, Bids.Less(lvl("100", "1"), lvl("100", "1")))
}

func TestSide_Less_AsksAscending(t *testing.T) {
	assert.True(t, Asks.Less(lvl("99", "1"), lvl("100", "1")))
	assert.False(t, Asks.Less(lvl("100", "1"), lvl("99", "1")))
	assert.False(t, Asks.Less(lvl("100", "1"), lvl("100", "1")))
}

func TestBookSide_SortStable_BidsDescending(t *testing.T) {
	bids := BookSide{lvl("100", "1"), lvl("102", "2"), lvl("101", "3")}
	bids.SortStable(Bids)
	assert.Equal(t, []string{"102", "101", "100"}, prices(bids))
}

func TestBookSide_SortStable_AsksAscending(t *testing.T) {
	asks := BookSide{lvl("102", "1"), lvl("100", "2"), lvl("101", "3")}
	asks.SortStable(Asks)
	assert.Equal(t, []string{"100", "101", "102"}, prices(asks))
}

func TestBookSide_SortStable_PreservesOrderOnTies(t *testing.T) {
	bids := BookSide{lvl("100", "1"), lvl("100", "2"), lvl("100", "3")}
	bids.SortStable(Bids)
	assert.Equal(t, []string{"1", "2", "3"}, []string{
		bids[0].Qty.String(), bids[1].Qty.String(), bids[2].Qty.String(),
	})
}

func TestBook_Replace_SortsBothSidesDefensively(t *testing.T) {
	var b Book
	b.Replace(
		BookSide{lvl("100", "1"), lvl("102", "2")},
		BookSide{lvl("105", "1"), lvl("103", "2")},
	)

	assert.Equal(t, []string{"102", "100"}, prices(b.Bids))
	assert.Equal(t, []string{"103", "105"}, prices(b.Asks))
}

func TestBook_Replace_SwapsOutPriorLevelsWholesale(t *testing.T) {
	var b Book
	b.Replace(BookSide{lvl("100", "1")}, BookSide{lvl("101", "1")})
	b.Replace(BookSide{lvl("200", "1")}, BookSide{lvl("201", "1")})

	assert.Equal(t, []string{"200"}, prices(b.Bids))
	assert.Equal(t, []string{"201"}, prices(b.Asks))
}
