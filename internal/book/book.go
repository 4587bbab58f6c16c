package book

import "sort"

// BookSide is an ordered sequence of Levels for one side of one venue's
// book. Duplicates in price are preserved in input (venue-reported) order.
type BookSide []Level

// SortStable re-sorts the side in place under its ordering relation. The
// sort is stable so that levels at an equal price retain the order the
// venue reported them in.
func (bs BookSide) SortStable(side Side) {
	sort.SliceStable(bs, func(i, j int) bool {
		return side.Less(bs[i], bs[j])
	})
}

// Book is one venue's current top-of-book snapshot: a pair of sides, each
// replaced wholesale on every update from that venue. A Book carries no
// venue identity of its own — the aggregator task owns exactly one Book per
// venue and supplies the venue tag when it publishes a Summary.
type Book struct {
	Bids BookSide
	Asks BookSide
}

// Replace swaps in a freshly decoded pair of sides and re-sorts both
// defensively (bids descending, asks ascending), stably.
func (b *Book) Replace(bids, asks BookSide) {
	b.Bids = bids
	b.Asks = asks
	b.Bids.SortStable(Bids)
	b.Asks.SortStable(Asks)
}
