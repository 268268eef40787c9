package orderbook

import "github.com/ccyyhlg/lob/domain"

// BestBid returns the highest resting buy price, or InvalidPrice if
// the bid side is empty.
func (b *Book) BestBid() domain.Price {
	return bestPrice(b.bids)
}

// BestAsk returns the lowest resting sell price, or InvalidPrice if
// the ask side is empty.
func (b *Book) BestAsk() domain.Price {
	return bestPrice(b.asks)
}

// Spread returns BestAsk - BestBid, or InvalidPrice if either side is
// empty.
func (b *Book) Spread() domain.Price {
	bid, ask := b.BestBid(), b.BestAsk()
	if bid == domain.InvalidPrice || ask == domain.InvalidPrice {
		return domain.InvalidPrice
	}
	return ask - bid
}

// VolumeAtPrice returns the cached aggregate remaining quantity at
// price on side, or 0 if no level exists there.
func (b *Book) VolumeAtPrice(side domain.Side, price domain.Price) domain.Quantity {
	if level, ok := b.levels(side).Get(price); ok {
		return level.TotalQty
	}
	return 0
}

// OrderCountAtPrice returns the number of resting orders at price on
// side, or 0 if no level exists there.
func (b *Book) OrderCountAtPrice(side domain.Side, price domain.Price) int {
	if level, ok := b.levels(side).Get(price); ok {
		return level.Count
	}
	return 0
}

// BidDepth returns up to n bid levels, best (highest price) first, as
// a point-in-time copy unaffected by later book mutations.
func (b *Book) BidDepth(n int) []DepthLevel {
	return depth(b.bids, n)
}

// AskDepth returns up to n ask levels, best (lowest price) first, as a
// point-in-time copy unaffected by later book mutations.
func (b *Book) AskDepth(n int) []DepthLevel {
	return depth(b.asks, n)
}

// TotalOrders returns the number of resting orders across both sides.
func (b *Book) TotalOrders() int {
	return b.index.Size()
}

// BidLevels returns the number of distinct bid price levels.
func (b *Book) BidLevels() int {
	return b.bids.Size()
}

// AskLevels returns the number of distinct ask price levels.
func (b *Book) AskLevels() int {
	return b.asks.Size()
}

// TotalTrades returns the number of trades executed over the life of
// the book.
func (b *Book) TotalTrades() uint64 {
	return b.tradeCount
}

// TotalVolume returns the cumulative traded quantity over the life of
// the book.
func (b *Book) TotalVolume() domain.Quantity {
	return b.totalVolume
}

// Empty reports whether the book currently has no resting orders.
func (b *Book) Empty() bool {
	return b.index.Empty()
}
