// Package orderbook implements the book side maps and the integrated
// matching engine: price-time priority matching, resting/cancel/modify,
// and O(1)-or-near-O(1) market-data queries, for a single instrument.
//
// A Book is not internally synchronized (spec: single-threaded
// cooperative scheduling). Every public method runs to completion with
// no suspension point; callers that need concurrent access must
// serialize it externally, e.g. with a mutex or by pinning one Book to
// one goroutine/event loop. The trade callback must not re-enter the
// Book it was invoked from.
package orderbook

import (
	"github.com/emirpasic/gods/v2/maps/hashmap"
	"github.com/emirpasic/gods/v2/trees/redblacktree"

	"github.com/ccyyhlg/lob/domain"
	"github.com/ccyyhlg/lob/pool"
)

// TradeCallback is invoked synchronously, in generation order, once
// per trade, before Submit returns. It must not call back into the
// Book that invoked it.
type TradeCallback func(domain.Trade)

// Book orchestrates the matching engine for one instrument. bids and
// asks are ordered maps keyed by price, each built with a comparator
// that makes the tree's own ascending order equal to "best price
// first" for that side — bids use a reversed comparator (highest
// price sorts first), asks use the natural one (lowest price sorts
// first) — so Left() and an ascending Iterator() both already walk
// best-to-worst on either side without a second sort step.
type Book struct {
	bids *redblacktree.Tree[domain.Price, *PriceLevel]
	asks *redblacktree.Tree[domain.Price, *PriceLevel]

	index *hashmap.Map[domain.OrderID, *domain.Order]
	pool  *pool.Pool

	nextID      domain.OrderID
	nextTS      uint64
	tradeCount  uint64
	totalVolume domain.Quantity

	onTrade TradeCallback
}

func bidComparator(a, b domain.Price) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	default:
		return 0
	}
}

func askComparator(a, b domain.Price) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// New creates an empty book backed by a pool with room for
// poolCapacity live orders. The order index is expected to hold on the
// order of poolCapacity/2 resting orders at steady state, mirroring
// original_source's orders_.reserve(pool_capacity / 2); gods/v2's
// hashmap.Map has no pre-size constructor, so there is nothing to call
// here beyond this note.
func New(poolCapacity int) *Book {
	return &Book{
		bids:  redblacktree.NewWith[domain.Price, *PriceLevel](bidComparator),
		asks:  redblacktree.NewWith[domain.Price, *PriceLevel](askComparator),
		index: hashmap.New[domain.OrderID, *domain.Order](),
		pool:  pool.New(poolCapacity),
	}
}

// SetTradeCallback installs a sink invoked for every trade the book
// produces, synchronously, before the submitting call returns. Pass
// nil to remove it.
func (b *Book) SetTradeCallback(cb TradeCallback) {
	b.onTrade = cb
}

func (b *Book) levels(side domain.Side) *redblacktree.Tree[domain.Price, *PriceLevel] {
	if side == domain.SideBuy {
		return b.bids
	}
	return b.asks
}

// Submit assigns a fresh id and timestamp to a new order, matches it
// against the opposite side, then rests (limit) or discards (market)
// any residual quantity. Returns pool.ErrExhausted, with no book state
// changed, if the pool has no free slot.
func (b *Book) Submit(side domain.Side, typ domain.OrderType, price domain.Price, qty domain.Quantity) (SubmitResult, error) {
	o, err := b.pool.Acquire()
	if err != nil {
		return SubmitResult{}, err
	}

	b.nextID++
	b.nextTS++
	o.ID = b.nextID
	o.Side = side
	o.Type = typ
	o.Price = price
	o.Quantity = qty
	o.Filled = 0
	o.Status = domain.OrderStatusNew
	o.Timestamp = b.nextTS

	trades := b.match(o)

	result := SubmitResult{OrderID: o.ID, Trades: trades}

	switch {
	// qty > 0 excludes a zero-quantity submission, which must still
	// fall through to the resting branch below (it was never filled,
	// it started at zero) rather than being reported as Filled here.
	case o.Remaining() == 0 && qty > 0:
		o.Status = domain.OrderStatusFilled
		result.Status = domain.OrderStatusFilled
		result.FilledQty = o.Filled
		result.RemainingQty = 0
		b.pool.Release(o)

	case typ == domain.OrderTypeLimit:
		if len(trades) > 0 {
			o.Status = domain.OrderStatusPartiallyFilled
		} else {
			o.Status = domain.OrderStatusActive
		}
		b.rest(o)
		result.Status = o.Status
		result.FilledQty = o.Filled
		result.RemainingQty = o.Remaining()

	default: // unfilled market order: residual is abandoned
		o.Status = domain.OrderStatusCancelled
		result.Status = domain.OrderStatusCancelled
		result.FilledQty = o.Filled
		result.RemainingQty = o.Remaining()
		b.pool.Release(o)
	}

	return result, nil
}

// rest links a limit order's residual into its side's level (creating
// the level if this is the first order at that price) and into the
// order index.
func (b *Book) rest(o *domain.Order) {
	tree := b.levels(o.Side)
	level, found := tree.Get(o.Price)
	if !found {
		level = newLevel(o.Price)
		tree.Put(o.Price, level)
	}
	level.Append(o)
	b.index.Put(o.ID, o)
}

// match drives the aggressive order o against the opposite side,
// walking best level to worst, and each level's queue head to tail,
// until o is filled, the opposite side is exhausted, or (for a limit
// order) the next best level no longer crosses o's limit price.
func (b *Book) match(o *domain.Order) []domain.Trade {
	opposite := b.levels(oppositeSide(o.Side))

	var trades []domain.Trade
	for o.Remaining() > 0 {
		node := opposite.Left()
		if node == nil {
			break
		}
		level := node.Value
		if o.Type == domain.OrderTypeLimit && !crosses(o.Side, o.Price, level.Price) {
			break
		}

		passive := level.Front()
		for passive != nil && o.Remaining() > 0 {
			next := passive.Next
			qty := min(o.Remaining(), passive.Remaining())

			o.Fill(qty)
			passive.Fill(qty)
			level.Reduce(qty)

			// timestamp counter is not advanced per trade, only per Submit
			trade := domain.NewTrade(o, passive, qty, b.nextTS)
			trades = append(trades, trade)
			b.tradeCount++
			b.totalVolume += qty
			if b.onTrade != nil {
				b.onTrade(trade)
			}

			if passive.IsFilled() {
				level.Unlink(passive)
				b.index.Remove(passive.ID)
				b.pool.Release(passive)
			}

			passive = next
		}

		if level.Empty() {
			opposite.Remove(level.Price)
		}
	}

	return trades
}

func oppositeSide(s domain.Side) domain.Side {
	if s == domain.SideBuy {
		return domain.SideSell
	}
	return domain.SideBuy
}

// crosses reports whether an incoming limit order on side at price is
// crossable with a resting level at levelPrice: a buy crosses an ask
// iff levelPrice <= price; a sell crosses a bid iff levelPrice >= price.
func crosses(side domain.Side, price, levelPrice domain.Price) bool {
	if side == domain.SideBuy {
		return levelPrice <= price
	}
	return levelPrice >= price
}

// Cancel unlinks a resting order from its level (removing the level if
// it empties), removes it from the index, and releases it to the
// pool. Returns false, with no state change, if no such resting order
// exists.
func (b *Book) Cancel(id domain.OrderID) bool {
	o, found := b.index.Get(id)
	if !found {
		return false
	}

	tree := b.levels(o.Side)
	if level, ok := tree.Get(o.Price); ok {
		level.Unlink(o)
		if level.Empty() {
			tree.Remove(o.Price)
		}
	}

	b.index.Remove(id)
	o.Status = domain.OrderStatusCancelled
	b.pool.Release(o)
	return true
}

// Modify changes a resting order's total quantity.
//
//   - newQty <= filled quantity: equivalent to Cancel.
//   - newQty < total quantity (reduce): updates the order and the
//     level's cached quantity without re-linking — time priority is
//     preserved.
//   - newQty > total quantity (increase): cancels the order and
//     submits a fresh limit at the same side/price with newQty,
//     losing time priority. The new order's id is not returned; see
//     SPEC_FULL.md's Open Questions note.
//   - newQty == total quantity: no-op.
//
// Returns false if the order is not currently resting.
func (b *Book) Modify(id domain.OrderID, newQty domain.Quantity) bool {
	o, found := b.index.Get(id)
	if !found {
		return false
	}

	if newQty <= o.Filled {
		return b.Cancel(id)
	}

	if newQty < o.Quantity {
		oldRemaining := o.Remaining()
		o.Quantity = newQty
		newRemaining := o.Remaining()
		if level, ok := b.levels(o.Side).Get(o.Price); ok {
			level.Reduce(oldRemaining - newRemaining)
		}
		return true
	}

	if newQty > o.Quantity {
		side, price := o.Side, o.Price
		b.Cancel(id)
		b.Submit(side, domain.OrderTypeLimit, price, newQty)
		return true
	}

	return true
}
