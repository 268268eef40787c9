package orderbook

import "github.com/ccyyhlg/lob/domain"

// PriceLevel is the FIFO queue of resting orders at a single price on
// one side of the book. Append/Unlink are O(1) via the orders'
// intrusive Prev/Next links; TotalQty/Count are cached so volume and
// order-count queries never walk the queue.
type PriceLevel struct {
	Price    domain.Price
	Head     *domain.Order
	Tail     *domain.Order
	TotalQty domain.Quantity
	Count    int
}

// newLevel starts an empty level at price.
func newLevel(price domain.Price) *PriceLevel {
	return &PriceLevel{Price: price}
}

// Empty reports whether the level's queue has no orders.
func (l *PriceLevel) Empty() bool {
	return l.Head == nil
}

// Front returns the oldest resting order (next to execute), or nil if
// the level is empty.
func (l *PriceLevel) Front() *domain.Order {
	return l.Head
}

// Append links order at the tail of the queue and updates the cached
// aggregates. O(1).
func (l *PriceLevel) Append(o *domain.Order) {
	o.Prev = l.Tail
	o.Next = nil
	if l.Tail != nil {
		l.Tail.Next = o
	} else {
		l.Head = o
	}
	l.Tail = o
	l.TotalQty += o.Remaining()
	l.Count++
}

// Unlink removes order from the queue via its intrusive links and
// updates the cached aggregates by the order's remaining quantity at
// the time of the call. O(1). The caller is responsible for releasing
// the order back to the pool afterward.
func (l *PriceLevel) Unlink(o *domain.Order) {
	if o.Prev != nil {
		o.Prev.Next = o.Next
	} else {
		l.Head = o.Next
	}
	if o.Next != nil {
		o.Next.Prev = o.Prev
	} else {
		l.Tail = o.Prev
	}
	l.TotalQty -= o.Remaining()
	l.Count--
	o.Prev = nil
	o.Next = nil
}

// Reduce decrements the cached aggregate remaining quantity by delta,
// used by the matching engine when it fills part of an in-queue order
// without unlinking it (the order stays queued with less remaining).
func (l *PriceLevel) Reduce(delta domain.Quantity) {
	l.TotalQty -= delta
}
