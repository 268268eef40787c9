package domain

// Order is the per-order state held in the pool's contiguous storage.
// Queue membership is intrusive: Prev/Next link the order into its
// price level's FIFO directly, so a resting order never needs a
// separate list node allocation. An order belongs to at most one
// queue at a time, so Prev/Next cannot cycle.
//
// PoolSlot is bookkeeping for package pool only (the index of this
// record's slot in the pool's backing array, used to push the slot
// back onto the free stack on Release). Callers outside package pool
// must never read or write it.
type Order struct {
	ID        OrderID
	Side      Side
	Type      OrderType
	Price     Price
	Quantity  Quantity
	Filled    Quantity
	Status    OrderStatus
	Timestamp uint64

	Prev *Order
	Next *Order

	PoolSlot int
}

// Remaining returns the unfilled quantity.
func (o *Order) Remaining() Quantity {
	return o.Quantity - o.Filled
}

// IsFilled reports whether the order has no remaining quantity.
func (o *Order) IsFilled() bool {
	return o.Filled >= o.Quantity
}

// Fill increases the filled quantity and updates status accordingly.
// It does not unlink the order from its level; callers do that
// separately once the order is fully filled.
func (o *Order) Fill(qty Quantity) {
	o.Filled += qty
	if o.IsFilled() {
		o.Status = OrderStatusFilled
	} else {
		o.Status = OrderStatusPartiallyFilled
	}
}

// Reset zeroes every field except PoolSlot, which is owned by the
// pool across acquire/release cycles. Called by package pool on
// acquire; other callers have no reason to call it directly.
func (o *Order) Reset() {
	slot := o.PoolSlot
	*o = Order{}
	o.PoolSlot = slot
}
