// Package pool provides a pre-sized, contiguous arena of order records
// with O(1) acquire/release and no heap traffic once constructed —
// the object-pool half of the book's "intrusive FIFO + arena storage"
// design (see original_source/include/lob/order_pool.hpp).
package pool

import (
	"errors"

	"github.com/emirpasic/gods/v2/stacks/arraystack"

	"github.com/ccyyhlg/lob/domain"
)

// ErrExhausted is returned by Acquire when every slot is live.
var ErrExhausted = errors.New("pool: exhausted")

// Pool owns a fixed-capacity array of order records and a stack of
// free slot indices. A record's address is stable for its entire
// acquire-to-release lifetime: the backing slice is sized once at
// construction and never grows, so &p.records[i] never moves under
// Go's garbage collector.
type Pool struct {
	records []domain.Order
	free    *arraystack.Stack[int]
	live    int
}

// New creates a pool with room for exactly capacity live orders.
func New(capacity int) *Pool {
	p := &Pool{
		records: make([]domain.Order, capacity),
		free:    arraystack.New[int](),
	}
	// Push in reverse so slot 0 is acquired first, matching the
	// natural top-of-stack order original_source's OrderPool sets up.
	for i := capacity - 1; i >= 0; i-- {
		p.records[i].PoolSlot = i
		p.free.Push(i)
	}
	return p
}

// Acquire pops a free slot, resets its record to zero values, and
// returns a stable pointer into the pool's backing array. Returns
// ErrExhausted if every slot is currently live; the pool is left
// unchanged in that case.
func (p *Pool) Acquire() (*domain.Order, error) {
	slot, ok := p.free.Pop()
	if !ok {
		return nil, ErrExhausted
	}
	o := &p.records[slot]
	o.Reset()
	p.live++
	return o, nil
}

// Release returns a previously acquired record to the free stack. The
// caller must have already unlinked it from any price level and the
// order index; the pointer must not be used again after Release.
func (p *Pool) Release(o *domain.Order) {
	p.free.Push(o.PoolSlot)
	p.live--
}

// Capacity returns the total number of slots the pool was built with.
func (p *Pool) Capacity() int {
	return len(p.records)
}

// Len returns the number of currently live (acquired, unreleased)
// records.
func (p *Pool) Len() int {
	return p.live
}

// Free returns the number of slots available for Acquire.
func (p *Pool) Free() int {
	return p.free.Size()
}
