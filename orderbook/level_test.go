package orderbook

import (
	"testing"

	"github.com/ccyyhlg/lob/domain"
)

func TestLevelAppendFIFOOrder(t *testing.T) {
	l := newLevel(10000)
	a := &domain.Order{ID: 1, Quantity: 10}
	b := &domain.Order{ID: 2, Quantity: 20}

	l.Append(a)
	l.Append(b)

	if l.Front() != a {
		t.Fatalf("expected a at front, got order %d", l.Front().ID)
	}
	if l.Count != 2 {
		t.Fatalf("expected count 2, got %d", l.Count)
	}
	if l.TotalQty != 30 {
		t.Fatalf("expected total qty 30, got %d", l.TotalQty)
	}
}

func TestLevelUnlinkFromMiddle(t *testing.T) {
	l := newLevel(10000)
	a := &domain.Order{ID: 1, Quantity: 10}
	b := &domain.Order{ID: 2, Quantity: 20}
	c := &domain.Order{ID: 3, Quantity: 30}
	l.Append(a)
	l.Append(b)
	l.Append(c)

	l.Unlink(b)

	if l.Count != 2 || l.TotalQty != 40 {
		t.Fatalf("expected count=2 qty=40, got count=%d qty=%d", l.Count, l.TotalQty)
	}
	if a.Next != c || c.Prev != a {
		t.Fatal("expected a and c to be relinked around the removed middle order")
	}
	if b.Prev != nil || b.Next != nil {
		t.Fatal("expected unlinked order's pointers to be cleared")
	}
}

func TestLevelReduceAdjustsCachedVolumeOnly(t *testing.T) {
	l := newLevel(10000)
	a := &domain.Order{ID: 1, Quantity: 100}
	l.Append(a)

	a.Fill(40)
	l.Reduce(40)

	if l.TotalQty != 60 {
		t.Fatalf("expected total qty 60, got %d", l.TotalQty)
	}
	if l.Count != 1 {
		t.Fatalf("reduce must not unlink the order, got count %d", l.Count)
	}
	if l.Front() != a {
		t.Fatal("order should remain queued in place")
	}
}

func TestLevelEmpty(t *testing.T) {
	l := newLevel(10000)
	if !l.Empty() {
		t.Fatal("new level should be empty")
	}
	a := &domain.Order{ID: 1, Quantity: 10}
	l.Append(a)
	if l.Empty() {
		t.Fatal("level with an order should not be empty")
	}
	l.Unlink(a)
	if !l.Empty() {
		t.Fatal("level should be empty after unlinking its only order")
	}
}
