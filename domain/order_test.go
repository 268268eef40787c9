package domain

import "testing"

func TestOrderFillAndStatus(t *testing.T) {
	o := &Order{Quantity: 100}

	o.Fill(40)
	if o.Status != OrderStatusPartiallyFilled {
		t.Fatalf("expected partially filled, got %v", o.Status)
	}
	if o.Remaining() != 60 {
		t.Fatalf("expected remaining 60, got %d", o.Remaining())
	}
	if o.IsFilled() {
		t.Fatal("order should not be filled yet")
	}

	o.Fill(60)
	if !o.IsFilled() {
		t.Fatal("expected order to be filled")
	}
	if o.Status != OrderStatusFilled {
		t.Fatalf("expected filled status, got %v", o.Status)
	}
}

func TestOrderResetPreservesPoolSlot(t *testing.T) {
	o := &Order{ID: 7, Price: 100, Quantity: 50, PoolSlot: 3}
	o.Reset()

	if o.PoolSlot != 3 {
		t.Fatalf("expected PoolSlot to survive reset, got %d", o.PoolSlot)
	}
	if o.ID != 0 || o.Price != 0 || o.Quantity != 0 {
		t.Fatalf("expected all other fields zeroed, got %+v", o)
	}
}

func TestPriceConversionRoundTrip(t *testing.T) {
	p := ToPrice(123.45)
	if p != 12345 {
		t.Fatalf("expected 12345, got %d", p)
	}
	if got := ToFloat(p); got != 123.45 {
		t.Fatalf("expected 123.45, got %v", got)
	}
}
