package domain

// Trade is a single execution produced by the matching engine. It
// always prints at the passive (resting) order's price, never at the
// aggressor's limit price.
type Trade struct {
	BuyOrderID  OrderID
	SellOrderID OrderID
	Price       Price
	Quantity    Quantity
	Timestamp   uint64
}

// NewTrade builds a trade record from an aggressive/passive order pair
// and the quantity executed between them. aggressive.Side identifies
// which of aggressive/passive is the buy order.
func NewTrade(aggressive, passive *Order, qty Quantity, ts uint64) Trade {
	t := Trade{
		Price:     passive.Price,
		Quantity:  qty,
		Timestamp: ts,
	}
	if aggressive.Side == SideBuy {
		t.BuyOrderID = aggressive.ID
		t.SellOrderID = passive.ID
	} else {
		t.BuyOrderID = passive.ID
		t.SellOrderID = aggressive.ID
	}
	return t
}
