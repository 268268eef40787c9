package orderbook

import "github.com/ccyyhlg/lob/domain"

// SubmitResult is the outcome of Book.Submit: the assigned id, final
// status, fill accounting, and the trades this submission produced,
// earliest first.
type SubmitResult struct {
	OrderID      domain.OrderID
	Status       domain.OrderStatus
	FilledQty    domain.Quantity
	RemainingQty domain.Quantity
	Trades       []domain.Trade
}

// DepthLevel is one row of a BidDepth/AskDepth snapshot: a price and
// the cached aggregate remaining quantity resting at it.
type DepthLevel struct {
	Price domain.Price
	Qty   domain.Quantity
}
