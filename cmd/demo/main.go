// Command demo drives a Book through a small, illustrative sequence of
// orders and prints the trades it produces, the way the teacher
// repo's main.go exercises its exchange engine.
package main

import (
	"fmt"

	"github.com/ccyyhlg/lob/domain"
	"github.com/ccyyhlg/lob/orderbook"
)

func main() {
	book := orderbook.New(1024)

	book.SetTradeCallback(func(t domain.Trade) {
		fmt.Printf("trade: buy=%d sell=%d price=%.2f qty=%d\n",
			t.BuyOrderID, t.SellOrderID, domain.ToFloat(t.Price), t.Quantity)
	})

	fmt.Println("order book started")

	sell, _ := book.Submit(domain.SideSell, domain.OrderTypeLimit, domain.ToPrice(50000), 100000000)
	fmt.Printf("submitted sell order %d: 1 unit @ 50000\n", sell.OrderID)

	buy, _ := book.Submit(domain.SideBuy, domain.OrderTypeLimit, domain.ToPrice(50000), 50000000)
	fmt.Printf("submitted buy order %d: 0.5 unit @ 50000 -> status=%s filled=%d\n",
		buy.OrderID, buy.Status, buy.FilledQty)

	fmt.Printf("best bid=%.2f best ask=%.2f spread=%.2f\n",
		domain.ToFloat(book.BestBid()), domain.ToFloat(book.BestAsk()), domain.ToFloat(book.Spread()))

	for _, lvl := range book.AskDepth(5) {
		fmt.Printf("ask depth: price=%.2f qty=%d\n", domain.ToFloat(lvl.Price), lvl.Qty)
	}
}
