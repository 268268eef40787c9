// Command benchmark drives a single Book through a fixed number of
// synchronous submissions and reports throughput, the single-threaded
// counterpart to the teacher repo's goroutine-driven load generator
// (this core has no internal concurrency to fan out across workers).
package main

import (
	"fmt"
	"time"

	"github.com/ccyyhlg/lob/domain"
	"github.com/ccyyhlg/lob/orderbook"
)

const totalOrders = 2_000_000

func main() {
	fmt.Println("=== order book throughput benchmark ===")

	book := orderbook.New(totalOrders + 1)

	var tradeCount uint64
	book.SetTradeCallback(func(domain.Trade) {
		tradeCount++
	})

	fmt.Printf("orders: %d\n\n", totalOrders)

	start := time.Now()
	for i := 0; i < totalOrders; i++ {
		var side domain.Side
		if i%2 == 0 {
			side = domain.SideBuy
		} else {
			side = domain.SideSell
		}
		// Prices overlap across a narrow band so a healthy fraction
		// of submissions cross and generate trades.
		price := domain.Price(50000 + i%200)
		if _, err := book.Submit(side, domain.OrderTypeLimit, price, 1); err != nil {
			fmt.Println("pool exhausted, stopping early:", err)
			break
		}
	}
	elapsed := time.Since(start)

	qps := float64(totalOrders) / elapsed.Seconds()
	tps := float64(tradeCount) / elapsed.Seconds()
	matchRate := float64(tradeCount) / float64(totalOrders) * 100

	fmt.Println("=== results ===")
	fmt.Printf("elapsed:        %v\n", elapsed)
	fmt.Printf("orders:         %d\n", totalOrders)
	fmt.Printf("trades:         %d\n", tradeCount)
	fmt.Printf("order throughput: %.0f orders/sec\n", qps)
	fmt.Printf("trade throughput: %.0f trades/sec\n", tps)
	fmt.Printf("avg latency:    %.2f ns/order\n", elapsed.Seconds()*1e9/float64(totalOrders))
	fmt.Printf("match rate:     %.2f%%\n", matchRate)

	fmt.Println("\n=== book state ===")
	fmt.Printf("best bid: %.2f\n", domain.ToFloat(book.BestBid()))
	fmt.Printf("best ask: %.2f\n", domain.ToFloat(book.BestAsk()))

	fmt.Println("\nbid depth (top 5):")
	for i, lvl := range book.BidDepth(5) {
		fmt.Printf("  %d. price=%.2f qty=%d\n", i+1, domain.ToFloat(lvl.Price), lvl.Qty)
	}
	fmt.Println("ask depth (top 5):")
	for i, lvl := range book.AskDepth(5) {
		fmt.Printf("  %d. price=%.2f qty=%d\n", i+1, domain.ToFloat(lvl.Price), lvl.Qty)
	}
}
