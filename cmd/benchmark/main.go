package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/ducnt114/matchcore/pkg/matching"
)

const (
	numOrders = 1_000_000
	minPrice  = 100.0
	maxPrice  = 200.0
	minQty    = 1
	maxQty    = 100
)

func randomOrder(id int) *matching.Order {
	side := matching.BUY
	if rand.Intn(2) == 0 {
		side = matching.SELL
	}
	price := minPrice + rand.Float64()*(maxPrice-minPrice)
	qty := int64(rand.Intn(maxQty-minQty+1) + minQty)

	return matching.NewOrder(
		fmt.Sprintf("ORD-%06d", id),
		"ABC",
		side,
		float64(int(price*100))/100, // 2 decimal places
		qty,
	)
}

func main() {
	engine := matching.NewEngine()

	totalMatched := 0
	totalQty := int64(0)
	engine.RegisterTradeCallback(func(trades []*matching.Trade) {
		for _, t := range trades {
			totalMatched++
			totalQty += t.Qty
			if totalMatched <= 5 {
				log.Printf("Match: BUY[%s] <=> SELL[%s] @ %.2f qty %d\n",
					t.BuyOrderID, t.SellOrderID, t.Price, t.Qty)
			}
		}
	})

	start := time.Now()
	for i := 0; i < numOrders; i++ {
		if _, err := engine.Submit(randomOrder(i)); err != nil {
			log.Fatalf("submit: %v", err)
		}
	}
	elapsed := time.Since(start)

	fmt.Printf("orders:      %d\n", numOrders)
	fmt.Printf("trades:      %d\n", totalMatched)
	fmt.Printf("matched qty: %d\n", totalQty)
	fmt.Printf("elapsed:     %s\n", elapsed)
	fmt.Printf("throughput:  %.0f orders/s\n", float64(numOrders)/elapsed.Seconds())
}
