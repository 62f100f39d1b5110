package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/ducnt114/matchcore/config"
	"github.com/ducnt114/matchcore/pkg/logging"
	"github.com/ducnt114/matchcore/pkg/marketdata"
	"github.com/ducnt114/matchcore/pkg/matching"
	"github.com/ducnt114/matchcore/pkg/ordergen"
)

func main() {
	cfgPath := flag.String("config", "./config/simulator.yml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(logging.ParseLevel(cfg.LogLevel))
	defer logger.Sync() // nolint

	feed, err := marketdata.Load(cfg.Simulator.MarketDataFile)
	if err != nil {
		logger.Fatal("load market data", zap.Error(err))
	}

	seed := cfg.Simulator.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	engine := matching.NewEngine()
	gen := ordergen.New(feed, seed)

	for _, instrument := range feed.Instruments() {
		fmt.Printf("\nProcessing %s orders:\n", instrument)
		for _, order := range gen.Batch(instrument, cfg.Simulator.OrdersPerInstrument) {
			fmt.Printf("\nAdding order: id=%s side=%s price=%.2f qty=%d\n",
				order.ID, order.Side, order.Price, order.Qty)

			trades, err := engine.Submit(order)
			if err != nil {
				logger.Warn("order rejected",
					zap.String("order_id", order.ID), zap.Error(err))
				continue
			}

			printTrades(trades)
			if snap, ok := engine.BookState(instrument); ok {
				printSnapshot(snap)
			}
		}
	}
}

func printTrades(trades []*matching.Trade) {
	if len(trades) == 0 {
		fmt.Println("Trades executed: none")
		return
	}
	fmt.Println("Trades executed:")
	for _, t := range trades {
		fmt.Printf("  %s BUY[%s] <=> SELL[%s] @ %.2f qty %d\n",
			t.Instrument, t.BuyOrderID, t.SellOrderID, t.Price, t.Qty)
	}
}

func printSnapshot(snap *matching.BookSnapshot) {
	fmt.Printf("%s book state:\n", snap.Instrument)
	fmt.Print("  bids:")
	printLevels(snap.BidLevels)
	fmt.Print("  asks:")
	printLevels(snap.AskLevels)
}

func printLevels(levels []matching.Level) {
	if len(levels) == 0 {
		fmt.Println(" empty")
		return
	}
	for _, lvl := range levels {
		fmt.Printf(" %.2f x%d", lvl.Price, lvl.Orders)
	}
	fmt.Println()
}
