package ordergen

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ducnt114/matchcore/pkg/marketdata"
	"github.com/ducnt114/matchcore/pkg/matching"
)

const (
	maxQty      = 100
	priceSpread = 0.5
)

// Generator synthesizes random limit orders around an instrument's
// reference prices. Order IDs are unique and timestamps strictly
// increasing, which is what the matching engine expects from its callers.
type Generator struct {
	feed  *marketdata.Feed
	rng   *rand.Rand
	clock Clock
}

// New builds a generator over feed. The same seed reproduces the same
// order stream.
func New(feed *marketdata.Feed, seed int64) *Generator {
	return &Generator{
		feed: feed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Batch produces n orders for instrument: random side, quantity in
// [1, maxQty], price drawn from a random reference point jittered by up to
// ±priceSpread and rounded to 2 decimals. Returns nil if the feed has no
// prices for the instrument.
func (g *Generator) Batch(instrument string, n int) []*matching.Order {
	prices := g.feed.Prices(instrument)
	if len(prices) == 0 {
		return nil
	}

	orders := make([]*matching.Order, 0, n)
	for i := 0; i < n; i++ {
		ref := prices[g.rng.Intn(len(prices))]
		jitter := (g.rng.Float64() - 0.5) * 2 * priceSpread
		price := decimal.NewFromFloat(ref + jitter).Round(2).InexactFloat64()

		side := matching.BUY
		if g.rng.Intn(2) == 0 {
			side = matching.SELL
		}
		qty := int64(g.rng.Intn(maxQty) + 1)

		orders = append(orders, matching.NewOrderAt(
			g.orderID(instrument), instrument, side, price, qty, g.clock.Next(),
		))
	}
	return orders
}

func (g *Generator) orderID(instrument string) string {
	return fmt.Sprintf("%s-%s", instrument, uuid.NewString()[:8])
}
