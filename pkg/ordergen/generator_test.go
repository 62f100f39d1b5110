package ordergen

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/ducnt114/matchcore/pkg/marketdata"
	"github.com/ducnt114/matchcore/pkg/matching"
)

const feedYAML = `
instruments:
  SPY:
    "09:30": 591.03
    "09:45": 589.70
    "10:00": 590.09
`

func testFeed(t *testing.T) *marketdata.Feed {
	t.Helper()
	path := filepath.Join(t.TempDir(), "marketdata.yml")
	if err := os.WriteFile(path, []byte(feedYAML), 0o644); err != nil {
		t.Fatalf("write feed file: %v", err)
	}
	feed, err := marketdata.Load(path)
	if err != nil {
		t.Fatalf("load feed: %v", err)
	}
	return feed
}

func TestBatch(t *testing.T) {
	gen := New(testFeed(t), 42)

	orders := gen.Batch("SPY", 50)
	if len(orders) != 50 {
		t.Fatalf("expected 50 orders, got %d", len(orders))
	}

	seen := make(map[string]bool)
	for i, o := range orders {
		if o.Instrument != "SPY" {
			t.Errorf("wrong instrument: %q", o.Instrument)
		}
		if o.Side != matching.BUY && o.Side != matching.SELL {
			t.Errorf("invalid side: %q", o.Side)
		}
		if o.Qty < 1 || o.Qty > maxQty {
			t.Errorf("qty %d outside [1, %d]", o.Qty, maxQty)
		}
		// jittered by at most ±priceSpread around some reference point,
		// plus half a cent of rounding
		if o.Price < 589.70-priceSpread-0.005 || o.Price > 591.03+priceSpread+0.005 {
			t.Errorf("price %.4f outside feed range", o.Price)
		}
		// 2-decimal economic precision
		cents := o.Price * 100
		if math.Abs(cents-math.Round(cents)) > 1e-6 {
			t.Errorf("price %v not rounded to 2 decimals", o.Price)
		}
		if seen[o.ID] {
			t.Errorf("duplicate order ID %q", o.ID)
		}
		seen[o.ID] = true
		if i > 0 && !orders[i].Timestamp.After(orders[i-1].Timestamp) {
			t.Errorf("timestamps not strictly increasing at index %d", i)
		}
	}
}

func TestBatchUnknownInstrument(t *testing.T) {
	gen := New(testFeed(t), 42)
	if orders := gen.Batch("AAPL", 10); orders != nil {
		t.Errorf("expected nil for unknown instrument, got %d orders", len(orders))
	}
}

func TestBatchDeterministicPerSeed(t *testing.T) {
	feed := testFeed(t)
	a := New(feed, 7).Batch("SPY", 20)
	b := New(feed, 7).Batch("SPY", 20)

	for i := range a {
		if a[i].Price != b[i].Price || a[i].Qty != b[i].Qty || a[i].Side != b[i].Side {
			t.Fatalf("same seed diverged at index %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestClockStrictlyIncreasing(t *testing.T) {
	var c Clock
	prev := c.Next()
	for i := 0; i < 10_000; i++ {
		ts := c.Next()
		if !ts.After(prev) {
			t.Fatalf("timestamp %v not after %v", ts, prev)
		}
		prev = ts
	}
}
