package matching

import (
	"fmt"
	"testing"

	"pgregory.net/rapid"
)

// Random order streams against one instrument, checking after every
// submission: quantity conservation, resting-price-wins, an uncrossed book,
// ordered level enumeration and pruned empty levels.
func TestPropertyBookInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		eng := NewEngine()
		limitPrice := make(map[string]float64)

		n := rapid.IntRange(1, 200).Draw(t, "orders")
		for i := 0; i < n; i++ {
			side := BUY
			if rapid.Bool().Draw(t, "isSell") {
				side = SELL
			}
			price := float64(rapid.IntRange(90, 110).Draw(t, "price"))
			qty := int64(rapid.IntRange(1, 50).Draw(t, "qty"))

			id := fmt.Sprintf("O-%d", i)
			order := NewOrder(id, "TEST", side, price, qty)
			limitPrice[id] = price

			trades, err := eng.Submit(order)
			if err != nil {
				t.Fatalf("submit %s: %v", id, err)
			}

			var executed int64
			for _, tr := range trades {
				if tr.Qty <= 0 || tr.Price <= 0 {
					t.Fatalf("non-positive trade: %+v", tr)
				}
				restingID := tr.SellOrderID
				if side == SELL {
					restingID = tr.BuyOrderID
				}
				if tr.Price != limitPrice[restingID] {
					t.Fatalf("trade price %.2f is not the resting order %s's limit %.2f",
						tr.Price, restingID, limitPrice[restingID])
				}
				executed += tr.Qty
			}

			if executed+order.Qty != qty {
				t.Fatalf("quantity not conserved: executed %d + remaining %d != original %d",
					executed, order.Qty, qty)
			}

			snap, ok := eng.BookState("TEST")
			if !ok {
				t.Fatal("book must exist after a submission")
			}
			checkSnapshot(t, snap)
		}
	})
}

func checkSnapshot(t *rapid.T, snap *BookSnapshot) {
	if len(snap.BidLevels) > 0 && len(snap.AskLevels) > 0 {
		if snap.BidLevels[0].Price >= snap.AskLevels[0].Price {
			t.Fatalf("crossed book: best bid %.2f >= best ask %.2f",
				snap.BidLevels[0].Price, snap.AskLevels[0].Price)
		}
	}
	for i, lvl := range snap.BidLevels {
		if lvl.Orders <= 0 {
			t.Fatalf("empty bid level %.2f not pruned", lvl.Price)
		}
		if i > 0 && snap.BidLevels[i-1].Price <= lvl.Price {
			t.Fatalf("bid levels not descending: %+v", snap.BidLevels)
		}
	}
	for i, lvl := range snap.AskLevels {
		if lvl.Orders <= 0 {
			t.Fatalf("empty ask level %.2f not pruned", lvl.Price)
		}
		if i > 0 && snap.AskLevels[i-1].Price >= lvl.Price {
			t.Fatalf("ask levels not ascending: %+v", snap.AskLevels)
		}
	}
}
