package matching

import (
	"container/heap"
	"sort"
	"sync"

	"github.com/gammazero/deque"
)

// instrumentBook holds the resting interest for one instrument: a price
// level map per side keyed by limit price, with a FIFO queue of orders per
// level, plus a heap per side for best-price lookup. Bids are a max-heap,
// asks a min-heap.
type instrumentBook struct {
	instrument string

	bids map[float64]*deque.Deque[*Order]
	asks map[float64]*deque.Deque[*Order]

	bidHeap *PriceHeap
	askHeap *PriceHeap

	// trades produced by the most recent submission only
	lastTrades []*Trade

	mu sync.Mutex
}

func newInstrumentBook(instrument string) *instrumentBook {
	return &instrumentBook{
		instrument: instrument,
		bids:       make(map[float64]*deque.Deque[*Order]),
		asks:       make(map[float64]*deque.Deque[*Order]),
		bidHeap:    NewPriceHeap(func(i, j float64) bool { return i > j }),
		askHeap:    NewPriceHeap(func(i, j float64) bool { return i < j }),
	}
}

// submit crosses the order against the opposite side while prices are
// compatible, then rests any remainder at its limit price. The returned
// slice is freshly built per call.
func (b *instrumentBook) submit(order *Order) []*Trade {
	b.mu.Lock()
	defer b.mu.Unlock()

	var trades []*Trade
	switch order.Side {
	case BUY:
		// a buy crosses asks priced at or below its limit
		trades = b.match(order, b.asks, b.askHeap,
			func(best float64) bool { return best <= order.Price })
		if order.Qty > 0 {
			b.rest(b.bids, b.bidHeap, order)
		}
	case SELL:
		trades = b.match(order, b.bids, b.bidHeap,
			func(best float64) bool { return best >= order.Price })
		if order.Qty > 0 {
			b.rest(b.asks, b.askHeap, order)
		}
	}

	b.lastTrades = trades
	return trades
}

func (b *instrumentBook) match(
	order *Order,
	counter map[float64]*deque.Deque[*Order],
	counterHeap *PriceHeap,
	crosses func(bestPrice float64) bool,
) []*Trade {
	var trades []*Trade

	for order.Qty > 0 {
		best, ok := counterHeap.Peek()
		if !ok || !crosses(best) {
			break
		}

		q := counter[best]
		resting := q.Front()

		execQty := min(order.Qty, resting.Qty)
		order.Qty -= execQty
		resting.Qty -= execQty

		trade := &Trade{
			Instrument: b.instrument,
			Price:      resting.Price, // resting price wins
			Qty:        execQty,
		}
		if order.Side == BUY {
			trade.BuyOrderID = order.ID
			trade.SellOrderID = resting.ID
		} else {
			trade.BuyOrderID = resting.ID
			trade.SellOrderID = order.ID
		}
		trades = append(trades, trade)

		if resting.Qty == 0 {
			q.PopFront()
			if q.Len() == 0 {
				heap.Pop(counterHeap)
				delete(counter, best)
			}
		}
	}

	return trades
}

func (b *instrumentBook) rest(side map[float64]*deque.Deque[*Order], sideHeap *PriceHeap, order *Order) {
	if side[order.Price] == nil {
		side[order.Price] = &deque.Deque[*Order]{}
		heap.Push(sideHeap, order.Price)
	}
	side[order.Price].PushBack(order)
}

// Level is one resting price level seen from outside the book.
type Level struct {
	Price  float64
	Orders int
}

// BookSnapshot is a point-in-time view of one instrument's book. BidLevels
// are ordered best first (descending price), AskLevels likewise (ascending).
// LastTrades holds only the trades of the most recent submission.
type BookSnapshot struct {
	Instrument string
	BidLevels  []Level
	AskLevels  []Level
	LastTrades []*Trade
}

func (b *instrumentBook) snapshot() *BookSnapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	snap := &BookSnapshot{
		Instrument: b.instrument,
		BidLevels:  levels(b.bids, func(i, j float64) bool { return i > j }),
		AskLevels:  levels(b.asks, func(i, j float64) bool { return i < j }),
		LastTrades: append([]*Trade(nil), b.lastTrades...),
	}
	return snap
}

func levels(side map[float64]*deque.Deque[*Order], less func(i, j float64) bool) []Level {
	prices := make([]float64, 0, len(side))
	for p := range side {
		prices = append(prices, p)
	}
	sort.Slice(prices, func(i, j int) bool { return less(prices[i], prices[j]) })

	out := make([]Level, 0, len(prices))
	for _, p := range prices {
		out = append(out, Level{Price: p, Orders: side[p].Len()})
	}
	return out
}
