package matching

// PriceHeap implements heap.Interface over a set of distinct price levels.
// Pushing a price already in the heap is a no-op, so one entry exists per
// resting level regardless of how many orders rest there.
type PriceHeap struct {
	prices []float64
	less   func(i, j float64) bool
	seen   map[float64]bool
}

func NewPriceHeap(less func(i, j float64) bool) *PriceHeap {
	return &PriceHeap{
		less: less,
		seen: make(map[float64]bool),
	}
}

func (h PriceHeap) Len() int {
	return len(h.prices)
}

func (h PriceHeap) Less(i, j int) bool {
	return h.less(h.prices[i], h.prices[j])
}

func (h PriceHeap) Swap(i, j int) {
	h.prices[i], h.prices[j] = h.prices[j], h.prices[i]
}

func (h *PriceHeap) Push(x any) {
	price := x.(float64)
	if h.seen[price] {
		return
	}
	h.seen[price] = true
	h.prices = append(h.prices, price)
}

func (h *PriceHeap) Pop() any {
	n := len(h.prices)
	price := h.prices[n-1]
	h.prices = h.prices[:n-1]
	delete(h.seen, price)
	return price
}

// Peek returns the best price without removing it.
func (h *PriceHeap) Peek() (float64, bool) {
	if len(h.prices) == 0 {
		return 0, false
	}
	return h.prices[0], true
}
