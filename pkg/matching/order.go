package matching

import (
	"strings"
	"time"
)

type Side string

const (
	BUY  Side = "BUY"
	SELL Side = "SELL"
)

// Order is one order-book entry. Qty is decremented in place on every
// partial fill; an order with Qty == 0 is dead and never stays in a queue.
// ID uniqueness is a caller obligation.
type Order struct {
	ID         string
	Instrument string
	Side       Side
	Price      float64
	Qty        int64
	Timestamp  time.Time
}

// NewOrder builds a normalized order stamped with the current time.
func NewOrder(id, instrument string, side Side, price float64, qty int64) *Order {
	return NewOrderAt(id, instrument, side, price, qty, time.Now())
}

// NewOrderAt is NewOrder with a caller-supplied timestamp. Callers assigning
// timestamps manually must keep them strictly increasing; ordering between
// colliding timestamps is unspecified.
func NewOrderAt(id, instrument string, side Side, price float64, qty int64, ts time.Time) *Order {
	return &Order{
		ID:         id,
		Instrument: strings.ToUpper(instrument),
		Side:       Side(strings.ToUpper(string(side))),
		Price:      price,
		Qty:        qty,
		Timestamp:  ts,
	}
}

// Trade is one completed match between exactly two orders. Price is always
// the resting order's limit price, never the aggressor's.
type Trade struct {
	Instrument  string
	BuyOrderID  string
	SellOrderID string
	Price       float64
	Qty         int64
}
