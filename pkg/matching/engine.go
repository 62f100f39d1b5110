package matching

import (
	"strings"
	"sync"
)

// Engine owns one instrumentBook per instrument, created lazily on the
// first order for that symbol. Books are keyed by uppercase symbol so
// lookups are case-insensitive.
type Engine struct {
	books     sync.Map
	callbacks []func([]*Trade)
}

func NewEngine() *Engine {
	return &Engine{}
}

// Submit validates the order, crosses it against the opposite side of its
// instrument's book and rests any remainder. It returns the trades produced
// by this submission only.
//
// Rejecting malformed orders is stricter than accepting them silently; the
// engine refuses a side that is neither BUY nor SELL and non-positive
// prices or quantities instead of letting them fall through the matcher.
func (e *Engine) Submit(order *Order) ([]*Trade, error) {
	if order.Side != BUY && order.Side != SELL {
		return nil, ErrUnknownSide
	}
	if order.Price <= 0 {
		return nil, ErrInvalidPrice
	}
	if order.Qty <= 0 {
		return nil, ErrInvalidQty
	}

	book := e.getOrCreateBook(strings.ToUpper(order.Instrument))
	trades := book.submit(order)

	if len(trades) > 0 {
		for _, cb := range e.callbacks {
			cb(trades)
		}
	}
	return trades, nil
}

// BookState reports the resting levels of both sides in priority order and
// the trades of the most recent submission. The second return value is
// false when no order has ever been submitted for the instrument, which is
// distinct from a known instrument whose book happens to be empty.
func (e *Engine) BookState(instrument string) (*BookSnapshot, bool) {
	val, ok := e.books.Load(strings.ToUpper(instrument))
	if !ok {
		return nil, false
	}
	return val.(*instrumentBook).snapshot(), true
}

// RegisterTradeCallback registers fn to run synchronously after every
// submission that produced at least one trade. Register before the first
// Submit; registration is not synchronized with in-flight submissions.
func (e *Engine) RegisterTradeCallback(fn func([]*Trade)) {
	e.callbacks = append(e.callbacks, fn)
}

func (e *Engine) getOrCreateBook(instrument string) *instrumentBook {
	if val, ok := e.books.Load(instrument); ok {
		return val.(*instrumentBook)
	}

	book := newInstrumentBook(instrument)
	actual, _ := e.books.LoadOrStore(instrument, book)
	return actual.(*instrumentBook)
}
