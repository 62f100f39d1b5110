package matching

import "errors"

var (
	ErrUnknownSide  = errors.New("order side is neither BUY nor SELL")
	ErrInvalidPrice = errors.New("order price must be positive")
	ErrInvalidQty   = errors.New("order quantity must be positive")
)
