package ordergen

import (
	"sync"
	"time"
)

// Clock hands out strictly increasing timestamps. When wall-clock reads
// collide (coarse clock resolution, fast callers) it advances by a
// nanosecond past the previous value instead of repeating it.
type Clock struct {
	mu   sync.Mutex
	last time.Time
}

// Next returns a timestamp strictly after every timestamp returned before.
func (c *Clock) Next() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	if !now.After(c.last) {
		now = c.last.Add(time.Nanosecond)
	}
	c.last = now
	return now
}
