package capacitor

import "github.com/joeydtaylor/filament/pkg/internal/types"

// Enqueue appends item, evicting the single oldest item first when full.
func (c *Capacitor[T]) Enqueue(item T) {
	if len(c.items) >= c.maxSize {
		c.evict(len(c.items) - c.maxSize + 1)
	}
	c.items = append(c.items, item)
}

// EnqueueAll appends items in order, evicting only as many oldest items as
// needed to fit, in one step. A batch larger than the capacity keeps only its
// newest maxSize items, consistent with per-item eviction order.
func (c *Capacitor[T]) EnqueueAll(items []T) {
	if len(items) == 0 {
		return
	}

	if len(items) >= c.maxSize {
		// The incoming batch alone fills the buffer: everything already
		// buffered goes, and only the tail of the batch survives.
		c.evict(len(c.items))
		c.notifyBatchOverflow(len(items) - c.maxSize)
		c.items = append(c.items, items[len(items)-c.maxSize:]...)
		return
	}

	if overflow := len(c.items) + len(items) - c.maxSize; overflow > 0 {
		c.evict(overflow)
	}
	c.items = append(c.items, items...)
}

// DequeueAll returns all buffered items in FIFO order and clears the
// capacitor.
func (c *Capacitor[T]) DequeueAll() []T {
	if len(c.items) == 0 {
		return nil
	}
	drained := c.items
	c.items = make([]T, 0, min(c.maxSize, 64))
	return drained
}

// Len reports the number of buffered items.
func (c *Capacitor[T]) Len() int {
	return len(c.items)
}

// evict discards the n oldest items and reports the loss.
func (c *Capacitor[T]) evict(n int) {
	if n <= 0 {
		return
	}
	if n > len(c.items) {
		n = len(c.items)
	}
	c.items = append(c.items[:0], c.items[n:]...)

	for _, sensor := range c.sensors {
		if sensor != nil {
			sensor.InvokeOnCapacitorEvict(c.componentMetadata, n)
		}
	}
	c.NotifyLoggers(
		types.WarnLevel,
		"Capacitor evicted oldest items",
		"component", c.componentMetadata,
		"evicted", n,
		"capacity", c.maxSize,
	)
}

// notifyBatchOverflow reports items from an oversized incoming batch that
// never entered the buffer at all.
func (c *Capacitor[T]) notifyBatchOverflow(n int) {
	if n <= 0 {
		return
	}
	for _, sensor := range c.sensors {
		if sensor != nil {
			sensor.InvokeOnCapacitorEvict(c.componentMetadata, n)
		}
	}
	c.NotifyLoggers(
		types.WarnLevel,
		"Capacitor dropped head of oversized batch",
		"component", c.componentMetadata,
		"dropped", n,
		"capacity", c.maxSize,
	)
}
