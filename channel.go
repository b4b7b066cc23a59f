// Copyright 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringchan

import "code.hybscloud.com/atomix"

// Channel is a lock-free multi-producer single-consumer channel built from
// N dedicated SPSC [Ring]s, one per registered producer, eliminating
// producer-producer contention entirely: no producer ever touches another
// producer's ring.
//
// Each producer claims a whole dedicated Ring rather than a slot in one
// shared buffer, so the fan-in at drain time happens across whole Ring
// values instead of across slots of a single array.
type Channel[T any] struct {
	rings         []*Ring[T]
	producerCount atomix.Int64
	closed        atomix.Bool
	config        Config
	timeSrc       *timeSource
}

// NewChannel eagerly allocates config.MaxProducers() rings up front; the
// ring set never grows after construction.
func NewChannel[T any](config Config) *Channel[T] {
	var src *timeSource
	if config.enableMetrics {
		src = newTimeSource()
	}
	rings := make([]*Ring[T], config.MaxProducers())
	for i := range rings {
		rings[i] = NewRing[T](config, src)
	}
	return &Channel[T]{rings: rings, config: config, timeSrc: src}
}

// Register claims the next free ring and returns a [Producer] bound to it.
// Returns a [TooManyProducersError] once MaxProducers has been claimed, or
// ErrClosed if the channel was already closed.
func (c *Channel[T]) Register() (*Producer[T], error) {
	if c.closed.LoadAcquire() {
		return nil, ErrClosed
	}

	id := c.producerCount.Add(1) - 1
	if int(id) >= len(c.rings) {
		rolledBack := c.producerCount.Add(-1)
		if debugAssertionsEnabled {
			assertInvariant(rolledBack >= 0, "channel-producer-count", "producerCount went negative on rollback")
		}
		return nil, &TooManyProducersError{Max: len(c.rings)}
	}
	if debugAssertionsEnabled {
		assertInvariant(id >= 0 && int(id) < len(c.rings), "channel-producer-id", "registered id out of ring bounds")
	}

	return newProducer(c, int(id)), nil
}

// Close closes the channel and every registered ring, preventing further
// registrations and sends. Already-committed items remain drainable.
func (c *Channel[T]) Close() {
	c.closed.StoreRelease(true)
	count := int(c.producerCount.Load())
	for _, r := range c.rings[:min(count, len(c.rings))] {
		r.Close()
	}
	if c.timeSrc != nil {
		c.timeSrc.stop()
	}
}

// IsClosed reports whether Close has been called.
func (c *Channel[T]) IsClosed() bool {
	return c.closed.LoadAcquire()
}

// ProducerCount returns the number of producers registered so far.
func (c *Channel[T]) ProducerCount() int {
	return int(c.producerCount.Load())
}

func (c *Channel[T]) activeRings() []*Ring[T] {
	count := int(c.producerCount.Load())
	if count > len(c.rings) {
		count = len(c.rings)
	}
	return c.rings[:count]
}

// ConsumeAll drains every active ring in ring-index order, invoking
// handler by reference for each item, and returns the total consumed.
// Cross-producer ordering at each call is therefore deterministic by ring
// index (registration order); per-producer FIFO is always preserved within
// each ring regardless of drain order.
func (c *Channel[T]) ConsumeAll(handler func(item *T)) int {
	total := 0
	for _, r := range c.activeRings() {
		total += r.ConsumeAll(handler)
	}
	return total
}

// ConsumeAllOwned is ConsumeAll with an owned-value handler; see
// [Ring.ConsumeAllOwned].
func (c *Channel[T]) ConsumeAllOwned(handler func(item T)) int {
	total := 0
	for _, r := range c.activeRings() {
		total += r.ConsumeAllOwned(handler)
	}
	return total
}

// ConsumeAllUpTo drains active rings in ring-index order up to maxTotal
// items combined, preferring earlier-registered producers' rings first.
func (c *Channel[T]) ConsumeAllUpTo(maxTotal int, handler func(item *T)) int {
	total := 0
	for _, r := range c.activeRings() {
		if total >= maxTotal {
			break
		}
		total += r.ConsumeUpTo(maxTotal-total, handler)
	}
	return total
}

// ConsumeAllUpToOwned is ConsumeAllUpTo with an owned-value handler.
func (c *Channel[T]) ConsumeAllUpToOwned(maxTotal int, handler func(item T)) int {
	total := 0
	for _, r := range c.activeRings() {
		if total >= maxTotal {
			break
		}
		total += r.ConsumeUpToOwned(maxTotal-total, handler)
	}
	return total
}

// Metrics aggregates the metrics of every active ring into one snapshot.
// LastActivity is the most recent timestamp observed across all rings.
func (c *Channel[T]) Metrics() MetricsSnapshot {
	var agg MetricsSnapshot
	for _, r := range c.activeRings() {
		m := r.Metrics()
		agg.MessagesSent += m.MessagesSent
		agg.MessagesReceived += m.MessagesReceived
		agg.BatchesSent += m.BatchesSent
		agg.BatchesReceived += m.BatchesReceived
		agg.ReserveSpins += m.ReserveSpins
		if m.LastActivity.After(agg.LastActivity) {
			agg.LastActivity = m.LastActivity
		}
	}
	return agg
}
