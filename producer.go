// Copyright 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringchan

// Producer is a handle to one dedicated [Ring] within a [Channel]. Each
// Producer writes only its own ring, eliminating producer-producer
// contention entirely - the design's central departure from a single
// shared buffer.
//
// Producer intentionally carries a [noCopy] marker and has no exported
// constructor: the single-writer invariant that makes the ring lock-free
// depends on exactly one goroutine ever calling Reserve/Push/Send on a
// given ring, and a duplicated Producer value would let two goroutines
// race on the same tail. The only way to obtain one is [Channel.Register].
type Producer[T any] struct {
	_       noCopy
	channel *Channel[T]
	id      int
}

func newProducer[T any](ch *Channel[T], id int) *Producer[T] {
	return &Producer[T]{channel: ch, id: id}
}

// ID returns the producer's ring index, assigned in registration order.
func (p *Producer[T]) ID() int {
	return p.id
}

func (p *Producer[T]) ring() *Ring[T] {
	return p.channel.rings[p.id]
}

// Reserve claims up to n contiguous slots on this producer's ring; see
// [Ring.Reserve].
func (p *Producer[T]) Reserve(n int) (Reservation[T], bool) {
	return p.ring().Reserve(n)
}

// ReserveWithBackoff is Reserve with adaptive retry; see
// [Ring.ReserveWithBackoff].
func (p *Producer[T]) ReserveWithBackoff(n int) (Reservation[T], bool) {
	return p.ring().ReserveWithBackoff(n)
}

// Push sends a single item; see [Ring.Push].
func (p *Producer[T]) Push(item *T) error {
	return p.ring().Push(item)
}

// Send copies items into this producer's ring; see [Ring.Send].
func (p *Producer[T]) Send(items []T) int {
	return p.ring().Send(items)
}

// Close closes this producer's ring only - other producers on the same
// channel are unaffected.
func (p *Producer[T]) Close() {
	p.ring().Close()
}

// IsClosed reports whether this producer's ring is closed.
func (p *Producer[T]) IsClosed() bool {
	return p.ring().IsClosed()
}
