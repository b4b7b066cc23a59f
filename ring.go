// Copyright 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringchan

import "code.hybscloud.com/atomix"

// Ring is a single-producer single-consumer bounded ring buffer - the core
// building block a [Channel] composes N of, one per registered producer.
//
// Based on Lamport's ring buffer with cached-index optimization: each side
// caches its peer's sequence number so the hot path almost never reads an
// atomic the other core just wrote. Producer-hot, consumer-hot, and cold
// fields each sit in their own padded region (see pad.go) so a write on one
// side never invalidates a cache line the other side polls.
//
// Reservation/batch-drain sit on top of the usual Lamport sequence protocol:
// a producer claims a contiguous run of slots up front and writes into them
// directly, and a consumer drains a whole run and advances head once for
// the batch instead of once per item.
type Ring[T any] struct {
	_          pad
	tail       atomix.Uint64 // producer writes here
	_          padAfterU64
	cachedHead uint64 // producer's cached view of head

	_          pad
	head       atomix.Uint64 // consumer writes here
	_          padAfterU64
	cachedTail uint64 // consumer's cached view of tail

	_       pad
	closed  atomix.Bool
	metrics Metrics
	timeSrc *timeSource
	_       padAfterPtr // isolates the metrics/timeSrc region above from the read-only fields below

	config Config
	mask   uint64
	buffer []T
}

// NewRing creates a ring sized by config.Capacity(). If config.EnableMetrics
// was set and src is non-nil, metrics record a shared cached-clock
// timestamp on every Commit/Advance; pass nil to skip timestamping.
func NewRing[T any](config Config, src *timeSource) *Ring[T] {
	return &Ring[T]{
		config:  config,
		mask:    config.mask(),
		buffer:  make([]T, config.Capacity()),
		timeSrc: src,
	}
}

// Cap returns the ring's slot capacity.
func (r *Ring[T]) Cap() int {
	return r.config.Capacity()
}

// Len returns a best-effort, racy snapshot of the item count. For
// observation and logging only, never for control flow - an accurate
// lock-free count would require cross-core synchronization the whole
// design exists to avoid.
func (r *Ring[T]) Len() int {
	tail := r.tail.LoadRelaxed()
	head := r.head.LoadRelaxed()
	return int(tail - head)
}

// IsEmpty reports whether the ring currently holds no committed items.
func (r *Ring[T]) IsEmpty() bool {
	return r.tail.LoadRelaxed() == r.head.LoadRelaxed()
}

// IsFull reports whether the ring currently has no free slots.
func (r *Ring[T]) IsFull() bool {
	return r.Len() >= r.Cap()
}

// IsClosed reports whether Close has been called.
func (r *Ring[T]) IsClosed() bool {
	return r.closed.LoadAcquire()
}

// Close marks the ring closed. Already-committed items remain readable;
// Push on a closed ring returns ErrClosed rather than ErrFull, and Reserve
// returns (zero, false).
func (r *Ring[T]) Close() {
	r.closed.StoreRelease(true)
}

// Metrics returns a point-in-time snapshot of this ring's counters.
func (r *Ring[T]) Metrics() MetricsSnapshot {
	return r.metrics.Snapshot()
}

// ---------------------------------------------------------------------
// Producer API
// ---------------------------------------------------------------------

// Reserve claims up to n contiguous slots for zero-copy writing.
//
// The returned Reservation may hold fewer than n slots if the reservation
// would wrap around the ring; it never crosses the wrap boundary, so a
// caller asking for more than is contiguously available must call Reserve
// again after committing. Returns (zero, false) if the ring is closed, n is
// zero or exceeds capacity, or fewer than n slots are free (no partial
// reservation is made when only some of the n slots would fit).
func (r *Ring[T]) Reserve(n int) (Reservation[T], bool) {
	if n <= 0 || n > r.Cap() {
		return Reservation[T]{}, false
	}
	if r.IsClosed() {
		return Reservation[T]{}, false
	}

	tail := r.tail.LoadRelaxed()

	space := r.Cap() - int(tail-r.cachedHead)
	if space >= n {
		return r.makeReservation(tail, n), true
	}

	head := r.head.LoadAcquire()
	r.cachedHead = head

	space = r.Cap() - int(tail-head)
	if space < n {
		return Reservation[T]{}, false
	}
	return r.makeReservation(tail, n), true
}

// ReserveWithBackoff retries Reserve through a fresh [Backoff] until it
// succeeds, the ring is observed closed, or the backoff is exhausted.
func (r *Ring[T]) ReserveWithBackoff(n int) (Reservation[T], bool) {
	var b Backoff
	for !b.IsCompleted() {
		if res, ok := r.Reserve(n); ok {
			return res, true
		}
		if r.IsClosed() {
			return Reservation[T]{}, false
		}
		if r.config.enableMetrics {
			r.metrics.addReserveSpin()
		}
		b.Wait()
	}
	return Reservation[T]{}, false
}

// makeReservation carves the contiguous slice starting at tail, never
// crossing the wrap boundary.
func (r *Ring[T]) makeReservation(tail uint64, n int) Reservation[T] {
	idx := int(tail & r.mask)
	contiguous := n
	if rest := r.Cap() - idx; rest < contiguous {
		contiguous = rest
	}
	if debugAssertionsEnabled {
		assertInvariant(idx+contiguous <= r.Cap(), "reservation-bounds", "idx=", idx, " contiguous=", contiguous, " cap=", r.Cap())
	}
	return Reservation[T]{
		ring:  r,
		slice: r.buffer[idx : idx+contiguous],
	}
}

// commitInternal advances tail by n and records metrics. Called only by
// [Reservation.Commit]/CommitN/CommitUpTo.
func (r *Ring[T]) commitInternal(n int) {
	tail := r.tail.LoadRelaxed()
	newTail := tail + uint64(n)
	if debugAssertionsEnabled {
		head := r.head.LoadAcquire()
		assertInvariant(newTail >= tail, "sequence-monotonic", "tail regressed on commit")
		assertInvariant(int(newTail-head) <= r.Cap(), "sequence-bounds", "occupancy exceeds capacity after commit")
	}
	r.tail.StoreRelease(newTail)

	if r.config.enableMetrics {
		r.metrics.addMessagesSent(uint64(n))
		r.metrics.addBatchSent()
		r.metrics.touch(r.timeSrc)
	}
}

// Push is a single-item convenience wrapper over Reserve/Commit. Returns
// ErrFull if there is no space, ErrClosed if the ring is closed.
func (r *Ring[T]) Push(item *T) error {
	if r.IsClosed() {
		return ErrClosed
	}
	res, ok := r.Reserve(1)
	if !ok {
		if r.IsClosed() {
			return ErrClosed
		}
		return ErrFull
	}
	res.slice[0] = *item
	res.Commit()
	return nil
}

// Send copies items into the ring, reserving as many contiguous runs as
// needed to place all of them, and returns the number actually written
// (fewer than len(items) only if the ring filled up mid-send).
func (r *Ring[T]) Send(items []T) int {
	sent := 0
	for sent < len(items) {
		want := len(items) - sent
		if free := r.Cap() - int(r.tail.LoadRelaxed()-r.head.LoadAcquire()); free < want {
			want = free
		}
		if want <= 0 {
			break
		}
		res, ok := r.Reserve(want)
		if !ok {
			break
		}
		n := copy(res.slice, items[sent:])
		res.Commit()
		sent += n
	}
	return sent
}

// ---------------------------------------------------------------------
// Consumer API
// ---------------------------------------------------------------------

// readableLen returns head and the number of items currently available to
// read starting at it. The cached tail is used as is only when it already
// covers want items (want < 0 means no bound); otherwise tail is re-read.
func (r *Ring[T]) readableLen(want int) (head uint64, avail int) {
	head = r.head.LoadRelaxed()
	avail = int(r.cachedTail - head)
	if avail > 0 && want >= 0 && avail >= want {
		return head, avail
	}
	tail := r.tail.LoadAcquire()
	r.cachedTail = tail
	avail = int(tail - head)
	return head, avail
}

func (r *Ring[T]) advance(n int) {
	head := r.head.LoadRelaxed()
	newHead := head + uint64(n)
	if debugAssertionsEnabled {
		tail := r.tail.LoadAcquire()
		assertInvariant(newHead >= head, "sequence-monotonic", "head regressed on advance")
		assertInvariant(newHead <= tail, "sequence-bounds", "consumer advanced past tail")
	}
	r.head.StoreRelease(newHead)
	if r.config.enableMetrics {
		r.metrics.addMessagesReceived(uint64(n))
		r.metrics.addBatchReceived()
		r.metrics.touch(r.timeSrc)
	}
}

// ConsumeAll invokes handler, by reference, for every currently-available
// item and advances head once for the whole batch - a single atomic store
// amortized across the entire run rather than one per item (the Disruptor
// pattern). Returns the number of items processed.
func (r *Ring[T]) ConsumeAll(handler func(item *T)) int {
	return r.consumeUpTo(-1, func(item *T) { handler(item) })
}

// ConsumeUpTo is ConsumeAll bounded to at most maxItems, so a consumer can
// cap how long a single drain call runs.
func (r *Ring[T]) ConsumeUpTo(maxItems int, handler func(item *T)) int {
	if maxItems <= 0 {
		return 0
	}
	return r.consumeUpTo(maxItems, handler)
}

// ConsumeAllOwned is ConsumeAll but hands the handler an owned copy of each
// item (and zeroes the slot afterward so a pointer-typed T can be
// collected), the form the async receiver uses to move items into its own
// buffer.
func (r *Ring[T]) ConsumeAllOwned(handler func(item T)) int {
	return r.consumeUpToOwned(-1, handler)
}

// ConsumeUpToOwned is ConsumeAllOwned bounded to at most maxItems.
func (r *Ring[T]) ConsumeUpToOwned(maxItems int, handler func(item T)) int {
	if maxItems <= 0 {
		return 0
	}
	return r.consumeUpToOwned(maxItems, handler)
}

func (r *Ring[T]) consumeUpTo(maxItems int, handler func(item *T)) int {
	head, avail := r.readableLen(maxItems)
	if avail == 0 {
		return 0
	}
	toConsume := avail
	if maxItems >= 0 && maxItems < toConsume {
		toConsume = maxItems
	}

	pos := head
	for i := 0; i < toConsume; i++ {
		idx := pos & r.mask
		handler(&r.buffer[idx])
		pos++
	}
	r.advance(toConsume)
	return toConsume
}

func (r *Ring[T]) consumeUpToOwned(maxItems int, handler func(item T)) int {
	head, avail := r.readableLen(maxItems)
	if avail == 0 {
		return 0
	}
	toConsume := avail
	if maxItems >= 0 && maxItems < toConsume {
		toConsume = maxItems
	}

	var zero T
	pos := head
	for i := 0; i < toConsume; i++ {
		idx := pos & r.mask
		item := r.buffer[idx]
		r.buffer[idx] = zero // drop the reference so GC can collect it
		handler(item)
		pos++
	}
	r.advance(toConsume)
	return toConsume
}
