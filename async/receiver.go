// Copyright 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package async

import (
	"context"
	"time"

	"code.hybscloud.com/ringchan"
)

// Receiver pulls items from a [ringchan.Channel] as a blocking, lazy
// sequence: call Next in a loop until it reports false. Items are yielded
// in per-producer FIFO order, inherited unchanged from the wrapped
// channel.
//
// Backpressure: after every drain, Receiver wakes any sender blocked on
// space via the shared broadcast notifier.
//
// Shutdown: call Shutdown (or trigger a [ShutdownSignal] obtained via
// ShutdownSignal) for graceful termination, which closes the channel for
// new registrations, wakes blocked senders, and drains every remaining
// item before Next starts returning false.
//
// Internally Next is a blocking select loop: it wakes on a sender
// notification, a safety-net poll tick, or the shutdown trigger, whichever
// comes first, and refills its internal buffer from the channel each time.
type Receiver[T any] struct {
	channel  *ringchan.Channel[T]
	data     *wakeOne
	space    *broadcast
	shutdown *shutdownState
	config   StreamConfig

	ticker *time.Ticker

	buffer        []T
	bufPos        int
	drainComplete bool
}

func newReceiver[T any](channel *ringchan.Channel[T], data *wakeOne, space *broadcast, shutdown *shutdownState, config StreamConfig) *Receiver[T] {
	return &Receiver[T]{
		channel:  channel,
		data:     data,
		space:    space,
		shutdown: shutdown,
		config:   config,
		ticker:   time.NewTicker(config.PollInterval),
		buffer:   make([]T, 0, config.BatchHint),
	}
}

// Shutdown initiates graceful shutdown: see [ShutdownSignal.Shutdown].
// After calling this, keep calling Next until it returns false to receive
// every remaining item.
func (rv *Receiver[T]) Shutdown() {
	rv.shutdown.trigger(rv.space)
}

// IsShutdown reports whether shutdown has been initiated.
func (rv *Receiver[T]) IsShutdown() bool {
	return rv.shutdown.isInitiated()
}

// ShutdownSignal returns a cloneable handle any goroutine can use to
// trigger shutdown.
func (rv *Receiver[T]) ShutdownSignal() ShutdownSignal {
	return ShutdownSignal{state: rv.shutdown, space: rv.space}
}

// BufferedCount returns the number of items currently buffered internally,
// already drained from the channel but not yet returned by Next.
func (rv *Receiver[T]) BufferedCount() int {
	return len(rv.buffer) - rv.bufPos
}

// Close releases the receiver's internal poll timer. Call once the
// receiver is no longer in use.
func (rv *Receiver[T]) Close() {
	rv.ticker.Stop()
}

func (rv *Receiver[T]) popBuffered() (T, bool) {
	if debugAssertionsEnabled {
		assertInvariant(rv.bufPos >= 0 && rv.bufPos <= len(rv.buffer), "stream-buffer-bounds", "bufPos out of range")
	}
	if rv.bufPos < len(rv.buffer) {
		item := rv.buffer[rv.bufPos]
		var zero T
		rv.buffer[rv.bufPos] = zero
		rv.bufPos++
		return item, true
	}
	var zero T
	return zero, false
}

func (rv *Receiver[T]) resetBuffer() {
	rv.buffer = rv.buffer[:0]
	rv.bufPos = 0
}

// drainUpToBatch drains at most config.BatchHint-len(buffer) items, the
// batch limit applied on both the notify and timer wakeup paths.
func (rv *Receiver[T]) drainUpToBatch() int {
	limit := rv.config.BatchHint - len(rv.buffer)
	if limit <= 0 {
		return 0
	}
	n := rv.channel.ConsumeAllUpToOwned(limit, func(item T) {
		rv.buffer = append(rv.buffer, item)
	})
	if n > 0 {
		rv.space.notifyAll()
	}
	return n
}

// drainAll drains every currently-available item regardless of BatchHint,
// used for the final shutdown drain and the closed-channel fallback.
func (rv *Receiver[T]) drainAll() int {
	n := rv.channel.ConsumeAllOwned(func(item T) {
		rv.buffer = append(rv.buffer, item)
	})
	if n > 0 {
		rv.space.notifyAll()
	}
	return n
}

// Next blocks until an item is available, the stream ends (false), or ctx
// is done (false).
func (rv *Receiver[T]) Next(ctx context.Context) (T, bool) {
	for {
		if item, ok := rv.popBuffered(); ok {
			return item, true
		}
		rv.resetBuffer()

		if rv.drainComplete {
			var zero T
			return zero, false
		}

		select {
		case <-rv.shutdown.triggerCh:
			rv.drainAll()
			rv.drainComplete = true
			continue
		case <-ctx.Done():
			var zero T
			return zero, false
		default:
		}

		if rv.drainUpToBatch() > 0 {
			continue
		}

		if rv.shutdown.isClosed() {
			// Closed without an explicit Shutdown trigger (e.g. Factory.Close
			// was called directly): one last drain to be sure nothing is left.
			if rv.drainAll() > 0 {
				continue
			}
			rv.drainComplete = true
			continue
		}

		select {
		case <-rv.shutdown.triggerCh:
			rv.drainAll()
			rv.drainComplete = true
		case <-rv.data.Chan():
		case <-rv.ticker.C:
		case <-ctx.Done():
			var zero T
			return zero, false
		}
	}
}
