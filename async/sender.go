// Copyright 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package async

import (
	"context"

	"code.hybscloud.com/ringchan"
)

// Sender wraps a [ringchan.Producer] with backpressure-aware blocking
// sends and a sink-flavored readiness contract
// (Ready/StartSend/Flush/Close) for callers that want to buffer one item
// ahead of a blocking flush rather than block on every send.
//
// Sender does not implement a Clone method, by the same single-writer
// reasoning as [ringchan.Producer]: call [Factory.Register] again to get
// another Sender on its own dedicated ring.
type Sender[T any] struct {
	producer *ringchan.Producer[T]
	data     *wakeOne
	space    *broadcast
	shutdown *shutdownState

	pending    T
	hasPending bool
}

func newSender[T any](producer *ringchan.Producer[T], data *wakeOne, space *broadcast, shutdown *shutdownState) *Sender[T] {
	return &Sender[T]{producer: producer, data: data, space: space, shutdown: shutdown}
}

func (s *Sender[T]) closed() bool {
	return s.shutdown.isClosed() || s.producer.IsClosed()
}

// TrySend attempts to enqueue item without blocking. Returns ErrFull if
// the ring has no space, ErrClosed if the sender is closed.
func (s *Sender[T]) TrySend(item T) error {
	if s.closed() {
		return ErrClosed
	}
	res, ok := s.producer.Reserve(1)
	if !ok {
		return ErrFull
	}
	res.Slice()[0] = item
	res.Commit()
	s.data.notify()
	return nil
}

// Send enqueues item, blocking until space is available, the context is
// done, or the sender is closed. Convenience wrapper using reserve/commit
// internally so the item is never lost on contention.
func (s *Sender[T]) Send(ctx context.Context, item T) error {
	for {
		if s.closed() {
			return ErrClosed
		}
		space := s.space.snapshot()
		if res, ok := s.producer.Reserve(1); ok {
			res.Slice()[0] = item
			res.Commit()
			s.data.notify()
			return nil
		}

		select {
		case <-space:
		case <-ctx.Done():
			return ctx.Err()
		}

		if s.shutdown.isClosed() {
			return ErrClosed
		}
	}
}

// IsClosed reports whether this sender can no longer send.
func (s *Sender[T]) IsClosed() bool {
	return s.closed()
}

// Close closes this sender's ring directly, without flushing a pending
// item buffered by StartSend. Prefer [Sender.CloseSink] when StartSend has
// been used.
func (s *Sender[T]) Close() {
	s.producer.Close()
}

// ---------------------------------------------------------------------
// Sink-flavored readiness contract
// ---------------------------------------------------------------------

// Ready blocks until the sender is ready to accept another item via
// StartSend: any previously buffered pending item has been flushed, and
// the sender is not closed.
func (s *Sender[T]) Ready(ctx context.Context) error {
	for {
		if s.closed() {
			return ErrClosed
		}
		if !s.hasPending {
			return nil
		}
		space := s.space.snapshot()
		if res, ok := s.producer.Reserve(1); ok {
			res.Slice()[0] = s.pending
			res.Commit()
			s.data.notify()
			var zero T
			s.pending = zero
			s.hasPending = false
			return nil
		}
		select {
		case <-space:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// StartSend buffers item for sending, writing it through immediately if
// the ring has space. See [ErrPendingItem] for the case where a previous
// StartSend's item is still buffered.
func (s *Sender[T]) StartSend(item T) error {
	if s.closed() {
		return ErrClosed
	}
	if s.hasPending {
		return ErrPendingItem
	}
	if res, ok := s.producer.Reserve(1); ok {
		res.Slice()[0] = item
		res.Commit()
		s.data.notify()
		return nil
	}
	if debugAssertionsEnabled {
		assertInvariant(!s.hasPending, "sink-pending-item", "buffering over an unflushed pending item")
	}
	s.pending = item
	s.hasPending = true
	return nil
}

// Flush blocks until any item buffered by StartSend has been written to
// the ring, the context is done, or the sender closes.
func (s *Sender[T]) Flush(ctx context.Context) error {
	return s.Ready(ctx)
}

// CloseSink flushes any pending item and then closes the sender's ring.
func (s *Sender[T]) CloseSink(ctx context.Context) error {
	if err := s.Flush(ctx); err != nil {
		return err
	}
	s.producer.Close()
	return nil
}
