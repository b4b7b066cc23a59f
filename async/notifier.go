// Copyright 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package async

import "sync"

// wakeOne is a single-waiter wake notification, the idiomatic Go
// rendition of tokio's Notify used with notify_one: at most one pending
// wake is remembered, and at most one blocked waiter consumes it. Used for
// the data-arrived signal - the producer side only needs to nudge the one
// consumer goroutine that there is something to drain.
type wakeOne struct {
	ch chan struct{}
}

func newWakeOne() *wakeOne {
	return &wakeOne{ch: make(chan struct{}, 1)}
}

// notify wakes a blocked waiter, or leaves a pending wake for the next one
// to arrive. Never blocks.
func (w *wakeOne) notify() {
	select {
	case w.ch <- struct{}{}:
	default:
	}
}

// Chan returns the channel a waiter receives from to consume a wake.
// Callers select on it directly when they also need to watch other events
// (shutdown, a timer, ctx.Done).
func (w *wakeOne) Chan() <-chan struct{} {
	return w.ch
}

// broadcast is a wake-all notification, the rendition of tokio's Notify
// used with notify_waiters: every goroutine currently waiting is woken,
// via the standard Go idiom of closing a channel and replacing it with a
// fresh one under a mutex. Used for the space-available signal - when the
// consumer drains, every blocked producer should get a chance to recheck.
type broadcast struct {
	mu sync.Mutex
	ch chan struct{}
}

func newBroadcast() *broadcast {
	return &broadcast{ch: make(chan struct{})}
}

// snapshot returns the current generation's channel; it closes when the
// next notifyAll fires.
func (b *broadcast) snapshot() chan struct{} {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ch
}

// notifyAll wakes every goroutine currently blocked on a snapshot taken
// before this call.
func (b *broadcast) notifyAll() {
	b.mu.Lock()
	close(b.ch)
	b.ch = make(chan struct{})
	b.mu.Unlock()
}
