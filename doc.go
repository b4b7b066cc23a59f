// Copyright 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ringchan provides a lock-free multi-producer single-consumer
// channel built from N dedicated single-producer single-consumer rings,
// one per registered producer, so producers never contend with each other.
//
// # Quick Start
//
//	ch := ringchan.NewChannel[Event](ringchan.DefaultConfig())
//	p, err := ch.Register()
//	if err != nil {
//	    // too many producers, or channel already closed
//	}
//
//	go func() { // one goroutine per producer
//	    for evt := range source {
//	        for p.Push(&evt) != nil {
//	            // ring full: backoff and retry
//	        }
//	    }
//	}()
//
//	for !ch.IsClosed() {
//	    ch.ConsumeAll(func(evt *Event) {
//	        handle(evt)
//	    })
//	}
//
// # Zero-Copy Reservations
//
// Reserve/ReserveWithBackoff hand back a [Reservation], a slice straight
// into the ring's backing array:
//
//	if res, ok := p.Reserve(4); ok {
//	    slice := res.Slice() // may be fewer than 4 if the ring wraps here
//	    for i := range slice {
//	        slice[i] = nextEvent()
//	    }
//	    res.Commit()
//	}
//
// A Reservation that is never committed is simply dropped; nothing needs
// to be rolled back explicitly.
//
// # Draining
//
// ConsumeAll/ConsumeUpTo process a whole batch of already-committed items
// per ring with a single atomic head update, amortizing the cost across
// the batch instead of paying it per item. Borrowed variants hand the
// handler a *T pointing into the ring; owned variants (ConsumeAllOwned,
// ConsumeUpToOwned) hand it a moved copy and zero the vacated slot so a
// pointer-typed T can be garbage collected.
//
// # Error Handling
//
// Push returns [ErrFull] (control flow, not failure - back off and retry)
// or [ErrClosed] (terminal); Reserve reports either case as a false result
// and Send as a short count. Use [IsFull]/[IsNonFailure] rather than
// comparing directly, since errors may be wrapped:
//
//	err := p.Push(&item)
//	switch {
//	case err == nil:
//	case ringchan.IsFull(err):
//	    backoff.Wait()
//	default:
//	    return err
//	}
//
// # Async Adapter
//
// The ringchan/async subpackage bridges a Channel to goroutines via a
// futures::Stream/Sink-flavored API: [async.Factory], [async.Sender],
// [async.Receiver], built on context.Context and channel-based notifiers
// instead of a hand-rolled poller.
//
// # Thread Safety
//
// A [Producer] must be used by exactly one goroutine; it intentionally has
// no exported constructor and carries a noCopy marker so go vet flags
// accidental copies. The consumer side (Channel.ConsumeAll and friends) is
// likewise intended for one goroutine at a time - draining from multiple
// goroutines concurrently is not a supported configuration.
//
// # Debug Assertions
//
// Build with -tags ringchan_debug to compile in internal invariant checks
// (sequence monotonicity, reservation bounds, shutdown ordering). These
// panic on violation and are never compiled into a production build.
package ringchan
