// Copyright 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package async

import "sync"

// shutdownState is the shared state a [Factory], every [Sender], and the
// [Receiver] all see a pointer to. closed blocks new registrations and new
// sends; initiated additionally means the full graceful-shutdown sequence
// (wake blocked senders, drain, end-of-stream) has been requested.
type shutdownState struct {
	mu        sync.Mutex
	closed    bool
	initiated bool
	triggerCh chan struct{}
}

func newShutdownState() *shutdownState {
	return &shutdownState{triggerCh: make(chan struct{})}
}

func (s *shutdownState) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *shutdownState) isInitiated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initiated
}

// closeRegistration blocks new registrations and sends without starting
// the full drain/shutdown sequence - what Factory.Close does (no trigger
// channel closed).
func (s *shutdownState) closeRegistration() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

// trigger runs the full graceful-shutdown sequence exactly once: mark
// closed and initiated, close triggerCh so a blocked Receiver.Next wakes
// and performs its final drain, and wake every blocked sender via space so
// they observe the closed state instead of waiting forever.
func (s *shutdownState) trigger(space *broadcast) {
	s.mu.Lock()
	if s.initiated {
		s.mu.Unlock()
		return
	}
	s.initiated = true
	s.closed = true
	close(s.triggerCh)
	if debugAssertionsEnabled {
		assertInvariant(s.closed && s.initiated, "shutdown-ordering", "closed must accompany initiated after trigger")
	}
	s.mu.Unlock()
	space.notifyAll()
}

// ShutdownSignal is a small, trivially-copyable handle for triggering
// graceful shutdown from any goroutine, including ones that never touch
// the [Factory] or [Receiver] directly. Obtain one via
// [Receiver.ShutdownSignal]. Shutdown is idempotent: only the first call
// across every copy of the signal has an effect.
type ShutdownSignal struct {
	state *shutdownState
	space *broadcast
}

// Shutdown initiates graceful shutdown: closes the channel for new
// registrations, wakes any producer blocked on backpressure so it observes
// the closed state, and lets the receiver perform a final drain before
// ending the stream.
func (sig ShutdownSignal) Shutdown() {
	sig.state.trigger(sig.space)
}

// IsShutdown reports whether shutdown has been initiated.
func (sig ShutdownSignal) IsShutdown() bool {
	return sig.state.isInitiated()
}
