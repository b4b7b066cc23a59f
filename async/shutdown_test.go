// Copyright 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package async

import "testing"

func TestShutdownStateCloseRegistrationDoesNotTrigger(t *testing.T) {
	s := newShutdownState()
	s.closeRegistration()
	if !s.isClosed() {
		t.Fatal("expected closed after closeRegistration")
	}
	if s.isInitiated() {
		t.Fatal("closeRegistration must not mark the full shutdown sequence initiated")
	}
	select {
	case <-s.triggerCh:
		t.Fatal("triggerCh must not fire from closeRegistration")
	default:
	}
}

func TestShutdownStateTriggerIsIdempotent(t *testing.T) {
	s := newShutdownState()
	space := newBroadcast()

	s.trigger(space)
	if !s.isClosed() || !s.isInitiated() {
		t.Fatal("expected closed and initiated after trigger")
	}

	select {
	case <-s.triggerCh:
	default:
		t.Fatal("expected triggerCh closed")
	}

	// A second trigger must not panic (closing a closed channel panics if
	// the idempotence guard is broken).
	s.trigger(space)
}

func TestShutdownSignalCopyShareState(t *testing.T) {
	s := newShutdownState()
	space := newBroadcast()
	sig1 := ShutdownSignal{state: s, space: space}
	sig2 := sig1 // trivially copyable, both observe the same shutdown

	sig1.Shutdown()
	if !sig2.IsShutdown() {
		t.Fatal("expected the copy to observe shutdown triggered by the original")
	}
}
