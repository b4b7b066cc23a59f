// Copyright 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package async

import (
	"errors"
	"fmt"
)

// ErrFull indicates TrySend could not reserve space immediately. As in the
// core package, this is a control flow signal, not a failure.
var ErrFull = errors.New("ringchan/async: ring is full")

// ErrClosed indicates the channel or adapter has been closed.
var ErrClosed = errors.New("ringchan/async: closed")

// ErrShutDown indicates the receiver-side shutdown sequence has completed.
var ErrShutDown = errors.New("ringchan/async: shut down")

// ErrPendingItem is returned by StartSend when called again before the
// previously buffered item was flushed via Ready/Flush, so a caller can
// never silently lose an item by buffering over one that hasn't been
// written yet.
var ErrPendingItem = errors.New("ringchan/async: a pending item is already buffered, call Ready or Flush first")

// RegistrationError wraps a registration failure from the underlying
// [ringchan.Channel].
type RegistrationError struct {
	Cause error
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("ringchan/async: registration failed: %v", e.Cause)
}

func (e *RegistrationError) Unwrap() error {
	return e.Cause
}

// IsRecoverable reports whether err is a condition the caller can retry
// past (currently: ErrFull).
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrFull)
}

// IsTerminal reports whether err indicates the channel is permanently
// unusable (ErrClosed or ErrShutDown).
func IsTerminal(err error) bool {
	return errors.Is(err, ErrClosed) || errors.Is(err, ErrShutDown)
}
