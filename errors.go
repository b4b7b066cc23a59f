// Copyright 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringchan

import (
	"fmt"

	"code.hybscloud.com/iox"
)

// ErrFull is returned by Push when it cannot proceed immediately because
// the ring has no free slots.
//
// ErrFull is a control flow signal, not a failure: the caller should retry
// with backoff rather than propagating it as an error up the stack.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency with
// the rest of the code.hybscloud.com queue family.
//
// Example:
//
//	b := Backoff{}
//	for {
//	    err := r.Push(&item)
//	    if err == nil {
//	        b.Reset()
//	        break
//	    }
//	    if !ringchan.IsFull(err) {
//	        return err
//	    }
//	    b.Wait()
//	}
var ErrFull = iox.ErrWouldBlock

// ErrClosed indicates the ring, channel, or adapter has been closed and
// will accept no further producer registrations or sends.
var ErrClosed = fmt.Errorf("ringchan: closed")

// TooManyProducersError is returned by [Channel.Register] once the
// configured producer cap has already been claimed.
type TooManyProducersError struct {
	Max int
}

func (e *TooManyProducersError) Error() string {
	return fmt.Sprintf("ringchan: too many producers (max %d)", e.Max)
}

// CommitError is returned by [Reservation.CommitN] when asked to commit
// more slots than the reservation actually holds.
type CommitError struct {
	Attempted int
	Available int
}

func (e *CommitError) Error() string {
	return fmt.Sprintf("ringchan: commit %d exceeds reservation of %d", e.Attempted, e.Available)
}

// IsFull reports whether err indicates the operation would block on a full
// ring. Delegates to [iox.IsWouldBlock] for wrapped-error support.
func IsFull(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal rather than a
// failure. Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
