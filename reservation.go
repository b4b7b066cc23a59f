// Copyright 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringchan

// Reservation is a zero-copy write handle into a [Ring], returned by
// Reserve/ReserveWithBackoff. A Go slice already aliases the ring's backing
// array, so this type needs only the ring pointer itself for commit
// bookkeeping.
//
// A Reservation that is never committed is simply dropped: the tail was
// never advanced, so the claimed slots are implicitly rolled back and
// reused by the next Reserve.
type Reservation[T any] struct {
	ring  *Ring[T]
	slice []T
}

// Slice returns the reserved region for writing. Its length may be less
// than originally requested if the reservation wrapped the ring; see
// [Ring.Reserve].
func (res *Reservation[T]) Slice() []T {
	return res.slice
}

// Len returns the number of slots actually reserved.
func (res *Reservation[T]) Len() int {
	return len(res.slice)
}

// IsEmpty reports whether the reservation holds zero slots.
func (res *Reservation[T]) IsEmpty() bool {
	return len(res.slice) == 0
}

// Commit publishes every reserved slot, advancing the ring's tail by Len().
func (res *Reservation[T]) Commit() {
	res.ring.commitInternal(len(res.slice))
}

// CommitN publishes exactly the first k slots, leaving the rest of the
// reservation unwritten and unpublished. Returns a [CommitError] if k
// exceeds Len().
func (res *Reservation[T]) CommitN(k int) error {
	if k < 0 || k > len(res.slice) {
		return &CommitError{Attempted: k, Available: len(res.slice)}
	}
	res.ring.commitInternal(k)
	return nil
}

// CommitUpTo publishes min(k, Len()) slots and never fails - the
// saturating counterpart to CommitN, for callers that only know how much
// they managed to write and would rather clamp than branch on an error.
func (res *Reservation[T]) CommitUpTo(k int) {
	if k < 0 {
		k = 0
	}
	if k > len(res.slice) {
		k = len(res.slice)
	}
	if debugAssertionsEnabled {
		assertInvariant(k >= 0 && k <= len(res.slice), "reservation-bounds", "clamped commit out of range")
	}
	res.ring.commitInternal(k)
}
