// Copyright 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringchan

import (
	"runtime"

	"code.hybscloud.com/spin"
)

// Stage thresholds for Backoff's three-stage design: spin doubles the pause
// count up to spinLimit, then yields the scheduler up to yieldLimit, then
// reports completion so the caller can fall back to a blocking wait.
const (
	spinLimit  = 6
	yieldLimit = 10
)

// Backoff is an adaptive, reusable wait strategy for contended retry loops:
// reserve-on-full-ring, register-on-contended-producer-count, and similar.
//
// A fresh Backoff starts in the spin stage. Each call to Wait advances one
// step: while step <= spinLimit it issues 1<<step CPU-pause spins (via
// [spin.Wait]); once past spinLimit it yields the goroutine's scheduler
// slot (via runtime.Gosched) until step reaches yieldLimit, after which
// IsCompleted reports true and Wait becomes a cheap Gosched forever. Call
// Reset before reusing a Backoff for an unrelated wait cycle.
//
// Not safe for concurrent use; each goroutine should own its own Backoff
// rather than sharing one.
type Backoff struct {
	step uint32
}

// Wait performs one backoff step.
func (b *Backoff) Wait() {
	if b.step <= spinLimit {
		sw := spin.Wait{}
		for i := uint32(0); i < 1<<b.step; i++ {
			sw.Once()
		}
		b.step++
		return
	}
	runtime.Gosched()
	if b.step < yieldLimit {
		b.step++
	}
}

// IsCompleted reports whether Backoff has exhausted both the spin and
// yield stages. Callers that need to avoid burning a core indefinitely
// should switch to a blocking wait (e.g. a channel receive or
// condition-variable wait) once this returns true.
func (b *Backoff) IsCompleted() bool {
	return b.step >= yieldLimit
}

// Reset returns Backoff to its initial spin stage for reuse.
func (b *Backoff) Reset() {
	b.step = 0
}
