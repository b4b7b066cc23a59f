// Copyright 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package async

import "testing"

func TestWakeOneNotifyIsNonBlockingAndCoalesces(t *testing.T) {
	w := newWakeOne()
	w.notify()
	w.notify() // second notify before anyone consumes must not block

	select {
	case <-w.Chan():
	default:
		t.Fatal("expected a pending wake")
	}

	select {
	case <-w.Chan():
		t.Fatal("expected only one coalesced wake to be pending")
	default:
	}
}

func TestBroadcastNotifyAllWakesEverySnapshot(t *testing.T) {
	b := newBroadcast()
	s1 := b.snapshot()
	s2 := b.snapshot()
	if s1 != s2 {
		t.Fatal("two snapshots taken before a notify must be the same channel")
	}

	done := make(chan int, 2)
	for i := 0; i < 2; i++ {
		go func() {
			<-s1
			done <- 1
		}()
	}

	b.notifyAll()
	sum := <-done
	sum += <-done
	if sum != 2 {
		t.Fatal("expected both waiters to wake")
	}

	s3 := b.snapshot()
	if s3 == s1 {
		t.Fatal("snapshot taken after notifyAll must be a fresh generation")
	}
}
