// Copyright 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package async

import (
	"context"
	"testing"
	"time"

	"code.hybscloud.com/ringchan"
)

func TestSenderTrySendReturnsFullOnFullRing(t *testing.T) {
	factory, rx := NewChannel[int](ringchan.NewConfig(2, 1), DefaultStreamConfig()) // capacity 4
	defer rx.Close()

	tx, _ := factory.Register()
	for i := 0; i < 4; i++ {
		if err := tx.TrySend(i); err != nil {
			t.Fatalf("TrySend(%d): %v", i, err)
		}
	}
	if err := tx.TrySend(4); err != ErrFull {
		t.Fatalf("TrySend on full ring = %v, want ErrFull", err)
	}
}

func TestSenderStartSendRejectsSecondPendingItem(t *testing.T) {
	factory, rx := NewChannel[int](ringchan.NewConfig(1, 1), DefaultStreamConfig()) // capacity 2
	defer rx.Close()

	tx, _ := factory.Register()
	// Fill the ring so the next StartSend must buffer as pending.
	if err := tx.TrySend(1); err != nil {
		t.Fatalf("TrySend: %v", err)
	}
	if err := tx.TrySend(2); err != nil {
		t.Fatalf("TrySend: %v", err)
	}

	if err := tx.StartSend(3); err != nil {
		t.Fatalf("StartSend buffering pending item: %v", err)
	}
	if err := tx.StartSend(4); err != ErrPendingItem {
		t.Fatalf("second StartSend before flush = %v, want ErrPendingItem", err)
	}
}

// A fast producer sending 20 items into a 4-slot ring while a consumer
// concurrently drains it: every item must arrive exactly once, nothing
// dropped, nothing duplicated, no panics.
func TestSenderFastProducerNoDropUnderBackpressure(t *testing.T) {
	factory, rx := NewChannel[int](ringchan.NewConfig(2, 1), LowLatencyStreamConfig()) // capacity 4
	defer rx.Close()

	tx, err := factory.Register()
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	const total = 20
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	go func() {
		for i := 0; i < total; i++ {
			if err := tx.Send(ctx, i); err != nil {
				return
			}
		}
		tx.Close()
	}()

	seen := make(map[int]bool)
	for {
		item, ok := rx.Next(ctx)
		if !ok {
			break
		}
		if seen[item] {
			t.Fatalf("item %d delivered more than once", item)
		}
		seen[item] = true
		if len(seen) == total {
			break
		}
	}

	if len(seen) != total {
		t.Fatalf("received %d distinct items, want %d", len(seen), total)
	}
}

// A producer blocked on a full ring must observe Closed, not Full, once
// the receiver side initiates shutdown.
func TestSenderBlockedOnBackpressureObservesClosedOnShutdown(t *testing.T) {
	factory, rx := NewChannel[int](ringchan.NewConfig(1, 1), DefaultStreamConfig()) // capacity 2

	tx, err := factory.Register()
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	// Fill the ring so the next Send blocks on backpressure.
	if err := tx.TrySend(1); err != nil {
		t.Fatalf("TrySend: %v", err)
	}
	if err := tx.TrySend(2); err != nil {
		t.Fatalf("TrySend: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- tx.Send(ctx, 3)
	}()

	// Give the goroutine a moment to actually block on backpressure, then
	// shut down without ever draining the ring.
	time.Sleep(20 * time.Millisecond)
	rx.Shutdown()

	select {
	case err := <-errCh:
		if err != ErrClosed {
			t.Fatalf("blocked Send on shutdown = %v, want ErrClosed", err)
		}
	case <-ctx.Done():
		t.Fatal("timed out waiting for blocked Send to observe shutdown")
	}
	rx.Close()
}
