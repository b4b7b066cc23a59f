// Copyright 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringchan

import "testing"

func TestRingMetricsCountSendsAndReceives(t *testing.T) {
	src := newTimeSource()
	defer src.stop()
	r := NewRing[int](NewConfig(2, 1).EnableMetrics(), src)

	for i := 1; i <= 3; i++ {
		i := i
		if err := r.Push(&i); err != nil {
			t.Fatalf("push %d: %v", i, err)
		}
	}
	r.ConsumeAll(func(item *int) {})

	snap := r.Metrics()
	if snap.MessagesSent != 3 {
		t.Fatalf("MessagesSent = %d, want 3", snap.MessagesSent)
	}
	if snap.MessagesReceived != 3 {
		t.Fatalf("MessagesReceived = %d, want 3", snap.MessagesReceived)
	}
	if snap.BatchesReceived != 1 {
		t.Fatalf("BatchesReceived = %d, want 1", snap.BatchesReceived)
	}
	if snap.LastActivity.IsZero() {
		t.Fatal("expected LastActivity to be set once metrics are enabled")
	}
}

func TestChannelMetricsAggregateAcrossRings(t *testing.T) {
	ch := NewChannel[int](NewConfig(4, 2).EnableMetrics())
	defer ch.Close()

	p1, _ := ch.Register()
	p2, _ := ch.Register()
	a, b := 1, 2
	p1.Push(&a)
	p2.Push(&b)
	ch.ConsumeAll(func(item *int) {})

	snap := ch.Metrics()
	if snap.MessagesSent != 2 {
		t.Fatalf("aggregated MessagesSent = %d, want 2", snap.MessagesSent)
	}
	if snap.MessagesReceived != 2 {
		t.Fatalf("aggregated MessagesReceived = %d, want 2", snap.MessagesReceived)
	}
}

func TestMetricsDisabledByDefault(t *testing.T) {
	r := NewRing[int](DefaultConfig(), nil)
	one := 1
	r.Push(&one)
	r.ConsumeAll(func(item *int) {})
	snap := r.Metrics()
	if snap.MessagesSent != 0 || !snap.LastActivity.IsZero() {
		t.Fatalf("expected zero-value metrics snapshot when disabled, got %+v", snap)
	}
}
