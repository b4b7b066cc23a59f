// Copyright 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringchan

import (
	"sync"
	"testing"
)

// Two producers writing to their own rings must each keep their own
// relative order intact across a combined drain, whatever the
// interleaving of the two streams in the drained output.
func TestChannelTwoProducersPreserveRelativeOrder(t *testing.T) {
	ch := NewChannel[int](NewConfig(4, 2)) // capacity 16, 2 producers
	defer ch.Close()

	p1, err := ch.Register()
	if err != nil {
		t.Fatalf("register p1: %v", err)
	}
	p2, err := ch.Register()
	if err != nil {
		t.Fatalf("register p2: %v", err)
	}

	for _, v := range []int{1, 2, 3} {
		v := v
		if err := p1.Push(&v); err != nil {
			t.Fatalf("p1 push %d: %v", v, err)
		}
	}
	for _, v := range []int{4, 5, 6} {
		v := v
		if err := p2.Push(&v); err != nil {
			t.Fatalf("p2 push %d: %v", v, err)
		}
	}

	var got []int
	n := ch.ConsumeAll(func(item *int) { got = append(got, *item) })
	if n != 6 {
		t.Fatalf("consumed %d, want 6", n)
	}

	p1idx := map[int]int{1: 0, 2: 0, 3: 0}
	p2idx := map[int]int{4: 0, 5: 0, 6: 0}
	var p1seq, p2seq []int
	for _, v := range got {
		if _, ok := p1idx[v]; ok {
			p1seq = append(p1seq, v)
		} else if _, ok := p2idx[v]; ok {
			p2seq = append(p2seq, v)
		}
	}
	if len(p1seq) != 3 || p1seq[0] != 1 || p1seq[1] != 2 || p1seq[2] != 3 {
		t.Fatalf("p1 sub-sequence = %v, want [1 2 3]", p1seq)
	}
	if len(p2seq) != 3 || p2seq[0] != 4 || p2seq[1] != 5 || p2seq[2] != 6 {
		t.Fatalf("p2 sub-sequence = %v, want [4 5 6]", p2seq)
	}
}

func TestChannelRegistrationAtAndBeyondCap(t *testing.T) {
	ch := NewChannel[int](NewConfig(2, 2))
	defer ch.Close()

	if _, err := ch.Register(); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := ch.Register(); err != nil {
		t.Fatalf("second register (at cap): %v", err)
	}

	_, err := ch.Register()
	var tooMany *TooManyProducersError
	if err == nil {
		t.Fatal("expected TooManyProducersError")
	}
	tm, ok := err.(*TooManyProducersError)
	if !ok {
		t.Fatalf("unexpected error type %T", err)
	}
	tooMany = tm
	if tooMany.Max != 2 {
		t.Fatalf("Max = %d, want 2", tooMany.Max)
	}
	if ch.ProducerCount() != 2 {
		t.Fatalf("ProducerCount = %d, want 2 (rollback on overflow)", ch.ProducerCount())
	}
}

func TestChannelConsumeAllUpToAcrossRings(t *testing.T) {
	ch := NewChannel[int](NewConfig(4, 2))
	defer ch.Close()

	p1, _ := ch.Register()
	p2, _ := ch.Register()
	for i := 0; i < 4; i++ {
		i := i
		p1.Push(&i)
	}
	for i := 100; i < 104; i++ {
		i := i
		p2.Push(&i)
	}

	var got []int
	n := ch.ConsumeAllUpTo(5, func(item *int) { got = append(got, *item) })
	if n != 5 {
		t.Fatalf("consumed %d, want 5", n)
	}
	// Deterministic by ring index: all of p1's ring drains before p2's.
	want := []int{0, 1, 2, 3, 100}
	for i, v := range want {
		if got[i] != v {
			t.Fatalf("got[%d] = %d, want %d", i, got[i], v)
		}
	}
}

func TestChannelCloseIsIdempotent(t *testing.T) {
	ch := NewChannel[int](NewConfig(2, 1))
	ch.Close()
	ch.Close() // must not panic

	if !ch.IsClosed() {
		t.Fatal("expected channel closed")
	}
	if _, err := ch.Register(); err != ErrClosed {
		t.Fatalf("register after close: got %v, want ErrClosed", err)
	}
}

func TestChannelCloseDrainsInFlightItems(t *testing.T) {
	ch := NewChannel[int](NewConfig(2, 1))
	p, err := ch.Register()
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	v := 42
	if err := p.Push(&v); err != nil {
		t.Fatalf("push: %v", err)
	}
	ch.Close()

	var got []int
	n := ch.ConsumeAll(func(item *int) { got = append(got, *item) })
	if n != 1 || got[0] != 42 {
		t.Fatalf("got %v, want [42]", got)
	}
	n2 := ch.ConsumeAll(func(item *int) {})
	if n2 != 0 {
		t.Fatalf("second drain returned %d, want 0", n2)
	}
}

func TestChannelConcurrentProducers(t *testing.T) {
	const producers = 8
	const perProducer = 200
	ch := NewChannel[int](NewConfig(8, producers))
	defer ch.Close()

	var wg sync.WaitGroup
	for i := 0; i < producers; i++ {
		p, err := ch.Register()
		if err != nil {
			t.Fatalf("register %d: %v", i, err)
		}
		wg.Add(1)
		go func(p *Producer[int], base int) {
			defer wg.Done()
			for j := 0; j < perProducer; j++ {
				v := base*perProducer + j
				for {
					if err := p.Push(&v); err == nil {
						break
					}
					var b Backoff
					b.Wait()
				}
			}
		}(p, i)
	}

	total := 0
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	for {
		total += ch.ConsumeAll(func(item *int) {})
		select {
		case <-done:
			total += ch.ConsumeAll(func(item *int) {})
			if total != producers*perProducer {
				t.Fatalf("total = %d, want %d", total, producers*perProducer)
			}
			return
		default:
		}
	}
}
