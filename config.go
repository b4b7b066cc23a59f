// Copyright 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringchan

import "fmt"

// Config sizes a [Ring] and bounds the producer count of a [Channel].
// ringBits and maxProducers are validated at construction so a
// misconfigured size panics immediately rather than surfacing as a subtle
// runtime bug later.
type Config struct {
	ringBits      uint8
	maxProducers  int
	enableMetrics bool
}

// DefaultConfig is a balanced preset: a 64K-slot ring (2^16) and up to 16
// producers, metrics disabled.
func DefaultConfig() Config {
	return Config{ringBits: 16, maxProducers: 16, enableMetrics: false}
}

// LowLatencyConfig favors cache residency over raw throughput: a small
// 4096-slot ring (2^12), with up to 16 producers.
func LowLatencyConfig() Config {
	return Config{ringBits: 12, maxProducers: 16, enableMetrics: false}
}

// HighThroughputConfig favors batch amortization over footprint: a large
// 256K-slot ring (2^18) and up to 32 producers.
func HighThroughputConfig() Config {
	return Config{ringBits: 18, maxProducers: 32, enableMetrics: false}
}

// NewConfig builds a Config from an explicit ring-bits/max-producers pair.
// Panics if ringBits is outside 1..20 or maxProducers is outside 1..128.
func NewConfig(ringBits uint8, maxProducers int) Config {
	if ringBits < 1 || ringBits > 20 {
		panic(fmt.Sprintf("ringchan: ring_bits must be in 1..20, got %d", ringBits))
	}
	if maxProducers < 1 || maxProducers > 128 {
		panic(fmt.Sprintf("ringchan: max_producers must be in 1..128, got %d", maxProducers))
	}
	return Config{ringBits: ringBits, maxProducers: maxProducers}
}

// NewConfigForCapacity builds a Config sized to hold at least capacity
// items, rounding up to the next power of two the way the ring's slot
// indexing requires, rather than requiring the caller to express the size
// as an explicit bit count.
func NewConfigForCapacity(capacity, maxProducers int) Config {
	if capacity < 2 {
		panic(fmt.Sprintf("ringchan: capacity must be >= 2, got %d", capacity))
	}
	rounded := roundToPow2(capacity)
	var bits uint8
	for (1 << bits) < rounded {
		bits++
	}
	return NewConfig(bits, maxProducers)
}

// EnableMetrics returns a copy of c with metrics collection turned on.
func (c Config) EnableMetrics() Config {
	c.enableMetrics = true
	return c
}

// Capacity returns the per-ring slot count, 2^ringBits.
func (c Config) Capacity() int {
	return 1 << c.ringBits
}

// mask returns the per-ring index mask, Capacity()-1.
func (c Config) mask() uint64 {
	return uint64(c.Capacity() - 1)
}

// MaxProducers returns the configured producer cap.
func (c Config) MaxProducers() int {
	return c.maxProducers
}
