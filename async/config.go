// Copyright 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package async

import "time"

// StreamConfig tunes the async adapter's hybrid polling strategy: a
// [Receiver] wakes on a notification the instant data arrives, but also
// rechecks every PollInterval as a safety net against a missed wakeup, and
// aims to drain up to BatchHint items per wake to amortize channel
// overhead.
type StreamConfig struct {
	PollInterval time.Duration
	BatchHint    int
}

// DefaultStreamConfig is a balanced preset: a 10ms safety-net poll and a
// 64-item batch hint.
func DefaultStreamConfig() StreamConfig {
	return StreamConfig{PollInterval: 10 * time.Millisecond, BatchHint: 64}
}

// LowLatencyStreamConfig favors responsiveness: a 1ms poll and small
// 16-item batches.
func LowLatencyStreamConfig() StreamConfig {
	return StreamConfig{PollInterval: time.Millisecond, BatchHint: 16}
}

// HighThroughputStreamConfig favors amortization: a 50ms poll and large
// 256-item batches.
func HighThroughputStreamConfig() StreamConfig {
	return StreamConfig{PollInterval: 50 * time.Millisecond, BatchHint: 256}
}

// WithPollInterval returns a copy of c with PollInterval set.
func (c StreamConfig) WithPollInterval(d time.Duration) StreamConfig {
	c.PollInterval = d
	return c
}

// WithBatchHint returns a copy of c with BatchHint set.
func (c StreamConfig) WithBatchHint(n int) StreamConfig {
	c.BatchHint = n
	return c
}
