// Copyright 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringchan

import (
	"time"

	"code.hybscloud.com/atomix"
	"github.com/agilira/go-timecache"
)

// Metrics is a set of relaxed-ordering counters a [Ring] updates on its hot
// path when its Config has EnableMetrics set. An exactly accurate
// lock-free count would require expensive cross-core synchronization;
// these counters are for observation only, never for control flow.
//
// lastActivity is a cached timestamp (see [timeSource]) so a monitoring
// loop can compute idle time without a syscall on every publish/drain.
type Metrics struct {
	messagesSent     atomix.Uint64
	messagesReceived atomix.Uint64
	batchesSent      atomix.Uint64
	batchesReceived  atomix.Uint64
	reserveSpins     atomix.Uint64
	lastActivityUnix atomix.Int64
}

// MetricsSnapshot is a plain-value copy of [Metrics] suitable for logging,
// aggregation across rings, or comparison.
type MetricsSnapshot struct {
	MessagesSent     uint64
	MessagesReceived uint64
	BatchesSent      uint64
	BatchesReceived  uint64
	ReserveSpins     uint64
	LastActivity     time.Time
}

func (m *Metrics) addMessagesSent(n uint64) {
	m.messagesSent.Add(n)
}

func (m *Metrics) addMessagesReceived(n uint64) {
	m.messagesReceived.Add(n)
}

func (m *Metrics) addBatchSent() {
	m.batchesSent.Add(1)
}

func (m *Metrics) addBatchReceived() {
	m.batchesReceived.Add(1)
}

func (m *Metrics) addReserveSpin() {
	m.reserveSpins.Add(1)
}

func (m *Metrics) touch(src *timeSource) {
	if src != nil {
		m.lastActivityUnix.Store(src.now().UnixNano())
	}
}

// Snapshot returns a point-in-time copy of m.
func (m *Metrics) Snapshot() MetricsSnapshot {
	var last time.Time
	if ns := m.lastActivityUnix.Load(); ns != 0 {
		last = time.Unix(0, ns)
	}
	return MetricsSnapshot{
		MessagesSent:     m.messagesSent.Load(),
		MessagesReceived: m.messagesReceived.Load(),
		BatchesSent:      m.batchesSent.Load(),
		BatchesReceived:  m.batchesReceived.Load(),
		ReserveSpins:     m.reserveSpins.Load(),
		LastActivity:     last,
	}
}

// timeSource wraps a shared, low-resolution cached clock. Reading
// time.Now() on every Reserve/Commit/Advance would add a syscall to a path
// whose entire purpose is to avoid syscalls, so every Ring sharing a
// Channel shares one timeSource backed by [timecache.TimeCache] at
// millisecond resolution.
type timeSource struct {
	cache *timecache.TimeCache
}

func newTimeSource() *timeSource {
	return &timeSource{cache: timecache.NewWithResolution(time.Millisecond)}
}

func (s *timeSource) now() time.Time {
	return s.cache.CachedTime()
}

func (s *timeSource) stop() {
	s.cache.Stop()
}
