// Copyright 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringchan

// noCopy is embedded in [Producer] to make `go vet`'s copylocks check flag
// accidental copies of a producer handle. It has no state of its own; the
// single-writer invariant is enforced by never exposing a public
// constructor for Producer, only [Channel.Register].
//
// Mirrors the standard library's own sync.noCopy idiom.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
