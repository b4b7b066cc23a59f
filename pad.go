// Copyright 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringchan

import "unsafe"

// ptrSize is the size of a pointer in bytes.
const ptrSize = int(unsafe.Sizeof(uintptr(0)))

// pad is a 128-byte cache-line-sized padding region: the ring's
// producer-hot and consumer-hot fields each get their own region so a
// write to one never invalidates a cache line the other side reads.
type pad [128]byte

// padAfterU64 pads out a 128-byte region after an 8-byte atomic field.
type padAfterU64 [128 - 8]byte

// padAfterPtr pads out a 128-byte region after a pointer-sized field.
type padAfterPtr [128 - ptrSize]byte

// roundToPow2 rounds n up to the next power of 2.
func roundToPow2(n int) int {
	if n < 2 {
		return 2
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}
