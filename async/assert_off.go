// Copyright 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !ringchan_debug

package async

// debugAssertionsEnabled is false when the ringchan_debug build tag is not
// set.
const debugAssertionsEnabled = false

// assertInvariant is a no-op in non-debug builds.
func assertInvariant(cond bool, label string, args ...any) {}
