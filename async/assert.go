// Copyright 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build ringchan_debug

package async

import "fmt"

// debugAssertionsEnabled is a compile-time constant callers can branch on,
// backed by a build-tag pair (assert.go / assert_off.go) so the branch and
// everything it guards compiles away entirely in a production build.
const debugAssertionsEnabled = true

// assertInvariant panics with a labeled message if cond is false. Compiled
// in only under the ringchan_debug build tag; production builds never pay
// for these checks.
func assertInvariant(cond bool, label string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("ringchan/async: invariant %s violated: %s", label, fmt.Sprint(args...)))
	}
}
