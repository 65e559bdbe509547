// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringspsc

import "fmt"

// validateCapacity enforces the compile-time predicates a C++ template
// parameter would check statically. Go generics can't express a
// static_assert over a runtime capacity argument, so [NewRing] panics
// immediately instead — the same place and mechanism the teacher's own
// New* constructors use for their capacity checks.
func validateCapacity[I Unsigned](capacity int) I {
	if capacity < 2 {
		panic(fmt.Sprintf("ringspsc: capacity must be >= 2, got %d", capacity))
	}
	if capacity&(capacity-1) != 0 {
		panic(fmt.Sprintf("ringspsc: capacity must be a power of two, got %d", capacity))
	}

	n := I(capacity)
	if int(n) != capacity {
		panic(fmt.Sprintf("ringspsc: capacity %d does not fit in the counter type", capacity))
	}

	maxI := ^I(0)
	if uint64(n) > uint64(maxI)/2 {
		panic(fmt.Sprintf("ringspsc: capacity %d exceeds MAX(I)/2 for the chosen counter type", capacity))
	}

	return n
}
