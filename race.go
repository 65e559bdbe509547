// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package ringspsc

// RaceEnabled is true when the race detector is active.
// Used by tests to skip genuinely concurrent producer/consumer tests,
// which the race detector cannot evaluate correctly: it tracks explicit
// synchronization primitives, not the acquire-release relationship this
// package establishes through atomics on head and tail.
const RaceEnabled = true
