// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringspsc

import "code.hybscloud.com/atomix"

// Unsigned is the set of integer kinds usable as a ring buffer counter type.
//
// The chosen width only needs to be at least twice the buffer's capacity
// (enforced by [NewRing]); it does not change the physical atomic word,
// which is always 64 bits wide. A narrower I truncates the 64-bit counter
// on every read, so the exposed counter wraps exactly as if it were
// physically I-wide.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Ordering selects the memory-ordering strategy for the index pair's
// cross-thread synchronizing load/store. It is implemented only by
// [Strict] and [FakeTSO] in this package; the interface's unexported
// methods seal it against outside implementations.
type Ordering interface {
	loadSync(w *atomix.Uint64) uint64
	storeSync(w *atomix.Uint64, v uint64)
}

// Strict is the default [Ordering]. The synchronizing load of the
// opposite-side index and the publishing store of the role's own index use
// real acquire/release semantics, giving correct
// cross-core visibility on every architecture this module targets.
type Strict struct{}

func (Strict) loadSync(w *atomix.Uint64) uint64 { return w.LoadAcquire() }
func (Strict) storeSync(w *atomix.Uint64, v uint64) { w.StoreRelease(v) }

// FakeTSO is the [Ordering] for single-core or otherwise total-store-order
// targets, per spec's memory-ordering contract: "all acquire and release
// orderings degrade to relaxed". Storage is still the same atomic word as
// [Strict] uses (no torn reads, nothing for a race detector to flag) — only
// the ordering guarantee is weaker. Instantiating a [Ring] with FakeTSO on
// hardware that is not actually total-store-order is a caller error (a
// "programming error" in the sense of a primitive whose memory-ordering
// precondition the caller has violated, not a bug in this package).
type FakeTSO struct{}

func (FakeTSO) loadSync(w *atomix.Uint64) uint64 { return w.LoadRelaxed() }
func (FakeTSO) storeSync(w *atomix.Uint64, v uint64) { w.StoreRelaxed(v) }

// counter is one half of the index pair: a single monotonically increasing
// atomic word, viewed through the counter type I and synchronized according
// to the ordering strategy O.
type counter[I Unsigned, O Ordering] struct {
	word atomix.Uint64
}

// loadRelaxed reads the counter with relaxed ordering. Used for a role's
// read of its own write-once-per-operation counter (no synchronization
// needed), and for the deliberately unsynchronized reads in the clear
// operations (spec's clear operations use a relaxed load regardless of
// the ring's [Ordering] strategy).
func (c *counter[I, O]) loadRelaxed() I {
	return I(c.word.LoadRelaxed())
}

// loadOpposite reads the opposite side's counter with the ordering
// strategy's synchronizing load, establishing happens-before with that
// side's most recent publish.
func (c *counter[I, O]) loadOpposite() I {
	var ord O
	return I(ord.loadSync(&c.word))
}

// publish advances the counter and makes prior writes (to slots) visible
// to the opposite side via the ordering strategy's synchronizing store.
func (c *counter[I, O]) publish(v I) {
	var ord O
	ord.storeSync(&c.word, uint64(v))
}

// reset stores a new value without cross-thread synchronization. Used only
// by the clear operations, which mutate solely the counter owned by the
// calling role.
func (c *counter[I, O]) reset(v I) {
	c.word.StoreRelaxed(uint64(v))
}
