// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringspsc

// Builder creates a [Ring] with fluent, validated configuration.
//
// Unlike the wider code.hybscloud.com/lfq family this package is ported
// from, there is only one algorithm here — a single producer and a single
// consumer is the entire feature surface (see the package doc's Thread
// Safety section).
// Builder exists for the capacity validation and construction-site
// symmetry with that ecosystem, not to select among algorithms.
//
// Example:
//
//	r := ringspsc.Build[Event, uint32, ringspsc.Strict](ringspsc.New(1024))
type Builder struct {
	capacity int
}

// New creates a ring builder for the given capacity.
//
// capacity must be a power of two and at least 2; [Build] panics at
// construction time (via [NewRing]) if it is not, or if it does not fit
// the chosen counter type I with the headroom the index-wrap arithmetic
// requires.
func New(capacity int) *Builder {
	return &Builder{capacity: capacity}
}

// Build creates the ring configured by b.
func Build[T any, I Unsigned, O Ordering](b *Builder) *Ring[T, I, O] {
	return NewRing[T, I, O](b.capacity)
}

// NewDefault creates a ring with the common-case instantiation: a 64-bit
// counter and [Strict] memory ordering. Most callers that don't need a
// narrow counter type (for an index-wrap soundness test, say) or
// [FakeTSO] (for a single-core target) should start here.
func NewDefault[T any](capacity int) *Ring[T, uint64, Strict] {
	return NewRing[T, uint64, Strict](capacity)
}
