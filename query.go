// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringspsc

// Size returns the number of pending elements. Safe to call from either
// role, but the result is a racy snapshot — a lower bound of future
// pending items from the consumer's view, since the producer may publish
// more before the caller acts on it.
func (r *Ring[T, I, O]) Size() I {
	head := r.head.loadOpposite()
	tail := r.tail.loadRelaxed()
	return head - tail
}

// Available returns the number of free slots. Safe to call from either
// role, but the result is a racy snapshot — a lower bound of future free
// space from the producer's view, since the consumer may free more before
// the caller acts on it.
func (r *Ring[T, I, O]) Available() I {
	head := r.head.loadRelaxed()
	tail := r.tail.loadOpposite()
	return r.capacity - (head - tail)
}

// IsEmpty reports whether the ring currently holds no elements.
func (r *Ring[T, I, O]) IsEmpty() bool {
	return r.Size() == 0
}

// IsFull reports whether the ring currently has no free slots.
func (r *Ring[T, I, O]) IsFull() bool {
	return r.Available() == 0
}

// Capacity returns the ring's capacity (the power-of-two N it was
// constructed with). This is a compile-time constant of the instantiation
// in spirit — it never changes after [NewRing] — exposed here as a method
// since Go has no const capacity type parameter to read it from directly.
func (r *Ring[T, I, O]) Capacity() int {
	return int(r.capacity)
}
