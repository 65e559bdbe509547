// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringspsc

// PushBatch copies as many elements of src as fit into the ring, in order,
// and returns the count actually written. A short count (including zero)
// means the ring filled up partway through; it is never an error — the
// caller retries the remainder the same way it would retry a single Push
// returning [ErrWouldBlock].
func (r *Ring[T, I, O]) PushBatch(src []T) I {
	return r.pushBatch(src, nil)
}

// PushBatchFunc behaves like [Ring.PushBatch], but invokes onPublish once
// per internal iteration with the running total written so far, right
// after that iteration's elements become visible to the consumer. A caller
// blocked waiting for space to drain (spinning with
// [code.hybscloud.com/spin].Wait, or backing off with
// [code.hybscloud.com/iox].Backoff) can use this to notice partial
// progress without waiting for the whole batch to land. onPublish cannot
// abort the loop.
func (r *Ring[T, I, O]) PushBatchFunc(src []T, onPublish func(written I)) I {
	return r.pushBatch(src, onPublish)
}

// pushBatch is the shared implementation. Each iteration re-reads the
// consumer's published tail, computes the currently free space, and
// writes at most that much of the remainder in at most two contiguous
// runs split at the wraparound boundary — a single bulk copy must never
// straddle the end of the slice. The loop only runs again if a later
// iteration's synchronizing load shows more space opened up concurrently;
// it is bounded by the number of elements actually written, not by any
// wait on the consumer.
func (r *Ring[T, I, O]) pushBatch(src []T, onPublish func(I)) I {
	total := len(src)
	if total == 0 {
		return 0
	}

	capacity := int(r.capacity)
	head := r.head.loadRelaxed()
	written := 0

	for written < total {
		tail := r.tail.loadOpposite()
		occupied := int(head - tail)
		if occupied >= capacity {
			break
		}

		space := capacity - occupied
		w := total - written
		if w > space {
			w = space
		}

		offset := int(head & r.mask)
		first := w
		if room := capacity - offset; first > room {
			first = room
		}
		second := w - first

		copy(r.slots[offset:offset+first], src[written:written+first])
		if second > 0 {
			copy(r.slots[:second], src[written+first:written+first+second])
		}

		head += I(w)
		r.head.publish(head)
		written += w

		if onPublish != nil {
			onPublish(I(written))
		}
	}

	return I(written)
}

// PopBatch copies as many pending elements as fit into dst, in FIFO order,
// and returns the count actually read. A short count (including zero)
// means the ring emptied partway through; it is never an error.
func (r *Ring[T, I, O]) PopBatch(dst []T) I {
	return r.popBatch(dst, nil)
}

// PopBatchFunc behaves like [Ring.PopBatch], but invokes onPublish once
// per internal iteration with the running total read so far, right after
// that iteration's consumed slots are released back to the producer.
func (r *Ring[T, I, O]) PopBatchFunc(dst []T, onPublish func(read I)) I {
	return r.popBatch(dst, onPublish)
}

// popBatch is pushBatch's dual: split at the wraparound boundary relative
// to tail instead of head, clearing each consumed slot the same way
// [Ring.Pop] does so the GC can reclaim anything T might reference.
func (r *Ring[T, I, O]) popBatch(dst []T, onPublish func(I)) I {
	total := len(dst)
	if total == 0 {
		return 0
	}

	capacity := int(r.capacity)
	tail := r.tail.loadRelaxed()
	read := 0

	for read < total {
		head := r.head.loadOpposite()
		available := int(head - tail)
		if available == 0 {
			break
		}

		w := total - read
		if w > available {
			w = available
		}

		offset := int(tail & r.mask)
		first := w
		if room := capacity - offset; first > room {
			first = room
		}
		second := w - first

		copy(dst[read:read+first], r.slots[offset:offset+first])
		clearSlots(r.slots[offset : offset+first])
		if second > 0 {
			copy(dst[read+first:read+first+second], r.slots[:second])
			clearSlots(r.slots[:second])
		}

		tail += I(w)
		r.tail.publish(tail)
		read += w

		if onPublish != nil {
			onPublish(I(read))
		}
	}

	return I(read)
}

// clearSlots zeroes a run of consumed slots in place.
func clearSlots[T any](slots []T) {
	var zero T
	for i := range slots {
		slots[i] = zero
	}
}
