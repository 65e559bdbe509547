// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringspsc_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/ringspsc"
)

// =============================================================================
// Basic Operations
// =============================================================================

// TestRingBasic exercises the scenario in the spec almost verbatim:
// capacity 8, push 0..7, next push fails, pop 8 times in order, next pop
// fails.
func TestRingBasic(t *testing.T) {
	r := ringspsc.NewDefault[int](8)

	if got := r.Capacity(); got != 8 {
		t.Fatalf("Capacity: got %d, want 8", got)
	}

	for i := range 8 {
		if err := r.Push(i); err != nil {
			t.Fatalf("Push(%d): %v", i, err)
		}
	}

	if err := r.Push(999); !errors.Is(err, ringspsc.ErrWouldBlock) {
		t.Fatalf("Push on full: got %v, want ErrWouldBlock", err)
	}
	if !r.IsFull() {
		t.Fatalf("IsFull: got false, want true")
	}

	for i := range 8 {
		v, err := r.Pop()
		if err != nil {
			t.Fatalf("Pop(%d): %v", i, err)
		}
		if v != i {
			t.Fatalf("Pop(%d): got %d, want %d", i, v, i)
		}
	}

	if _, err := r.Pop(); !errors.Is(err, ringspsc.ErrWouldBlock) {
		t.Fatalf("Pop on empty: got %v, want ErrWouldBlock", err)
	}
	if !r.IsEmpty() {
		t.Fatalf("IsEmpty: got false, want true")
	}
}

// TestRingRoundTrip verifies Push(x) followed by Pop(&y) yields y == x.
func TestRingRoundTrip(t *testing.T) {
	r := ringspsc.NewDefault[string](4)

	if err := r.Push("hello"); err != nil {
		t.Fatalf("Push: %v", err)
	}
	v, err := r.Pop()
	if err != nil {
		t.Fatalf("Pop: %v", err)
	}
	if v != "hello" {
		t.Fatalf("Pop: got %q, want %q", v, "hello")
	}
}

// TestRingSizeAndAvailable checks the Size()+Available()==Capacity()
// invariant across a sequence of pushes and pops.
func TestRingSizeAndAvailable(t *testing.T) {
	r := ringspsc.NewDefault[int](4)

	check := func() {
		t.Helper()
		if got, want := r.Size()+r.Available(), uint64(r.Capacity()); got != want {
			t.Fatalf("Size()+Available(): got %d, want %d", got, want)
		}
	}

	check()
	for i := range 3 {
		if err := r.Push(i); err != nil {
			t.Fatalf("Push(%d): %v", i, err)
		}
		check()
	}
	if got, want := r.Size(), uint64(3); got != want {
		t.Fatalf("Size: got %d, want %d", got, want)
	}
	if got, want := r.Available(), uint64(1); got != want {
		t.Fatalf("Available: got %d, want %d", got, want)
	}

	for range 3 {
		if _, err := r.Pop(); err != nil {
			t.Fatalf("Pop: %v", err)
		}
		check()
	}
}

// TestRingZeroValue verifies zero is a valid, distinct-from-empty value.
func TestRingZeroValue(t *testing.T) {
	r := ringspsc.NewDefault[int](4)

	for range 4 {
		if err := r.Push(0); err != nil {
			t.Fatalf("Push(0): %v", err)
		}
	}
	for i := range 4 {
		v, err := r.Pop()
		if err != nil {
			t.Fatalf("Pop(%d): %v", i, err)
		}
		if v != 0 {
			t.Fatalf("Pop(%d): got %d, want 0", i, v)
		}
	}
}

// =============================================================================
// Peek / At / IndexedAccess / Discard
// =============================================================================

func TestRingPeek(t *testing.T) {
	r := ringspsc.NewDefault[int](4)

	if _, ok := r.Peek(); ok {
		t.Fatalf("Peek on empty: got ok=true")
	}

	for _, v := range []int{10, 20, 30} {
		if err := r.Push(v); err != nil {
			t.Fatalf("Push(%d): %v", v, err)
		}
	}

	v, ok := r.Peek()
	if !ok || v != 10 {
		t.Fatalf("Peek: got (%d, %v), want (10, true)", v, ok)
	}
	// Peek must not advance tail.
	v, ok = r.Peek()
	if !ok || v != 10 {
		t.Fatalf("Peek (repeat): got (%d, %v), want (10, true)", v, ok)
	}

	popped, err := r.Pop()
	if err != nil || popped != 10 {
		t.Fatalf("Pop after Peek: got (%d, %v), want (10, nil)", popped, err)
	}
}

func TestRingAt(t *testing.T) {
	r := ringspsc.NewDefault[int](8)
	for _, v := range []int{10, 20, 30} {
		if err := r.Push(v); err != nil {
			t.Fatalf("Push(%d): %v", v, err)
		}
	}

	for i, want := range []int{10, 20, 30} {
		v, ok := r.At(uint64(i))
		if !ok || v != want {
			t.Fatalf("At(%d): got (%d, %v), want (%d, true)", i, v, ok, want)
		}
	}

	if _, ok := r.At(3); ok {
		t.Fatalf("At(3): got ok=true, want false (only 3 elements)")
	}
}

func TestRingIndexedAccess(t *testing.T) {
	r := ringspsc.NewDefault[int](8)
	for _, v := range []int{1, 2, 3} {
		if err := r.Push(v); err != nil {
			t.Fatalf("Push(%d): %v", v, err)
		}
	}

	for i, want := range []int{1, 2, 3} {
		got := *r.IndexedAccess(uint64(i))
		if got != want {
			t.Fatalf("IndexedAccess(%d): got %d, want %d", i, got, want)
		}
	}
}

func TestRingDiscard(t *testing.T) {
	r := ringspsc.NewDefault[int](8)
	for i := range 5 {
		if err := r.Push(i); err != nil {
			t.Fatalf("Push(%d): %v", i, err)
		}
	}

	if n := r.Discard(3); n != 3 {
		t.Fatalf("Discard(3): got %d, want 3", n)
	}
	v, err := r.Pop()
	if err != nil || v != 3 {
		t.Fatalf("Pop after Discard: got (%d, %v), want (3, nil)", v, err)
	}

	// Discard more than available clamps to what's left.
	if n := r.Discard(100); n != 1 {
		t.Fatalf("Discard(100) with 1 left: got %d, want 1", n)
	}
	if !r.IsEmpty() {
		t.Fatalf("IsEmpty after draining Discard: got false")
	}
}

// =============================================================================
// PushFromCallback
// =============================================================================

// TestRingPushFromCallbackSkipsOnFull verifies the callback is not invoked
// when the ring is full, and the call reports ErrWouldBlock.
func TestRingPushFromCallbackSkipsOnFull(t *testing.T) {
	r := ringspsc.NewDefault[int](4)
	for i := range 4 {
		if err := r.Push(i); err != nil {
			t.Fatalf("Push(%d): %v", i, err)
		}
	}

	var invoked int
	err := r.PushFromCallback(func() int {
		invoked++
		return 999
	})
	if !errors.Is(err, ringspsc.ErrWouldBlock) {
		t.Fatalf("PushFromCallback on full: got %v, want ErrWouldBlock", err)
	}
	if invoked != 0 {
		t.Fatalf("callback invoked %d times on full ring, want 0", invoked)
	}
}

func TestRingPushFromCallbackInvokesOnce(t *testing.T) {
	r := ringspsc.NewDefault[int](4)

	var invoked int
	err := r.PushFromCallback(func() int {
		invoked++
		return 42
	})
	if err != nil {
		t.Fatalf("PushFromCallback: %v", err)
	}
	if invoked != 1 {
		t.Fatalf("callback invoked %d times, want 1", invoked)
	}

	v, err := r.Pop()
	if err != nil || v != 42 {
		t.Fatalf("Pop: got (%d, %v), want (42, nil)", v, err)
	}
}

// =============================================================================
// Clear operations
// =============================================================================

func TestRingProducerClear(t *testing.T) {
	r := ringspsc.NewDefault[int](8)
	for i := range 5 {
		if err := r.Push(i); err != nil {
			t.Fatalf("Push(%d): %v", i, err)
		}
	}

	r.ProducerClear()
	if !r.IsEmpty() {
		t.Fatalf("IsEmpty after ProducerClear: got false")
	}
	if _, err := r.Pop(); !errors.Is(err, ringspsc.ErrWouldBlock) {
		t.Fatalf("Pop after ProducerClear: got %v, want ErrWouldBlock", err)
	}

	// The ring must still be usable afterward.
	if err := r.Push(100); err != nil {
		t.Fatalf("Push after ProducerClear: %v", err)
	}
	v, err := r.Pop()
	if err != nil || v != 100 {
		t.Fatalf("Pop after ProducerClear+Push: got (%d, %v), want (100, nil)", v, err)
	}
}

func TestRingConsumerClear(t *testing.T) {
	r := ringspsc.NewDefault[int](8)
	for i := range 5 {
		if err := r.Push(i); err != nil {
			t.Fatalf("Push(%d): %v", i, err)
		}
	}

	r.ConsumerClear()
	if !r.IsEmpty() {
		t.Fatalf("IsEmpty after ConsumerClear: got false")
	}
	// ConsumerClear sets tail = head, so the entire capacity is free again
	// from the producer's perspective even though head never moved.
	if got, want := r.Available(), uint64(8); got != want {
		t.Fatalf("Available after ConsumerClear: got %d, want %d", got, want)
	}

	for i := range 8 {
		if err := r.Push(100 + i); err != nil {
			t.Fatalf("Push(%d): %v", i, err)
		}
	}
	if err := r.Push(999); !errors.Is(err, ringspsc.ErrWouldBlock) {
		t.Fatalf("Push on full after ConsumerClear: got %v, want ErrWouldBlock", err)
	}
}
