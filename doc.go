// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ringspsc provides a bounded, lock-free, wait-free ring buffer
// specialized for exactly one producer goroutine and one consumer
// goroutine (SPSC). It transfers trivially-copyable values between two
// threads — or between an interrupt/DMA context and a thread — with
// constant-time, allocation-free, barrier-minimal operations.
//
// # Quick Start
//
//	r := ringspsc.NewDefault[Event](1024)
//
//	// Producer goroutine
//	err := r.Push(ev)
//	if ringspsc.IsWouldBlock(err) {
//	    // ring full — handle backpressure
//	}
//
//	// Consumer goroutine
//	ev, err := r.Pop()
//	if ringspsc.IsWouldBlock(err) {
//	    // ring empty — try again later
//	}
//
// # Pipeline Stage
//
// The canonical use: one goroutine feeds another without either blocking
// the other, with backoff absorbing the gaps.
//
//	r := ringspsc.NewDefault[Data](1024)
//
//	go func() { // Producer
//	    backoff := iox.Backoff{}
//	    for data := range input {
//	        for r.Push(data) != nil {
//	            backoff.Wait()
//	        }
//	        backoff.Reset()
//	    }
//	}()
//
//	go func() { // Consumer
//	    backoff := iox.Backoff{}
//	    for {
//	        data, err := r.Pop()
//	        if err != nil {
//	            backoff.Wait()
//	            continue
//	        }
//	        backoff.Reset()
//	        process(data)
//	    }
//	}()
//
// # Batch Transfer
//
// PushBatch/PopBatch move many elements per call, amortizing the per-call
// overhead and the synchronizing load/store to one pair per batch instead
// of one pair per element:
//
//	n := r.PushBatch(events)       // n <= len(events); n < len(events) means ring filled up
//	m := r.PopBatch(dst)           // m <= len(dst); m < len(dst) means ring emptied
//
// PushBatchFunc/PopBatchFunc additionally notify a callback after each
// internal publish, for a waiter that wants to react to partial progress
// instead of waiting for the whole batch:
//
//	r.PushBatchFunc(events, func(written uint64) {
//	    notifyConsumer() // e.g. wake a parked waiter
//	})
//
// # Counter Type and Capacity
//
// Capacity must be an exact power of two, at least 2. Unlike the wider
// code.hybscloud.com/lfq family, capacity is never silently rounded up —
// [NewRing] panics instead, because this is a closer match to the source
// specification's own compile-time validation (a rounding constructor
// would otherwise hide a caller's sizing mistake).
//
// The counter type I must have range at least 2x capacity:
//
//	r := ringspsc.NewRing[Event, uint16, ringspsc.Strict](1024) // fine, uint16 max is 65535
//	r := ringspsc.NewRing[Event, uint8, ringspsc.Strict](1024)  // panics, uint8 can't reach 2048
//
// # Memory Ordering: Strict vs FakeTSO
//
// [Strict] (the default) uses real acquire/release memory ordering and is
// correct on every architecture this module targets. [FakeTSO] degrades
// the synchronizing load/store to relaxed ordering, for single-core
// microcontroller targets (or any target the caller has independently
// proven is total-store-order) where the hardware barrier Strict would
// emit is pure overhead. Choosing FakeTSO on hardware that isn't actually
// TSO is a caller error, not a bug this package can catch.
//
// # Thread Safety
//
// Exactly one goroutine may call the producer-side methods (Push,
// PushFromCallback, PushBatch, PushBatchFunc, ProducerClear) and exactly
// one goroutine may call the consumer-side methods (Pop, Peek, At,
// IndexedAccess, Discard, PopBatch, PopBatchFunc, ConsumerClear) at a
// time. Size, Available, IsEmpty, IsFull, and Capacity are safe to call
// from either. Violating the single-producer/single-consumer constraint —
// for example, two goroutines both calling Push — is undefined behavior:
// multiple concurrent producers or consumers are explicitly out of scope
// for this primitive (use a different queue shape from a library that
// targets that case).
//
// # Error Handling
//
// Push, PushFromCallback, and Pop return [ErrWouldBlock] when they cannot
// proceed immediately (ring full or empty respectively). This is sourced
// from code.hybscloud.com/iox for ecosystem consistency with other
// code.hybscloud.com/* queues — see [IsWouldBlock], [IsSemantic], and
// [IsNonFailure] for semantic classification.
//
// PushBatch/PopBatch never return an error: a short or zero count is the
// batch equivalent of ErrWouldBlock, and callers retry the remainder the
// same way.
//
// # Race Detection
//
// Go's race detector tracks explicit synchronization primitives (mutex,
// channel, WaitGroup) but cannot observe the happens-before relationship
// this ring establishes through acquire-release atomics on head and tail.
// Concurrent producer/consumer tests in this package's test suite are
// therefore structured to avoid tripping false positives; true data races
// (for example, calling Push from two goroutines at once) are not
// something the race detector is relied on to catch here — that
// constraint is a caller obligation, documented above, not a detectable
// condition.
package ringspsc
