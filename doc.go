// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ringq provides a lock-free bounded multi-producer single-consumer
// ring queue with batched operations and a wake-up signal.
//
// It is meant for pipelines where several goroutines hand off work items or
// stream samples to one processing goroutine without taking locks on the
// hot path.
//
// # Quick Start
//
//	q := ringq.NewMPSC[Event](1024)
//
//	// Any number of producers
//	ev := Event{ID: 1}
//	if err := q.Push(&ev); ringq.IsWouldBlock(err) {
//	    // Queue is full - handle backpressure
//	}
//
//	// Exactly one consumer
//	ev, err := q.Pop()
//	if ringq.IsWouldBlock(err) {
//	    // Queue is empty - try again later
//	}
//
// Builder API for non-default configuration:
//
//	sig := ringq.NewSignal()
//	q := ringq.Build[Event](ringq.New(1024).Notifier(sig).GuardConsumer())
//
// # Algorithm
//
// A push first decrements the writable counter, a capacity semaphore that
// starts at the capacity. A negative result means the queue is overcommitted:
// the decrement is rolled back and the push fails. Otherwise an FAA on the
// head cursor hands the producer a disjoint range of positions, it writes
// the values and sets each slot's journal flag with release ordering.
//
// The consumer owns the tail cursor. It reads a slot only after observing
// its journal flag set, clears the flag, advances tail and returns the slot
// to producers by incrementing the writable counter.
//
// Positions are head & (capacity-1). The head cursor is 64 bits wide and
// producers fold it back into [0, capacity) once it passes 2^48; folding
// never changes a position because the capacity divides the fold.
//
// # Batches
//
// Batched operations are all-or-nothing:
//
//	// One reservation for the whole batch
//	err := q.PushBatch([]Sample{a, b, c})
//
//	// Pops only if all 64 oldest slots are published
//	buf := make([]Sample, 64)
//	err = q.PopInto(buf)
//
// A push batch fails only on capacity; a pop batch fails if any of the
// requested slots at the read position is not yet published, even when
// later slots are. Requests larger than the capacity return [ErrBatchSize].
//
// # Waiting
//
// No operation blocks or spins. After every successful push or pop the queue
// notifies its [Notifier]; Event exposes the waitable channel:
//
//	for {
//	    v, err := q.Pop()
//	    if err == nil {
//	        process(v)
//	        continue
//	    }
//	    select {
//	    case <-q.Event():
//	    case <-ctx.Done():
//	        return
//	    }
//	}
//
// Notifications are coalesced and shared by every waiter of the same
// notifier, so a receive only means "re-poll". Producers waiting for space
// and a consumer waiting for data on one queue should bound their waits or
// combine Event with [iox.Backoff].
//
// # Capacity
//
// Capacity rounds up to the next power of 2:
//
//	q := ringq.NewMPSC[int](1)     // Actual capacity: 1
//	q := ringq.NewMPSC[int](5)     // Actual capacity: 8
//	q := ringq.NewMPSC[int](1000)  // Actual capacity: 1024
//
// Panics if capacity < 1. Length is intentionally not provided.
//
// # Thread Safety
//
// Push, PushBatch, PushFunc, Full, Cap and Event are safe for any number of
// goroutines. Pop, PopBatch, PopInto, PopFunc and Empty must only be called
// by one goroutine at a time. Violating this causes undefined behavior;
// GuardConsumer turns overlapping consumer calls into a panic.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors and
// [code.hybscloud.com/atomix] for atomic primitives with explicit memory
// ordering.
package ringq
