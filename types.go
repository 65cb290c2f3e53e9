// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

// Queue is the capability interface shared by bounded FIFO queues.
//
// All operations are non-blocking. Push and Pop return ErrWouldBlock when
// they cannot proceed (queue full or empty); Full and Empty report the same
// conditions without mutating the queue.
//
// The interface intentionally excludes length because accurate counts in
// lock-free algorithms require expensive cross-core synchronization.
//
// Example:
//
//	var q ringq.Queue[int] = ringq.NewMPSC[int](1024)
//
//	v := 42
//	if err := q.Push(&v); err != nil {
//	    // Handle full queue
//	}
//
//	elem, err := q.Pop()
//	if err == nil {
//	    fmt.Println(elem)
//	}
type Queue[T any] interface {
	Producer[T]
	Consumer[T]
	Cap() int
}

// Producer is the interface for pushing elements.
//
// The element is passed by pointer to avoid copying large structs. The queue
// stores a copy of the pointed-to value, so the original can be modified
// after Push returns.
type Producer[T any] interface {
	// Push adds an element to the queue (non-blocking).
	// Returns nil on success, ErrWouldBlock if the queue is full.
	Push(elem *T) error

	// Full reports whether a single-element Push would currently fail.
	// A false result does not guarantee that a larger batch fits.
	Full() bool
}

// Consumer is the interface for popping elements.
//
// The element is returned by value. The original slot is cleared to allow
// garbage collection of referenced objects.
type Consumer[T any] interface {
	// Pop removes and returns the oldest element (non-blocking).
	// Returns (zero-value, ErrWouldBlock) if the queue is empty.
	Pop() (T, error)

	// Empty reports whether Pop would currently fail.
	Empty() bool
}

// BatchProducer pushes several elements under a single reservation.
//
// A batch is all-or-nothing: either every element is published in order
// or none is and the queue is unchanged.
type BatchProducer[T any] interface {
	// PushBatch publishes every element of elems.
	// Returns ErrWouldBlock if fewer than len(elems) slots are free,
	// ErrBatchSize if len(elems) exceeds the capacity.
	PushBatch(elems []T) error

	// PushFunc reserves count slots and fills slot i with fill(i).
	// fill is called exactly count times, in order, and only after the
	// reservation succeeded.
	PushFunc(count int, fill func(i int) T) error
}

// BatchConsumer pops several elements at once, all-or-nothing.
type BatchConsumer[T any] interface {
	// PopBatch removes and returns the count oldest elements.
	// Returns ErrWouldBlock if fewer than count elements are ready,
	// ErrBatchSize if count is negative or exceeds the capacity.
	PopBatch(count int) ([]T, error)

	// PopInto fills dst with the len(dst) oldest elements.
	PopInto(dst []T) error

	// PopFunc removes the count oldest elements and passes each to sink.
	PopFunc(count int, sink func(i int, v T)) error
}

// Notifier is the wake-up primitive a queue informs after every successful
// push or pop.
//
// Notify must not block. Event returns a channel that becomes readable
// after one or more notifications; waiters re-poll the queue after a
// receive. Notifications may be coalesced.
//
// [Signal] is the default implementation.
type Notifier interface {
	Notify()
	Event() <-chan struct{}
}
