// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import "code.hybscloud.com/atomix"

// foldThreshold is the head value at which producers try to fold the
// cursor back into [0, capacity).
const foldThreshold = 1 << 48

// MPSC is a lock-free multi-producer single-consumer bounded ring queue.
//
// Producers reserve slots in two atomic steps: a decrement of the writable
// counter (a capacity semaphore, rolled back on overcommit) followed by an
// FAA on the head cursor that hands out disjoint position ranges. Each slot
// carries a journal flag set with release ordering once its value is written;
// the single consumer drains strictly in tail order and only reads slots
// whose flag it observed set.
//
// Reservations are counted before a position is claimed, so n physical
// slots serve capacity n (SCQ-style FAA queues need 2n).
//
// Memory: n slots, one cache line per slot
type MPSC[T any] struct {
	_        pad
	head     atomix.Uint64 // Producer cursor (FAA), folded modulo capacity
	_        pad
	writable atomix.Int64 // Free slots available for reservation
	_        pad
	tail     uint64 // Consumer cursor, in [0, capacity); consumer only
	_        pad
	guard    atomix.Uint64 // 1 while a guarded consumer call runs
	guarded  bool
	slots    []mpscSlot[T]
	mask     uint64
	capacity uint64
	notifier Notifier
}

type mpscSlot[T any] struct {
	journal atomix.Bool // Holds a published, unconsumed value
	data    T
	_       padShort
}

// NewMPSC creates a new MPSC ring queue with a private Signal.
// Capacity rounds up to the next power of 2.
//
// Panics if capacity < 1 or capacity > 1<<62 (1<<30 on 32-bit platforms).
func NewMPSC[T any](capacity int) *MPSC[T] {
	return newMPSC[T](capacity, nil)
}

func newMPSC[T any](capacity int, n Notifier) *MPSC[T] {
	checkCapacity(capacity)
	if s, ok := n.(*Signal); n == nil || ok && s == nil {
		n = NewSignal()
	}

	size := uint64(roundToPow2(capacity))
	q := &MPSC[T]{
		slots:    make([]mpscSlot[T], size),
		mask:     size - 1,
		capacity: size,
		notifier: n,
	}
	q.writable.StoreRelaxed(int64(size))

	return q
}

// reserve claims count consecutive positions for the calling producer and
// returns the wrapped starting index. It fails without side effects when
// fewer than count slots are free.
func (q *MPSC[T]) reserve(count uint64) (uint64, bool) {
	n := int64(count)
	if q.writable.AddAcqRel(-n) < 0 {
		q.writable.AddAcqRel(n)
		return 0, false
	}

	end := q.head.AddAcqRel(count)
	if end >= foldThreshold {
		// A failed CAS means another producer moved head; it folds next.
		q.head.CompareAndSwapAcqRel(end, end&q.mask)
	}
	return (end - count) & q.mask, true
}

// Push adds an element to the queue (multiple producers safe).
// Returns ErrWouldBlock if the queue is full.
func (q *MPSC[T]) Push(elem *T) error {
	pos, ok := q.reserve(1)
	if !ok {
		return ErrWouldBlock
	}

	slot := &q.slots[pos]
	slot.data = *elem
	slot.journal.StoreRelease(true)

	q.notifier.Notify()
	return nil
}

// Pop removes and returns the oldest element (single consumer only).
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *MPSC[T]) Pop() (T, error) {
	if q.guarded {
		q.enter()
		defer q.exit()
	}

	slot := &q.slots[q.tail]
	if !slot.journal.LoadAcquire() {
		var zero T
		return zero, ErrWouldBlock
	}

	elem := slot.data
	var zero T
	slot.data = zero
	slot.journal.StoreRelease(false)
	q.tail = (q.tail + 1) & q.mask
	q.writable.AddAcqRel(1)

	q.notifier.Notify()
	return elem, nil
}

// Full reports whether a single-element Push would currently fail.
// A false result does not guarantee that a batch push succeeds.
func (q *MPSC[T]) Full() bool {
	return q.writable.Load() < 1
}

// Empty reports whether the slot at the read position holds no published
// value (single consumer only).
func (q *MPSC[T]) Empty() bool {
	return !q.slots[q.tail].journal.LoadAcquire()
}

// Cap returns the queue capacity.
func (q *MPSC[T]) Cap() int {
	return int(q.capacity)
}

// Event returns the waitable channel of the queue's notifier. It becomes
// readable after successful pushes or pops; waiters re-poll after receiving.
func (q *MPSC[T]) Event() <-chan struct{} {
	return q.notifier.Event()
}
