// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

// PushBatch publishes all elements of elems under one reservation
// (multiple producers safe).
//
// The batch is all-or-nothing: on ErrWouldBlock no slot is claimed or
// written. Elements become visible to the consumer one by one, in order,
// and a single notification is sent after the last one.
// An empty batch is a no-op. Returns ErrBatchSize if len(elems) exceeds
// the capacity.
func (q *MPSC[T]) PushBatch(elems []T) error {
	count := uint64(len(elems))
	if count == 0 {
		return nil
	}
	if count > q.capacity {
		return ErrBatchSize
	}

	pos, ok := q.reserve(count)
	if !ok {
		return ErrWouldBlock
	}

	for i := range elems {
		slot := &q.slots[pos]
		slot.data = elems[i]
		slot.journal.StoreRelease(true)
		pos = (pos + 1) & q.mask
	}

	q.notifier.Notify()
	return nil
}

// PushFunc reserves count slots and publishes fill(0) … fill(count-1) in
// order (multiple producers safe).
//
// fill is called only after the reservation succeeded and exactly count
// times. It runs while the slots are reserved, so the consumer stalls at
// the first unfilled slot until fill returns; keep it short. fill must not
// panic: the slots it leaves unfilled stay reserved and the consumer stalls
// at the first of them for good.
func (q *MPSC[T]) PushFunc(count int, fill func(i int) T) error {
	if count < 0 || uint64(count) > q.capacity {
		return ErrBatchSize
	}
	if count == 0 {
		return nil
	}

	pos, ok := q.reserve(uint64(count))
	if !ok {
		return ErrWouldBlock
	}

	for i := range count {
		slot := &q.slots[pos]
		slot.data = fill(i)
		slot.journal.StoreRelease(true)
		pos = (pos + 1) & q.mask
	}

	q.notifier.Notify()
	return nil
}

// ready reports whether count consecutive slots starting at tail are all
// published. It does not mutate the queue.
func (q *MPSC[T]) ready(count uint64) bool {
	for i := uint64(0); i < count; i++ {
		if !q.slots[(q.tail+i)&q.mask].journal.LoadAcquire() {
			return false
		}
	}
	return true
}

// checkBatch validates a consumer batch size.
func (q *MPSC[T]) checkBatch(count int) error {
	if count < 0 || uint64(count) > q.capacity {
		return ErrBatchSize
	}
	return nil
}

// drain consumes count slots known to be ready, handing each value to sink,
// then returns them to producers with a single writable increment.
// If sink panics, the slots consumed before the panicking call are still
// committed; the slot passed to the panicking call stays queued.
func (q *MPSC[T]) drain(count uint64, sink func(i int, v T)) {
	var zero T
	pos, done := q.tail, uint64(0)
	defer func() {
		q.tail = pos
		if done > 0 {
			q.writable.AddAcqRel(int64(done))
			q.notifier.Notify()
		}
	}()

	for done < count {
		slot := &q.slots[pos]
		sink(int(done), slot.data)
		slot.data = zero
		slot.journal.StoreRelease(false)
		pos = (pos + 1) & q.mask
		done++
	}
}

// PopBatch removes and returns the count oldest elements
// (single consumer only).
//
// The batch is all-or-nothing: if any of the count slots at the read
// position is not yet published, it returns ErrWouldBlock and leaves every
// slot untouched. Returns ErrBatchSize if count is negative or exceeds the
// capacity. A zero count returns (nil, nil).
func (q *MPSC[T]) PopBatch(count int) ([]T, error) {
	if q.guarded {
		q.enter()
		defer q.exit()
	}
	if err := q.checkBatch(count); err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}
	if !q.ready(uint64(count)) {
		return nil, ErrWouldBlock
	}

	out := make([]T, count)
	q.drain(uint64(count), func(i int, v T) { out[i] = v })
	return out, nil
}

// PopInto fills dst with the len(dst) oldest elements without allocating
// (single consumer only). Same all-or-nothing contract as PopBatch; on
// failure dst is not modified.
func (q *MPSC[T]) PopInto(dst []T) error {
	if q.guarded {
		q.enter()
		defer q.exit()
	}
	count := len(dst)
	if err := q.checkBatch(count); err != nil {
		return err
	}
	if count == 0 {
		return nil
	}
	if !q.ready(uint64(count)) {
		return ErrWouldBlock
	}

	q.drain(uint64(count), func(i int, v T) { dst[i] = v })
	return nil
}

// PopFunc removes the count oldest elements and passes each, in order, to
// sink (single consumer only). Same all-or-nothing contract as PopBatch;
// sink is not called on failure. sink must not call back into the queue's
// consumer side. If sink panics at element i, elements 0 to i-1 are consumed
// and element i is still the oldest queued element.
func (q *MPSC[T]) PopFunc(count int, sink func(i int, v T)) error {
	if q.guarded {
		q.enter()
		defer q.exit()
	}
	if err := q.checkBatch(count); err != nil {
		return err
	}
	if count == 0 {
		return nil
	}
	if !q.ready(uint64(count)) {
		return ErrWouldBlock
	}

	q.drain(uint64(count), sink)
	return nil
}
