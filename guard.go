// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

// enter marks a guarded consumer call as running.
// Panics if another consumer call is already in progress.
func (q *MPSC[T]) enter() {
	if !q.guard.CompareAndSwapAcqRel(0, 1) {
		panic("ringq: concurrent consumer on MPSC queue - only one consumer allowed")
	}
}

// exit releases the consumer mark taken by enter.
func (q *MPSC[T]) exit() {
	q.guard.StoreRelease(0)
}
