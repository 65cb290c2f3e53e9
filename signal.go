// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import "context"

// Signal is a coalescing wake-up notifier.
//
// Notify never blocks: it leaves at most one pending wake-up in a
// single-slot channel. A waiter that receives from Event must re-poll the
// queue, since several notifications may have collapsed into one and a
// wake-up may be consumed by a different waiter.
//
// The zero value is not usable; create with NewSignal.
type Signal struct {
	ch chan struct{}
}

// NewSignal creates a Signal with no pending wake-up.
func NewSignal() *Signal {
	return &Signal{ch: make(chan struct{}, 1)}
}

// Notify records a wake-up. Safe for concurrent use.
func (s *Signal) Notify() {
	select {
	case s.ch <- struct{}{}:
	default:
	}
}

// Event returns the waitable channel.
func (s *Signal) Event() <-chan struct{} {
	return s.ch
}

// Wait blocks until a wake-up is pending or ctx is done.
// It consumes the pending wake-up.
func (s *Signal) Wait(ctx context.Context) error {
	select {
	case <-s.ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
