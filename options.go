// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import "math"

// maxCapacity is the largest power of 2 an int can hold.
const maxCapacity = math.MaxInt>>1 + 1

// Options configures queue creation.
type Options struct {
	// Capacity (rounds up to next power of 2)
	capacity int

	// Wake-up target; nil selects a fresh Signal
	notifier Notifier

	// Debug hint: panic on overlapping consumers
	guardConsumer bool
}

// Builder creates queues with fluent configuration.
//
// Example:
//
//	// Default: private Signal, no consumer guard
//	q := ringq.Build[Sample](ringq.New(512))
//
//	// Share one wake-up signal between several queues and
//	// catch consumer misuse during development
//	sig := ringq.NewSignal()
//	audio := ringq.Build[Sample](ringq.New(512).Notifier(sig).GuardConsumer())
//	ctrl := ringq.Build[Control](ringq.New(64).Notifier(sig))
type Builder struct {
	opts Options
}

// New creates a queue builder with the given capacity.
//
// Capacity rounds up to the next power of 2.
// For example, capacity=5 results in actual capacity=8, capacity=1 results
// in actual capacity=1.
//
// Panics if capacity < 1 or capacity > 1<<62 (1<<30 on 32-bit platforms).
func New(capacity int) *Builder {
	checkCapacity(capacity)
	return &Builder{opts: Options{capacity: capacity}}
}

// Notifier sets the wake-up target informed after every successful push
// or pop. A nil n, including a nil *Signal, restores the default private
// Signal. Other Notifier implementations must be usable as given.
func (b *Builder) Notifier(n Notifier) *Builder {
	b.opts.notifier = n
	return b
}

// GuardConsumer makes consumer operations panic when two goroutines run
// them at the same time. It costs one CAS pair per consumer call and is
// meant for tests and development builds.
func (b *Builder) GuardConsumer() *Builder {
	b.opts.guardConsumer = true
	return b
}

// Build creates an MPSC queue from the builder's configuration.
func Build[T any](b *Builder) *MPSC[T] {
	q := newMPSC[T](b.opts.capacity, b.opts.notifier)
	q.guarded = b.opts.guardConsumer
	return q
}

// checkCapacity panics unless 1 <= capacity <= maxCapacity.
func checkCapacity(capacity int) {
	if capacity < 1 {
		panic("ringq: capacity must be >= 1")
	}
	if capacity > maxCapacity {
		panic("ringq: capacity too large")
	}
}

// roundToPow2 rounds n up to the next power of 2.
// n must not exceed maxCapacity.
func roundToPow2(n int) int {
	if n < 2 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}

// pad is cache line padding to prevent false sharing.
type pad [64]byte

// padShort is padding to fill cache line after 8-byte field.
type padShort [64 - 8]byte
