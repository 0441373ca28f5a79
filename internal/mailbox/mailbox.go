// Package mailbox provides a single slot mailbox: senders overwrite the
// pending value without blocking and the receiver only ever sees the most
// recent one.
package mailbox

import "sync"

// Mailbox holds at most one pending value. The zero value is not usable,
// create one with New.
type Mailbox[T any] struct {
	lock sync.Mutex
	ch   chan T
}

// New returns an empty mailbox.
func New[T any]() *Mailbox[T] {
	return &Mailbox[T]{ch: make(chan T, 1)}
}

// Signal replaces the pending value with v and wakes the receiver.
// It never blocks.
func (m *Mailbox[T]) Signal(v T) {
	m.lock.Lock()
	defer m.lock.Unlock()

	// Senders are serialized, so once the slot is drained the send below
	// cannot block even if the receiver never reads.
	select {
	case <-m.ch:
	default:
	}
	m.ch <- v
}

// C returns the channel delivering pending values, for use in select.
func (m *Mailbox[T]) C() <-chan T {
	return m.ch
}

// TryTake returns the pending value if there is one.
func (m *Mailbox[T]) TryTake() (T, bool) {
	select {
	case v := <-m.ch:
		return v, true
	default:
		var zero T
		return zero, false
	}
}
