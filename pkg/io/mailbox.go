package io

import (
	"context"
	"sync"
)

// MailboxStats counts what went through a Mailbox.
type MailboxStats struct {
	Puts  uint64
	Takes uint64
	// Drops counts values that were overwritten before anyone took them, or
	// that were still pending when the mailbox closed.
	Drops uint64
}

// Mailbox is a single slot, latest-only queue. Put never blocks: a value that
// has not been taken yet is replaced and handed to the drop callback so the
// producer's resources can be released.
type Mailbox[T any] struct {
	mu      sync.Mutex
	value   T
	full    bool
	closed  bool
	stats   MailboxStats
	onDrop  func(T)
	ready   chan struct{}
	closing chan struct{}
}

// NewMailbox creates an empty mailbox. onDrop may be nil.
func NewMailbox[T any](onDrop func(T)) *Mailbox[T] {
	return &Mailbox[T]{
		onDrop:  onDrop,
		ready:   make(chan struct{}, 1),
		closing: make(chan struct{}),
	}
}

// Put stores v, replacing any value that is still waiting. It returns false if
// the mailbox is closed, in which case v is dropped right away.
func (m *Mailbox[T]) Put(v T) bool {
	m.mu.Lock()
	if m.closed {
		m.stats.Drops++
		m.mu.Unlock()
		m.drop(v)
		return false
	}

	old, hadOld := m.value, m.full
	m.value, m.full = v, true
	m.stats.Puts++
	if hadOld {
		m.stats.Drops++
	}
	m.mu.Unlock()

	if hadOld {
		m.drop(old)
	}

	select {
	case m.ready <- struct{}{}:
	default:
	}
	return true
}

// Take waits for a value and empties the slot. It returns ErrMailboxClosed after
// Close, or the context error when ctx ends first.
func (m *Mailbox[T]) Take(ctx context.Context) (T, error) {
	var zero T
	for {
		m.mu.Lock()
		if m.full {
			v := m.value
			m.value, m.full = zero, false
			m.stats.Takes++
			m.mu.Unlock()
			return v, nil
		}
		closed := m.closed
		m.mu.Unlock()

		if closed {
			return zero, ErrMailboxClosed
		}

		select {
		case <-m.ready:
		case <-m.closing:
		case <-ctx.Done():
			return zero, ctx.Err()
		}
	}
}

// Close wakes every taker and drops the pending value, if any. Closing twice is
// a no-op.
func (m *Mailbox[T]) Close() {
	var zero T

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	pending, hadPending := m.value, m.full
	m.value, m.full = zero, false
	if hadPending {
		m.stats.Drops++
	}
	close(m.closing)
	m.mu.Unlock()

	if hadPending {
		m.drop(pending)
	}
}

// Stats returns a snapshot of the counters.
func (m *Mailbox[T]) Stats() MailboxStats {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.stats
}

func (m *Mailbox[T]) drop(v T) {
	if m.onDrop != nil {
		m.onDrop(v)
	}
}
