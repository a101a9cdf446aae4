package io

import (
	"context"
	"sync"
)

// Latest holds the most recently published value. Every publish replaces the
// previous value, so observers that fall behind only ever see the newest one.
// The zero value is ready to use.
type Latest[T any] struct {
	mu      sync.Mutex
	value   T
	version uint64
	// changed is closed on the next publish. nil until someone asks for it.
	changed chan struct{}
}

// NewLatest creates an empty Latest.
func NewLatest[T any]() *Latest[T] {
	return &Latest[T]{}
}

// Publish stores v, wakes every observer and returns the new version.
// Versions start at 1 and grow by one per publish.
func (l *Latest[T]) Publish(v T) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.value = v
	l.version++
	if l.changed != nil {
		close(l.changed)
		l.changed = nil
	}
	return l.version
}

// Load returns the current value and its version. ok is false until the first
// publish.
func (l *Latest[T]) Load() (v T, version uint64, ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.value, l.version, l.version > 0
}

// Changed returns a channel that is closed by the next Publish.
func (l *Latest[T]) Changed() <-chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.changedLocked()
}

func (l *Latest[T]) changedLocked() chan struct{} {
	if l.changed == nil {
		l.changed = make(chan struct{})
	}
	return l.changed
}

// Wait blocks until a value newer than after has been published, then returns
// it with its version. Pass 0 to wait for the first value.
func (l *Latest[T]) Wait(ctx context.Context, after uint64) (T, uint64, error) {
	for {
		l.mu.Lock()
		if l.version > after {
			v, version := l.value, l.version
			l.mu.Unlock()
			return v, version, nil
		}
		changed := l.changedLocked()
		l.mu.Unlock()

		select {
		case <-changed:
		case <-ctx.Done():
			var zero T
			return zero, after, ctx.Err()
		}
	}
}
