package io

import (
	"errors"
	"fmt"
)

// ErrMailboxClosed is returned by Take once the mailbox has been closed.
var ErrMailboxClosed = errors.New("mailbox closed")

// InsufficientBufferError tells the caller that the buffer provided is not sufficient/big
// enough to hold the whole data/sample.
type InsufficientBufferError struct {
	RequiredSize int
}

func (e *InsufficientBufferError) Error() string {
	return fmt.Sprintf("provided buffer doesn't meet the size requirement of length, %d", e.RequiredSize)
}

// Copy copies all of src into dst. If dst is not big enough, nothing is copied
// and an InsufficientBufferError is returned.
func Copy(dst, src []byte) (n int, err error) {
	if len(dst) < len(src) {
		return 0, &InsufficientBufferError{len(src)}
	}

	return copy(dst, src), nil
}
