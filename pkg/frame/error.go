package frame

import "fmt"

// InvalidFrameError reports a frame that can't be converted: missing or empty
// planes, non-positive dimensions, unsupported rotation or a short buffer.
type InvalidFrameError struct {
	Reason string
}

func (e *InvalidFrameError) Error() string {
	return fmt.Sprintf("invalid frame: %s", e.Reason)
}

func invalidf(format string, a ...interface{}) error {
	return &InvalidFrameError{Reason: fmt.Sprintf(format, a...)}
}

// DecodeError reports compressed bytes that failed to decode back into pixels.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode frame: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
