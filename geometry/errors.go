package geometry

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is matched by every *IndexError.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrZeroVector is returned when a zero length vector is normalized.
	ErrZeroVector = errors.New("zero vector, can not be normalized")
)

// IndexError reports a component access outside 0, 1, 2.
type IndexError struct {
	Index int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("component %d: %v", e.Index, ErrIndexOutOfRange)
}

func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}
