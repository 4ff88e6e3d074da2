package arrays

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned by checked accessors when the index is not
	// within [0, Size()).
	ErrOutOfRange = errors.New("arrays: index out of range")

	// ErrLengthMismatch is returned when two fixed arrays of different
	// lengths are swapped.
	ErrLengthMismatch = errors.New("arrays: length mismatch")

	// ErrFixedLength is returned when a fixed array is asked to change length.
	ErrFixedLength = errors.New("arrays: fixed array cannot be resized")
)

func outOfRange(index, size int) error {
	return fmt.Errorf("%w: index %d, size %d", ErrOutOfRange, index, size)
}

func inRange(index, size int) bool {
	return uint(index) < uint(size)
}

func mustNotBeNegative(n int) {
	if n < 0 {
		panic(fmt.Sprintf("arrays: negative count %d", n))
	}
}
