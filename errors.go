package bytecmp

import (
	"errors"
	"fmt"
)

// ErrLengthOutOfRange reports a length or count argument that is negative or
// exceeds the extent of a supplied slice. In the original C primitives this
// case silently reads adjacent memory; here it is a checked precondition.
var ErrLengthOutOfRange = errors.New("bytecmp: length out of range")

// ErrUnterminated reports a bounded comparison or scan that ran off the end of
// a slice before finding a terminator, a mismatch, or exhausting its count.
var ErrUnterminated = errors.New("bytecmp: unterminated sequence")

// lengthError wraps ErrLengthOutOfRange with the offending values.
func lengthError(n, lenA, lenB int) error {
	return fmt.Errorf("%w: n=%d with slice lengths %d and %d", ErrLengthOutOfRange, n, lenA, lenB)
}

// unterminatedError wraps ErrUnterminated with the offset where data ran out.
func unterminatedError(off int) error {
	return fmt.Errorf("%w: slice exhausted at offset %d", ErrUnterminated, off)
}
