package bytecmp

import "math/bits"

// Branch-free zero-byte detection constants. Adding zeroProbeAdd to a word
// borrows out of exactly those byte lanes that started a borrow chain at a
// zero lane; masking with the inverted word and the lane high bits leaves a
// set bit at the first zero lane and possibly at lanes above it, never below.
const (
	zeroProbeAdd  uint64 = 0xFEFEFEFEFEFEFEFF
	zeroProbeHigh uint64 = 0x8080808080808080
)

// zeroByteMask returns a nonzero mask if any byte lane of w is zero. The
// lowest set bit sits in the high bit of the first zero lane, so the lane
// index is recoverable with a trailing-zero count.
func zeroByteMask(w uint64) uint64 {
	return ^w & (w + zeroProbeAdd) & zeroProbeHigh
}

// hasZeroByte reports whether at least one byte lane of w is zero,
// without branching per byte.
func hasZeroByte(w uint64) bool {
	return zeroByteMask(w) != 0
}

// TerminatedLength returns the number of bytes in a before its first
// terminator (zero byte), examining at most max bytes. If no terminator
// occurs within max bytes and a holds at least max bytes, the result is max.
// A negative max returns ErrLengthOutOfRange. Running off the end of a before
// finding a terminator or reaching max returns ErrUnterminated.
func TerminatedLength(a []byte, max int) (int, error) {
	if max < 0 {
		return 0, lengthError(max, len(a), len(a))
	}
	limit := max
	if limit > len(a) {
		limit = len(a)
	}

	// Word phase: skip 8 terminator-free bytes per probe.
	i := 0
	for i+wordSize <= limit {
		if mask := zeroByteMask(loadWord(a, i)); mask != 0 {
			return i + bits.TrailingZeros64(mask)>>3, nil
		}
		i += wordSize
	}

	// Byte tail.
	for ; i < limit; i++ {
		if a[i] == 0 {
			return i, nil
		}
	}

	if max > len(a) {
		return 0, unterminatedError(len(a))
	}
	return max, nil
}
