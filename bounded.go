package bytecmp

// CompareBounded compares a and b as terminator-delimited byte sequences,
// examining at most max bytes. It stops at the first mismatching pair,
// returning the signed difference of the two bytes as unsigned values; at a
// terminator (zero byte) read from a whose counterpart in b matches,
// returning 0; or after max bytes, returning 0. max == 0 always returns 0.
//
// A negative max returns ErrLengthOutOfRange. Running off the end of either
// slice before a mismatch, a terminator, or max bytes returns ErrUnterminated;
// the original primitive would read adjacent memory in that case.
func CompareBounded(a, b []byte, max int) (int, error) {
	if max == 0 {
		return 0, nil
	}
	if max < 0 {
		return 0, lengthError(max, len(a), len(b))
	}

	// Alignment phase: byte steps until a sits on a word boundary.
	i := 0
	align := alignOffset(a)
	for i < align && i < max {
		if i >= len(a) || i >= len(b) {
			return 0, unterminatedError(i)
		}
		if a[i] != b[i] {
			return int(a[i]) - int(b[i]), nil
		}
		if a[i] == 0 {
			return 0, nil
		}
		i++
	}

	// Word phase: the explicit bounds check on both slices replaces the
	// page-margin heuristic the unmanaged original used to gate its reads.
	for max-i >= wordSize && i+wordSize <= len(a) && i+wordSize <= len(b) {
		wa, wb := loadWord(a, i), loadWord(b, i)
		if wa != wb {
			// The differing pair is within this word; the byte loop
			// below finds it and produces the exact difference.
			break
		}
		if hasZeroByte(wa) {
			// Both words match through a terminator.
			return 0, nil
		}
		i += wordSize
	}

	// Byte phase.
	for ; i < max; i++ {
		if i >= len(a) || i >= len(b) {
			return 0, unterminatedError(i)
		}
		if a[i] != b[i] {
			return int(a[i]) - int(b[i]), nil
		}
		if a[i] == 0 {
			return 0, nil
		}
	}
	return 0, nil
}
