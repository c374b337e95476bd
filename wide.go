package bytecmp

// CompareBounded16 is CompareBounded over 16-bit units: it compares a and b
// as terminator-delimited uint16 sequences, examining at most max units, and
// returns the signed difference of the first differing pair, or 0 when a
// common terminator or the max count is reached first. Units are compared
// numerically; no collation or encoding awareness applies.
//
// A negative max returns ErrLengthOutOfRange; running off the end of either
// slice returns ErrUnterminated. The unit width makes a word fast path not
// worth its setup cost here, so the scan is a plain loop.
func CompareBounded16(a, b []uint16, max int) (int, error) {
	if max == 0 {
		return 0, nil
	}
	if max < 0 {
		return 0, lengthError(max, len(a), len(b))
	}

	for i := 0; i < max; i++ {
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
