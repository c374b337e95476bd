package bytecmp

import "math/bits"

// Equal reports whether the first n bytes of a and b are identical. It is
// the equality-only fast path: word-level XOR needs no ordering tie-break,
// so mismatching words reject immediately. Same preconditions as Compare.
func Equal(a, b []byte, n int) (bool, error) {
	if n == 0 {
		return true, nil
	}
	if n < 0 || n > len(a) || n > len(b) {
		return false, lengthError(n, len(a), len(b))
	}

	words := n / wordSize
	for i := 0; i < words; i++ {
		off := i * wordSize
		if loadWord(a, off) != loadWord(b, off) {
			return false, nil
		}
	}
	for i := words * wordSize; i < n; i++ {
		if a[i] != b[i] {
			return false, nil
		}
	}
	return true, nil
}

// CommonPrefixLen returns the length of the longest common prefix of a and b.
// The word loop locates the first differing byte inside a mismatching word
// from the trailing zero count of the XOR, avoiding a byte rescan.
func CommonPrefixLen(a, b []byte) int {
	n := 0
	for len(a)-n >= wordSize && len(b)-n >= wordSize {
		diff := loadWord(a, n) ^ loadWord(b, n)
		if diff != 0 {
			return n + bits.TrailingZeros64(diff)>>3
		}
		n += wordSize
	}
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}
