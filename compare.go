// Package bytecmp provides bounded, allocation-free byte-buffer comparison
// primitives: fixed-length lexicographic comparison, terminator-aware bounded
// comparison, and the supporting word-at-a-time scanning helpers. All
// functions are pure and safe for concurrent use on read-shared memory.
package bytecmp

import "math/bits"

// Compare compares the first n bytes of a and b as unsigned values and
// returns -1, 0, or +1 for lexicographically smaller, equal, or larger.
// n == 0 always returns 0 without reading either slice. A negative n, or an
// n exceeding either slice length, returns ErrLengthOutOfRange; Compare never
// reads outside the declared window. Overlapping or identical slices are fine,
// the buffers are only read.
func Compare(a, b []byte, n int) (int, error) {
	if n == 0 {
		return 0, nil
	}
	if n < 0 || n > len(a) || n > len(b) {
		return 0, lengthError(n, len(a), len(b))
	}

	i := 0
	if n >= wordSize {
		// Alignment phase: byte steps until a sits on a word boundary.
		// The offset is at most wordSize-1, so it fits inside n here.
		for head := alignOffset(a); i < head; i++ {
			if a[i] != b[i] {
				return byteOrder(a[i], b[i]), nil
			}
		}

		// Block phase: four words per iteration for throughput.
		for n-i >= 4*wordSize {
			if wa, wb := loadWord(a, i), loadWord(b, i); wa != wb {
				return wordOrder(wa, wb), nil
			}
			if wa, wb := loadWord(a, i+wordSize), loadWord(b, i+wordSize); wa != wb {
				return wordOrder(wa, wb), nil
			}
			if wa, wb := loadWord(a, i+2*wordSize), loadWord(b, i+2*wordSize); wa != wb {
				return wordOrder(wa, wb), nil
			}
			if wa, wb := loadWord(a, i+3*wordSize), loadWord(b, i+3*wordSize); wa != wb {
				return wordOrder(wa, wb), nil
			}
			i += 4 * wordSize
		}

		// Remaining whole words.
		for n-i >= wordSize {
			if wa, wb := loadWord(a, i), loadWord(b, i); wa != wb {
				return wordOrder(wa, wb), nil
			}
			i += wordSize
		}
	}

	// Byte tail.
	for ; i < n; i++ {
		if a[i] != b[i] {
			return byteOrder(a[i], b[i]), nil
		}
	}
	return 0, nil
}

// byteOrder resolves the ordering of a mismatching byte pair.
func byteOrder(x, y byte) int {
	if x < y {
		return -1
	}
	return 1
}

// wordOrder resolves the ordering of a mismatching word pair. The words were
// loaded little-endian, so their numeric order does not match byte order;
// reversing the bytes of both makes the numeric comparison agree with a
// byte-by-byte scan without performing one.
func wordOrder(x, y uint64) int {
	if bits.ReverseBytes64(x) < bits.ReverseBytes64(y) {
		return -1
	}
	return 1
}
