package bytecmp

import (
	"encoding/binary"
	"unsafe"
)

// wordSize is the number of bytes processed per word load.
const wordSize = 8

// alignOffset returns how many bytes of b must be consumed one at a time
// before the remaining data starts on a word-aligned address.
// SAFE to use here because:
// 1. The pointer is only inspected, never dereferenced through unsafe
// 2. b is pinned by the caller for the duration of the comparison
func alignOffset(b []byte) int {
	if len(b) == 0 {
		return 0
	}
	addr := uintptr(unsafe.Pointer(&b[0]))
	return int(-addr) & (wordSize - 1)
}

// loadWord reads 8 bytes of b starting at off as a little-endian word.
// The fixed byte order keeps the zero-byte probe and the ordering tie-break
// correct on big-endian targets as well; on little-endian hardware the
// compiler reduces this to a single load instruction.
// Caller must ensure off+8 <= len(b).
func loadWord(b []byte, off int) uint64 {
	return binary.LittleEndian.Uint64(b[off:])
}
