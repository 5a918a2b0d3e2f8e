package simd

import (
	"encoding/binary"
	"math/bits"
)

// MemchrDigit returns the index of the first ASCII digit [0-9] in haystack,
// or -1 if no digit is found.
//
// Only bytes 0x30-0x39 are digits here. Unicode digits outside ASCII are not
// found; callers that need them must handle non-ASCII input separately.
//
// Example:
//
//	haystack := []byte("hello 123 world")
//	pos := simd.MemchrDigit(haystack) // returns 6 (index of '1')
func MemchrDigit(haystack []byte) int {
	n := len(haystack)
	i := 0
	for ; i+8 <= n; i += 8 {
		if found := digitMask(binary.LittleEndian.Uint64(haystack[i:])); found != 0 {
			return i + bits.TrailingZeros64(found)/8
		}
	}
	for ; i < n; i++ {
		if isDigitByte(haystack[i]) {
			return i
		}
	}
	return -1
}

// MemchrDigitAt returns the index of the first ASCII digit [0-9] at or after
// position 'at' in haystack, or -1 if no digit is found.
//
// The returned index is absolute in haystack, not relative to 'at'.
//
// Example:
//
//	haystack := []byte("abc123def456")
//	pos := simd.MemchrDigitAt(haystack, 0)  // returns 3
//	pos = simd.MemchrDigitAt(haystack, 6)   // returns 9 (the '4')
//	pos = simd.MemchrDigitAt(haystack, 12)  // returns -1 (out of bounds)
func MemchrDigitAt(haystack []byte, at int) int {
	if at < 0 || at >= len(haystack) {
		return -1
	}

	pos := MemchrDigit(haystack[at:])
	if pos < 0 {
		return -1
	}
	return pos + at
}

// digitMask sets the high bit of every byte of v in ['0', '9'].
//
// This is the "has byte between m and n" test from Hacker's Delight with
// m = '0'-1 and n = '9'+1. Bytes with the high bit set are excluded by the
// final & ^v.
func digitMask(v uint64) uint64 {
	const (
		m    = uint64('0' - 1)
		n    = uint64('9' + 1)
		low7 = lo8 * 0x7F
	)
	x := v & low7
	return (lo8*(127+n) - x) & ^v & (x + lo8*(127-m)) & hi8
}

func isDigitByte(b byte) bool {
	return b-'0' < 10
}
