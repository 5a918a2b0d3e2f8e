package simd

import (
	"bytes"
	"encoding/binary"
	"math/bits"
)

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// Haystacks of at least 32 bytes use the runtime's vectorised search when the
// CPU has wide vector units. Everything else uses memchrGeneric.
//
// Example:
//
//	haystack := []byte("hello world")
//	pos := simd.Memchr(haystack, 'o')
//	// pos == 4
func Memchr(haystack []byte, needle byte) int {
	if hasVector && len(haystack) >= vectorMinLen {
		return bytes.IndexByte(haystack, needle)
	}
	return memchrGeneric(haystack, needle)
}

// memchrGeneric implements byte search using SWAR.
//
// Algorithm:
//  1. Broadcast needle to every byte of a uint64
//  2. XOR 8 haystack bytes with it (matching bytes become 0x00)
//  3. Detect zero bytes with (v - 0x01..) & ^v & 0x80..
//  4. The lowest set bit marks the first match (little-endian load)
func memchrGeneric(haystack []byte, needle byte) int {
	n := len(haystack)
	if n < 8 {
		for i := 0; i < n; i++ {
			if haystack[i] == needle {
				return i
			}
		}
		return -1
	}

	mask := uint64(needle) * lo8
	i := 0
	for ; i+8 <= n; i += 8 {
		v := binary.LittleEndian.Uint64(haystack[i:]) ^ mask
		if found := (v - lo8) & ^v & hi8; found != 0 {
			return i + bits.TrailingZeros64(found)/8
		}
	}
	for ; i < n; i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}
