package simd

import (
	"encoding/binary"
	"math/bits"
)

// IsASCII reports whether every byte of data is below 0x80.
// An empty slice is ASCII.
//
// Example:
//
//	simd.IsASCII([]byte("hello")) // true
//	simd.IsASCII([]byte("héllo")) // false
func IsASCII(data []byte) bool {
	return FirstNonASCII(data) < 0
}

// FirstNonASCII returns the index of the first byte >= 0x80, or -1 if all
// bytes are ASCII.
//
// In valid UTF-8 this is where the first multi-byte sequence begins.
func FirstNonASCII(data []byte) int {
	n := len(data)
	i := 0
	for ; i+8 <= n; i += 8 {
		if high := binary.LittleEndian.Uint64(data[i:]) & hi8; high != 0 {
			return i + bits.TrailingZeros64(high)/8
		}
	}
	for ; i < n; i++ {
		if data[i] >= 0x80 {
			return i
		}
	}
	return -1
}
