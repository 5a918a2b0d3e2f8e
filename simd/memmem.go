package simd

import "bytes"

// Memmem returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// This is equivalent to bytes.Index. It searches for the rarest byte of the
// needle with Memchr and verifies the full needle around each candidate.
//
// Example:
//
//	haystack := []byte("hello world")
//	pos := simd.Memmem(haystack, []byte("world"))
//	// pos == 6
func Memmem(haystack, needle []byte) int {
	needleLen := len(needle)
	haystackLen := len(haystack)

	// Empty needle matches at start (mimics bytes.Index behavior)
	if needleLen == 0 {
		return 0
	}
	if needleLen > haystackLen {
		return -1
	}
	if needleLen == 1 {
		return Memchr(haystack, needle[0])
	}

	rare, rareIdx := selectRareByte(needle)

	// The rare byte cannot occur before rareIdx in a match, and the last
	// useful candidate leaves room for the needle's tail.
	from := rareIdx
	last := haystackLen - needleLen + rareIdx
	for from <= last {
		pos := Memchr(haystack[from:last+1], rare)
		if pos < 0 {
			return -1
		}
		cand := from + pos
		start := cand - rareIdx
		if bytes.Equal(haystack[start:start+needleLen], needle) {
			return start
		}
		from = cand + 1
	}
	return -1
}

// selectRareByte returns the byte of needle least likely to occur in text,
// and its index. Ties go to the later byte.
func selectRareByte(needle []byte) (rareByte byte, index int) {
	index = len(needle) - 1
	best := byteRank(needle[index])
	for i := index - 1; i >= 0; i-- {
		if r := byteRank(needle[i]); r < best {
			best, index = r, i
		}
	}
	return needle[index], index
}

// byteRank approximates how common b is in text and source code. Lower is
// rarer.
func byteRank(b byte) int {
	switch {
	case b == ' ':
		return 255
	case b == 'e', b == 't', b == 'a', b == 'o', b == 'i', b == 'n', b == 's', b == 'r':
		return 220
	case b >= 'a' && b <= 'z':
		return 150
	case b >= '0' && b <= '9':
		return 140
	case b >= 'A' && b <= 'Z':
		return 90
	case b == '\t', b == '\n', b == '\r':
		return 80
	case b >= 0xC0:
		// UTF-8 leading bytes
		return 20
	case b >= 0x80:
		// UTF-8 continuation bytes are shared by many code points.
		return 40
	case b < 0x20 || b == 0x7F:
		return 0
	default:
		// punctuation
		return 60
	}
}
