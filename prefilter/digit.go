package prefilter

import "github.com/coregx/minire/simd"

// DigitPrefilter finds candidates for the \d class.
//
// \d accepts every rune with the Unicode number property, not only ASCII
// digits. In valid UTF-8 every such rune outside ASCII starts with a byte
// >= 0x80, so a candidate is the first ASCII digit or the first non-ASCII
// byte, whichever comes first. On pure ASCII text this is exactly a digit
// search; on other text the prefilter stays correct by admitting the first
// multi-byte rune as a candidate.
//
// This prefilter is NOT complete.
type DigitPrefilter struct{}

// NewDigitPrefilter creates a prefilter for patterns that require a digit.
func NewDigitPrefilter() *DigitPrefilter {
	return &DigitPrefilter{}
}

// Find returns the index of the first candidate at or after 'start', or -1.
func (p *DigitPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}

	rest := haystack[start:]
	end := simd.FirstNonASCII(rest)
	if end < 0 {
		return simd.MemchrDigitAt(haystack, start)
	}
	if pos := simd.MemchrDigit(rest[:end]); pos >= 0 {
		return start + pos
	}
	return start + end
}

// IsComplete returns false because a digit is only a candidate position.
func (p *DigitPrefilter) IsComplete() bool {
	return false
}

// HeapBytes returns 0 because DigitPrefilter uses no heap allocation.
func (p *DigitPrefilter) HeapBytes() int {
	return 0
}
