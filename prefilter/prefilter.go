// Package prefilter rejects lines that cannot match a pattern before the
// position matcher runs.
//
// Each Prefilter searches for one requirement extracted by package literal:
// a literal run, one member of a positive group, or a digit. A Gate combines
// them: a line is admitted only if every prefilter finds a candidate in it.
// Gates never reject a line the matcher would accept, they only save the
// offset-by-offset scan on lines that lack a required piece.
//
// Prefilter selection per requirement:
//   - Literal of 1 byte → memchrPrefilter (SWAR/vector byte search)
//   - Longer literal → memmemPrefilter (rare byte + verify)
//   - Positive group → anyOfPrefilter (Aho-Corasick over the members)
//   - Digit → DigitPrefilter (ASCII digit scan, conservative on non-ASCII)
//
// Example usage:
//
//	req, _ := literal.New(literal.DefaultConfig()).Extract([]rune("ca+t"))
//	gate := prefilter.NewBuilder(req).Build()
//	if gate != nil && !gate.Admits([]byte("dog")) {
//	    // no 'c' in the line: cannot match
//	}
package prefilter

import (
	"github.com/coregx/minire/literal"
	"github.com/coregx/minire/simd"
)

// Prefilter finds candidate positions of one requirement in a haystack.
//
// Key methods:
//   - Find: returns the next candidate position
//   - IsComplete: indicates if a candidate is a full match of the pattern
//   - HeapBytes: returns memory usage for profiling
type Prefilter interface {
	// Find returns the index of the first candidate starting at or after
	// 'start', or -1 if no candidate is found.
	//
	// -1 is a proof: the requirement is absent from haystack[start:].
	Find(haystack []byte, start int) int

	// IsComplete returns true if a candidate guarantees a full match of the
	// pattern the prefilter was built for.
	IsComplete() bool

	// HeapBytes returns the number of bytes of heap memory used by this prefilter.
	HeapBytes() int
}

// memchrPrefilter wraps simd.Memchr as a Prefilter.
//
// Example patterns:
//
//	/a/       → search for 'a'
//	/x\d+/    → search for 'x'
type memchrPrefilter struct {
	needle   byte
	complete bool
}

func newMemchrPrefilter(needle byte, complete bool) Prefilter {
	return &memchrPrefilter{
		needle:   needle,
		complete: complete,
	}
}

// Find implements Prefilter.Find using simd.Memchr.
func (p *memchrPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}

	idx := simd.Memchr(haystack[start:], p.needle)
	if idx == -1 {
		return -1
	}
	return start + idx
}

// IsComplete implements Prefilter.IsComplete.
func (p *memchrPrefilter) IsComplete() bool {
	return p.complete
}

// HeapBytes implements Prefilter.HeapBytes.
func (p *memchrPrefilter) HeapBytes() int {
	return 0
}

// memmemPrefilter wraps simd.Memmem as a Prefilter.
//
// Example patterns:
//
//	/hello/        → search for "hello"
//	/error \d+/    → search for "error "
type memmemPrefilter struct {
	needle   []byte
	complete bool
}

// newMemmemPrefilter copies needle to prevent aliasing.
func newMemmemPrefilter(needle []byte, complete bool) Prefilter {
	needleCopy := make([]byte, len(needle))
	copy(needleCopy, needle)

	return &memmemPrefilter{
		needle:   needleCopy,
		complete: complete,
	}
}

// Find implements Prefilter.Find using simd.Memmem.
func (p *memmemPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}

	idx := simd.Memmem(haystack[start:], p.needle)
	if idx == -1 {
		return -1
	}
	return start + idx
}

// IsComplete implements Prefilter.IsComplete.
func (p *memmemPrefilter) IsComplete() bool {
	return p.complete
}

// HeapBytes implements Prefilter.HeapBytes.
func (p *memmemPrefilter) HeapBytes() int {
	return len(p.needle)
}

// newLiteralPrefilter picks memchr or memmem for lit.
func newLiteralPrefilter(lit literal.Literal) Prefilter {
	if len(lit.Bytes) == 1 {
		return newMemchrPrefilter(lit.Bytes[0], lit.Complete)
	}
	return newMemmemPrefilter(lit.Bytes, lit.Complete)
}

// rejectPrefilter never finds a candidate. It stands for a requirement no
// line can satisfy, such as the empty group "[]".
type rejectPrefilter struct{}

func (rejectPrefilter) Find([]byte, int) int { return -1 }
func (rejectPrefilter) IsComplete() bool { return false }
func (rejectPrefilter) HeapBytes() int { return 0 }
