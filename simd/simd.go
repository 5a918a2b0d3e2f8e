// Package simd provides the byte search primitives used by minire prefilters.
//
// The package selects an implementation per call based on CPU features
// detected at package initialization. On CPUs with wide vector units (AVX2 on
// x86-64, ASIMD on arm64) long haystacks are handed to the runtime's
// vectorised byte search. Short haystacks, and every haystack on other CPUs,
// use pure Go SWAR (SIMD Within A Register) loops that process 8 bytes per
// iteration with uint64 arithmetic.
//
// All functions operate on raw bytes and know nothing about UTF-8; callers
// are responsible for searching UTF-8 encoded needles in valid UTF-8 text.
package simd

import "golang.org/x/sys/cpu"

// CPU feature detection flags set at package initialization.
var (
	// hasVector indicates that the runtime byte search runs on 256-bit (x86-64)
	// or 128-bit (arm64) vectors.
	hasVector = cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD
)

// vectorMinLen is the haystack length below which the SWAR loop beats the
// setup cost of a vectorised search.
const vectorMinLen = 32

// SWAR constants
const (
	lo8 = uint64(0x0101010101010101)
	hi8 = uint64(0x8080808080808080)
)
