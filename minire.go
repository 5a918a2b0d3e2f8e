// Package minire provides a minimal regular expression matcher for single
// lines of text.
//
// The supported syntax is deliberately small:
//   - Literal runes: any rune other than the ones below
//   - \d: a numeric rune, \w: a letter or numeric rune
//   - [abc] and [^abc]: positive and negative character groups
//   - ^ and $: start and end of a line
//   - ?, + and *: quantifiers on the preceding class
//
// There is no alternation, no grouping, and no backtracking: every quantifier
// is greedy and never gives back what it consumed.
//
// Basic usage:
//
//	ok, err := minire.MatchString("sally has 3 apples", `\d apple`)
//	if err != nil {
//	    log.Fatal(err) // malformed pattern
//	}
//	fmt.Println(ok) // true
//
// Advanced usage:
//
//	// Always scan every offset, skipping the prefilters
//	config := minire.DefaultConfig()
//	config.EnablePrefilter = false
//	ok, err := minire.MatchStringWithConfig(line, pattern, config)
//
// Each call analyzes the pattern from scratch. Nothing is compiled or cached
// between calls, so every function is safe for concurrent use.
package minire

import (
	"github.com/coregx/minire/meta"
	"github.com/coregx/minire/syntax"
)

// Errors returned for malformed patterns. Every one of them wraps
// ErrMalformedPattern, and is itself wrapped in a *PatternError.
var (
	ErrMalformedPattern  = syntax.ErrMalformedPattern
	ErrTrailingBackslash = syntax.ErrTrailingBackslash
	ErrUnexpectedAnchor  = syntax.ErrUnexpectedAnchor
)

// PatternError reports where a pattern is malformed.
type PatternError = syntax.PatternError

// Config is an alias for meta.Config.
type Config = meta.Config

// DefaultConfig returns the default matcher configuration.
//
// Example:
//
//	config := minire.DefaultConfig()
//	config.MinLiteralLen = 2
func DefaultConfig() Config {
	return meta.DefaultConfig()
}

// MatchString reports whether pattern matches anywhere in line.
//
// An empty line never matches, not even the empty pattern.
//
// Returns an error wrapping ErrMalformedPattern if the pattern is malformed,
// whatever the line.
//
// Example:
//
//	ok, _ := minire.MatchString("caaat", "ca+t") // true
//	ok, _ = minire.MatchString("ca", "ca+t")     // false
func MatchString(line, pattern string) (bool, error) {
	return meta.IsMatchString(line, pattern, meta.DefaultConfig())
}

// Match reports whether pattern matches anywhere in line.
//
// Invalid UTF-8 in line decodes to U+FFFD, one per bad byte.
func Match(line []byte, pattern string) (bool, error) {
	return meta.IsMatch(line, pattern, meta.DefaultConfig())
}

// MatchStringWithConfig is like MatchString but with a custom configuration.
//
// Returns a *meta.ConfigError if config is invalid. The configuration never
// changes the result, only the work done to get it.
func MatchStringWithConfig(line, pattern string, config Config) (bool, error) {
	return meta.IsMatchString(line, pattern, config)
}

// MustMatchString is like MatchString but panics if the pattern is malformed.
// It simplifies matching against patterns known to be valid.
//
// Example:
//
//	if minire.MustMatchString(line, `^\d+$`) {
//	    // the line is a number
//	}
func MustMatchString(line, pattern string) bool {
	ok, err := MatchString(line, pattern)
	if err != nil {
		panic("minire: MatchString(`" + pattern + "`): " + err.Error())
	}
	return ok
}
