package meta

import "github.com/coregx/minire/prefilter"

// Strategy represents how a line is checked against a pattern.
//
// The strategy is picked per call from the pattern's requirements:
//   - UseLiteral: the pattern is one plain literal, a substring search decides
//   - UsePrefilter: required pieces gate the line before the scan
//   - UseScan: nothing to gate on, scan every offset
type Strategy int

const (
	// UseScan runs the scan driver on every line.
	// Selected for:
	//   - Patterns with no required literal, group, or digit (e.g. `\w+`, "a?")
	//   - When EnablePrefilter is false in config
	//   - Lines that are not valid UTF-8
	UseScan Strategy = iota

	// UsePrefilter rejects lines lacking a required piece, then scans the
	// rest.
	// Selected for:
	//   - Patterns with at least one required literal run, positive group,
	//     or digit (e.g. "ca+t", `\d apple`, "[xyz]+")
	UsePrefilter

	// UseLiteral answers with the literal search alone.
	// Selected for:
	//   - Patterns made only of plain single literals (e.g. "apple")
	//   - When EnableLiteralSearch is true in config
	UseLiteral
)

// String returns a human-readable representation of the Strategy.
func (s Strategy) String() string {
	switch s {
	case UseScan:
		return "UseScan"
	case UsePrefilter:
		return "UsePrefilter"
	case UseLiteral:
		return "UseLiteral"
	default:
		return "Unknown"
	}
}

// selectStrategy picks the strategy for a built gate (nil if none).
func selectStrategy(gate *prefilter.Gate, config Config) Strategy {
	if gate == nil || !config.EnablePrefilter {
		return UseScan
	}
	if config.EnableLiteralSearch && gate.IsComplete() {
		return UseLiteral
	}
	return UsePrefilter
}
