// Package meta implements the matching engine and the orchestration around
// it.
//
// The engine itself is three layers:
//   - Scan driver: tries every start offset of the line, left to right
//   - Position matcher: matches the whole pattern from one fixed offset,
//     handling the anchors '^' and '$'
//   - Class matcher: counts how many leading runes satisfy one atom
//
// Around it, each call analyzes the pattern's literal requirements and picks
// a strategy: answer by literal search alone, gate the line with prefilters
// and then scan, or just scan.
//
// Nothing is cached between calls. Every call decodes, validates, and
// matches from scratch, and is safe for concurrent use.
package meta

import "github.com/coregx/minire/literal"

// Config controls prefiltering and strategy selection.
//
// No option changes match results, only how much work is done per line.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.EnablePrefilter = false // always scan every offset
//	ok, err := meta.IsMatch(line, pattern, config)
type Config struct {
	// EnablePrefilter enables literal and class prefilters.
	// When false, every line is scanned offset by offset.
	// Default: true
	EnablePrefilter bool

	// EnableLiteralSearch answers patterns that are a single plain literal
	// with a substring search, skipping the scan driver.
	// Requires EnablePrefilter.
	// Default: true
	EnableLiteralSearch bool

	// MinLiteralLen is the minimum length in bytes of a literal run used as a
	// prefilter.
	// Default: 1
	MinLiteralLen int

	// MaxLiteralLen splits literal runs longer than this many bytes.
	// Default: 64
	MaxLiteralLen int

	// MaxLiterals limits the number of literal prefilters per pattern.
	// Default: 16
	MaxLiterals int

	// MaxGroupSize is the largest positive group turned into an Aho-Corasick
	// prefilter.
	// Default: 64
	MaxGroupSize int
}

// DefaultConfig returns a configuration with sensible defaults.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.MinLiteralLen = 2 // ignore single-byte literals
func DefaultConfig() Config {
	return Config{
		EnablePrefilter:     true,
		EnableLiteralSearch: true,
		MinLiteralLen:       1,
		MaxLiteralLen:       64,
		MaxLiterals:         16,
		MaxGroupSize:        64,
	}
}

// Validate checks if the configuration is valid.
// Returns an error if any parameter is out of range.
//
// Valid ranges (checked only when EnablePrefilter is true):
//   - MinLiteralLen: 1 to 64
//   - MaxLiteralLen: 4 to 1,024, and >= MinLiteralLen
//   - MaxLiterals: 1 to 256
//   - MaxGroupSize: 1 to 1,024
func (c Config) Validate() error {
	if !c.EnablePrefilter {
		return nil
	}

	if c.MinLiteralLen < 1 || c.MinLiteralLen > 64 {
		return &ConfigError{
			Field:   "MinLiteralLen",
			Message: "must be between 1 and 64",
		}
	}
	if c.MaxLiteralLen < 4 || c.MaxLiteralLen > 1_024 {
		return &ConfigError{
			Field:   "MaxLiteralLen",
			Message: "must be between 4 and 1,024",
		}
	}
	if c.MaxLiteralLen < c.MinLiteralLen {
		return &ConfigError{
			Field:   "MaxLiteralLen",
			Message: "must not be less than MinLiteralLen",
		}
	}
	if c.MaxLiterals < 1 || c.MaxLiterals > 256 {
		return &ConfigError{
			Field:   "MaxLiterals",
			Message: "must be between 1 and 256",
		}
	}
	if c.MaxGroupSize < 1 || c.MaxGroupSize > 1_024 {
		return &ConfigError{
			Field:   "MaxGroupSize",
			Message: "must be between 1 and 1,024",
		}
	}

	return nil
}

// extractorConfig maps the literal limits onto the extractor.
//
// With prefiltering off the limits are neither validated nor used, and the
// extractor only validates the pattern, so it runs with its defaults.
func (c Config) extractorConfig() literal.ExtractorConfig {
	if !c.EnablePrefilter {
		return literal.DefaultConfig()
	}
	return literal.ExtractorConfig{
		MaxLiterals:   c.MaxLiterals,
		MaxLiteralLen: c.MaxLiteralLen,
		MinLiteralLen: c.MinLiteralLen,
		MaxGroupSize:  c.MaxGroupSize,
	}
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "minire: invalid config: " + e.Field + ": " + e.Message
}
