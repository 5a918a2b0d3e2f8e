package literal

import (
	"unicode/utf8"

	"github.com/coregx/minire/syntax"
)

// ExtractorConfig configures requirement extraction limits.
//
// These limits keep the prefilter cheap to build:
//   - MaxLiterals: caps the number of literal runs kept
//   - MaxLiteralLen: splits very long runs into shorter required pieces
//   - MinLiteralLen: drops runs too short to reject many lines
//   - MaxGroupSize: skips positive groups with many members
//
// Dropping or splitting a requirement never changes match results, it only
// makes the prefilter reject fewer lines.
type ExtractorConfig struct {
	// MaxLiterals limits the number of literal runs recorded. Default: 16.
	MaxLiterals int

	// MaxLiteralLen limits the length in bytes of each recorded run. Longer
	// runs are split. Default: 64.
	MaxLiteralLen int

	// MinLiteralLen is the minimum length in bytes of a recorded run. The
	// run of a complete literal pattern is always kept. Default: 1.
	MinLiteralLen int

	// MaxGroupSize limits the number of members of a positive group that is
	// recorded as a requirement. Default: 64.
	MaxGroupSize int
}

// DefaultConfig returns the default extractor configuration.
func DefaultConfig() ExtractorConfig {
	return ExtractorConfig{
		MaxLiterals:   16,
		MaxLiteralLen: 64,
		MinLiteralLen: 1,
		MaxGroupSize:  64,
	}
}

// Requirements lists what a line must contain for a pattern to match.
type Requirements struct {
	// Literals are runs of consecutive single literals. Each must occur
	// contiguously in a matching line.
	Literals *Seq

	// Groups are the member sets of required positive groups. A matching
	// line contains at least one member of every group. Sets alias the
	// pattern buffer.
	Groups [][]rune

	// Digit is true if the pattern requires at least one \d rune.
	Digit bool

	// Impossible is true if the pattern requires an empty positive group,
	// which no rune satisfies.
	Impossible bool
}

// IsEmpty reports whether there is nothing to check.
func (r *Requirements) IsEmpty() bool {
	return r == nil || (r.Literals.IsEmpty() && len(r.Groups) == 0 && !r.Digit && !r.Impossible)
}

// IsComplete reports whether the pattern is exactly one literal, so that
// finding it in a line is the same as matching.
func (r *Requirements) IsComplete() bool {
	return r != nil && r.Literals.Len() == 1 && r.Literals.Get(0).Complete
}

// Extractor walks patterns atom by atom and records their requirements.
//
// The walk visits the same atoms, in the same order, as the position matcher
// does. It therefore also validates the pattern: an error from Extract is the
// error the matcher would hit.
type Extractor struct {
	config ExtractorConfig
}

// New creates a new Extractor with the given configuration.
func New(config ExtractorConfig) *Extractor {
	return &Extractor{config: config}
}

// Extract returns the requirements of pattern.
//
// An atom is required when its quantifier is not '?': the position matcher
// fails on any other atom that consumes nothing, including '*'. Consecutive
// required single literals form a run: each consumes exactly one rune at the
// next input position, so the run occurs contiguously in the line. Anchors
// and every other atom end the current run.
//
// Examples:
//
//	"cat"        → literals ["cat" complete]
//	"ca+t"       → literals ["c", "t"]
//	`^\d+ [ab]`  → literals [" "], groups ["ab"], digit
//	"dogs?"      → literals ["dog"]
func (e *Extractor) Extract(pattern []rune) (*Requirements, error) {
	req := &Requirements{Literals: NewSeq()}
	var (
		run      []byte
		runs     [][]byte
		complete = len(pattern) > 0
	)
	flush := func() {
		if len(run) > 0 {
			runs = append(runs, run)
			run = nil
		}
	}

	for pos := 0; pos < len(pattern); {
		if syntax.IsAnchor(pattern[pos]) {
			flush()
			complete = false
			pos++
			continue
		}

		atom, err := syntax.ExtractAtom(pattern, pos)
		if err != nil {
			return nil, err
		}
		pos += atom.Width

		if atom.Quant == syntax.One && atom.Class.Kind == syntax.Literal {
			if len(run)+utf8.RuneLen(atom.Class.Rune) > e.config.MaxLiteralLen {
				flush()
				complete = false
			}
			run = utf8.AppendRune(run, atom.Class.Rune)
			continue
		}

		flush()
		complete = false
		if atom.Quant.Optional() {
			continue
		}
		switch atom.Class.Kind {
		case syntax.Digit:
			req.Digit = true
		case syntax.PositiveGroup:
			switch n := len(atom.Class.Set); {
			case n == 0:
				req.Impossible = true
			case n <= e.config.MaxGroupSize:
				req.Groups = append(req.Groups, atom.Class.Set)
			}
		}
	}
	flush()

	if complete && len(runs) == 1 {
		req.Literals.Add(NewLiteral(runs[0], true))
		return req, nil
	}
	for _, r := range runs {
		if len(r) < e.config.MinLiteralLen {
			continue
		}
		req.Literals.Add(NewLiteral(r, false))
	}
	req.Literals.Minimize()
	if req.Literals.Len() > e.config.MaxLiterals {
		req.Literals.literals = req.Literals.literals[:e.config.MaxLiterals]
	}
	return req, nil
}
