package meta

import (
	"bytes"
	"unicode/utf8"

	"github.com/coregx/minire/literal"
	"github.com/coregx/minire/prefilter"
)

// Plan is the analysis of one pattern: its decoded runes, the prefilter gate
// built from its requirements, and the strategy to run.
//
// A Plan is built and used within one call. It holds no line state and may
// be applied to any number of lines.
type Plan struct {
	pattern  []rune
	req      *literal.Requirements
	gate     *prefilter.Gate
	strategy Strategy
}

// Analyze validates config and pattern and returns the plan for pattern.
//
// A malformed pattern is reported here, whatever line it would later be
// matched against. The error wraps syntax.ErrMalformedPattern.
//
// Example:
//
//	plan, err := meta.Analyze(`\d apple`, meta.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(plan.Strategy()) // UsePrefilter
func Analyze(pattern string, config Config) (*Plan, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	p := &Plan{pattern: []rune(pattern)}

	req, err := literal.New(config.extractorConfig()).Extract(p.pattern)
	if err != nil {
		return nil, err
	}
	p.req = req

	if config.EnablePrefilter {
		p.gate = prefilter.NewBuilder(req).Build()
	}
	p.strategy = selectStrategy(p.gate, config)
	return p, nil
}

// Strategy returns the strategy selected for the pattern.
func (p *Plan) Strategy() Strategy {
	return p.strategy
}

// Requirements returns what a line must contain for the pattern to match.
func (p *Plan) Requirements() *literal.Requirements {
	return p.req
}

// Gate returns the prefilter gate, or nil when the strategy is UseScan.
func (p *Plan) Gate() *prefilter.Gate {
	return p.gate
}

// IsMatch reports whether the pattern matches anywhere in line.
//
// Lines that are not valid UTF-8 always take the scan path: the matcher sees
// U+FFFD for each bad byte, which the byte-level prefilters know nothing
// about.
func (p *Plan) IsMatch(line []byte) bool {
	if p.strategy != UseScan && utf8.Valid(line) {
		if !p.gate.Admits(line) {
			return false
		}
		if p.strategy == UseLiteral {
			return true
		}
	}

	// The pattern was fully validated by Analyze, so the matcher cannot
	// fail here.
	ok, err := scan(bytes.Runes(line), p.pattern)
	if err != nil {
		panic("minire: matcher rejected an analyzed pattern: " + err.Error())
	}
	return ok
}

// IsMatch reports whether pattern matches anywhere in line.
//
// Returns an error if config is invalid or pattern is malformed. A pattern
// error is returned even when the line is empty.
func IsMatch(line []byte, pattern string, config Config) (bool, error) {
	p, err := Analyze(pattern, config)
	if err != nil {
		return false, err
	}
	return p.IsMatch(line), nil
}

// IsMatchString is like IsMatch but takes the line as a string.
func IsMatchString(line, pattern string, config Config) (bool, error) {
	return IsMatch([]byte(line), pattern, config)
}
