package syntax

// Quantifier is the repetition policy attached to an atom.
type Quantifier uint8

const (
	// One requires exactly one rune (no quantifier in the pattern).
	One Quantifier = iota

	// OneOrMore is '+'.
	OneOrMore

	// ZeroOrMore is '*'.
	ZeroOrMore

	// ZeroOrOne is '?'.
	ZeroOrOne
)

// String returns the quantifier in pattern notation ("" for One).
func (q Quantifier) String() string {
	switch q {
	case OneOrMore:
		return "+"
	case ZeroOrMore:
		return "*"
	case ZeroOrOne:
		return "?"
	default:
		return ""
	}
}

// Optional reports whether an atom with this quantifier may be skipped
// without consuming input.
//
// Only ZeroOrOne is optional. A ZeroOrMore atom that consumes nothing fails
// like One does; the position matcher never retries it as empty.
func (q Quantifier) Optional() bool {
	return q == ZeroOrOne
}

// Repeats reports whether the class may be applied more than once.
//
// Every quantifier but One consumes a maximal run. '?' differs from '*' only
// in that it may consume nothing.
func (q Quantifier) Repeats() bool {
	return q != One
}

func decodeQuantifier(r rune) (Quantifier, int) {
	switch r {
	case '+':
		return OneOrMore, 1
	case '*':
		return ZeroOrMore, 1
	case '?':
		return ZeroOrOne, 1
	default:
		return One, 0
	}
}
