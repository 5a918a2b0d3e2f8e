package syntax

// Atom is one (class, quantifier) unit decoded from a pattern.
//
// Width is the number of pattern runes the atom spans, including its
// quantifier and any atoms merged into a OneOrMore run.
type Atom struct {
	Class Class
	Quant Quantifier
	Width int
}

// String returns the atom in pattern notation.
func (a Atom) String() string {
	return a.Class.String() + a.Quant.String()
}

// IsAnchor reports whether r is a position anchor ('^' or '$').
func IsAnchor(r rune) bool {
	return r == '^' || r == '$'
}

// ExtractAtom decodes the atom starting at pattern[pos].
//
// Classes are recognised in priority order: \d, \w, [...] / [^...], then any
// other rune as a literal. A '[' without a closing ']' is the literal '['. A
// '\' followed by anything other than 'd' or 'w' is the literal '\'.
//
// When the atom is quantified with '+', the following atoms that decode to
// the same class are absorbed into it, whatever their own quantifier is. So
// "a+a" and "a+a*" are both a single OneOrMore('a') atom of width 3 and 4.
//
// pos must be in [0, len(pattern)) and must not point at an anchor.
func ExtractAtom(pattern []rune, pos int) (Atom, error) {
	cls, n, err := decodeClass(pattern, pos)
	if err != nil {
		return Atom{}, &PatternError{Pattern: string(pattern), Pos: pos, Err: err}
	}
	quant, qn := quantifierAt(pattern, pos+n)
	end := pos + n + qn

	if quant == OneOrMore {
		for end < len(pattern) && !IsAnchor(pattern[end]) {
			next, nn, err := decodeClass(pattern, end)
			if err != nil {
				return Atom{}, &PatternError{Pattern: string(pattern), Pos: end, Err: err}
			}
			if !next.Equal(cls) {
				break
			}
			_, nq := quantifierAt(pattern, end+nn)
			end += nn + nq
		}
	}

	return Atom{Class: cls, Quant: quant, Width: end - pos}, nil
}

// decodeClass returns the class at pattern[pos] and its width in runes.
func decodeClass(pattern []rune, pos int) (Class, int, error) {
	switch r := pattern[pos]; r {
	case '\\':
		if pos+1 >= len(pattern) {
			return Class{}, 0, ErrTrailingBackslash
		}
		switch pattern[pos+1] {
		case 'd':
			return DigitClass(), 2, nil
		case 'w':
			return AlphaNumericClass(), 2, nil
		}
		return LiteralClass('\\'), 1, nil

	case '[':
		end := indexRune(pattern, pos+1, ']')
		if end < 0 {
			return LiteralClass('['), 1, nil
		}
		if pattern[pos+1] == '^' {
			return GroupClass(pattern[pos+2:end], true), end - pos + 1, nil
		}
		return GroupClass(pattern[pos+1:end], false), end - pos + 1, nil

	case '^', '$':
		return Class{}, 0, ErrUnexpectedAnchor

	default:
		return LiteralClass(r), 1, nil
	}
}

// quantifierAt decodes the quantifier at pattern[pos]; pos may be the end of
// the pattern.
func quantifierAt(pattern []rune, pos int) (Quantifier, int) {
	if pos >= len(pattern) {
		return One, 0
	}
	return decodeQuantifier(pattern[pos])
}

func indexRune(s []rune, from int, r rune) int {
	for i := from; i < len(s); i++ {
		if s[i] == r {
			return i
		}
	}
	return -1
}
