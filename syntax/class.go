package syntax

import (
	"slices"
	"unicode"
)

// ClassKind tags the variant held by a Class.
type ClassKind uint8

const (
	// Digit matches any rune with the Unicode number property (\d).
	Digit ClassKind = iota

	// AlphaNumeric matches letters and numbers (\w).
	AlphaNumeric

	// PositiveGroup matches any rune listed in the group ([abc]).
	PositiveGroup

	// NegativeGroup matches any rune not listed in the group ([^abc]).
	NegativeGroup

	// Literal matches exactly one rune.
	Literal
)

// String returns a human-readable name for the kind.
func (k ClassKind) String() string {
	switch k {
	case Digit:
		return "Digit"
	case AlphaNumeric:
		return "AlphaNumeric"
	case PositiveGroup:
		return "PositiveGroup"
	case NegativeGroup:
		return "NegativeGroup"
	case Literal:
		return "Literal"
	default:
		return "Unknown"
	}
}

// Class is a predicate over single runes.
//
// Only the field matching Kind is meaningful: Rune for Literal, Set for
// PositiveGroup and NegativeGroup. Set is a sub-slice of the pattern buffer
// it was decoded from and must not be modified.
type Class struct {
	Kind ClassKind
	Rune rune
	Set  []rune
}

// DigitClass returns the \d class.
func DigitClass() Class { return Class{Kind: Digit} }

// AlphaNumericClass returns the \w class.
func AlphaNumericClass() Class { return Class{Kind: AlphaNumeric} }

// LiteralClass returns a class matching exactly r.
func LiteralClass(r rune) Class { return Class{Kind: Literal, Rune: r} }

// GroupClass returns a positive or negative group over set.
func GroupClass(set []rune, negated bool) Class {
	if negated {
		return Class{Kind: NegativeGroup, Set: set}
	}
	return Class{Kind: PositiveGroup, Set: set}
}

// Matches reports whether r belongs to the class.
func (c Class) Matches(r rune) bool {
	switch c.Kind {
	case Digit:
		return isDigit(r)
	case AlphaNumeric:
		return isAlphaNumeric(r)
	case PositiveGroup:
		return inGroup(c.Set, r)
	case NegativeGroup:
		return !inGroup(c.Set, r)
	case Literal:
		return c.Rune == r
	}
	panic("syntax: unknown class kind " + c.Kind.String())
}

// Equal reports whether two classes are the same value. Group members are
// compared by content, in order.
func (c Class) Equal(other Class) bool {
	if c.Kind != other.Kind {
		return false
	}
	switch c.Kind {
	case Literal:
		return c.Rune == other.Rune
	case PositiveGroup, NegativeGroup:
		return slices.Equal(c.Set, other.Set)
	default:
		return true
	}
}

// String returns the class in pattern notation.
func (c Class) String() string {
	switch c.Kind {
	case Digit:
		return `\d`
	case AlphaNumeric:
		return `\w`
	case PositiveGroup:
		return "[" + string(c.Set) + "]"
	case NegativeGroup:
		return "[^" + string(c.Set) + "]"
	case Literal:
		return string(c.Rune)
	default:
		return "?"
	}
}

func isDigit(r rune) bool {
	return unicode.IsNumber(r)
}

func isAlphaNumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

func inGroup(set []rune, r rune) bool {
	return slices.Contains(set, r)
}
