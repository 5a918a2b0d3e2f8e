package syntax

import "testing"

func TestClassMatches(t *testing.T) {
	tests := []struct {
		name  string
		class Class
		in    rune
		want  bool
	}{
		{"digit ascii", DigitClass(), '7', true},
		{"digit arabic-indic", DigitClass(), '٣', true},
		{"digit letter", DigitClass(), 'a', false},
		{"word letter", AlphaNumericClass(), 'Q', true},
		{"word digit", AlphaNumericClass(), '0', true},
		{"word unicode letter", AlphaNumericClass(), 'ж', true},
		{"word space", AlphaNumericClass(), ' ', false},
		{"word underscore", AlphaNumericClass(), '_', false},
		{"positive member", GroupClass([]rune("abc"), false), 'b', true},
		{"positive non-member", GroupClass([]rune("abc"), false), 'd', false},
		{"negative member", GroupClass([]rune("abc"), true), 'b', false},
		{"negative non-member", GroupClass([]rune("abc"), true), 'd', true},
		{"empty positive", GroupClass(nil, false), 'a', false},
		{"empty negative", GroupClass(nil, true), 'a', true},
		{"literal equal", LiteralClass('x'), 'x', true},
		{"literal differs", LiteralClass('x'), 'X', false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.class.Matches(tt.in); got != tt.want {
				t.Errorf("%v.Matches(%q) = %v, want %v", tt.class, tt.in, got, tt.want)
			}
		})
	}
}

func TestClassEqual(t *testing.T) {
	tests := []struct {
		a, b Class
		want bool
	}{
		{DigitClass(), DigitClass(), true},
		{DigitClass(), AlphaNumericClass(), false},
		{LiteralClass('a'), LiteralClass('a'), true},
		{LiteralClass('a'), LiteralClass('b'), false},
		{GroupClass([]rune("ab"), false), GroupClass([]rune("ab"), false), true},
		{GroupClass([]rune("ab"), false), GroupClass([]rune("ab"), true), false},
		{GroupClass([]rune("ab"), false), GroupClass([]rune("ba"), false), false},
		{GroupClass(nil, true), GroupClass([]rune{}, true), true},
	}

	for _, tt := range tests {
		if got := tt.a.Equal(tt.b); got != tt.want {
			t.Errorf("%v.Equal(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestClassString(t *testing.T) {
	tests := []struct {
		atom Atom
		want string
	}{
		{Atom{Class: DigitClass(), Quant: OneOrMore}, `\d+`},
		{Atom{Class: AlphaNumericClass()}, `\w`},
		{Atom{Class: GroupClass([]rune("ab"), false), Quant: ZeroOrMore}, "[ab]*"},
		{Atom{Class: GroupClass([]rune("ab"), true), Quant: ZeroOrOne}, "[^ab]?"},
		{Atom{Class: LiteralClass('z')}, "z"},
	}

	for _, tt := range tests {
		if got := tt.atom.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestQuantifier(t *testing.T) {
	tests := []struct {
		q        Quantifier
		optional bool
		repeats  bool
	}{
		{One, false, false},
		{OneOrMore, false, true},
		{ZeroOrMore, false, true},
		{ZeroOrOne, true, true},
	}

	for _, tt := range tests {
		if got := tt.q.Optional(); got != tt.optional {
			t.Errorf("%q.Optional() = %v, want %v", tt.q, got, tt.optional)
		}
		if got := tt.q.Repeats(); got != tt.repeats {
			t.Errorf("%q.Repeats() = %v, want %v", tt.q, got, tt.repeats)
		}
	}
}
