package prefilter

import (
	"unicode/utf8"

	"github.com/coregx/ahocorasick"
)

// anyOfPrefilter finds the first occurrence of any member of a positive
// group, using an Aho-Corasick automaton over the UTF-8 encoding of every
// member.
//
// Example patterns:
//
//	/[aeiou]x/   → search for any of "a", "e", "i", "o", "u"
//	/[éè]+/      → search for "é" or "è"
type anyOfPrefilter struct {
	auto    *ahocorasick.Automaton
	members int
	bytes   int
}

// newAnyOfPrefilter builds the automaton for set. Duplicate members are
// added once. It returns nil if set is empty or the automaton cannot be
// built.
func newAnyOfPrefilter(set []rune) Prefilter {
	builder := ahocorasick.NewBuilder()
	seen := make(map[rune]struct{}, len(set))
	total := 0
	for _, r := range set {
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		enc := utf8.AppendRune(nil, r)
		total += len(enc)
		builder.AddPattern(enc)
	}
	if len(seen) == 0 {
		return nil
	}

	auto, err := builder.Build()
	if err != nil {
		return nil
	}
	return &anyOfPrefilter{auto: auto, members: len(seen), bytes: total}
}

// Find implements Prefilter.Find using the automaton.
func (p *anyOfPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}

	m := p.auto.Find(haystack, start)
	if m == nil {
		return -1
	}
	return m.Start
}

// IsComplete implements Prefilter.IsComplete.
func (p *anyOfPrefilter) IsComplete() bool {
	return false
}

// HeapBytes implements Prefilter.HeapBytes.
// Returns the size of the member patterns; automaton tables are not counted.
func (p *anyOfPrefilter) HeapBytes() int {
	return p.bytes
}
