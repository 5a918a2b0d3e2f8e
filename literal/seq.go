// Package literal extracts the literal byte sequences a line must contain for
// a minire pattern to have any chance of matching.
//
// The primary use case is prefilter gating: before scanning a line offset by
// offset, the engine checks that every required literal occurs somewhere in
// it. A line that lacks one of them is rejected without running the position
// matcher at all.
//
// Key concepts:
//   - A Literal is a concrete UTF-8 byte sequence that must occur in the line
//   - A Seq is a set of literals that must ALL occur (a conjunction)
//   - Requirements bundles the literal Seq with the class-level requirements
//     (positive groups, digits) found by Extract
package literal

import (
	"bytes"
	"sort"
)

// Literal represents a literal byte sequence required by a pattern.
// The Complete flag indicates whether finding the literal is sufficient for
// a match (the pattern is nothing but this literal).
//
// Example:
//   - Pattern "hello" → Literal{[]byte("hello"), true}
//   - Pattern "hello\d" → Literal{[]byte("hello"), false}
type Literal struct {
	// Bytes contains the UTF-8 encoding of the required runes.
	Bytes []byte

	// Complete indicates whether this literal represents the entire pattern.
	Complete bool
}

// NewLiteral creates a new Literal from the given byte sequence and completeness flag.
//
// Example:
//
//	lit := literal.NewLiteral([]byte("hello"), true)
//	fmt.Printf("%s (complete=%v)\n", lit.Bytes, lit.Complete)
//	// Output: hello (complete=true)
func NewLiteral(b []byte, complete bool) Literal {
	return Literal{
		Bytes:    b,
		Complete: complete,
	}
}

// Len returns the length of the literal in bytes.
func (l Literal) Len() int {
	return len(l.Bytes)
}

// String returns a string representation of the literal for debugging purposes.
// Format: "literal{bytes, complete=true/false}"
func (l Literal) String() string {
	complete := "false"
	if l.Complete {
		complete = "true"
	}
	return "literal{" + string(l.Bytes) + ", complete=" + complete + "}"
}

// Seq is a set of literals that must all be present in a matching line.
//
// Example:
//
//	seq := literal.NewSeq(
//	    literal.NewLiteral([]byte("foo"), false),
//	    literal.NewLiteral([]byte("bar"), false),
//	)
//	fmt.Printf("Sequence has %d literals\n", seq.Len()) // Output: Sequence has 2 literals
type Seq struct {
	literals []Literal
}

// NewSeq creates a new sequence from the given literals.
func NewSeq(lits ...Literal) *Seq {
	return &Seq{
		literals: lits,
	}
}

// Len returns the number of literals in the sequence.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.literals)
}

// Get returns the literal at the specified index.
// Panics if index is out of bounds.
func (s *Seq) Get(i int) Literal {
	return s.literals[i]
}

// IsEmpty returns true if the sequence has no literals.
func (s *Seq) IsEmpty() bool {
	return s == nil || len(s.literals) == 0
}

// Add appends lit to the sequence.
func (s *Seq) Add(lit Literal) {
	s.literals = append(s.literals, lit)
}

// Minimize removes redundant literals from the sequence and orders the rest
// longest first.
//
// Because every literal of a Seq is required, a literal L is redundant when a
// longer literal that contains L as a substring (or an equal literal) is also
// required: any line containing the longer one contains L.
//
// Longer literals are kept first since they reject more lines per search.
//
// Example:
//
//	seq := literal.NewSeq(
//	    literal.NewLiteral([]byte("oo"), false),
//	    literal.NewLiteral([]byte("foo"), false),
//	)
//	seq.Minimize()
//	fmt.Println(seq.Len()) // Output: 1 (only "foo" remains)
func (s *Seq) Minimize() {
	if s.Len() < 2 {
		return
	}

	sort.SliceStable(s.literals, func(i, j int) bool {
		return len(s.literals[i].Bytes) > len(s.literals[j].Bytes)
	})

	kept := s.literals[:0]
	for _, lit := range s.literals {
		redundant := false
		for _, k := range kept {
			if bytes.Contains(k.Bytes, lit.Bytes) {
				redundant = true
				break
			}
		}
		if !redundant {
			kept = append(kept, lit)
		}
	}
	s.literals = kept
}

// String returns a debug representation of all literals in the sequence.
func (s *Seq) String() string {
	if s.IsEmpty() {
		return "seq[]"
	}
	var b bytes.Buffer
	b.WriteString("seq[")
	for i, lit := range s.literals {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(lit.String())
	}
	b.WriteString("]")
	return b.String()
}
