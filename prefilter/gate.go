package prefilter

import "github.com/coregx/minire/literal"

// Gate is a conjunction of prefilters: a haystack is admitted only when each
// of them finds a candidate in it.
//
// Prefilters are checked in order: literals (longest first), then groups,
// then digits.
type Gate struct {
	filters []Prefilter
}

// Admits reports whether haystack may match. false is a proof that it
// cannot; true means the matcher has to decide.
func (g *Gate) Admits(haystack []byte) bool {
	for _, f := range g.filters {
		if f.Find(haystack, 0) < 0 {
			return false
		}
	}
	return true
}

// IsComplete reports whether the gate is a single complete literal, in which
// case Admits is the match result.
func (g *Gate) IsComplete() bool {
	return len(g.filters) == 1 && g.filters[0].IsComplete()
}

// Len returns the number of prefilters in the gate. A nil gate has none.
func (g *Gate) Len() int {
	if g == nil {
		return 0
	}
	return len(g.filters)
}

// HeapBytes returns the heap memory used by all prefilters, 0 for a nil
// gate.
func (g *Gate) HeapBytes() int {
	if g == nil {
		return 0
	}
	n := 0
	for _, f := range g.filters {
		n += f.HeapBytes()
	}
	return n
}

// Builder constructs a Gate from extracted requirements.
//
// Example:
//
//	req, _ := literal.New(literal.DefaultConfig()).Extract(pattern)
//	gate := prefilter.NewBuilder(req).Build()
//	if gate == nil {
//	    // nothing to check, scan every offset
//	}
type Builder struct {
	req *literal.Requirements
}

// NewBuilder creates a new prefilter builder from extracted requirements.
// req may be nil.
func NewBuilder(req *literal.Requirements) *Builder {
	return &Builder{req: req}
}

// Build returns the gate for the requirements, or nil when there is nothing
// to check.
//
// An impossible requirement yields a gate that rejects every haystack. A
// pattern that is one complete literal yields a single literal prefilter,
// whose Admits is the match result.
func (b *Builder) Build() *Gate {
	req := b.req
	if req.IsEmpty() {
		return nil
	}
	if req.Impossible {
		return &Gate{filters: []Prefilter{rejectPrefilter{}}}
	}
	if req.IsComplete() {
		return &Gate{filters: []Prefilter{newLiteralPrefilter(req.Literals.Get(0))}}
	}

	g := &Gate{}
	for i := 0; i < req.Literals.Len(); i++ {
		g.filters = append(g.filters, newLiteralPrefilter(req.Literals.Get(i)))
	}
	for _, set := range req.Groups {
		if pf := newAnyOfPrefilter(set); pf != nil {
			g.filters = append(g.filters, pf)
		}
	}
	if req.Digit {
		g.filters = append(g.filters, NewDigitPrefilter())
	}

	if len(g.filters) == 0 {
		return nil
	}
	return g
}
