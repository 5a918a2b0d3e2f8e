package literal

import (
	"errors"
	"reflect"
	"testing"

	"github.com/coregx/minire/syntax"
)

func literalStrings(s *Seq) []string {
	var out []string
	for i := 0; i < s.Len(); i++ {
		out = append(out, string(s.Get(i).Bytes))
	}
	return out
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name         string
		pattern      string
		wantLiterals []string
		wantGroups   []string
		wantDigit    bool
		wantComplete bool
		wantImposs   bool
	}{
		{"plain literal", "cat", []string{"cat"}, nil, false, true, false},
		{"unicode literal", "héllo", []string{"héllo"}, nil, false, true, false},
		{"plus splits run", "ca+t", []string{"c", "t"}, nil, false, false, false},
		{"merged plus", "ca+at", []string{"c", "t"}, nil, false, false, false},
		{"optional tail", "dogs?", []string{"dog"}, nil, false, false, false},
		{"star is required class", `a\d*b`, []string{"a", "b"}, nil, true, false, false},
		{"optional digit", `a\d?b`, []string{"a", "b"}, nil, false, false, false},
		{"start anchor", "^abc", []string{"abc"}, nil, false, false, false},
		{"end anchor splits", "ab$cd", []string{"ab", "cd"}, nil, false, false, false},
		{"positive group", "x[abc]y", []string{"x", "y"}, []string{"abc"}, false, false, false},
		{"optional group", "[abc]?", nil, nil, false, false, false},
		{"negative group", "[^abc]", nil, nil, false, false, false},
		{"empty group", "a[]", []string{"a"}, nil, false, false, true},
		{"word class", `\w+`, nil, nil, false, false, false},
		{"empty pattern", "", nil, nil, false, false, false},
		{"only anchors", "^$", nil, nil, false, false, false},
		{"unclosed bracket literal", "[ab", []string{"[ab"}, nil, false, true, false},
		{"unknown escape literal", `\s`, []string{`\s`}, nil, false, true, false},
		{"dot is a literal", "foobar.oba", []string{"foobar.oba"}, nil, false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := New(DefaultConfig()).Extract([]rune(tt.pattern))
			if err != nil {
				t.Fatalf("Extract(%q) error = %v", tt.pattern, err)
			}
			if got := literalStrings(req.Literals); !reflect.DeepEqual(got, tt.wantLiterals) {
				t.Errorf("literals = %q, want %q", got, tt.wantLiterals)
			}
			var groups []string
			for _, g := range req.Groups {
				groups = append(groups, string(g))
			}
			if !reflect.DeepEqual(groups, tt.wantGroups) {
				t.Errorf("groups = %q, want %q", groups, tt.wantGroups)
			}
			if req.Digit != tt.wantDigit {
				t.Errorf("Digit = %v, want %v", req.Digit, tt.wantDigit)
			}
			if req.IsComplete() != tt.wantComplete {
				t.Errorf("IsComplete() = %v, want %v", req.IsComplete(), tt.wantComplete)
			}
			if req.Impossible != tt.wantImposs {
				t.Errorf("Impossible = %v, want %v", req.Impossible, tt.wantImposs)
			}
		})
	}
}

func TestExtractLimits(t *testing.T) {
	t.Run("long run is split", func(t *testing.T) {
		config := DefaultConfig()
		config.MaxLiteralLen = 4
		req, err := New(config).Extract([]rune("abcdefghij"))
		if err != nil {
			t.Fatal(err)
		}
		want := []string{"abcd", "efgh", "ij"}
		if got := literalStrings(req.Literals); !reflect.DeepEqual(got, want) {
			t.Errorf("literals = %q, want %q", got, want)
		}
		if req.IsComplete() {
			t.Error("split run must not be complete")
		}
	})

	t.Run("short runs dropped", func(t *testing.T) {
		config := DefaultConfig()
		config.MinLiteralLen = 3
		req, err := New(config).Extract([]rune(`ab\dcdef`))
		if err != nil {
			t.Fatal(err)
		}
		want := []string{"cdef"}
		if got := literalStrings(req.Literals); !reflect.DeepEqual(got, want) {
			t.Errorf("literals = %q, want %q", got, want)
		}
	})

	t.Run("complete literal kept below minimum", func(t *testing.T) {
		config := DefaultConfig()
		config.MinLiteralLen = 3
		req, err := New(config).Extract([]rune("ab"))
		if err != nil {
			t.Fatal(err)
		}
		if !req.IsComplete() {
			t.Error("IsComplete() = false, want true")
		}
	})

	t.Run("max literals", func(t *testing.T) {
		config := DefaultConfig()
		config.MaxLiterals = 2
		req, err := New(config).Extract([]rune(`aaaa\dbbb\dcc\dd`))
		if err != nil {
			t.Fatal(err)
		}
		want := []string{"aaaa", "bbb"}
		if got := literalStrings(req.Literals); !reflect.DeepEqual(got, want) {
			t.Errorf("literals = %q, want %q", got, want)
		}
	})

	t.Run("large group skipped", func(t *testing.T) {
		config := DefaultConfig()
		config.MaxGroupSize = 2
		req, err := New(config).Extract([]rune("[abc][de]"))
		if err != nil {
			t.Fatal(err)
		}
		if len(req.Groups) != 1 || string(req.Groups[0]) != "de" {
			t.Errorf("groups = %q, want [de]", req.Groups)
		}
	})
}

func TestExtractMalformed(t *testing.T) {
	for _, pattern := range []string{`\`, `abc\`, `a+\`, `^$\`} {
		_, err := New(DefaultConfig()).Extract([]rune(pattern))
		if !errors.Is(err, syntax.ErrMalformedPattern) {
			t.Errorf("Extract(%q) error = %v, want ErrMalformedPattern", pattern, err)
		}
	}
}

func TestRequirementsIsEmpty(t *testing.T) {
	var nilReq *Requirements
	if !nilReq.IsEmpty() {
		t.Error("nil requirements must be empty")
	}
	if nilReq.IsComplete() {
		t.Error("nil requirements must not be complete")
	}

	req, err := New(DefaultConfig()).Extract([]rune(`[^a]\w?`))
	if err != nil {
		t.Fatal(err)
	}
	if !req.IsEmpty() {
		t.Errorf("requirements of [^a]\\w? = %+v, want empty", req)
	}
}
