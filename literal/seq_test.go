package literal

import "testing"

func TestLiteralBasic(t *testing.T) {
	tests := []struct {
		name     string
		bytes    []byte
		complete bool
		wantLen  int
		wantStr  string
	}{
		{"simple complete literal", []byte("hello"), true, 5, "literal{hello, complete=true}"},
		{"incomplete literal", []byte("test"), false, 4, "literal{test, complete=false}"},
		{"empty literal", []byte{}, true, 0, "literal{, complete=true}"},
		{"multibyte", []byte("é"), false, 2, "literal{é, complete=false}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lit := NewLiteral(tt.bytes, tt.complete)
			if got := lit.Len(); got != tt.wantLen {
				t.Errorf("Len() = %d, want %d", got, tt.wantLen)
			}
			if got := lit.String(); got != tt.wantStr {
				t.Errorf("String() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestSeqNil(t *testing.T) {
	var s *Seq
	if s.Len() != 0 {
		t.Errorf("nil Len() = %d, want 0", s.Len())
	}
	if !s.IsEmpty() {
		t.Error("nil seq must be empty")
	}
	if s.String() != "seq[]" {
		t.Errorf("nil String() = %q", s.String())
	}
}

func TestSeqMinimize(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"empty", nil, nil},
		{"single", []string{"a"}, []string{"a"}},
		{"substring dropped", []string{"oo", "foo"}, []string{"foo"}},
		{"duplicates", []string{"ab", "ab"}, []string{"ab"}},
		{"unrelated kept longest first", []string{"ab", "xyz"}, []string{"xyz", "ab"}},
		{"stable among equal length", []string{"ab", "cd", "efg"}, []string{"efg", "ab", "cd"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSeq()
			for _, l := range tt.in {
				s.Add(NewLiteral([]byte(l), false))
			}
			s.Minimize()
			got := literalStrings(s)
			if len(got) != len(tt.want) {
				t.Fatalf("Minimize() = %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Minimize()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
