package meta

import (
	"errors"
	"testing"

	"github.com/coregx/minire/syntax"
)

func TestMatchAt(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		pattern string
		start   int
		want    bool
	}{
		{"literal", "cat", "cat", 0, true},
		{"literal wrong offset", "tcat", "cat", 0, false},
		{"literal right offset", "tcat", "cat", 1, true},
		{"input too short", "ca", "cat", 0, false},
		{"empty pattern", "abc", "", 1, true},

		{"caret at start", "log", "^log", 0, true},
		{"caret mid line", "xlog", "^log", 1, false},
		{"caret after newline", "a\nlog", "^log", 2, true},
		{"caret after consumed newline", "a\nb", "a\n^b", 0, true},
		{"caret after consumed letter", "ab", "a^b", 0, false},

		{"dollar at end", "dog", "dog$", 0, true},
		{"dollar before more text", "dogs", "dog$", 0, false},
		{"dollar consumes newline", "dog\nx", "dog$x", 0, true},
		{"dollar repeated at end", "a", "a$$", 0, true},
		{"dollar then atom at end", "a", "a$b", 0, false},
		{"dollar then optional at end", "a", "a$b?", 0, true},

		{"optional skipped at end", "a", "ab?", 0, true},
		{"optional absent mid line", "color", "colou?r", 0, true},
		{"optional present", "colour", "colou?r", 0, true},
		{"star needs one rune", "ac", "ab*c", 0, false},
		{"star at end of input", "a", "ab*", 0, false},
		{"star takes run", "abbbc", "ab*c", 0, true},
		{"plus merged run", "aab", "a+ab", 0, true},
		{"plus run", "caaat", "ca+t", 0, true},
		{"plus missing", "ct", "ca+t", 0, false},
		{"greedy never gives back", "aaa", "a*a", 0, false},
		{"question greedy never gives back", "a", "a?a", 0, false},
		{"question takes a run", "caat", "ca?t", 0, true},

		{"digit and word", "3 apples", `\d \w+`, 0, true},
		{"word run swallows suffix", "3 apples", `\d \w+s`, 0, false},
		{"positive group", "grey", "gr[ae]y", 0, true},
		{"negative group", "gray", "gr[^ae]y", 0, false},
		{"unclosed group is literal", "a[b", "a[b", 0, true},
		{"unknown escape is backslash", `\s`, `\s`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := matchAt([]rune(tt.input), []rune(tt.pattern), tt.start)
			if err != nil {
				t.Fatalf("matchAt(%q, %q, %d) error = %v", tt.input, tt.pattern, tt.start, err)
			}
			if got != tt.want {
				t.Errorf("matchAt(%q, %q, %d) = %v, want %v", tt.input, tt.pattern, tt.start, got, tt.want)
			}
		})
	}
}

func TestMatchAtMalformed(t *testing.T) {
	_, err := matchAt([]rune("ab"), []rune(`ab\`), 0)
	if !errors.Is(err, syntax.ErrTrailingBackslash) {
		t.Errorf("matchAt error = %v, want ErrTrailingBackslash", err)
	}
}
