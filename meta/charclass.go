package meta

import "github.com/coregx/minire/syntax"

// countRun returns how many leading runes of input satisfy cls under q.
//
// The run is greedy: every quantifier except One takes every consecutive
// matching rune, '?' included, and the count is never given back even if a
// later atom would have matched with fewer. One stops after the first match.
//
// 0 means nothing matched. Whether that fails the atom is up to the caller.
func countRun(input []rune, cls syntax.Class, q syntax.Quantifier) int {
	n := 0
	for _, r := range input {
		if !cls.Matches(r) {
			break
		}
		n++
		if !q.Repeats() {
			break
		}
	}
	return n
}
