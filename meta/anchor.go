package meta

import "github.com/coregx/minire/syntax"

// matchAt reports whether the whole pattern matches input starting exactly
// at offset start.
//
// The cursor pair (pat, in) only moves forward. Each step handles one
// pattern element:
//   - '^' passes iff no rune precedes the cursor or the preceding rune is
//     '\n'; it consumes no input
//   - '$' passes iff the input is exhausted or the current rune is '\n'; it
//     consumes that rune
//   - on exhausted input, a '?' atom is skipped and any other atom fails
//   - otherwise the atom's run is counted; an empty run fails unless the
//     atom is '?'
//
// The preceding rune starts as input[start-1] and is updated after every
// run, so a '^' later in the pattern sees the last consumed rune.
func matchAt(input, pattern []rune, start int) (bool, error) {
	var (
		pat     = 0
		in      = start
		prev    rune
		hasPrev = start > 0
	)
	if hasPrev {
		prev = input[start-1]
	}

	for pat < len(pattern) {
		switch pattern[pat] {
		case '^':
			if hasPrev && prev != '\n' {
				return false, nil
			}
			pat++

		case '$':
			if in < len(input) && input[in] != '\n' {
				return false, nil
			}
			pat++
			if in < len(input) {
				in++
			}

		default:
			atom, err := syntax.ExtractAtom(pattern, pat)
			if err != nil {
				return false, err
			}

			if in >= len(input) {
				if !atom.Quant.Optional() {
					return false, nil
				}
				pat += atom.Width
				continue
			}

			n := countRun(input[in:], atom.Class, atom.Quant)
			if n == 0 && !atom.Quant.Optional() {
				return false, nil
			}
			if n > 0 {
				prev, hasPrev = input[in+n-1], true
			}
			pat += atom.Width
			in += n
		}
	}

	return true, nil
}
