package meta

// scan reports whether pattern matches input at any start offset.
//
// Offsets 0 through len(input)-1 are tried left to right and the first
// success wins. The offset len(input) is never tried, so an empty input
// matches nothing, not even the empty pattern.
func scan(input, pattern []rune) (bool, error) {
	for start := 0; start < len(input); start++ {
		ok, err := matchAt(input, pattern, start)
		if err != nil || ok {
			return ok, err
		}
	}
	return false, nil
}
