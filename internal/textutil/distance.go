package textutil

import (
	"errors"
	"fmt"
)

// ErrLengthMismatch reports a Distance call on strings of different lengths.
var ErrLengthMismatch = errors.New("length mismatch")

// Distance returns the number of rune positions where a and b differ.
// It is symmetric and zero only for identical strings.
func Distance(a, b string) (int, error) {
	ra, rb := []rune(a), []rune(b)
	if len(ra) != len(rb) {
		return 0, fmt.Errorf("distance %q/%q: %w", a, b, ErrLengthMismatch)
	}
	diff := 0
	for i := range ra {
		if ra[i] != rb[i] {
			diff++
		}
	}
	return diff, nil
}

// SameLength reports whether a and b have the same rune length.
func SameLength(a, b string) bool {
	return RuneLen(a) == RuneLen(b)
}
