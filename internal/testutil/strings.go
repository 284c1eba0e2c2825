package testutil

import "fmt"

// Strings formats each value with its String method. Comparing the
// resulting slices gives short, readable diffs for moves and squares.
func Strings[T fmt.Stringer](values []T) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, v.String())
	}
	return out
}
