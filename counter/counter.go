// Package counter counts occurrences of elements in slices
// and returns them as entries in a deterministic order.
package counter

// CountFunc counts occurrences of each element of the slice for which
// keep returns true, and returns a map of elements to their counts.
// A nil keep counts every element.
func CountFunc[S ~[]E, E comparable](slice S, keep func(E) bool) map[E]int {
	c := make(map[E]int)

	for _, v := range slice {
		if keep != nil && !keep(v) {
			continue
		}
		c[v]++
	}

	return c
}
