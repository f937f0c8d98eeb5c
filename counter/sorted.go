package counter

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Entry represents an element-count pair.
type Entry[E comparable] struct {
	Element E
	Count   int
}

// Sorted returns the element-count pairs of the counter in descending
// order of count. Elements with the same count are in ascending order,
// so the output for a given counter is always the same.
func Sorted[E constraints.Ordered](ctr map[E]int) []Entry[E] {
	out := make([]Entry[E], 0, len(ctr))
	for el, cnt := range ctr {
		out = append(out, Entry[E]{
			Element: el,
			Count:   cnt,
		})
	}

	// keys of a map are unique, so this is a total order
	// and an unstable sort is fine
	slices.SortFunc(out, func(a, b Entry[E]) bool {
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Element < b.Element
	})

	return out
}
