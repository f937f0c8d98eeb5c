package charcount

import "errors"

// ErrEmpty is returned by Most and Least when the Result has no entries.
var ErrEmpty = errors.New("charcount: empty result")

// Filter returns the entries for which keep returns true,
// in the same order. The returned Result is never nil.
func (r Result) Filter(keep func(CharCount) bool) Result {
	out := Result{}
	for _, c := range r {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

// Most returns the entries with the highest count.
// It returns ErrEmpty if r is empty.
func (r Result) Most() (Result, error) {
	if len(r) == 0 {
		return nil, ErrEmpty
	}
	return r.FindByCount(r[0].Count), nil
}

// Least returns the entries with the lowest count.
// It returns ErrEmpty if r is empty.
func (r Result) Least() (Result, error) {
	if len(r) == 0 {
		return nil, ErrEmpty
	}
	return r.FindByCount(r[len(r)-1].Count), nil
}

// FindByCount returns the entries counted exactly n times.
func (r Result) FindByCount(n int) Result {
	return r.Filter(func(c CharCount) bool { return c.Count == n })
}

// FindByChar returns the entry for c.
// ok is false if c was not counted.
func (r Result) FindByChar(c rune) (cc CharCount, ok bool) {
	for _, cc = range r {
		if cc.Char == c {
			return cc, true
		}
	}
	return CharCount{}, false
}

// Total returns the sum of all counts in r.
func (r Result) Total() int {
	sum := 0
	for _, c := range r {
		sum += c.Count
	}
	return sum
}

// TopK returns a copy of the first k entries of r, which are the most
// frequent. k is clamped to the length of r.
func (r Result) TopK(k int) Result {
	k = clamp(k, len(r))
	out := make(Result, k)
	copy(out, r[:k])
	return out
}

// BottomK returns a copy of the last k entries of r, which are the least
// frequent, in the same order as r. k is clamped to the length of r.
func (r Result) BottomK(k int) Result {
	k = clamp(k, len(r))
	out := make(Result, k)
	copy(out, r[len(r)-k:])
	return out
}

func clamp(k, n int) int {
	if k < 0 {
		return 0
	}
	if k > n {
		return n
	}
	return k
}
