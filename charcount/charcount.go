// Package charcount computes character-frequency statistics over text.
//
// Count turns a string into a Result: one CharCount per distinct rune
// accepted by a Predicate, sorted by descending count and then by
// ascending code point. The order is total, so the same text and
// predicate always produce the same Result.
//
// Results can be queried without going back to the text:
//
//	r := charcount.CountAll("Hello world!")
//	most, _ := r.Most()        // ['l': 3]
//	o := r.FindByCount(2)      // ['o': 2]
//	h, ok := r.FindByChar('H') // 'H': 1, true
//
// Queries return new Results and never modify their receiver,
// so they can be chained freely.
package charcount

import (
	"fmt"

	"go.lepak.sg/charcount/counter"
)

// CharCount is the number of times Char was counted.
type CharCount struct {
	Char  rune
	Count int
}

func (c CharCount) String() string {
	return fmt.Sprintf("%q: %d", c.Char, c.Count)
}

// Result is a list of CharCounts in descending order of Count.
// Entries with the same Count are in ascending order of Char.
// No two entries have the same Char.
type Result []CharCount

// Count counts each rune of text for which p returns true.
// A nil p counts every rune.
//
// Text is decoded as UTF-8. Bytes that are not valid UTF-8 are counted
// as utf8.RuneError (U+FFFD), one per invalid byte.
//
// The returned Result is never nil.
func Count(text string, p Predicate) Result {
	sorted := counter.Sorted(counter.CountFunc([]rune(text), (func(rune) bool)(p)))

	out := make(Result, len(sorted))
	for i, e := range sorted {
		out[i] = CharCount{
			Char:  e.Element,
			Count: e.Count,
		}
	}

	return out
}

// CountAll counts every rune of text.
func CountAll(text string) Result {
	return Count(text, All)
}

// CountASCII counts the ASCII runes of text.
func CountASCII(text string) Result {
	return Count(text, ASCII)
}

// CountNumeric counts the numeric runes of text.
func CountNumeric(text string) Result {
	return Count(text, Numeric)
}

// CountAlphabetic counts the alphabetic runes of text.
func CountAlphabetic(text string) Result {
	return Count(text, Alphabetic)
}

// CountAlphanumeric counts the alphabetic and numeric runes of text.
func CountAlphanumeric(text string) Result {
	return Count(text, Alphanumeric)
}

// CountWhitespace counts the white space runes of text.
func CountWhitespace(text string) Result {
	return Count(text, Whitespace)
}

// CountNoWhitespace counts every rune of text except ' '.
// See NoWhitespace: tabs, newlines and other white space are counted.
func CountNoWhitespace(text string) Result {
	return Count(text, NoWhitespace)
}

// CountChinese counts the runes of text in the CJK Unified Ideographs block.
func CountChinese(text string) Result {
	return Count(text, Chinese)
}
