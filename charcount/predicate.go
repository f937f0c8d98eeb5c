package charcount

import (
	"unicode"
	"unicode/utf8"
)

// Predicate decides whether a rune is counted.
// It must only look at the rune it is given.
type Predicate func(rune) bool

// All accepts every rune.
func All(rune) bool { return true }

// ASCII accepts runes below U+0080.
func ASCII(r rune) bool { return r < utf8.RuneSelf }

// Numeric accepts runes in the Unicode number categories (Nd, Nl, No).
func Numeric(r rune) bool { return unicode.IsNumber(r) }

// Alphabetic accepts runes with the Unicode Alphabetic property:
// letters, letter numbers and Other_Alphabetic marks.
func Alphabetic(r rune) bool {
	return unicode.In(r, unicode.L, unicode.Nl, unicode.Other_Alphabetic)
}

// Alphanumeric accepts runes that are Alphabetic or Numeric.
func Alphanumeric(r rune) bool { return Alphabetic(r) || Numeric(r) }

// Whitespace accepts runes with the Unicode White_Space property.
func Whitespace(r rune) bool { return unicode.IsSpace(r) }

// NoWhitespace rejects only the space character ' ' (U+0020).
//
// Despite the name, other white space such as '\t' and '\n' is still
// accepted. Existing callers depend on this, so it stays as is;
// use Not(Whitespace) to drop all white space.
func NoWhitespace(r rune) bool { return r != ' ' }

// Chinese accepts runes in the CJK Unified Ideographs block,
// U+4E00 to U+9FFF inclusive.
func Chinese(r rune) bool { return r >= 0x4E00 && r <= 0x9FFF }

// Not accepts the runes that p rejects.
func Not(p Predicate) Predicate {
	return func(r rune) bool { return !p(r) }
}

// And accepts runes accepted by every one of ps.
// With no predicates it accepts everything.
func And(ps ...Predicate) Predicate {
	return func(r rune) bool {
		for _, p := range ps {
			if !p(r) {
				return false
			}
		}
		return true
	}
}

// Or accepts runes accepted by any of ps.
// With no predicates it rejects everything.
func Or(ps ...Predicate) Predicate {
	return func(r rune) bool {
		for _, p := range ps {
			if p(r) {
				return true
			}
		}
		return false
	}
}

// PresetNames returns the names understood by PresetByName.
func PresetNames() []string {
	return []string{
		"all",
		"ascii",
		"numeric",
		"alphabetic",
		"alphanumeric",
		"whitespace",
		"no-whitespace",
		"chinese",
	}
}

// PresetByName returns the preset predicate with the given name.
func PresetByName(name string) (Predicate, bool) {
	switch name {
	case "all":
		return All, true
	case "ascii":
		return ASCII, true
	case "numeric":
		return Numeric, true
	case "alphabetic":
		return Alphabetic, true
	case "alphanumeric":
		return Alphanumeric, true
	case "whitespace":
		return Whitespace, true
	case "no-whitespace":
		return NoWhitespace, true
	case "chinese":
		return Chinese, true
	default:
		return nil, false
	}
}
