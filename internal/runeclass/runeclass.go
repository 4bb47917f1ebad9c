// Package runeclass implements the character-level predicates the lexer
// dispatches on: whitespace, newlines, punctuation, digit families, the
// forbidden control/surrogate/line-separator set, and the name-start/
// continue/medial/final classes used by the identifier grammar.
package runeclass

import (
	"unicode/utf16"

	"github.com/unleashy/weald/internal/unicodetab"
)

const (
	leftToRightMark rune = '‎'
	rightToLeftMark rune = '‏'

	nextLine       rune = ''
	lineSeparator  rune = ' '
	paraSeparator  rune = ' '
)

// IsWhitespace reports whether r is a non-newline space character accepted
// between tokens: space, tab, or one of the two bidi marks.
func IsWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', leftToRightMark, rightToLeftMark:
		return true
	default:
		return false
	}
}

// IsNewline reports whether r is a line feed or carriage return.
func IsNewline(r rune) bool {
	return r == '\n' || r == '\r'
}

// IsIgnorable reports whether r is whitespace or a newline.
func IsIgnorable(r rune) bool {
	return IsWhitespace(r) || IsNewline(r)
}

// IsBidiMark reports whether r is one of the two bidirectional marks that
// are otherwise classified as whitespace, but which additionally need
// special handling when they appear adjacent to a name.
func IsBidiMark(r rune) bool {
	return r == leftToRightMark || r == rightToLeftMark
}

// IsForbidden reports whether r is disallowed anywhere in source text
// outside of an escape sequence: control characters that aren't ignorable,
// the Unicode line/paragraph separators, and lone surrogate halves.
func IsForbidden(r rune) bool {
	if IsIgnorable(r) {
		return false
	}
	switch {
	case r == nextLine || r == lineSeparator || r == paraSeparator:
		return true
	case utf16.IsSurrogate(r):
		return true
	case r < 0x20:
		return true
	case r == 0x7f:
		return true
	case r >= 0x80 && r <= 0x9f:
		return true
	default:
		return false
	}
}

// ForbiddenKind classifies a forbidden rune for the purpose of selecting an
// appropriate diagnostic message.
type ForbiddenKind int

const (
	// ForbiddenNone means the rune was not forbidden.
	ForbiddenNone ForbiddenKind = iota
	// ForbiddenLineSeparator is U+0085, U+2028, or U+2029.
	ForbiddenLineSeparator
	// ForbiddenSpaceLike is a control character that behaves like
	// whitespace in most fonts (form feed or vertical tab) but is not
	// accepted as such by Weald. The Unicode space separators (category Zs)
	// are not forbidden runes and are never classified as this kind.
	ForbiddenSpaceLike
	// ForbiddenControl is any other forbidden control character.
	ForbiddenControl
	// ForbiddenSurrogate is an unpaired UTF-16 surrogate half.
	ForbiddenSurrogate
)

// Classify returns how r is forbidden, or ForbiddenNone if it is not.
func Classify(r rune) ForbiddenKind {
	switch {
	case !IsForbidden(r):
		return ForbiddenNone
	case r == nextLine || r == lineSeparator || r == paraSeparator:
		return ForbiddenLineSeparator
	case r == '\f' || r == '\v':
		return ForbiddenSpaceLike
	case utf16.IsSurrogate(r):
		return ForbiddenSurrogate
	default:
		return ForbiddenControl
	}
}

// punctuationSet is the full set of ASCII runes usable as standalone
// punctuation tokens, per the data model's PPunctuation rune set.
const punctuationSet = "!()[]{}*\\&#%`^|~$+-,;:?.@/<=>"

// IsPunctuation reports whether r is one of Weald's ASCII punctuation
// characters.
func IsPunctuation(r rune) bool {
	if r > 127 {
		return false
	}
	for i := 0; i < len(punctuationSet); i++ {
		if rune(punctuationSet[i]) == r {
			return true
		}
	}
	return false
}

// IsNameStart reports whether r may begin a name.
func IsNameStart(r rune) bool {
	return unicodetab.IsNameStart(r)
}

// IsNameContinue reports whether r may continue a name.
func IsNameContinue(r rune) bool {
	return unicodetab.IsNameContinue(r)
}

// IsNameMedial reports whether r is the single allowed name-internal
// separator, a hyphen.
func IsNameMedial(r rune) bool {
	return r == '-'
}

// IsNameFinal reports whether r is an allowed name-terminating suffix
// character.
func IsNameFinal(r rune) bool {
	return r == '?' || r == '!'
}

// IsNameChar reports whether r can appear anywhere within a name: as a
// continuation, a medial, or a final character.
func IsNameChar(r rune) bool {
	return IsNameContinue(r) || IsNameMedial(r) || IsNameFinal(r)
}

// IsDecimalDigit reports whether r is an ASCII decimal digit.
func IsDecimalDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsHexDigit reports whether r is an ASCII hexadecimal digit.
func IsHexDigit(r rune) bool {
	return IsDecimalDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// IsBinaryDigit reports whether r is '0' or '1'.
func IsBinaryDigit(r rune) bool {
	return r == '0' || r == '1'
}

// IsSign reports whether r is a leading sign character.
func IsSign(r rune) bool {
	return r == '+' || r == '-'
}

// IsNumberStart reports whether r can begin a number literal: a sign or a
// decimal digit.
func IsNumberStart(r rune) bool {
	return IsSign(r) || IsDecimalDigit(r)
}
