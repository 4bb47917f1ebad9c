package lexer

import (
	"github.com/unleashy/weald/internal/runeclass"
	"github.com/unleashy/weald/token"
)

// lexInvalid consumes exactly one rune that matched none of the dispatch
// cases and emits an Invalid token describing it.
func (l *lexer) lexInvalid() {
	start := l.cur.NewMark()
	r, _ := l.cur.Peek()
	l.cur.Next()
	l.lexInvalidAt(start, r)
}

// lexInvalidAt emits the Invalid token for a rune already consumed up to
// the cursor's current position, starting at start.
func (l *lexer) lexInvalidAt(start Mark, r rune) {
	loc := l.cur.Locate(start)
	message := forbiddenMessage(r)
	l.push(token.Token{Tag: token.Invalid, Text: message, Loc: loc})
	l.errorf("syntax/invalid-token", message, loc)
}

// forbiddenMessage classifies a rune by Unicode category to produce a
// pointed message, per the forbidden-rune taxonomy: line separators,
// space-like/format controls, other controls, and unpaired surrogates get
// distinct wording.
func forbiddenMessage(r rune) string {
	switch runeclass.Classify(r) {
	case runeclass.ForbiddenLineSeparator:
		return "line separator characters are not allowed in source text"
	case runeclass.ForbiddenSpaceLike:
		return "this space-like character is not allowed here"
	case runeclass.ForbiddenControl:
		return "control characters are not allowed in source text"
	case runeclass.ForbiddenSurrogate:
		return "unpaired surrogate code points are not allowed in source text"
	default:
		return "this character is not valid here"
	}
}
