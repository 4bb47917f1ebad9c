package lexer

import (
	"github.com/unleashy/weald/internal/runeclass"
	"github.com/unleashy/weald/token"
)

// lexNumber scans a number literal: an optional sign, a hex/binary/decimal
// digit body, and (for decimal) an optional fractional part and exponent.
// A name character glued onto the end of the literal turns the whole thing
// into a single Invalid token carrying a pointed hint.
func (l *lexer) lexNumber() {
	start := l.cur.NewMark()

	l.cur.MatchFunc(runeclass.IsSign)

	switch {
	case l.cur.CheckString("0x"):
		l.cur.Next()
		l.cur.Next()
		l.consumeDigitGroup(runeclass.IsHexDigit)
	case l.cur.CheckString("0b"):
		l.cur.Next()
		l.cur.Next()
		l.consumeDigitGroup(runeclass.IsBinaryDigit)
	default:
		l.consumeDigitGroup(runeclass.IsDecimalDigit)
		isFloat := false
		if l.cur.CheckRune('.') && l.cur.CheckNext(runeclass.IsDecimalDigit) {
			l.cur.Next()
			l.consumeDigitGroup(runeclass.IsDecimalDigit)
			isFloat = true
		}
		if l.cur.CheckRune('e') {
			mark := l.cur.NewMark()
			l.cur.Next()
			l.cur.MatchFunc(runeclass.IsSign)
			if l.cur.Check(runeclass.IsDecimalDigit) {
				l.consumeDigitGroup(runeclass.IsDecimalDigit)
				isFloat = true
			} else {
				l.cur.pos = uint32(mark)
			}
		}

		if l.cur.Check(runeclass.IsNameChar) {
			l.finishGluedNumber(start)
			return
		}

		loc := l.cur.Locate(start)
		text := l.cur.Text(start)
		if isFloat {
			l.push(token.Token{Tag: token.Float, Text: text, Loc: loc})
		} else {
			l.push(token.Token{Tag: token.Integer, Text: text, Loc: loc})
		}
		return
	}

	if l.cur.Check(runeclass.IsNameChar) {
		l.finishGluedNumber(start)
		return
	}

	l.push(token.Token{Tag: token.Integer, Text: l.cur.Text(start), Loc: l.cur.Locate(start)})
}

// consumeDigitGroup consumes a run of isDigit runes interleaved with
// underscores, each of which must be immediately followed by at least one
// more digit.
func (l *lexer) consumeDigitGroup(isDigit func(rune) bool) {
	l.cur.NextWhile(isDigit)
	for l.cur.CheckRune('_') {
		mark := l.cur.NewMark()
		l.cur.Next()
		if !l.cur.Check(isDigit) {
			l.errorf("syntax/invalid-token", "invalid underscore placement", l.cur.Locate(mark))
			continue
		}
		l.cur.NextWhile(isDigit)
	}
}

// finishGluedNumber consumes the name-character run stuck onto the end of
// a number literal and emits it all as a single Invalid token, hinting at
// the most likely cause.
func (l *lexer) finishGluedNumber(start Mark) {
	r, _ := l.cur.Peek()
	hint := numberGlueHint(r)
	l.cur.NextWhile(runeclass.IsNameChar)

	loc := l.cur.Locate(start)
	l.push(token.Token{Tag: token.Invalid, Text: hint, Loc: loc})
	l.errorf("syntax/invalid-token", hint, loc)
}

func numberGlueHint(r rune) string {
	switch r {
	case 'X':
		return "invalid number: did you mean the lowercase prefix '0x'?"
	case 'B':
		return "invalid number: did you mean the lowercase prefix '0b'?"
	case '-':
		return "invalid number: insert a space before '-' to start a new token"
	case 'e':
		return "invalid number: 'e' starts an exponent, which is missing its digits"
	case 'E':
		return "invalid number: exponents use a lowercase 'e'"
	default:
		return "invalid number: unexpected character after literal"
	}
}
