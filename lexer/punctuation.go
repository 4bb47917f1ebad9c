package lexer

import "github.com/unleashy/weald/token"

// lexPunctuation scans a single- or two-character punctuation token,
// greedily preferring the two-character spelling when the lookahead
// matches one of the combined forms. A lone '&' is Invalid: Weald has no
// single-ampersand operator.
func (l *lexer) lexPunctuation() {
	start := l.cur.NewMark()
	a, _ := l.cur.Peek()
	l.cur.Next()

	if b, ok := l.cur.Peek(); ok && b < 128 {
		if tag, ok := token.TwoCharPunct(byte(a), byte(b)); ok {
			l.cur.Next()
			l.push(token.Token{Tag: tag, Loc: l.cur.Locate(start)})
			return
		}
	}

	if a == '&' {
		loc := l.cur.Locate(start)
		l.push(token.Token{Tag: token.Invalid, Text: "'&' is not a valid token on its own", Loc: loc})
		l.errorf("syntax/invalid-token", "'&' is not a valid token on its own", loc)
		return
	}

	if tag, ok := token.SingleCharPunct(byte(a)); ok {
		l.push(token.Token{Tag: tag, Loc: l.cur.Locate(start)})
		return
	}

	l.lexInvalidAt(start, a)
}
