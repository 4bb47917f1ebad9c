package lexer

import (
	"golang.org/x/text/unicode/norm"

	"github.com/unleashy/weald/internal/runeclass"
	"github.com/unleashy/weald/token"
)

// lexNameOrKeyword scans a name: NameStart NameContinue* (-NameContinue+)*
// (!|?)?, then normalizes it to NFC and resolves it against the keyword
// table.
func (l *lexer) lexNameOrKeyword() {
	start := l.cur.NewMark()

	l.cur.Next()
	l.cur.NextWhile(runeclass.IsNameContinue)

	for l.cur.CheckRune('-') && l.cur.CheckNext(runeclass.IsNameContinue) {
		l.cur.Next()
		l.cur.NextWhile(runeclass.IsNameContinue)
	}
	if l.cur.CheckRune('-') {
		mark := l.cur.NewMark()
		l.cur.Next()
		l.errorf("syntax/invalid-token", "invalid hyphen placement in name", l.cur.Locate(mark))
	}

	l.cur.MatchFunc(runeclass.IsNameFinal)

	if l.cur.Check(runeclass.IsNameChar) {
		mark := l.cur.NewMark()
		l.cur.NextWhile(runeclass.IsNameChar)
		l.errorf("syntax/invalid-token", "trailing characters after name final", l.cur.Locate(mark))
	}

	if l.cur.Check(runeclass.IsBidiMark) {
		mark := l.cur.NewMark()
		l.cur.Next()
		l.errorf("syntax/invalid-token", "embedded bidirectional mark in name", l.cur.Locate(mark))
	}

	raw := l.cur.Text(start)
	loc := l.cur.Locate(start)
	normalized := norm.NFC.String(raw)
	normalized = l.names.Value(l.names.Intern(normalized))

	if tag, ok := token.Lookup(normalized); ok {
		l.push(token.Token{Tag: tag, Loc: loc})
		return
	}

	l.push(token.Token{Tag: token.Name, Text: normalized, Loc: loc})
}
