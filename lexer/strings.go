package lexer

import (
	"github.com/unleashy/weald/internal/runeclass"
	"github.com/unleashy/weald/token"
)

// lexStandardString scans a "…" or """…""" literal, interpreting escapes
// along the way (their actual value is computed later, by the parser; the
// lexer only validates their syntax).
func (l *lexer) lexStandardString() {
	start := l.cur.NewMark()
	if l.cur.CheckString(`"""`) {
		l.cur.Next()
		l.cur.Next()
		l.cur.Next()
		l.finishString(start, `"""`, true, false)
		return
	}

	l.cur.Next()
	l.finishString(start, `"`, false, false)
}

// lexRawString scans a `…` or ```…``` literal. Raw strings have no escape
// sequences at all.
func (l *lexer) lexRawString() {
	start := l.cur.NewMark()
	if l.cur.CheckString("```") {
		l.cur.Next()
		l.cur.Next()
		l.cur.Next()
		l.finishString(start, "```", true, true)
		return
	}

	l.cur.Next()
	l.finishString(start, "`", false, true)
}

// finishString consumes a string body up to its closing delimiter,
// handling escapes (unless raw), forbidden runes, and the two failure
// modes (bare newline inside a line string, end of input) shared by all
// four string shapes.
func (l *lexer) finishString(start Mark, closer string, isBlock, isRaw bool) {
	for {
		if l.cur.CheckString(closer) {
			for i := 0; i < len(closer); i++ {
				l.cur.Next()
			}
			loc := l.cur.Locate(start)
			l.push(token.Token{Tag: token.String, Text: l.cur.Text(start), Loc: loc})
			return
		}

		if l.cur.IsEmpty() {
			l.failString(start, "unclosed string literal")
			return
		}

		if !isBlock && l.cur.Check(runeclass.IsNewline) {
			l.failString(start, "newline in string literal")
			return
		}

		if !isRaw && l.cur.CheckRune('\\') {
			l.consumeEscape()
			continue
		}

		r, _ := l.cur.Peek()
		if runeclass.IsForbidden(r) {
			mark := l.cur.NewMark()
			l.cur.Next()
			l.errorf("syntax/invalid-token", forbiddenMessage(r), l.cur.Locate(mark))
			continue
		}

		l.cur.Next()
	}
}

// failString ends a string literal early, emitting a single Invalid token
// and a matching problem both carrying message.
func (l *lexer) failString(start Mark, message string) {
	loc := l.cur.Locate(start)
	l.push(token.Token{Tag: token.Invalid, Text: message, Loc: loc})
	l.errorf("syntax/invalid-token", message, loc)
}

// consumeEscape consumes a backslash and whatever follows it, validating
// the escape's syntax and reporting syntax/invalid-escape for anything
// malformed. It never aborts the enclosing string: scanning always
// resumes right after the (possibly broken) escape.
func (l *lexer) consumeEscape() {
	mark := l.cur.NewMark()
	l.cur.Next() // the backslash

	r, ok := l.cur.Peek()
	if !ok {
		return // the enclosing loop will report unclosed string literal
	}

	switch r {
	case '"', '\\', 'e', 'n', 'r', 't':
		l.cur.Next()
	case 'x':
		l.cur.Next()
		if !l.cur.MatchSeq(2, runeclass.IsHexDigit) {
			l.cur.NextWhile(runeclass.IsHexDigit)
			l.errorf("syntax/invalid-escape", `'\x' escape needs exactly two hex digits`, l.cur.Locate(mark))
		}
	case 'u':
		l.cur.Next()
		if l.cur.Match('{') {
			digits := l.cur.NewMark()
			n := l.cur.NextWhile(runeclass.IsHexDigit)
			if !l.cur.Match('}') {
				l.errorf("syntax/invalid-escape", `unclosed '\u{...}' escape`, l.cur.Locate(mark))
				return
			}
			if n < 1 || n > 6 {
				l.errorf("syntax/invalid-escape", `'\u{...}' escape needs 1 to 6 hex digits`, l.cur.Locate(digits))
			}
		} else if !l.cur.MatchSeq(4, runeclass.IsHexDigit) {
			l.cur.NextWhile(runeclass.IsHexDigit)
			l.errorf("syntax/invalid-escape", `'\u' escape needs exactly four hex digits`, l.cur.Locate(mark))
		}
	case '\n', '\r':
		l.consumeNewlineRun()
		l.cur.NextWhile(runeclass.IsIgnorable)
	default:
		l.cur.Next()
		l.errorf("syntax/invalid-escape", "unknown escape sequence", l.cur.Locate(mark))
	}
}
