// Package lexer implements the Weald tokeniser: a single-pass, allocation-
// bounded scan from a source's text to a complete token stream plus a
// buffer of diagnostics, per the front-end's design.
//
// The lexer never aborts on malformed input. Every call to Tokenize
// returns a token slice ending in exactly one token.End, no matter how
// broken the input is; problems describing what went wrong are
// accumulated alongside it.
package lexer

import (
	"github.com/unleashy/weald/internal/intern"
	"github.com/unleashy/weald/internal/runeclass"
	"github.com/unleashy/weald/problem"
	"github.com/unleashy/weald/source"
	"github.com/unleashy/weald/token"
)

const bom rune = '﻿'

// lexer holds the mutable state of one tokenisation run. It is not reused
// across runs: the cursor is its sole mutator for the run's duration.
type lexer struct {
	cur      *Cursor
	tokens   []token.Token
	problems *problem.Buffer
	names    *intern.Table
}

// Tokenize scans src into a complete token stream and a buffer of
// diagnostics. The returned slice always ends with exactly one token.End.
func Tokenize(src *source.Source) ([]token.Token, *problem.Buffer) {
	l := &lexer{
		cur:      NewCursor(src),
		problems: &problem.Buffer{},
		names:    &intern.Table{},
	}
	l.run()
	return l.tokens, l.problems
}

func (l *lexer) push(t token.Token) {
	l.tokens = append(l.tokens, t)
}

func (l *lexer) errorf(id, message string, loc source.Loc) {
	l.problems.Add(id, message, loc)
}

// run executes the Start -> Tokenising -> End state machine.
func (l *lexer) run() {
	l.consumeBOM()
	l.consumeShebang()

	for !l.cur.IsEmpty() {
		l.consumeIgnorableRun()
		if l.cur.IsEmpty() {
			break
		}
		l.dispatch()
	}

	l.push(token.Token{Tag: token.End, Loc: l.cur.LocateHere()})
}

// consumeBOM eats a single leading byte-order mark, if present.
func (l *lexer) consumeBOM() {
	l.cur.Match(bom)
}

// consumeShebang eats a leading "#!" line (up to but not including its
// terminating newline, which the ignorable-run logic will pick up next),
// if the source starts with one.
func (l *lexer) consumeShebang() {
	if !l.cur.CheckString("#!") {
		return
	}
	l.cur.Next()
	l.cur.Next()
	l.cur.NextUntil(runeclass.IsNewline, runeclass.IsForbidden, nil)
}

// consumeIgnorableRun greedily consumes whitespace, line comments, and
// newlines, emitting a single Newline token spanning the whole run iff at
// least one newline was consumed and this isn't the very first thing the
// lexer has produced (a Newline is never the first token of the stream).
func (l *lexer) consumeIgnorableRun() {
	start := l.cur.NewMark()
	sawNewline := false

	for {
		switch {
		case l.cur.Check(runeclass.IsWhitespace):
			l.cur.NextWhile(runeclass.IsWhitespace)
		case l.cur.Check(runeclass.IsNewline):
			l.consumeNewlineRun()
			sawNewline = true
		case l.cur.CheckString("--"):
			l.consumeLineComment()
		default:
			goto done
		}
	}
done:
	if sawNewline && len(l.tokens) > 0 {
		l.push(token.Token{Tag: token.Newline, Loc: l.cur.Locate(start)})
	}
}

// consumeNewlineRun eats one or more consecutive newline characters ("\n",
// "\r", or "\r\n", any number of times in any combination).
func (l *lexer) consumeNewlineRun() {
	for {
		if l.cur.Match('\r') {
			l.cur.Match('\n')
			continue
		}
		if l.cur.Match('\n') {
			continue
		}
		return
	}
}

// consumeLineComment eats a "--" comment through (but not including) the
// next newline or end of input, reporting any forbidden runes found inside
// it.
func (l *lexer) consumeLineComment() {
	l.cur.Next()
	l.cur.Next()
	l.cur.NextUntil(runeclass.IsNewline, runeclass.IsForbidden, func(r rune, loc source.Loc) {
		l.errorf("syntax/invalid-token", forbiddenMessage(r), loc)
	})
}

// dispatch reads the current rune and routes to the appropriate
// sub-lexer, per the Tokenising state's dispatch table.
func (l *lexer) dispatch() {
	r, _ := l.cur.Peek()

	switch {
	case runeclass.IsDecimalDigit(r):
		l.lexNumber()
	case runeclass.IsSign(r) && l.cur.CheckNext(runeclass.IsDecimalDigit):
		l.lexNumber()
	case runeclass.IsNameStart(r):
		l.lexNameOrKeyword()
	case r == '"':
		l.lexStandardString()
	case r == '`':
		l.lexRawString()
	case runeclass.IsPunctuation(r):
		l.lexPunctuation()
	default:
		l.lexInvalid()
	}
}
