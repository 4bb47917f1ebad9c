// Package parser implements Weald's recursive-descent, Pratt-style
// expression parser: it consumes a complete token stream (as produced by
// package lexer) and produces an ast.Script together with a buffer of
// syntactic diagnostics.
//
// The parser never fails outright. Every syntactically required piece
// that could not be found is replaced with an ast.Missing (or an empty
// ast.Name), so a caller always receives a fully typed tree it can walk
// without nil checks.
package parser

import (
	"github.com/unleashy/weald/ast"
	"github.com/unleashy/weald/problem"
	"github.com/unleashy/weald/source"
	"github.com/unleashy/weald/token"
)

// Parse parses a complete token stream into a Script and a problem buffer.
// tokens must end with a token.End; violating that precondition is a
// programmer error and panics, per the front-end's error strategy for
// precondition failures.
func Parse(tokens []token.Token) (ast.Script, *problem.Buffer) {
	if len(tokens) == 0 || tokens[len(tokens)-1].Tag != token.End {
		panic("parser: token stream must end with token.End")
	}

	p := newParser(tokens)
	script := p.parseScript()
	return script, p.problems
}

// parser holds the mutable state of one parse run: a flattened view of the
// token stream with Newline tokens folded into a per-token flag, a
// breakpoint stack, and the accumulating problem buffer.
type parser struct {
	toks          []token.Token
	newlineBefore []bool
	pos           int
	problems      *problem.Buffer
	breakpoints   []token.Tag
}

func newParser(tokens []token.Token) *parser {
	toks := make([]token.Token, 0, len(tokens))
	newlineBefore := make([]bool, 0, len(tokens))
	pendingNewline := false
	for _, t := range tokens {
		if t.Tag == token.Newline {
			pendingNewline = true
			continue
		}
		toks = append(toks, t)
		newlineBefore = append(newlineBefore, pendingNewline)
		pendingNewline = false
	}

	return &parser{
		toks:          toks,
		newlineBefore: newlineBefore,
		problems:      &problem.Buffer{},
	}
}

func (p *parser) cur() token.Token {
	return p.toks[p.pos]
}

func (p *parser) curTag() token.Tag {
	return p.toks[p.pos].Tag
}

func (p *parser) newlineBeforeCur() bool {
	return p.newlineBefore[p.pos]
}

func (p *parser) check(tag token.Tag) bool {
	return p.curTag() == tag
}

func (p *parser) advance() token.Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

// expect consumes the current token if it has tag, returning it and true;
// otherwise it reports id/message at the current token's location and
// returns the zero Token and false, without advancing.
func (p *parser) expect(tag token.Tag, id, message string) (token.Token, bool) {
	if p.check(tag) {
		return p.advance(), true
	}
	p.errorf(id, message, p.cur().Loc)
	return token.Token{}, false
}

func (p *parser) errorf(id, message string, loc source.Loc) {
	p.problems.Add(id, message, loc)
}

// here returns a zero-length Loc pinned at the current token's start,
// suitable for a Missing node produced because something was absent.
func (p *parser) here() source.Loc {
	return source.Here(p.cur().Loc.Start)
}

// pushBreak introduces a new breakpoint tag, to be popped by the caller
// once the construct it guards has been fully consumed.
func (p *parser) pushBreak(tag token.Tag) {
	p.breakpoints = append(p.breakpoints, tag)
}

func (p *parser) popBreak() {
	p.breakpoints = p.breakpoints[:len(p.breakpoints)-1]
}

// atBreak reports whether the current token is the innermost breakpoint,
// or End, which is always an implicit breakpoint.
func (p *parser) atBreak() bool {
	if p.check(token.End) {
		return true
	}
	if len(p.breakpoints) == 0 {
		return false
	}
	return p.curTag() == p.breakpoints[len(p.breakpoints)-1]
}
