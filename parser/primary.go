package parser

import (
	"github.com/unleashy/weald/ast"
	"github.com/unleashy/weald/source"
	"github.com/unleashy/weald/token"
)

// parsePrimary parses one of the grammar's expression prefixes: a group,
// a block, an if, a name, a literal, or -- failing all of those -- a
// Missing node.
func (p *parser) parsePrimary(fallbackID, fallbackMessage string) ast.Expr {
	switch p.curTag() {
	case token.PParenOpen:
		return p.parseGroup()
	case token.PBraceOpen:
		return p.parseBlock()
	case token.KwIf:
		return p.parseIf()
	case token.Name:
		tok := p.advance()
		return ast.VariableRead{Name: ast.Name{Text: tok.Text, Span: tok.Loc}, Span: tok.Loc}
	case token.KwTrue:
		loc := p.advance().Loc
		return ast.True{Span: loc}
	case token.KwFalse:
		loc := p.advance().Loc
		return ast.False{Span: loc}
	case token.Integer:
		return p.parseIntLiteral()
	case token.Float:
		return p.parseFloatLiteral()
	case token.String:
		return p.parseStringLiteral()
	case token.Invalid:
		// The lexer already reported this token; don't pile on.
		loc := p.advance().Loc
		return ast.Missing{Span: source.Here(loc.Start)}
	default:
		loc := p.here()
		p.errorf(fallbackID, fallbackMessage, loc)
		return ast.Missing{Span: loc}
	}
}

// parseGroup parses "(" Expr ")".
func (p *parser) parseGroup() ast.Expr {
	opening := p.advance().Loc

	p.pushBreak(token.PParenClose)
	body := p.parseExprOr("syntax/expected-expr-in-group", "expected an expression after '('")
	p.popBreak()

	var closing source.Loc
	if tok, ok := p.expect(token.PParenClose, "syntax/unclosed-group", "unclosed '(' group"); ok {
		closing = tok.Loc
	} else {
		closing = p.here()
	}

	span := opening.Join(closing)
	return ast.Group{Opening: opening, Body: body, Closing: closing, Span: span}
}

// parseBlock parses "{" Stmts "}".
func (p *parser) parseBlock() ast.Expr {
	opening := p.advance().Loc

	p.pushBreak(token.PBraceClose)
	stmts := p.parseStmts()
	p.popBreak()

	var closing source.Loc
	if tok, ok := p.expect(token.PBraceClose, "syntax/unclosed-block", "unclosed '{' block"); ok {
		closing = tok.Loc
	} else {
		closing = p.here()
	}

	span := opening.Join(closing)
	return ast.Block{Opening: opening, Stmts: stmts, Closing: closing, Span: span}
}
