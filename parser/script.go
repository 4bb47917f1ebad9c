package parser

import (
	"fmt"

	"github.com/unleashy/weald/ast"
	"github.com/unleashy/weald/token"
)

func (p *parser) parseScript() ast.Script {
	start := p.cur().Loc

	p.pushBreak(token.End)
	stmts := p.parseStmts()
	p.popBreak()

	if !p.check(token.End) && p.problems.Empty() {
		p.errorf("syntax/expected-end",
			fmt.Sprintf("expected end of input, found %s", p.curTag()), p.cur().Loc)
	}

	span := start.Join(p.cur().Loc)
	return ast.Script{Stmts: stmts, Span: span}
}

// parseStmts parses statements until the current breakpoint, End, or a
// missing separating Newline terminates the list.
func (p *parser) parseStmts() ast.Stmts {
	start := p.here()
	var items []ast.Stmt

	for i := 0; ; i++ {
		if p.atBreak() {
			break
		}
		if i > 0 && !p.newlineBeforeCur() {
			break
		}

		items = append(items, p.parseStmt())
	}

	span := start
	if len(items) > 0 {
		span = items[0].Loc().Join(items[len(items)-1].Loc())
	}
	return ast.Stmts{Items: items, Span: span}
}

func (p *parser) parseStmt() ast.Stmt {
	if p.check(token.KwLet) {
		return p.parseVariableDecl()
	}
	return p.parseStmtExpr()
}

func (p *parser) parseVariableDecl() ast.Stmt {
	kwLet := p.advance().Loc

	var name ast.Name
	if tok, ok := p.expect(token.Name, "syntax/expected-let-name", "expected a name after 'let'"); ok {
		name = ast.Name{Text: tok.Text, Span: tok.Loc}
	} else {
		name = ast.Name{Span: p.here()}
	}

	eq := p.here()
	if tok, ok := p.expect(token.PEqual, "syntax/expected-let-eq", "expected '=' after the name in a 'let' declaration"); ok {
		eq = tok.Loc
	}

	value := p.parseExprOr("syntax/expected-let-expr", "expected an expression after '=' in a 'let' declaration")

	span := kwLet.Join(value.Loc())
	return ast.VariableDecl{KwLet: kwLet, Name: name, Eq: eq, Value: value, Span: span}
}

func (p *parser) parseStmtExpr() ast.Stmt {
	expr := p.parseExprOr("syntax/expected-stmt", "expected a statement")
	return ast.StmtExpr{Expr: expr, Span: expr.Loc()}
}
