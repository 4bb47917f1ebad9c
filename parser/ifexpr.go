package parser

import (
	"github.com/unleashy/weald/ast"
	"github.com/unleashy/weald/source"
	"github.com/unleashy/weald/token"
)

// parseIf parses both surface forms that follow "if <predicate>": the
// block form ("{ ... } else ...") and the ternary form ("? then : else").
func (p *parser) parseIf() ast.Expr {
	kwIf := p.advance().Loc
	predicate := p.parseExprOr("syntax/expected-predicate", "expected a predicate expression after 'if'")

	if p.check(token.PQuestion) {
		return p.finishTernary(kwIf, predicate)
	}
	return p.finishBlockIf(kwIf, predicate)
}

func (p *parser) finishTernary(kwIf source.Loc, predicate ast.Expr) ast.Expr {
	p.advance() // '?'

	ternaryThen := p.parseExprOr("syntax/expected-expr-in-ternary-then", "expected an expression after '?'")
	p.reportIfBlockLike(ternaryThen)

	var elseExpr ast.Expr
	if p.check(token.PColon) {
		p.advance()
		elseExpr = p.parseExprOr("syntax/expected-expr-in-ternary-else", "expected an expression after ':'")
	} else {
		loc := p.here()
		p.errorf("syntax/expected-ternary-else", "expected ':' in ternary 'if' expression", loc)
		elseExpr = ast.Missing{Span: loc}
	}
	p.reportIfBlockLike(elseExpr)

	span := kwIf.Join(elseExpr.Loc())
	return ast.If{
		KwIf:        kwIf,
		Predicate:   predicate,
		TernaryThen: ternaryThen,
		Then:        elseExpr,
		Span:        span,
	}
}

func (p *parser) finishBlockIf(kwIf source.Loc, predicate ast.Expr) ast.Expr {
	var then ast.Expr
	if p.check(token.PBraceOpen) {
		then = p.parseBlock()
	} else {
		loc := p.here()
		p.errorf("syntax/expected-if-body", "expected '{' to start the 'if' body", loc)
		then = ast.Missing{Span: loc}
	}

	var elseNode *ast.Else
	if p.check(token.KwElse) {
		kwElse := p.advance().Loc
		var body ast.Expr
		switch {
		case p.check(token.PBraceOpen):
			body = p.parseBlock()
		case p.check(token.KwIf):
			body = p.parseIf()
		default:
			loc := p.here()
			p.errorf("syntax/expected-else-body", "expected '{' or 'if' after 'else'", loc)
			body = ast.Missing{Span: loc}
		}
		elseNode = &ast.Else{KwElse: kwElse, Body: body, Span: kwElse.Join(body.Loc())}
	}

	span := kwIf.Join(then.Loc())
	if elseNode != nil {
		span = span.Join(elseNode.Loc())
	}

	return ast.If{
		KwIf:      kwIf,
		Predicate: predicate,
		Then:      then,
		Else:      elseNode,
		Span:      span,
	}
}

// reportIfBlockLike reports syntax/block-in-ternary if e contains a Block
// or an If anywhere in its expression tree: neither branch of a ternary
// may contain one.
func (p *parser) reportIfBlockLike(e ast.Expr) {
	if containsBlockOrIf(e) {
		p.errorf("syntax/block-in-ternary", "a ternary 'if' branch may not contain a block or another 'if'", e.Loc())
	}
}

func containsBlockOrIf(e ast.Expr) bool {
	switch n := e.(type) {
	case nil:
		return false
	case ast.Block:
		return true
	case ast.If:
		return true
	case ast.Group:
		return containsBlockOrIf(n.Body)
	case ast.And:
		return containsBlockOrIf(n.Left) || containsBlockOrIf(n.Right)
	case ast.Or:
		return containsBlockOrIf(n.Left) || containsBlockOrIf(n.Right)
	case ast.Call:
		if containsBlockOrIf(n.Receiver) {
			return true
		}
		if n.Arguments != nil {
			for _, arg := range n.Arguments.Items {
				if containsBlockOrIf(arg) {
					return true
				}
			}
		}
		return false
	default:
		return false
	}
}
