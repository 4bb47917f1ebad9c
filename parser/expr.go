package parser

import (
	"github.com/unleashy/weald/ast"
	"github.com/unleashy/weald/source"
	"github.com/unleashy/weald/token"
)

// binOp describes one binary operator's entry in the precedence table:
// its binding power, associativity, and the symbol used to name its
// desugared Call.
type binOp struct {
	power      int
	rightAssoc bool
	symbol     string
}

// binOps is the static tag -> {precedence, associativity, symbol} table
// driving the Pratt loop, ordered low to high: Logic(10) < Cmp(20) <
// Add(30) < Mul(40) < Pow(50). Unary prefixes bind tighter than all of
// these and are handled separately, in parseUnary.
var binOps = map[token.Tag]binOp{
	token.PAndAnd:       {10, false, "&&"},
	token.POrOr:         {10, false, "||"},
	token.PEqualEqual:   {20, false, "=="},
	token.PBangEqual:    {20, false, "!="},
	token.PLess:         {20, false, "<"},
	token.PLessEqual:    {20, false, "<="},
	token.PGreater:      {20, false, ">"},
	token.PGreaterEqual: {20, false, ">="},
	token.PPlus:         {30, false, "+"},
	token.PMinus:        {30, false, "-"},
	token.PStar:         {40, false, "*"},
	token.PSlash:        {40, false, "/"},
	token.PPercent:      {40, false, "%"},
	token.PCaret:        {50, true, "^"},
}

// unaryOps maps a prefix operator tag to the symbol used in its desugared
// "unary X" function name.
var unaryOps = map[token.Tag]string{
	token.PBang:  "!",
	token.PPlus:  "+",
	token.PMinus: "-",
}

// ambiguityGroup returns the operator-ambiguity bucket a binary operator
// tag belongs to ("logic" for && and ||, "cmp" for the six comparisons),
// or "" if it isn't ambiguity-sensitive.
func ambiguityGroup(tag token.Tag) string {
	switch tag {
	case token.PAndAnd, token.POrOr:
		return "logic"
	case token.PEqualEqual, token.PBangEqual, token.PLess, token.PLessEqual, token.PGreater, token.PGreaterEqual:
		return "cmp"
	default:
		return ""
	}
}

const (
	genericExprID  = "syntax/expected-expr"
	genericExprMsg = "expected an expression"
)

// parseExpr parses an expression, falling back to the generic
// "expected an expression" diagnostic if nothing usable is found.
func (p *parser) parseExpr() ast.Expr {
	return p.parseExprOr(genericExprID, genericExprMsg)
}

// parseExprOr parses an expression, reporting id/message instead of the
// generic fallback if the very first token can't start one.
func (p *parser) parseExprOr(id, message string) ast.Expr {
	return p.parseBinExpr(0, id, message)
}

// parseBinExpr is the Pratt precedence-climbing loop. minPower bounds
// which operators this call is allowed to consume; fallbackID/Message are
// threaded through to the single leftmost primary of the whole
// expression only, so every nested right-hand operand uses the generic
// diagnostic instead.
func (p *parser) parseBinExpr(minPower int, fallbackID, fallbackMessage string) ast.Expr {
	left := p.parseUnary(fallbackID, fallbackMessage)

	havePrev := false
	var prevTag token.Tag
	var prevLoc = left.Loc()

	for {
		tag := p.curTag()
		info, ok := binOps[tag]
		if !ok || info.power < minPower {
			break
		}

		opLoc := p.cur().Loc
		p.advance()

		nextMin := info.power
		if !info.rightAssoc {
			nextMin++
		}
		right := p.parseBinExpr(nextMin, genericExprID, genericExprMsg)

		if havePrev {
			if g := ambiguityGroup(tag); g != "" && g == ambiguityGroup(prevTag) {
				p.errorf("syntax/ambiguous-expr",
					"ambiguous mix of operators at the same precedence; add parentheses to clarify",
					prevLoc.Join(opLoc))
			}
		}

		left = p.makeBinNode(tag, info, left, opLoc, right)
		prevTag = tag
		prevLoc = opLoc
		havePrev = true
	}

	return left
}

func (p *parser) makeBinNode(tag token.Tag, info binOp, left ast.Expr, opLoc source.Loc, right ast.Expr) ast.Expr {
	span := left.Loc().Join(right.Loc())
	switch tag {
	case token.PAndAnd:
		return ast.And{Left: left, Op: opLoc, Right: right, Span: span}
	case token.POrOr:
		return ast.Or{Left: left, Op: opLoc, Right: right, Span: span}
	default:
		return ast.Call{
			Receiver: left,
			Function: ast.Name{Text: info.symbol, Span: opLoc},
			Arguments: &ast.Arguments{
				Items: []ast.Expr{right},
				Span:  right.Loc(),
			},
			Span: span,
		}
	}
}

// parseUnary handles the prefix unary operators, which bind tighter than
// every binary operator; it stacks ("- -x" parses fine) by recursing into
// itself before bottoming out at parsePrimary.
func (p *parser) parseUnary(fallbackID, fallbackMessage string) ast.Expr {
	tag := p.curTag()
	symbol, ok := unaryOps[tag]
	if !ok {
		return p.parsePrimary(fallbackID, fallbackMessage)
	}

	opLoc := p.advance().Loc
	operand := p.parseUnary(genericExprID, genericExprMsg)
	span := opLoc.Join(operand.Loc())

	return ast.Call{
		Receiver: operand,
		Function: ast.Name{Text: "unary " + symbol, Span: opLoc},
		Span:     span,
	}
}
