package parser

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/unleashy/weald/ast"
)

// i128Min and i128Max bound the signed 128-bit integer range literals
// must fit within.
var (
	i128Min = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	i128Max = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
)

// parseIntLiteral parses the current Integer token's text into a signed
// 128-bit value, reporting syntax/invalid-int on overflow.
func (p *parser) parseIntLiteral() ast.Expr {
	tok := p.advance()
	text := tok.Text

	neg := false
	body := text
	if len(body) > 0 && (body[0] == '+' || body[0] == '-') {
		neg = body[0] == '-'
		body = body[1:]
	}

	base := 10
	switch {
	case strings.HasPrefix(body, "0x"):
		base = 16
		body = body[2:]
	case strings.HasPrefix(body, "0b"):
		base = 2
		body = body[2:]
	}
	body = strings.ReplaceAll(body, "_", "")

	value, ok := new(big.Int).SetString(body, base)
	if !ok {
		value = big.NewInt(0)
	}
	if neg {
		value.Neg(value)
	}

	if value.Cmp(i128Min) < 0 || value.Cmp(i128Max) > 0 {
		p.errorf("syntax/invalid-int", "integer literal out of range for a 128-bit integer", tok.Loc)
		return ast.Missing{Span: tok.Loc}
	}

	return ast.Int{Value: value, Span: tok.Loc}
}

// parseFloatLiteral parses the current Float token's text as an IEEE-754
// double, reporting syntax/invalid-float if it overflows to infinity.
func (p *parser) parseFloatLiteral() ast.Expr {
	tok := p.advance()
	text := strings.ReplaceAll(tok.Text, "_", "")

	value, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(value, 0) || math.IsNaN(value) {
		p.errorf("syntax/invalid-float", "float literal is not representable", tok.Loc)
	}

	return ast.Float{Value: value, Span: tok.Loc}
}
