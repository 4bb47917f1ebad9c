// Package ast defines the Weald abstract syntax tree: a sealed family of
// expression, statement, and container node types, each carrying the
// source.Loc it was parsed from.
//
// Every expression field that should have been present but could not be
// parsed is filled with a Missing node rather than left nil (an absent
// identifier becomes an empty Name), so that a tree walker never has to
// special-case an absent child.
package ast

import "github.com/unleashy/weald/source"

// Expr is any expression node. The interface is sealed: only types
// declared in this package may implement it.
type Expr interface {
	Loc() source.Loc
	exprNode()
}

// Stmt is any statement node. The interface is sealed: only types
// declared in this package may implement it.
type Stmt interface {
	Loc() source.Loc
	stmtNode()
}

// Name is an identifier as it appears in a declaration, a variable
// reference, or the desugared function name of an operator call. It is
// not itself an Expr.
type Name struct {
	Text string
	Span source.Loc
}

func (n Name) Loc() source.Loc { return n.Span }
