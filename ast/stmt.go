package ast

import "github.com/unleashy/weald/source"

// StmtExpr is an expression used as a statement.
type StmtExpr struct {
	Expr Expr
	Span source.Loc
}

func (s StmtExpr) Loc() source.Loc { return s.Span }
func (StmtExpr) stmtNode()         {}

// VariableDecl is a "let Name = Value" declaration.
type VariableDecl struct {
	KwLet source.Loc
	Name  Name
	Eq    source.Loc
	Value Expr
	Span  source.Loc
}

func (s VariableDecl) Loc() source.Loc { return s.Span }
func (VariableDecl) stmtNode()         {}
