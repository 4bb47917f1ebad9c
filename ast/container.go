package ast

import "github.com/unleashy/weald/source"

// Stmts is a statement list, as found inside a Block or at the top level
// of a Script.
type Stmts struct {
	Items []Stmt
	Span  source.Loc
}

func (s Stmts) Loc() source.Loc { return s.Span }

// Arguments is a call's argument list.
type Arguments struct {
	Opening source.Loc
	Items   []Expr
	Closing source.Loc
	Span    source.Loc
}

func (a Arguments) Loc() source.Loc { return a.Span }

// Script is the root of a parsed source file.
type Script struct {
	Stmts Stmts
	Span  source.Loc
}

func (s Script) Loc() source.Loc { return s.Span }
