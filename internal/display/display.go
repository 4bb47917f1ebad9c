// Package display renders tokens, problems, and AST scripts for
// wealdfront's terminal output. None of this is part of the front-end
// contract; it exists purely to make the CLI demonstration usable.
package display

import (
	"fmt"
	"io"

	"github.com/unleashy/weald/ast"
	"github.com/unleashy/weald/problem"
	"github.com/unleashy/weald/source"
	"github.com/unleashy/weald/token"
)

// Tokens prints one line per token: its location, tag, and text (if any).
func Tokens(out io.Writer, src *source.Source, toks []token.Token) {
	for _, t := range toks {
		rng := source.LineColumnAt(src, t.Loc)
		if t.HasText() {
			fmt.Fprintf(out, "%s %s %q\n", rng.String(), t.Tag, t.Text)
		} else {
			fmt.Fprintf(out, "%s %s\n", rng.String(), t.Tag)
		}
	}
}

// Problems renders a problem buffer's contents with problem.Renderer.
func Problems(out io.Writer, src *source.Source, buf *problem.Buffer) {
	if buf == nil || buf.Empty() {
		return
	}
	r := problem.Renderer{}
	_ = r.Render(out, src, buf.Items())
}

// Script prints a parsed script as an indented tree, for quick inspection.
func Script(out io.Writer, script ast.Script) {
	w := &indentWriter{out: out}
	w.printf("Script")
	w.printStmts(script.Stmts)
}

type indentWriter struct {
	out   io.Writer
	depth int
}

func (w *indentWriter) printf(format string, args ...any) {
	for i := 0; i < w.depth; i++ {
		fmt.Fprint(w.out, "  ")
	}
	fmt.Fprintf(w.out, format, args...)
	fmt.Fprintln(w.out)
}

func (w *indentWriter) printStmts(stmts ast.Stmts) {
	w.depth++
	for _, s := range stmts.Items {
		w.printStmt(s)
	}
	w.depth--
}

func (w *indentWriter) printStmt(s ast.Stmt) {
	switch n := s.(type) {
	case ast.VariableDecl:
		w.printf("VariableDecl %s", n.Name.Text)
		w.depth++
		w.printExpr(n.Value)
		w.depth--
	case ast.StmtExpr:
		w.printf("StmtExpr")
		w.depth++
		w.printExpr(n.Expr)
		w.depth--
	default:
		w.printf("<unknown stmt>")
	}
}

func (w *indentWriter) printExpr(e ast.Expr) {
	switch n := e.(type) {
	case nil:
		w.printf("<nil>")
	case ast.Missing:
		w.printf("Missing")
	case ast.True:
		w.printf("True")
	case ast.False:
		w.printf("False")
	case ast.Int:
		w.printf("Int %s", n.Value.String())
	case ast.Float:
		w.printf("Float %v", n.Value)
	case ast.String:
		w.printf("String %q", n.Interpreted)
	case ast.VariableRead:
		w.printf("VariableRead %s", n.Name.Text)
	case ast.Group:
		w.printf("Group")
		w.depth++
		w.printExpr(n.Body)
		w.depth--
	case ast.Block:
		w.printf("Block")
		w.printStmts(n.Stmts)
	case ast.If:
		w.printf("If")
		w.depth++
		w.printExpr(n.Predicate)
		if n.TernaryThen != nil {
			w.printExpr(n.TernaryThen)
		}
		w.printExpr(n.Then)
		if n.Else != nil {
			w.printExpr(n.Else.Body)
		}
		w.depth--
	case ast.And:
		w.printf("And")
		w.depth++
		w.printExpr(n.Left)
		w.printExpr(n.Right)
		w.depth--
	case ast.Or:
		w.printf("Or")
		w.depth++
		w.printExpr(n.Left)
		w.printExpr(n.Right)
		w.depth--
	case ast.Call:
		w.printf("Call %s", n.Function.Text)
		w.depth++
		w.printExpr(n.Receiver)
		if n.Arguments != nil {
			for _, arg := range n.Arguments.Items {
				w.printExpr(arg)
			}
		}
		w.depth--
	default:
		w.printf("<unknown expr>")
	}
}
