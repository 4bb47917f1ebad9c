package parser_test

import (
	"strings"
	"testing"

	"github.com/unleashy/weald/internal/display"
	"github.com/unleashy/weald/internal/goldentest"
	"github.com/unleashy/weald/lexer"
	"github.com/unleashy/weald/parser"
	"github.com/unleashy/weald/source"
)

// The fixtures under testdata/ were hand-derived from the parser's AST
// shape and problem.Renderer's actual formatting rules (see DESIGN.md)
// and checked in, rather than left to be silently created on first run.
func TestGoldenScriptDumps(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"let-decl", "let x = 1 + 2"},
		{"precedence", "1 + 2 * 3 ^ 4"},
		{"if-ternary", "if a ? 1 : 2"},
		{"unary-stack", "- - 1"},
		{"integer-overflow", "170141183460469231731687303715884105728"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src := source.New(tc.name, tc.text)
			toks, lexProblems := lexer.Tokenize(src)
			script, parseProblems := parser.Parse(toks)

			var out strings.Builder
			display.Script(&out, script)
			display.Problems(&out, src, lexProblems)
			display.Problems(&out, src, parseProblems)

			goldentest.Check(t, tc.name+".script.txt", out.String())
		})
	}
}
