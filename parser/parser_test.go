package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unleashy/weald/ast"
	"github.com/unleashy/weald/lexer"
	"github.com/unleashy/weald/parser"
	"github.com/unleashy/weald/source"
)

func parse(t *testing.T, text string) (ast.Script, []string) {
	t.Helper()
	src := source.New("t", text)
	toks, lexProblems := lexer.Tokenize(src)
	require.True(t, lexProblems.Empty(), "unexpected lex problems for %q: %v", text, lexProblems.Items())

	script, problems := parser.Parse(toks)
	ids := make([]string, problems.Len())
	for i, p := range problems.Items() {
		ids[i] = p.Desc.ID
	}
	return script, ids
}

func TestParseEmptyScript(t *testing.T) {
	script, ids := parse(t, "")
	assert.Empty(t, ids)
	assert.Empty(t, script.Stmts.Items)
}

func TestParseVariableDecl(t *testing.T) {
	script, ids := parse(t, "let x = 1")
	require.Empty(t, ids)
	require.Len(t, script.Stmts.Items, 1)

	decl, ok := script.Stmts.Items[0].(ast.VariableDecl)
	require.True(t, ok)
	assert.Equal(t, "x", decl.Name.Text)

	intLit, ok := decl.Value.(ast.Int)
	require.True(t, ok)
	assert.Equal(t, int64(1), intLit.Value.Int64())
}

func TestParseStmtExpr(t *testing.T) {
	script, ids := parse(t, "1 + 2")
	require.Empty(t, ids)
	require.Len(t, script.Stmts.Items, 1)

	stmtExpr, ok := script.Stmts.Items[0].(ast.StmtExpr)
	require.True(t, ok)

	call, ok := stmtExpr.Expr.(ast.Call)
	require.True(t, ok)
	assert.Equal(t, "+", call.Function.Text)
}

func TestBinaryOperatorPrecedence(t *testing.T) {
	// 1 + 2 * 3 must parse as 1 + (2 * 3): the outermost node is '+'.
	script, ids := parse(t, "1 + 2 * 3")
	require.Empty(t, ids)

	stmtExpr := script.Stmts.Items[0].(ast.StmtExpr)
	plus := stmtExpr.Expr.(ast.Call)
	assert.Equal(t, "+", plus.Function.Text)

	_, leftIsInt := plus.Receiver.(ast.Int)
	assert.True(t, leftIsInt)

	mul := plus.Arguments.Items[0].(ast.Call)
	assert.Equal(t, "*", mul.Function.Text)
}

func TestPowerIsRightAssociative(t *testing.T) {
	// 2 ^ 3 ^ 2 must parse as 2 ^ (3 ^ 2).
	script, ids := parse(t, "2 ^ 3 ^ 2")
	require.Empty(t, ids)

	stmtExpr := script.Stmts.Items[0].(ast.StmtExpr)
	outer := stmtExpr.Expr.(ast.Call)
	assert.Equal(t, "^", outer.Function.Text)

	_, leftIsInt := outer.Receiver.(ast.Int)
	assert.True(t, leftIsInt)

	inner, ok := outer.Arguments.Items[0].(ast.Call)
	require.True(t, ok)
	assert.Equal(t, "^", inner.Function.Text)
}

func TestAdditionIsLeftAssociative(t *testing.T) {
	// 1 - 2 - 3 must parse as (1 - 2) - 3.
	script, ids := parse(t, "1 - 2 - 3")
	require.Empty(t, ids)

	stmtExpr := script.Stmts.Items[0].(ast.StmtExpr)
	outer := stmtExpr.Expr.(ast.Call)
	assert.Equal(t, "-", outer.Function.Text)

	_, rightIsInt := outer.Arguments.Items[0].(ast.Int)
	assert.True(t, rightIsInt)

	inner, ok := outer.Receiver.(ast.Call)
	require.True(t, ok)
	assert.Equal(t, "-", inner.Function.Text)
}

func TestUnaryOperatorsStack(t *testing.T) {
	script, ids := parse(t, "- - 1")
	require.Empty(t, ids)

	stmtExpr := script.Stmts.Items[0].(ast.StmtExpr)
	outer := stmtExpr.Expr.(ast.Call)
	assert.Equal(t, "unary -", outer.Function.Text)

	inner, ok := outer.Receiver.(ast.Call)
	require.True(t, ok)
	assert.Equal(t, "unary -", inner.Function.Text)
}

func TestLogicalOperatorsDesugarToDedicatedNodes(t *testing.T) {
	script, ids := parse(t, "true && false")
	require.Empty(t, ids)

	stmtExpr := script.Stmts.Items[0].(ast.StmtExpr)
	and, ok := stmtExpr.Expr.(ast.And)
	require.True(t, ok)
	assert.IsType(t, ast.True{}, and.Left)
	assert.IsType(t, ast.False{}, and.Right)
}

func TestAmbiguousComparisonChainReportsOneProblem(t *testing.T) {
	_, ids := parse(t, "1 == 2 != 3")
	require.Len(t, ids, 1)
	assert.Equal(t, "syntax/ambiguous-expr", ids[0])
}

func TestAmbiguousLogicChainReportsOneProblem(t *testing.T) {
	_, ids := parse(t, "a && b || c")
	require.Len(t, ids, 1)
	assert.Equal(t, "syntax/ambiguous-expr", ids[0])
}

func TestMixedPrecedenceIsNotAmbiguous(t *testing.T) {
	_, ids := parse(t, "1 == 2 && 3 == 4")
	assert.Empty(t, ids)
}

func TestBlockIfExpression(t *testing.T) {
	script, ids := parse(t, "if true { 1 } else { 2 }")
	require.Empty(t, ids)

	stmtExpr := script.Stmts.Items[0].(ast.StmtExpr)
	ifExpr, ok := stmtExpr.Expr.(ast.If)
	require.True(t, ok)
	assert.Nil(t, ifExpr.TernaryThen)
	assert.IsType(t, ast.Block{}, ifExpr.Then)
	require.NotNil(t, ifExpr.Else)
	assert.IsType(t, ast.Block{}, ifExpr.Else.Body)
}

func TestTernaryIfExpression(t *testing.T) {
	script, ids := parse(t, "if true ? 1 : 2")
	require.Empty(t, ids)

	stmtExpr := script.Stmts.Items[0].(ast.StmtExpr)
	ifExpr, ok := stmtExpr.Expr.(ast.If)
	require.True(t, ok)
	require.NotNil(t, ifExpr.TernaryThen)
	assert.IsType(t, ast.Int{}, ifExpr.TernaryThen)
	assert.IsType(t, ast.Int{}, ifExpr.Then)
	assert.Nil(t, ifExpr.Else)
}

func TestBlockInTernaryIsReported(t *testing.T) {
	_, ids := parse(t, "if true ? {} : 1")
	require.Len(t, ids, 1)
	assert.Equal(t, "syntax/block-in-ternary", ids[0])
}

func TestUnclosedGroupReportsProblem(t *testing.T) {
	_, ids := parse(t, "(1 + 2")
	require.Len(t, ids, 1)
	assert.Equal(t, "syntax/unclosed-group", ids[0])
}

func TestUnclosedBlockReportsProblem(t *testing.T) {
	_, ids := parse(t, "{ 1")
	require.Len(t, ids, 1)
	assert.Equal(t, "syntax/unclosed-block", ids[0])
}

func TestIntegerOverflowReportsProblemAndYieldsMissing(t *testing.T) {
	script, ids := parse(t, "170141183460469231731687303715884105728")
	require.Len(t, ids, 1)
	assert.Equal(t, "syntax/invalid-int", ids[0])

	stmtExpr := script.Stmts.Items[0].(ast.StmtExpr)
	assert.IsType(t, ast.Missing{}, stmtExpr.Expr)
}

func TestMissingLetNameProducesMissingButKeepsParsing(t *testing.T) {
	script, ids := parse(t, "let = 1")
	require.Len(t, ids, 1)
	assert.Equal(t, "syntax/expected-let-name", ids[0])

	decl := script.Stmts.Items[0].(ast.VariableDecl)
	assert.Equal(t, "", decl.Name.Text)
	intLit, ok := decl.Value.(ast.Int)
	require.True(t, ok)
	assert.Equal(t, int64(1), intLit.Value.Int64())
}

func TestGroupExpression(t *testing.T) {
	script, ids := parse(t, "(1 + 2) * 3")
	require.Empty(t, ids)

	stmtExpr := script.Stmts.Items[0].(ast.StmtExpr)
	mul := stmtExpr.Expr.(ast.Call)
	assert.Equal(t, "*", mul.Function.Text)

	group, ok := mul.Receiver.(ast.Group)
	require.True(t, ok)
	assert.IsType(t, ast.Call{}, group.Body)
}

func TestMultipleStatementsNeedSeparatingNewline(t *testing.T) {
	script, ids := parse(t, "let x = 1\nlet y = 2")
	require.Empty(t, ids)
	require.Len(t, script.Stmts.Items, 2)
}

func TestStatementsOnSameLineStopTheList(t *testing.T) {
	// No newline between "let x = 1" and the trailing "2": parseStmts
	// just stops, and the leftover token surfaces as expected-end.
	_, ids := parse(t, "let x = 1 2")
	require.Len(t, ids, 1)
	assert.Equal(t, "syntax/expected-end", ids[0])
}
