package parser_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wisplang/wisp/ast"
	"github.com/wisplang/wisp/lexer"
	"github.com/wisplang/wisp/parser"
)

func parse(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	toks, err := lexer.New(src).Scan()
	require.NoError(t, err)
	stmts, err := parser.New(toks).Parse()
	require.NoError(t, err)
	return stmts
}

func TestParseVarDeclarationWithoutInitializer(t *testing.T) {
	stmts := parse(t, "var a;")
	require.Len(t, stmts, 1)
	v := stmts[0].(*ast.VarStmt)
	require.Equal(t, "a", v.Name.Lexeme)
	lit, ok := v.Initializer.(*ast.Literal)
	require.True(t, ok)
	require.Nil(t, lit.Value)
}

func TestParsePrecedenceClimbing(t *testing.T) {
	stmts := parse(t, "1 + 2 * 3;")
	exprStmt := stmts[0].(*ast.ExpressionStmt)
	bin := exprStmt.Expression.(*ast.Binary)
	require.Equal(t, "+", bin.Operator.Lexeme)
	require.IsType(t, &ast.Literal{}, bin.Left)
	right := bin.Right.(*ast.Binary)
	require.Equal(t, "*", right.Operator.Lexeme)
}

func TestParseForDesugarsToWhileInBlock(t *testing.T) {
	stmts := parse(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	require.Len(t, stmts, 1)
	outer := stmts[0].(*ast.BlockStmt)
	require.Len(t, outer.Statements, 2)
	require.IsType(t, &ast.VarStmt{}, outer.Statements[0])
	while := outer.Statements[1].(*ast.WhileStmt)
	require.NotNil(t, while.Condition)
	bodyBlock := while.Body.(*ast.BlockStmt)
	require.Len(t, bodyBlock.Statements, 2)
}

func TestParseForOmittedConditionIsTrue(t *testing.T) {
	stmts := parse(t, "for (;;) { }")
	while := stmts[0].(*ast.WhileStmt)
	lit := while.Condition.(*ast.Literal)
	require.Equal(t, true, lit.Value)
}

func TestParseAssignmentRequiresVariableTarget(t *testing.T) {
	toks, err := lexer.New("1 + 2 = 3;").Scan()
	require.NoError(t, err)
	_, err = parser.New(toks).Parse()
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid assignment target.")
}

func TestParseFunctionDeclaration(t *testing.T) {
	stmts := parse(t, "fun add(a, b) { a + b }")
	fn := stmts[0].(*ast.FunctionStmt)
	require.Equal(t, "add", fn.Name.Lexeme)
	require.Len(t, fn.Params, 2)
	require.Len(t, fn.Body, 1)
}

func TestParseCallExpression(t *testing.T) {
	stmts := parse(t, "clock();")
	exprStmt := stmts[0].(*ast.ExpressionStmt)
	call := exprStmt.Expression.(*ast.Call)
	require.Empty(t, call.Arguments)
	require.IsType(t, &ast.Variable{}, call.Callee)
}

func TestParseErrorsAccumulateAndSynchronize(t *testing.T) {
	toks, err := lexer.New("var ; var ; print 1;").Scan()
	require.NoError(t, err)
	_, err = parser.New(toks).Parse()
	require.Error(t, err)
	// One error per bad declaration: synchronize lets parsing reach the second.
	require.Len(t, strings.Split(err.Error(), "\n"), 2)
}

func TestParseErrorOnMissingSemicolonReportsExpectation(t *testing.T) {
	toks, err := lexer.New("print 1").Scan()
	require.NoError(t, err)
	_, err = parser.New(toks).Parse()
	require.Error(t, err)
	require.Contains(t, err.Error(), "expected ';'")
}

func TestParseLogicalShortCircuitNodes(t *testing.T) {
	stmts := parse(t, "a or b; a and b;")
	orExpr := stmts[0].(*ast.ExpressionStmt).Expression.(*ast.Logical)
	require.Equal(t, "or", orExpr.Operator.Lexeme)
	andExpr := stmts[1].(*ast.ExpressionStmt).Expression.(*ast.Logical)
	require.Equal(t, "and", andExpr.Operator.Lexeme)
}
