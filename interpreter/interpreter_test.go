package interpreter_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wisplang/wisp/interpreter"
	"github.com/wisplang/wisp/lexer"
	"github.com/wisplang/wisp/parser"
)

func run(t *testing.T, src string) (string, error) {
	t.Helper()
	toks, err := lexer.New(src).Scan()
	require.NoError(t, err)
	stmts, err := parser.New(toks).Parse()
	require.NoError(t, err)

	var buf bytes.Buffer
	it := interpreter.New(&buf)
	runErr := it.Interpret(stmts)
	return buf.String(), runErr
}

func lines(out string) []string {
	return strings.Split(strings.TrimRight(out, "\n"), "\n")
}

func TestBlocksAndShadowing(t *testing.T) {
	out, err := run(t, `var a = 1; { var a = 3; print a; } print a;`)
	require.NoError(t, err)
	require.Equal(t, []string{"3", "1"}, lines(out))
}

func TestWhileLoop(t *testing.T) {
	out, err := run(t, `var i = 1; while (i < 2) { print i; i = i + 1; }`)
	require.NoError(t, err)
	require.Equal(t, []string{"1"}, lines(out))
}

func TestForDesugaredFactorialLikeProduct(t *testing.T) {
	src := `var p = 10; print p;
	for (var k = 9; k > 1; k = k - 1) { p = p * k; print p; }`
	out, err := run(t, src)
	require.NoError(t, err)
	require.Equal(t, []string{
		"10", "90", "720", "5040", "30240", "151200", "604800", "1814400", "3628800",
	}, lines(out))
}

func TestStringConcatenationAndComparison(t *testing.T) {
	out, err := run(t, `print "foo" + "bar"; print "a" < "b";`)
	require.NoError(t, err)
	require.Equal(t, []string{`"foobar"`, "true"}, lines(out))
}

func TestFunctionWithCallerEnvironmentClosure(t *testing.T) {
	src := `var x = 10;
	fun addX(y) { x + y }
	print addX(5);`
	out, err := run(t, src)
	require.NoError(t, err)
	require.Equal(t, []string{"15"}, lines(out))
}

func TestArityMismatchIsRuntimeError(t *testing.T) {
	_, err := run(t, `fun f(a, b) { a + b }  f(1);`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Callable f expected 2 arguments but got 1")
}

func TestBlockEnvironmentRestoredOnError(t *testing.T) {
	// The block's own binding of a must not stay visible after the error:
	// a later statement on the same interpreter sees the outer a again.
	var buf bytes.Buffer
	it := interpreter.New(&buf)

	toks, err := lexer.New(`var a = 1; { var a = 2; a + "nope"; }`).Scan()
	require.NoError(t, err)
	stmts, err := parser.New(toks).Parse()
	require.NoError(t, err)
	require.Error(t, it.Interpret(stmts))

	toks, err = lexer.New(`print a;`).Scan()
	require.NoError(t, err)
	stmts, err = parser.New(toks).Parse()
	require.NoError(t, err)
	require.NoError(t, it.Interpret(stmts))
	require.Equal(t, []string{"1"}, lines(buf.String()))
}

func TestOrReturnsOriginalTruthyValueUnchanged(t *testing.T) {
	out, err := run(t, `print "left" or "right";`)
	require.NoError(t, err)
	require.Equal(t, []string{`"left"`}, lines(out))
}

func TestAndShortCircuitsToFalseNotRawValue(t *testing.T) {
	out, err := run(t, `print 0 and "unreached";`)
	require.NoError(t, err)
	require.Equal(t, []string{"false"}, lines(out))
}

func TestAndEvaluatesRightOnlyWhenLeftTruthy(t *testing.T) {
	out, err := run(t, `fun sideEffect() { print "evaluated"; 0; }
	true and sideEffect();`)
	require.NoError(t, err)
	require.Equal(t, []string{`"evaluated"`}, lines(out))
}

func TestUndeclaredVariableReadIsRuntimeError(t *testing.T) {
	_, err := run(t, `print missing;`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Variable 'missing' has not been declared")
}

func TestAssignToUndeclaredVariableIsRuntimeError(t *testing.T) {
	_, err := run(t, `missing = 1;`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "variable missing has not been declared")
}

func TestMinusOnNonNumberIsRuntimeError(t *testing.T) {
	_, err := run(t, `print -"x";`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "minus not implemented for String")
}

func TestMixedStringNumberBinaryIsRuntimeError(t *testing.T) {
	_, err := run(t, `print "a" + 1;`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "is not defined for string and number")
}

func TestBangIsFalsyProjection(t *testing.T) {
	out, err := run(t, `print !nil; print !0; print !1; print !"";`)
	require.NoError(t, err)
	require.Equal(t, []string{"true", "true", "false", "true"}, lines(out))
}

func TestNumberPrintsShortestFloat32RoundTrip(t *testing.T) {
	out, err := run(t, `print 0.1;`)
	require.NoError(t, err)
	require.Equal(t, []string{"0.1"}, lines(out))
}

func TestArityCheckedBeforeArgumentsAreEvaluated(t *testing.T) {
	_, err := run(t, `clock(missing_var);`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Callable clock expected 0 arguments but got 1")
}

func TestClockReturnsStringValue(t *testing.T) {
	out, err := run(t, `print clock();`)
	require.NoError(t, err)
	require.Len(t, lines(out), 1)
	require.True(t, strings.HasPrefix(lines(out)[0], `"`))
}
