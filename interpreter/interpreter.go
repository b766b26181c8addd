// Package interpreter walks the AST against a lexically-scoped
// environment chain, performing side effects (print) and mutations.
//
// The walker shape — one method per node variant dispatched through
// ast.Accept, a single mutable "current environment" pointer swapped on
// block/call entry and restored on exit, errors that abort the rest of
// the statement list — follows github.com/akashmaji946/go-mix/eval
// (Evaluator.Eval / evalStatements / evalBlockStatement), adapted to the
// smaller value domain and closure semantics spec.md §3/§4.3 specify.
package interpreter

import (
	"fmt"
	"io"
	"os"

	"github.com/wisplang/wisp/ast"
	"github.com/wisplang/wisp/object"
	"github.com/wisplang/wisp/token"
)

// RuntimeError is a single runtime failure, carrying the source line it
// occurred at for diagnostics.
type RuntimeError struct {
	Line    int
	Message string
}

func (e *RuntimeError) Error() string { return e.Message }

// Interpreter holds the single long-lived mutable state described in
// spec.md §5: the global environment and the current environment pointer.
type Interpreter struct {
	globals *object.Environment
	env     *object.Environment
	out     io.Writer
}

// New creates an Interpreter with `clock` defined in its global
// environment and output directed at w (os.Stdout if w is nil).
func New(w io.Writer) *Interpreter {
	if w == nil {
		w = os.Stdout
	}
	globals := object.NewEnvironment(nil)
	it := &Interpreter{globals: globals, env: globals, out: w}
	defineBuiltins(globals)
	return it
}

// Interpret executes statements in order against the interpreter's
// current environment. Any runtime error aborts the remainder of the
// program and is returned (spec.md §4.3, §7).
func (it *Interpreter) Interpret(stmts []ast.Stmt) error {
	for _, stmt := range stmts {
		if _, err := it.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (it *Interpreter) execute(stmt ast.Stmt) (interface{}, error) {
	return stmt.Accept(it)
}

func (it *Interpreter) evaluate(expr ast.Expr) (object.Value, error) {
	v, err := expr.Accept(it)
	if err != nil {
		return nil, err
	}
	return v.(object.Value), nil
}

// --- statement visitors ---

func (it *Interpreter) VisitExpressionStmt(s *ast.ExpressionStmt) (interface{}, error) {
	_, err := it.evaluate(s.Expression)
	return nil, err
}

func (it *Interpreter) VisitPrintStmt(s *ast.PrintStmt) (interface{}, error) {
	v, err := it.evaluate(s.Expression)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(it.out, object.Display(v))
	return nil, nil
}

func (it *Interpreter) VisitVarStmt(s *ast.VarStmt) (interface{}, error) {
	v, err := it.evaluate(s.Initializer)
	if err != nil {
		return nil, err
	}
	it.env.Define(s.Name.Lexeme, v)
	return nil, nil
}

func (it *Interpreter) VisitBlockStmt(s *ast.BlockStmt) (interface{}, error) {
	return nil, it.executeBlock(s.Statements, object.NewEnvironment(it.env))
}

// executeBlock swaps in blockEnv as current, runs stmts, and restores the
// previous environment on every exit path — including errors — per
// spec.md §5 ("it MUST be restored on error paths") and the Block
// invariant in §8.
func (it *Interpreter) executeBlock(stmts []ast.Stmt, blockEnv *object.Environment) error {
	previous := it.env
	it.env = blockEnv
	defer func() { it.env = previous }()

	for _, stmt := range stmts {
		if _, err := it.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (it *Interpreter) VisitIfStmt(s *ast.IfStmt) (interface{}, error) {
	cond, err := it.evaluate(s.Condition)
	if err != nil {
		return nil, err
	}
	truthy, err := isTruthy(cond)
	if err != nil {
		return nil, err
	}
	if truthy {
		return it.execute(s.Then)
	} else if s.ElseBranch != nil {
		return it.execute(s.ElseBranch)
	}
	return nil, nil
}

func (it *Interpreter) VisitWhileStmt(s *ast.WhileStmt) (interface{}, error) {
	for {
		cond, err := it.evaluate(s.Condition)
		if err != nil {
			return nil, err
		}
		truthy, err := isTruthy(cond)
		if err != nil {
			return nil, err
		}
		if !truthy {
			return nil, nil
		}
		if _, err := it.execute(s.Body); err != nil {
			return nil, err
		}
	}
}

func (it *Interpreter) VisitFunctionStmt(s *ast.FunctionStmt) (interface{}, error) {
	fn := it.makeFunction(s)
	it.env.Define(s.Name.Lexeme, fn)
	return nil, nil
}

// makeFunction builds the Callable for a Function declaration. Per
// spec.md §9 ("Closures without a dedicated closure value"), the
// invocation procedure ignores its own defining environment and instead
// builds its call frame on top of whatever environment the call
// expression supplies as parent — so free variables resolve against the
// *caller's* scope, not the declaring scope.
func (it *Interpreter) makeFunction(decl *ast.FunctionStmt) *object.Callable {
	name := decl.Name.Lexeme
	params := decl.Params
	body := decl.Body

	return &object.Callable{
		Name:  name,
		Arity: len(params),
		Call: func(parent *object.Environment, args []object.Value) (object.Value, error) {
			callEnv := object.NewEnvironment(parent)
			for i, param := range params {
				callEnv.Define(param.Lexeme, args[i])
			}

			previous := it.env
			it.env = callEnv
			defer func() { it.env = previous }()

			return it.callBody(name, body)
		},
	}
}

// callBody executes a function body's statements, per spec.md §4.3: all
// but the last run as ordinary statements, and the final statement must
// be an ExpressionStmt whose value is the call's result.
func (it *Interpreter) callBody(name string, body []ast.Stmt) (object.Value, error) {
	if len(body) == 0 {
		return nil, &RuntimeError{Message: fmt.Sprintf("Callable %s has an empty body", name)}
	}
	for _, stmt := range body[:len(body)-1] {
		if _, err := it.execute(stmt); err != nil {
			return nil, err
		}
	}
	last, ok := body[len(body)-1].(*ast.ExpressionStmt)
	if !ok {
		return nil, &RuntimeError{Message: fmt.Sprintf(
			"Callable %s's final statement must be an expression", name)}
	}
	return it.evaluate(last.Expression)
}

// --- expression visitors ---

func (it *Interpreter) VisitLiteralExpr(e *ast.Literal) (interface{}, error) {
	return literalValue(e.Value), nil
}

func literalValue(v interface{}) object.Value {
	switch val := v.(type) {
	case nil:
		return object.NilValue
	case bool:
		return object.BoolValue(val)
	case float64:
		return object.NewNumber(val)
	case string:
		return &object.String{Value: val}
	default:
		return object.NilValue
	}
}

func (it *Interpreter) VisitGroupingExpr(e *ast.Grouping) (interface{}, error) {
	return it.evaluate(e.Expression)
}

func (it *Interpreter) VisitVariableExpr(e *ast.Variable) (interface{}, error) {
	v, ok := it.env.Get(e.Name.Lexeme)
	if !ok {
		return nil, &RuntimeError{Line: e.Name.Line,
			Message: fmt.Sprintf("Variable '%s' has not been declared", e.Name.Lexeme)}
	}
	return v, nil
}

func (it *Interpreter) VisitAssignExpr(e *ast.Assign) (interface{}, error) {
	v, err := it.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	if !it.env.Assign(e.Name.Lexeme, v) {
		return nil, &RuntimeError{Line: e.Name.Line,
			Message: fmt.Sprintf("variable %s has not been declared", e.Name.Lexeme)}
	}
	return v, nil
}

func (it *Interpreter) VisitUnaryExpr(e *ast.Unary) (interface{}, error) {
	right, err := it.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Type {
	case token.Minus:
		num, ok := right.(*object.Number)
		if !ok {
			return nil, &RuntimeError{Line: e.Operator.Line,
				Message: fmt.Sprintf("minus not implemented for %s", right.Type())}
		}
		return object.NewNumber(-num.Value), nil
	case token.Bang:
		falsy, err := isFalsy(right)
		if err != nil {
			return nil, err
		}
		return object.BoolValue(falsy), nil
	}
	return nil, &RuntimeError{Line: e.Operator.Line, Message: "unknown unary operator " + e.Operator.Lexeme}
}

func (it *Interpreter) VisitLogicalExpr(e *ast.Logical) (interface{}, error) {
	left, err := it.evaluate(e.Left)
	if err != nil {
		return nil, err
	}

	if e.Operator.Type == token.Or {
		truthy, err := isTruthy(left)
		if err != nil {
			return nil, err
		}
		if truthy {
			return left, nil
		}
		return it.evaluate(e.Right)
	}

	// and: the short-circuited result is False, not the raw left value —
	// this is the one place `and`/`or` differ (spec.md §4.3 Logical).
	falsy, err := isFalsy(left)
	if err != nil {
		return nil, err
	}
	if falsy {
		return object.False, nil
	}
	return it.evaluate(e.Right)
}

func (it *Interpreter) VisitBinaryExpr(e *ast.Binary) (interface{}, error) {
	left, err := it.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := it.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	return evalBinary(e.Operator, left, right)
}

func (it *Interpreter) VisitCallExpr(e *ast.Call) (interface{}, error) {
	calleeVal, err := it.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}
	callable, ok := calleeVal.(*object.Callable)
	if !ok {
		return nil, &RuntimeError{Line: e.Paren.Line, Message: "can only call functions"}
	}

	// Arity is checked against the AST's argument count *before* any
	// argument is evaluated (spec.md §4.3 Call; original_source/src/expr.rs
	// checks arity first too) — so a wrong-arity call fails on arity even
	// if evaluating an argument would itself have errored.
	if len(e.Arguments) != callable.Arity {
		return nil, &RuntimeError{Line: e.Paren.Line, Message: fmt.Sprintf(
			"Callable %s expected %d arguments but got %d", callable.Name, callable.Arity, len(e.Arguments))}
	}

	args := make([]object.Value, 0, len(e.Arguments))
	for _, argExpr := range e.Arguments {
		v, err := it.evaluate(argExpr)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	return callable.Call(it.env, args)
}
