// Package ast defines the expression and statement node variants that the
// parser produces and the interpreter walks.
//
// It keeps the teacher's visitor shape (parser/node.go in
// github.com/akashmaji946/go-mix): every node implements Accept, dispatching
// to a typed Visit method on an ExprVisitor/StmtVisitor, rather than a type
// switch in the interpreter. Unlike the teacher's combined Node interface
// (where every expression is also a statement), expressions and statements
// here are kept as separate closed sets, matching spec.md's Data Model.
package ast

import "github.com/wisplang/wisp/token"

// Expr is implemented by every expression node variant.
type Expr interface {
	Accept(v ExprVisitor) (interface{}, error)
}

// ExprVisitor dispatches on the concrete Expr variant.
type ExprVisitor interface {
	VisitLiteralExpr(e *Literal) (interface{}, error)
	VisitVariableExpr(e *Variable) (interface{}, error)
	VisitAssignExpr(e *Assign) (interface{}, error)
	VisitUnaryExpr(e *Unary) (interface{}, error)
	VisitBinaryExpr(e *Binary) (interface{}, error)
	VisitLogicalExpr(e *Logical) (interface{}, error)
	VisitGroupingExpr(e *Grouping) (interface{}, error)
	VisitCallExpr(e *Call) (interface{}, error)
}

// Literal is a constant value baked into the AST at parse time.
type Literal struct {
	Value interface{} // a runtime object.Value
}

func (e *Literal) Accept(v ExprVisitor) (interface{}, error) { return v.VisitLiteralExpr(e) }

// Variable is a bare identifier reference, e.g. `x`.
type Variable struct {
	Name token.Token
}

func (e *Variable) Accept(v ExprVisitor) (interface{}, error) { return v.VisitVariableExpr(e) }

// Assign is `name = value`.
type Assign struct {
	Name  token.Token
	Value Expr
}

func (e *Assign) Accept(v ExprVisitor) (interface{}, error) { return v.VisitAssignExpr(e) }

// Unary is a prefix operator applied to a single operand: `-x`, `!x`.
type Unary struct {
	Operator token.Token
	Right    Expr
}

func (e *Unary) Accept(v ExprVisitor) (interface{}, error) { return v.VisitUnaryExpr(e) }

// Binary is an infix arithmetic/comparison/equality operator.
type Binary struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

func (e *Binary) Accept(v ExprVisitor) (interface{}, error) { return v.VisitBinaryExpr(e) }

// Logical is `and`/`or`, kept distinct from Binary because both
// short-circuit and must not evaluate their right operand eagerly.
type Logical struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

func (e *Logical) Accept(v ExprVisitor) (interface{}, error) { return v.VisitLogicalExpr(e) }

// Grouping is a parenthesized sub-expression, kept as its own node rather
// than collapsed into its inner expression.
type Grouping struct {
	Expression Expr
}

func (e *Grouping) Accept(v ExprVisitor) (interface{}, error) { return v.VisitGroupingExpr(e) }

// Call is a function invocation `callee(args...)`. Paren is kept for
// diagnostic source positions per spec.md §4.2, though nothing currently
// reads it beyond error line numbers.
type Call struct {
	Callee    Expr
	Paren     token.Token
	Arguments []Expr
}

func (e *Call) Accept(v ExprVisitor) (interface{}, error) { return v.VisitCallExpr(e) }
