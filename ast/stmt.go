package ast

import "github.com/wisplang/wisp/token"

// Stmt is implemented by every statement node variant.
type Stmt interface {
	Accept(v StmtVisitor) (interface{}, error)
}

// StmtVisitor dispatches on the concrete Stmt variant.
type StmtVisitor interface {
	VisitExpressionStmt(s *ExpressionStmt) (interface{}, error)
	VisitPrintStmt(s *PrintStmt) (interface{}, error)
	VisitVarStmt(s *VarStmt) (interface{}, error)
	VisitBlockStmt(s *BlockStmt) (interface{}, error)
	VisitIfStmt(s *IfStmt) (interface{}, error)
	VisitWhileStmt(s *WhileStmt) (interface{}, error)
	VisitFunctionStmt(s *FunctionStmt) (interface{}, error)
}

// ExpressionStmt evaluates an expression purely for its side effects.
type ExpressionStmt struct {
	Expression Expr
}

func (s *ExpressionStmt) Accept(v StmtVisitor) (interface{}, error) {
	return v.VisitExpressionStmt(s)
}

// PrintStmt evaluates an expression and writes its display rendering.
type PrintStmt struct {
	Expression Expr
}

func (s *PrintStmt) Accept(v StmtVisitor) (interface{}, error) { return v.VisitPrintStmt(s) }

// VarStmt declares a variable, binding it in the current environment.
// Initializer is never nil: the parser fills in a Literal(nil) expression
// when the source omits `= expr`.
type VarStmt struct {
	Name        token.Token
	Initializer Expr
}

func (s *VarStmt) Accept(v StmtVisitor) (interface{}, error) { return v.VisitVarStmt(s) }

// BlockStmt introduces a new lexical scope around its statements.
type BlockStmt struct {
	Statements []Stmt
}

func (s *BlockStmt) Accept(v StmtVisitor) (interface{}, error) { return v.VisitBlockStmt(s) }

// IfStmt is `if (cond) then [else elseBranch]`. ElseBranch is nil when
// absent.
type IfStmt struct {
	Condition  Expr
	Then       Stmt
	ElseBranch Stmt
}

func (s *IfStmt) Accept(v StmtVisitor) (interface{}, error) { return v.VisitIfStmt(s) }

// WhileStmt is `while (cond) body`. The parser also desugars `for` loops
// into a WhileStmt wrapped in a BlockStmt — there is no dedicated ForStmt
// node (spec.md §4.2, "for desugaring").
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

func (s *WhileStmt) Accept(v StmtVisitor) (interface{}, error) { return v.VisitWhileStmt(s) }

// FunctionStmt declares a named function, binding a Callable to Name in
// the current environment when executed.
type FunctionStmt struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

func (s *FunctionStmt) Accept(v StmtVisitor) (interface{}, error) { return v.VisitFunctionStmt(s) }
