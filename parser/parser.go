// Package parser turns a token stream into an AST of statements.
//
// The token lookahead, error-accumulation, and synchronize() recovery
// strategy follow github.com/akashmaji946/go-mix/parser (Parser.CurrToken/
// NextToken two-token lookahead, Parser.Errors, Parser.advance/expectNext).
// Where the teacher drives expression parsing from per-token-type function
// tables (UnaryFuncs/BinaryFuncs — a Pratt table), this parser instead
// follows spec.md §4.2's fixed, unambiguous precedence ladder directly:
// one recursive-descent method per precedence level, each calling the
// next-tighter level and folding in its own operator set. This is the
// same technique the Pratt table exists to generalize, specialized to the
// spec's closed grammar.
package parser

import (
	"fmt"
	"strings"

	"github.com/wisplang/wisp/ast"
	"github.com/wisplang/wisp/token"
)

// ParseError is a single parse failure with its offending token's line.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string { return e.Message }

// Parser consumes a token slice and produces statements.
type Parser struct {
	tokens  []token.Token
	current int
	errors  []string
}

// New creates a Parser over the given token stream (already terminated by
// an Eof token, as returned by lexer.Scan).
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse parses the full token stream into top-level statements. If any
// declaration failed to parse, it returns the accumulated errors
// newline-joined instead (spec.md §4.2, §7).
func (p *Parser) Parse() ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	for !p.atEnd() {
		stmt := p.declaration()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	if len(p.errors) > 0 {
		return nil, fmt.Errorf("%s", strings.Join(p.errors, "\n"))
	}
	return stmts, nil
}

// declaration := varDecl | funDecl | statement
func (p *Parser) declaration() ast.Stmt {
	defer func() {
		if r := recover(); r != nil {
			p.synchronize()
		}
	}()

	switch {
	case p.match(token.Var):
		return p.varDeclaration()
	case p.match(token.Fun):
		return p.functionDeclaration("function")
	default:
		return p.statement()
	}
}

// varDecl := "var" IDENT ( "=" expression )? ";"
func (p *Parser) varDeclaration() ast.Stmt {
	name := p.consume(token.Identifier, "expected variable name")

	var initializer ast.Expr = &ast.Literal{Value: nil}
	if p.match(token.Equal) {
		initializer = p.expression()
	}
	p.consume(token.Semicolon, "expected ';' after variable declaration")
	return &ast.VarStmt{Name: name, Initializer: initializer}
}

// funDecl := "fun" IDENT "(" params? ")" block
// params   := IDENT ( "," IDENT )*   (<= 255)
func (p *Parser) functionDeclaration(kind string) ast.Stmt {
	name := p.consume(token.Identifier, "expected "+kind+" name")
	p.consume(token.LeftParen, "expected '(' after "+kind+" name")

	var params []token.Token
	if !p.check(token.RightParen) {
		for {
			if len(params) >= 255 {
				p.errorAt(p.peek(), "can't have more than 255 parameters")
			}
			params = append(params, p.consume(token.Identifier, "expected parameter name"))
			if !p.match(token.Comma) {
				break
			}
		}
	}
	p.consume(token.RightParen, "expected ')' after parameters")
	p.consume(token.LeftBrace, "expected '{' before "+kind+" body")
	body := p.block()
	return &ast.FunctionStmt{Name: name, Params: params, Body: body}
}

// statement := printStmt | block | ifStmt | whileStmt | forStmt | expressionStmt
func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(token.Print):
		return p.printStatement()
	case p.match(token.LeftBrace):
		return &ast.BlockStmt{Statements: p.block()}
	case p.match(token.If):
		return p.ifStatement()
	case p.match(token.While):
		return p.whileStatement()
	case p.match(token.For):
		return p.forStatement()
	default:
		return p.expressionStatement()
	}
}

// printStmt := "print" expression ";"
func (p *Parser) printStatement() ast.Stmt {
	value := p.expression()
	p.consume(token.Semicolon, "expected ';' after value")
	return &ast.PrintStmt{Expression: value}
}

// block := "{" declaration* "}"
func (p *Parser) block() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(token.RightBrace) && !p.atEnd() {
		if stmt := p.declaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	p.consume(token.RightBrace, "expected '}' after block")
	return stmts
}

// ifStmt := "if" "(" expression ")" statement ( "else" statement )?
func (p *Parser) ifStatement() ast.Stmt {
	p.consume(token.LeftParen, "expected '(' after 'if'")
	condition := p.expression()
	p.consume(token.RightParen, "expected ')' after if condition")

	then := p.statement()
	var elseBranch ast.Stmt
	if p.match(token.Else) {
		elseBranch = p.statement()
	}
	return &ast.IfStmt{Condition: condition, Then: then, ElseBranch: elseBranch}
}

// whileStmt := "while" "(" expression ")" statement
func (p *Parser) whileStatement() ast.Stmt {
	p.consume(token.LeftParen, "expected '(' after 'while'")
	condition := p.expression()
	p.consume(token.RightParen, "expected ')' after condition")
	body := p.statement()
	return &ast.WhileStmt{Condition: condition, Body: body}
}

// forStmt desugars `for (init; cond; incr) body` into
// `{ init; while (cond) { body; incr; } }` (spec.md §4.2 "for desugaring").
func (p *Parser) forStatement() ast.Stmt {
	p.consume(token.LeftParen, "expected '(' after 'for'")

	var initializer ast.Stmt
	switch {
	case p.match(token.Semicolon):
		initializer = nil
	case p.match(token.Var):
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition ast.Expr
	if !p.check(token.Semicolon) {
		condition = p.expression()
	}
	p.consume(token.Semicolon, "expected ';' after loop condition")

	var increment ast.Expr
	if !p.check(token.RightParen) {
		increment = p.expression()
	}
	p.consume(token.RightParen, "expected ')' after for clauses")

	body := p.statement()

	if increment != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{body, &ast.ExpressionStmt{Expression: increment}}}
	}
	if condition == nil {
		condition = &ast.Literal{Value: true}
	}
	body = &ast.WhileStmt{Condition: condition, Body: body}

	if initializer != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{initializer, body}}
	}
	return body
}

// expressionStmt := expression ";"
//
// The trailing ";" is optional when the expression is immediately
// followed by a block's closing "}" — mirroring the Rust tail-expression
// convention original_source/ is written in (`{ stmts; expr }`, no
// semicolon on the last line), which is exactly how spec.md §8's own
// end-to-end scenarios write function bodies (e.g. `fun addX(y) { x + y }`).
func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	if p.check(token.RightBrace) {
		p.match(token.Semicolon)
	} else {
		p.consume(token.Semicolon, "expected ';' after expression")
	}
	return &ast.ExpressionStmt{Expression: expr}
}

// expression := assignment
func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment := ( IDENT "=" assignment ) | logic_or
func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(token.Equal) {
		equals := p.previous()
		value := p.assignment()

		if v, ok := expr.(*ast.Variable); ok {
			return &ast.Assign{Name: v.Name, Value: value}
		}
		p.errorAt(equals, "invalid assignment target.")
		return expr
	}
	return expr
}

// logic_or := logic_and ( "or" logic_and )*
func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(token.Or) {
		op := p.previous()
		right := p.and()
		expr = &ast.Logical{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// logic_and := equality ( "and" equality )*
func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(token.And) {
		op := p.previous()
		right := p.equality()
		expr = &ast.Logical{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// equality := comparison ( ("!=" | "==") comparison )*
func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.BangEqual, token.EqualEqual) {
		op := p.previous()
		right := p.comparison()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// comparison := term ( (">"|">="|"<"|"<=") term )*
func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.Greater, token.GreaterEqual, token.Less, token.LessEqual) {
		op := p.previous()
		right := p.term()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// term := factor ( ("+"|"-") factor )*
func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.Plus, token.Minus) {
		op := p.previous()
		right := p.factor()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// factor := unary ( ("/"|"*") unary )*
func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.Slash, token.Star) {
		op := p.previous()
		right := p.unary()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// unary := ("!"|"-") unary | call
func (p *Parser) unary() ast.Expr {
	if p.match(token.Bang, token.Minus) {
		op := p.previous()
		right := p.unary()
		return &ast.Unary{Operator: op, Right: right}
	}
	return p.call()
}

// call := primary ( "(" arguments? ")" )*
func (p *Parser) call() ast.Expr {
	expr := p.primary()
	for p.match(token.LeftParen) {
		expr = p.finishCall(expr)
	}
	return expr
}

// arguments := expression ( "," expression )*   (<= 255)
func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RightParen) {
		for {
			if len(args) >= 255 {
				p.errorAt(p.peek(), "can't have more than 255 arguments")
			}
			args = append(args, p.expression())
			if !p.match(token.Comma) {
				break
			}
		}
	}
	paren := p.consume(token.RightParen, "expected ')' after arguments")
	return &ast.Call{Callee: callee, Paren: paren, Arguments: args}
}

// primary := NUMBER | STRING | "true" | "false" | "nil" | IDENT | "(" expression ")"
func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.False):
		return &ast.Literal{Value: false}
	case p.match(token.True):
		return &ast.Literal{Value: true}
	case p.match(token.Nil):
		return &ast.Literal{Value: nil}
	case p.match(token.Number, token.StringLit):
		return &ast.Literal{Value: p.previous().Literal}
	case p.match(token.Identifier):
		return &ast.Variable{Name: p.previous()}
	case p.match(token.LeftParen):
		expr := p.expression()
		p.consume(token.RightParen, "expected ')' after expression")
		return &ast.Grouping{Expression: expr}
	}
	p.errorAt(p.peek(), "Expected expression")
	panic(&ParseError{Line: p.peek().Line, Message: "Expected expression"})
}

// synchronize discards tokens until just past the next ';' or a token
// that plausibly starts a new statement, per spec.md §4.2 error recovery.
func (p *Parser) synchronize() {
	p.advance()
	for !p.atEnd() {
		if p.previous().Type == token.Semicolon {
			return
		}
		switch p.peek().Type {
		case token.Class, token.Fun, token.Var, token.For, token.If, token.While, token.Print, token.Return:
			return
		}
		p.advance()
	}
}

// --- token-stream primitives, mirroring Parser.advance/expectNext in
// github.com/akashmaji946/go-mix/parser with single-token lookahead. ---

func (p *Parser) match(types ...token.Type) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(t token.Type) bool {
	if p.atEnd() {
		return false
	}
	return p.peek().Type == t
}

func (p *Parser) advance() token.Token {
	if !p.atEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) atEnd() bool {
	return p.peek().Type == token.Eof
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) consume(t token.Type, message string) token.Token {
	if p.check(t) {
		return p.advance()
	}
	p.errorAt(p.peek(), message)
	panic(&ParseError{Line: p.peek().Line, Message: message})
}

func (p *Parser) errorAt(tok token.Token, message string) {
	var where string
	if tok.Type == token.Eof {
		where = " at end"
	} else {
		where = fmt.Sprintf(" at '%s'", tok.Lexeme)
	}
	p.errors = append(p.errors, fmt.Sprintf("[line %d]%s: %s", tok.Line, where, message))
}
