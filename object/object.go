// Package object defines the runtime value union and the lexical
// environment chain the evaluator operates over.
//
// The value types mirror github.com/akashmaji946/go-mix/objects: each
// variant is a small struct implementing a shared interface exposing a
// type tag and a display rendering. Callable generalizes the teacher's
// separate Function/Builtin types (function/function.go, std/builtins.go)
// into the single tagged variant spec.md §3 describes: every callable
// (the `clock` builtin and every user-defined function) carries a name,
// an arity, and an invocation procedure over a caller-supplied parent
// environment.
package object

import (
	"fmt"
	"strconv"
)

// Type names a runtime value's kind, returned by Value.Type() and used in
// type-mismatch error messages.
type Type string

const (
	NumberType   Type = "Number"
	StringType   Type = "String"
	BooleanType  Type = "Boolean"
	NilType      Type = "Nil"
	CallableType Type = "Callable"
)

// Value is the interface every runtime value implements.
type Value interface {
	Type() Type
	String() string
}

// Number is a 32-bit float per spec.md §3 ("Number (32-bit float)"); it is
// stored widened to float64, but every value is rounded to float32
// precision on construction (see NewNumber).
type Number struct {
	Value float64
}

func (n *Number) Type() Type { return NumberType }

// String renders the shortest round-trip decimal for the number, per
// spec.md §6 ("Numbers: shortest round-trip decimal"), always in plain
// decimal notation, never exponent form. Formatting must use
// bitSize 32, not 64: n.Value is always a float32 value widened to
// float64 (see NewNumber), so formatting at 64 bits would print the full
// float64 expansion of that float32 (e.g. "0.10000000149011612" instead
// of "0.1").
func (n *Number) String() string {
	return strconv.FormatFloat(n.Value, 'f', -1, 32)
}

// NewNumber constructs a Number rounded to float32 precision, matching
// spec.md §3's 32-bit float literal payload.
func NewNumber(v float64) *Number {
	return &Number{Value: float64(float32(v))}
}

// String is an owned text value.
type String struct {
	Value string
}

func (s *String) Type() Type { return StringType }

// String renders the raw content; PRINT wraps it in quotes separately
// (spec.md §6: strings render quoted only at the print boundary).
func (s *String) String() string { return s.Value }

// Boolean is true/false.
type Boolean struct {
	Value bool
}

func (b *Boolean) Type() Type { return BooleanType }
func (b *Boolean) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

var (
	True  = &Boolean{Value: true}
	False = &Boolean{Value: false}
)

// BoolValue returns the shared True/False singleton for v.
func BoolValue(v bool) *Boolean {
	if v {
		return True
	}
	return False
}

// Nil is the language's null value.
type Nil struct{}

func (n *Nil) Type() Type     { return NilType }
func (n *Nil) String() string { return "nil" }

// NilValue is the shared Nil singleton.
var NilValue = &Nil{}

// Callable is a runtime value that can appear as the callee of `(...)`:
// either the built-in `clock` or a user-defined function produced by
// executing a Function statement (spec.md §3 "Callables", §4.3 Built-ins).
type Callable struct {
	Name  string
	Arity int
	// Call invokes the callable. parent is the environment the call
	// expression was evaluated in; per spec.md §9 ("Closures without a
	// dedicated closure value") this is deliberately the *caller's*
	// environment, not any environment captured at declaration time.
	Call func(parent *Environment, args []Value) (Value, error)
}

func (c *Callable) Type() Type { return CallableType }
func (c *Callable) String() string {
	return fmt.Sprintf("%s/%d", c.Name, c.Arity)
}

// Equal implements the structural-equality rule from spec.md §3:
// primitives compare by value, and two callables are equal iff they
// share name and arity.
func Equal(a, b Value) bool {
	if a.Type() != b.Type() {
		return false
	}
	switch av := a.(type) {
	case *Number:
		return av.Value == b.(*Number).Value
	case *String:
		return av.Value == b.(*String).Value
	case *Boolean:
		return av.Value == b.(*Boolean).Value
	case *Nil:
		return true
	case *Callable:
		bv := b.(*Callable)
		return av.Name == bv.Name && av.Arity == bv.Arity
	default:
		return false
	}
}

// Display renders v the way `print` writes it to stdout (spec.md §6
// Output surface): strings are quoted, everything else uses Value.String.
func Display(v Value) string {
	if s, ok := v.(*String); ok {
		return "\"" + s.Value + "\""
	}
	return v.String()
}
