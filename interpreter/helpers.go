package interpreter

import (
	"fmt"

	"github.com/wisplang/wisp/object"
	"github.com/wisplang/wisp/token"
)

// isFalsy implements the falsy projection from spec.md §4.3 Truthiness:
// Nil, False, the number 0, and the empty string are falsy; every other
// value is not — except Callable, which cannot be tested at all.
func isFalsy(v object.Value) (bool, error) {
	switch val := v.(type) {
	case *object.Nil:
		return true, nil
	case *object.Boolean:
		return !val.Value, nil
	case *object.Number:
		return val.Value == 0, nil
	case *object.String:
		return val.Value == "", nil
	case *object.Callable:
		return false, &RuntimeError{Message: fmt.Sprintf("Callable %s/%d has no truth value", val.Name, val.Arity)}
	default:
		return false, nil
	}
}

// isTruthy is the inverse projection.
func isTruthy(v object.Value) (bool, error) {
	falsy, err := isFalsy(v)
	if err != nil {
		return false, err
	}
	return !falsy, nil
}

// evalBinary dispatches a Binary expression on (left type, operator,
// right type) per spec.md §4.3 Binary.
func evalBinary(op token.Token, left, right object.Value) (object.Value, error) {
	switch {
	case left.Type() == object.NumberType && right.Type() == object.NumberType:
		return numberBinary(op, left.(*object.Number), right.(*object.Number))
	case left.Type() == object.StringType && right.Type() == object.StringType:
		return stringBinary(op, left.(*object.String), right.(*object.String))
	case left.Type() == object.StringType && right.Type() == object.NumberType,
		left.Type() == object.NumberType && right.Type() == object.StringType:
		return nil, &RuntimeError{Line: op.Line, Message: fmt.Sprintf(
			"'%s' is not defined for string and number", op.Lexeme)}
	default:
		return nil, &RuntimeError{Line: op.Line, Message: fmt.Sprintf(
			"%s is not implemented for operands %s and %s", op.Lexeme, left.Type(), right.Type())}
	}
}

func numberBinary(op token.Token, left, right *object.Number) (object.Value, error) {
	switch op.Type {
	case token.Plus:
		return object.NewNumber(left.Value + right.Value), nil
	case token.Minus:
		return object.NewNumber(left.Value - right.Value), nil
	case token.Star:
		return object.NewNumber(left.Value * right.Value), nil
	case token.Slash:
		return object.NewNumber(left.Value / right.Value), nil
	case token.Greater:
		return object.BoolValue(left.Value > right.Value), nil
	case token.GreaterEqual:
		return object.BoolValue(left.Value >= right.Value), nil
	case token.Less:
		return object.BoolValue(left.Value < right.Value), nil
	case token.LessEqual:
		return object.BoolValue(left.Value <= right.Value), nil
	case token.EqualEqual:
		return object.BoolValue(left.Value == right.Value), nil
	case token.BangEqual:
		return object.BoolValue(left.Value != right.Value), nil
	}
	return nil, &RuntimeError{Line: op.Line, Message: fmt.Sprintf(
		"%s is not implemented for operands Number and Number", op.Lexeme)}
}

func stringBinary(op token.Token, left, right *object.String) (object.Value, error) {
	switch op.Type {
	case token.Plus:
		return &object.String{Value: left.Value + right.Value}, nil
	case token.EqualEqual:
		return object.BoolValue(left.Value == right.Value), nil
	case token.BangEqual:
		return object.BoolValue(left.Value != right.Value), nil
	case token.Greater:
		return object.BoolValue(left.Value > right.Value), nil
	case token.GreaterEqual:
		return object.BoolValue(left.Value >= right.Value), nil
	case token.Less:
		return object.BoolValue(left.Value < right.Value), nil
	case token.LessEqual:
		return object.BoolValue(left.Value <= right.Value), nil
	}
	return nil, &RuntimeError{Line: op.Line, Message: fmt.Sprintf(
		"%s is not implemented for operands String and String", op.Lexeme)}
}
