package interpreter

import (
	"strconv"
	"time"

	"github.com/wisplang/wisp/object"
)

// defineBuiltins installs the single built-in the core language exposes.
//
// clock returns the current UNIX time in seconds as a String, not a
// Number — spec.md §9 records this as a near-certain source bug and
// directs a port to preserve rather than silently fix it.
func defineBuiltins(globals *object.Environment) {
	globals.Define("clock", &object.Callable{
		Name:  "clock",
		Arity: 0,
		Call: func(parent *object.Environment, args []object.Value) (object.Value, error) {
			seconds := float64(time.Now().Unix())
			return &object.String{Value: strconv.FormatFloat(seconds, 'f', -1, 64)}, nil
		},
	})
}
