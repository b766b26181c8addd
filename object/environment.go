package object

// Environment is one lexical scope frame: a mapping from identifier
// names to runtime values plus an optional enclosing frame, matching
// scope.Scope in github.com/akashmaji946/go-mix/scope. define always
// writes to the innermost frame; assign walks toward globals and
// mutates the first frame that already defines the name; get walks the
// same chain read-only (spec.md §3 Environment invariants).
type Environment struct {
	values    map[string]Value
	enclosing *Environment
}

// NewEnvironment creates a frame whose parent is enclosing (nil for the
// globals frame).
func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{values: make(map[string]Value), enclosing: enclosing}
}

// Define binds name to value in this frame, shadowing any outer binding
// and overwriting any existing binding of the same name in this frame.
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Get looks up name, walking parent-ward until found or the chain ends.
func (e *Environment) Get(name string) (Value, bool) {
	if v, ok := e.values[name]; ok {
		return v, true
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return nil, false
}

// Assign mutates the first frame (starting at e) that already defines
// name. It never creates a new binding; callers should treat a false
// return as "name is undeclared".
func (e *Environment) Assign(name string, value Value) bool {
	if _, ok := e.values[name]; ok {
		e.values[name] = value
		return true
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, value)
	}
	return false
}
