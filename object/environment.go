package object

// Environment is a lexical scope frame: a name-to-value mapping plus an
// optional link to the enclosing scope. Lookup walks outward from the
// innermost frame; binding (via let-statement evaluation or parameter
// binding on function application) always writes to the current frame, so
// a function's closure sees later mutations of its captured outer scopes
// if it is re-entered.
type Environment struct {
	store map[string]Object
	outer *Environment
}

// NewEnvironment creates a fresh, parentless environment — the global
// scope, or the root of a standalone evaluation.
func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]Object)}
}

// NewEnclosedEnvironment creates a scope nested inside outer. Function
// application uses this for each call's activation frame: the new frame's lookups fall through to outer when a name isn't bound
// locally, but Set only ever writes to the new frame itself.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	env := NewEnvironment()
	env.outer = outer
	return env
}

// Get looks up name in this frame, then recursively in outer frames.
func (e *Environment) Get(name string) (Object, bool) {
	obj, ok := e.store[name]
	if !ok && e.outer != nil {
		return e.outer.Get(name)
	}
	return obj, ok
}

// Set binds name to val in this frame only. There is no assignment to a
// captured outer variable in the surface language, so Set never needs to
// walk the chain the way Get does.
func (e *Environment) Set(name string, val Object) Object {
	e.store[name] = val
	return val
}
