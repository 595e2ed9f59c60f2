package object

// Environment is a mapping from identifier name to value, with a link
// to an optional outer environment. Lookup walks outward; Set writes
// only the current frame. A Function value shares (not owns
// exclusively) the environment captured at its definition, so several
// closures may reference the same scope — this is what realizes
// lexical closure.
type Environment struct {
	store map[string]Object
	outer *Environment
}

// NewEnvironment creates a root environment with no outer scope. The
// caller of Eval owns it.
func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]Object)}
}

// NewEnclosedEnvironment creates a child scope of outer. Call frames
// use this so that a function's locals never leak into its caller, and
// lookups that miss the local frame fall through to outer.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	env := NewEnvironment()
	env.outer = outer
	return env
}

// Get looks up name in this environment, then walks outward through
// enclosing scopes until it is found or the chain is exhausted.
func (e *Environment) Get(name string) (Object, bool) {
	obj, ok := e.store[name]
	if !ok && e.outer != nil {
		obj, ok = e.outer.Get(name)
	}
	return obj, ok
}

// Set binds name to val in the current scope only, overwriting any
// prior binding in that same scope. It never reaches into an outer
// scope, matching let's "bind in current scope" semantics.
func (e *Environment) Set(name string, val Object) Object {
	e.store[name] = val
	return val
}
