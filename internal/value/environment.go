package value

import "fmt"

// Environment is a lexically chained scope (§3 "Environment"). Spin
// identifiers are case-sensitive, so the store is a plain Go map keyed on
// the exact identifier spelling, with no case-folding normalisation.
type Environment struct {
	enclosing *Environment
	values    map[string]Value
	orphans   []Value
}

// NewEnvironment creates a root environment with no enclosing scope.
func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]Value)}
}

// NewEnclosed creates a child scope of e.
func NewEnclosed(e *Environment) *Environment {
	return &Environment{enclosing: e, values: make(map[string]Value)}
}

// Enclosing returns the parent scope, or nil at the root.
func (e *Environment) Enclosing() *Environment { return e.enclosing }

// Define binds name in this frame only. It fails if the name already
// exists in this frame (§3 "define(name, value) fails if the name already
// exists in this frame").
func (e *Environment) Define(name string, v Value) error {
	if _, exists := e.values[name]; exists {
		return fmt.Errorf("%q already defined in this scope", name)
	}
	e.values[name] = v
	return nil
}

// GetValue searches outward from this frame and returns a copy of the
// binding (§3 "getValue(name) searches outward and returns a copy").
func (e *Environment) GetValue(name string) (Value, bool) {
	v, ok := e.GetReference(name)
	if !ok {
		return nil, false
	}
	return v.Copy(), true
}

// GetReference searches outward from this frame and returns the binding
// itself, not a copy (§3 "getReference(name) searches outward and returns
// the binding itself").
func (e *Environment) GetReference(name string) (Value, bool) {
	for env := e; env != nil; env = env.enclosing {
		if v, ok := env.values[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Assign rebinds an existing name, searching outward, without changing
// which frame owns it.
func (e *Environment) Assign(name string, v Value) bool {
	for env := e; env != nil; env = env.enclosing {
		if _, ok := env.values[name]; ok {
			env.values[name] = v
			return true
		}
	}
	return false
}

// Forget removes name from this frame only (§3 "forget(name) removes it
// from this frame only").
func (e *Environment) Forget(name string) {
	delete(e.values, name)
}

// HasLocal reports whether name is bound in this frame only, without
// searching outward — used by `delete` to report a missing binding as an
// error rather than silently no-op.
func (e *Environment) HasLocal(name string) bool {
	_, ok := e.values[name]
	return ok
}

// Unbind deletes the binding and its value unconditionally, searching
// outward (§3 "unbind(name) deletes the binding and its value
// unconditionally").
func (e *Environment) Unbind(name string) {
	for env := e; env != nil; env = env.enclosing {
		if _, ok := env.values[name]; ok {
			delete(env.values, name)
			return
		}
	}
}

// Lose hands an object over to this environment's orphan list, to be
// destroyed when the environment is (§3 "lose(obj) hands an object over to
// the environment's orphan list").
func (e *Environment) Lose(v Value) {
	e.orphans = append(e.orphans, v)
}

// Orphans returns the objects registered via Lose in this frame. The
// interpreter does not read this list at scope exit; no teardown hook runs.
func (e *Environment) Orphans() []Value {
	return e.orphans
}
