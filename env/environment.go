/*
File    : plox/env/environment.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package env implements the lexical environment chain: a mapping from
// name to runtime value, plus an optional parent forming a linked chain.
// Environments are shared: a closure holds a reference to the environment
// that was current at its creation, and any number of functions or
// instances may observe and mutate the same environment.
package env

import (
	"github.com/akashmaji946/plox/reporter"
	"github.com/akashmaji946/plox/token"
	"github.com/akashmaji946/plox/values"
)

// Environment is one frame of the lexical scope chain. The global
// environment has Parent == nil.
type Environment struct {
	values  map[string]values.Value
	Parent  *Environment
}

// New creates an environment whose parent is enclosing (nil for globals).
func New(enclosing *Environment) *Environment {
	return &Environment{values: make(map[string]values.Value), Parent: enclosing}
}

// Define binds name to value in this environment, overwriting any existing
// binding in this frame only. Used for var/fun/class declarations and for
// binding call arguments and `this`/`super`.
func (e *Environment) Define(name string, value values.Value) {
	e.values[name] = value
}

// Get looks up name by walking up the chain from this environment.
func (e *Environment) Get(name token.Token) (values.Value, *reporter.RuntimeError) {
	if v, ok := e.values[name.Lexeme]; ok {
		return v, nil
	}
	if e.Parent != nil {
		return e.Parent.Get(name)
	}
	return nil, reporter.NewRuntimeError(name, "undefined variable '%s'", name.Lexeme)
}

// Assign updates name's binding in the nearest enclosing environment that
// already defines it, walking up the chain. It never creates a new
// binding; assigning to an undeclared name is a runtime error.
func (e *Environment) Assign(name token.Token, value values.Value) *reporter.RuntimeError {
	if _, ok := e.values[name.Lexeme]; ok {
		e.values[name.Lexeme] = value
		return nil
	}
	if e.Parent != nil {
		return e.Parent.Assign(name, value)
	}
	return reporter.NewRuntimeError(name, "undefined variable '%s'", name.Lexeme)
}

// Ancestor walks exactly distance parent links up from e. The resolver
// guarantees that whenever it records a depth, the environment chain at
// evaluation time has at least that many frames above it.
func (e *Environment) Ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.Parent
	}
	return env
}

// GetAt looks up name exactly `distance` frames up, bypassing the
// walk-until-found search. Used for every reference the resolver has
// recorded a depth for.
func (e *Environment) GetAt(distance int, name string) values.Value {
	return e.Ancestor(distance).values[name]
}

// AssignAt assigns value exactly `distance` frames up. Used for every
// assignment the resolver has recorded a depth for.
func (e *Environment) AssignAt(distance int, name token.Token, value values.Value) {
	e.Ancestor(distance).values[name.Lexeme] = value
}
