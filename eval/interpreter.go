/*
File    : plox/eval/interpreter.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval is the tree-walking evaluator: it executes an already
// resolved program directly against the AST, one statement and expression
// at a time, using the scope-depth side table the resolver built instead of
// re-deriving bindings dynamically. It sits at the top of the dependency
// stack, above token, ast, values, env, and callable, the same layering
// this corpus uses for its own scope -> function -> eval chain.
package eval

import (
	"io"

	"github.com/akashmaji946/plox/ast"
	"github.com/akashmaji946/plox/callable"
	"github.com/akashmaji946/plox/env"
	"github.com/akashmaji946/plox/reporter"
	"github.com/akashmaji946/plox/values"
)

// execResult is how a single statement reports a `return` in flight to its
// caller, without reusing the RuntimeError channel: a return is control
// flow, not a failure, so it gets its own field rather than a sentinel
// error value.
type execResult struct {
	returning bool
	value     values.Value
}

// Interpreter walks a resolved program's statements and expressions,
// mutating the current Environment as it goes. The locals side table
// (built by package resolver) tells it, for each name reference with a
// recorded depth, exactly how many environment frames up that name lives;
// anything absent from locals is looked up in globals.
type Interpreter struct {
	globals     *env.Environment
	environment *env.Environment
	locals      map[int64]int
	stdout      io.Writer
}

// New creates an Interpreter that prints `print` output to stdout and
// resolves name references using locals (the resolver's Locals() table).
// The global environment is seeded with plox's one builtin, clock.
func New(stdout io.Writer, locals map[int64]int) *Interpreter {
	globals := env.New(nil)
	globals.Define("clock", callable.Clock)
	return &Interpreter{
		globals:     globals,
		environment: globals,
		locals:      locals,
		stdout:      stdout,
	}
}

// Interpret runs a full program's top-level statements in order, stopping
// at and returning the first runtime error (if any); the caller (REPL or
// CLI) is responsible for reporting it and setting the sticky flag.
func (i *Interpreter) Interpret(statements []ast.Stmt) *reporter.RuntimeError {
	for _, stmt := range statements {
		result, rerr := i.executeStmt(stmt)
		if rerr != nil {
			return rerr
		}
		if result.returning {
			// a bare top-level `return` is rejected by the resolver, so
			// this should be unreachable for any program that passed
			// resolution; nothing further to do if it somehow occurs.
			return nil
		}
	}
	return nil
}

// ExecuteBlock runs statements in environment, restoring the interpreter's
// previous environment on the way out (including when a runtime error or a
// return unwinds early). It satisfies callable.Interpreter's signature, so
// a Function.Call can run its body without importing package eval. The
// returned Value is non-nil exactly when a `return` was encountered inside
// statements; a nil result means the block ran to completion without one.
func (i *Interpreter) ExecuteBlock(statements []ast.Stmt, environment *env.Environment) (values.Value, *reporter.RuntimeError) {
	previous := i.environment
	i.environment = environment
	defer func() { i.environment = previous }()

	for _, stmt := range statements {
		result, rerr := i.executeStmt(stmt)
		if rerr != nil {
			return nil, rerr
		}
		if result.returning {
			return result.value, nil
		}
	}
	return nil, nil
}
