/*
File    : plox/callable/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package callable implements plox's three kinds of invocable values —
// user-defined functions, classes (as constructors), and native builtins —
// plus class instances, which are not themselves callable but are what
// method lookup and field access operate on. It sits above package values
// the same way this corpus's function package sits above its objects
// package: values holds pure data, callable adds the closure/class
// machinery that depends on the environment chain.
package callable

import (
	"fmt"

	"github.com/akashmaji946/plox/ast"
	"github.com/akashmaji946/plox/env"
	"github.com/akashmaji946/plox/reporter"
	"github.com/akashmaji946/plox/values"
)

// Interpreter is the slice of eval.Interpreter's behavior a Function needs
// to run its body. Defining it here (rather than importing package eval)
// avoids a values/callable <-> eval import cycle: eval.Interpreter
// satisfies this interface structurally.
type Interpreter interface {
	ExecuteBlock(statements []ast.Stmt, environment *env.Environment) (values.Value, *reporter.RuntimeError)
}

// Callable is implemented by every invocable Value: Function, *Class, and
// *Builtin.
type Callable interface {
	values.Value
	Arity() int
	Call(interp Interpreter, args []values.Value) (values.Value, *reporter.RuntimeError)
}

// Function is a user-defined function or method value: a declaration plus
// the environment that was current when the function was defined (its
// closure), which is what makes closures observe later mutation of
// captured variables rather than a snapshot.
type Function struct {
	Declaration   *ast.Function
	Closure       *env.Environment
	IsInitializer bool
}

func (f *Function) Type() values.Kind { return values.FunctionKind }

func (f *Function) String() string {
	return fmt.Sprintf("<fn %s>", f.Declaration.Name.Lexeme)
}

// Arity is the function's declared parameter count.
func (f *Function) Arity() int {
	return len(f.Declaration.Params)
}

// Call runs the function body in a fresh environment, child of the
// closure, with each parameter bound to its argument. An initializer
// always yields the bound `this`, regardless of what (if anything) its
// body returns.
func (f *Function) Call(interp Interpreter, args []values.Value) (values.Value, *reporter.RuntimeError) {
	callEnv := env.New(f.Closure)
	for i, param := range f.Declaration.Params {
		callEnv.Define(param.Lexeme, args[i])
	}

	result, rerr := interp.ExecuteBlock(f.Declaration.Body, callEnv)
	if rerr != nil {
		return nil, rerr
	}

	if f.IsInitializer {
		return f.Closure.GetAt(0, "this"), nil
	}
	if result == nil {
		return values.Nil, nil
	}
	return result, nil
}

// Bind returns a new function value whose closure extends this function's
// closure with `this` bound to instance, implementing method dispatch: the
// bound copy resolves `this` one frame closer than the unbound method.
func (f *Function) Bind(instance *Instance) *Function {
	boundEnv := env.New(f.Closure)
	boundEnv.Define("this", instance)
	return &Function{Declaration: f.Declaration, Closure: boundEnv, IsInitializer: f.IsInitializer}
}
