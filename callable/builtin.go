/*
File    : plox/callable/builtin.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package callable

import (
	"github.com/akashmaji946/plox/reporter"
	"github.com/akashmaji946/plox/values"
)

// NativeFunc is the Go function shape backing a Builtin.
type NativeFunc func(interp Interpreter, args []values.Value) (values.Value, *reporter.RuntimeError)

// Builtin is a native plox function, such as `clock`. spec.md's stdlib
// non-goal excludes everything beyond this single primitive.
type Builtin struct {
	Name    string
	NumArgs int
	Fn      NativeFunc
}

func (b *Builtin) Type() values.Kind { return values.FunctionKind }

func (b *Builtin) String() string {
	return "<native fn " + b.Name + ">"
}

func (b *Builtin) Arity() int { return b.NumArgs }

func (b *Builtin) Call(interp Interpreter, args []values.Value) (values.Value, *reporter.RuntimeError) {
	return b.Fn(interp, args)
}
