/*
File    : plox/values/value.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package values defines the runtime value types plox programs operate on:
// nil, booleans, numbers, strings, and the shared Value interface that
// callables (functions, classes, builtins) and instances also implement.
// This package intentionally has no dependency on the environment or
// evaluator: it mirrors this corpus's own split between a pure data-type
// package and the scope/closure machinery layered on top of it.
package values

import (
	"strconv"
)

// Kind identifies which concrete Value a variable currently holds.
type Kind string

const (
	NilKind      Kind = "nil"
	BooleanKind  Kind = "bool"
	NumberKind   Kind = "number"
	StringKind   Kind = "string"
	FunctionKind Kind = "function"
	ClassKind    Kind = "class"
	InstanceKind Kind = "instance"
)

// Value is the interface every plox runtime value implements.
type Value interface {
	// Type reports which concrete kind of value this is.
	Type() Kind
	// String renders the value the way `print` displays it.
	String() string
}

// Nil is the singleton plox nil value. There is exactly one: use the Nil
// package variable rather than constructing new instances.
type NilValue struct{}

func (NilValue) Type() Kind     { return NilKind }
func (NilValue) String() string { return "nil" }

// Nil is the single shared nil value.
var Nil Value = NilValue{}

// Boolean wraps a plox boolean.
type Boolean bool

func (b Boolean) Type() Kind     { return BooleanKind }
func (b Boolean) String() string { return strconv.FormatBool(bool(b)) }

// Number wraps a plox double-precision number. String renders it per the
// display rule in spec.md §4.4: a whole-number double prints without its
// fractional part.
type Number float64

func (n Number) Type() Kind { return NumberKind }

func (n Number) String() string {
	f := float64(n)
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// String wraps a plox string.
type String string

func (s String) Type() Kind     { return StringKind }
func (s String) String() string { return string(s) }

// IsTruthy implements plox truthiness: only nil and false are falsy.
func IsTruthy(v Value) bool {
	switch val := v.(type) {
	case NilValue:
		return false
	case Boolean:
		return bool(val)
	default:
		return true
	}
}

// Equal implements plox `==`: nil equals nil, booleans and strings compare
// by content, numbers by IEEE-754 equality, and callables/instances by
// identity (since they are always pointers, Go's == handles that case
// through the default branch's reflect-free identity comparison below).
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case NilValue:
		_, ok := b.(NilValue)
		return ok
	case Boolean:
		bv, ok := b.(Boolean)
		return ok && av == bv
	case Number:
		bv, ok := b.(Number)
		return ok && av == bv
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	default:
		return a == b
	}
}
