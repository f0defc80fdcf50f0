/*
File    : plox/callable/class.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package callable

import (
	"fmt"

	"github.com/akashmaji946/plox/reporter"
	"github.com/akashmaji946/plox/token"
	"github.com/akashmaji946/plox/values"
)

// Class is a plox class value: a name, an optional superclass, and an
// insertion-ordered mapping from method name to Function. Insertion order
// isn't load-bearing for lookup (a plain map suffices there) but is kept
// alongside the map as MethodOrder so a future printer/debugger can list
// methods in declaration order.
type Class struct {
	Name        string
	Superclass  *Class
	Methods     map[string]*Function
	MethodOrder []string
}

func (c *Class) Type() values.Kind { return values.ClassKind }

func (c *Class) String() string {
	return fmt.Sprintf("<class %s>", c.Name)
}

// FindMethod looks up name on this class, then walks up the superclass
// chain.
func (c *Class) FindMethod(name string) *Function {
	if m, ok := c.Methods[name]; ok {
		return m
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil
}

// Arity is the arity of the `init` method, or 0 if the class has none.
func (c *Class) Arity() int {
	if init := c.FindMethod("init"); init != nil {
		return init.Arity()
	}
	return 0
}

// Call constructs a new instance, running `init` (if present) against it
// and always yielding the instance itself.
func (c *Class) Call(interp Interpreter, args []values.Value) (values.Value, *reporter.RuntimeError) {
	instance := NewInstance(c)
	if init := c.FindMethod("init"); init != nil {
		if _, rerr := init.Bind(instance).Call(interp, args); rerr != nil {
			return nil, rerr
		}
	}
	return instance, nil
}

// Instance is an object produced by instantiating a Class: the class it
// belongs to, plus a mutable bag of fields.
type Instance struct {
	Class  *Class
	Fields map[string]values.Value
}

// NewInstance creates an instance with no fields set.
func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, Fields: make(map[string]values.Value)}
}

func (i *Instance) Type() values.Kind { return values.InstanceKind }

func (i *Instance) String() string {
	return fmt.Sprintf("<instance %s>", i.Class.Name)
}

// Get reads a property: fields shadow methods, and a method found on the
// class chain is returned bound to this instance.
func (i *Instance) Get(name token.Token) (values.Value, *reporter.RuntimeError) {
	if v, ok := i.Fields[name.Lexeme]; ok {
		return v, nil
	}
	if method := i.Class.FindMethod(name.Lexeme); method != nil {
		return method.Bind(i), nil
	}
	return nil, reporter.NewRuntimeError(name, "undefined property '%s'", name.Lexeme)
}

// Set writes a field, inserting or overwriting.
func (i *Instance) Set(name token.Token, value values.Value) {
	i.Fields[name.Lexeme] = value
}
