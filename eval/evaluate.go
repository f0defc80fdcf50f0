/*
File    : plox/eval/evaluate.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/plox/ast"
	"github.com/akashmaji946/plox/callable"
	"github.com/akashmaji946/plox/reporter"
	"github.com/akashmaji946/plox/token"
	"github.com/akashmaji946/plox/values"
)

func (i *Interpreter) evaluate(expr ast.Expr) (values.Value, *reporter.RuntimeError) {
	switch e := expr.(type) {
	case *ast.Literal:
		return literalValue(e.Value), nil

	case *ast.Grouping:
		return i.evaluate(e.Inner)

	case *ast.Unary:
		right, rerr := i.evaluate(e.Right)
		if rerr != nil {
			return nil, rerr
		}
		switch e.Operator.Kind {
		case token.MINUS:
			num, ok := right.(values.Number)
			if !ok {
				return nil, reporter.NewRuntimeError(e.Operator, "operand must be a number")
			}
			return -num, nil
		case token.BANG:
			return values.Boolean(!values.IsTruthy(right)), nil
		}
		panic("eval: unhandled unary operator")

	case *ast.Binary:
		return i.evaluateBinary(e)

	case *ast.Logical:
		left, rerr := i.evaluate(e.Left)
		if rerr != nil {
			return nil, rerr
		}
		if e.Operator.Kind == token.OR {
			if values.IsTruthy(left) {
				return left, nil
			}
		} else {
			if !values.IsTruthy(left) {
				return left, nil
			}
		}
		return i.evaluate(e.Right)

	case *ast.Variable:
		return i.lookUpVariable(e.Name, e)

	case *ast.Assign:
		value, rerr := i.evaluate(e.Value)
		if rerr != nil {
			return nil, rerr
		}
		if distance, ok := i.locals[e.ID()]; ok {
			i.environment.AssignAt(distance, e.Name, value)
		} else if rerr := i.globals.Assign(e.Name, value); rerr != nil {
			return nil, rerr
		}
		return value, nil

	case *ast.Call:
		return i.evaluateCall(e)

	case *ast.Get:
		object, rerr := i.evaluate(e.Object)
		if rerr != nil {
			return nil, rerr
		}
		instance, ok := object.(*callable.Instance)
		if !ok {
			return nil, reporter.NewRuntimeError(e.Name, "only instances have properties")
		}
		return instance.Get(e.Name)

	case *ast.Set:
		object, rerr := i.evaluate(e.Object)
		if rerr != nil {
			return nil, rerr
		}
		instance, ok := object.(*callable.Instance)
		if !ok {
			return nil, reporter.NewRuntimeError(e.Name, "only instances have fields")
		}
		value, rerr := i.evaluate(e.Value)
		if rerr != nil {
			return nil, rerr
		}
		instance.Set(e.Name, value)
		return value, nil

	case *ast.This:
		return i.lookUpVariable(e.Keyword, e)

	case *ast.Super:
		return i.evaluateSuper(e)

	default:
		panic("eval: unhandled expression type")
	}
}

// literalValue converts a parsed literal (float64, string, bool, or nil,
// exactly the Go types token.NUMBER/STRING/TRUE/FALSE/NIL literals carry)
// into its runtime values.Value representation.
func literalValue(v interface{}) values.Value {
	switch val := v.(type) {
	case nil:
		return values.Nil
	case bool:
		return values.Boolean(val)
	case float64:
		return values.Number(val)
	case string:
		return values.String(val)
	default:
		return values.Nil
	}
}

// lookUpVariable resolves name at the depth the resolver recorded for
// expr's identity, falling back to the global environment for any
// reference the resolver left unrecorded (i.e. a genuinely global name).
func (i *Interpreter) lookUpVariable(name token.Token, expr ast.Expr) (values.Value, *reporter.RuntimeError) {
	if distance, ok := i.locals[expr.ID()]; ok {
		return i.environment.GetAt(distance, name.Lexeme), nil
	}
	return i.globals.Get(name)
}

func (i *Interpreter) evaluateBinary(e *ast.Binary) (values.Value, *reporter.RuntimeError) {
	left, rerr := i.evaluate(e.Left)
	if rerr != nil {
		return nil, rerr
	}
	right, rerr := i.evaluate(e.Right)
	if rerr != nil {
		return nil, rerr
	}

	switch e.Operator.Kind {
	case token.MINUS:
		l, r, rerr := bothNumbers(e.Operator, left, right)
		if rerr != nil {
			return nil, rerr
		}
		return l - r, nil

	case token.SLASH:
		l, r, rerr := bothNumbers(e.Operator, left, right)
		if rerr != nil {
			return nil, rerr
		}
		if r == 0 {
			return nil, reporter.NewRuntimeError(e.Operator, "division by zero")
		}
		return l / r, nil

	case token.STAR:
		l, r, rerr := bothNumbers(e.Operator, left, right)
		if rerr != nil {
			return nil, rerr
		}
		return l * r, nil

	case token.PLUS:
		if ln, lok := left.(values.Number); lok {
			if rn, rok := right.(values.Number); rok {
				return ln + rn, nil
			}
		}
		if ls, lok := left.(values.String); lok {
			if rs, rok := right.(values.String); rok {
				return ls + rs, nil
			}
		}
		return nil, reporter.NewRuntimeError(e.Operator, "operands must be two numbers or two strings")

	case token.GREATER:
		l, r, rerr := bothNumbers(e.Operator, left, right)
		if rerr != nil {
			return nil, rerr
		}
		return values.Boolean(l > r), nil

	case token.GREATER_EQUAL:
		l, r, rerr := bothNumbers(e.Operator, left, right)
		if rerr != nil {
			return nil, rerr
		}
		return values.Boolean(l >= r), nil

	case token.LESS:
		l, r, rerr := bothNumbers(e.Operator, left, right)
		if rerr != nil {
			return nil, rerr
		}
		return values.Boolean(l < r), nil

	case token.LESS_EQUAL:
		l, r, rerr := bothNumbers(e.Operator, left, right)
		if rerr != nil {
			return nil, rerr
		}
		return values.Boolean(l <= r), nil

	case token.EQUAL_EQUAL:
		return values.Boolean(values.Equal(left, right)), nil

	case token.BANG_EQUAL:
		return values.Boolean(!values.Equal(left, right)), nil
	}

	panic("eval: unhandled binary operator")
}

// bothNumbers requires left and right to both be Number, reporting a
// runtime error tied to operator otherwise.
func bothNumbers(operator token.Token, left, right values.Value) (values.Number, values.Number, *reporter.RuntimeError) {
	l, lok := left.(values.Number)
	r, rok := right.(values.Number)
	if !lok || !rok {
		return 0, 0, reporter.NewRuntimeError(operator, "operands must be numbers")
	}
	return l, r, nil
}

func (i *Interpreter) evaluateCall(e *ast.Call) (values.Value, *reporter.RuntimeError) {
	callee, rerr := i.evaluate(e.Callee)
	if rerr != nil {
		return nil, rerr
	}

	args := make([]values.Value, len(e.Args))
	for idx, argExpr := range e.Args {
		arg, rerr := i.evaluate(argExpr)
		if rerr != nil {
			return nil, rerr
		}
		args[idx] = arg
	}

	fn, ok := callee.(callable.Callable)
	if !ok {
		return nil, reporter.NewRuntimeError(e.Paren, "can only call functions and classes")
	}
	if len(args) != fn.Arity() {
		return nil, reporter.NewRuntimeError(e.Paren, "expected %d arguments but got %d", fn.Arity(), len(args))
	}
	return fn.Call(i, args)
}

// evaluateSuper resolves `super.method` by looking up the superclass the
// resolver recorded at e's depth, finding method on it, and binding that
// method to the `this` one frame closer in the same environment chain —
// the instance the enclosing method is currently running against.
func (i *Interpreter) evaluateSuper(e *ast.Super) (values.Value, *reporter.RuntimeError) {
	distance := i.locals[e.ID()]
	superclass := i.environment.GetAt(distance, "super").(*callable.Class)
	instance := i.environment.GetAt(distance-1, "this").(*callable.Instance)

	method := superclass.FindMethod(e.Method.Lexeme)
	if method == nil {
		return nil, reporter.NewRuntimeError(e.Method, "undefined property '%s'", e.Method.Lexeme)
	}
	return method.Bind(instance), nil
}
