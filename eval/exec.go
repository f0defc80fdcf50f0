/*
File    : plox/eval/exec.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/plox/ast"
	"github.com/akashmaji946/plox/callable"
	"github.com/akashmaji946/plox/env"
	"github.com/akashmaji946/plox/reporter"
	"github.com/akashmaji946/plox/values"
)

func (i *Interpreter) executeStmt(stmt ast.Stmt) (execResult, *reporter.RuntimeError) {
	switch s := stmt.(type) {
	case *ast.Expression:
		if _, rerr := i.evaluate(s.Expr); rerr != nil {
			return execResult{}, rerr
		}
		return execResult{}, nil

	case *ast.Print:
		value, rerr := i.evaluate(s.Expr)
		if rerr != nil {
			return execResult{}, rerr
		}
		fmt.Fprintln(i.stdout, value.String())
		return execResult{}, nil

	case *ast.Var:
		var value values.Value = values.Nil
		if s.Initializer != nil {
			v, rerr := i.evaluate(s.Initializer)
			if rerr != nil {
				return execResult{}, rerr
			}
			value = v
		}
		i.environment.Define(s.Name.Lexeme, value)
		return execResult{}, nil

	case *ast.Block:
		value, rerr := i.ExecuteBlock(s.Statements, env.New(i.environment))
		if rerr != nil {
			return execResult{}, rerr
		}
		if value != nil {
			return execResult{returning: true, value: value}, nil
		}
		return execResult{}, nil

	case *ast.If:
		cond, rerr := i.evaluate(s.Condition)
		if rerr != nil {
			return execResult{}, rerr
		}
		if values.IsTruthy(cond) {
			return i.executeStmt(s.Then)
		}
		if s.Else != nil {
			return i.executeStmt(s.Else)
		}
		return execResult{}, nil

	case *ast.While:
		for {
			cond, rerr := i.evaluate(s.Condition)
			if rerr != nil {
				return execResult{}, rerr
			}
			if !values.IsTruthy(cond) {
				return execResult{}, nil
			}
			result, rerr := i.executeStmt(s.Body)
			if rerr != nil {
				return execResult{}, rerr
			}
			if result.returning {
				return result, nil
			}
		}

	case *ast.Function:
		fn := &callable.Function{Declaration: s, Closure: i.environment, IsInitializer: false}
		i.environment.Define(s.Name.Lexeme, fn)
		return execResult{}, nil

	case *ast.Return:
		var value values.Value = values.Nil
		if s.Value != nil {
			v, rerr := i.evaluate(s.Value)
			if rerr != nil {
				return execResult{}, rerr
			}
			value = v
		}
		return execResult{returning: true, value: value}, nil

	case *ast.Class:
		return execResult{}, i.executeClass(s)

	default:
		panic("eval: unhandled statement type")
	}
}

// executeClass implements spec.md's class-declaration semantics: an
// optional superclass (which must itself evaluate to a Class), a
// superclass-only `super` environment frame shared by every method's
// closure, and a two-step define-then-assign so a method body can refer to
// its own class name.
func (i *Interpreter) executeClass(s *ast.Class) *reporter.RuntimeError {
	var superclass *callable.Class
	if s.Superclass != nil {
		value, rerr := i.evaluate(s.Superclass)
		if rerr != nil {
			return rerr
		}
		sc, ok := value.(*callable.Class)
		if !ok {
			return reporter.NewRuntimeError(s.Superclass.Name, "superclass must be a class")
		}
		superclass = sc
	}

	i.environment.Define(s.Name.Lexeme, values.Nil)

	methodEnv := i.environment
	if superclass != nil {
		methodEnv = env.New(i.environment)
		methodEnv.Define("super", superclass)
	}

	methods := make(map[string]*callable.Function, len(s.Methods))
	order := make([]string, 0, len(s.Methods))
	for _, decl := range s.Methods {
		methods[decl.Name.Lexeme] = &callable.Function{
			Declaration:   decl,
			Closure:       methodEnv,
			IsInitializer: decl.Name.Lexeme == "init",
		}
		order = append(order, decl.Name.Lexeme)
	}

	class := &callable.Class{
		Name:        s.Name.Lexeme,
		Superclass:  superclass,
		Methods:     methods,
		MethodOrder: order,
	}

	return i.environment.Assign(s.Name, class)
}
