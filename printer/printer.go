/*
File    : plox/printer/printer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package printer renders an expression tree back to a fully-parenthesized
// string, e.g. `(* (- 123) (group 45.67))`, for debugging a parse without
// running it. It is never imported by package eval; it exists purely as a
// standalone diagnostic, grounded on archevan-glox's ast_printer.go
// (parenthesize-and-build-a-string shape) and reworked into a type switch
// over this module's tagged-sum ast.Expr, in place of glox's visitor
// dispatch.
package printer

import (
	"strings"

	"github.com/akashmaji946/plox/ast"
	"github.com/akashmaji946/plox/values"
)

// Print renders expr as a fully-parenthesized string.
func Print(expr ast.Expr) string {
	return printExpr(expr)
}

func printExpr(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Literal:
		if e.Value == nil {
			return "nil"
		}
		switch v := e.Value.(type) {
		case float64:
			return values.Number(v).String()
		case string:
			return v
		case bool:
			return values.Boolean(v).String()
		}
		return "nil"

	case *ast.Grouping:
		return parenthesize("group", e.Inner)

	case *ast.Unary:
		return parenthesize(e.Operator.Lexeme, e.Right)

	case *ast.Binary:
		return parenthesize(e.Operator.Lexeme, e.Left, e.Right)

	case *ast.Logical:
		return parenthesize(e.Operator.Lexeme, e.Left, e.Right)

	case *ast.Variable:
		return e.Name.Lexeme

	case *ast.Assign:
		return parenthesize("= "+e.Name.Lexeme, e.Value)

	case *ast.Call:
		return parenthesize("call", append([]ast.Expr{e.Callee}, e.Args...)...)

	case *ast.Get:
		return parenthesize(". "+e.Name.Lexeme, e.Object)

	case *ast.Set:
		return parenthesize("= (. "+e.Name.Lexeme+")", e.Object, e.Value)

	case *ast.This:
		return "this"

	case *ast.Super:
		return "(super." + e.Method.Lexeme + ")"

	default:
		return "<?>"
	}
}

// parenthesize builds "(name sub1 sub2 ...)" from name and the rendering of
// each sub-expression, matching the original implementation's
// parenthesize() helper.
func parenthesize(name string, exprs ...ast.Expr) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteByte(' ')
		b.WriteString(printExpr(e))
	}
	b.WriteByte(')')
	return b.String()
}
