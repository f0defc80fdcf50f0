/*
File    : plox/ast/expr.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package ast defines the tagged-sum node types for plox expressions and
// statements. Each concrete type is a distinct Go struct implementing a
// small marker interface (Expr or Stmt); callers dispatch on concrete type
// with a type switch rather than through a visitor.
package ast

import "github.com/akashmaji946/plox/token"

// nextExprID hands out the stable identity the resolver's side-table keys
// on, so that the table never depends on heap pointer identity.
var nextExprID int64

func newExprID() int64 {
	nextExprID++
	return nextExprID
}

// Expr is the marker interface implemented by every expression node.
// ID returns the node's stable identity, assigned once at construction.
type Expr interface {
	ID() int64
	exprNode()
}

type exprBase struct {
	id int64
}

func (e exprBase) ID() int64 { return e.id }
func (exprBase) exprNode()   {}

func newExprBase() exprBase {
	return exprBase{id: newExprID()}
}

// Literal is a literal value baked into the source: a number, string,
// bool, or nil.
type Literal struct {
	exprBase
	Value interface{}
}

// NewLiteral constructs a Literal expression.
func NewLiteral(value interface{}) *Literal {
	return &Literal{exprBase: newExprBase(), Value: value}
}

// Grouping is a parenthesized sub-expression.
type Grouping struct {
	exprBase
	Inner Expr
}

// NewGrouping constructs a Grouping expression.
func NewGrouping(inner Expr) *Grouping {
	return &Grouping{exprBase: newExprBase(), Inner: inner}
}

// Unary is a prefix operator applied to a single operand: `-x`, `!x`.
type Unary struct {
	exprBase
	Operator token.Token
	Right    Expr
}

// NewUnary constructs a Unary expression.
func NewUnary(operator token.Token, right Expr) *Unary {
	return &Unary{exprBase: newExprBase(), Operator: operator, Right: right}
}

// Binary is an infix arithmetic, comparison, or equality operator.
type Binary struct {
	exprBase
	Left     Expr
	Operator token.Token
	Right    Expr
}

// NewBinary constructs a Binary expression.
func NewBinary(left Expr, operator token.Token, right Expr) *Binary {
	return &Binary{exprBase: newExprBase(), Left: left, Operator: operator, Right: right}
}

// Logical is `and`/`or`, which short-circuit and therefore cannot share
// Binary's eager-evaluate-both-sides semantics.
type Logical struct {
	exprBase
	Left     Expr
	Operator token.Token
	Right    Expr
}

// NewLogical constructs a Logical expression.
func NewLogical(left Expr, operator token.Token, right Expr) *Logical {
	return &Logical{exprBase: newExprBase(), Left: left, Operator: operator, Right: right}
}

// Variable is a bare name reference: `x`.
type Variable struct {
	exprBase
	Name token.Token
}

// NewVariable constructs a Variable expression.
func NewVariable(name token.Token) *Variable {
	return &Variable{exprBase: newExprBase(), Name: name}
}

// Assign is `name = value`.
type Assign struct {
	exprBase
	Name  token.Token
	Value Expr
}

// NewAssign constructs an Assign expression.
func NewAssign(name token.Token, value Expr) *Assign {
	return &Assign{exprBase: newExprBase(), Name: name, Value: value}
}

// Call is `callee(args...)`.
type Call struct {
	exprBase
	Callee Expr
	Paren  token.Token // the closing ')', used for the line of a call-site runtime error
	Args   []Expr
}

// NewCall constructs a Call expression.
func NewCall(callee Expr, paren token.Token, args []Expr) *Call {
	return &Call{exprBase: newExprBase(), Callee: callee, Paren: paren, Args: args}
}

// Get is `object.name`, a property or method read.
type Get struct {
	exprBase
	Object Expr
	Name   token.Token
}

// NewGet constructs a Get expression.
func NewGet(object Expr, name token.Token) *Get {
	return &Get{exprBase: newExprBase(), Object: object, Name: name}
}

// Set is `object.name = value`, a field write.
type Set struct {
	exprBase
	Object Expr
	Name   token.Token
	Value  Expr
}

// NewSet constructs a Set expression.
func NewSet(object Expr, name token.Token, value Expr) *Set {
	return &Set{exprBase: newExprBase(), Object: object, Name: name, Value: value}
}

// This is the `this` keyword used inside a method body.
type This struct {
	exprBase
	Keyword token.Token
}

// NewThis constructs a This expression.
func NewThis(keyword token.Token) *This {
	return &This{exprBase: newExprBase(), Keyword: keyword}
}

// Super is `super.method`, used inside a subclass method body.
type Super struct {
	exprBase
	Keyword token.Token
	Method  token.Token
}

// NewSuper constructs a Super expression.
func NewSuper(keyword, method token.Token) *Super {
	return &Super{exprBase: newExprBase(), Keyword: keyword, Method: method}
}
