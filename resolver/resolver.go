/*
File    : plox/resolver/resolver.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package resolver performs the single pre-execution walk that binds each
// name-using expression to a lexical scope distance, and enforces the
// static checks on `this`, `super`, `return`, and shadowing that spec.md
// §4.3 describes. Grounded primarily on sam-decook-lox's
// codecrafters/cmd/resolver.go, which is the one repo in this pack that
// already implements this exact pass (the teacher, go-mix, resolves names
// dynamically through its mutable scope chain and has no resolver at all).
package resolver

import (
	"github.com/akashmaji946/plox/ast"
	"github.com/akashmaji946/plox/token"
)

// ErrorReporter receives the resolver's static diagnostics.
type ErrorReporter interface {
	Error(line int, message string)
}

// functionKind tracks what sort of function body is currently being
// resolved, so `return` checks know their context (`this` and `super`
// checks use classKind instead).
type functionKind int

const (
	funcNone functionKind = iota
	funcFunction
	funcMethod
	funcInitializer
)

// classKind tracks whether the resolver is currently inside a class body,
// and whether that class has a superclass (which gates `super`).
type classKind int

const (
	classNone classKind = iota
	classClass
	classSubclass
)

// scope maps a name to whether its declaration has finished (true) or is
// still "in progress" (false, declared but not yet defined).
type scope map[string]bool

// Resolver walks an already-parsed program once and records, for every
// Variable/Assign/This/Super expression whose binding lives in some
// lexical scope, the distance from that expression to the scope that
// binds it. Expr.ID() is used as the side-table key rather than any
// interpreter-level heap identity, per spec.md §9's design note.
type Resolver struct {
	reporter ErrorReporter
	scopes   []scope
	locals   map[int64]int
	currentFunction functionKind
	currentClass    classKind
}

// New creates a Resolver reporting static errors to reporter.
func New(reporter ErrorReporter) *Resolver {
	return &Resolver{
		reporter: reporter,
		locals:   make(map[int64]int),
	}
}

// Locals returns the Expr-id -> depth side table built by Resolve. Absence
// of an id means the reference is global.
func (r *Resolver) Locals() map[int64]int {
	return r.locals
}

// Resolve walks every top-level statement.
func (r *Resolver) Resolve(statements []ast.Stmt) {
	r.resolveStatements(statements)
}

func (r *Resolver) resolveStatements(statements []ast.Stmt) {
	for _, stmt := range statements {
		r.resolveStmt(stmt)
	}
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, scope{})
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	innermost := r.scopes[len(r.scopes)-1]
	if _, exists := innermost[name.Lexeme]; exists {
		r.reporter.Error(name.Line, "already a variable with this name in this scope")
	}
	innermost[name.Lexeme] = false
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal walks the scope stack from innermost to outermost; the
// first scope containing the name fixes the depth (0 for innermost). If no
// scope contains it, no depth is recorded and the evaluator treats the
// reference as global.
func (r *Resolver) resolveLocal(expr ast.Expr, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.locals[expr.ID()] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *Resolver) resolveFunction(fn *ast.Function, kind functionKind) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kind

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStatements(fn.Body)
	r.endScope()

	r.currentFunction = enclosingFunction
}
