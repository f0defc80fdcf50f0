/*
File    : plox/resolver/resolver_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/plox/ast"
	"github.com/akashmaji946/plox/lexer"
	"github.com/akashmaji946/plox/parser"
	"github.com/akashmaji946/plox/token"
)

type collectingReporter struct {
	errors []string
}

func (r *collectingReporter) Error(line int, message string) {
	r.errors = append(r.errors, message)
}

func (r *collectingReporter) ErrorToken(tok token.Token, message string) {
	r.errors = append(r.errors, message)
}

func resolveSource(t *testing.T, src string) ([]ast.Stmt, *Resolver, *collectingReporter) {
	t.Helper()
	reporter := &collectingReporter{}
	toks := lexer.New(src, reporter).ScanTokens()
	stmts := parser.New(toks, reporter).Parse()
	require.Empty(t, reporter.errors, "parse should succeed")

	res := New(reporter)
	res.Resolve(stmts)
	return stmts, res, reporter
}

func TestResolve_LocalVariableGetsDepth(t *testing.T) {
	stmts, res, reporter := resolveSource(t, `
		var a = 1;
		{
			var b = a;
			print b;
		}
	`)
	assert.Empty(t, reporter.errors)

	block := stmts[1].(*ast.Block)
	varB := block.Statements[0].(*ast.Var)
	// the initializer `a` is a global reference: no depth recorded
	_, ok := res.Locals()[varB.Initializer.ID()]
	assert.False(t, ok)

	printStmt := block.Statements[1].(*ast.Print)
	variable := printStmt.Expr.(*ast.Variable)
	depth, ok := res.Locals()[variable.ID()]
	require.True(t, ok)
	assert.Equal(t, 0, depth)
}

func TestResolve_ClosureCapturesOuterLocal(t *testing.T) {
	_, res, reporter := resolveSource(t, `
		fun outer() {
			var x = 1;
			fun inner() {
				print x;
			}
			return inner;
		}
	`)
	assert.Empty(t, reporter.errors)
	assert.NotEmpty(t, res.Locals())
}

func TestResolve_SelfInitializerIsError(t *testing.T) {
	_, _, reporter := resolveSource(t, `{ var a = a; }`)
	require.Len(t, reporter.errors, 1)
	assert.Contains(t, reporter.errors[0], "own initializer")
}

func TestResolve_ShadowingInSameScopeIsError(t *testing.T) {
	_, _, reporter := resolveSource(t, `{ var a = 1; var a = 2; }`)
	require.Len(t, reporter.errors, 1)
	assert.Contains(t, reporter.errors[0], "already a variable")
}

func TestResolve_ReturnAtTopLevelIsError(t *testing.T) {
	_, _, reporter := resolveSource(t, `return 1;`)
	require.Len(t, reporter.errors, 1)
	assert.Contains(t, reporter.errors[0], "top-level")
}

func TestResolve_ReturnValueFromInitializerIsError(t *testing.T) {
	_, _, reporter := resolveSource(t, `class X { init() { return 1; } }`)
	require.Len(t, reporter.errors, 1)
	assert.Contains(t, reporter.errors[0], "initializer")
}

func TestResolve_BareReturnFromInitializerIsFine(t *testing.T) {
	_, _, reporter := resolveSource(t, `class X { init() { return; } }`)
	assert.Empty(t, reporter.errors)
}

func TestResolve_ThisOutsideClassIsError(t *testing.T) {
	_, _, reporter := resolveSource(t, `print this;`)
	require.Len(t, reporter.errors, 1)
	assert.Contains(t, reporter.errors[0], "this")
}

func TestResolve_SuperWithoutSuperclassIsError(t *testing.T) {
	_, _, reporter := resolveSource(t, `class A { foo() { super.foo(); } }`)
	require.Len(t, reporter.errors, 1)
	assert.Contains(t, reporter.errors[0], "super")
}

func TestResolve_InheritFromSelfIsError(t *testing.T) {
	_, _, reporter := resolveSource(t, `class A < A {}`)
	require.Len(t, reporter.errors, 1)
	assert.Contains(t, reporter.errors[0], "inherit")
}

func TestResolve_ReturnInsideMethodAtTopLevelIsAllowed(t *testing.T) {
	// a method's body is not "top-level code": its function-kind is
	// `method`, not `none`, so a bare return is legal there.
	_, _, reporter := resolveSource(t, `class A { greet() { return; } }`)
	assert.Empty(t, reporter.errors)
}
