/*
File    : plox/eval/interpreter_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/plox/lexer"
	"github.com/akashmaji946/plox/parser"
	"github.com/akashmaji946/plox/resolver"
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

// run lexes, parses, resolves and interprets src end to end, returning
// whatever the program printed and any runtime error that escaped.
func run(t *testing.T, src string) (string, *collectingReporter, error) {
	t.Helper()
	rep := &collectingReporter{}

	toks := lexer.New(src, rep).ScanTokens()
	stmts := parser.New(toks, rep).Parse()
	require.Empty(t, rep.errors, "lex/parse should succeed")

	res := resolver.New(rep)
	res.Resolve(stmts)
	require.Empty(t, rep.errors, "resolve should succeed")

	var out bytes.Buffer
	interp := New(&out, res.Locals())
	if rerr := interp.Interpret(stmts); rerr != nil {
		return out.String(), rep, rerr
	}
	return out.String(), rep, nil
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestInterpret_ArithmeticPrecedence(t *testing.T) {
	out, _, err := run(t, `print 1 + 2 * 3;`)
	require.NoError(t, err)
	assert.Equal(t, []string{"7"}, lines(out))
}

func TestInterpret_NumberDisplayHasNoTrailingZero(t *testing.T) {
	out, _, err := run(t, `print 6 / 2;`)
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, lines(out))
}

func TestInterpret_StringConcatenation(t *testing.T) {
	out, _, err := run(t, `print "foo" + "bar";`)
	require.NoError(t, err)
	assert.Equal(t, []string{"foobar"}, lines(out))
}

func TestInterpret_ClosureCapturesSharedMutableState(t *testing.T) {
	out, _, err := run(t, `
		fun makeCounter() {
			var count = 0;
			fun increment() {
				count = count + 1;
				print count;
			}
			return increment;
		}
		var counter = makeCounter();
		counter();
		counter();
		counter();
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, lines(out))
}

func TestInterpret_ClassInheritanceAndSuper(t *testing.T) {
	out, _, err := run(t, `
		class Animal {
			speak() {
				print "...";
			}
		}
		class Dog < Animal {
			speak() {
				super.speak();
				print "Woof";
			}
		}
		Dog().speak();
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"...", "Woof"}, lines(out))
}

func TestInterpret_InitializerAlwaysReturnsInstance(t *testing.T) {
	out, _, err := run(t, `
		class Point {
			init(x, y) {
				this.x = x;
				this.y = y;
			}
		}
		var p = Point(1, 2);
		print p.x;
		print p.y;
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, lines(out))
}

func TestInterpret_TruthinessOnlyNilAndFalseAreFalsy(t *testing.T) {
	out, _, err := run(t, `
		if (0) print "zero is truthy";
		if ("") print "empty string is truthy";
		if (!nil) print "nil is falsy";
		if (!false) print "false is falsy";
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"zero is truthy",
		"empty string is truthy",
		"nil is falsy",
		"false is falsy",
	}, lines(out))
}

func TestInterpret_ForLoopDesugaring(t *testing.T) {
	out, _, err := run(t, `
		for (var i = 0; i < 3; i = i + 1) {
			print i;
		}
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2"}, lines(out))
}

func TestInterpret_DivisionByZeroIsRuntimeError(t *testing.T) {
	_, _, err := run(t, `print 1 / 0;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "division by zero")
}

func TestInterpret_AddingNumberAndStringIsRuntimeError(t *testing.T) {
	_, _, err := run(t, `print 1 + "a";`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "numbers or two strings")
}

func TestInterpret_CallingANonCallableIsRuntimeError(t *testing.T) {
	_, _, err := run(t, `var x = 1; x();`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "can only call")
}

func TestInterpret_WrongArityIsRuntimeError(t *testing.T) {
	_, _, err := run(t, `fun f(a, b) { return a + b; } f(1);`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 2 arguments but got 1")
}

func TestInterpret_UndefinedPropertyIsRuntimeError(t *testing.T) {
	_, _, err := run(t, `class X {} X().missing;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undefined property")
}

func TestInterpret_UndefinedGlobalIsRuntimeError(t *testing.T) {
	_, _, err := run(t, `print notDefined;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undefined variable")
}

func TestInterpret_ClockIsCallableAndReturnsANumber(t *testing.T) {
	out, _, err := run(t, `print clock() > 0;`)
	require.NoError(t, err)
	assert.Equal(t, []string{"true"}, lines(out))
}
