/*
File    : plox/env/environment_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/plox/token"
	"github.com/akashmaji946/plox/values"
)

func nameToken(lexeme string) token.Token {
	return token.New(token.IDENTIFIER, lexeme, 1)
}

func TestEnvironment_DefineAndGet(t *testing.T) {
	e := New(nil)
	e.Define("a", values.Number(1))

	v, rerr := e.Get(nameToken("a"))
	require.Nil(t, rerr)
	assert.Equal(t, values.Number(1), v)
}

func TestEnvironment_GetWalksParentChain(t *testing.T) {
	outer := New(nil)
	outer.Define("a", values.Number(1))
	inner := New(outer)

	v, rerr := inner.Get(nameToken("a"))
	require.Nil(t, rerr)
	assert.Equal(t, values.Number(1), v)
}

func TestEnvironment_GetUndefinedIsRuntimeError(t *testing.T) {
	e := New(nil)
	_, rerr := e.Get(nameToken("missing"))
	require.NotNil(t, rerr)
	assert.Contains(t, rerr.Message, "undefined variable")
}

func TestEnvironment_AssignRequiresExistingBinding(t *testing.T) {
	e := New(nil)
	rerr := e.Assign(nameToken("missing"), values.Number(1))
	require.NotNil(t, rerr)
	assert.Contains(t, rerr.Message, "undefined variable")
}

func TestEnvironment_AssignUpdatesNearestBinding(t *testing.T) {
	outer := New(nil)
	outer.Define("a", values.Number(1))
	inner := New(outer)

	rerr := inner.Assign(nameToken("a"), values.Number(2))
	require.Nil(t, rerr)

	v, _ := outer.Get(nameToken("a"))
	assert.Equal(t, values.Number(2), v)
}

func TestEnvironment_GetAtAndAssignAtUseExactDistance(t *testing.T) {
	global := New(nil)
	global.Define("a", values.Number(99)) // shadowed name at distance 0 below
	middle := New(global)
	inner := New(middle)
	inner.Define("a", values.Number(1))

	assert.Equal(t, values.Number(1), inner.GetAt(0, "a"))
	assert.Equal(t, values.Number(99), inner.GetAt(2, "a"))

	inner.AssignAt(0, nameToken("a"), values.Number(2))
	assert.Equal(t, values.Number(2), inner.GetAt(0, "a"))
}
