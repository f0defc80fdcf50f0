/*
File    : plox/values/value_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumber_StringDropsTrailingZeroForWholeNumbers(t *testing.T) {
	tests := []struct {
		name string
		n    Number
		want string
	}{
		{"whole", Number(3), "3"},
		{"whole-from-division", Number(6.0 / 2.0), "3"},
		{"negative-whole", Number(-4), "-4"},
		{"fractional", Number(3.5), "3.5"},
		{"zero", Number(0), "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.n.String())
		})
	}
}

func TestIsTruthy(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want bool
	}{
		{"nil-is-falsy", Nil, false},
		{"false-is-falsy", Boolean(false), false},
		{"true-is-truthy", Boolean(true), true},
		{"zero-is-truthy", Number(0), true},
		{"empty-string-is-truthy", String(""), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTruthy(tt.v))
		})
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"nil-equals-nil", Nil, Nil, true},
		{"numbers-by-value", Number(1), Number(1), true},
		{"numbers-differ", Number(1), Number(2), false},
		{"strings-by-content", String("a"), String("a"), true},
		{"different-kinds-never-equal", Number(1), String("1"), false},
		{"nil-never-equals-false", Nil, Boolean(false), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
		})
	}
}
