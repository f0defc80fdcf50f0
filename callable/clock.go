/*
File    : plox/callable/clock.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package callable

import (
	"time"

	"github.com/akashmaji946/plox/reporter"
	"github.com/akashmaji946/plox/values"
)

// Clock is plox's single standard-library primitive: a zero-argument
// builtin returning the number of seconds since the Unix epoch as a
// plox number, with sub-second precision preserved in the fraction.
var Clock = &Builtin{
	Name:    "clock",
	NumArgs: 0,
	Fn: func(_ Interpreter, _ []values.Value) (values.Value, *reporter.RuntimeError) {
		return values.Number(float64(time.Now().UnixNano()) / 1e9), nil
	},
}
