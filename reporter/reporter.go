/*
File    : plox/reporter/reporter.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package reporter centralizes plox's three error channels (lex/parse,
// static resolution, runtime) behind the two sticky flags the host (CLI or
// REPL) reads to choose a process exit code, and renders them through
// github.com/fatih/color the way this corpus's REPL/CLI already does.
package reporter

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/akashmaji946/plox/token"
)

// RuntimeError carries the offending token so the host can report a line
// number without threading one through every evaluator call site.
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return e.Message
}

// NewRuntimeError builds a RuntimeError for the given offending token.
func NewRuntimeError(tok token.Token, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Token: tok, Message: fmt.Sprintf(format, args...)}
}

var (
	errColor    = color.New(color.FgRed)
	warnColor   = color.New(color.FgYellow)
	bannerColor = color.New(color.FgGreen)
	lineColor   = color.New(color.FgBlue)
	infoColor   = color.New(color.FgCyan)
)

// Host is the error-reporting collaborator threaded through the lexer,
// parser and resolver; the evaluator returns its runtime errors, and the
// CLI or REPL passes them to RuntimeErrorOccurred. It tracks the two sticky flags spec.md
// describes: HadError (static: lex or parse or resolve) and
// HadRuntimeError (a runtime error escaped interpretation).
type Host struct {
	Writer          io.Writer
	HadError        bool
	HadRuntimeError bool
}

// New creates a Host that writes diagnostics to w.
func New(w io.Writer) *Host {
	return &Host{Writer: w}
}

// Reset clears both sticky flags; the REPL calls this between input lines.
func (h *Host) Reset() {
	h.HadError = false
	h.HadRuntimeError = false
}

// Error reports a static error tied to a source line (lex/parse/resolve).
func (h *Host) Error(line int, message string) {
	h.HadError = true
	errColor.Fprintf(h.Writer, "Error at line %d: %s\n", line, message)
}

// ErrorToken reports a static parse error tied to a specific token, used by
// consume() and similar call sites that have a token but not a bare line.
func (h *Host) ErrorToken(tok token.Token, message string) {
	h.HadError = true
	if tok.Kind == token.EOF {
		errColor.Fprintf(h.Writer, "Error with token %s at end: %s\n", tok.Lexeme, message)
		return
	}
	errColor.Fprintf(h.Writer, "Error with token %s: %s\n", tok, message)
}

// RuntimeErrorOccurred reports a runtime error that escaped interpretation.
func (h *Host) RuntimeErrorOccurred(err *RuntimeError) {
	h.HadRuntimeError = true
	errColor.Fprintf(h.Writer, "Runtime error at line %d: %s\n", err.Token.Line, err.Message)
}

// Warn prints a non-sticky highlighted line (the REPL uses it for the
// version line of its startup screen).
func (h *Host) Warn(format string, args ...interface{}) {
	warnColor.Fprintf(h.Writer, format+"\n", args...)
}

// Banner prints a banner-style line (used by the REPL/CLI startup screen).
func (h *Host) Banner(format string, args ...interface{}) {
	bannerColor.Fprintf(h.Writer, format+"\n", args...)
}

// Rule prints a horizontal separator line.
func (h *Host) Rule(line string) {
	lineColor.Fprintf(h.Writer, "%s\n", line)
}

// Info prints an informational message (banners, usage hints).
func (h *Host) Info(format string, args ...interface{}) {
	infoColor.Fprintf(h.Writer, format+"\n", args...)
}
