/*
File    : plox/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for plox, a tree-walking Lox interpreter.
It provides two modes of operation:
1. REPL mode (default, no arguments): an interactive line-by-line session.
2. File mode (one argument): run a single Lox script to completion.
*/
package main

import (
	"fmt"
	"os"

	"github.com/akashmaji946/plox/eval"
	"github.com/akashmaji946/plox/lexer"
	"github.com/akashmaji946/plox/parser"
	"github.com/akashmaji946/plox/repl"
	"github.com/akashmaji946/plox/reporter"
	"github.com/akashmaji946/plox/resolver"
)

// VERSION is plox's version string.
var VERSION = "v1.0.0"

// AUTHOR contains the interpreter's author contact information.
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENSE names plox's software license.
var LICENSE = "MIT"

// PROMPT is the command prompt displayed in REPL mode.
var PROMPT = "plox >>> "

// LINE is a separator used for visual formatting at startup.
var LINE = "----------------------------------------------------------------"

// BANNER is the ASCII art logo shown when the REPL starts.
var BANNER = `
  ████████╗     ██╗     ██████╗ ██╗  ██╗
  ██╔═══██╗     ██║     ██╔══██╗╚██╗██╔╝
  ██████╔╝██╗   ██║    ██║  ██║ ╚███╔╝
  ██╔═══╝ ██║   ██║    ██║  ██║ ██╔██╗
  ██║     ╚██████╔╝    ╚█████╔╝██╔╝ ╚██╗
  ╚═╝      ╚═════╝      ╚════╝ ╚═╝   ╚═╝
`

// Process exit codes, matching the Crafting Interpreters convention this
// spec is built on: 65 for a static error (lex/parse/resolve), 70 for an
// escaped runtime error.
const (
	exitDataErr    = 65
	exitSoftware   = 70
	exitUsageError = 64
)

func main() {
	switch len(os.Args) {
	case 1:
		repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
		repler.Start(os.Stdin, os.Stdout)
	case 2:
		runFile(os.Args[1])
	default:
		fmt.Fprintln(os.Stderr, "Usage: plox [script]")
		os.Exit(exitUsageError)
	}
}

// runFile reads and executes a single Lox script, exiting 65 if it never
// got past static analysis and 70 if a runtime error escaped evaluation.
func runFile(path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not read file '%s': %v\n", path, err)
		os.Exit(exitUsageError)
	}

	host := reporter.New(os.Stdout)

	toks := lexer.New(string(source), host).ScanTokens()
	statements := parser.New(toks, host).Parse()
	if host.HadError {
		os.Exit(exitDataErr)
	}

	res := resolver.New(host)
	res.Resolve(statements)
	if host.HadError {
		os.Exit(exitDataErr)
	}

	interp := eval.New(os.Stdout, res.Locals())
	if rerr := interp.Interpret(statements); rerr != nil {
		host.RuntimeErrorOccurred(rerr)
		os.Exit(exitSoftware)
	}
}
