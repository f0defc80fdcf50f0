/*
File    : plox/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop for plox. The REPL lets a
user enter Lox code line by line, see immediate results, navigate history
with the arrow keys, and get colored feedback for errors versus output.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/akashmaji946/plox/eval"
	"github.com/akashmaji946/plox/lexer"
	"github.com/akashmaji946/plox/parser"
	"github.com/akashmaji946/plox/reporter"
	"github.com/akashmaji946/plox/resolver"
)

// Repl holds the startup presentation for an interactive session: the
// banner text, version/author/license strings shown underneath it, the
// separator line, and the prompt readline displays before each input.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl builds a Repl ready to Start.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner, version line, and usage hints
// to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	host := reporter.New(writer)
	host.Rule(r.Line)
	host.Banner("%s", r.Banner)
	host.Rule(r.Line)
	host.Warn("Version: %s | Author: %s | License: %s", r.Version, r.Author, r.License)
	host.Rule(r.Line)
	host.Info("Welcome to plox!")
	host.Info("Type your code and press enter")
	host.Info("Type '.exit' to quit")
	host.Info("Use up/down arrows to navigate command history")
	host.Rule(r.Line)
}

// Start prints the banner, then reads lines from an interactive readline
// session until '.exit' or EOF. Each line runs through the same
// lex -> parse -> resolve -> eval pipeline as file execution, sharing one
// Interpreter (and so one global environment) across the whole session,
// but with both of the reporter's sticky error flags reset before each
// line: a mistake on one line must not poison the next.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	host := reporter.New(writer)
	locals := make(map[int64]int)
	interp := eval.New(writer, locals)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			return
		}
		rl.SaveHistory(line)

		host.Reset()
		r.evalLine(host, interp, locals, line)
	}
}

// evalLine runs a single line of source through the full pipeline,
// reporting whatever error channel it fails in and leaving the shared
// environment and locals table exactly as the line left them on success.
func (r *Repl) evalLine(host *reporter.Host, interp *eval.Interpreter, locals map[int64]int, line string) {
	toks := lexer.New(line, host).ScanTokens()
	statements := parser.New(toks, host).Parse()
	if host.HadError {
		return
	}

	res := resolver.New(host)
	res.Resolve(statements)
	if host.HadError {
		return
	}
	for id, depth := range res.Locals() {
		locals[id] = depth
	}

	if rerr := interp.Interpret(statements); rerr != nil {
		host.RuntimeErrorOccurred(rerr)
	}
}
