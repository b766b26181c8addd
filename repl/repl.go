// Package repl implements the interactive Read-Eval-Print Loop.
//
// The shape — readline-backed line editing and history, a colored banner,
// one long-lived evaluator fed one line at a time, panic recovery around
// each line so a single bad input never kills the session — follows
// github.com/akashmaji946/go-mix/repl (Repl.Start/executeWithRecovery).
// What changed: the REPL now persists a single interpreter.Interpreter
// (and therefore one global object.Environment) across lines per
// SPEC_FULL.md §4, feeding each line through the same lexer→parser→
// interpreter pipeline as file mode, rather than re-creating fresh parser/
// evaluator state per input.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/wisplang/wisp/interpreter"
	"github.com/wisplang/wisp/lexer"
	"github.com/wisplang/wisp/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is one interactive session's display configuration.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl builds a Repl with the given banner and prompt configuration.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and usage hints to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Type a line and press enter. Ctrl+D exits.")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL loop, reading from reader and writing normal output
// to writer and `ERROR: <message>` lines to errWriter — spec.md §6 requires
// REPL errors to go to stderr, which is a distinct stream from stdout in
// the CLI case (cmd/wisp passes os.Stdout/os.Stderr separately); a single
// network connection has only one stream, so the `serve` TCP path passes
// the same writer for both. One interpreter.Interpreter is created for the
// whole session and threads through every line, so variables and functions
// defined on one line are visible on the next (spec.md §6 "interpreter
// state persists across lines"). On EOF the loop returns normally (callers
// exit 0, per the CLI surface contract).
func (r *Repl) Start(reader io.Reader, writer, errWriter io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.NewEx(&readline.Config{
		Prompt: r.Prompt,
		Stdin:  io.NopCloser(reader),
		Stdout: writer,
	})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	it := interpreter.New(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good bye!\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rl.SaveHistory(line)

		r.evalLine(errWriter, it, line)
	}
}

// evalLine runs one line of input through the full pipeline against the
// session's shared interpreter, writing any error to errWriter. Recovering
// a panic keeps a malformed line from ending the session — only the
// offending line is lost.
func (r *Repl) evalLine(errWriter io.Writer, it *interpreter.Interpreter, line string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(errWriter, "ERROR: %v\n", recovered)
		}
	}()

	toks, err := lexer.New(line).Scan()
	if err != nil {
		redColor.Fprintf(errWriter, "ERROR: %s\n", err)
		return
	}

	stmts, err := parser.New(toks).Parse()
	if err != nil {
		redColor.Fprintf(errWriter, "ERROR: %s\n", err)
		return
	}

	if err := it.Interpret(stmts); err != nil {
		redColor.Fprintf(errWriter, "ERROR: %s\n", err)
	}
}
