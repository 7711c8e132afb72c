// Package repl is the interactive shell around a session.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/HicaroD/minicc/internal/diagnostics"
	"github.com/HicaroD/minicc/internal/lexer/token"
	"github.com/HicaroD/minicc/internal/session"
)

const HELP = `Enter assignment statements, e.g. x = 3 + 4 * 2;
Commands:
  :tokens <code>    show the tokens of <code>
  :check <code>     parse <code> only
  :ast <code>       show the syntax tree of <code>
  :analyze <code>   declare the variables of <code> without running it
  :exec <code>      run <code> without semantic analysis
  :symbols          show the symbol table
  :declared         show the declared variables
  :demo             run a statement that uses an undeclared variable
  :reset            forget every variable
  :help             show this message
  exit              leave
`

type Repl struct {
	Prompt string

	session   *session.Session
	collector *diagnostics.Collector
	out       io.Writer
}

// New builds a shell printing to out. Errors of the session are reported to
// collector, which should print to out too.
func New(s *session.Session, collector *diagnostics.Collector, out io.Writer) *Repl {
	return &Repl{Prompt: ">> ", session: s, collector: collector, out: out}
}

// Start reads lines from in until EOF or "exit".
func (r *Repl) Start(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(r.out, r.Prompt)
		if !scanner.Scan() {
			fmt.Fprintln(r.out)
			return scanner.Err()
		}

		line := strings.TrimSpace(strings.TrimLeft(scanner.Text(), "> "))
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "exit") {
			return nil
		}
		r.Eval(line)
	}
}

// Eval handles one line of input.
func (r *Repl) Eval(line string) {
	if !strings.HasPrefix(line, ":") {
		r.run(line)
		return
	}

	command, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch command {
	case ":tokens":
		tokens, err := r.session.Tokens(arg)
		if err != nil {
			return
		}
		DumpTokens(r.out, tokens)
	case ":check":
		program, err := r.session.Check(arg)
		if err != nil {
			return
		}
		for i := range program.Statements {
			fmt.Fprintf(r.out, "Statement %d: Syntax OK\n", i+1)
		}
	case ":ast":
		program, err := r.session.Check(arg)
		if err != nil {
			return
		}
		fmt.Fprint(r.out, program)
	case ":analyze":
		analyzed, _ := r.session.Analyze(arg)
		for i := range analyzed {
			fmt.Fprintf(r.out, "Statement %d: Semantic OK\n", i+1)
		}
	case ":exec":
		results, _ := r.session.Execute(arg)
		r.printResults(results)
	case ":symbols":
		entries := r.session.Symbols()
		if len(entries) == 0 {
			fmt.Fprintln(r.out, "  [Empty] No variables declared yet.")
			return
		}
		for _, entry := range entries {
			fmt.Fprintf(r.out, "  Variable: %s = %d\n", entry.Name, entry.Value)
		}
	case ":declared":
		fmt.Fprintf(r.out, "  %s\n", strings.Join(r.session.Declared.Names(), ", "))
	case ":reset":
		r.session.Reset()
		if r.collector != nil {
			r.collector.Reset()
		}
	case ":demo":
		r.demo()
	case ":help":
		fmt.Fprint(r.out, HELP)
	default:
		fmt.Fprintf(r.out, "unknown command %s, try :help\n", command)
	}
}

const DEMO_STATEMENT = "y = x + 1;"

// demo runs DEMO_STATEMENT on an empty session so the error shows no matter
// what the user declared.
func (r *Repl) demo() {
	fmt.Fprintf(r.out, "Running %q with no variables declared:\n", DEMO_STATEMENT)
	results, err := session.New(r.session.Options()).Run(DEMO_STATEMENT)
	r.printResults(results)
	if err == nil {
		fmt.Fprintln(r.out, "no error reported")
	}
}

func (r *Repl) run(line string) {
	results, _ := r.session.Run(line)
	r.printResults(results)
}

func (r *Repl) printResults(results []session.Result) {
	for _, result := range results {
		fmt.Fprintf(r.out, "%s = %d\n", result.Stmt.Name, result.Value)
	}
}

// DumpTokens writes one line per token, as the tokens command does.
func DumpTokens(out io.Writer, tokens []*token.Token) {
	for _, tok := range tokens {
		fmt.Fprintf(out, "  %s Type: %s, Value: '%s'\n", tok.Pos, tok.Kind.Name(), tok.Lexeme)
	}
}
