// Package session drives the pipeline over source text for one user, owning
// the variable store and the declared-name set that statements share.
package session

import (
	"github.com/HicaroD/minicc/internal/ast"
	"github.com/HicaroD/minicc/internal/diagnostics"
	"github.com/HicaroD/minicc/internal/interp"
	"github.com/HicaroD/minicc/internal/lexer"
	"github.com/HicaroD/minicc/internal/lexer/token"
	"github.com/HicaroD/minicc/internal/parser"
	"github.com/HicaroD/minicc/internal/sema"
	"github.com/HicaroD/minicc/internal/symbols"
)

type Options struct {
	Filename         string
	RequireSemicolon bool
	// Analyze runs the semantic analyzer before each statement is evaluated.
	Analyze bool
	// Collector, if set, receives every error the session returns.
	Collector *diagnostics.Collector
}

func DefaultOptions() Options {
	return Options{RequireSemicolon: true, Analyze: true}
}

type Result struct {
	Stmt  *ast.Assignment
	Value int64
}

type Session struct {
	Store    *symbols.Store
	Declared *symbols.Declared

	opts Options
}

func New(opts Options) *Session {
	return &Session{
		Store:    symbols.NewStore(),
		Declared: symbols.NewDeclared(),
		opts:     opts,
	}
}

func (s *Session) Options() Options { return s.opts }

// Reset forgets every variable, both stored and declared.
func (s *Session) Reset() {
	s.Store.Reset()
	s.Declared.Reset()
}

func (s *Session) Symbols() []symbols.Entry {
	return s.Store.Entries()
}

// Tokens runs lexical analysis only.
func (s *Session) Tokens(src string) ([]*token.Token, error) {
	tokens, err := lexer.New(s.opts.Filename, []byte(src)).Tokenize()
	if err != nil {
		return nil, s.report(err)
	}
	return tokens, nil
}

// Check parses every statement of src without analyzing or running them.
func (s *Session) Check(src string) (*ast.Program, error) {
	p, err := s.parser(src)
	if err != nil {
		return nil, err
	}
	program, err := p.ParseAll()
	if err != nil {
		return nil, s.report(err)
	}
	return program, nil
}

// Analyze declares the targets of the statements of src, in order, without
// running them. It stops at the first failing statement; the statements
// before it stay declared.
func (s *Session) Analyze(src string) ([]*ast.Assignment, error) {
	var analyzed []*ast.Assignment
	err := s.each(src, func(stmt *ast.Assignment) error {
		err := sema.Analyze(stmt, s.Declared)
		if err != nil {
			return err
		}
		analyzed = append(analyzed, stmt)
		return nil
	})
	return analyzed, err
}

// Execute evaluates the statements of src without semantic analysis. Only the
// interpreter's own check guards against missing variables.
func (s *Session) Execute(src string) ([]Result, error) {
	return s.run(src, false)
}

// Run analyzes (when Options.Analyze is set) and evaluates every statement of
// src. A failing statement leaves the store and the declared set as they were
// before it and stops the remaining statements.
func (s *Session) Run(src string) ([]Result, error) {
	return s.run(src, s.opts.Analyze)
}

// Compile parses and analyzes all of src for code generation. Nothing is
// evaluated, and the session's declared set is left untouched.
func (s *Session) Compile(src string) (*ast.Program, error) {
	program, err := s.Check(src)
	if err != nil {
		return nil, err
	}
	err = sema.New(s.Declared.Clone()).Check(program)
	if err != nil {
		return nil, s.report(err)
	}
	return program, nil
}

func (s *Session) run(src string, analyze bool) ([]Result, error) {
	var results []Result
	err := s.each(src, func(stmt *ast.Assignment) error {
		value, err := s.exec(stmt, analyze)
		if err != nil {
			return err
		}
		results = append(results, Result{Stmt: stmt, Value: value})
		return nil
	})
	return results, err
}

func (s *Session) exec(stmt *ast.Assignment, analyze bool) (int64, error) {
	fresh := !s.Declared.Has(stmt.Name)
	if analyze {
		err := sema.Analyze(stmt, s.Declared)
		if err != nil {
			return 0, err
		}
	}

	value, err := interp.Evaluate(stmt, s.Store)
	if err != nil {
		if analyze && fresh {
			s.Declared.Forget(stmt.Name)
		}
		return 0, err
	}
	return value, nil
}

// each parses src one statement at a time and hands every statement to fn
// before the next one is parsed.
func (s *Session) each(src string, fn func(stmt *ast.Assignment) error) error {
	p, err := s.parser(src)
	if err != nil {
		return err
	}
	for !p.Done() {
		stmt, err := p.ParseStatement()
		if err != nil {
			return s.report(err)
		}
		if err := fn(stmt); err != nil {
			return s.report(err)
		}
	}
	return nil
}

func (s *Session) parser(src string) (*parser.Parser, error) {
	tokens, err := s.Tokens(src)
	if err != nil {
		return nil, err
	}
	return parser.New(tokens, s.opts.RequireSemicolon), nil
}

func (s *Session) report(err error) error {
	if s.opts.Collector != nil {
		s.opts.Collector.Report(err)
	}
	return err
}
