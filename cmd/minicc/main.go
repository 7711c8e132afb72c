package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/HicaroD/minicc/internal/codegen/llvm"
	"github.com/HicaroD/minicc/internal/config"
	"github.com/HicaroD/minicc/internal/diagnostics"
	"github.com/HicaroD/minicc/internal/repl"
	"github.com/HicaroD/minicc/internal/session"
)

var DevMode string

func main() {
	config.SetDevMode(DevMode == "1")
	if config.DEV {
		fmt.Println("[DEV MODE] initialized")
	}

	args, err := cli(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	if err := config.SetupConfigDir(); err != nil {
		log.Fatal(err)
	}
	if err := config.SetupEnvFile(); err != nil {
		log.Fatal(err)
	}

	// the shell prints errors next to results, commands print them to stderr
	var diagOut io.Writer = os.Stderr
	if args.Command == COMMAND_REPL {
		diagOut = os.Stdout
	}
	collector := diagnostics.NewWithWriter(diagOut)
	s := session.New(session.Options{
		Filename:         args.Path,
		RequireSemicolon: config.ENVS.RequireSemicolon(),
		Analyze:          config.ENVS.Analyze(),
		Collector:        collector,
	})

	switch args.Command {
	case COMMAND_HELP:
		fmt.Print(HELP_COMMAND)
		return
	case COMMAND_ENV:
		fmt.Printf("config dir: %s\n", config.MINICC_CONFIG_DIR)
		for _, line := range config.ENVS.Lines() {
			fmt.Println(line)
		}
		return
	case COMMAND_REPL:
		shell := repl.New(s, collector, os.Stdout)
		shell.Prompt = config.ENVS.PROMPT
		fmt.Println("Enter arithmetic assignment statements (e.g., x = 3 + 4 * 2;).")
		fmt.Println("Type ':help' for commands and 'exit' to quit.")
		if err := shell.Start(os.Stdin); err != nil {
			log.Fatal(err)
		}
		return
	}

	src, err := os.ReadFile(args.Path)
	if err != nil {
		log.Fatal(err)
	}

	switch args.Command {
	case COMMAND_TOKENS:
		tokens, err := s.Tokens(string(src))
		if err != nil {
			os.Exit(1)
		}
		repl.DumpTokens(os.Stdout, tokens)
	case COMMAND_CHECK:
		program, err := s.Check(string(src))
		if err != nil {
			os.Exit(1)
		}
		fmt.Printf("%d statement(s): Syntax OK\n", len(program.Statements))
	case COMMAND_ANALYZE:
		analyzed, err := s.Analyze(string(src))
		if err != nil {
			os.Exit(1)
		}
		fmt.Printf("%d statement(s): Semantic OK\n", len(analyzed))
	case COMMAND_RUN:
		results, err := s.Run(string(src))
		for _, result := range results {
			fmt.Printf("%s = %d\n", result.Stmt.Name, result.Value)
		}
		if err != nil {
			os.Exit(1)
		}
	case COMMAND_IR, COMMAND_BUILD:
		program, err := s.Compile(string(src))
		if err != nil {
			os.Exit(1)
		}

		codegen := llvm.NewCG(args.Path, program, nil)
		defer codegen.Dispose()
		if err := codegen.Generate(); err != nil {
			log.Fatal(err)
		}

		if args.Command == COMMAND_IR {
			if args.Output == "" {
				fmt.Print(codegen.IR())
				return
			}
			if err := codegen.WriteIR(args.Output); err != nil {
				log.Fatal(err)
			}
			return
		}

		if err := codegen.Build(args.BuildType, args.Output); err != nil {
			log.Fatal(err)
		}
	}
}
