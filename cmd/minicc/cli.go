package main

import (
	"fmt"
	"os"

	"github.com/HicaroD/minicc/internal/config"
)

type Command int

const (
	COMMAND_REPL Command = iota
	COMMAND_RUN
	COMMAND_TOKENS
	COMMAND_CHECK
	COMMAND_ANALYZE
	COMMAND_IR
	COMMAND_BUILD
	COMMAND_HELP
	COMMAND_ENV
)

type CliResult struct {
	Command   Command
	BuildType config.BuildType
	Path      string
	Output    string
}

var HELP_COMMAND string = `minicc - a mini compiler for integer assignment statements.

Usage:
  minicc <command> [arguments]

Available Commands:
  repl                               Start the interactive shell (default)
  run <file>                         Analyze and run every statement of <file>
  tokens <file>                      Show the tokens of <file>
  check <file>                       Parse <file> and report syntax errors
  analyze <file>                     Check that every variable is declared before use
  ir <file> [-o out.ll]              Print (or write) the LLVM IR of <file>
  build <file> [-release] [-debug] [-o out]
                                     Build a native executable through opt and clang
  env                                Show environment information
  help                               Show this help message

Examples:
  minicc run prog.mc
  minicc build prog.mc -release -o prog
`

func cli(args []string) (CliResult, error) {
	result := CliResult{}

	if len(args) == 0 {
		result.Command = COMMAND_REPL
		return result, nil
	}

	command := args[0]
	switch command {
	case "repl":
		result.Command = COMMAND_REPL
		return result, nil
	case "env":
		result.Command = COMMAND_ENV
		return result, nil
	case "help", "-h", "--help":
		result.Command = COMMAND_HELP
		return result, nil
	case "run":
		result.Command = COMMAND_RUN
	case "tokens":
		result.Command = COMMAND_TOKENS
	case "check":
		result.Command = COMMAND_CHECK
	case "analyze":
		result.Command = COMMAND_ANALYZE
	case "ir":
		result.Command = COMMAND_IR
	case "build":
		result.Command = COMMAND_BUILD
	default:
		return result, fmt.Errorf("unknown command '%s', see 'minicc help'", command)
	}

	if len(args) < 2 {
		return result, fmt.Errorf("'%s' expects a file", command)
	}
	result.Path = args[1]
	if _, err := os.Stat(result.Path); err != nil {
		return result, fmt.Errorf("no such file: %s", result.Path)
	}

	releaseBuildSet, debugBuildSet := false, false
	result.BuildType = config.DEBUG

	flags := args[2:]
	for i := 0; i < len(flags); i++ {
		switch flags[i] {
		case "-release":
			if result.Command != COMMAND_BUILD {
				return result, fmt.Errorf("-release is only valid for build")
			}
			releaseBuildSet = true
			result.BuildType = config.RELEASE
		case "-debug":
			if result.Command != COMMAND_BUILD {
				return result, fmt.Errorf("-debug is only valid for build")
			}
			debugBuildSet = true
			result.BuildType = config.DEBUG
		case "-o":
			if result.Command != COMMAND_BUILD && result.Command != COMMAND_IR {
				return result, fmt.Errorf("-o is only valid for ir and build")
			}
			if i+1 >= len(flags) {
				return result, fmt.Errorf("-o expects a path")
			}
			i++
			result.Output = flags[i]
		default:
			return result, fmt.Errorf("unknown flag '%s'", flags[i])
		}
	}
	if releaseBuildSet && debugBuildSet {
		return result, fmt.Errorf("choose either -release or -debug, not both")
	}
	return result, nil
}
