package main

import (
	"fmt"
	"io"
	"os"

	"github.com/amterp/lap"
)

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(lap.ExitCode(err))
	}
}

// run builds the parser, parses args and prints the result. Help and empty
// input exit from inside the parser; validation errors are returned.
func run(outW io.Writer, args []string) error {
	p := newParser()

	if path := os.Getenv("LAP_DEFS"); path != "" {
		defs, err := lap.LoadDefinitionsFile(path)
		if err != nil {
			return err
		}
		if err := p.AddDefinitions(defs); err != nil {
			return err
		}
	}

	result, err := p.ParseArgs(args)
	if err != nil {
		return err
	}

	if shell, ok := result.Text("completion"); ok {
		script, err := p.GenerateCompletion(shell)
		if err != nil {
			return err
		}
		fmt.Fprint(outW, script)
		return nil
	}

	fmt.Fprintln(outW, result)
	return nil
}

func newParser() *lap.Parser {
	p := lap.NewParser("lap", lap.WithDescription("Parses its own arguments and prints the result."))

	lap.NewFlag("--output").
		SetAlias("-o").
		SetHelp("Where the result would be written.").
		Register(p)
	lap.NewFlag("--dry-run").
		SetAlias("-n").
		SetHelp("Only print what would happen.").
		SetStoreTrue().
		Register(p)
	lap.NewFlag("--completion").
		SetHelp("Print a completion script for bash or zsh.").
		Register(p)

	return p
}
