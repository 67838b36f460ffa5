package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spin-lang/spin/internal/interp"
	"github.com/spin-lang/spin/internal/interp/builtins"
	"github.com/spin-lang/spin/internal/parser"
	"github.com/spin-lang/spin/internal/wings"
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Run a Spin source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// runScript drives the whole pipeline: Wings resolves the main file and its
// transitive wings, the built-in libraries it pulled in are injected into
// one shared global environment, then every wing runs (deepest first) ahead
// of the main unit, all against that same environment (§4.2, §6).
func runScript(_ *cobra.Command, args []string) error {
	path := args[0]

	program, err := wings.Resolve(path)
	if err != nil {
		return err
	}

	i := interp.New(program.Main.Name, program.Main.Contents)

	for lib := range program.Libraries {
		cls := builtins.Build(lib, os.Stdout, os.Stdin)
		if cls == nil {
			continue
		}
		if err := i.Global().Define(lib.String(), cls); err != nil {
			return fmt.Errorf("injecting %s: %w", lib, err)
		}
	}

	for _, wing := range program.Wings {
		if err := runUnit(i, wing); err != nil {
			return err
		}
	}
	return runUnit(i, program.Main)
}

func runUnit(i *interp.Interpreter, unit *wings.CodeUnit) error {
	p := parser.New(unit)
	statements, err := p.Parse()
	if err != nil {
		return err
	}
	return i.ForUnit(unit.Name, unit.Contents).Run(statements)
}
