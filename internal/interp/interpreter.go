// Package interp is the tree-walking evaluator (§4.5): it walks the
// Statement/Expression tree the parser produced, dispatching every typed
// operation through the Processor and keeping runtime state in a chain of
// Environments.
package interp

import (
	"github.com/spin-lang/spin/internal/ast"
	"github.com/spin-lang/spin/internal/processor"
	"github.com/spin-lang/spin/internal/spinerr"
	"github.com/spin-lang/spin/internal/value"
)

// Interpreter walks a parsed program against one Environment chain. Each
// file gets its own Interpreter so diagnostics can be attributed to the
// right file/source pair.
type Interpreter struct {
	file   string
	source string
	proc   *processor.Processor
	env    *value.Environment
	global *value.Environment

	litCache map[ast.Expression]value.Value

	broken    bool
	continued bool
}

// New returns an Interpreter rooted at a fresh global environment,
// attributing diagnostics to file/source (§4.4 "Processor ... attributes
// diagnostics to file/source").
func New(file, source string) *Interpreter {
	global := value.NewEnvironment()
	return &Interpreter{
		file:     file,
		source:   source,
		proc:     processor.New(file, source),
		env:      global,
		global:   global,
		litCache: make(map[ast.Expression]value.Value),
	}
}

// Global returns the root environment, for the driver to inject a built-in
// library's class into before running the program (§6 "import Console/
// Kronos/Maths injects a class into globals").
func (i *Interpreter) Global() *value.Environment { return i.global }

// ForUnit returns a new Interpreter over the same global/current
// environment but attributing diagnostics to a different file/source pair
// — used to run each resolved wing in turn before the main unit, all
// sharing one Environment chain (§4.2 "Wings ... resolved in dependency
// order before the main unit runs").
func (i *Interpreter) ForUnit(file, source string) *Interpreter {
	return &Interpreter{
		file:     file,
		source:   source,
		proc:     processor.New(file, source),
		env:      i.env,
		global:   i.global,
		litCache: make(map[ast.Expression]value.Value),
	}
}

// Run executes a unit's top-level statements in the global scope.
func (i *Interpreter) Run(statements []ast.Statement) error {
	for _, s := range statements {
		if err := i.Exec(s); err != nil {
			if _, ok := err.(*returnSignal); ok {
				continue // a bare top-level return; nothing to unwind into
			}
			return err
		}
	}
	return nil
}

func (i *Interpreter) err(pos uint32, format string, args ...any) error {
	line, col := spinerr.ResolveLine(i.source, pos)
	return spinerr.New(spinerr.Evaluation, i.file, line, col, format, args...)
}
