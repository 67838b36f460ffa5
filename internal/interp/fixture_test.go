package interp_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/spin-lang/spin/internal/interp"
	"github.com/spin-lang/spin/internal/interp/builtins"
	"github.com/spin-lang/spin/internal/lexer"
	"github.com/spin-lang/spin/internal/parser"
	"github.com/spin-lang/spin/internal/wings"
)

// runConsoleFixture parses and runs src against a fresh Interpreter with a
// Console built-in wired to an in-memory buffer, returning everything the
// program wrote. This is the same wiring cmd/spin's run command does for a
// real `import Console;` program, minus Wings resolution (the fixtures below
// are self-contained single units).
func runConsoleFixture(t *testing.T, src string) string {
	t.Helper()
	var out bytes.Buffer
	unit := &wings.CodeUnit{Name: "fixture.spin", Contents: src, Tokens: lexer.Tokenize(src)}
	p := parser.New(unit)
	statements, err := p.Parse()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	i := interp.New(unit.Name, unit.Contents)
	if err := i.Global().Define("Console", builtins.Build(wings.Console, &out, strings.NewReader(""))); err != nil {
		t.Fatalf("Define Console: %v", err)
	}
	if err := i.Run(statements); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return out.String()
}

// TestFixtures snapshots whole-program stdout for a handful of small
// programs, one per language area, exercising end-to-end behavior rather
// than individual AST nodes.
func TestFixtures(t *testing.T) {
	fixtures := []struct {
		name string
		src  string
	}{
		{
			name: "arithmetic",
			src: `
				Integer a = 7;
				Integer b = 3;
				Console::writeLine(a + b, " ", a - b, " ", a * b, " ", a / b);
			`,
		},
		{
			name: "control_flow",
			src: `
				Integer n = 0;
				Integer sum = 0;
				while (n < 5) {
					sum = sum + n;
					n = n + 1;
				}
				Console::writeLine("sum=", sum);
			`,
		},
		{
			name: "class_methods",
			src: `
				class Counter {
					@hidden Integer value;

					@create proc Counter() {
						self.value = 0;
					}

					@public proc increment() {
						self.value = self.value + 1;
					}

					@public func incrementTwiceAndGet() -> Integer {
						self.increment();
						self.increment();
						return self.value;
					}
				}

				func report(c: Counter) -> Integer {
					return c.incrementTwiceAndGet();
				}

				Console::writeLine("count=", report(new Counter()));
			`,
		},
		{
			name: "string_concat",
			src: `
				String greeting = "hello" + " " + "world";
				Console::writeLine(greeting);
			`,
		},
	}

	for _, f := range fixtures {
		t.Run(f.name, func(t *testing.T) {
			output := runConsoleFixture(t, f.src)
			snaps.MatchSnapshot(t, output)
		})
	}
}
