// Package builtins implements the three built-in libraries an `import`
// statement can pull in (§6): Console, Kronos, Maths. Each is injected as a
// Class whose static members are native Routines, the same shape DynamicGet/
// StaticGet already dispatch on — `Console.write(...)` is just a DynamicGet
// (or, spelled `Console::write`, a StaticGet) followed by a Call, no
// special-casing needed in the interpreter proper.
package builtins

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spin-lang/spin/internal/value"
)

// RegisterConsole builds the Console class: `write`/`writeLine` concatenate
// and print their arguments' String() form, `read`/`readLine` take an
// optional prompt argument, and the `set*`/`reset`/`clean` family emit ANSI
// SGR escapes (§6).
func RegisterConsole(out io.Writer, in io.Reader) *value.ClassValue {
	reader := bufio.NewReader(in)

	members := func(fns map[string]value.NativeCall) map[string]*value.Slot {
		slots := make(map[string]*value.Slot, len(fns))
		for name, fn := range fns {
			slots[name] = &value.Slot{Modifier: value.Public, Value: &value.RoutineValue{
				Kind: value.NativeProcedureRoutine, Name: name, Native: fn, Mutable: true,
			}}
		}
		return slots
	}

	writeArgs := func(args []value.Value) {
		for _, a := range args {
			fmt.Fprint(out, a.String())
		}
	}

	statics := members(map[string]value.NativeCall{
		"write": func(args []value.Value) (value.Value, error) {
			writeArgs(args)
			return nil, nil
		},
		"writeLine": func(args []value.Value) (value.Value, error) {
			writeArgs(args)
			fmt.Fprintln(out)
			return nil, nil
		},
		"read": func(args []value.Value) (value.Value, error) {
			writeArgs(args)
			word, err := reader.ReadString(' ')
			if err != nil && err != io.EOF {
				return nil, err
			}
			return &value.StringValue{Val: strings.TrimSpace(word)}, nil
		},
		"readLine": func(args []value.Value) (value.Value, error) {
			writeArgs(args)
			line, err := reader.ReadString('\n')
			if err != nil && err != io.EOF {
				return nil, err
			}
			return &value.StringValue{Val: strings.TrimRight(line, "\r\n")}, nil
		},
		"setBackground": func(args []value.Value) (value.Value, error) {
			return nil, setColor(out, 48, args)
		},
		"setForeground": func(args []value.Value) (value.Value, error) {
			return nil, setColor(out, 38, args)
		},
		"reset": func(args []value.Value) (value.Value, error) {
			fmt.Fprint(out, "\x1b[0m")
			return nil, nil
		},
		"clean": func(args []value.Value) (value.Value, error) {
			fmt.Fprint(out, "\x1b[2J\x1b[H")
			return nil, nil
		},
	})

	return &value.ClassValue{Name: "Console", StaticMembers: statics, Methods: map[string]*value.Slot{}}
}

// setColor writes an ANSI SGR escape: a single integer argument selects one
// of the 256-colour palette (`38/48;5;N`), three select 24-bit truecolor
// (`38/48;2;R;G;B`).
func setColor(out io.Writer, base int, args []value.Value) error {
	switch len(args) {
	case 1:
		idx, ok := args[0].(*value.IntegerValue)
		if !ok {
			return fmt.Errorf("expected a palette index, got %s", args[0].Tag())
		}
		fmt.Fprintf(out, "\x1b[%d;5;%dm", base, idx.Val)
		return nil
	case 3:
		r, ok1 := args[0].(*value.IntegerValue)
		g, ok2 := args[1].(*value.IntegerValue)
		b, ok3 := args[2].(*value.IntegerValue)
		if !ok1 || !ok2 || !ok3 {
			return fmt.Errorf("expected three Integer components")
		}
		fmt.Fprintf(out, "\x1b[%d;2;%d;%d;%dm", base, r.Val, g.Val, b.Val)
		return nil
	default:
		return fmt.Errorf("expected 1 or 3 arguments, got %d", len(args))
	}
}
