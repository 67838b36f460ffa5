package builtins

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spin-lang/spin/internal/value"
	"github.com/spin-lang/spin/internal/wings"
)

func nativeOf(t *testing.T, cls *value.ClassValue, name string) value.NativeCall {
	t.Helper()
	slot, ok := cls.StaticMembers[name]
	if !ok {
		t.Fatalf("%s: no such static member", name)
	}
	rv, ok := slot.Value.(*value.RoutineValue)
	if !ok {
		t.Fatalf("%s: not a routine", name)
	}
	return rv.Native
}

func TestConsoleWriteConcatenatesArgs(t *testing.T) {
	var out bytes.Buffer
	cls := RegisterConsole(&out, strings.NewReader(""))
	write := nativeOf(t, cls, "write")
	if _, err := write([]value.Value{&value.StringValue{Val: "a"}, &value.IntegerValue{Val: 1}}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := out.String(); got != "a1" {
		t.Fatalf("expected %q, got %q", "a1", got)
	}
}

func TestConsoleWriteLineAppendsNewline(t *testing.T) {
	var out bytes.Buffer
	cls := RegisterConsole(&out, strings.NewReader(""))
	writeLine := nativeOf(t, cls, "writeLine")
	if _, err := writeLine([]value.Value{&value.StringValue{Val: "hi"}}); err != nil {
		t.Fatalf("writeLine: %v", err)
	}
	if got := out.String(); got != "hi\n" {
		t.Fatalf("expected %q, got %q", "hi\n", got)
	}
}

func TestConsoleReadLineTrimsNewline(t *testing.T) {
	var out bytes.Buffer
	cls := RegisterConsole(&out, strings.NewReader("hello world\n"))
	readLine := nativeOf(t, cls, "readLine")
	v, err := readLine(nil)
	if err != nil {
		t.Fatalf("readLine: %v", err)
	}
	if got := v.(*value.StringValue).Val; got != "hello world" {
		t.Fatalf("expected %q, got %q", "hello world", got)
	}
}

func TestConsoleSetForegroundPaletteIndex(t *testing.T) {
	var out bytes.Buffer
	cls := RegisterConsole(&out, strings.NewReader(""))
	setForeground := nativeOf(t, cls, "setForeground")
	if _, err := setForeground([]value.Value{&value.IntegerValue{Val: 9}}); err != nil {
		t.Fatalf("setForeground: %v", err)
	}
	if got := out.String(); got != "\x1b[38;5;9m" {
		t.Fatalf("expected %q, got %q", "\x1b[38;5;9m", got)
	}
}

func TestConsoleSetBackgroundTruecolor(t *testing.T) {
	var out bytes.Buffer
	cls := RegisterConsole(&out, strings.NewReader(""))
	setBackground := nativeOf(t, cls, "setBackground")
	args := []value.Value{&value.IntegerValue{Val: 1}, &value.IntegerValue{Val: 2}, &value.IntegerValue{Val: 3}}
	if _, err := setBackground(args); err != nil {
		t.Fatalf("setBackground: %v", err)
	}
	if got := out.String(); got != "\x1b[48;2;1;2;3m" {
		t.Fatalf("expected %q, got %q", "\x1b[48;2;1;2;3m", got)
	}
}

func TestConsoleSetForegroundWrongArgCount(t *testing.T) {
	var out bytes.Buffer
	cls := RegisterConsole(&out, strings.NewReader(""))
	setForeground := nativeOf(t, cls, "setForeground")
	if _, err := setForeground([]value.Value{&value.IntegerValue{Val: 1}, &value.IntegerValue{Val: 2}}); err == nil {
		t.Fatal("expected an error for 2 arguments, got nil")
	}
}

func TestKronosClockReturnsInteger(t *testing.T) {
	cls := RegisterKronos()
	clock := nativeOf(t, cls, "clock")
	v, err := clock(nil)
	if err != nil {
		t.Fatalf("clock: %v", err)
	}
	if _, ok := v.(*value.IntegerValue); !ok {
		t.Fatalf("expected an IntegerValue, got %T", v)
	}
}

func TestMathsHasNoStaticMembersYet(t *testing.T) {
	cls := RegisterMaths()
	if len(cls.StaticMembers) != 0 {
		t.Fatalf("expected Maths to have no static members yet, got %d", len(cls.StaticMembers))
	}
}

func TestBuildDispatchesByLibrary(t *testing.T) {
	var out bytes.Buffer
	if cls := Build(wings.Console, &out, strings.NewReader("")); cls == nil || cls.Name != "Console" {
		t.Fatalf("expected Console class, got %v", cls)
	}
	if cls := Build(wings.Kronos, &out, strings.NewReader("")); cls == nil || cls.Name != "Kronos" {
		t.Fatalf("expected Kronos class, got %v", cls)
	}
	if cls := Build(wings.Maths, &out, strings.NewReader("")); cls == nil || cls.Name != "Maths" {
		t.Fatalf("expected Maths class, got %v", cls)
	}
}
