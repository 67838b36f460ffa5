package builtins

import (
	"time"

	"github.com/spin-lang/spin/internal/value"
)

// RegisterKronos builds the Kronos class: a single wall-clock accessor
// (§6 "Kronos.clock() -> Integer, milliseconds since the UNIX epoch").
func RegisterKronos() *value.ClassValue {
	clock := &value.RoutineValue{
		Kind: value.NativeFunctionRoutine,
		Name: "clock",
		Native: func(args []value.Value) (value.Value, error) {
			return &value.IntegerValue{Val: time.Now().UnixMilli()}, nil
		},
	}
	return &value.ClassValue{
		Name:          "Kronos",
		StaticMembers: map[string]*value.Slot{"clock": {Modifier: value.Public, Value: clock}},
		Methods:       map[string]*value.Slot{},
	}
}
