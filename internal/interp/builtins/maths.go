package builtins

import "github.com/spin-lang/spin/internal/value"

// RegisterMaths builds the Maths class. §6 reserves the name for future
// numeric helpers but names no required entry point in the core language —
// importing it today only reserves the identifier.
func RegisterMaths() *value.ClassValue {
	return &value.ClassValue{Name: "Maths", StaticMembers: map[string]*value.Slot{}, Methods: map[string]*value.Slot{}}
}
