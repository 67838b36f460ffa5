package value

import "github.com/spin-lang/spin/internal/ast"

// RoutineKind distinguishes the four callable variants (§3 "Routine").
type RoutineKind int

const (
	FunctionRoutine RoutineKind = iota
	ProcedureRoutine
	NativeFunctionRoutine
	NativeProcedureRoutine
)

// NativeCall is the Go-side implementation backing a native routine. It
// receives already-evaluated argument Objects and returns a result Object
// (nil for procedures) or an error.
type NativeCall func(args []Value) (Value, error)

// RoutineValue is the shared, non-owning callable handle (§3 "Routine.
// Callable value... Each carries a closure environment (except natives), a
// parameter list, and may optionally carry a bound self handle for method
// calls."). The interpreter owns the actual invocation logic — this type is
// the data internal/interp's call dispatch switches on, keeping callable
// data separate from evaluation.
type RoutineValue struct {
	Kind RoutineKind
	Name string

	// User-defined variants.
	FuncDecl  *ast.Function
	ProcDecl  *ast.Procedure
	Closure   *Environment

	// Native variants.
	Native  NativeCall
	Mutable bool // native routines may opt into variadic/typeless parameters

	// Self is the bound receiver for method calls (§4.3 "DynamicGet/StaticGet:
	// ... If the fetched member is a Routine, bind the enclosing object to
	// self before returning").
	Self *InstanceValue
}

func (r *RoutineValue) Tag() BasicType { return Routine }

func (r *RoutineValue) String() string {
	if r.Name == "" {
		return "routine"
	}
	return "routine " + r.Name
}

func (r *RoutineValue) Copy() Value { return r } // shared handle, not deep-copied

// Arity returns the number of declared parameters, or -1 for a mutable
// native routine that accepts any number of arguments.
func (r *RoutineValue) Arity() int {
	if r.Mutable {
		return -1
	}
	switch r.Kind {
	case FunctionRoutine:
		return len(r.FuncDecl.Parameters)
	case ProcedureRoutine:
		return len(r.ProcDecl.Parameters)
	default:
		return 0
	}
}

// IsFunction reports whether the routine requires a typed return value.
func (r *RoutineValue) IsFunction() bool {
	return r.Kind == FunctionRoutine || r.Kind == NativeFunctionRoutine
}

// BindSelf returns a copy of the routine bound to the given receiver,
// leaving the original unbound routine (e.g. the class's method table
// entry) untouched.
func (r *RoutineValue) BindSelf(self *InstanceValue) *RoutineValue {
	bound := *r
	bound.Self = self
	return &bound
}
