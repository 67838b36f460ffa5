package interp

import "github.com/spin-lang/spin/internal/value"

// returnSignal unwinds the call stack up to the nearest routine invocation
// (§4.5 "Return: a dedicated non-error variant that unwinds the same
// channel"). It satisfies error so it can travel through Exec's ordinary
// error-return plumbing without a second control-flow channel.
type returnSignal struct {
	Value value.Value
}

func (r *returnSignal) Error() string { return "return outside a routine call" }
