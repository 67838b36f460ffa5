package interp

import (
	"github.com/spin-lang/spin/internal/ast"
	"github.com/spin-lang/spin/internal/value"
)

// evalCall dispatches `new Class(...)` to construction and everything else
// to routine invocation (§4.5 "Call").
func (i *Interpreter) evalCall(c *ast.Call) (value.Value, error) {
	callee, err := i.Eval(c.Callee)
	if err != nil {
		return nil, err
	}
	args, err := i.evalArgs(c.Arguments)
	if err != nil {
		return nil, err
	}
	switch fn := callee.(type) {
	case *value.ClassValue:
		if !c.IsNew {
			return nil, i.err(c.Pos(), "%s is a class; use 'new' to construct it", fn.Name)
		}
		return i.construct(fn, args, c.Pos())
	case *value.RoutineValue:
		if c.IsNew {
			return nil, i.err(c.Pos(), "%s is not a constructor", fn.Name)
		}
		return i.invoke(fn, args, c.Pos())
	default:
		return nil, i.err(c.Pos(), "cannot call a value of type %s", callee.Tag())
	}
}

func (i *Interpreter) evalArgs(exprs []ast.Expression) ([]value.Value, error) {
	args := make([]value.Value, len(exprs))
	for idx, e := range exprs {
		v, err := i.Eval(e)
		if err != nil {
			return nil, err
		}
		args[idx] = v
	}
	return args, nil
}

// construct builds an empty instance, then calls atCreate if the class
// declares one (§4.5 "resolve reference, call atCreate if defined; arity
// must match").
func (i *Interpreter) construct(cls *value.ClassValue, args []value.Value, pos uint32) (value.Value, error) {
	instance := i.newInstance(cls)
	switch {
	case cls.AtCreate != nil:
		bound := cls.AtCreate.BindSelf(instance)
		if _, err := i.invoke(bound, args, pos); err != nil {
			return nil, err
		}
	case len(args) > 0:
		return nil, i.err(pos, "%s declares no constructor but was called with arguments", cls.Name)
	}
	i.env.Lose(instance)
	return instance, nil
}

// invoke calls a Routine (native or user-defined) with already-evaluated
// arguments (§4.6).
func (i *Interpreter) invoke(rv *value.RoutineValue, args []value.Value, pos uint32) (value.Value, error) {
	switch rv.Kind {
	case value.NativeFunctionRoutine, value.NativeProcedureRoutine:
		return i.invokeNative(rv, args, pos)
	default:
		return i.invokeUser(rv, args, pos)
	}
}

func (i *Interpreter) invokeNative(rv *value.RoutineValue, args []value.Value, pos uint32) (value.Value, error) {
	if !rv.Mutable && len(args) != rv.Arity() {
		return nil, i.err(pos, "%s expects %d argument(s), got %d", rv.Name, rv.Arity(), len(args))
	}
	result, err := rv.Native(args)
	if err != nil {
		return nil, i.err(pos, "%v", err)
	}
	return result, nil
}

func (i *Interpreter) invokeUser(rv *value.RoutineValue, args []value.Value, pos uint32) (value.Value, error) {
	params, body := i.routineSignature(rv)
	if len(args) != len(params) {
		return nil, i.err(pos, "%s expects %d argument(s), got %d", rv.Name, len(params), len(args))
	}

	callEnv := value.NewEnclosed(rv.Closure)
	if rv.Self != nil {
		callEnv.Define("self", rv.Self)
	}
	for idx, p := range params {
		if !i.paramMatches(p.TypeName, args[idx]) {
			return nil, i.err(pos, "%s: argument %d (%s) expects %s, got %s", rv.Name, idx+1, p.Name, p.TypeName, args[idx].Tag())
		}
		callEnv.Define(p.Name, args[idx])
	}

	prevEnv, prevBroken, prevContinued := i.env, i.broken, i.continued
	i.env, i.broken, i.continued = callEnv, false, false
	var result value.Value
	var callErr error
	for _, st := range body.Statements {
		if err := i.Exec(st); err != nil {
			if rs, ok := err.(*returnSignal); ok {
				result = rs.Value
			} else {
				callErr = err
			}
			break
		}
		if i.broken || i.continued {
			break
		}
	}
	i.env, i.broken, i.continued = prevEnv, prevBroken, prevContinued

	if callErr != nil {
		return nil, callErr
	}
	if rv.IsFunction() {
		if result == nil {
			return nil, i.err(pos, "function %s did not return a value", rv.Name)
		}
		if !i.paramMatches(rv.FuncDecl.ReturnType, result) {
			return nil, i.err(pos, "function %s returned %s, expected %s", rv.Name, result.Tag(), rv.FuncDecl.ReturnType)
		}
		return result, nil
	}
	if result != nil {
		return nil, i.err(pos, "procedure %s returned a value", rv.Name)
	}
	return nil, nil
}

func (i *Interpreter) routineSignature(rv *value.RoutineValue) ([]*ast.Parameter, *ast.Block) {
	if rv.Kind == value.FunctionRoutine {
		return rv.FuncDecl.Parameters, rv.FuncDecl.Body
	}
	return rv.ProcDecl.Parameters, rv.ProcDecl.Body
}

// paramMatches checks a value against a declared BasicType/class name,
// following the same type-name convention the Processor's Assign coercion
// leaves untouched for Instances: class identity, not a subtype relation
// (§4.6 "arity and type checking").
func (i *Interpreter) paramMatches(typeName string, v value.Value) bool {
	if inst, ok := v.(*value.InstanceValue); ok {
		return inst.Type.Name == typeName
	}
	return v.Tag().String() == typeName
}
