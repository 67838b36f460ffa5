package interp

import (
	"github.com/spin-lang/spin/internal/ast"
	"github.com/spin-lang/spin/internal/value"
)

// Exec dispatches one Statement node (§4.5).
func (i *Interpreter) Exec(stmt ast.Statement) error {
	switch s := stmt.(type) {
	case *ast.ExpressionStatement:
		_, err := i.Eval(s.Expression)
		return err
	case *ast.Block:
		return i.execBlock(s)
	case *ast.If:
		return i.execIf(s)
	case *ast.While:
		return i.execWhile(s)
	case *ast.DoWhile:
		return i.execDoWhile(s)
	case *ast.Until:
		return i.execUntil(s)
	case *ast.RepeatUntil:
		return i.execRepeatUntil(s)
	case *ast.Loop:
		return i.execLoop(s)
	case *ast.For:
		return i.execFor(s)
	case *ast.Break:
		i.broken = true
		return nil
	case *ast.Continue:
		i.continued = true
		return nil
	case *ast.Rest:
		return nil
	case *ast.Return:
		return i.execReturn(s)
	case *ast.Delete:
		return i.execDelete(s)
	case *ast.Variable:
		return i.execVariable(s)
	case *ast.VectorDecl:
		return i.execVectorDecl(s)
	case *ast.Function:
		return i.env.Define(s.Name, &value.RoutineValue{Kind: value.FunctionRoutine, Name: s.Name, FuncDecl: s, Closure: i.env})
	case *ast.Procedure:
		return i.env.Define(s.Name, &value.RoutineValue{Kind: value.ProcedureRoutine, Name: s.Name, ProcDecl: s, Closure: i.env})
	case *ast.Class:
		return i.execClass(s)
	case *ast.File:
		i.file = s.Name
		return nil
	default:
		return i.err(stmt.Pos(), "cannot execute %T", stmt)
	}
}

// execBlock creates a child scope, executes every statement, and exits
// early on an error, a break, or a continue (§4.5 "Block").
func (i *Interpreter) execBlock(b *ast.Block) error {
	prev := i.env
	i.env = value.NewEnclosed(prev)
	defer func() { i.env = prev }()

	for _, s := range b.Statements {
		if err := i.Exec(s); err != nil {
			return err
		}
		if i.broken || i.continued {
			return nil
		}
	}
	return nil
}

func (i *Interpreter) execIf(s *ast.If) error {
	cond, err := i.evalCondition(s.Condition)
	if err != nil {
		return err
	}
	if cond {
		return i.Exec(s.Then)
	}
	if s.Else != nil {
		return i.Exec(s.Else)
	}
	return nil
}

func (i *Interpreter) evalCondition(expr ast.Expression) (bool, error) {
	v, err := i.Eval(expr)
	if err != nil {
		return false, err
	}
	b, ok := v.(*value.BooleanValue)
	if !ok {
		return false, i.err(expr.Pos(), "condition must be Boolean, got %s", v.Tag())
	}
	return b.Val, nil
}

func (i *Interpreter) execWhile(s *ast.While) error {
	for {
		cond, err := i.evalCondition(s.Condition)
		if err != nil {
			return err
		}
		if !cond {
			return nil
		}
		if err := i.runLoopBody(s.Body); err != nil {
			return err
		}
		if i.consumeBreak() {
			return nil
		}
	}
}

func (i *Interpreter) execDoWhile(s *ast.DoWhile) error {
	for {
		if err := i.runLoopBody(s.Body); err != nil {
			return err
		}
		if i.consumeBreak() {
			return nil
		}
		cond, err := i.evalCondition(s.Condition)
		if err != nil {
			return err
		}
		if !cond {
			return nil
		}
	}
}

func (i *Interpreter) execUntil(s *ast.Until) error {
	for {
		cond, err := i.evalCondition(s.Condition)
		if err != nil {
			return err
		}
		if cond {
			return nil
		}
		if err := i.runLoopBody(s.Body); err != nil {
			return err
		}
		if i.consumeBreak() {
			return nil
		}
	}
}

func (i *Interpreter) execRepeatUntil(s *ast.RepeatUntil) error {
	for {
		if err := i.runLoopBody(s.Body); err != nil {
			return err
		}
		if i.consumeBreak() {
			return nil
		}
		cond, err := i.evalCondition(s.Condition)
		if err != nil {
			return err
		}
		if cond {
			return nil
		}
	}
}

func (i *Interpreter) execLoop(s *ast.Loop) error {
	for {
		if err := i.runLoopBody(s.Body); err != nil {
			return err
		}
		if i.consumeBreak() {
			return nil
		}
	}
}

// execFor wraps the whole construct in its own scope so the loop variable
// doesn't leak (§4.5 "For declares its loop variable in a fresh scope by
// wrapping itself in a Block").
func (i *Interpreter) execFor(s *ast.For) error {
	prev := i.env
	i.env = value.NewEnclosed(prev)
	defer func() { i.env = prev }()

	if s.Declaration != nil {
		if err := i.Exec(s.Declaration); err != nil {
			return err
		}
	}
	for {
		if s.Condition != nil {
			cond, err := i.evalCondition(s.Condition)
			if err != nil {
				return err
			}
			if !cond {
				return nil
			}
		}
		if err := i.runLoopBody(s.Body); err != nil {
			return err
		}
		if i.consumeBreak() {
			return nil
		}
		if s.Step != nil {
			if _, err := i.Eval(s.Step); err != nil {
				return err
			}
		}
	}
}

// runLoopBody executes one loop-body statement, swallowing a `continue`
// flag (the loop head already checked it doesn't need separate handling —
// the body just stops early, same as execBlock's early exit).
func (i *Interpreter) runLoopBody(body ast.Statement) error {
	if err := i.Exec(body); err != nil {
		return err
	}
	if i.continued {
		i.continued = false
	}
	return nil
}

// consumeBreak reports a pending break and clears it.
func (i *Interpreter) consumeBreak() bool {
	if i.broken {
		i.broken = false
		return true
	}
	return false
}

func (i *Interpreter) execReturn(s *ast.Return) error {
	if s.Value == nil {
		return &returnSignal{}
	}
	v, err := i.Eval(s.Value)
	if err != nil {
		return err
	}
	return &returnSignal{Value: v}
}

func (i *Interpreter) execDelete(s *ast.Delete) error {
	if !i.env.HasLocal(s.Name) {
		return i.err(s.Pos(), "%q is not defined in this scope", s.Name)
	}
	i.env.Forget(s.Name)
	return nil
}

// execVariable evaluates a typed declaration, routing class-typed
// declarations through instance construction and everything else through
// the Processor's assignment coercion (§4.5 "Variable").
func (i *Interpreter) execVariable(v *ast.Variable) error {
	if v.IsClassType {
		ref, ok := i.env.GetReference(v.TypeName)
		if !ok {
			return i.err(v.Pos(), "undefined class %q", v.TypeName)
		}
		cls, ok := ref.(*value.ClassValue)
		if !ok {
			return i.err(v.Pos(), "%q is not a class", v.TypeName)
		}
		instance := i.newInstance(cls)
		if v.Initialiser != nil {
			init, err := i.Eval(v.Initialiser)
			if err != nil {
				return err
			}
			assigned, err := i.proc.Assign(instance, init, v.Pos())
			if err != nil {
				return err
			}
			instance = assigned.(*value.InstanceValue)
		}
		return i.env.Define(v.Name, instance)
	}

	target := zeroValue(v.TypeName)
	var init value.Value = target
	if v.Initialiser != nil {
		val, err := i.Eval(v.Initialiser)
		if err != nil {
			return err
		}
		init = val
	}
	assigned, err := i.proc.Assign(target, init, v.Pos())
	if err != nil {
		return err
	}
	return i.env.Define(v.Name, assigned)
}

// execVectorDecl declares a Bra/Ket-tagged Vector, reusing the Processor's
// direction-preserving assignment for an initialiser of either direction
// (§4.5 "Vector: direction encoded in the declarator lexeme").
func (i *Interpreter) execVectorDecl(v *ast.VectorDecl) error {
	dir := value.Ket
	if v.IsBra {
		dir = value.Bra
	}
	target := &value.VectorValue{Dir: dir}
	if v.Initialiser == nil {
		return i.env.Define(v.Name, target)
	}
	init, err := i.Eval(v.Initialiser)
	if err != nil {
		return err
	}
	assigned, err := i.proc.Assign(target, init, v.Pos())
	if err != nil {
		return err
	}
	return i.env.Define(v.Name, assigned)
}
