package interp

import (
	"github.com/spin-lang/spin/internal/ast"
	"github.com/spin-lang/spin/internal/lexer"
	"github.com/spin-lang/spin/internal/value"
)

// Eval dispatches one Expression node to its typed result (§4.5).
func (i *Interpreter) Eval(expr ast.Expression) (value.Value, error) {
	switch e := expr.(type) {
	case *ast.IntegerLiteral:
		return i.literal(e, &value.IntegerValue{Val: e.Value})
	case *ast.RealLiteral:
		return i.literal(e, &value.RealValue{Val: e.Value})
	case *ast.ImaginaryLiteral:
		return i.literal(e, &value.ImaginaryValue{Val: e.Value})
	case *ast.StringLiteral:
		return i.literal(e, &value.StringValue{Val: e.Value})
	case *ast.CharacterLiteral:
		return i.literal(e, &value.CharacterValue{Val: e.Value})
	case *ast.BooleanLiteral:
		return i.literal(e, &value.BooleanValue{Val: e.Value})
	case *ast.RealIdiomLiteral:
		return i.evalRealIdiom(e)
	case *ast.ListLiteral:
		return i.evalList(e)
	case *ast.Identifier:
		return i.evalIdentifier(e)
	case *ast.SelfExpr:
		return i.evalSelf(e)
	case *ast.Bra:
		return i.evalBra(e)
	case *ast.Ket:
		return i.evalKet(e)
	case *ast.Inner:
		return i.evalInner(e)
	case *ast.Outer:
		return i.evalOuter(e)
	case *ast.Grouping:
		return i.Eval(e.Inner)
	case *ast.Unary:
		return i.evalUnary(e)
	case *ast.Postfix:
		return i.evalPostfix(e)
	case *ast.Binary:
		return i.evalBinary(e)
	case *ast.Logical:
		return i.evalLogical(e)
	case *ast.Assignment:
		return i.evalAssignment(e)
	case *ast.Mutable:
		return i.evalMutable(e)
	case *ast.Subscript:
		return i.evalSubscript(e)
	case *ast.Call:
		return i.evalCall(e)
	case *ast.DynamicGet:
		return i.evalDynamicGet(e)
	case *ast.StaticGet:
		return i.evalStaticGet(e)
	case *ast.DynamicSet:
		return i.evalDynamicSet(e)
	case *ast.StaticSet:
		return i.evalStaticSet(e)
	default:
		return nil, i.err(expr.Pos(), "cannot evaluate %T", expr)
	}
}

// literal caches a node's canonical Value on first evaluation and returns a
// fresh copy on every subsequent visit, since an Object has exactly one
// owner (§4.5 "Literal: cached in the node after first evaluation").
func (i *Interpreter) literal(node ast.Expression, canonical value.Value) (value.Value, error) {
	if cached, ok := i.litCache[node]; ok {
		return cached.Copy(), nil
	}
	i.litCache[node] = canonical
	return canonical.Copy(), nil
}

// evalRealIdiom evaluates the two named Real idioms (§6).
func (i *Interpreter) evalRealIdiom(e *ast.RealIdiomLiteral) (value.Value, error) {
	switch e.Name {
	case "infinity":
		return i.literal(e, &value.RealValue{Val: posInf})
	case "undefined":
		return i.literal(e, &value.RealValue{Val: nan})
	default:
		return nil, i.err(e.Pos(), "unknown real idiom %q", e.Name)
	}
}

func (i *Interpreter) evalList(e *ast.ListLiteral) (value.Value, error) {
	elems := make([]value.Value, len(e.Elements))
	for idx, el := range e.Elements {
		v, err := i.Eval(el)
		if err != nil {
			return nil, err
		}
		elems[idx] = v
	}
	return &value.ArrayValue{Elements: elems}, nil
}

func (i *Interpreter) evalIdentifier(e *ast.Identifier) (value.Value, error) {
	v, ok := i.env.GetValue(e.Name)
	if !ok {
		return nil, i.err(e.Pos(), "undefined identifier %q", e.Name)
	}
	return v, nil
}

// evalSelf fetches the bound instance by reference, not by the copying
// GetValue every other identifier read goes through: self must stay the
// one live Instance so that self.field = ... and self.method() mutations
// are visible after the statement returns, not lost on a throwaway copy.
func (i *Interpreter) evalSelf(e *ast.SelfExpr) (value.Value, error) {
	v, ok := i.env.GetReference("self")
	if !ok {
		return nil, i.err(e.Pos(), "'self' used outside a bound method call")
	}
	return v, nil
}

func (i *Interpreter) lookupVector(name string, pos uint32) (*value.VectorValue, error) {
	v, ok := i.env.GetValue(name)
	if !ok {
		return nil, i.err(pos, "undefined identifier %q", name)
	}
	vec, ok := v.(*value.VectorValue)
	if !ok {
		return nil, i.err(pos, "%q is not a Vector", name)
	}
	return vec, nil
}

func (i *Interpreter) evalBra(e *ast.Bra) (value.Value, error) {
	vec, err := i.lookupVector(e.Name, e.Pos())
	if err != nil {
		return nil, err
	}
	if vec.Dir == value.Bra {
		return vec.Copy(), nil
	}
	return vec.ConjugateTranspose(), nil
}

func (i *Interpreter) evalKet(e *ast.Ket) (value.Value, error) {
	vec, err := i.lookupVector(e.Name, e.Pos())
	if err != nil {
		return nil, err
	}
	if vec.Dir == value.Ket {
		return vec.Copy(), nil
	}
	return vec.ConjugateTranspose(), nil
}

func (i *Interpreter) evalInner(e *ast.Inner) (value.Value, error) {
	bra, err := i.lookupVector(e.BraName, e.Pos())
	if err != nil {
		return nil, err
	}
	if bra.Dir != value.Bra {
		bra = bra.ConjugateTranspose()
	}
	ket, err := i.lookupVector(e.KetName, e.Pos())
	if err != nil {
		return nil, err
	}
	if ket.Dir != value.Ket {
		ket = ket.ConjugateTranspose()
	}
	result, err := value.Inner(bra, ket)
	if err != nil {
		return nil, i.err(e.Pos(), "%v", err)
	}
	return result, nil
}

func (i *Interpreter) evalOuter(e *ast.Outer) (value.Value, error) {
	ket, err := i.lookupVector(e.KetName, e.Pos())
	if err != nil {
		return nil, err
	}
	if ket.Dir != value.Ket {
		ket = ket.ConjugateTranspose()
	}
	bra, err := i.lookupVector(e.BraName, e.Pos())
	if err != nil {
		return nil, err
	}
	if bra.Dir != value.Bra {
		bra = bra.ConjugateTranspose()
	}
	result, err := value.Outer(ket, bra)
	if err != nil {
		return nil, i.err(e.Pos(), "%v", err)
	}
	return result, nil
}

func (i *Interpreter) evalUnary(e *ast.Unary) (value.Value, error) {
	operand, err := i.Eval(e.Operand)
	if err != nil {
		return nil, err
	}
	return i.proc.Unary(e.Operator, operand, e.Pos())
}

func (i *Interpreter) evalPostfix(e *ast.Postfix) (value.Value, error) {
	operand, err := i.Eval(e.Operand)
	if err != nil {
		return nil, err
	}
	return i.proc.Unary(e.Operator, operand, e.Pos())
}

func (i *Interpreter) evalBinary(e *ast.Binary) (value.Value, error) {
	l, err := i.Eval(e.Left)
	if err != nil {
		return nil, err
	}
	r, err := i.Eval(e.Right)
	if err != nil {
		return nil, err
	}
	return i.proc.Compare(e.Operator, l, r, e.Pos())
}

// evalLogical short-circuits && and || (§4.5 "Logical: short-circuit").
func (i *Interpreter) evalLogical(e *ast.Logical) (value.Value, error) {
	l, err := i.Eval(e.Left)
	if err != nil {
		return nil, err
	}
	lb, ok := l.(*value.BooleanValue)
	if !ok {
		return nil, i.err(e.Pos(), "left side of %s must be Boolean, got %s", e.Token.Lexeme, l.Tag())
	}
	if e.Operator == lexer.OpAnd && !lb.Val {
		return &value.BooleanValue{Val: false}, nil
	}
	if e.Operator == lexer.OpOr && lb.Val {
		return &value.BooleanValue{Val: true}, nil
	}
	r, err := i.Eval(e.Right)
	if err != nil {
		return nil, err
	}
	rb, ok := r.(*value.BooleanValue)
	if !ok {
		return nil, i.err(e.Pos(), "right side of %s must be Boolean, got %s", e.Token.Lexeme, r.Tag())
	}
	return &value.BooleanValue{Val: rb.Val}, nil
}

func (i *Interpreter) evalAssignment(e *ast.Assignment) (value.Value, error) {
	ref, ok := i.env.GetReference(e.Target.Name)
	if !ok {
		return nil, i.err(e.Pos(), "undefined identifier %q", e.Target.Name)
	}
	rhs, err := i.Eval(e.Value)
	if err != nil {
		return nil, err
	}
	assigned, err := i.proc.Assign(ref, rhs, e.Pos())
	if err != nil {
		return nil, err
	}
	i.env.Assign(e.Target.Name, assigned)
	return assigned, nil
}

func (i *Interpreter) evalMutable(e *ast.Mutable) (value.Value, error) {
	ref, ok := i.env.GetReference(e.Target.Name)
	if !ok {
		return nil, i.err(e.Pos(), "undefined identifier %q", e.Target.Name)
	}
	rhs, err := i.Eval(e.Value)
	if err != nil {
		return nil, err
	}
	assigned, err := i.proc.CompoundAssign(e.Operator, ref, rhs, e.Pos())
	if err != nil {
		return nil, err
	}
	i.env.Assign(e.Target.Name, assigned)
	return assigned, nil
}

func (i *Interpreter) evalSubscript(e *ast.Subscript) (value.Value, error) {
	target, err := i.Eval(e.Target)
	if err != nil {
		return nil, err
	}
	idx, err := i.Eval(e.Index)
	if err != nil {
		return nil, err
	}
	return i.proc.Subscript(target, idx, e.Pos())
}

func (i *Interpreter) evalDynamicGet(e *ast.DynamicGet) (value.Value, error) {
	obj, err := i.Eval(e.Object)
	if err != nil {
		return nil, err
	}
	switch o := obj.(type) {
	case *value.InstanceValue:
		slot, ok := o.Attributes[e.Name]
		if !ok {
			return nil, i.err(e.Pos(), "%s has no attribute %q", o.Type.Name, e.Name)
		}
		if slot.Modifier == value.Hidden && !e.SelfReference {
			return nil, i.err(e.Pos(), "%q is hidden outside its own methods", e.Name)
		}
		if rv, ok := slot.Value.(*value.RoutineValue); ok {
			return rv.BindSelf(o), nil
		}
		return slot.Value.Copy(), nil
	case *value.ClassValue:
		slot, ok := o.StaticMembers[e.Name]
		if !ok {
			return nil, i.err(e.Pos(), "%s has no static member %q", o.Name, e.Name)
		}
		if slot.Modifier == value.Hidden && !e.SelfReference {
			return nil, i.err(e.Pos(), "%q is hidden outside its own methods", e.Name)
		}
		if rv, ok := slot.Value.(*value.RoutineValue); ok {
			return rv, nil
		}
		return slot.Value.Copy(), nil
	default:
		return nil, i.err(e.Pos(), "cannot access %q on a %s", e.Name, obj.Tag())
	}
}

func (i *Interpreter) evalStaticGet(e *ast.StaticGet) (value.Value, error) {
	obj, err := i.Eval(e.Object)
	if err != nil {
		return nil, err
	}
	cls, ok := obj.(*value.ClassValue)
	if !ok {
		return nil, i.err(e.Pos(), "'::' requires a Class on the left, got %s", obj.Tag())
	}
	slot, ok := cls.StaticMembers[e.Name]
	if !ok {
		return nil, i.err(e.Pos(), "%s has no static member %q", cls.Name, e.Name)
	}
	if slot.Modifier == value.Hidden {
		return nil, i.err(e.Pos(), "%q is hidden outside its own methods", e.Name)
	}
	if rv, ok := slot.Value.(*value.RoutineValue); ok {
		return rv, nil
	}
	return slot.Value.Copy(), nil
}

func (i *Interpreter) evalDynamicSet(e *ast.DynamicSet) (value.Value, error) {
	obj, err := i.Eval(e.Object)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*value.InstanceValue)
	if !ok {
		return nil, i.err(e.Pos(), "'.' assignment requires an Instance, got %s", obj.Tag())
	}
	slot, ok := inst.Attributes[e.Name]
	if !ok {
		return nil, i.err(e.Pos(), "%s has no attribute %q", inst.Type.Name, e.Name)
	}
	if !e.SelfReference {
		switch slot.Modifier {
		case value.Hidden, value.Secure, value.Immune:
			return nil, i.err(e.Pos(), "%q cannot be assigned from outside its class", e.Name)
		}
	}
	rhs, err := i.Eval(e.Value)
	if err != nil {
		return nil, err
	}
	assigned, err := i.proc.Assign(slot.Value, rhs, e.Pos())
	if err != nil {
		return nil, err
	}
	slot.Value = assigned
	return assigned, nil
}

func (i *Interpreter) evalStaticSet(e *ast.StaticSet) (value.Value, error) {
	obj, err := i.Eval(e.Object)
	if err != nil {
		return nil, err
	}
	cls, ok := obj.(*value.ClassValue)
	if !ok {
		return nil, i.err(e.Pos(), "'::' assignment requires a Class on the left, got %s", obj.Tag())
	}
	slot, ok := cls.StaticMembers[e.Name]
	if !ok {
		return nil, i.err(e.Pos(), "%s has no static member %q", cls.Name, e.Name)
	}
	if slot.Modifier != value.Public {
		return nil, i.err(e.Pos(), "%q is not assignable from outside its class", e.Name)
	}
	rhs, err := i.Eval(e.Value)
	if err != nil {
		return nil, err
	}
	assigned, err := i.proc.Assign(slot.Value, rhs, e.Pos())
	if err != nil {
		return nil, err
	}
	slot.Value = assigned
	return assigned, nil
}
