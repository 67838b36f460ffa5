package interp

import (
	"github.com/spin-lang/spin/internal/ast"
	"github.com/spin-lang/spin/internal/value"
)

// execClass builds the Class descriptor: static attributes are evaluated
// now, dynamic (per-instance) field declarations are kept for replay, and
// methods are wrapped as unbound Routines closed over the declaring scope
// (§4.5 "Class: build the Class descriptor").
func (i *Interpreter) execClass(c *ast.Class) error {
	cls := &value.ClassValue{
		Name:          c.Name,
		StaticMembers: map[string]*value.Slot{},
		Methods:       map[string]*value.Slot{},
	}
	closure := i.env

	for _, m := range c.Members {
		switch decl := m.Decl.(type) {
		case *ast.Variable:
			if m.Static {
				val, err := i.staticFieldValue(decl)
				if err != nil {
					return err
				}
				cls.StaticMembers[decl.Name] = &value.Slot{Modifier: m.Modifier, Value: val}
				continue
			}
			cls.DynamicAttributes = append(cls.DynamicAttributes, m)

		case *ast.Function:
			rv := &value.RoutineValue{Kind: value.FunctionRoutine, Name: decl.Name, FuncDecl: decl, Closure: closure}
			if m.Static {
				cls.StaticMembers[decl.Name] = &value.Slot{Modifier: m.Modifier, Value: rv}
			} else {
				cls.Methods[decl.Name] = &value.Slot{Modifier: m.Modifier, Value: rv}
			}

		case *ast.Procedure:
			rv := &value.RoutineValue{Kind: value.ProcedureRoutine, Name: decl.Name, ProcDecl: decl, Closure: closure}
			switch {
			case m.IsCreate:
				cls.AtCreate = rv
			case m.IsDelete:
				cls.AtDelete = rv
			case m.Static:
				cls.StaticMembers[decl.Name] = &value.Slot{Modifier: m.Modifier, Value: rv}
			default:
				cls.Methods[decl.Name] = &value.Slot{Modifier: m.Modifier, Value: rv}
			}
		}
	}

	return i.env.Define(c.Name, cls)
}

func (i *Interpreter) staticFieldValue(decl *ast.Variable) (value.Value, error) {
	target := zeroValue(decl.TypeName)
	if decl.Initialiser == nil {
		return target, nil
	}
	init, err := i.Eval(decl.Initialiser)
	if err != nil {
		return nil, err
	}
	return i.proc.Assign(target, init, decl.Pos())
}

// newInstance replays a class's dynamic attributes into a fresh, empty
// instance: fields get their declared default (evaluated in the class's own
// closure scope, not the caller's), methods share the class's unbound
// Routine handles (§4.5 "construct an empty instance").
func (i *Interpreter) newInstance(cls *value.ClassValue) *value.InstanceValue {
	attrs := make(map[string]*value.Slot, len(cls.DynamicAttributes)+len(cls.Methods))
	for name, slot := range cls.Methods {
		attrs[name] = &value.Slot{Modifier: slot.Modifier, Value: slot.Value}
	}
	for _, m := range cls.DynamicAttributes {
		decl := m.Decl.(*ast.Variable)
		val := i.fieldDefault(decl)
		attrs[decl.Name] = &value.Slot{Modifier: m.Modifier, Value: val}
	}
	return &value.InstanceValue{Type: cls, Attributes: attrs}
}

func (i *Interpreter) fieldDefault(decl *ast.Variable) value.Value {
	if decl.Initialiser == nil {
		return zeroValue(decl.TypeName)
	}
	v, err := i.Eval(decl.Initialiser)
	if err != nil {
		return zeroValue(decl.TypeName)
	}
	assigned, err := i.proc.Assign(zeroValue(decl.TypeName), v, decl.Pos())
	if err != nil {
		return zeroValue(decl.TypeName)
	}
	return assigned
}
