package value

import "github.com/spin-lang/spin/internal/ast"

// AccessModifier mirrors ast.AccessModifier at the value layer so the
// runtime attribute maps don't need to import the parser's AST package
// beyond the declaration nodes they replay (§3 "AccessModifier").
type AccessModifier = ast.AccessModifier

const (
	Public = ast.Public
	Hidden = ast.Hidden
	Secure = ast.Secure
	Immune = ast.Immune
)

// Slot pairs a stored Object with the access modifier that governs it
// (§3 "map<String, (AccessModifier, Object)>").
type Slot struct {
	Modifier AccessModifier
	Value    Value
}

// ClassValue is the shared, non-owning class descriptor (§3 "Class").
// Class and Routine payloads are shared by handle rather than deep-copied
// (invariant c), so ClassValue.Copy returns the same pointer.
type ClassValue struct {
	Name              string
	StaticMembers     map[string]*Slot
	DynamicAttributes []*ast.Member // field declarations replayed at instantiation
	Methods           map[string]*Slot
	AtCreate          *RoutineValue
	AtDelete          *RoutineValue
}

func (c *ClassValue) Tag() BasicType { return Class }
func (c *ClassValue) String() string { return "class " + c.Name }
func (c *ClassValue) Copy() Value    { return c } // shared handle, not deep-copied

// InstanceValue is one object of a ClassValue, deep-copied by value on
// assignment (§3 "Instance"). Every instance owns its own attribute map.
type InstanceValue struct {
	Type       *ClassValue
	Attributes map[string]*Slot
}

func (i *InstanceValue) Tag() BasicType { return Instance }
func (i *InstanceValue) String() string {
	if i.Type == nil {
		return "instance"
	}
	return "instance of " + i.Type.Name
}

// Copy deep-copies every attribute, preserving Instance's by-value
// assignment semantics (§3 invariant d, §7 "Assignment identity for
// Instances").
func (i *InstanceValue) Copy() Value {
	attrs := make(map[string]*Slot, len(i.Attributes))
	for name, slot := range i.Attributes {
		attrs[name] = &Slot{Modifier: slot.Modifier, Value: slot.Value.Copy()}
	}
	return &InstanceValue{Type: i.Type, Attributes: attrs}
}

// SameClass reports whether two instances share the same Class definition,
// the requirement for instance-to-instance assignment (§4.4 "Assigning
// between two Instances requires they share the same Class definition").
func (i *InstanceValue) SameClass(o *InstanceValue) bool {
	return i.Type == o.Type
}
