package ast

import (
	"strings"

	"github.com/spin-lang/spin/internal/lexer"
)

// AccessModifier is a declaration-level access control (§4.3 "class body").
type AccessModifier int

const (
	Public AccessModifier = iota
	Hidden
	Secure
	Immune
)

func (a AccessModifier) String() string {
	switch a {
	case Public:
		return "@public"
	case Hidden:
		return "@hidden"
	case Secure:
		return "@secure"
	case Immune:
		return "@immune"
	default:
		return "?"
	}
}

// Member is one class-body declaration: a field (Variable) or a method
// (Function/Procedure), annotated with its access modifier and storage
// specifiers. `@static` lowers to Hidden+Static; `@shared` lowers to
// Public+Static (§4.3 "@static => hidden + class-scoped; @shared => public
// + class-scoped").
type Member struct {
	Token      lexer.Token
	Modifier   AccessModifier
	Static     bool // class-scoped storage rather than per-instance
	IsCreate   bool // @create: constructor, must be named after the class
	IsDelete   bool // @delete: destructor, must take no parameters
	Decl       Statement
}

func (m *Member) String() string {
	var out strings.Builder
	out.WriteString(m.Modifier.String())
	if m.Static {
		out.WriteString(" @static")
	}
	if m.IsCreate {
		out.WriteString(" @create")
	}
	if m.IsDelete {
		out.WriteString(" @delete")
	}
	out.WriteString(" ")
	out.WriteString(m.Decl.String())
	return out.String()
}

// Class is `class Name { member... }` (§4.3 "class body", §4.5 "Class").
// The parser keeps every member in Members; the interpreter evaluates the
// static attributes when the class statement runs and keeps the dynamic
// declarations to replay at instantiation; atCreate is
// picked out from Members by IsCreate for the interpreter's convenience.
type Class struct {
	Token   lexer.Token
	Name    string
	Members []*Member
}

func (c *Class) statementNode()     {}
func (c *Class) TokenLiteral() string { return c.Token.Lexeme }
func (c *Class) Pos() uint32          { return c.Token.Position }
func (c *Class) String() string {
	var out strings.Builder
	out.WriteString("class " + c.Name + " {\n")
	for _, m := range c.Members {
		out.WriteString("  " + m.String() + "\n")
	}
	out.WriteString("}")
	return out.String()
}

// AtCreate returns the class's constructor member, if one was declared.
func (c *Class) AtCreate() *Member {
	for _, m := range c.Members {
		if m.IsCreate {
			return m
		}
	}
	return nil
}

// AtDelete returns the class's destructor member, if one was declared.
func (c *Class) AtDelete() *Member {
	for _, m := range c.Members {
		if m.IsDelete {
			return m
		}
	}
	return nil
}
