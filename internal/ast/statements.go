package ast

import (
	"bytes"
	"strings"

	"github.com/spin-lang/spin/internal/lexer"
)

// ExpressionStatement wraps an expression used for its side effect.
type ExpressionStatement struct {
	Token      lexer.Token
	Expression Expression
}

func (s *ExpressionStatement) statementNode()     {}
func (s *ExpressionStatement) TokenLiteral() string { return s.Token.Lexeme }
func (s *ExpressionStatement) String() string       { return s.Expression.String() + ";" }
func (s *ExpressionStatement) Pos() uint32          { return s.Token.Position }

// Block is a brace-delimited statement sequence that creates a child
// environment (§4.5 "Block").
type Block struct {
	Token      lexer.Token
	Statements []Statement
}

func (b *Block) statementNode()     {}
func (b *Block) TokenLiteral() string { return b.Token.Lexeme }
func (b *Block) Pos() uint32          { return b.Token.Position }
func (b *Block) String() string {
	var out bytes.Buffer
	out.WriteString("{ ")
	for _, s := range b.Statements {
		out.WriteString(s.String())
	}
	out.WriteString(" }")
	return out.String()
}

// If is `if (cond) then [else else]`.
type If struct {
	Token     lexer.Token
	Condition Expression
	Then      Statement
	Else      Statement
}

func (i *If) statementNode()     {}
func (i *If) TokenLiteral() string { return i.Token.Lexeme }
func (i *If) Pos() uint32          { return i.Token.Position }
func (i *If) String() string {
	var out bytes.Buffer
	out.WriteString("if (" + i.Condition.String() + ") " + i.Then.String())
	if i.Else != nil {
		out.WriteString(" else " + i.Else.String())
	}
	return out.String()
}

// While is `while (cond) body`.
type While struct {
	Token     lexer.Token
	Condition Expression
	Body      Statement
}

func (w *While) statementNode()     {}
func (w *While) TokenLiteral() string { return w.Token.Lexeme }
func (w *While) Pos() uint32          { return w.Token.Position }
func (w *While) String() string       { return "while (" + w.Condition.String() + ") " + w.Body.String() }

// DoWhile is `do body while (cond);`.
type DoWhile struct {
	Token     lexer.Token
	Body      Statement
	Condition Expression
}

func (d *DoWhile) statementNode()     {}
func (d *DoWhile) TokenLiteral() string { return d.Token.Lexeme }
func (d *DoWhile) Pos() uint32          { return d.Token.Position }
func (d *DoWhile) String() string {
	return "do " + d.Body.String() + " while (" + d.Condition.String() + ");"
}

// Until is `until (cond) body` — loops while cond is false.
type Until struct {
	Token     lexer.Token
	Condition Expression
	Body      Statement
}

func (u *Until) statementNode()     {}
func (u *Until) TokenLiteral() string { return u.Token.Lexeme }
func (u *Until) Pos() uint32          { return u.Token.Position }
func (u *Until) String() string       { return "until (" + u.Condition.String() + ") " + u.Body.String() }

// RepeatUntil is `repeat body until (cond);` — body always runs once.
type RepeatUntil struct {
	Token     lexer.Token
	Body      Statement
	Condition Expression
}

func (r *RepeatUntil) statementNode()     {}
func (r *RepeatUntil) TokenLiteral() string { return r.Token.Lexeme }
func (r *RepeatUntil) Pos() uint32          { return r.Token.Position }
func (r *RepeatUntil) String() string {
	return "repeat " + r.Body.String() + " until (" + r.Condition.String() + ");"
}

// Loop is `loop body` — an unconditional loop, exited only by break/return.
type Loop struct {
	Token lexer.Token
	Body  Statement
}

func (l *Loop) statementNode()     {}
func (l *Loop) TokenLiteral() string { return l.Token.Lexeme }
func (l *Loop) Pos() uint32          { return l.Token.Position }
func (l *Loop) String() string       { return "loop " + l.Body.String() }

// For is `for (decl; cond; step) body`, wrapped in its own Block scope for
// the loop variable (§4.5 "For declares its loop variable in a fresh scope").
type For struct {
	Token       lexer.Token
	Declaration Statement
	Condition   Expression
	Step        Expression
	Body        Statement
}

func (f *For) statementNode()     {}
func (f *For) TokenLiteral() string { return f.Token.Lexeme }
func (f *For) Pos() uint32          { return f.Token.Position }
func (f *For) String() string {
	return "for (" + f.Declaration.String() + "; " + f.Condition.String() + "; " + f.Step.String() + ") " + f.Body.String()
}

// Break exits the nearest enclosing loop.
type Break struct{ Token lexer.Token }

func (b *Break) statementNode()     {}
func (b *Break) TokenLiteral() string { return b.Token.Lexeme }
func (b *Break) Pos() uint32          { return b.Token.Position }
func (b *Break) String() string       { return "break;" }

// Continue skips to the next iteration of the nearest enclosing loop.
type Continue struct{ Token lexer.Token }

func (c *Continue) statementNode()     {}
func (c *Continue) TokenLiteral() string { return c.Token.Lexeme }
func (c *Continue) Pos() uint32          { return c.Token.Position }
func (c *Continue) String() string       { return "continue;" }

// Rest is the no-op statement `rest;`.
type Rest struct{ Token lexer.Token }

func (r *Rest) statementNode()     {}
func (r *Rest) TokenLiteral() string { return r.Token.Lexeme }
func (r *Rest) Pos() uint32          { return r.Token.Position }
func (r *Rest) String() string       { return "rest;" }

// Return is `return;` or `return expr;`.
type Return struct {
	Token lexer.Token
	Value Expression // nil for a bare `return;`
}

func (r *Return) statementNode()     {}
func (r *Return) TokenLiteral() string { return r.Token.Lexeme }
func (r *Return) Pos() uint32          { return r.Token.Position }
func (r *Return) String() string {
	if r.Value == nil {
		return "return;"
	}
	return "return " + r.Value.String() + ";"
}

// Delete is `delete name;` — forgets a binding in the current frame (§4.5).
type Delete struct {
	Token lexer.Token
	Name  string
}

func (d *Delete) statementNode()     {}
func (d *Delete) TokenLiteral() string { return d.Token.Lexeme }
func (d *Delete) Pos() uint32          { return d.Token.Position }
func (d *Delete) String() string       { return "delete " + d.Name + ";" }

// `swap` is a reserved keyword with no grammar production and no AST node.

// Variable is a typed declaration: `BasicType name = init?;` or a
// class-typed declaration `ClassName name = new ClassName(args)?;`
// (§4.3 "variable declaration" / "class-typed declaration").
type Variable struct {
	Token       lexer.Token
	TypeName    string // one of the BasicType names, or a class name
	IsClassType bool
	Name        string
	Initialiser Expression // nil if absent
}

func (v *Variable) statementNode()     {}
func (v *Variable) TokenLiteral() string { return v.Token.Lexeme }
func (v *Variable) Pos() uint32          { return v.Token.Position }
func (v *Variable) String() string {
	if v.Initialiser == nil {
		return v.TypeName + " " + v.Name + ";"
	}
	return v.TypeName + " " + v.Name + " = " + v.Initialiser.String() + ";"
}

// VectorDecl is `vec <name| = expr?;` or `vec |name> = expr?;` — the
// leading `<`/`|` of the declarator lexeme fixes the Vector's direction
// (§4.5 "Vector: direction encoded in the declarator lexeme").
type VectorDecl struct {
	Token       lexer.Token
	Name        string
	IsBra       bool // true for <name|, false for |name>
	Initialiser Expression
}

func (v *VectorDecl) statementNode()     {}
func (v *VectorDecl) TokenLiteral() string { return v.Token.Lexeme }
func (v *VectorDecl) Pos() uint32          { return v.Token.Position }
func (v *VectorDecl) String() string {
	name := "<" + v.Name + "|"
	if !v.IsBra {
		name = "|" + v.Name + ">"
	}
	if v.Initialiser == nil {
		return "vec " + name + ";"
	}
	return "vec " + name + " = " + v.Initialiser.String() + ";"
}

// Parameter is one routine parameter: its BasicType/class name and name.
type Parameter struct {
	Token    lexer.Token
	TypeName string
	Name     string
}

func (p *Parameter) String() string { return p.Name + ": " + p.TypeName }

// Function is `func name(params) -> ReturnType { body }` (§4.5).
type Function struct {
	Token      lexer.Token
	Name       string
	Parameters []*Parameter
	ReturnType string
	Body       *Block
}

func (f *Function) statementNode()     {}
func (f *Function) TokenLiteral() string { return f.Token.Lexeme }
func (f *Function) Pos() uint32          { return f.Token.Position }
func (f *Function) String() string {
	var params []string
	for _, p := range f.Parameters {
		params = append(params, p.String())
	}
	return "func " + f.Name + "(" + strings.Join(params, ", ") + ") -> " + f.ReturnType + " " + f.Body.String()
}

// Procedure is `proc name(params) { body }` — no return value (§4.5).
type Procedure struct {
	Token      lexer.Token
	Name       string
	Parameters []*Parameter
	Body       *Block
}

func (p *Procedure) statementNode()     {}
func (p *Procedure) TokenLiteral() string { return p.Token.Lexeme }
func (p *Procedure) Pos() uint32          { return p.Token.Position }
func (p *Procedure) String() string {
	var params []string
	for _, pa := range p.Parameters {
		params = append(params, pa.String())
	}
	return "proc " + p.Name + "(" + strings.Join(params, ", ") + ") " + p.Body.String()
}

// File records the current file name for diagnostics (§4.5 "File").
type File struct {
	Token lexer.Token
	Name  string
}

func (f *File) statementNode()     {}
func (f *File) TokenLiteral() string { return f.Token.Lexeme }
func (f *File) Pos() uint32          { return f.Token.Position }
func (f *File) String() string       { return "// file: " + f.Name }
