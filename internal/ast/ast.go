// Package ast defines the Abstract Syntax Tree node types produced by the
// parser. Expression and Statement are a Visitor-dispatched sum type (§3):
// every variant carries its own children and its originating Token for
// diagnostics.
package ast

import (
	"bytes"
	"strings"

	"github.com/spin-lang/spin/internal/lexer"
)

// Node is the base interface every AST node implements.
type Node interface {
	TokenLiteral() string
	String() string
	Pos() uint32
}

// Expression is any node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is any node that performs an action but produces no value.
type Statement interface {
	Node
	statementNode()
}

// Program is the root node: the statement list plus the library set a
// SyntaxTree carries (§3 SyntaxTree, §4.3 "Output").
type Program struct {
	Statements []Statement
	Libraries  []string
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, s := range p.Statements {
		out.WriteString(s.String())
	}
	return out.String()
}

func (p *Program) Pos() uint32 {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return 0
}

// ---------------------------------------------------------------------
// Expressions
// ---------------------------------------------------------------------

// Identifier is a variable/function/class name reference.
type Identifier struct {
	Token lexer.Token
	Name  string
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Lexeme }
func (i *Identifier) String() string       { return i.Name }
func (i *Identifier) Pos() uint32          { return i.Token.Position }

// SelfExpr is the `self` reference, valid only inside a class body (§4.3).
type SelfExpr struct{ Token lexer.Token }

func (s *SelfExpr) expressionNode()      {}
func (s *SelfExpr) TokenLiteral() string { return s.Token.Lexeme }
func (s *SelfExpr) String() string       { return "self" }
func (s *SelfExpr) Pos() uint32          { return s.Token.Position }

// IntegerLiteral, RealLiteral, ImaginaryLiteral, StringLiteral,
// CharacterLiteral, BooleanLiteral, RealIdiomLiteral are cached on first
// evaluation by the interpreter (§4.5 "Literal: cached in the node after
// first evaluation"); the cache lives outside ast to keep this package
// free of a dependency on the runtime value model (see interp.litCache).

type IntegerLiteral struct {
	Token lexer.Token
	Value int64
}

func (l *IntegerLiteral) expressionNode()      {}
func (l *IntegerLiteral) TokenLiteral() string { return l.Token.Lexeme }
func (l *IntegerLiteral) String() string       { return l.Token.Lexeme }
func (l *IntegerLiteral) Pos() uint32          { return l.Token.Position }

type RealLiteral struct {
	Token lexer.Token
	Value float64
}

func (l *RealLiteral) expressionNode()      {}
func (l *RealLiteral) TokenLiteral() string { return l.Token.Lexeme }
func (l *RealLiteral) String() string       { return l.Token.Lexeme }
func (l *RealLiteral) Pos() uint32          { return l.Token.Position }

type ImaginaryLiteral struct {
	Token lexer.Token
	Value float64 // coefficient of i
}

func (l *ImaginaryLiteral) expressionNode()      {}
func (l *ImaginaryLiteral) TokenLiteral() string { return l.Token.Lexeme }
func (l *ImaginaryLiteral) String() string       { return l.Token.Lexeme }
func (l *ImaginaryLiteral) Pos() uint32          { return l.Token.Position }

type StringLiteral struct {
	Token lexer.Token
	Value string
}

func (l *StringLiteral) expressionNode()      {}
func (l *StringLiteral) TokenLiteral() string { return l.Token.Lexeme }
func (l *StringLiteral) String() string       { return "\"" + l.Value + "\"" }
func (l *StringLiteral) Pos() uint32          { return l.Token.Position }

type CharacterLiteral struct {
	Token lexer.Token
	Value rune
}

func (l *CharacterLiteral) expressionNode()      {}
func (l *CharacterLiteral) TokenLiteral() string { return l.Token.Lexeme }
func (l *CharacterLiteral) String() string       { return "'" + string(l.Value) + "'" }
func (l *CharacterLiteral) Pos() uint32          { return l.Token.Position }

type BooleanLiteral struct {
	Token lexer.Token
	Value bool
}

func (l *BooleanLiteral) expressionNode()      {}
func (l *BooleanLiteral) TokenLiteral() string { return l.Token.Lexeme }
func (l *BooleanLiteral) String() string       { return l.Token.Lexeme }
func (l *BooleanLiteral) Pos() uint32          { return l.Token.Position }

// RealIdiomLiteral covers the two named idioms `infinity` and `undefined`
// (§6), both of which evaluate to a Real.
type RealIdiomLiteral struct {
	Token lexer.Token
	Name  string // "infinity" or "undefined"
}

func (l *RealIdiomLiteral) expressionNode()      {}
func (l *RealIdiomLiteral) TokenLiteral() string { return l.Token.Lexeme }
func (l *RealIdiomLiteral) String() string       { return l.Name }
func (l *RealIdiomLiteral) Pos() uint32          { return l.Token.Position }

// ListLiteral is `[ e1, e2, ... ]`, evaluating to an Array (§4.3 primary).
type ListLiteral struct {
	Token    lexer.Token
	Elements []Expression
}

func (l *ListLiteral) expressionNode()      {}
func (l *ListLiteral) TokenLiteral() string { return l.Token.Lexeme }
func (l *ListLiteral) Pos() uint32          { return l.Token.Position }
func (l *ListLiteral) String() string {
	var parts []string
	for _, e := range l.Elements {
		parts = append(parts, e.String())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Bra is `<name|`, coerced to bra direction on lookup (§4.3, §4.5).
type Bra struct {
	Token lexer.Token
	Name  string
}

func (b *Bra) expressionNode()      {}
func (b *Bra) TokenLiteral() string { return b.Token.Lexeme }
func (b *Bra) String() string       { return "<" + b.Name + "|" }
func (b *Bra) Pos() uint32          { return b.Token.Position }

// Ket is `|name>`.
type Ket struct {
	Token lexer.Token
	Name  string
}

func (k *Ket) expressionNode()      {}
func (k *Ket) TokenLiteral() string { return k.Token.Lexeme }
func (k *Ket) String() string       { return "|" + k.Name + ">" }
func (k *Ket) Pos() uint32          { return k.Token.Position }

// Inner is `<a|b>`, the bra/ket inner product (§3 Glossary).
type Inner struct {
	Token    lexer.Token
	BraName  string
	KetName  string
}

func (i *Inner) expressionNode()      {}
func (i *Inner) TokenLiteral() string { return i.Token.Lexeme }
func (i *Inner) String() string       { return "<" + i.BraName + "|" + i.KetName + ">" }
func (i *Inner) Pos() uint32          { return i.Token.Position }

// Outer is `|a><b|`, the bra/ket outer product.
type Outer struct {
	Token   lexer.Token
	KetName string
	BraName string
}

func (o *Outer) expressionNode()      {}
func (o *Outer) TokenLiteral() string { return o.Token.Lexeme }
func (o *Outer) String() string       { return "|" + o.KetName + "><" + o.BraName + "|" }
func (o *Outer) Pos() uint32          { return o.Token.Position }

// Grouping is a parenthesised expression, transparent at evaluation (§4.5).
type Grouping struct {
	Token lexer.Token
	Inner Expression
}

func (g *Grouping) expressionNode()      {}
func (g *Grouping) TokenLiteral() string { return g.Token.Lexeme }
func (g *Grouping) String() string       { return "(" + g.Inner.String() + ")" }
func (g *Grouping) Pos() uint32          { return g.Token.Position }

// Unary is a prefix operator: - + ~ !
type Unary struct {
	Token    lexer.Token
	Operator lexer.TokenKind
	Operand  Expression
}

func (u *Unary) expressionNode()      {}
func (u *Unary) TokenLiteral() string { return u.Token.Lexeme }
func (u *Unary) String() string       { return u.Token.Lexeme + u.Operand.String() }
func (u *Unary) Pos() uint32          { return u.Token.Position }

// Postfix is ° ^ ' applied after an operand (conjugate/transpose/dagger).
type Postfix struct {
	Token    lexer.Token
	Operator lexer.TokenKind
	Operand  Expression
}

func (p *Postfix) expressionNode()      {}
func (p *Postfix) TokenLiteral() string { return p.Token.Lexeme }
func (p *Postfix) String() string       { return p.Operand.String() + p.Token.Lexeme }
func (p *Postfix) Pos() uint32          { return p.Token.Position }

// Binary covers every left-associative infix operator at lowPrio/medPrio
// and the comparison/equality tiers above them (§4.3 grammar); `&&`/`||`
// build Logical instead.
type Binary struct {
	Token    lexer.Token
	Operator lexer.TokenKind
	Left     Expression
	Right    Expression
}

func (b *Binary) expressionNode()      {}
func (b *Binary) TokenLiteral() string { return b.Token.Lexeme }
func (b *Binary) String() string {
	return "(" + b.Left.String() + " " + b.Token.Lexeme + " " + b.Right.String() + ")"
}
func (b *Binary) Pos() uint32 { return b.Token.Position }

// Logical is the short-circuiting && / || (§4.5 "Logical").
type Logical struct {
	Token    lexer.Token
	Operator lexer.TokenKind
	Left     Expression
	Right    Expression
}

func (l *Logical) expressionNode()      {}
func (l *Logical) TokenLiteral() string { return l.Token.Lexeme }
func (l *Logical) String() string {
	return "(" + l.Left.String() + " " + l.Token.Lexeme + " " + l.Right.String() + ")"
}
func (l *Logical) Pos() uint32 { return l.Token.Position }

// Assignment is `target = value` where target is an Identifier.
type Assignment struct {
	Token  lexer.Token
	Target *Identifier
	Value  Expression
}

func (a *Assignment) expressionNode()      {}
func (a *Assignment) TokenLiteral() string { return a.Token.Lexeme }
func (a *Assignment) String() string       { return a.Target.String() + " = " + a.Value.String() }
func (a *Assignment) Pos() uint32          { return a.Token.Position }

// Mutable is a compound-assignment `target OP= value`, desugared to an
// in-place update rather than a Binary (§4.3 "Assignment desugaring").
type Mutable struct {
	Token    lexer.Token
	Operator lexer.TokenKind // the arithmetic half of the compound operator
	Target   *Identifier
	Value    Expression
}

func (m *Mutable) expressionNode()      {}
func (m *Mutable) TokenLiteral() string { return m.Token.Lexeme }
func (m *Mutable) String() string       { return m.Target.String() + " " + m.Token.Lexeme + " " + m.Value.String() }
func (m *Mutable) Pos() uint32          { return m.Token.Position }

// Subscript is `target[index]`.
type Subscript struct {
	Token  lexer.Token
	Target Expression
	Index  Expression
}

func (s *Subscript) expressionNode()      {}
func (s *Subscript) TokenLiteral() string { return s.Token.Lexeme }
func (s *Subscript) String() string       { return s.Target.String() + "[" + s.Index.String() + "]" }
func (s *Subscript) Pos() uint32          { return s.Token.Position }

// Call is `callee(args...)`, optionally marked as a constructor call by `new`.
type Call struct {
	Token     lexer.Token
	Callee    Expression
	Arguments []Expression
	IsNew     bool
}

func (c *Call) expressionNode()      {}
func (c *Call) TokenLiteral() string { return c.Token.Lexeme }
func (c *Call) String() string {
	var args []string
	for _, a := range c.Arguments {
		args = append(args, a.String())
	}
	prefix := ""
	if c.IsNew {
		prefix = "new "
	}
	return prefix + c.Callee.String() + "(" + strings.Join(args, ", ") + ")"
}
func (c *Call) Pos() uint32 { return c.Token.Position }

// DynamicGet is `object.name`, resolved against an Instance's attributes.
type DynamicGet struct {
	Token         lexer.Token
	Object        Expression
	Name          string
	SelfReference bool // chain began with `self` (§4.3 "self-reference flag")
}

func (g *DynamicGet) expressionNode()      {}
func (g *DynamicGet) TokenLiteral() string { return g.Token.Lexeme }
func (g *DynamicGet) String() string       { return g.Object.String() + "." + g.Name }
func (g *DynamicGet) Pos() uint32          { return g.Token.Position }

// StaticGet is `Type::name`, resolved against a Class's static members.
type StaticGet struct {
	Token  lexer.Token
	Object Expression
	Name   string
}

func (g *StaticGet) expressionNode()      {}
func (g *StaticGet) TokenLiteral() string { return g.Token.Lexeme }
func (g *StaticGet) String() string       { return g.Object.String() + "::" + g.Name }
func (g *StaticGet) Pos() uint32          { return g.Token.Position }

// DynamicSet is `object.name = value`.
type DynamicSet struct {
	Token         lexer.Token
	Object        Expression
	Name          string
	Value         Expression
	SelfReference bool
}

func (s *DynamicSet) expressionNode()      {}
func (s *DynamicSet) TokenLiteral() string { return s.Token.Lexeme }
func (s *DynamicSet) String() string {
	return s.Object.String() + "." + s.Name + " = " + s.Value.String()
}
func (s *DynamicSet) Pos() uint32 { return s.Token.Position }

// StaticSet is `Type::name = value`.
type StaticSet struct {
	Token  lexer.Token
	Object Expression
	Name   string
	Value  Expression
}

func (s *StaticSet) expressionNode()      {}
func (s *StaticSet) TokenLiteral() string { return s.Token.Lexeme }
func (s *StaticSet) String() string {
	return s.Object.String() + "::" + s.Name + " = " + s.Value.String()
}
func (s *StaticSet) Pos() uint32 { return s.Token.Position }
