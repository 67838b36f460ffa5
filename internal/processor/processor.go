// Package processor is the stateless typed-operator engine (§4.4). It forms a composite (TagA, TagB) key for every binary operation
// and looks the pair up in a per-operator dispatch table, retrying the
// swapped key for commutative operators when the original pairing is
// unhandled.
package processor

import (
	"fmt"

	"github.com/spin-lang/spin/internal/lexer"
	"github.com/spin-lang/spin/internal/spinerr"
	"github.com/spin-lang/spin/internal/value"
)

// key is the composite (typeA, typeB) dispatch key (§4.4 "(typeA << 8) |
// typeB"); Go's map equality over a small struct serves the same purpose
// without the bit-packing the original needed in a language without
// structural map keys.
type key struct {
	A, B value.BasicType
}

// binHandler computes a binary operation's result from already-typed,
// already-owned operands.
type binHandler func(a, b value.Value) (value.Value, error)

// unaryHandler computes a unary operation's result.
type unaryHandler func(a value.Value) (value.Value, error)

// table is one operator's dispatch table.
type table map[key]binHandler

// commutative marks operators where a missing (A,B) entry is retried as
// (B,A) (§4.4: "addition, multiplication, bitwise AND/OR/XOR, equality").
var commutative = map[lexer.TokenKind]bool{
	lexer.OpPlus:  true,
	lexer.OpStar:  true,
	lexer.OpAmp:   true,
	lexer.OpPipe:  true,
	lexer.OpCaret: true,
	lexer.OpEq:    true,
}

// Processor is the stateless operator engine. It is not a singleton: New
// builds one per Interpreter, carrying only the file name and source used
// to attribute diagnostics; the dispatch tables are package-level.
type Processor struct {
	file   string
	source string
}

// New returns a Processor that attributes diagnostics to file/source.
func New(file, source string) *Processor {
	return &Processor{file: file, source: source}
}

func (p *Processor) err(pos uint32, format string, args ...any) error {
	line, col := spinerr.ResolveLine(p.source, pos)
	return spinerr.New(spinerr.Evaluation, p.file, line, col, format, args...)
}

// Binary dispatches a.op(b) through the table for op (§4.4).
func (p *Processor) Binary(op lexer.TokenKind, a, b value.Value, pos uint32) (value.Value, error) {
	t, ok := binaryTables[op]
	if !ok {
		return nil, p.err(pos, "unsupported binary operator %s", op)
	}
	k := key{A: a.Tag(), B: b.Tag()}
	if h, ok := t[k]; ok {
		result, err := h(a, b)
		return result, p.wrap(err, pos)
	}
	if commutative[op] {
		if h, ok := t[key{A: b.Tag(), B: a.Tag()}]; ok {
			result, err := h(b, a)
			return result, p.wrap(err, pos)
		}
	}
	return nil, p.err(pos, "operator %s not defined for %s and %s", op, a.Tag(), b.Tag())
}

// Compare dispatches an equality/ordering operator (§4.4 "== and != use
// two tables -- strict ... and mixed ...; != is !(==)").
func (p *Processor) Compare(op lexer.TokenKind, a, b value.Value, pos uint32) (value.Value, error) {
	if op == lexer.OpNotEq {
		eq, err := p.Compare(lexer.OpEq, a, b, pos)
		if err != nil {
			return nil, err
		}
		return &value.BooleanValue{Val: !eq.(*value.BooleanValue).Val}, nil
	}
	return p.Binary(op, a, b, pos)
}

// Unary dispatches a prefix/postfix unary operator (§4.4 "Unary tables").
func (p *Processor) Unary(op lexer.TokenKind, a value.Value, pos uint32) (value.Value, error) {
	t, ok := unaryTables[op]
	if !ok {
		return nil, p.err(pos, "unsupported unary operator %s", op)
	}
	h, ok := t[a.Tag()]
	if !ok {
		return nil, p.err(pos, "operator %s not defined for %s", op, a.Tag())
	}
	result, err := h(a)
	return result, p.wrap(err, pos)
}

func (p *Processor) wrap(err error, pos uint32) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*spinerr.Error); ok {
		return err
	}
	return p.err(pos, "%v", err)
}

func badPair(op string, a, b value.BasicType) error {
	return fmt.Errorf("%s not defined for %s and %s", op, a, b)
}
