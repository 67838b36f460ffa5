package processor

import (
	"github.com/spin-lang/spin/internal/lexer"
	"github.com/spin-lang/spin/internal/value"
)

type unaryTable map[value.BasicType]unaryHandler

var unaryTables = map[lexer.TokenKind]unaryTable{}

func init() {
	unaryTables[lexer.OpMinus] = unaryTable{
		value.Integer: func(a value.Value) (value.Value, error) {
			return &value.IntegerValue{Val: -a.(*value.IntegerValue).Val}, nil
		},
		value.Real: func(a value.Value) (value.Value, error) {
			return &value.RealValue{Val: -a.(*value.RealValue).Val}, nil
		},
		value.Imaginary: func(a value.Value) (value.Value, error) {
			return &value.ImaginaryValue{Val: -a.(*value.ImaginaryValue).Val}, nil
		},
		value.Complex: func(a value.Value) (value.Value, error) {
			c := a.(*value.ComplexValue)
			return &value.ComplexValue{Re: -c.Re, Im: -c.Im}, nil
		},
		value.Byte: func(a value.Value) (value.Value, error) {
			return &value.IntegerValue{Val: -int64(a.(*value.ByteValue).Val)}, nil
		},
		value.Vector: func(a value.Value) (value.Value, error) {
			v := a.(*value.VectorValue)
			comps := make([]*value.ComplexValue, len(v.Components))
			for i, c := range v.Components {
				comps[i] = &value.ComplexValue{Re: -c.Re, Im: -c.Im}
			}
			return &value.VectorValue{Components: comps, Dir: v.Dir}, nil
		},
	}
	unaryTables[lexer.OpPlus] = unaryTable{
		value.Integer:   identity,
		value.Real:      identity,
		value.Imaginary: identity,
		value.Complex:   identity,
		value.Byte:      identity,
		value.Vector:    identity,
	}
	unaryTables[lexer.OpTilde] = unaryTable{
		value.Integer: func(a value.Value) (value.Value, error) {
			return &value.IntegerValue{Val: ^a.(*value.IntegerValue).Val}, nil
		},
		value.Byte: func(a value.Value) (value.Value, error) {
			return &value.ByteValue{Val: ^a.(*value.ByteValue).Val}, nil
		},
	}
	unaryTables[lexer.OpBang] = unaryTable{
		value.Boolean: func(a value.Value) (value.Value, error) {
			return &value.BooleanValue{Val: !a.(*value.BooleanValue).Val}, nil
		},
	}
	unaryTables[lexer.OpDegree] = unaryTable{
		value.Complex: func(a value.Value) (value.Value, error) {
			return a.(*value.ComplexValue).Conjugate(), nil
		},
		value.Vector: func(a value.Value) (value.Value, error) {
			v := a.(*value.VectorValue)
			comps := make([]*value.ComplexValue, len(v.Components))
			for i, c := range v.Components {
				comps[i] = c.Conjugate()
			}
			return &value.VectorValue{Components: comps, Dir: v.Dir}, nil
		},
	}
	unaryTables[lexer.OpCaret] = unaryTable{
		value.Vector: func(a value.Value) (value.Value, error) {
			v := a.(*value.VectorValue)
			dir := value.Ket
			if v.Dir == value.Ket {
				dir = value.Bra
			}
			comps := make([]*value.ComplexValue, len(v.Components))
			copy(comps, v.Components)
			return &value.VectorValue{Components: comps, Dir: dir}, nil
		},
	}
	unaryTables[lexer.OpQuote] = unaryTable{
		value.Vector: func(a value.Value) (value.Value, error) {
			return a.(*value.VectorValue).ConjugateTranspose(), nil
		},
	}
}

func identity(a value.Value) (value.Value, error) { return a.Copy(), nil }
