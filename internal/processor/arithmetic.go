package processor

import (
	"fmt"

	"github.com/spin-lang/spin/internal/lexer"
	"github.com/spin-lang/spin/internal/value"
)

// binaryTables holds every operator's dispatch table, keyed by the
// lexer.TokenKind that names the operator. Populated by this file's init
// and by bitwise.go/comparison.go.
var binaryTables = map[lexer.TokenKind]table{}

func init() {
	binaryTables[lexer.OpPlus] = additionTable()
	binaryTables[lexer.OpMinus] = subtractionTable()
	binaryTables[lexer.OpStar] = multiplicationTable()
	binaryTables[lexer.OpSlash] = divisionTable()
	binaryTables[lexer.OpPercent] = modulusTable()
}

func toComplex(v value.Value) *value.ComplexValue {
	switch x := v.(type) {
	case *value.IntegerValue:
		return &value.ComplexValue{Re: float64(x.Val)}
	case *value.RealValue:
		return &value.ComplexValue{Re: x.Val}
	case *value.ImaginaryValue:
		return &value.ComplexValue{Im: x.Val}
	case *value.ComplexValue:
		return x
	}
	return &value.ComplexValue{}
}

// additionTable covers §4.4's addition pairings plus string concatenation.
func additionTable() table {
	t := table{}
	t[key{value.Integer, value.Integer}] = func(a, b value.Value) (value.Value, error) {
		return &value.IntegerValue{Val: a.(*value.IntegerValue).Val + b.(*value.IntegerValue).Val}, nil
	}
	t[key{value.Real, value.Real}] = func(a, b value.Value) (value.Value, error) {
		return &value.RealValue{Val: a.(*value.RealValue).Val + b.(*value.RealValue).Val}, nil
	}
	t[key{value.Integer, value.Byte}] = func(a, b value.Value) (value.Value, error) {
		return &value.IntegerValue{Val: a.(*value.IntegerValue).Val + int64(b.(*value.ByteValue).Val)}, nil
	}
	t[key{value.Integer, value.Real}] = func(a, b value.Value) (value.Value, error) {
		return &value.RealValue{Val: float64(a.(*value.IntegerValue).Val) + b.(*value.RealValue).Val}, nil
	}
	t[key{value.Byte, value.Byte}] = func(a, b value.Value) (value.Value, error) {
		return &value.ByteValue{Val: a.(*value.ByteValue).Val + b.(*value.ByteValue).Val}, nil
	}
	t[key{value.Character, value.Character}] = func(a, b value.Value) (value.Value, error) {
		return &value.CharacterValue{Val: a.(*value.CharacterValue).Val + b.(*value.CharacterValue).Val}, nil
	}
	t[key{value.Imaginary, value.Imaginary}] = func(a, b value.Value) (value.Value, error) {
		return &value.ImaginaryValue{Val: a.(*value.ImaginaryValue).Val + b.(*value.ImaginaryValue).Val}, nil
	}
	for _, pair := range [][2]value.BasicType{
		{value.Integer, value.Imaginary}, {value.Integer, value.Complex},
		{value.Real, value.Complex}, {value.Complex, value.Imaginary},
		{value.Imaginary, value.Real},
	} {
		t[key{pair[0], pair[1]}] = func(a, b value.Value) (value.Value, error) {
			return toComplex(a).Add(toComplex(b)), nil
		}
	}
	stringifiable := []value.BasicType{value.String, value.Character, value.Integer, value.Real, value.Imaginary, value.Complex}
	for _, left := range stringifiable {
		for _, right := range stringifiable {
			if left != value.String && right != value.String {
				continue
			}
			t[key{left, right}] = func(a, b value.Value) (value.Value, error) {
				return &value.StringValue{Val: a.String() + b.String()}, nil
			}
		}
	}
	return t
}

func subtractionTable() table {
	t := table{}
	t[key{value.Integer, value.Integer}] = func(a, b value.Value) (value.Value, error) {
		return &value.IntegerValue{Val: a.(*value.IntegerValue).Val - b.(*value.IntegerValue).Val}, nil
	}
	t[key{value.Real, value.Real}] = func(a, b value.Value) (value.Value, error) {
		return &value.RealValue{Val: a.(*value.RealValue).Val - b.(*value.RealValue).Val}, nil
	}
	t[key{value.Integer, value.Real}] = func(a, b value.Value) (value.Value, error) {
		return &value.RealValue{Val: float64(a.(*value.IntegerValue).Val) - b.(*value.RealValue).Val}, nil
	}
	t[key{value.Real, value.Integer}] = func(a, b value.Value) (value.Value, error) {
		return &value.RealValue{Val: a.(*value.RealValue).Val - float64(b.(*value.IntegerValue).Val)}, nil
	}
	t[key{value.Byte, value.Byte}] = func(a, b value.Value) (value.Value, error) {
		return &value.ByteValue{Val: a.(*value.ByteValue).Val - b.(*value.ByteValue).Val}, nil
	}
	t[key{value.Complex, value.Complex}] = func(a, b value.Value) (value.Value, error) {
		return toComplex(a).Sub(toComplex(b)), nil
	}
	t[key{value.Vector, value.Vector}] = vectorSub
	return t
}

func multiplicationTable() table {
	t := table{}
	t[key{value.Integer, value.Integer}] = func(a, b value.Value) (value.Value, error) {
		return &value.IntegerValue{Val: a.(*value.IntegerValue).Val * b.(*value.IntegerValue).Val}, nil
	}
	t[key{value.Real, value.Real}] = func(a, b value.Value) (value.Value, error) {
		return &value.RealValue{Val: a.(*value.RealValue).Val * b.(*value.RealValue).Val}, nil
	}
	t[key{value.Integer, value.Real}] = func(a, b value.Value) (value.Value, error) {
		return &value.RealValue{Val: float64(a.(*value.IntegerValue).Val) * b.(*value.RealValue).Val}, nil
	}
	t[key{value.Complex, value.Complex}] = func(a, b value.Value) (value.Value, error) {
		return toComplex(a).Mul(toComplex(b)), nil
	}
	t[key{value.Imaginary, value.Imaginary}] = func(a, b value.Value) (value.Value, error) {
		// i * i = -1, a Real.
		return &value.RealValue{Val: -(a.(*value.ImaginaryValue).Val * b.(*value.ImaginaryValue).Val)}, nil
	}
	// Vector x scalar (any numeric kind) and Vector x Vector (§4.4).
	for _, scalar := range []value.BasicType{value.Integer, value.Real, value.Imaginary, value.Complex, value.Byte} {
		t[key{value.Vector, scalar}] = vectorScale
	}
	t[key{value.Vector, value.Vector}] = vectorMultiply
	return t
}

func vectorSub(a, b value.Value) (value.Value, error) {
	av, bv := a.(*value.VectorValue), b.(*value.VectorValue)
	if av.Dir != bv.Dir {
		return nil, fmt.Errorf("vector subtraction requires equal directions")
	}
	if len(av.Components) != len(bv.Components) {
		return nil, fmt.Errorf("vector subtraction requires equal size")
	}
	comps := make([]*value.ComplexValue, len(av.Components))
	for i := range comps {
		comps[i] = av.Components[i].Sub(bv.Components[i])
	}
	return &value.VectorValue{Components: comps, Dir: av.Dir}, nil
}

func vectorScale(a, b value.Value) (value.Value, error) {
	v := a.(*value.VectorValue)
	s := toComplex(b)
	comps := make([]*value.ComplexValue, len(v.Components))
	for i, c := range v.Components {
		comps[i] = c.Mul(s)
	}
	return &value.VectorValue{Components: comps, Dir: v.Dir}, nil
}

// vectorMultiply implements §4.4's Vector x Vector rule: equal directions
// are rejected, unequal size is rejected, bra x ket is an inner product
// (Complex), ket x bra is an outer product (matrix, represented as an
// Array of row Vectors — see value.Outer).
func vectorMultiply(a, b value.Value) (value.Value, error) {
	av, bv := a.(*value.VectorValue), b.(*value.VectorValue)
	if av.Dir == bv.Dir {
		return nil, fmt.Errorf("vector multiplication requires unequal directions")
	}
	if len(av.Components) != len(bv.Components) {
		return nil, fmt.Errorf("vector multiplication requires equal sizes")
	}
	if av.Dir == value.Bra {
		return value.Inner(av, bv)
	}
	return value.Outer(av, bv)
}

func divisionTable() table {
	t := table{}
	t[key{value.Integer, value.Integer}] = func(a, b value.Value) (value.Value, error) {
		bi := b.(*value.IntegerValue).Val
		if bi == 0 {
			return nil, fmt.Errorf("division by zero")
		}
		return &value.IntegerValue{Val: a.(*value.IntegerValue).Val / bi}, nil
	}
	t[key{value.Real, value.Real}] = func(a, b value.Value) (value.Value, error) {
		bf := b.(*value.RealValue).Val
		if bf == 0 {
			return nil, fmt.Errorf("division by zero")
		}
		return &value.RealValue{Val: a.(*value.RealValue).Val / bf}, nil
	}
	t[key{value.Integer, value.Real}] = func(a, b value.Value) (value.Value, error) {
		bf := b.(*value.RealValue).Val
		if bf == 0 {
			return nil, fmt.Errorf("division by zero")
		}
		return &value.RealValue{Val: float64(a.(*value.IntegerValue).Val) / bf}, nil
	}
	t[key{value.Complex, value.Complex}] = func(a, b value.Value) (value.Value, error) {
		return toComplex(a).Div(toComplex(b))
	}
	return t
}

func modulusTable() table {
	t := table{}
	t[key{value.Integer, value.Integer}] = func(a, b value.Value) (value.Value, error) {
		bi := b.(*value.IntegerValue).Val
		if bi == 0 {
			return nil, fmt.Errorf("division by zero")
		}
		return &value.IntegerValue{Val: a.(*value.IntegerValue).Val % bi}, nil
	}
	return t
}
