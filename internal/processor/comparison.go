package processor

import (
	"github.com/spin-lang/spin/internal/lexer"
	"github.com/spin-lang/spin/internal/value"
)

func init() {
	binaryTables[lexer.OpEq] = equalityTable()
	binaryTables[lexer.OpLess] = orderingTable(func(a, b float64) bool { return a < b })
	binaryTables[lexer.OpLessEq] = orderingTable(func(a, b float64) bool { return a <= b })
	binaryTables[lexer.OpGreater] = orderingTable(func(a, b float64) bool { return a > b })
	binaryTables[lexer.OpGreaterEq] = orderingTable(func(a, b float64) bool { return a >= b })
}

func asFloat(v value.Value) (float64, bool) {
	switch x := v.(type) {
	case *value.IntegerValue:
		return float64(x.Val), true
	case *value.RealValue:
		return x.Val, true
	case *value.ByteValue:
		return float64(x.Val), true
	case *value.CharacterValue:
		return float64(x.Val), true
	case *value.ImaginaryValue:
		return x.Val, true
	}
	return 0, false
}

// equalityTable covers the strict (same-type) and mixed (cross-type
// numeric, string-vs-character, complex-vs-real/imaginary) comparisons of
// §4.4 "== and != use two tables".
func equalityTable() table {
	t := table{}
	strict := []value.BasicType{value.Integer, value.Real, value.Byte, value.Character, value.Boolean, value.String, value.Imaginary, value.Complex}
	for _, tag := range strict {
		tag := tag
		t[key{tag, tag}] = func(a, b value.Value) (value.Value, error) {
			return &value.BooleanValue{Val: a.String() == b.String()}, nil
		}
	}
	t[key{value.Boolean, value.Boolean}] = func(a, b value.Value) (value.Value, error) {
		return &value.BooleanValue{Val: a.(*value.BooleanValue).Val == b.(*value.BooleanValue).Val}, nil
	}
	t[key{value.Complex, value.Complex}] = func(a, b value.Value) (value.Value, error) {
		return &value.BooleanValue{Val: toComplex(a).Equal(toComplex(b))}, nil
	}
	numeric := []value.BasicType{value.Integer, value.Real, value.Byte, value.Imaginary}
	for _, left := range numeric {
		for _, right := range numeric {
			if left == right {
				continue
			}
			left, right := left, right
			t[key{left, right}] = func(a, b value.Value) (value.Value, error) {
				lf, _ := asFloat(a)
				rf, _ := asFloat(b)
				return &value.BooleanValue{Val: lf == rf}, nil
			}
		}
	}
	t[key{value.String, value.Character}] = func(a, b value.Value) (value.Value, error) {
		return &value.BooleanValue{Val: a.(*value.StringValue).Val == b.String()}, nil
	}
	t[key{value.Complex, value.Real}] = func(a, b value.Value) (value.Value, error) {
		return &value.BooleanValue{Val: toComplex(a).Equal(toComplex(b))}, nil
	}
	t[key{value.Complex, value.Imaginary}] = func(a, b value.Value) (value.Value, error) {
		return &value.BooleanValue{Val: toComplex(a).Equal(toComplex(b))}, nil
	}
	return t
}

// orderingTable covers §4.4's "<, <=, >, >= accept integer/real/byte/
// character/imaginary combinations".
func orderingTable(cmp func(a, b float64) bool) table {
	t := table{}
	tags := []value.BasicType{value.Integer, value.Real, value.Byte, value.Character, value.Imaginary}
	for _, left := range tags {
		for _, right := range tags {
			left, right := left, right
			t[key{left, right}] = func(a, b value.Value) (value.Value, error) {
				lf, _ := asFloat(a)
				rf, _ := asFloat(b)
				return &value.BooleanValue{Val: cmp(lf, rf)}, nil
			}
		}
	}
	return t
}
