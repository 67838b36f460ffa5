package interp

import (
	"math"

	"github.com/spin-lang/spin/internal/value"
)

var (
	posInf = math.Inf(1)
	nan    = math.NaN()
)

// zeroValue returns the default payload for a BasicType name, used when a
// Variable declaration has no initialiser (§4.5 "Variable").
func zeroValue(typeName string) value.Value {
	switch typeName {
	case "Boolean":
		return &value.BooleanValue{}
	case "Character":
		return &value.CharacterValue{}
	case "Byte":
		return &value.ByteValue{}
	case "Integer":
		return &value.IntegerValue{}
	case "Real":
		return &value.RealValue{}
	case "Imaginary":
		return &value.ImaginaryValue{}
	case "Complex":
		return &value.ComplexValue{}
	case "String":
		return &value.StringValue{}
	default:
		return &value.IntegerValue{}
	}
}
