package processor

import (
	"github.com/spin-lang/spin/internal/lexer"
	"github.com/spin-lang/spin/internal/value"
)

func init() {
	binaryTables[lexer.OpAmp] = bitwiseTable(func(x, y int64) int64 { return x & y }, func(x, y bool) bool { return x && y })
	binaryTables[lexer.OpPipe] = bitwiseTable(func(x, y int64) int64 { return x | y }, func(x, y bool) bool { return x || y })
	binaryTables[lexer.OpCaret] = bitwiseTable(func(x, y int64) int64 { return x ^ y }, func(x, y bool) bool { return x != y })
}

// bitwiseTable builds the integer/byte/character/boolean table shared by
// AND/OR/XOR (§4.4 "Bitwise AND/OR/XOR defined for integer-integer,
// byte-byte, character-character, and (logical versions) boolean-boolean").
func bitwiseTable(intOp func(int64, int64) int64, boolOp func(bool, bool) bool) table {
	t := table{}
	t[key{value.Integer, value.Integer}] = func(a, b value.Value) (value.Value, error) {
		return &value.IntegerValue{Val: intOp(a.(*value.IntegerValue).Val, b.(*value.IntegerValue).Val)}, nil
	}
	t[key{value.Byte, value.Byte}] = func(a, b value.Value) (value.Value, error) {
		return &value.ByteValue{Val: uint8(intOp(int64(a.(*value.ByteValue).Val), int64(b.(*value.ByteValue).Val)))}, nil
	}
	t[key{value.Character, value.Character}] = func(a, b value.Value) (value.Value, error) {
		return &value.CharacterValue{Val: rune(intOp(int64(a.(*value.CharacterValue).Val), int64(b.(*value.CharacterValue).Val)))}, nil
	}
	if boolOp != nil {
		t[key{value.Boolean, value.Boolean}] = func(a, b value.Value) (value.Value, error) {
			return &value.BooleanValue{Val: boolOp(a.(*value.BooleanValue).Val, b.(*value.BooleanValue).Val)}, nil
		}
	}
	return t
}
