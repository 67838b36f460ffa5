package processor

import (
	"testing"

	"github.com/spin-lang/spin/internal/lexer"
	"github.com/spin-lang/spin/internal/value"
)

func TestBinaryIntegerAddition(t *testing.T) {
	p := New("t.spin", "")
	result, err := p.Binary(lexer.OpPlus, &value.IntegerValue{Val: 2}, &value.IntegerValue{Val: 3}, 0)
	if err != nil {
		t.Fatalf("Binary: %v", err)
	}
	got := result.(*value.IntegerValue).Val
	if got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
}

func TestBinaryCommutativeRetry(t *testing.T) {
	p := New("t.spin", "")
	// The addition table only defines (Byte, Byte) and (Integer, Byte), not
	// (Byte, Integer) — Binary must retry the swapped key since + is
	// commutative.
	result, err := p.Binary(lexer.OpPlus, &value.ByteValue{Val: 4}, &value.IntegerValue{Val: 6}, 0)
	if err != nil {
		t.Fatalf("Binary: %v", err)
	}
	got := result.(*value.IntegerValue).Val
	if got != 10 {
		t.Fatalf("expected 10, got %d", got)
	}
}

func TestBinaryUnsupportedPairErrors(t *testing.T) {
	p := New("t.spin", "")
	if _, err := p.Binary(lexer.OpAmp, &value.RealValue{Val: 1}, &value.StringValue{Val: "x"}, 0); err == nil {
		t.Fatal("expected an error for an unsupported operand pair, got nil")
	}
}

func TestCompareNotEqNegatesEq(t *testing.T) {
	p := New("t.spin", "")
	result, err := p.Compare(lexer.OpNotEq, &value.IntegerValue{Val: 1}, &value.IntegerValue{Val: 1}, 0)
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if result.(*value.BooleanValue).Val {
		t.Fatal("expected 1 != 1 to be false")
	}
}

func TestUnaryNegation(t *testing.T) {
	p := New("t.spin", "")
	result, err := p.Unary(lexer.OpMinus, &value.IntegerValue{Val: 7}, 0)
	if err != nil {
		t.Fatalf("Unary: %v", err)
	}
	if result.(*value.IntegerValue).Val != -7 {
		t.Fatalf("expected -7, got %d", result.(*value.IntegerValue).Val)
	}
}
