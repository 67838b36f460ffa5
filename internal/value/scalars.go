package value

import "strconv"

// BooleanValue is the Boolean payload.
type BooleanValue struct{ Val bool }

func (b *BooleanValue) Tag() BasicType { return Boolean }
func (b *BooleanValue) String() string {
	if b.Val {
		return "true"
	}
	return "false"
}
func (b *BooleanValue) Copy() Value { return &BooleanValue{Val: b.Val} }

// CharacterValue is one source character (§3: "one source character").
type CharacterValue struct{ Val rune }

func (c *CharacterValue) Tag() BasicType  { return Character }
func (c *CharacterValue) String() string  { return string(c.Val) }
func (c *CharacterValue) Copy() Value     { return &CharacterValue{Val: c.Val} }

// ByteValue is an unsigned 8-bit payload.
type ByteValue struct{ Val uint8 }

func (b *ByteValue) Tag() BasicType { return Byte }
func (b *ByteValue) String() string { return strconv.FormatUint(uint64(b.Val), 10) }
func (b *ByteValue) Copy() Value    { return &ByteValue{Val: b.Val} }

// IntegerValue is a signed 64-bit payload.
type IntegerValue struct{ Val int64 }

func (i *IntegerValue) Tag() BasicType { return Integer }
func (i *IntegerValue) String() string { return strconv.FormatInt(i.Val, 10) }
func (i *IntegerValue) Copy() Value    { return &IntegerValue{Val: i.Val} }

// RealValue is a native floating payload, at least 64-bit (§3).
type RealValue struct{ Val float64 }

func (r *RealValue) Tag() BasicType { return Real }
func (r *RealValue) String() string { return strconv.FormatFloat(r.Val, 'g', -1, 64) }
func (r *RealValue) Copy() Value    { return &RealValue{Val: r.Val} }

// ImaginaryValue is a Real understood to be the coefficient of i (§3).
type ImaginaryValue struct{ Val float64 }

func (im *ImaginaryValue) Tag() BasicType { return Imaginary }
func (im *ImaginaryValue) String() string { return strconv.FormatFloat(im.Val, 'g', -1, 64) + "i" }
func (im *ImaginaryValue) Copy() Value    { return &ImaginaryValue{Val: im.Val} }

// StringValue is an owned Go string payload.
type StringValue struct{ Val string }

func (s *StringValue) Tag() BasicType { return String }
func (s *StringValue) String() string { return s.Val }
func (s *StringValue) Copy() Value    { return &StringValue{Val: s.Val} }
