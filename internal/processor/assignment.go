package processor

import (
	"github.com/spin-lang/spin/internal/lexer"
	"github.com/spin-lang/spin/internal/value"
)

// mixedAssign is the fixed cross-tag assignment matrix of §4.4 ("Mixed
// assignment is allowed only for a fixed set"). Deliberately not
// generalized: byte<-real is absent on purpose, narrowing silently loses
// precision in a way the other pairs here don't.
var mixedAssign = map[key]func(src value.Value) (value.Value, error){
	{value.Real, value.Integer}: func(s value.Value) (value.Value, error) {
		return &value.RealValue{Val: float64(s.(*value.IntegerValue).Val)}, nil
	},
	{value.Integer, value.Real}: func(s value.Value) (value.Value, error) {
		return &value.IntegerValue{Val: int64(s.(*value.RealValue).Val)}, nil
	},
	{value.Integer, value.Byte}: func(s value.Value) (value.Value, error) {
		return &value.IntegerValue{Val: int64(s.(*value.ByteValue).Val)}, nil
	},
	{value.Byte, value.Integer}: func(s value.Value) (value.Value, error) {
		return &value.ByteValue{Val: uint8(s.(*value.IntegerValue).Val)}, nil
	},
	{value.Integer, value.Character}: func(s value.Value) (value.Value, error) {
		return &value.IntegerValue{Val: int64(s.(*value.CharacterValue).Val)}, nil
	},
	{value.Character, value.Integer}: func(s value.Value) (value.Value, error) {
		return &value.CharacterValue{Val: rune(s.(*value.IntegerValue).Val)}, nil
	},
	{value.Byte, value.Character}: func(s value.Value) (value.Value, error) {
		return &value.ByteValue{Val: uint8(s.(*value.CharacterValue).Val)}, nil
	},
	{value.Character, value.Byte}: func(s value.Value) (value.Value, error) {
		return &value.CharacterValue{Val: rune(s.(*value.ByteValue).Val)}, nil
	},
	{value.Complex, value.Integer}: func(s value.Value) (value.Value, error) {
		return toComplex(s), nil
	},
	{value.Complex, value.Real}: func(s value.Value) (value.Value, error) {
		return toComplex(s), nil
	},
	{value.Complex, value.Imaginary}: func(s value.Value) (value.Value, error) {
		return toComplex(s), nil
	},
}

func init() {
	stringSources := []value.BasicType{value.Character, value.Integer, value.Real, value.Imaginary, value.Complex, value.Boolean}
	for _, src := range stringSources {
		src := src
		mixedAssign[key{value.String, src}] = func(s value.Value) (value.Value, error) {
			return &value.StringValue{Val: s.String()}, nil
		}
	}
}

// Assign implements §4.4's assignment rule: pure assignment (same tag)
// copies the payload in place; mixed assignment consults the fixed matrix
// above; Instance requires matching Class identity; Vector assignment
// preserves the target's direction.
func (p *Processor) Assign(target, source value.Value, pos uint32) (value.Value, error) {
	if target.Tag() == value.Vector && source.Tag() == value.Vector {
		return assignVector(target.(*value.VectorValue), source.(*value.VectorValue)), nil
	}
	if target.Tag() == value.Instance && source.Tag() == value.Instance {
		ti, si := target.(*value.InstanceValue), source.(*value.InstanceValue)
		if !ti.SameClass(si) {
			return nil, p.err(pos, "cannot assign instance of %s to instance of %s", si.Type.Name, ti.Type.Name)
		}
		return si.Copy(), nil
	}
	if target.Tag() == source.Tag() {
		return source.Copy(), nil
	}
	if fn, ok := mixedAssign[key{target.Tag(), source.Tag()}]; ok {
		result, err := fn(source)
		return result, p.wrap(err, pos)
	}
	return nil, p.err(pos, "cannot assign %s to %s", source.Tag(), target.Tag())
}

// assignVector implements "Vector assignment preserves the target's
// direction... this enables |v> = <v|-style conversions" (§4.4).
func assignVector(target, source *value.VectorValue) value.Value {
	if target.Dir == source.Dir {
		return source.Copy()
	}
	return source.ConjugateTranspose()
}

// CompoundAssign combines an arithmetic lookup with an assignment in a
// single dispatch (§4.4 "Compound-assignment combines an arithmetic lookup
// with a pure/mixed assignment").
func (p *Processor) CompoundAssign(arithOp lexer.TokenKind, target, source value.Value, pos uint32) (value.Value, error) {
	computed, err := p.Binary(arithOp, target, source, pos)
	if err != nil {
		return nil, err
	}
	return p.Assign(target, computed, pos)
}
