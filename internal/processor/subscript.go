package processor

import "github.com/spin-lang/spin/internal/value"

// Subscript implements §4.4's subscript rule: strings index to a
// Character, arrays index to a copy of the element; both report
// out-of-range as an error (§7 "subscript out of range").
func (p *Processor) Subscript(container, index value.Value, pos uint32) (value.Value, error) {
	idxVal, ok := index.(*value.IntegerValue)
	if !ok {
		return nil, p.err(pos, "subscript index must be Integer, got %s", index.Tag())
	}
	idx := int(idxVal.Val)

	switch c := container.(type) {
	case *value.StringValue:
		runes := []rune(c.Val)
		if idx < 0 || idx >= len(runes) {
			return nil, p.err(pos, "string index %d out of range", idx)
		}
		return &value.CharacterValue{Val: runes[idx]}, nil
	case *value.ArrayValue:
		elem, ok := c.Get(idx)
		if !ok {
			return nil, p.err(pos, "array index %d out of range", idx)
		}
		return elem.Copy(), nil
	default:
		return nil, p.err(pos, "cannot subscript %s", container.Tag())
	}
}
