package value

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spin-lang/spin/internal/spinerr"
)

// ComplexValue is a pair of Real (a + bi) (§3 "Complex (a, b: Real)").
type ComplexValue struct {
	Re, Im float64
}

func (c *ComplexValue) Tag() BasicType { return Complex }

func (c *ComplexValue) String() string {
	sign := "+"
	im := c.Im
	if im < 0 {
		sign = "-"
		im = -im
	}
	return strconv.FormatFloat(c.Re, 'g', -1, 64) + " " + sign + " " + strconv.FormatFloat(im, 'g', -1, 64) + "i"
}

func (c *ComplexValue) Copy() Value { return &ComplexValue{Re: c.Re, Im: c.Im} }

// Equal is strict equality on both parts (§3 "Equality is strict on both parts").
func (c *ComplexValue) Equal(o *ComplexValue) bool {
	return c.Re == o.Re && c.Im == o.Im
}

// Conjugate returns a - bi.
func (c *ComplexValue) Conjugate() *ComplexValue {
	return &ComplexValue{Re: c.Re, Im: -c.Im}
}

// Magnitude returns |c|.
func (c *ComplexValue) Magnitude() float64 {
	return math.Hypot(c.Re, c.Im)
}

// Phase returns atan2(b, a).
func (c *ComplexValue) Phase() float64 {
	return math.Atan2(c.Im, c.Re)
}

// Add returns c + o.
func (c *ComplexValue) Add(o *ComplexValue) *ComplexValue {
	return &ComplexValue{Re: c.Re + o.Re, Im: c.Im + o.Im}
}

// Sub returns c - o.
func (c *ComplexValue) Sub(o *ComplexValue) *ComplexValue {
	return &ComplexValue{Re: c.Re - o.Re, Im: c.Im - o.Im}
}

// Mul returns c * o.
func (c *ComplexValue) Mul(o *ComplexValue) *ComplexValue {
	return &ComplexValue{
		Re: c.Re*o.Re - c.Im*o.Im,
		Im: c.Re*o.Im + c.Im*o.Re,
	}
}

// Div returns c / o. Division by a complex of magnitude 0 fails with a
// dedicated error (§3 "Division by a complex of magnitude 0 fails with a
// dedicated error").
func (c *ComplexValue) Div(o *ComplexValue) (*ComplexValue, error) {
	denom := o.Re*o.Re + o.Im*o.Im
	if denom == 0 {
		return nil, fmt.Errorf("division by complex of magnitude 0")
	}
	return &ComplexValue{
		Re: (c.Re*o.Re + c.Im*o.Im) / denom,
		Im: (c.Im*o.Re - c.Re*o.Im) / denom,
	}, nil
}

// DivErr wraps Div's error into a spinerr.Error at the given source position.
// The Processor's division entries call Div directly, not DivErr.
func DivErr(file string, source string, pos uint32, c, o *ComplexValue) (*ComplexValue, error) {
	result, err := c.Div(o)
	if err != nil {
		line, col := spinerr.ResolveLine(source, pos)
		return nil, spinerr.New(spinerr.Evaluation, file, line, col, "%v", err)
	}
	return result, nil
}
