package immo

import "github.com/shopspring/decimal"

// Percent is an exact percentage value: 2.5 means 2.5%.
//
// Loan rates and selling-fee rates are percentages in the book file, so they
// are kept as decimals end to end, never as binary floats.
type Percent struct {
	value decimal.Decimal
}

func P[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Percent {
	return Percent{value: newDecimal(value)}
}

var oneHundred = decimal.NewFromInt(100)

// Fraction returns the rate as a plain fraction: 2.5% is 0.025.
func (p Percent) Fraction() decimal.Decimal { return p.value.Div(oneHundred) }

// Of applies the percentage to a monetary value: P(8).Of(m) is 8% of m.
func (p Percent) Of(m Money) Money {
	return Money{value: m.value.Mul(p.value).Div(oneHundred), cur: m.cur}
}

func (p Percent) Equal(q Percent) bool { return p.value.Equal(q.value) }
func (p Percent) IsZero() bool         { return p.value.IsZero() }

func (p Percent) String() string { return p.value.StringFixed(2) + "%" }

// MarshalJSON implements the json.Marshaler interface.
func (p Percent) MarshalJSON() ([]byte, error) {
	return p.value.MarshalJSON()
}
func (p *Percent) UnmarshalJSON(decimalBytes []byte) error {
	return p.value.UnmarshalJSON(decimalBytes)
}
