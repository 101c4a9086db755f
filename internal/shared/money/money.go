// Package money provides the decimal amount type used by billing,
// accounting and payroll. Amounts unmarshal from either a JSON number or a
// string, so upstream payloads with mixed representations ("300" next to
// 300) are never dropped.
package money

import (
	"bytes"
	"database/sql/driver"

	"github.com/shopspring/decimal"
)

type Money struct {
	d decimal.Decimal
}

func New(d decimal.Decimal) Money {
	return Money{d: d}
}

func Zero() Money {
	return Money{}
}

func FromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{d: d}, nil
}

func FromFloat(f float64) Money {
	return Money{d: decimal.NewFromFloat(f)}
}

func (m Money) Decimal() decimal.Decimal { return m.d }
func (m Money) IsZero() bool             { return m.d.IsZero() }
func (m Money) IsNegative() bool         { return m.d.IsNegative() }

func (m Money) Add(other Money) Money {
	return Money{d: m.d.Add(other.d)}
}

func (m Money) Sub(other Money) Money {
	return Money{d: m.d.Sub(other.d)}
}

func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{d: m.d.Mul(factor)}
}

// Div returns zero when the divisor is zero. Aggregations divide by row
// counts and mile totals that may legitimately be empty.
func (m Money) Div(divisor decimal.Decimal) Money {
	if divisor.IsZero() {
		return Money{}
	}
	return Money{d: m.d.Div(divisor)}
}

func (m Money) String() string {
	return m.d.StringFixed(2)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.d.StringFixed(2) + `"`), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		m.d = decimal.Decimal{}
		return nil
	}
	d, err := decimal.NewFromString(string(data))
	if err != nil {
		return err
	}
	m.d = d
	return nil
}

func (m Money) Value() (driver.Value, error) {
	return m.d.Value()
}

func (m *Money) Scan(value any) error {
	return m.d.Scan(value)
}
