// Package money implements the fixed-point amount representation used across
// the credit platform: integers scaled by 10^6 ("micros"). All scoring and
// loan arithmetic stays in integers; decimal values exist only at the
// presentation edge.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Precision is the fixed-point scale: 1 currency unit = 10^6 micros.
const Precision int64 = 1_000_000

// Micros is an immutable monetary amount (or a monthly interest rate) in
// millionths of a unit.
type Micros int64

// FromUnits converts a whole number of units into Micros.
func FromUnits(units int64) Micros {
	return Micros(units * Precision)
}

// FromDecimal converts a decimal amount of units into Micros, truncating
// anything below 10^-6.
func FromDecimal(d decimal.Decimal) Micros {
	return Micros(d.Mul(decimal.NewFromInt(Precision)).IntPart())
}

// ParseUnits parses a decimal unit string such as "499.5" into Micros.
func ParseUnits(s string) (Micros, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return FromDecimal(d), nil
}

// Percent returns n percent of one unit in Micros. Percent(2) is the
// fixed-point form of a 2% monthly rate.
func Percent(n int64) Micros {
	return Micros(n * Precision / 100)
}

// Units returns the whole-unit part of the amount, truncating toward zero.
func (m Micros) Units() int64 {
	return int64(m) / Precision
}

// Decimal returns the exact decimal value of the amount in units.
func (m Micros) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -6)
}

// IsZero returns true if the amount is zero.
func (m Micros) IsZero() bool {
	return m == 0
}

// IsPositive returns true if the amount is strictly greater than zero.
func (m Micros) IsPositive() bool {
	return m > 0
}

// IsNegative returns true if the amount is strictly less than zero.
func (m Micros) IsNegative() bool {
	return m < 0
}

// String formats the amount in units, for example "1000" or "0.02".
func (m Micros) String() string {
	return m.Decimal().String()
}
