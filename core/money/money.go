// Package money - Shared monetary helpers
// Raw quote inputs arrive as float64 from JSON or HCL documents; all
// monetary outputs are decimals. Conversion and sanitizing is centralized
// here so every calculation treats malformed input the same way.
package money

import (
	"math"

	"github.com/shopspring/decimal"
)

// Sanitize coerces a raw numeric input to a usable value. Non-finite
// values are treated as 0, matching the calculator's total-function
// contract for malformed input.
func Sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// FromFloat converts a sanitized float to a decimal amount
func FromFloat(v float64) decimal.Decimal {
	return decimal.NewFromFloat(Sanitize(v))
}

// Cents rounds an amount to whole cents
func Cents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Percent returns amount * rate/100
func Percent(amount decimal.Decimal, rate float64) decimal.Decimal {
	return amount.Mul(FromFloat(rate)).Div(decimal.NewFromInt(100))
}

// ClampZero floors an amount at zero
func ClampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
