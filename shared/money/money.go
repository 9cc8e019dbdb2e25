// Package money holds the decimal helpers shared by pricing and billing.
package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Precision is the number of minor-unit digits kept on payable amounts.
const Precision int32 = 2

var (
	Zero    = decimal.Zero
	Hundred = decimal.NewFromInt(100)
	Two     = decimal.NewFromInt(2)
	half    = decimal.NewFromFloat(0.5)
)

// RoundHalfUp rounds d to places digits, ties going towards positive infinity.
func RoundHalfUp(d decimal.Decimal, places int32) decimal.Decimal {
	return d.Shift(places).Add(half).Floor().Shift(-places)
}

// Round rounds d to Precision.
func Round(d decimal.Decimal) decimal.Decimal {
	return RoundHalfUp(d, Precision)
}

// Percent returns rate percent of amount without rounding.
func Percent(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate).Div(Hundred)
}

// Parse reads a decimal from its string form. Empty input is zero.
func Parse(value string) (decimal.Decimal, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Zero, nil
	}

	d, err := decimal.NewFromString(value)
	if err != nil {
		return Zero, fmt.Errorf("failed to parse amount %q: %w", value, err)
	}

	return d, nil
}

// ErrPrecision is returned for amounts finer than the minor unit.
var ErrPrecision = errors.New("amount has more than 2 decimal places")

// HasMinorPrecision reports whether d fits in Precision digits, so storing it loses nothing.
func HasMinorPrecision(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(Precision))
}

// ParseAmount is Parse for payable amounts. Input finer than the minor unit is rejected.
func ParseAmount(value string) (decimal.Decimal, error) {
	d, err := Parse(value)
	if err != nil {
		return Zero, err
	}

	if !HasMinorPrecision(d) {
		return Zero, fmt.Errorf("failed to parse amount %q: %w", value, ErrPrecision)
	}

	return d, nil
}

// Clamp bounds d to [lower, upper].
func Clamp(d, lower, upper decimal.Decimal) decimal.Decimal {
	if d.LessThan(lower) {
		return lower
	}

	if d.GreaterThan(upper) {
		return upper
	}

	return d
}
