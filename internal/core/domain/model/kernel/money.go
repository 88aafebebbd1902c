package kernel

import (
	"fmt"
	"math"

	"foodorder/internal/pkg/errs"
)

// Money is a value object representing a non-negative monetary amount.
// It stores the amount as an integer number of cents, so sums of line totals
// are exact and independent of the order in which they are accumulated.
// Rounding to two decimal places happens once, at construction from a float,
// using half-up rounding.
//
// The zero value of Money is a valid zero amount, which keeps aggregate
// arithmetic (summing line totals) free of constructor ceremony.
type Money struct {
	cents int64
}

// NewMoneyFromCents creates a Money from an integer number of cents.
// The amount must not be negative.
func NewMoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d cents is negative", cents))
	}
	return Money{cents: cents}, nil
}

// NewMoneyFromFloat creates a Money from a decimal amount such as 3.50,
// rounding half-up to whole cents. The amount must not be negative.
func NewMoneyFromFloat(amount float64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%.2f is negative", amount))
	}
	// math.Round rounds half away from zero; amounts here are non-negative,
	// so this is exactly half-up. The epsilon absorbs binary representation
	// error: 1.005*100 computes to 100.4999..., which would otherwise round
	// down instead of up.
	return Money{cents: int64(math.Round(amount*100 + 1e-9))}, nil
}

// Cents returns the amount as an integer number of cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Float64 returns the amount in currency units, e.g. 350 cents -> 3.5.
func (m Money) Float64() float64 {
	return float64(m.cents) / 100
}

// Add returns the sum of two amounts. Addition in cents is exact, so the
// result carries no accumulated rounding drift.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// MultiplyInt returns the amount multiplied by a non-negative integer factor,
// e.g. a unit price times a quantity.
func (m Money) MultiplyInt(factor int) (Money, error) {
	if factor < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("factor",
			fmt.Errorf("%d is negative", factor))
	}
	return Money{cents: m.cents * int64(factor)}, nil
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String formats the amount with two decimal places, e.g. "23.50".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
