package shared

import (
	"github.com/shopspring/decimal"
)

// Money value object - an amount at a fixed scale of 2 decimal places.
// Every arithmetic result is re-rounded to scale 2 using round-half-to-even,
// so two Money values produced through any sequence of operations compare
// exactly, with no epsilon tolerance.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney Zero amount at scale 2
func ZeroMoney() Money {
	return Money{amount: setScale(decimal.Zero)}
}

// NewMoney Create a Money value from a raw decimal, rounding it to scale 2
func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: setScale(amount)}
}

// NewMoneyFromString Parse a decimal string (e.g. "13.00") into a Money value
func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return NewMoney(d), nil
}

// Amount Raw decimal value (already at scale 2)
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// IsGreaterThanZero Report whether the amount is strictly positive
func (m Money) IsGreaterThanZero() bool {
	return m.amount.IsPositive()
}

// IsGreaterThan Report whether the amount exceeds the other amount
func (m Money) IsGreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// Add Sum two amounts, re-rounded to scale 2
func (m Money) Add(other Money) Money {
	return NewMoney(m.amount.Add(other.amount))
}

// Subtract Subtract the other amount, re-rounded to scale 2
func (m Money) Subtract(other Money) Money {
	return NewMoney(m.amount.Sub(other.amount))
}

// Multiply Multiply by an integer quantity, re-rounded to scale 2
func (m Money) Multiply(multiplier int64) Money {
	return NewMoney(m.amount.Mul(decimal.NewFromInt(multiplier)))
}

// Equals Value equality after rounding (13 == 13.00)
func (m Money) Equals(other Money) bool {
	return m.amount.Equal(other.amount)
}

// IsZero Report whether the amount equals zero
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// String Fixed two-digit representation, also used on the wire
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// setScale rounds to 2 decimal places, half to even (bankers rounding)
func setScale(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(2)
}
