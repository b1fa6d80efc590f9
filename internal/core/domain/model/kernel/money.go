package kernel

import (
	"fmt"

	"pedidos/internal/pkg/errs"
	"pedidos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// moneyPrecision is the number of minor-unit digits kept after every
// rounding operation (2 for currencies with cents).
const moneyPrecision = 2

// ErrMoneyIsNotConstructed indicates a zero-value Money that bypassed its constructors.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("money must be created via NewMoney or MoneyFromString")

// Money is a fixed-precision, non-negative monetary amount.
//
// All arithmetic stays on decimals; binary floating point is never involved,
// so repeated discounting and summation cannot drift at the cent level.
// Results of multiplication and discounting are rounded to moneyPrecision
// using round-half-up.
//
// The zero value is invalid; construct with NewMoney, MoneyFromString, or
// ZeroMoney.
//
// Example:
//
//	price, _ := kernel.MoneyFromString("100.00")
//	discounted := price.ApplyDiscount(tenPercent) // 90.00
type Money struct {
	amount decimal.Decimal

	guard guard.ConstructorGuard
}

// NewMoney creates a Money from a decimal amount.
// Returns a validation error if the amount is negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money",
			fmt.Errorf("%s is negative", amount))
	}
	return Money{amount: amount, guard: guard.NewConstructorGuard()}, nil
}

// MoneyFromString parses a decimal string such as "199.90" into Money.
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", err)
	}
	return NewMoney(d)
}

// ZeroMoney returns a valid zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, guard: guard.NewConstructorGuard()}
}

// Amount returns the underlying decimal value.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount), guard: guard.NewConstructorGuard()}
}

// MulQuantity returns the extended price for a quantity of this unit amount,
// rounded half-up to the minor-unit precision.
func (m Money) MulQuantity(q Quantity) Money {
	return Money{
		amount: m.amount.Mul(q.Value()).Round(moneyPrecision),
		guard:  guard.NewConstructorGuard(),
	}
}

// ApplyDiscount returns the amount reduced by the given percentage,
// computed as amount × (1 − d/100) and rounded half-up to the minor-unit
// precision. A 0% discount returns the amount unchanged; a 100% discount
// returns zero.
func (m Money) ApplyDiscount(d Percent) Money {
	factor := decimal.NewFromInt(100).Sub(d.Value())
	return Money{
		amount: m.amount.Mul(factor).Div(decimal.NewFromInt(100)).Round(moneyPrecision),
		guard:  guard.NewConstructorGuard(),
	}
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares two amounts numerically (100.0 equals 100.00).
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the amount with the minor-unit precision, e.g. "270.00".
func (m Money) String() string {
	return m.amount.StringFixed(moneyPrecision)
}

// Validate checks the Money was created via a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}
