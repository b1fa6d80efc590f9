package kernel

import (
	"pedidos/internal/pkg/errs"
	"pedidos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrPercentIsNotConstructed indicates a zero-value Percent that bypassed NewPercent.
var ErrPercentIsNotConstructed = errs.NewValueIsRequiredError("percent must be created via NewPercent")

// Percent is a percentage value bounded to the inclusive range [0, 100].
// It is used for client discounts and product tax rates.
//
// The zero value is invalid; construct with NewPercent or ZeroPercent.
type Percent struct {
	value decimal.Decimal

	guard guard.ConstructorGuard
}

// NewPercent creates a Percent from a decimal value.
// Returns an out-of-range error when the value is below 0 or above 100.
func NewPercent(value decimal.Decimal) (Percent, error) {
	if value.IsNegative() || value.GreaterThan(decimal.NewFromInt(100)) {
		return Percent{}, errs.NewValueIsOutOfRangeError("percent", value.String(), 0, 100)
	}
	return Percent{value: value, guard: guard.NewConstructorGuard()}, nil
}

// PercentFromInt creates a Percent from a whole number, e.g. 10 for 10%.
func PercentFromInt(value int) (Percent, error) {
	return NewPercent(decimal.NewFromInt(int64(value)))
}

// ZeroPercent returns a valid 0% value.
func ZeroPercent() Percent {
	return Percent{value: decimal.Zero, guard: guard.NewConstructorGuard()}
}

// Value returns the underlying decimal value in the range [0, 100].
func (p Percent) Value() decimal.Decimal {
	return p.value
}

// IsZero reports whether the percentage is exactly zero.
func (p Percent) IsZero() bool {
	return p.value.IsZero()
}

// IsEqual compares two percentages numerically.
func (p Percent) IsEqual(other Percent) bool {
	return p.value.Equal(other.value)
}

// String renders the percentage without a unit suffix, e.g. "10".
func (p Percent) String() string {
	return p.value.String()
}

// Validate checks the Percent was created via a constructor.
func (p Percent) Validate() error {
	return p.guard.Validate(ErrPercentIsNotConstructed)
}
