package kernel

import (
	"fmt"

	"pedidos/internal/pkg/errs"
	"pedidos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// DefaultQuantityCeiling is the upper bound applied to line-item quantities.
// Values above the ceiling are clamped, not rejected.
const DefaultQuantityCeiling = 25000

// ErrQuantityIsNotConstructed indicates a zero-value Quantity that bypassed NewQuantity.
var ErrQuantityIsNotConstructed = errs.NewValueIsRequiredError("quantity must be created via NewQuantity")

// Quantity is a positive decimal amount of a product. Fractional quantities
// are allowed (weight-based items); zero and negative quantities are not.
//
// The zero value is invalid; construct with NewQuantity or
// NewQuantityWithCeiling.
type Quantity struct {
	value decimal.Decimal

	guard guard.ConstructorGuard
}

// NewQuantity creates a Quantity clamped at DefaultQuantityCeiling.
func NewQuantity(value decimal.Decimal) (Quantity, error) {
	return NewQuantityWithCeiling(value, decimal.NewFromInt(DefaultQuantityCeiling))
}

// NewQuantityWithCeiling creates a Quantity with an explicit upper bound.
// Values above the ceiling are clamped to it; non-positive values fail.
func NewQuantityWithCeiling(value, ceiling decimal.Decimal) (Quantity, error) {
	if !value.IsPositive() {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%s is not greater than 0", value))
	}
	if value.GreaterThan(ceiling) {
		value = ceiling
	}
	return Quantity{value: value, guard: guard.NewConstructorGuard()}, nil
}

// Value returns the underlying decimal value.
func (q Quantity) Value() decimal.Decimal {
	return q.value
}

// IsEqual compares two quantities numerically.
func (q Quantity) IsEqual(other Quantity) bool {
	return q.value.Equal(other.value)
}

// String renders the quantity, e.g. "3" or "1.5".
func (q Quantity) String() string {
	return q.value.String()
}

// Validate checks the Quantity was created via a constructor.
func (q Quantity) Validate() error {
	return q.guard.Validate(ErrQuantityIsNotConstructed)
}
