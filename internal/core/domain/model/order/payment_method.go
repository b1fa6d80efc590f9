package order

import (
	"fmt"

	"pedidos/internal/pkg/errs"
)

// PaymentMethod is the fixed enumeration of ways an order can be paid.
type PaymentMethod string

const (
	// POS is payment by card terminal at the door.
	POS PaymentMethod = "pos"
	// Cash is payment in cash on delivery.
	Cash PaymentMethod = "cash"
	// Transfer is payment by bank transfer.
	Transfer PaymentMethod = "transfer"
)

// PaymentMethodFromString parses a PaymentMethod from its
// storage/transport representation.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case POS, Cash, Transfer:
		return PaymentMethod(s), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("paymentMethod",
			fmt.Errorf("%q is not a valid payment method", s))
	}
}

// Validate checks the PaymentMethod is one of the defined values.
func (m PaymentMethod) Validate() error {
	switch m {
	case POS, Cash, Transfer:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod",
			fmt.Errorf("%q is not a valid payment method", string(m)))
	}
}

// String returns the storage representation of the payment method.
func (m PaymentMethod) String() string {
	return string(m)
}
