package kernel

import (
	"fmt"
	"regexp"

	"pedidos/internal/pkg/errs"
)

// ErrPhoneIsNotConstructed indicates a zero-value Phone that bypassed NewPhone.
var ErrPhoneIsNotConstructed = errs.NewValueIsRequiredError("phone must be created via NewPhone")

// phonePattern accepts digit-only phone numbers of 1 to 32 digits.
// Clients and drivers are identified externally by these numbers.
var phonePattern = regexp.MustCompile(`^\d{1,32}$`)

// Phone is a value object for the digit-only phone numbers that act as
// external identifiers for clients and drivers.
//
// The zero value is invalid; construct with NewPhone.
//
// Example:
//
//	phone, err := kernel.NewPhone("099123456")
//	if err != nil {
//	    // reject malformed input
//	}
type Phone struct {
	number string
}

// NewPhone creates a Phone from a digit-only string.
// Returns a validation error if the string is empty, longer than 32 digits,
// or contains anything besides digits.
func NewPhone(number string) (Phone, error) {
	if number == "" {
		return Phone{}, errs.NewValueIsRequiredError("phone")
	}
	if !phonePattern.MatchString(number) {
		return Phone{}, errs.NewValueIsInvalidErrorWithCause("phone",
			fmt.Errorf("%q is not a digit-only number of at most 32 digits", number))
	}
	return Phone{number: number}, nil
}

// String returns the raw digit string.
func (p Phone) String() string {
	return p.number
}

// IsEqual compares two phone numbers for equality.
func (p Phone) IsEqual(other Phone) bool {
	return p.number == other.number
}

// Validate checks the Phone was created via NewPhone.
func (p Phone) Validate() error {
	if p.number == "" {
		return ErrPhoneIsNotConstructed
	}
	return nil
}
