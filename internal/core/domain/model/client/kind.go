package client

import (
	"fmt"

	"pedidos/internal/pkg/errs"
)

// Kind distinguishes individual clients from business clients.
// Business clients additionally carry a legal name and tax id.
type Kind string

const (
	// Individual is the default kind for walk-in clients.
	Individual Kind = "individual"
	// Business marks clients that require invoicing data.
	Business Kind = "business"
)

// KindFromString parses a Kind from its storage/transport representation.
// An empty string defaults to Individual.
func KindFromString(s string) (Kind, error) {
	switch Kind(s) {
	case "":
		return Individual, nil
	case Individual, Business:
		return Kind(s), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("clientKind",
			fmt.Errorf("%q is not a valid client kind", s))
	}
}

// Validate checks the Kind is one of the defined values.
func (k Kind) Validate() error {
	switch k {
	case Individual, Business:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("clientKind",
			fmt.Errorf("%q is not a valid client kind", string(k)))
	}
}

// String returns the storage representation of the kind.
func (k Kind) String() string {
	return string(k)
}
