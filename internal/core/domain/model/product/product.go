// Package product contains the Product entity. Products carry a
// caller-assigned code that is unique per store, a strictly positive unit
// price, and a tax percentage. Archived products are excluded from new order
// composition but remain valid as historical line-item references.
package product

import (
	"errors"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
	"pedidos/internal/pkg/guard"
)

var (
	// ErrProductIsNotConstructed is returned when using an improperly initialized Product.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
	// ErrCodeIsRequired is returned when attempting to create a product without a code.
	ErrCodeIsRequired = errs.NewValueIsRequiredError("code")
	// ErrNameIsRequired is returned when attempting to create a product without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPriceMustBePositive is returned when the unit price is zero or negative.
	ErrPriceMustBePositive = errs.NewValueIsInvalidError("price must be greater than 0")
)

// Product is a sellable item priced per unit.
type Product struct {
	id          kernel.UUID
	code        string
	name        string
	description string
	price       kernel.Money
	taxPercent  kernel.Percent
	archived    bool

	guard guard.ConstructorGuard
}

// NewProduct creates a Product with a caller-assigned code, a strictly
// positive unit price, and a tax percentage. The description is optional.
func NewProduct(
	id kernel.UUID,
	code string,
	name string,
	description string,
	price kernel.Money,
	taxPercent kernel.Percent,
) (*Product, error) {
	p := &Product{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		p.setID(id),
		p.setCode(code),
		p.setName(name),
		p.setPrice(price),
		p.setTaxPercent(taxPercent),
	); err != nil {
		return nil, err
	}

	p.description = description
	return p, nil
}

// RestoreProduct reconstructs a Product from persistent storage,
// including its archived flag.
func RestoreProduct(
	id kernel.UUID,
	code string,
	name string,
	description string,
	price kernel.Money,
	taxPercent kernel.Percent,
	archived bool,
) (*Product, error) {
	p, err := NewProduct(id, code, name, description, price, taxPercent)
	if err != nil {
		return nil, err
	}
	p.archived = archived
	return p, nil
}

// Validate checks the Product was created via NewProduct.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Code returns the caller-assigned product code.
func (p *Product) Code() string {
	return p.code
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the optional free-text description.
func (p *Product) Description() string {
	return p.description
}

// Price returns the current unit price.
func (p *Product) Price() kernel.Money {
	return p.price
}

// TaxPercent returns the product's tax percentage.
func (p *Product) TaxPercent() kernel.Percent {
	return p.taxPercent
}

// IsArchived reports whether the product is excluded from new orders.
func (p *Product) IsArchived() bool {
	return p.archived
}

// Archive excludes the product from new order composition.
// Existing orders keep referencing it.
func (p *Product) Archive() {
	p.archived = true
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setCode(code string) error {
	if code == "" {
		return ErrCodeIsRequired
	}
	p.code = code
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	if price.IsZero() {
		return ErrPriceMustBePositive
	}
	p.price = price
	return nil
}

func (p *Product) setTaxPercent(taxPercent kernel.Percent) error {
	if err := taxPercent.Validate(); err != nil {
		return err
	}
	p.taxPercent = taxPercent
	return nil
}
