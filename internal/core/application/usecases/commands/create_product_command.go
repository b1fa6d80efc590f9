package commands

import (
	"errors"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
	"pedidos/internal/pkg/guard"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
	ErrProductCodeIsRequired = errs.NewValueIsRequiredError("code")
	ErrProductNameIsRequired = errs.NewValueIsRequiredError("name")
)

// CreateProductCommand represents a request to register a product in the
// catalogue.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	code        string
	name        string
	description string
	price       kernel.Money
	taxPercent  kernel.Percent

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to register a new product.
// The strictly-positive price rule is enforced by the Product constructor
// in the handler.
func NewCreateProductCommand(
	productID kernel.UUID,
	code string,
	name string,
	description string,
	price kernel.Money,
	taxPercent kernel.Percent,
) (CreateProductCommand, error) {
	command := CreateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setProductID(productID),
		command.setCode(code),
		command.setName(name),
		command.setPrice(price),
		command.setTaxPercent(taxPercent),
	); err != nil {
		return CreateProductCommand{}, err
	}

	command.description = description
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the identifier for the new product.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Code returns the caller-assigned product code.
func (c CreateProductCommand) Code() string {
	return c.code
}

// Name returns the product name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Description returns the optional product description.
func (c CreateProductCommand) Description() string {
	return c.description
}

// Price returns the unit price.
func (c CreateProductCommand) Price() kernel.Money {
	return c.price
}

// TaxPercent returns the tax percentage.
func (c CreateProductCommand) TaxPercent() kernel.Percent {
	return c.taxPercent
}

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setCode(code string) error {
	if code == "" {
		return ErrProductCodeIsRequired
	}

	c.code = code
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return ErrProductNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}

func (c *CreateProductCommand) setTaxPercent(taxPercent kernel.Percent) error {
	if err := taxPercent.Validate(); err != nil {
		return err
	}

	c.taxPercent = taxPercent
	return nil
}
