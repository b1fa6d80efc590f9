package order

import (
	"errors"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when using an improperly initialized Item.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a priced order line: a product reference, a quantity, and the unit
// price after the client discount as it was at order creation. Items are
// immutable; the price snapshot never changes even if the product price or
// the client discount does.
type Item struct {
	productID              kernel.UUID
	quantity               kernel.Quantity
	unitPriceAfterDiscount kernel.Money

	guard guard.ConstructorGuard
}

// NewItem creates an order line with a frozen discounted unit price.
func NewItem(
	productID kernel.UUID,
	quantity kernel.Quantity,
	unitPriceAfterDiscount kernel.Money,
) (Item, error) {
	item := Item{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		productID.Validate(),
		quantity.Validate(),
		unitPriceAfterDiscount.Validate(),
	); err != nil {
		return Item{}, err
	}

	item.productID = productID
	item.quantity = quantity
	item.unitPriceAfterDiscount = unitPriceAfterDiscount
	return item, nil
}

// Validate checks the Item was created via NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ProductID returns the referenced product's identifier.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() kernel.Quantity {
	return i.quantity
}

// UnitPriceAfterDiscount returns the frozen discounted unit price.
func (i Item) UnitPriceAfterDiscount() kernel.Money {
	return i.unitPriceAfterDiscount
}

// ExtendedPrice returns unit price × quantity, rounded to cents.
func (i Item) ExtendedPrice() kernel.Money {
	return i.unitPriceAfterDiscount.MulQuantity(i.quantity)
}
