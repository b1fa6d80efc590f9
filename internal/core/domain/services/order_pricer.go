package services

import (
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/core/domain/model/product"
)

// Selection pairs a product with the quantity being ordered.
type Selection struct {
	Product  *product.Product
	Quantity kernel.Quantity
}

// OrderPricer is a domain service that turns product selections into priced
// order lines.
//
// Pricing rules:
//   - The client discount applies to every line's unit price, rounded to
//     cents with round-half-up, before the quantity multiplication.
//   - Each product appears at most once per order; a repeated selection of
//     the same product is ignored rather than rejected, the first occurrence
//     wins.
//   - The priced unit value is frozen onto the line; later product price or
//     discount edits never touch existing orders.
//
// Archived products are rejected upstream, at selection time; the pricer
// assumes it only sees orderable products.
type OrderPricer struct{}

// NewOrderPricer creates a new OrderPricer instance.
func NewOrderPricer() OrderPricer {
	return OrderPricer{}
}

// Price produces the order lines for the given selections under the client's
// discount. Duplicate product selections are collapsed to the first one.
func (p OrderPricer) Price(selections []Selection, discount kernel.Percent) ([]order.Item, error) {
	if err := discount.Validate(); err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(selections))
	seen := make(map[string]struct{}, len(selections))

	for _, sel := range selections {
		if err := sel.Product.Validate(); err != nil {
			return nil, err
		}

		id := sel.Product.ID().String()
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		unitPrice := sel.Product.Price().ApplyDiscount(discount)
		item, err := order.NewItem(sel.Product.ID(), sel.Quantity, unitPrice)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
