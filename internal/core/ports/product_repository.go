package ports

import (
	"context"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for products.
// Archived products stay in storage as historical line-item references;
// excluding them from new orders is the caller's job, not the repository's.
type ProductRepository interface {
	// Add persists a new product.
	// The product code must be unique; a duplicate fails with a conflict.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetAll retrieves every product, archived ones included.
	GetAll(ctx context.Context) ([]*product.Product, error)
}
