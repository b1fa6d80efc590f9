// Package productrepo provides data transfer objects and mapping functions for product persistence.
package productrepo

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/product"
)

// ProductDTO represents the database structure for persisting catalog products.
// The price column holds the pre-discount unit price; orders snapshot their
// own discounted prices at creation time.
type ProductDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Code        string          `gorm:"type:varchar(64);not null;uniqueIndex"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Description string          `gorm:"type:varchar(1000)"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TaxPercent  decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	Archived    bool            `gorm:"not null"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain aggregate to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:          aggregate.ID().Bytes(),
		Code:        aggregate.Code(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Price:       aggregate.Price().Amount(),
		TaxPercent:  aggregate.TaxPercent().Value(),
		Archived:    aggregate.IsArchived(),
	}
}

// toDomain converts a database DTO to a product domain aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	taxPercent, err := kernel.NewPercent(dto.TaxPercent)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Code, dto.Name, dto.Description, price, taxPercent, dto.Archived)
}
