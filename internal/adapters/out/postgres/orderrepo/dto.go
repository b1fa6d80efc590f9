// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The delivery target and its zone snapshot are flattened into the order row;
// line items live in their own table keyed by (order_id, product_id).
//
// Timestamps are owned by the domain, so GORM's automatic tracking is
// disabled on them. The version column backs the optimistic concurrency
// check performed by Update.
type OrderDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ClientPhone    string          `gorm:"type:varchar(32);not null;index"`
	DeliveryName   string          `gorm:"type:varchar(255);not null"`
	DeliveryStreet string          `gorm:"type:varchar(255);not null"`
	ZoneID         uuid.UUID       `gorm:"type:uuid;not null"`
	ZoneName       string          `gorm:"type:varchar(255);not null"`
	ZoneCost       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PaymentMethod  string          `gorm:"type:varchar(16);not null"`
	Notes          string          `gorm:"type:varchar(500)"`
	Total          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status         string          `gorm:"type:varchar(16);not null;index"`
	DriverPhone    *string         `gorm:"type:varchar(32);index"`
	CreatedAt      time.Time       `gorm:"autoCreateTime:false"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime:false"`
	Version        int             `gorm:"not null"`
	Items          []ItemDTO       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one priced order line. The unit price already carries
// the client discount applied at order creation.
type ItemDTO struct {
	OrderID   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Quantity  decimal.Decimal `gorm:"type:numeric(12,3);not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName specifies the database table name for order line entities.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps the flattened delivery snapshot, the optional driver reference, and all
// line items.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	var driverPhone *string
	if phone := aggregate.Driver(); phone != nil {
		raw := phone.String()
		driverPhone = &raw
	}

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			OrderID:   orderID,
			ProductID: item.ProductID().Bytes(),
			Quantity:  item.Quantity().Value(),
			UnitPrice: item.UnitPriceAfterDiscount().Amount(),
		})
	}

	delivery := aggregate.Delivery()

	return OrderDTO{
		ID:             orderID,
		ClientPhone:    aggregate.ClientPhone().String(),
		DeliveryName:   delivery.Name(),
		DeliveryStreet: delivery.Street(),
		ZoneID:         delivery.ZoneID().Bytes(),
		ZoneName:       delivery.ZoneName(),
		ZoneCost:       delivery.ZoneCost().Amount(),
		PaymentMethod:  aggregate.PaymentMethod().String(),
		Notes:          aggregate.Notes(),
		Total:          aggregate.Total().Amount(),
		Status:         aggregate.Status().String(),
		DriverPhone:    driverPhone,
		CreatedAt:      aggregate.CreatedAt(),
		UpdatedAt:      aggregate.UpdatedAt(),
		Version:        aggregate.Version(),
		Items:          items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including its stored total, status,
// driver reference and version using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientPhone, err := kernel.NewPhone(dto.ClientPhone)
	if err != nil {
		return nil, err
	}

	delivery, err := deliveryToDomain(dto)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := itemToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	paymentMethod, err := order.PaymentMethodFromString(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var driverPhone *kernel.Phone
	if dto.DriverPhone != nil {
		phone, phoneErr := kernel.NewPhone(*dto.DriverPhone)
		if phoneErr != nil {
			return nil, phoneErr
		}
		driverPhone = &phone
	}

	return order.RestoreOrder(id, clientPhone, delivery, items, paymentMethod, dto.Notes,
		total, status, driverPhone, dto.CreatedAt, dto.UpdatedAt, dto.Version)
}

// deliveryToDomain rebuilds the delivery target from the flattened columns.
func deliveryToDomain(dto OrderDTO) (order.DeliveryTarget, error) {
	zoneID, err := kernel.UUIDFromBytes(dto.ZoneID[:])
	if err != nil {
		return order.DeliveryTarget{}, err
	}

	zoneCost, err := kernel.NewMoney(dto.ZoneCost)
	if err != nil {
		return order.DeliveryTarget{}, err
	}

	return order.NewDeliveryTarget(dto.DeliveryName, dto.DeliveryStreet, zoneID, dto.ZoneName, zoneCost)
}

// itemToDomain converts an order line DTO to a domain line item.
func itemToDomain(dto ItemDTO) (order.Item, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.Item{}, err
	}

	quantity, err := kernel.NewQuantity(dto.Quantity)
	if err != nil {
		return order.Item{}, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.Item{}, err
	}

	return order.NewItem(productID, quantity, unitPrice)
}
