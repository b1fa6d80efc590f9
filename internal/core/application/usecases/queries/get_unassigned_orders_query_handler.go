package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
)

// GetUnassignedOrdersQueryHandler retrieves the dispatch queue from the database.
// Reads the orders table directly; the stored totals and zone snapshots are
// returned as-is, never recomputed.
//
// Example:
//
//	handler := NewGetUnassignedOrdersQueryHandler(db)
//	queue, err := handler.Handle(ctx, NewGetUnassignedOrdersQuery())
//	if err != nil {
//	    log.Printf("Failed to get dispatch queue: %v", err)
//	    return err
//	}
type GetUnassignedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUnassignedOrdersQueryHandler creates a handler for dispatch queue queries.
// Requires a GORM database connection for query execution.
func NewGetUnassignedOrdersQueryHandler(db *gorm.DB) GetUnassignedOrdersQueryHandler {
	return GetUnassignedOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all issued orders.
// Results are sorted oldest-first so the longest-waiting order is dispatched first.
func (h GetUnassignedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUnassignedOrdersQuery,
) ([]GetUnassignedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUnassignedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			client_phone,
			delivery_name,
			delivery_street,
			zone_name,
			total,
			payment_method,
			created_at
		FROM orders
		WHERE status = ?
		ORDER BY created_at
	`, order.Issued.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetUnassignedOrdersQueryResponse
		var id uuid.UUID
		var total decimal.Decimal
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&resp.ClientPhone,
			&resp.DeliveryName,
			&resp.Street,
			&resp.ZoneName,
			&total,
			&resp.PaymentMethod,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		totalMoney, moneyErr := kernel.NewMoney(total)
		if moneyErr != nil {
			return nil, moneyErr
		}
		resp.Total = totalMoney
		resp.CreatedAt = createdAt

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
