// Package queries contains read-only operations in the CQRS architecture.
// Query handlers read from the store directly and return plain response
// structs; they never mutate state and bypass the aggregate constructors.
package queries

import (
	"errors"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/guard"
)

var ErrGetUnassignedOrdersQueryIsNotConstructed = errors.New(
	"GetUnassignedOrdersQuery must be created via NewGetUnassignedOrdersQuery constructor",
)

// GetUnassignedOrdersQuery retrieves all issued orders waiting for a driver.
//
// Example:
//
//	query := NewGetUnassignedOrdersQuery()
//	handler := NewGetUnassignedOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get dispatch queue: %w", err)
//	}
//	fmt.Printf("%d orders awaiting a driver\n", len(orders))
type GetUnassignedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnassignedOrdersQuery creates a query to retrieve the dispatch queue.
// This is a parameterless query that fetches all issued orders.
func NewGetUnassignedOrdersQuery() GetUnassignedOrdersQuery {
	return GetUnassignedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUnassignedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUnassignedOrdersQueryIsNotConstructed)
}

// GetUnassignedOrdersQueryResponse is one row of the dispatch queue.
// Totals and zone data are the stored creation-time snapshots.
type GetUnassignedOrdersQueryResponse struct {
	ID            kernel.UUID
	ClientPhone   string
	DeliveryName  string
	Street        string
	ZoneName      string
	Total         kernel.Money
	PaymentMethod string
	CreatedAt     time.Time
}
