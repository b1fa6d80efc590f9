// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"pedidos/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ClientRepoFactory provides access to the client repository within a transaction.
	ClientRepoFactory interface {
		ClientRepository() ports.ClientRepository
	}

	// ZoneRepoFactory provides access to the zone repository within a transaction.
	ZoneRepoFactory interface {
		ZoneRepository() ports.ZoneRepository
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// LoanRepoFactory provides access to the loan repository within a transaction.
	LoanRepoFactory interface {
		LoanRepository() ports.LoanRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify the order aggregate (cancel, delete,
	// payment amendment, unassignment).
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CreateOrderUoW manages the order creation transaction, which spans
	// client resolution, zone snapshotting, product pricing, and order
	// persistence as one atomic operation.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   clientRepo := uow.ClientRepository()
	//   orderRepo := uow.OrderRepository()
	//   // ... resolve, price, persist
	//
	//   err = uow.Commit(ctx)
	CreateOrderUoW interface {
		TxManager
		ClientRepoFactory
		ZoneRepoFactory
		ProductRepoFactory
		OrderRepoFactory
	}

	// CreateOrderUoWFactory creates new order creation unit of work instances.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// AssignUoW manages transactions spanning driver lookup and order update.
	AssignUoW interface {
		TxManager
		DriverRepoFactory
		OrderRepoFactory
	}

	// AssignUoWFactory creates new assignment unit of work instances.
	AssignUoWFactory interface {
		Create() AssignUoW
	}

	// ClientUoW manages transactions for client-only operations.
	ClientUoW interface {
		TxManager
		ClientRepoFactory
	}

	// ClientUoWFactory creates new client unit of work instances.
	ClientUoWFactory interface {
		Create() ClientUoW
	}

	// ZoneUoW manages transactions for zone-only operations.
	ZoneUoW interface {
		TxManager
		ZoneRepoFactory
	}

	// ZoneUoWFactory creates new zone unit of work instances.
	ZoneUoWFactory interface {
		Create() ZoneUoW
	}

	// ProductUoW manages transactions for product-only operations.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	// ProductUoWFactory creates new product unit of work instances.
	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// DriverUoW manages transactions for driver-only operations.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	// DriverUoWFactory creates new driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// LoanUoW manages transactions for loan-only operations.
	LoanUoW interface {
		TxManager
		LoanRepoFactory
	}

	// LoanUoWFactory creates new loan unit of work instances.
	LoanUoWFactory interface {
		Create() LoanUoW
	}
)
