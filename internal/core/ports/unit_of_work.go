package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// ClientRepository returns a ClientRepository instance bound to the current transaction.
	// Repository will use the transaction started by Begin().
	ClientRepository() ClientRepository

	// ZoneRepository returns a ZoneRepository instance bound to the current transaction.
	ZoneRepository() ZoneRepository

	// ProductRepository returns a ProductRepository instance bound to the current transaction.
	ProductRepository() ProductRepository

	// DriverRepository returns a DriverRepository instance bound to the current transaction.
	DriverRepository() DriverRepository

	// OrderRepository returns an OrderRepository instance bound to the current transaction.
	// Repository will use the transaction started by Begin().
	OrderRepository() OrderRepository

	// LoanRepository returns a LoanRepository instance bound to the current transaction.
	LoanRepository() LoanRepository
}
