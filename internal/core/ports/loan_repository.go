package ports

import (
	"context"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/loan"
)

// LoanRepository defines the persistence contract for book loans.
// Only the three dates are stored; loan status is derived on read.
type LoanRepository interface {
	// Add persists a new loan.
	Add(ctx context.Context, aggregate *loan.Loan) error

	// Update persists changes to an existing loan, such as recording the
	// actual return date.
	Update(ctx context.Context, aggregate *loan.Loan) error

	// Get retrieves a loan by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*loan.Loan, error)

	// GetAllUnreturned retrieves every loan without an actual return date.
	// Callers derive active versus overdue from the stipulated date.
	GetAllUnreturned(ctx context.Context) ([]*loan.Loan, error)
}
