package queries

import (
	"errors"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/guard"
)

var (
	ErrGetOverdueLoansQueryIsNotConstructed = errors.New(
		"GetOverdueLoansQuery must be created via NewGetOverdueLoansQuery constructor",
	)
	ErrTodayIsRequired = errors.New("today is required")
)

// GetOverdueLoansQuery retrieves all loans that are out past their due date.
// Overdue is derived at read time from the reference day; no stored status
// exists.
type GetOverdueLoansQuery struct {
	today time.Time

	guard guard.ConstructorGuard
}

// NewGetOverdueLoansQuery creates a query for loans overdue as of today.
func NewGetOverdueLoansQuery(today time.Time) (GetOverdueLoansQuery, error) {
	if today.IsZero() {
		return GetOverdueLoansQuery{}, ErrTodayIsRequired
	}

	return GetOverdueLoansQuery{
		today: today,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOverdueLoansQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueLoansQueryIsNotConstructed)
}

// Today returns the reference day for the overdue derivation.
func (q GetOverdueLoansQuery) Today() time.Time {
	return q.today
}

// GetOverdueLoansQueryResponse is one overdue loan.
type GetOverdueLoansQueryResponse struct {
	ID                   kernel.UUID
	BookID               kernel.UUID
	MemberID             kernel.UUID
	LoanDate             time.Time
	StipulatedReturnDate time.Time
	DaysOverdue          int
}
