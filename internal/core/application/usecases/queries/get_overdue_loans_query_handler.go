package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/loan"
)

// GetOverdueLoansQueryHandler retrieves overdue loans from the database.
// The rows hold only dates; the overdue derivation runs in Go against the
// query's reference day, so the database never stores or computes a status.
type GetOverdueLoansQueryHandler struct {
	db *gorm.DB
}

// NewGetOverdueLoansQueryHandler creates a handler for overdue loan queries.
// Requires a GORM database connection for query execution.
func NewGetOverdueLoansQueryHandler(db *gorm.DB) GetOverdueLoansQueryHandler {
	return GetOverdueLoansQueryHandler{db: db}
}

// Handle executes the query to retrieve all overdue loans.
// Fetches every unreturned loan and keeps those the status deriver marks
// overdue for the reference day.
func (h GetOverdueLoansQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueLoansQuery,
) ([]GetOverdueLoansQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	loans := make([]GetOverdueLoansQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			book_id,
			member_id,
			loan_date,
			stipulated_return_date
		FROM loans
		WHERE actual_return_date IS NULL
		ORDER BY stipulated_return_date
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	today := query.Today()

	for rows.Next() {
		var id, bookID, memberID uuid.UUID
		var loanDate, stipulatedReturnDate time.Time

		err = rows.Scan(&id, &bookID, &memberID, &loanDate, &stipulatedReturnDate)
		if err != nil {
			return nil, err
		}

		if loan.DeriveStatus(nil, stipulatedReturnDate, today) != loan.Overdue {
			continue
		}

		resp, respErr := buildOverdueResponse(id, bookID, memberID, loanDate, stipulatedReturnDate, today)
		if respErr != nil {
			return nil, respErr
		}
		loans = append(loans, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return loans, nil
}

func buildOverdueResponse(
	id, bookID, memberID uuid.UUID,
	loanDate, stipulatedReturnDate, today time.Time,
) (GetOverdueLoansQueryResponse, error) {
	loanID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOverdueLoansQueryResponse{}, err
	}
	loanBookID, err := kernel.UUIDFromBytes(bookID[:])
	if err != nil {
		return GetOverdueLoansQueryResponse{}, err
	}
	loanMemberID, err := kernel.UUIDFromBytes(memberID[:])
	if err != nil {
		return GetOverdueLoansQueryResponse{}, err
	}

	dueDay := time.Date(stipulatedReturnDate.Year(), stipulatedReturnDate.Month(),
		stipulatedReturnDate.Day(), 0, 0, 0, 0, stipulatedReturnDate.Location())
	todayDay := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	return GetOverdueLoansQueryResponse{
		ID:                   loanID,
		BookID:               loanBookID,
		MemberID:             loanMemberID,
		LoanDate:             loanDate,
		StipulatedReturnDate: stipulatedReturnDate,
		DaysOverdue:          int(todayDay.Sub(dueDay).Hours() / 24),
	}, nil
}
