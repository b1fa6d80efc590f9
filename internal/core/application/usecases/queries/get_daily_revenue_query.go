package queries

import (
	"errors"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/guard"
)

var (
	ErrGetDailyRevenueQueryIsNotConstructed = errors.New(
		"GetDailyRevenueQuery must be created via NewGetDailyRevenueQuery constructor",
	)
	ErrDayIsRequired = errors.New("day is required")
)

// GetDailyRevenueQuery computes the revenue of one calendar day, split by
// payment method. Revenue counts dispatched orders whose last update falls
// on that day; the read is dashboard-grade, not transactionally consistent
// with concurrent writes.
//
// Example:
//
//	query, _ := NewGetDailyRevenueQuery(time.Now())
//	handler := NewGetDailyRevenueQueryHandler(db)
//
//	report, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to compute revenue: %w", err)
//	}
//	fmt.Printf("Total: %s across %d orders\n", report.Total, report.OrderCount)
type GetDailyRevenueQuery struct {
	day time.Time

	guard guard.ConstructorGuard
}

// NewGetDailyRevenueQuery creates a query for the given day's revenue.
// Only the date part of day is used.
func NewGetDailyRevenueQuery(day time.Time) (GetDailyRevenueQuery, error) {
	if day.IsZero() {
		return GetDailyRevenueQuery{}, ErrDayIsRequired
	}

	return GetDailyRevenueQuery{
		day:   day,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDailyRevenueQuery) Validate() error {
	return q.guard.Validate(ErrGetDailyRevenueQueryIsNotConstructed)
}

// Day returns the day the revenue is computed for.
func (q GetDailyRevenueQuery) Day() time.Time {
	return q.day
}

// PaymentMethodRevenue is one payment method's share of the day.
type PaymentMethodRevenue struct {
	PaymentMethod string
	OrderCount    int
	Total         kernel.Money
}

// GetDailyRevenueQueryResponse is the day's revenue report.
type GetDailyRevenueQueryResponse struct {
	Day        time.Time
	OrderCount int
	Total      kernel.Money
	ByMethod   []PaymentMethodRevenue
}
