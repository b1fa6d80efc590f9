package queries

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
)

// GetDailyRevenueQueryHandler computes a day's revenue from the database.
// Sums the stored order totals; zone costs are informational and excluded,
// matching the order total itself.
type GetDailyRevenueQueryHandler struct {
	db *gorm.DB
}

// NewGetDailyRevenueQueryHandler creates a handler for daily revenue queries.
// Requires a GORM database connection for query execution.
func NewGetDailyRevenueQueryHandler(db *gorm.DB) GetDailyRevenueQueryHandler {
	return GetDailyRevenueQueryHandler{db: db}
}

// Handle executes the revenue aggregation for the query's day.
// Only dispatched orders count; issued orders are not yet revenue and
// cancelled orders never are.
func (h GetDailyRevenueQueryHandler) Handle(
	ctx context.Context,
	query GetDailyRevenueQuery,
) (GetDailyRevenueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDailyRevenueQueryResponse{}, err
	}

	day := query.Day()
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			payment_method,
			COUNT(*),
			COALESCE(SUM(total), 0)
		FROM orders
		WHERE status = ?
		  AND updated_at >= ?
		  AND updated_at < ?
		GROUP BY payment_method
		ORDER BY payment_method
	`, order.Dispatched.String(), dayStart, dayEnd).Rows()
	if err != nil {
		return GetDailyRevenueQueryResponse{}, err
	}
	defer rows.Close()

	response := GetDailyRevenueQueryResponse{
		Day:   dayStart,
		Total: kernel.ZeroMoney(),
	}

	for rows.Next() {
		var method string
		var count int
		var sum decimal.Decimal

		if err = rows.Scan(&method, &count, &sum); err != nil {
			return GetDailyRevenueQueryResponse{}, err
		}

		methodTotal, moneyErr := kernel.NewMoney(sum)
		if moneyErr != nil {
			return GetDailyRevenueQueryResponse{}, moneyErr
		}

		response.ByMethod = append(response.ByMethod, PaymentMethodRevenue{
			PaymentMethod: method,
			OrderCount:    count,
			Total:         methodTotal,
		})
		response.OrderCount += count
		response.Total = response.Total.Add(methodTotal)
	}

	if err = rows.Err(); err != nil {
		return GetDailyRevenueQueryResponse{}, err
	}

	return response, nil
}
