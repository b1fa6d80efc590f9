package queries_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pedidos/internal/core/application/usecases/queries"
)

func TestNewGetUnassignedOrdersQuery(t *testing.T) {
	query := queries.NewGetUnassignedOrdersQuery()
	assert.NoError(t, query.Validate())

	var unconstructed queries.GetUnassignedOrdersQuery
	assert.ErrorIs(t, unconstructed.Validate(), queries.ErrGetUnassignedOrdersQueryIsNotConstructed)
}

func TestNewGetDailyRevenueQuery(t *testing.T) {
	day := time.Date(2024, time.January, 15, 13, 45, 0, 0, time.UTC)

	query, err := queries.NewGetDailyRevenueQuery(day)
	require.NoError(t, err)
	assert.NoError(t, query.Validate())
	assert.Equal(t, day, query.Day())

	_, err = queries.NewGetDailyRevenueQuery(time.Time{})
	assert.ErrorIs(t, err, queries.ErrDayIsRequired)

	var unconstructed queries.GetDailyRevenueQuery
	assert.ErrorIs(t, unconstructed.Validate(), queries.ErrGetDailyRevenueQueryIsNotConstructed)
}

func TestNewGetOverdueLoansQuery(t *testing.T) {
	today := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

	query, err := queries.NewGetOverdueLoansQuery(today)
	require.NoError(t, err)
	assert.NoError(t, query.Validate())
	assert.Equal(t, today, query.Today())

	_, err = queries.NewGetOverdueLoansQuery(time.Time{})
	assert.ErrorIs(t, err, queries.ErrTodayIsRequired)

	var unconstructed queries.GetOverdueLoansQuery
	assert.ErrorIs(t, unconstructed.Validate(), queries.ErrGetOverdueLoansQueryIsNotConstructed)
}
