package loan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testLoan(t *testing.T) *Loan {
	t.Helper()
	l, err := NewLoan(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		date(2024, time.January, 1), date(2024, time.January, 10))
	require.NoError(t, err)
	return l
}

func TestNewLoan(t *testing.T) {
	l := testLoan(t)

	assert.NoError(t, l.Validate())
	assert.Nil(t, l.ActualReturnDate())
	assert.Equal(t, date(2024, time.January, 1), l.LoanDate())
	assert.Equal(t, date(2024, time.January, 10), l.StipulatedReturnDate())
}

func TestNewLoanDueBeforeLoanDate(t *testing.T) {
	_, err := NewLoan(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		date(2024, time.January, 10), date(2024, time.January, 1))
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewLoanMissingDates(t *testing.T) {
	_, err := NewLoan(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		time.Time{}, date(2024, time.January, 10))
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = NewLoan(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		date(2024, time.January, 1), time.Time{})
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestMarkReturned(t *testing.T) {
	l := testLoan(t)

	require.NoError(t, l.MarkReturned(date(2024, time.January, 8)))
	require.NotNil(t, l.ActualReturnDate())
	assert.Equal(t, date(2024, time.January, 8), *l.ActualReturnDate())
}

func TestMarkReturnedTwice(t *testing.T) {
	l := testLoan(t)
	require.NoError(t, l.MarkReturned(date(2024, time.January, 8)))

	err := l.MarkReturned(date(2024, time.January, 9))
	assert.ErrorIs(t, err, errs.ErrConflict)
	assert.Equal(t, date(2024, time.January, 8), *l.ActualReturnDate())
}

func TestDeriveStatus(t *testing.T) {
	due := date(2024, time.January, 10)
	returned := date(2024, time.January, 12)

	tests := map[string]struct {
		actual *time.Time
		today  time.Time
		want   Status
	}{
		"before due date":          {today: date(2024, time.January, 5), want: Active},
		"on due date":              {today: due, want: Active},
		"due date late evening":    {today: time.Date(2024, time.January, 10, 23, 59, 0, 0, time.UTC), want: Active},
		"day after due date":       {today: date(2024, time.January, 11), want: Overdue},
		"long overdue":             {today: date(2024, time.March, 1), want: Overdue},
		"returned on time":         {actual: &returned, today: date(2024, time.January, 5), want: Returned},
		"returned wins over due":   {actual: &returned, today: date(2024, time.February, 1), want: Returned},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, DeriveStatus(tc.actual, due, tc.today))
		})
	}
}

func TestLoanStatus(t *testing.T) {
	l := testLoan(t)

	assert.Equal(t, Active, l.Status(date(2024, time.January, 10)))
	assert.Equal(t, Overdue, l.Status(date(2024, time.January, 11)))

	require.NoError(t, l.MarkReturned(date(2024, time.January, 12)))
	assert.Equal(t, Returned, l.Status(date(2024, time.February, 1)))
}

func TestRestoreLoan(t *testing.T) {
	returned := date(2024, time.January, 8)
	l, err := RestoreLoan(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		date(2024, time.January, 1), date(2024, time.January, 10), &returned)
	require.NoError(t, err)

	assert.NoError(t, l.Validate())
	require.NotNil(t, l.ActualReturnDate())
	assert.Equal(t, Returned, l.Status(date(2024, time.January, 9)))
}

func TestLoanValidateUnconstructed(t *testing.T) {
	var l Loan
	assert.ErrorIs(t, l.Validate(), ErrLoanIsNotConstructed)

	var nilLoan *Loan
	assert.ErrorIs(t, nilLoan.Validate(), ErrLoanIsNotConstructed)
}
