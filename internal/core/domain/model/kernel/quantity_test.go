package kernel_test

import (
	"testing"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuantity(t *testing.T) {
	t.Run("accepts whole amounts", func(t *testing.T) {
		q, err := kernel.NewQuantity(decimal.NewFromInt(3))

		require.NoError(t, err)
		assert.Equal(t, "3", q.String())
		require.NoError(t, q.Validate())
	})

	t.Run("accepts fractional amounts", func(t *testing.T) {
		q, err := kernel.NewQuantity(decimal.RequireFromString("0.75"))

		require.NoError(t, err)
		assert.Equal(t, "0.75", q.String())
	})

	t.Run("rejects zero", func(t *testing.T) {
		_, err := kernel.NewQuantity(decimal.Zero)

		require.Error(t, err)
		assert.True(t, errs.IsValidation(err))
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		_, err := kernel.NewQuantity(decimal.NewFromInt(-2))

		require.Error(t, err)
	})

	t.Run("clamps values above the default ceiling", func(t *testing.T) {
		q, err := kernel.NewQuantity(decimal.NewFromInt(999999))

		require.NoError(t, err)
		assert.Equal(t, "25000", q.String())
	})

	t.Run("keeps the ceiling value itself", func(t *testing.T) {
		q, err := kernel.NewQuantity(decimal.NewFromInt(kernel.DefaultQuantityCeiling))

		require.NoError(t, err)
		assert.Equal(t, "25000", q.String())
	})

	t.Run("clamps against an explicit ceiling", func(t *testing.T) {
		q, err := kernel.NewQuantityWithCeiling(decimal.NewFromInt(50), decimal.NewFromInt(10))

		require.NoError(t, err)
		assert.Equal(t, "10", q.String())
	})
}

func TestQuantity_Validate(t *testing.T) {
	var zero kernel.Quantity

	err := zero.Validate()

	require.Error(t, err)
	assert.Equal(t, kernel.ErrQuantityIsNotConstructed, err)
}
