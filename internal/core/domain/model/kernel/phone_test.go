package kernel_test

import (
	"strings"
	"testing"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPhone(t *testing.T) {
	t.Run("accepts digit-only numbers", func(t *testing.T) {
		phone, err := kernel.NewPhone("099123456")

		require.NoError(t, err)
		assert.Equal(t, "099123456", phone.String())
		require.NoError(t, phone.Validate())
	})

	t.Run("accepts a single digit", func(t *testing.T) {
		_, err := kernel.NewPhone("7")

		require.NoError(t, err)
	})

	t.Run("accepts 32 digits", func(t *testing.T) {
		_, err := kernel.NewPhone(strings.Repeat("9", 32))

		require.NoError(t, err)
	})

	t.Run("rejects 33 digits", func(t *testing.T) {
		_, err := kernel.NewPhone(strings.Repeat("9", 33))

		require.Error(t, err)
		assert.True(t, errs.IsValidation(err))
	})

	t.Run("rejects empty string", func(t *testing.T) {
		_, err := kernel.NewPhone("")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects non-digit characters", func(t *testing.T) {
		for _, input := range []string{"+59899123456", "099 123", "abc", "12-34"} {
			_, err := kernel.NewPhone(input)
			require.Error(t, err, input)
		}
	})
}

func TestPhone_Validate(t *testing.T) {
	var zero kernel.Phone

	err := zero.Validate()

	require.Error(t, err)
	assert.Equal(t, kernel.ErrPhoneIsNotConstructed, err)
}

func TestPhone_IsEqual(t *testing.T) {
	a, _ := kernel.NewPhone("099123456")
	b, _ := kernel.NewPhone("099123456")
	c, _ := kernel.NewPhone("098000000")

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
