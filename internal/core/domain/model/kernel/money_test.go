package kernel_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create money with currency", func(t *testing.T) {
		m, err := kernel.NewMoneyFromString("1500.50", "XOF")

		require.NoError(t, err)
		assert.NoError(t, m.Validate())
		assert.Equal(t, "XOF", m.Currency())
		assert.Equal(t, "1500.50 XOF", m.String())
	})

	t.Run("should require currency", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.MustParse("10"), "")
		require.Error(t, err)
	})

	t.Run("should reject malformed amount strings", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("ten", "XOF")
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var m kernel.Money
		require.Error(t, m.Validate())
	})
}

func TestNewMoneyFromMinorUnits(t *testing.T) {
	m, err := kernel.NewMoneyFromMinorUnits(1550, "XOF")

	require.NoError(t, err)
	assert.Equal(t, "15.50 XOF", m.String())
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("add and subtract", func(t *testing.T) {
		a, _ := kernel.NewMoneyFromString("100.25", "XOF")
		b, _ := kernel.NewMoneyFromString("50.75", "XOF")

		sum, err := a.Add(b)
		require.NoError(t, err)
		assert.Equal(t, "151.00 XOF", sum.String())

		diff, err := a.Sub(b)
		require.NoError(t, err)
		assert.Equal(t, "49.50 XOF", diff.String())
	})

	t.Run("mixing currencies fails", func(t *testing.T) {
		a, _ := kernel.NewMoneyFromString("100", "XOF")
		b, _ := kernel.NewMoneyFromString("100", "EUR")

		_, err := a.Add(b)
		require.Error(t, err)

		_, err = a.Sub(b)
		require.Error(t, err)
	})

	t.Run("mul rate rounds to two decimal places", func(t *testing.T) {
		total, _ := kernel.NewMoneyFromString("9999.99", "XOF")

		share, err := total.MulRate(decimal.MustParse("0.1"))

		require.NoError(t, err)
		assert.Equal(t, "1000.00 XOF", share.String())
	})

	t.Run("cmp orders amounts", func(t *testing.T) {
		a, _ := kernel.NewMoneyFromString("10", "XOF")
		b, _ := kernel.NewMoneyFromString("20", "XOF")

		cmp, err := a.Cmp(b)
		require.NoError(t, err)
		assert.Equal(t, -1, cmp)

		cmp, err = b.Cmp(a)
		require.NoError(t, err)
		assert.Equal(t, 1, cmp)

		cmp, err = a.Cmp(a)
		require.NoError(t, err)
		assert.Equal(t, 0, cmp)
	})
}

func TestMoney_Predicates(t *testing.T) {
	zero, err := kernel.ZeroMoney("XOF")
	require.NoError(t, err)
	assert.True(t, zero.IsZero())
	assert.False(t, zero.IsNegative())
	assert.False(t, zero.IsPositive())

	pos, _ := kernel.NewMoneyFromString("1", "XOF")
	assert.True(t, pos.IsPositive())

	neg, err := pos.Sub(pos)
	require.NoError(t, err)
	assert.True(t, neg.IsZero())

	belowZero, err := neg.Sub(pos)
	require.NoError(t, err)
	assert.True(t, belowZero.IsNegative())
}
