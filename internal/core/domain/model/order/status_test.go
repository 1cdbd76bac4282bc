package order_test

import (
	"testing"

	"dispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	valid := []order.Status{
		order.Pending, order.Confirmed, order.Paid,
		order.Ready, order.Delivered, order.Cancelled,
	}
	for _, s := range valid {
		assert.NoError(t, s.Validate(), s.String())
	}

	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(99).Validate())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "pending", order.Pending.String())
	assert.Equal(t, "ready", order.Ready.String())
	assert.Equal(t, "unknown", order.Status(99).String())
}

func TestStatus_HappyPath(t *testing.T) {
	s := order.Pending

	s, err := s.Confirm()
	require.NoError(t, err)
	assert.Equal(t, order.Confirmed, s)

	s, err = s.Pay()
	require.NoError(t, err)
	assert.Equal(t, order.Paid, s)

	s, err = s.MarkReady()
	require.NoError(t, err)
	assert.Equal(t, order.Ready, s)

	s, err = s.Deliver()
	require.NoError(t, err)
	assert.Equal(t, order.Delivered, s)
	assert.True(t, s.IsTerminal())
}

func TestStatus_IllegalTransitions(t *testing.T) {
	t.Run("cannot deliver before ready", func(t *testing.T) {
		_, err := order.Pending.Deliver()
		require.Error(t, err)
		_, err = order.Paid.Deliver()
		require.Error(t, err)
	})

	t.Run("cannot skip payment", func(t *testing.T) {
		_, err := order.Confirmed.MarkReady()
		require.Error(t, err)
	})

	t.Run("cannot confirm twice", func(t *testing.T) {
		_, err := order.Confirmed.Confirm()
		require.Error(t, err)
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("cancellable from any non-terminal state", func(t *testing.T) {
		for _, s := range []order.Status{order.Pending, order.Confirmed, order.Paid, order.Ready} {
			got, err := s.Cancel()
			require.NoError(t, err, s.String())
			assert.Equal(t, order.Cancelled, got)
		}
	})

	t.Run("terminal states cannot be cancelled", func(t *testing.T) {
		_, err := order.Delivered.Cancel()
		require.Error(t, err)
		_, err = order.Cancelled.Cancel()
		require.Error(t, err)
	})
}
