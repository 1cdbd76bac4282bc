package pharmacy_test

import (
	"testing"

	"dispatch/internal/core/domain/model/commission"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/pharmacy"

	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPharmacy(t *testing.T) {
	t.Run("should create pharmacy without location", func(t *testing.T) {
		p, err := pharmacy.NewPharmacy(kernel.NewUUID(), "Pharmacie du Plateau")

		require.NoError(t, err)
		assert.NoError(t, p.Validate())
		assert.False(t, p.HasLocation())
		assert.Nil(t, p.Location())
		assert.Nil(t, p.RateOverride())
	})

	t.Run("should reject missing name", func(t *testing.T) {
		_, err := pharmacy.NewPharmacy(kernel.NewUUID(), "")
		require.ErrorIs(t, err, pharmacy.ErrNameIsRequired)
	})

	t.Run("should reject invalid id", func(t *testing.T) {
		_, err := pharmacy.NewPharmacy(kernel.UUID{}, "Pharmacie du Plateau")
		require.Error(t, err)
	})

	t.Run("zero value is invalid", func(t *testing.T) {
		var p pharmacy.Pharmacy
		require.Error(t, p.Validate())
	})
}

func TestPharmacy_UpdateLocation(t *testing.T) {
	p, err := pharmacy.NewPharmacy(kernel.NewUUID(), "Pharmacie du Plateau")
	require.NoError(t, err)

	loc, err := kernel.NewGeoPoint(5.3233, -4.0172)
	require.NoError(t, err)
	require.NoError(t, p.UpdateLocation(loc))

	assert.True(t, p.HasLocation())

	first := p.Location()
	second := p.Location()
	require.NotNil(t, first)
	assert.NotSame(t, first, second)
}

func TestPharmacy_RateOverride(t *testing.T) {
	p, err := pharmacy.NewPharmacy(kernel.NewUUID(), "Pharmacie du Plateau")
	require.NoError(t, err)

	rates, err := commission.NewRateSet(
		decimal.MustParse("0.15"),
		decimal.MustParse("0.75"),
		decimal.MustParse("0.10"),
	)
	require.NoError(t, err)

	p.SetRateOverride(rates)
	override := p.RateOverride()
	require.NotNil(t, override)
	assert.Equal(t, 0, override.Platform.Cmp(decimal.MustParse("0.15")))

	p.ClearRateOverride()
	assert.Nil(t, p.RateOverride())
}

func TestRestorePharmacy(t *testing.T) {
	loc, err := kernel.NewGeoPoint(5.3233, -4.0172)
	require.NoError(t, err)

	rates, err := commission.NewRateSet(
		decimal.MustParse("0.15"),
		decimal.MustParse("0.75"),
		decimal.MustParse("0.10"),
	)
	require.NoError(t, err)

	p, err := pharmacy.RestorePharmacy(kernel.NewUUID(), "Pharmacie du Plateau", &loc, &rates)
	require.NoError(t, err)
	assert.True(t, p.HasLocation())
	require.NotNil(t, p.RateOverride())
}
