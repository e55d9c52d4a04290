package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zenith-max/Wellmed/internal/domain"
)

func TestGetShippingChargeLazyDefault(t *testing.T) {
	repo := newFakeSettingRepo()
	svc := NewSettingsService(repo, 50)

	charge, err := svc.GetShippingCharge()
	require.NoError(t, err)
	assert.Equal(t, 50.0, charge)

	// the default is now persisted
	setting, err := repo.Get(domain.SettingShippingCharge)
	require.NoError(t, err)
	require.NotNil(t, setting)
	assert.Equal(t, "50", setting.Value)
}

func TestUpdateShippingCharge(t *testing.T) {
	repo := newFakeSettingRepo()
	svc := NewSettingsService(repo, 50)

	charge, err := svc.UpdateShippingCharge(75.5)
	require.NoError(t, err)
	assert.Equal(t, 75.5, charge)

	charge, err = svc.GetShippingCharge()
	require.NoError(t, err)
	assert.Equal(t, 75.5, charge)

	_, err = svc.UpdateShippingCharge(-1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetShippingChargeRecoversFromGarbage(t *testing.T) {
	repo := newFakeSettingRepo()
	_, err := repo.Upsert(domain.SettingShippingCharge, "not-a-number")
	require.NoError(t, err)

	svc := NewSettingsService(repo, 40)
	charge, err := svc.GetShippingCharge()
	require.NoError(t, err)
	assert.Equal(t, 40.0, charge)
}
