package services

import (
	"fmt"
	"strconv"

	"github.com/zenith-max/Wellmed/internal/domain"
	"github.com/zenith-max/Wellmed/internal/repository"
)

type SettingsService interface {
	// GetShippingCharge returns the configured flat shipping fee, lazily
	// creating the setting with the default on first read.
	GetShippingCharge() (float64, error)
	UpdateShippingCharge(value float64) (float64, error)
}

type settingsService struct {
	repo            repository.SettingRepository
	defaultShipping float64
}

func NewSettingsService(repo repository.SettingRepository, defaultShipping float64) SettingsService {
	if defaultShipping < 0 {
		defaultShipping = 0
	}
	return &settingsService{repo: repo, defaultShipping: defaultShipping}
}

func (s *settingsService) GetShippingCharge() (float64, error) {
	setting, err := s.repo.Get(domain.SettingShippingCharge)
	if err != nil {
		return 0, err
	}

	if setting == nil {
		setting, err = s.repo.Upsert(domain.SettingShippingCharge, formatCharge(s.defaultShipping))
		if err != nil {
			return 0, err
		}
	}

	value, err := strconv.ParseFloat(setting.Value, 64)
	if err != nil || value < 0 {
		return s.defaultShipping, nil
	}
	return value, nil
}

func (s *settingsService) UpdateShippingCharge(value float64) (float64, error) {
	if value < 0 {
		return 0, fmt.Errorf("%w: shipping charge must be >= 0", ErrInvalidInput)
	}

	setting, err := s.repo.Upsert(domain.SettingShippingCharge, formatCharge(value))
	if err != nil {
		return 0, err
	}

	stored, err := strconv.ParseFloat(setting.Value, 64)
	if err != nil {
		return value, nil
	}
	return stored, nil
}

func formatCharge(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
