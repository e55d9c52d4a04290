package repository

import (
	"errors"
	"log"

	"github.com/zenith-max/Wellmed/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingRepository interface {
	Get(key string) (*domain.Setting, error)
	// Upsert writes the value for key, creating the row if absent. The
	// ON CONFLICT form keeps the lazy default creation idempotent when two
	// requests race on first read.
	Upsert(key, value string) (*domain.Setting, error)
}

type settingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{db: db}
}

func (r *settingRepository) Get(key string) (*domain.Setting, error) {
	setting := &domain.Setting{}

	if err := r.db.First(setting, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("get setting error: %v", err)
		return nil, err
	}

	return setting, nil
}

func (r *settingRepository) Upsert(key, value string) (*domain.Setting, error) {
	setting := &domain.Setting{Key: key, Value: value}

	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(setting).Error
	if err != nil {
		log.Printf("upsert setting error: %v", err)
		return nil, err
	}

	return setting, nil
}
