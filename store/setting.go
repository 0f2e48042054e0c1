package store

import (
	"fmt"
	"strconv"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Shin-da/ojt-tracking-system-sub000/model"
	"github.com/Shin-da/ojt-tracking-system-sub000/pkg/errors"
)

type SettingStore struct {
	db *gorm.DB
}

func NewSettingStore(db *gorm.DB) *SettingStore {
	return &SettingStore{db: db}
}

// RequiredHours reads the required_hours setting, falling back to the
// documented default when the row is absent. A stored non-positive or
// unparsable value is surfaced as InvalidConfiguration, never defaulted away.
func (s *SettingStore) RequiredHours() (float64, error) {
	var setting model.Setting
	err := s.db.First(&setting, "name = ?", model.SettingRequiredHours).Error
	if err == gorm.ErrRecordNotFound {
		return model.DefaultRequiredHours, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read required_hours: %w", err)
	}

	hours, err := strconv.ParseFloat(setting.Value, 64)
	if err != nil || hours <= 0 {
		return 0, errors.InvalidConfiguration
	}

	return hours, nil
}

func (s *SettingStore) SetRequiredHours(hours float64) error {
	if hours <= 0 {
		return errors.InvalidConfiguration
	}

	setting := model.Setting{
		Name:  model.SettingRequiredHours,
		Value: strconv.FormatFloat(hours, 'f', -1, 64),
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&setting).Error
	if err != nil {
		return fmt.Errorf("write required_hours: %w", err)
	}

	return nil
}
