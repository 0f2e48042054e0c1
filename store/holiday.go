package store

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Shin-da/ojt-tracking-system-sub000/model"
	"github.com/Shin-da/ojt-tracking-system-sub000/pkg/errors"
	"github.com/Shin-da/ojt-tracking-system-sub000/utils"
)

type HolidayStore struct {
	db *gorm.DB
}

func NewHolidayStore(db *gorm.DB) *HolidayStore {
	return &HolidayStore{db: db}
}

func (s *HolidayStore) List() ([]model.Holiday, error) {
	var holidays []model.Holiday
	if err := s.db.Order("date ASC").Find(&holidays).Error; err != nil {
		return nil, fmt.Errorf("list holidays: %w", err)
	}
	return holidays, nil
}

// Dates returns just the holiday dates, for the projector's exclusion list.
func (s *HolidayStore) Dates() ([]time.Time, error) {
	holidays, err := s.List()
	if err != nil {
		return nil, err
	}
	return utils.Map(holidays, func(h model.Holiday) time.Time {
		return utils.DateOnly(h.Date)
	}), nil
}

func (s *HolidayStore) Create(date time.Time, name string) (*model.Holiday, error) {
	if date.IsZero() || name == "" {
		return nil, errors.DuplicateOrInvalid
	}

	holiday := model.Holiday{Date: utils.DateOnly(date), Name: name}
	if err := s.db.Create(&holiday).Error; err != nil {
		return nil, fmt.Errorf("create holiday: %w", err)
	}
	return &holiday, nil
}

func (s *HolidayStore) DeleteByID(id int32) error {
	res := s.db.Delete(&model.Holiday{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete holiday %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return errors.NotFound
	}
	return nil
}
