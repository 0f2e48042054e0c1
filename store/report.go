package store

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Shin-da/ojt-tracking-system-sub000/model"
	"github.com/Shin-da/ojt-tracking-system-sub000/pkg/errors"
	"github.com/Shin-da/ojt-tracking-system-sub000/utils"
)

type ReportStore struct {
	db *gorm.DB
}

func NewReportStore(db *gorm.DB) *ReportStore {
	return &ReportStore{db: db}
}

func (s *ReportStore) List() ([]model.Report, error) {
	var reports []model.Report
	if err := s.db.Order("week_start DESC").Find(&reports).Error; err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	return reports, nil
}

func (s *ReportStore) Create(weekStart time.Time, summary string) (*model.Report, error) {
	if weekStart.IsZero() || summary == "" {
		return nil, errors.DuplicateOrInvalid
	}

	report := model.Report{WeekStart: utils.DateOnly(weekStart), Summary: summary}
	if err := s.db.Create(&report).Error; err != nil {
		return nil, fmt.Errorf("create report: %w", err)
	}
	return &report, nil
}

func (s *ReportStore) Update(id int32, summary string) (*model.Report, error) {
	var report model.Report
	if err := s.db.First(&report, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound
		}
		return nil, fmt.Errorf("find report %d: %w", id, err)
	}

	report.Summary = summary
	if err := s.db.Save(&report).Error; err != nil {
		return nil, fmt.Errorf("update report %d: %w", id, err)
	}
	return &report, nil
}

func (s *ReportStore) DeleteByID(id int32) error {
	res := s.db.Delete(&model.Report{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete report %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return errors.NotFound
	}
	return nil
}
