package store

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Shin-da/ojt-tracking-system-sub000/model"
	"github.com/Shin-da/ojt-tracking-system-sub000/pkg/errors"
	"github.com/Shin-da/ojt-tracking-system-sub000/tracker"
	"github.com/Shin-da/ojt-tracking-system-sub000/utils"
)

// TimeLogStore persists raw time logs. Concurrent writes for one date are not
// coordinated; duplicate submissions land as separate rows and aggregate
// additively.
type TimeLogStore struct {
	db *gorm.DB
}

func NewTimeLogStore(db *gorm.DB) *TimeLogStore {
	return &TimeLogStore{db: db}
}

type CreateTimeLogInput struct {
	Date              time.Time
	TimeIn            string
	TimeOut           string
	Notes             string
	Location          string
	IncludeLunchBreak bool
}

// Create computes hours worked and persists the log. Validation failures are
// rejected before anything is written.
func (s *TimeLogStore) Create(input CreateTimeLogInput) (*model.TimeLog, error) {
	if input.Date.IsZero() || input.TimeIn == "" || input.TimeOut == "" {
		return nil, errors.DuplicateOrInvalid
	}

	hours, err := tracker.ComputeHoursWorked(input.TimeIn, input.TimeOut, input.IncludeLunchBreak)
	if err != nil {
		return nil, err
	}

	location := input.Location
	if location == "" {
		location = model.LocationOnSite
	}

	log := model.TimeLog{
		Date:        utils.DateOnly(input.Date),
		TimeIn:      input.TimeIn,
		TimeOut:     input.TimeOut,
		HoursWorked: hours,
		LunchBreak:  input.IncludeLunchBreak,
		Notes:       input.Notes,
		Location:    location,
	}

	if err := s.db.Create(&log).Error; err != nil {
		return nil, fmt.Errorf("create time log: %w", err)
	}

	return &log, nil
}

// List returns logs ordered by date then id, optionally bounded to an
// inclusive [start, end] range. The ordering keeps aggregation deterministic.
func (s *TimeLogStore) List(start, end *time.Time) ([]model.TimeLog, error) {
	query := s.db.Model(&model.TimeLog{})
	if start != nil {
		query = query.Where("date >= ?", utils.FormatDate(*start))
	}
	if end != nil {
		query = query.Where("date <= ?", utils.FormatDate(*end))
	}

	var logs []model.TimeLog
	if err := query.Order("date ASC, id ASC").Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("list time logs: %w", err)
	}

	return logs, nil
}

type UpdateTimeLogInput struct {
	Date              *time.Time
	TimeIn            *string
	TimeOut           *string
	Notes             *string
	Location          *string
	IncludeLunchBreak *bool
}

// Update applies a partial update and recomputes hours whenever the times or
// the lunch flag change. The id stays stable across edits, unlike the old
// delete-then-recreate flow.
func (s *TimeLogStore) Update(id int32, input UpdateTimeLogInput) (*model.TimeLog, error) {
	var log model.TimeLog
	if err := s.db.First(&log, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound
		}
		return nil, fmt.Errorf("find time log %d: %w", id, err)
	}

	if input.Date != nil {
		log.Date = utils.DateOnly(*input.Date)
	}
	if input.TimeIn != nil {
		log.TimeIn = *input.TimeIn
	}
	if input.TimeOut != nil {
		log.TimeOut = *input.TimeOut
	}
	if input.Notes != nil {
		log.Notes = *input.Notes
	}
	if input.Location != nil {
		log.Location = *input.Location
	}
	if input.IncludeLunchBreak != nil {
		log.LunchBreak = *input.IncludeLunchBreak
	}

	hours, err := tracker.ComputeHoursWorked(log.TimeIn, log.TimeOut, log.LunchBreak)
	if err != nil {
		return nil, err
	}
	log.HoursWorked = hours

	if err := s.db.Save(&log).Error; err != nil {
		return nil, fmt.Errorf("update time log %d: %w", id, err)
	}

	return &log, nil
}

// DeleteByID removes one log; NotFound when no row matched.
func (s *TimeLogStore) DeleteByID(id int32) error {
	res := s.db.Delete(&model.TimeLog{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete time log %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return errors.NotFound
	}
	return nil
}
