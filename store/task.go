package store

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Shin-da/ojt-tracking-system-sub000/model"
	"github.com/Shin-da/ojt-tracking-system-sub000/pkg/errors"
)

type TaskStore struct {
	db *gorm.DB
}

func NewTaskStore(db *gorm.DB) *TaskStore {
	return &TaskStore{db: db}
}

func (s *TaskStore) List() ([]model.Task, error) {
	var tasks []model.Task
	if err := s.db.Order("created_at DESC, id DESC").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (s *TaskStore) Create(title, description, status string, dueDate *time.Time) (*model.Task, error) {
	if title == "" {
		return nil, errors.DuplicateOrInvalid
	}
	if status == "" {
		status = model.TaskStatusPending
	}

	task := model.Task{
		Title:       title,
		Description: description,
		Status:      status,
		DueDate:     dueDate,
	}
	if err := s.db.Create(&task).Error; err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return &task, nil
}

type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *string
	DueDate     *time.Time
}

func (s *TaskStore) Update(id int32, input UpdateTaskInput) (*model.Task, error) {
	var task model.Task
	if err := s.db.First(&task, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound
		}
		return nil, fmt.Errorf("find task %d: %w", id, err)
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Status != nil {
		task.Status = *input.Status
	}
	if input.DueDate != nil {
		task.DueDate = input.DueDate
	}

	if err := s.db.Save(&task).Error; err != nil {
		return nil, fmt.Errorf("update task %d: %w", id, err)
	}
	return &task, nil
}

func (s *TaskStore) DeleteByID(id int32) error {
	res := s.db.Delete(&model.Task{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete task %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return errors.NotFound
	}
	return nil
}
