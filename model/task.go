package model

import "time"

const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in_progress"
	TaskStatusDone       = "done"
)

type Task struct {
	ID          int32      `gorm:"primaryKey;column:id"`
	Title       string     `gorm:"column:title;type:varchar(200);not null"`
	Description string     `gorm:"column:description;type:text"`
	Status      string     `gorm:"column:status;type:varchar(20);not null;default:pending"`
	DueDate     *time.Time `gorm:"column:due_date;type:date"`
	CreatedAt   time.Time  `gorm:"column:created_at;type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP"`
}

func (Task) TableName() string {
	return "tasks"
}
