package model

import "time"

type Report struct {
	ID        int32     `gorm:"primaryKey;column:id"`
	WeekStart time.Time `gorm:"column:week_start;type:date;not null"`
	Summary   string    `gorm:"column:summary;type:text;not null"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP"`
}

func (Report) TableName() string {
	return "reports"
}
