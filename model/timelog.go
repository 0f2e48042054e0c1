package model

import "time"

const (
	LocationOnSite       = "on-site"
	LocationWorkFromHome = "work-from-home"
)

type TimeLog struct {
	ID          int32     `gorm:"primaryKey;column:id"`
	Date        time.Time `gorm:"column:date;type:date;not null;index"`
	TimeIn      string    `gorm:"column:time_in;type:varchar(5);not null"`
	TimeOut     string    `gorm:"column:time_out;type:varchar(5);not null"`
	HoursWorked float64   `gorm:"column:hours_worked;type:decimal(5,2);not null"`
	LunchBreak  bool      `gorm:"column:lunch_break;not null"`
	Notes       string    `gorm:"column:notes;type:text"`
	Location    string    `gorm:"column:location;type:varchar(20);default:on-site"`
	CreatedAt   time.Time `gorm:"column:created_at;type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create"`
}

func (TimeLog) TableName() string {
	return "time_logs"
}
