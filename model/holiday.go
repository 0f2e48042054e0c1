package model

import "time"

type Holiday struct {
	ID   int32     `gorm:"primaryKey;column:id"`
	Date time.Time `gorm:"column:date;type:date;not null;uniqueIndex"`
	Name string    `gorm:"column:name;type:varchar(120);not null"`
}

func (Holiday) TableName() string {
	return "holidays"
}
