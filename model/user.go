package model

import "time"

type User struct {
	ID           int32     `gorm:"primaryKey;column:id"`
	Username     string    `gorm:"column:username;type:varchar(60);not null;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(100);not null"`
	CreatedAt    time.Time `gorm:"column:created_at;type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create"`
}

func (User) TableName() string {
	return "users"
}
