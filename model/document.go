package model

import "time"

type Document struct {
	ID          int32     `gorm:"primaryKey;column:id"`
	FileName    string    `gorm:"column:file_name;type:varchar(255);not null"`
	StorageKey  string    `gorm:"column:storage_key;type:varchar(100);not null;uniqueIndex"`
	ContentType string    `gorm:"column:content_type;type:varchar(100)"`
	Size        int64     `gorm:"column:size;not null"`
	UploadedAt  time.Time `gorm:"column:uploaded_at;type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create"`
}

func (Document) TableName() string {
	return "documents"
}
