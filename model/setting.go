package model

// DefaultRequiredHours is used when no required_hours row exists.
// Earlier revisions of the system shipped 400 and 600; 500 is the
// canonical default now.
const DefaultRequiredHours = 500.0

const SettingRequiredHours = "required_hours"

type Setting struct {
	Name  string `gorm:"primaryKey;column:name;type:varchar(64)"`
	Value string `gorm:"column:value;type:varchar(255);not null"`
}

func (Setting) TableName() string {
	return "settings"
}
