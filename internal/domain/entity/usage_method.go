package entity

import "time"

// UsageMethod is the usage-instruction lookup referenced by prescription lines.
type UsageMethod struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	IsActive  bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (UsageMethod) TableName() string {
	return "usage_methods"
}
