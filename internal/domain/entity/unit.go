package entity

import "time"

// Unit is the dispensing-unit lookup (tablet, bottle, tube, ...).
type Unit struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(20);not null" json:"name"`
	IsActive  bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Unit) TableName() string {
	return "units"
}
