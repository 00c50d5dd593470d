package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Medicine is reference data consumed by prescriptions. It is soft-deleted
// (IsActive flipped) so historical prescription rows keep resolving.
type Medicine struct {
	ID        int             `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string          `gorm:"type:varchar(100);not null;index" json:"name"`
	Unit      string          `gorm:"type:varchar(20);not null" json:"unit"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	IsActive  bool            `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Medicine) TableName() string {
	return "medicines"
}
