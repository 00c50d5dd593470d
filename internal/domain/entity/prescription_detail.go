package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PrescriptionDetail is one medicine line within a medical record.
type PrescriptionDetail struct {
	ID              int       `gorm:"primaryKey;autoIncrement" json:"id"`
	MedicalRecordID int       `gorm:"not null;index" json:"medical_record_id"`
	MedicineID      int       `gorm:"not null;index" json:"medicine_id"`
	Quantity        int       `gorm:"not null" json:"quantity"`
	UsageMethodID   int       `gorm:"not null" json:"usage_method_id"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Medicine    Medicine    `gorm:"foreignKey:MedicineID" json:"medicine,omitempty"`
	UsageMethod UsageMethod `gorm:"foreignKey:UsageMethodID" json:"usage_method,omitempty"`
}

func (PrescriptionDetail) TableName() string {
	return "prescription_details"
}

// LineTotal is quantity x current medicine price. Computed, never stored.
func (pd *PrescriptionDetail) LineTotal() decimal.Decimal {
	return pd.Medicine.Price.Mul(decimal.NewFromInt(int64(pd.Quantity)))
}
