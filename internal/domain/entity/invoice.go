package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the payment status of an invoice.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// Invoice is the billing document for one examined visit. The consultation
// fee is snapshotted from settings and the medicine fee from prescription
// lines at creation time; at most one invoice exists per appointment.
type Invoice struct {
	ID                 int             `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID          int             `gorm:"not null;index" json:"patient_id"`
	MedicalRecordID    int             `gorm:"not null;index" json:"medical_record_id"`
	DailyAppointmentID int             `gorm:"not null;uniqueIndex" json:"daily_appointment_id"`
	ConsultationFee    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"consultation_fee"`
	MedicineFee        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"medicine_fee"`
	TotalAmount        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	PaymentStatus      PaymentStatus   `gorm:"type:varchar(20);not null;default:'pending';index" json:"payment_status"`
	CreatedAt          time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient          Patient          `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	MedicalRecord    MedicalRecord    `gorm:"foreignKey:MedicalRecordID" json:"medical_record,omitempty"`
	DailyAppointment DailyAppointment `gorm:"foreignKey:DailyAppointmentID" json:"daily_appointment,omitempty"`
}

func (Invoice) TableName() string {
	return "invoices"
}

// IsPaid checks if the invoice has been settled.
func (i *Invoice) IsPaid() bool {
	return i.PaymentStatus == PaymentStatusPaid
}
