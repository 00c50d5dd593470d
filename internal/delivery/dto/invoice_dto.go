package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateInvoiceRequest struct {
	PatientID          int `json:"patient_id" validate:"required,min=1"`
	MedicalRecordID    int `json:"medical_record_id" validate:"required,min=1"`
	DailyAppointmentID int `json:"daily_appointment_id" validate:"required,min=1"`
}

// Response DTOs

type InvoiceResponse struct {
	ID                 int             `json:"id"`
	PatientID          int             `json:"patient_id"`
	PatientName        string          `json:"patient_name,omitempty"`
	PhoneNumber        string          `json:"phone_number,omitempty"`
	MedicalRecordID    int             `json:"medical_record_id"`
	DailyAppointmentID int             `json:"daily_appointment_id"`
	ConsultationFee    decimal.Decimal `json:"consultation_fee"`
	MedicineFee        decimal.Decimal `json:"medicine_fee"`
	TotalAmount        decimal.Decimal `json:"total_amount"`
	PaymentStatus      string          `json:"payment_status"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

type InvoiceDetailResponse struct {
	InvoiceResponse
	Diagnosis     string                     `json:"diagnosis,omitempty"`
	DiseaseName   string                     `json:"disease_name,omitempty"`
	Prescriptions []PrescriptionLineResponse `json:"prescriptions"`
}
