package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

type PrescriptionLineRequest struct {
	MedicineID    int `json:"medicine_id" validate:"required,min=1"`
	Quantity      int `json:"quantity" validate:"required,min=1"`
	UsageMethodID int `json:"usage_method_id" validate:"required,min=1"`
}

type CreateMedicalRecordRequest struct {
	PatientID     int                       `json:"patient_id" validate:"required,min=1"`
	Symptoms      string                    `json:"symptoms" validate:"required"`
	DiseaseID     *int                      `json:"disease_id" validate:"omitempty,min=1"`
	Diagnosis     string                    `json:"diagnosis"`
	Prescriptions []PrescriptionLineRequest `json:"prescriptions" validate:"omitempty,dive"`
}

// Response DTOs

type PrescriptionLineResponse struct {
	ID              int             `json:"id"`
	MedicineID      int             `json:"medicine_id"`
	MedicineName    string          `json:"medicine_name"`
	Unit            string          `json:"unit"`
	Price           decimal.Decimal `json:"price"`
	Quantity        int             `json:"quantity"`
	UsageMethodID   int             `json:"usage_method_id"`
	UsageMethodName string          `json:"usage_method_name"`
	Total           decimal.Decimal `json:"total"`
}

type MedicalRecordResponse struct {
	ID            int                        `json:"id"`
	PatientID     int                        `json:"patient_id"`
	PatientName   string                     `json:"patient_name,omitempty"`
	PhoneNumber   string                     `json:"phone_number,omitempty"`
	Symptoms      string                     `json:"symptoms"`
	DiseaseID     *int                       `json:"disease_id,omitempty"`
	DiseaseName   string                     `json:"disease_name,omitempty"`
	Diagnosis     string                     `json:"diagnosis,omitempty"`
	Status        string                     `json:"status"`
	DoctorID      *int                       `json:"doctor_id,omitempty"`
	DoctorName    string                     `json:"doctor_name,omitempty"`
	Prescriptions []PrescriptionLineResponse `json:"prescriptions"`
	CreatedAt     time.Time                  `json:"created_at"`
}
