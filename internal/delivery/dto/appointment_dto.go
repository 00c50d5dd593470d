package dto

import "time"

// Request DTOs

type CreateAppointmentRequest struct {
	PatientID       int    `json:"patient_id" validate:"required,min=1"`
	AppointmentDate string `json:"appointment_date" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=waiting examined completed"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              int    `json:"id"`
	PatientID       int    `json:"patient_id"`
	AppointmentDate string `json:"appointment_date"`
	Status          string `json:"status"`
	MedicalRecordID *int   `json:"medical_record_id,omitempty"`

	// Patient identity for queue display
	FullName    string `json:"full_name,omitempty"`
	Gender      string `json:"gender,omitempty"`
	BirthYear   int    `json:"birth_year,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`

	// Present once the entry has been examined
	Symptoms    string `json:"symptoms,omitempty"`
	Diagnosis   string `json:"diagnosis,omitempty"`
	DiseaseName string `json:"disease_name,omitempty"`
	DoctorName  string `json:"doctor_name,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AppointmentStatusCounts struct {
	TotalAppointments int64 `json:"total_appointments"`
	WaitingCount      int64 `json:"waiting_count"`
	ExaminedCount     int64 `json:"examined_count"`
	CompletedCount    int64 `json:"completed_count"`
}

type MonthlyAppointmentCounts struct {
	TotalAppointments int64 `json:"total_appointments"`
	CompletedCount    int64 `json:"completed_count"`
}

type AppointmentStatsResponse struct {
	Today   AppointmentStatusCounts  `json:"today"`
	Monthly MonthlyAppointmentCounts `json:"monthly"`
}
