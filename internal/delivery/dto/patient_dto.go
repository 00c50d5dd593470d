package dto

import "time"

// Request DTOs

type CreatePatientRequest struct {
	FullName    string `json:"full_name" validate:"required,max=100"`
	Gender      string `json:"gender" validate:"required,oneof=male female"`
	BirthYear   int    `json:"birth_year" validate:"required,gte=1900,lte=2100"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number" validate:"required,min=10,max=11"`
}

type UpdatePatientRequest struct {
	FullName    *string `json:"full_name" validate:"omitempty,min=1,max=100"`
	Gender      *string `json:"gender" validate:"omitempty,oneof=male female"`
	BirthYear   *int    `json:"birth_year" validate:"omitempty,gte=1900,lte=2100"`
	Address     *string `json:"address"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,min=10,max=11"`
}

// Response DTOs

type PatientResponse struct {
	ID          int       `json:"id"`
	FullName    string    `json:"full_name"`
	Gender      string    `json:"gender"`
	BirthYear   int       `json:"birth_year"`
	Address     string    `json:"address,omitempty"`
	PhoneNumber string    `json:"phone_number"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
