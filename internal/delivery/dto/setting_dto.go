package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

type UpdateSettingRequest struct {
	Value string `json:"value" validate:"required"`
}

type UpdateSettingsRequest struct {
	MaxPatientsPerDay *int             `json:"max_patients_per_day" validate:"omitempty,gte=1,lte=1000"`
	ConsultationFee   *decimal.Decimal `json:"consultation_fee"`
}

// Response DTOs

type SettingResponse struct {
	ID           int       `json:"id"`
	SettingKey   string    `json:"setting_key"`
	SettingValue string    `json:"setting_value"`
	Description  string    `json:"description,omitempty"`
	UpdatedAt    time.Time `json:"updated_at"`
}
