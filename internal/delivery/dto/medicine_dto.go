package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateMedicineRequest struct {
	Name  string          `json:"name" validate:"required,max=100"`
	Unit  string          `json:"unit" validate:"required,max=20"`
	Price decimal.Decimal `json:"price" validate:"required"`
}

type UpdateMedicineRequest struct {
	Name     *string          `json:"name" validate:"omitempty,min=1,max=100"`
	Unit     *string          `json:"unit" validate:"omitempty,min=1,max=20"`
	Price    *decimal.Decimal `json:"price"`
	IsActive *bool            `json:"is_active"`
}

// Response DTOs

type MedicineResponse struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Unit      string          `json:"unit"`
	Price     decimal.Decimal `json:"price"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
