package repository

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Aggregation row shapes scanned straight from SQL.

type DailyRevenueRow struct {
	Date                 string          `json:"date"`
	PatientCount         int64           `json:"patient_count"`
	TotalConsultationFee decimal.Decimal `json:"total_consultation_fee"`
	TotalMedicineFee     decimal.Decimal `json:"total_medicine_fee"`
	TotalRevenue         decimal.Decimal `json:"total_revenue"`
}

type RevenueSummary struct {
	TotalPatients            int64           `json:"total_patients"`
	TotalConsultationFee     decimal.Decimal `json:"total_consultation_fee"`
	TotalMedicineFee         decimal.Decimal `json:"total_medicine_fee"`
	TotalRevenue             decimal.Decimal `json:"total_revenue"`
	AverageRevenuePerPatient decimal.Decimal `json:"average_revenue_per_patient"`
}

type MedicineUsageRow struct {
	MedicineName                   string          `json:"medicine_name"`
	Unit                           string          `json:"unit"`
	TotalQuantityUsed              int64           `json:"total_quantity_used"`
	PrescriptionCount              int64           `json:"prescription_count"`
	AverageQuantityPerPrescription float64         `json:"average_quantity_per_prescription"`
	TotalValue                     decimal.Decimal `json:"total_value"`
}

type MedicineUsageSummary struct {
	UniqueMedicinesUsed     int64           `json:"unique_medicines_used"`
	TotalMedicinesDispensed int64           `json:"total_medicines_dispensed"`
	TotalMedicineValue      decimal.Decimal `json:"total_medicine_value"`
	TotalPrescriptions      int64           `json:"total_prescriptions"`
}

type PatientStats struct {
	TotalPatients         int64 `json:"total_patients"`
	TotalAppointments     int64 `json:"total_appointments"`
	CompletedAppointments int64 `json:"completed_appointments"`
	WaitingAppointments   int64 `json:"waiting_appointments"`
	ExaminedAppointments  int64 `json:"examined_appointments"`
	MalePatients          int64 `json:"male_patients"`
	FemalePatients        int64 `json:"female_patients"`
}

type AgeGroupRow struct {
	AgeGroup     string `json:"age_group"`
	PatientCount int64  `json:"patient_count"`
}

type MonthlyAppointmentStats struct {
	TotalAppointments int64 `json:"total_appointments"`
	CompletedCount    int64 `json:"completed_count"`
}

type AppointmentStats struct {
	TotalAppointments int64 `json:"total_appointments"`
	WaitingCount      int64 `json:"waiting_count"`
	ExaminedCount     int64 `json:"examined_count"`
	CompletedCount    int64 `json:"completed_count"`
}

type RevenueStats struct {
	InvoicesCount int64           `json:"invoices_count"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
}

type ReportRepository interface {
	DailyRevenue(db *gorm.DB, month, year int) ([]DailyRevenueRow, error)
	MonthlyRevenueSummary(db *gorm.DB, month, year int) (*RevenueSummary, error)
	MedicineUsage(db *gorm.DB, month, year int) ([]MedicineUsageRow, error)
	MedicineUsageSummary(db *gorm.DB, month, year int) (*MedicineUsageSummary, error)
	PatientStats(db *gorm.DB, startDate, endDate string) (*PatientStats, error)
	AgeGroups(db *gorm.DB, startDate, endDate string) ([]AgeGroupRow, error)
	AppointmentStats(db *gorm.DB, date string) (*AppointmentStats, error)
	AppointmentStatsForRange(db *gorm.DB, startDate, endDate string) (*MonthlyAppointmentStats, error)
	RevenueForDate(db *gorm.DB, date string) (*RevenueStats, error)
	RevenueForMonth(db *gorm.DB, month, year int) (*RevenueStats, error)
}
