package dto

import (
	domainRepo "clinic-management-api/internal/domain/repository"

	"github.com/shopspring/decimal"
)

// Report responses wrap the aggregation rows with their query period.

type ReportPeriod struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

type RevenueReportResponse struct {
	Period  ReportPeriod                 `json:"period"`
	Daily   []domainRepo.DailyRevenueRow `json:"daily"`
	Summary *domainRepo.RevenueSummary   `json:"summary"`
}

type MedicineUsageReportResponse struct {
	Period    ReportPeriod                     `json:"period"`
	Medicines []domainRepo.MedicineUsageRow    `json:"medicines"`
	Summary   *domainRepo.MedicineUsageSummary `json:"summary"`
}

type PatientStatsReportResponse struct {
	StartDate string                   `json:"start_date,omitempty"`
	EndDate   string                   `json:"end_date,omitempty"`
	Stats     *domainRepo.PatientStats `json:"stats"`
	AgeGroups []domainRepo.AgeGroupRow `json:"age_groups"`
}

type DashboardResponse struct {
	Date                string          `json:"date"`
	TotalAppointments   int64           `json:"total_appointments"`
	WaitingCount        int64           `json:"waiting_count"`
	ExaminedCount       int64           `json:"examined_count"`
	CompletedCount      int64           `json:"completed_count"`
	TodayInvoices       int64           `json:"today_invoices"`
	TodayRevenue        decimal.Decimal `json:"today_revenue"`
	MonthToDateRevenue  decimal.Decimal `json:"month_to_date_revenue"`
	MonthToDateInvoices int64           `json:"month_to_date_invoices"`
}
