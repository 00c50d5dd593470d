package usecase

import (
	"context"
	"errors"
	"time"

	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrInvalidPeriod = errors.New("invalid report period")

type ReportUsecase interface {
	Revenue(ctx context.Context, month, year int) (*dto.RevenueReportResponse, error)
	MedicineUsage(ctx context.Context, month, year int) (*dto.MedicineUsageReportResponse, error)
	PatientStats(ctx context.Context, startDate, endDate string) (*dto.PatientStatsReportResponse, error)
	Dashboard(ctx context.Context) (*dto.DashboardResponse, error)
}

type reportUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	reportRepo repository.ReportRepository
}

func NewReportUsecase(db *gorm.DB, log *logrus.Logger, reportRepo repository.ReportRepository) ReportUsecase {
	return &reportUsecase{
		db:         db,
		log:        log,
		reportRepo: reportRepo,
	}
}

func (u *reportUsecase) Revenue(ctx context.Context, month, year int) (*dto.RevenueReportResponse, error) {
	if month < 1 || month > 12 || year < 2000 {
		return nil, ErrInvalidPeriod
	}

	db := u.db.WithContext(ctx)

	daily, err := u.reportRepo.DailyRevenue(db, month, year)
	if err != nil {
		u.log.Warnf("Failed to load daily revenue: %+v", err)
		return nil, err
	}

	summary, err := u.reportRepo.MonthlyRevenueSummary(db, month, year)
	if err != nil {
		u.log.Warnf("Failed to load revenue summary: %+v", err)
		return nil, err
	}

	return &dto.RevenueReportResponse{
		Period:  dto.ReportPeriod{Month: month, Year: year},
		Daily:   daily,
		Summary: summary,
	}, nil
}

func (u *reportUsecase) MedicineUsage(ctx context.Context, month, year int) (*dto.MedicineUsageReportResponse, error) {
	if month < 1 || month > 12 || year < 2000 {
		return nil, ErrInvalidPeriod
	}

	db := u.db.WithContext(ctx)

	medicines, err := u.reportRepo.MedicineUsage(db, month, year)
	if err != nil {
		u.log.Warnf("Failed to load medicine usage: %+v", err)
		return nil, err
	}

	summary, err := u.reportRepo.MedicineUsageSummary(db, month, year)
	if err != nil {
		u.log.Warnf("Failed to load medicine usage summary: %+v", err)
		return nil, err
	}

	return &dto.MedicineUsageReportResponse{
		Period:    dto.ReportPeriod{Month: month, Year: year},
		Medicines: medicines,
		Summary:   summary,
	}, nil
}

func (u *reportUsecase) PatientStats(ctx context.Context, startDate, endDate string) (*dto.PatientStatsReportResponse, error) {
	// Either both bounds or neither
	if (startDate == "") != (endDate == "") {
		return nil, ErrInvalidPeriod
	}

	db := u.db.WithContext(ctx)

	stats, err := u.reportRepo.PatientStats(db, startDate, endDate)
	if err != nil {
		u.log.Warnf("Failed to load patient stats: %+v", err)
		return nil, err
	}

	ageGroups, err := u.reportRepo.AgeGroups(db, startDate, endDate)
	if err != nil {
		u.log.Warnf("Failed to load age groups: %+v", err)
		return nil, err
	}

	return &dto.PatientStatsReportResponse{
		StartDate: startDate,
		EndDate:   endDate,
		Stats:     stats,
		AgeGroups: ageGroups,
	}, nil
}

func (u *reportUsecase) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	db := u.db.WithContext(ctx)
	now := time.Now()
	today := now.Format("2006-01-02")

	appointments, err := u.reportRepo.AppointmentStats(db, today)
	if err != nil {
		u.log.Warnf("Failed to load appointment stats: %+v", err)
		return nil, err
	}

	todayRevenue, err := u.reportRepo.RevenueForDate(db, today)
	if err != nil {
		u.log.Warnf("Failed to load today's revenue: %+v", err)
		return nil, err
	}

	monthRevenue, err := u.reportRepo.RevenueForMonth(db, int(now.Month()), now.Year())
	if err != nil {
		u.log.Warnf("Failed to load month revenue: %+v", err)
		return nil, err
	}

	return &dto.DashboardResponse{
		Date:                today,
		TotalAppointments:   appointments.TotalAppointments,
		WaitingCount:        appointments.WaitingCount,
		ExaminedCount:       appointments.ExaminedCount,
		CompletedCount:      appointments.CompletedCount,
		TodayInvoices:       todayRevenue.InvoicesCount,
		TodayRevenue:        todayRevenue.TotalRevenue,
		MonthToDateRevenue:  monthRevenue.TotalRevenue,
		MonthToDateInvoices: monthRevenue.InvoicesCount,
	}, nil
}
