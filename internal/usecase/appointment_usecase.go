package usecase

import (
	"context"
	"errors"
	"time"

	"clinic-management-api/internal/converter"
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/domain/repository"
	"clinic-management-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrAlreadyQueued       = errors.New("patient already has an appointment for this date")
	ErrDailyLimitReached   = errors.New("daily patient limit reached")
	ErrInvalidStatus       = errors.New("invalid appointment status")
	ErrNotWaiting          = errors.New("appointment is no longer waiting")
)

type AppointmentUsecase interface {
	Enqueue(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetByID(ctx context.Context, id int) (*dto.AppointmentResponse, error)
	ListForDate(ctx context.Context, date string) ([]dto.AppointmentResponse, error)
	SetStatus(ctx context.Context, id int, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error)
	Cancel(ctx context.Context, id int) error
	Stats(ctx context.Context, date string) (*dto.AppointmentStatsResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	settingRepo     repository.SettingRepository
	reportRepo      repository.ReportRepository
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	settingRepo repository.SettingRepository,
	reportRepo repository.ReportRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		settingRepo:     settingRepo,
		reportRepo:      reportRepo,
		auditService:    auditService,
	}
}

// Enqueue registers a patient into a day's visit queue.
//
// Flow:
// 1. Validate patient exists
// 2. Reject a second entry for the same patient and date
// 3. Enforce the daily capacity setting
// 4. Insert the waiting entry
func (u *appointmentUsecase) Enqueue(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	date := req.AppointmentDate
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	existing, err := u.appointmentRepo.FindByPatientAndDate(tx, req.PatientID, date)
	if err != nil {
		u.log.Warnf("Failed to check existing appointment: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyQueued
	}

	limit := maxPatientsPerDay(tx, u.settingRepo, u.log)
	count, err := u.appointmentRepo.CountForDate(tx, date)
	if err != nil {
		u.log.Warnf("Failed to count appointments for %s: %+v", date, err)
		return nil, err
	}
	if count >= int64(limit) {
		return nil, ErrDailyLimitReached
	}

	appointment := &entity.DailyAppointment{
		PatientID:       req.PatientID,
		AppointmentDate: date,
		Status:          entity.AppointmentStatusWaiting,
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		if isDuplicateKeyError(err, "patient_date") {
			return nil, ErrAlreadyQueued
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	appointment.Patient = *patient
	u.log.Infof("Appointment created: id=%d, patient=%d, date=%s", appointment.ID, req.PatientID, date)
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetByID(ctx context.Context, id int) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) ListForDate(ctx context.Context, date string) ([]dto.AppointmentResponse, error) {
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	appointments, err := u.appointmentRepo.ListForDate(u.db.WithContext(ctx), date)
	if err != nil {
		u.log.Warnf("Failed to list appointments for %s: %+v", date, err)
		return nil, err
	}

	return converter.AppointmentsToResponses(appointments), nil
}

// SetStatus is the administrative override for queue state. Any known status
// may be set regardless of the entry's current one; the change is audited.
func (u *appointmentUsecase) SetStatus(ctx context.Context, id int, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	if !entity.ValidAppointmentStatus(req.Status) {
		return nil, ErrInvalidStatus
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	oldStatus := appointment.Status
	if err := u.appointmentRepo.UpdateStatus(tx, id, entity.AppointmentStatus(req.Status)); err != nil {
		u.log.Warnf("Failed to update appointment %d status: %+v", id, err)
		return nil, err
	}

	actorID := actorIDFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, actorID, "appointment.status_override", "daily_appointment", id, string(oldStatus), req.Status); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	appointment.Status = entity.AppointmentStatus(req.Status)
	u.log.Infof("Appointment status overridden: id=%d, %s -> %s", id, oldStatus, req.Status)
	return converter.AppointmentToResponse(appointment), nil
}

// Cancel removes a queue entry. Only waiting entries can be removed; an
// examined or completed visit already has clinical or billing records.
func (u *appointmentUsecase) Cancel(ctx context.Context, id int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}
	if !appointment.IsWaiting() {
		return ErrNotWaiting
	}

	if err := u.appointmentRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete appointment %d: %+v", id, err)
		return err
	}

	actorID := actorIDFromContext(ctx)
	if err := u.auditService.LogDelete(ctx, tx, actorID, "appointment.cancel", "daily_appointment", id, string(appointment.Status)); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.log.Infof("Appointment cancelled: id=%d, patient=%d", id, appointment.PatientID)
	return nil
}

func (u *appointmentUsecase) Stats(ctx context.Context, date string) (*dto.AppointmentStatsResponse, error) {
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	db := u.db.WithContext(ctx)

	today, err := u.reportRepo.AppointmentStats(db, date)
	if err != nil {
		u.log.Warnf("Failed to load appointment stats for %s: %+v", date, err)
		return nil, err
	}

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, err
	}
	monthStart := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
	monthEnd := time.Date(day.Year(), day.Month()+1, 0, 0, 0, 0, 0, time.UTC).Format("2006-01-02")

	monthly, err := u.reportRepo.AppointmentStatsForRange(db, monthStart, monthEnd)
	if err != nil {
		u.log.Warnf("Failed to load monthly appointment stats: %+v", err)
		return nil, err
	}

	return &dto.AppointmentStatsResponse{
		Today: dto.AppointmentStatusCounts{
			TotalAppointments: today.TotalAppointments,
			WaitingCount:      today.WaitingCount,
			ExaminedCount:     today.ExaminedCount,
			CompletedCount:    today.CompletedCount,
		},
		Monthly: dto.MonthlyAppointmentCounts{
			TotalAppointments: monthly.TotalAppointments,
			CompletedCount:    monthly.CompletedCount,
		},
	}, nil
}
