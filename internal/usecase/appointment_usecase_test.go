package usecase

import (
	"context"
	"testing"
	"time"

	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAppointmentUsecase(db *gorm.DB) AppointmentUsecase {
	log := newTestLogger()
	return NewAppointmentUsecase(
		db,
		log,
		repository.NewAppointmentRepository(),
		repository.NewPatientRepository(),
		repository.NewSettingRepository(),
		repository.NewReportRepository(),
		newTestAuditService(log),
	)
}

func TestEnqueueAppointment(t *testing.T) {
	db := newTestDB(t)
	uc := newAppointmentUsecase(db)
	ctx := context.Background()

	patient := createTestPatient(t, db, "Jane Roe", "0811111111")

	resp, err := uc.Enqueue(ctx, &dto.CreateAppointmentRequest{PatientID: patient.ID})
	require.NoError(t, err)

	assert.Equal(t, patient.ID, resp.PatientID)
	assert.Equal(t, string(entity.AppointmentStatusWaiting), resp.Status)
	assert.Equal(t, time.Now().Format("2006-01-02"), resp.AppointmentDate)
	assert.Equal(t, "Jane Roe", resp.FullName)
}

func TestEnqueueAppointmentPatientNotFound(t *testing.T) {
	db := newTestDB(t)
	uc := newAppointmentUsecase(db)

	_, err := uc.Enqueue(context.Background(), &dto.CreateAppointmentRequest{PatientID: 999})
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestEnqueueAppointmentRejectsDuplicateDate(t *testing.T) {
	db := newTestDB(t)
	uc := newAppointmentUsecase(db)
	ctx := context.Background()

	patient := createTestPatient(t, db, "Jane Roe", "0811111111")

	_, err := uc.Enqueue(ctx, &dto.CreateAppointmentRequest{PatientID: patient.ID})
	require.NoError(t, err)

	_, err = uc.Enqueue(ctx, &dto.CreateAppointmentRequest{PatientID: patient.ID})
	assert.ErrorIs(t, err, ErrAlreadyQueued)

	// A different day is a fresh queue
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	_, err = uc.Enqueue(ctx, &dto.CreateAppointmentRequest{PatientID: patient.ID, AppointmentDate: tomorrow})
	assert.NoError(t, err)
}

func TestEnqueueAppointmentEnforcesDailyLimit(t *testing.T) {
	db := newTestDB(t)
	uc := newAppointmentUsecase(db)
	ctx := context.Background()

	setSetting(t, db, entity.SettingMaxPatientsPerDay, "2")

	first := createTestPatient(t, db, "First", "0811111111")
	second := createTestPatient(t, db, "Second", "0822222222")
	third := createTestPatient(t, db, "Third", "0833333333")

	_, err := uc.Enqueue(ctx, &dto.CreateAppointmentRequest{PatientID: first.ID})
	require.NoError(t, err)
	_, err = uc.Enqueue(ctx, &dto.CreateAppointmentRequest{PatientID: second.ID})
	require.NoError(t, err)

	_, err = uc.Enqueue(ctx, &dto.CreateAppointmentRequest{PatientID: third.ID})
	assert.ErrorIs(t, err, ErrDailyLimitReached)
}

func TestListForDateOrdersByArrival(t *testing.T) {
	db := newTestDB(t)
	uc := newAppointmentUsecase(db)
	ctx := context.Background()

	first := createTestPatient(t, db, "First", "0811111111")
	second := createTestPatient(t, db, "Second", "0822222222")

	_, err := uc.Enqueue(ctx, &dto.CreateAppointmentRequest{PatientID: first.ID})
	require.NoError(t, err)
	_, err = uc.Enqueue(ctx, &dto.CreateAppointmentRequest{PatientID: second.ID})
	require.NoError(t, err)

	queue, err := uc.ListForDate(ctx, "")
	require.NoError(t, err)
	require.Len(t, queue, 2)
	assert.Equal(t, first.ID, queue[0].PatientID)
	assert.Equal(t, second.ID, queue[1].PatientID)
}

func TestSetStatusOverrideIsAudited(t *testing.T) {
	db := newTestDB(t)
	uc := newAppointmentUsecase(db)
	ctx := context.Background()

	patient := createTestPatient(t, db, "Jane Roe", "0811111111")
	created, err := uc.Enqueue(ctx, &dto.CreateAppointmentRequest{PatientID: patient.ID})
	require.NoError(t, err)

	// Override jumps straight to completed, no transition guard
	resp, err := uc.SetStatus(ctx, created.ID, &dto.UpdateAppointmentStatusRequest{Status: "completed"})
	require.NoError(t, err)
	assert.Equal(t, "completed", resp.Status)

	var logs []entity.AuditLog
	require.NoError(t, db.Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.Equal(t, "appointment.status_override", logs[0].Action)
	assert.Equal(t, "waiting", logs[0].Metadata["old_value"])
	assert.Equal(t, "completed", logs[0].Metadata["new_value"])
}

func TestSetStatusRejectsUnknownStatus(t *testing.T) {
	db := newTestDB(t)
	uc := newAppointmentUsecase(db)
	ctx := context.Background()

	patient := createTestPatient(t, db, "Jane Roe", "0811111111")
	created, err := uc.Enqueue(ctx, &dto.CreateAppointmentRequest{PatientID: patient.ID})
	require.NoError(t, err)

	_, err = uc.SetStatus(ctx, created.ID, &dto.UpdateAppointmentStatusRequest{Status: "archived"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestCancelOnlyWaitingAppointments(t *testing.T) {
	db := newTestDB(t)
	uc := newAppointmentUsecase(db)
	ctx := context.Background()

	patient := createTestPatient(t, db, "Jane Roe", "0811111111")
	created, err := uc.Enqueue(ctx, &dto.CreateAppointmentRequest{PatientID: patient.ID})
	require.NoError(t, err)

	require.NoError(t, uc.Cancel(ctx, created.ID))

	_, err = uc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestCancelRejectsExaminedAppointment(t *testing.T) {
	db := newTestDB(t)
	uc := newAppointmentUsecase(db)
	ctx := context.Background()

	patient := createTestPatient(t, db, "Jane Roe", "0811111111")
	created, err := uc.Enqueue(ctx, &dto.CreateAppointmentRequest{PatientID: patient.ID})
	require.NoError(t, err)

	_, err = uc.SetStatus(ctx, created.ID, &dto.UpdateAppointmentStatusRequest{Status: "examined"})
	require.NoError(t, err)

	err = uc.Cancel(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotWaiting)
}

func TestAppointmentStats(t *testing.T) {
	db := newTestDB(t)
	uc := newAppointmentUsecase(db)
	ctx := context.Background()

	first := createTestPatient(t, db, "First", "0811111111")
	second := createTestPatient(t, db, "Second", "0822222222")

	a, err := uc.Enqueue(ctx, &dto.CreateAppointmentRequest{PatientID: first.ID})
	require.NoError(t, err)
	_, err = uc.Enqueue(ctx, &dto.CreateAppointmentRequest{PatientID: second.ID})
	require.NoError(t, err)

	_, err = uc.SetStatus(ctx, a.ID, &dto.UpdateAppointmentStatusRequest{Status: "examined"})
	require.NoError(t, err)

	stats, err := uc.Stats(ctx, "")
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.Today.TotalAppointments)
	assert.EqualValues(t, 1, stats.Today.WaitingCount)
	assert.EqualValues(t, 1, stats.Today.ExaminedCount)
	assert.EqualValues(t, 0, stats.Today.CompletedCount)
	assert.EqualValues(t, 2, stats.Monthly.TotalAppointments)
}
