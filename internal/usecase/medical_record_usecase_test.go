package usecase

import (
	"context"
	"testing"

	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newMedicalRecordUsecase(db *gorm.DB) MedicalRecordUsecase {
	log := newTestLogger()
	return NewMedicalRecordUsecase(
		db,
		log,
		repository.NewMedicalRecordRepository(),
		repository.NewPatientRepository(),
		repository.NewDiseaseRepository(),
		repository.NewMedicineRepository(),
		repository.NewUsageMethodRepository(),
		repository.NewAppointmentRepository(),
		newTestAuditService(log),
	)
}

func TestCreateMedicalRecordAdvancesQueue(t *testing.T) {
	db := newTestDB(t)
	recordUC := newMedicalRecordUsecase(db)
	appointmentUC := newAppointmentUsecase(db)
	ctx := context.Background()

	patient := createTestPatient(t, db, "Jane Roe", "0811111111")
	disease := createTestDisease(t, db, "Influenza")
	medicine := createTestMedicine(t, db, "Paracetamol", "tablet", "5000")
	method := createTestUsageMethod(t, db, "3x daily after meals")

	queued, err := appointmentUC.Enqueue(ctx, &dto.CreateAppointmentRequest{PatientID: patient.ID})
	require.NoError(t, err)

	resp, err := recordUC.Create(ctx, &dto.CreateMedicalRecordRequest{
		PatientID: patient.ID,
		Symptoms:  "fever and sore throat",
		DiseaseID: &disease.ID,
		Diagnosis: "Seasonal flu",
		Prescriptions: []dto.PrescriptionLineRequest{
			{MedicineID: medicine.ID, Quantity: 10, UsageMethodID: method.ID},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, string(entity.RecordStatusCompleted), resp.Status)
	assert.Equal(t, "Influenza", resp.DiseaseName)
	require.Len(t, resp.Prescriptions, 1)
	assert.Equal(t, "Paracetamol", resp.Prescriptions[0].MedicineName)
	assert.True(t, resp.Prescriptions[0].Total.Equal(decimal.NewFromInt(50000)))

	var appointment entity.DailyAppointment
	require.NoError(t, db.First(&appointment, queued.ID).Error)
	assert.Equal(t, entity.AppointmentStatusExamined, appointment.Status)
	require.NotNil(t, appointment.MedicalRecordID)
	assert.Equal(t, resp.ID, *appointment.MedicalRecordID)
}

func TestCreateMedicalRecordWithoutDiagnosisIsPending(t *testing.T) {
	db := newTestDB(t)
	uc := newMedicalRecordUsecase(db)
	ctx := context.Background()

	patient := createTestPatient(t, db, "Jane Roe", "0811111111")

	resp, err := uc.Create(ctx, &dto.CreateMedicalRecordRequest{
		PatientID: patient.ID,
		Symptoms:  "intermittent headache",
	})
	require.NoError(t, err)

	assert.Equal(t, string(entity.RecordStatusPending), resp.Status)
	assert.Empty(t, resp.Prescriptions)
}

func TestCreateMedicalRecordWalkIn(t *testing.T) {
	db := newTestDB(t)
	uc := newMedicalRecordUsecase(db)
	ctx := context.Background()

	patient := createTestPatient(t, db, "Jane Roe", "0811111111")

	// No queue entry for today, the record still stands
	resp, err := uc.Create(ctx, &dto.CreateMedicalRecordRequest{
		PatientID: patient.ID,
		Symptoms:  "minor cut",
		Diagnosis: "Superficial wound",
	})
	require.NoError(t, err)
	assert.Equal(t, patient.ID, resp.PatientID)

	var count int64
	require.NoError(t, db.Model(&entity.DailyAppointment{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestCreateMedicalRecordPatientNotFound(t *testing.T) {
	db := newTestDB(t)
	uc := newMedicalRecordUsecase(db)

	_, err := uc.Create(context.Background(), &dto.CreateMedicalRecordRequest{
		PatientID: 999,
		Symptoms:  "fever",
	})
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestCreateMedicalRecordRejectsUnknownReferences(t *testing.T) {
	db := newTestDB(t)
	uc := newMedicalRecordUsecase(db)
	ctx := context.Background()

	patient := createTestPatient(t, db, "Jane Roe", "0811111111")
	medicine := createTestMedicine(t, db, "Paracetamol", "tablet", "5000")
	method := createTestUsageMethod(t, db, "3x daily")

	badDisease := 999
	_, err := uc.Create(ctx, &dto.CreateMedicalRecordRequest{
		PatientID: patient.ID,
		Symptoms:  "fever",
		DiseaseID: &badDisease,
	})
	assert.ErrorIs(t, err, ErrDiseaseNotFound)

	_, err = uc.Create(ctx, &dto.CreateMedicalRecordRequest{
		PatientID: patient.ID,
		Symptoms:  "fever",
		Prescriptions: []dto.PrescriptionLineRequest{
			{MedicineID: 999, Quantity: 1, UsageMethodID: method.ID},
		},
	})
	assert.ErrorIs(t, err, ErrMedicineNotFound)

	_, err = uc.Create(ctx, &dto.CreateMedicalRecordRequest{
		PatientID: patient.ID,
		Symptoms:  "fever",
		Prescriptions: []dto.PrescriptionLineRequest{
			{MedicineID: medicine.ID, Quantity: 1, UsageMethodID: 999},
		},
	})
	assert.ErrorIs(t, err, ErrUsageMethodNotFound)

	// Nothing partial should survive the rollbacks
	var count int64
	require.NoError(t, db.Model(&entity.MedicalRecord{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestCreateMedicalRecordRejectsInactiveMedicine(t *testing.T) {
	db := newTestDB(t)
	uc := newMedicalRecordUsecase(db)
	ctx := context.Background()

	patient := createTestPatient(t, db, "Jane Roe", "0811111111")
	medicine := createTestMedicine(t, db, "Paracetamol", "tablet", "5000")
	method := createTestUsageMethod(t, db, "3x daily")

	require.NoError(t, db.Model(medicine).Update("is_active", false).Error)

	_, err := uc.Create(ctx, &dto.CreateMedicalRecordRequest{
		PatientID: patient.ID,
		Symptoms:  "fever",
		Prescriptions: []dto.PrescriptionLineRequest{
			{MedicineID: medicine.ID, Quantity: 1, UsageMethodID: method.ID},
		},
	})
	assert.ErrorIs(t, err, ErrMedicineNotFound)
}

func TestGetMedicalRecordNotFound(t *testing.T) {
	db := newTestDB(t)
	uc := newMedicalRecordUsecase(db)

	_, err := uc.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrMedicalRecordNotFound)
}

func TestListMedicalRecordsByPatient(t *testing.T) {
	db := newTestDB(t)
	uc := newMedicalRecordUsecase(db)
	ctx := context.Background()

	patient := createTestPatient(t, db, "Jane Roe", "0811111111")
	other := createTestPatient(t, db, "John Doe", "0822222222")

	for _, symptoms := range []string{"fever", "cough"} {
		_, err := uc.Create(ctx, &dto.CreateMedicalRecordRequest{
			PatientID: patient.ID,
			Symptoms:  symptoms,
		})
		require.NoError(t, err)
	}

	records, total, err := uc.ListByPatient(ctx, patient.ID, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, records, 2)

	records, total, err = uc.ListByPatient(ctx, other.ID, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)
	assert.Empty(t, records)

	_, _, err = uc.ListByPatient(ctx, 999, 1, 10)
	assert.ErrorIs(t, err, ErrPatientNotFound)
}
