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

func newInvoiceUsecase(db *gorm.DB) InvoiceUsecase {
	log := newTestLogger()
	return NewInvoiceUsecase(
		db,
		log,
		repository.NewInvoiceRepository(),
		repository.NewAppointmentRepository(),
		repository.NewMedicalRecordRepository(),
		repository.NewSettingRepository(),
		newTestAuditService(log),
	)
}

// examinedVisit queues a patient and records an examination, returning a
// billing request ready for invoice creation.
func examinedVisit(t *testing.T, db *gorm.DB, prescriptions []dto.PrescriptionLineRequest) *dto.CreateInvoiceRequest {
	t.Helper()
	ctx := context.Background()

	patient := createTestPatient(t, db, "Jane Roe", "0811111111")

	queued, err := newAppointmentUsecase(db).Enqueue(ctx, &dto.CreateAppointmentRequest{PatientID: patient.ID})
	require.NoError(t, err)

	record, err := newMedicalRecordUsecase(db).Create(ctx, &dto.CreateMedicalRecordRequest{
		PatientID:     patient.ID,
		Symptoms:      "fever",
		Diagnosis:     "Seasonal flu",
		Prescriptions: prescriptions,
	})
	require.NoError(t, err)

	return &dto.CreateInvoiceRequest{
		PatientID:          patient.ID,
		MedicalRecordID:    record.ID,
		DailyAppointmentID: queued.ID,
	}
}

func TestCreateInvoiceSumsFees(t *testing.T) {
	db := newTestDB(t)
	uc := newInvoiceUsecase(db)
	ctx := context.Background()

	medicine := createTestMedicine(t, db, "Paracetamol", "tablet", "5000")
	method := createTestUsageMethod(t, db, "3x daily")

	req := examinedVisit(t, db, []dto.PrescriptionLineRequest{
		{MedicineID: medicine.ID, Quantity: 10, UsageMethodID: method.ID},
	})

	resp, err := uc.Create(ctx, req)
	require.NoError(t, err)

	// Seeded consultation fee 100000 plus 10 x 5000 of medicine
	assert.True(t, resp.ConsultationFee.Equal(decimal.NewFromInt(100000)))
	assert.True(t, resp.MedicineFee.Equal(decimal.NewFromInt(50000)))
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(150000)))
	assert.Equal(t, string(entity.PaymentStatusPending), resp.PaymentStatus)
	require.Len(t, resp.Prescriptions, 1)
	assert.Equal(t, "Paracetamol", resp.Prescriptions[0].MedicineName)
}

func TestCreateInvoiceSnapshotsConsultationFee(t *testing.T) {
	db := newTestDB(t)
	uc := newInvoiceUsecase(db)
	ctx := context.Background()

	setSetting(t, db, entity.SettingConsultationFee, "75000")

	req := examinedVisit(t, db, nil)

	resp, err := uc.Create(ctx, req)
	require.NoError(t, err)

	assert.True(t, resp.ConsultationFee.Equal(decimal.NewFromInt(75000)))
	assert.True(t, resp.MedicineFee.IsZero())
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(75000)))
}

func TestCreateInvoiceRequiresExamination(t *testing.T) {
	db := newTestDB(t)
	uc := newInvoiceUsecase(db)
	ctx := context.Background()

	patient := createTestPatient(t, db, "Jane Roe", "0811111111")
	queued, err := newAppointmentUsecase(db).Enqueue(ctx, &dto.CreateAppointmentRequest{PatientID: patient.ID})
	require.NoError(t, err)

	_, err = uc.Create(ctx, &dto.CreateInvoiceRequest{
		PatientID:          patient.ID,
		MedicalRecordID:    1,
		DailyAppointmentID: queued.ID,
	})
	assert.ErrorIs(t, err, ErrNotExamined)
}

func TestCreateInvoiceRejectsMismatchedPatient(t *testing.T) {
	db := newTestDB(t)
	uc := newInvoiceUsecase(db)
	ctx := context.Background()

	req := examinedVisit(t, db, nil)
	other := createTestPatient(t, db, "John Doe", "0822222222")

	req.PatientID = other.ID
	_, err := uc.Create(ctx, req)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestCreateInvoiceAppointmentNotFound(t *testing.T) {
	db := newTestDB(t)
	uc := newInvoiceUsecase(db)

	_, err := uc.Create(context.Background(), &dto.CreateInvoiceRequest{
		PatientID:          1,
		MedicalRecordID:    1,
		DailyAppointmentID: 999,
	})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestCreateInvoiceRejectsDuplicate(t *testing.T) {
	db := newTestDB(t)
	uc := newInvoiceUsecase(db)
	ctx := context.Background()

	req := examinedVisit(t, db, nil)

	_, err := uc.Create(ctx, req)
	require.NoError(t, err)

	_, err = uc.Create(ctx, req)
	assert.ErrorIs(t, err, ErrInvoiceAlreadyExists)
}

func TestPayInvoiceCompletesVisit(t *testing.T) {
	db := newTestDB(t)
	uc := newInvoiceUsecase(db)
	ctx := context.Background()

	req := examinedVisit(t, db, nil)

	created, err := uc.Create(ctx, req)
	require.NoError(t, err)

	paid, err := uc.Pay(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(entity.PaymentStatusPaid), paid.PaymentStatus)

	var appointment entity.DailyAppointment
	require.NoError(t, db.First(&appointment, req.DailyAppointmentID).Error)
	assert.Equal(t, entity.AppointmentStatusCompleted, appointment.Status)

	_, err = uc.Pay(ctx, created.ID)
	assert.ErrorIs(t, err, ErrInvoiceAlreadyPaid)
}

func TestPayInvoiceNotFound(t *testing.T) {
	db := newTestDB(t)
	uc := newInvoiceUsecase(db)

	_, err := uc.Pay(context.Background(), 999)
	assert.ErrorIs(t, err, ErrInvoiceNotFound)
}

// TestVisitLifecycle walks a patient through the full day: queued at the
// front desk, examined by the doctor, billed and paid at checkout.
func TestVisitLifecycle(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	appointmentUC := newAppointmentUsecase(db)
	recordUC := newMedicalRecordUsecase(db)
	invoiceUC := newInvoiceUsecase(db)

	patient := createTestPatient(t, db, "Jane Roe", "0811111111")
	disease := createTestDisease(t, db, "Influenza")
	paracetamol := createTestMedicine(t, db, "Paracetamol", "tablet", "5000")
	syrup := createTestMedicine(t, db, "Cough Syrup", "bottle", "25000")
	method := createTestUsageMethod(t, db, "3x daily after meals")

	queued, err := appointmentUC.Enqueue(ctx, &dto.CreateAppointmentRequest{PatientID: patient.ID})
	require.NoError(t, err)
	assert.Equal(t, "waiting", queued.Status)

	record, err := recordUC.Create(ctx, &dto.CreateMedicalRecordRequest{
		PatientID: patient.ID,
		Symptoms:  "fever, cough",
		DiseaseID: &disease.ID,
		Diagnosis: "Seasonal flu",
		Prescriptions: []dto.PrescriptionLineRequest{
			{MedicineID: paracetamol.ID, Quantity: 10, UsageMethodID: method.ID},
			{MedicineID: syrup.ID, Quantity: 1, UsageMethodID: method.ID},
		},
	})
	require.NoError(t, err)

	examined, err := appointmentUC.GetByID(ctx, queued.ID)
	require.NoError(t, err)
	assert.Equal(t, "examined", examined.Status)
	assert.Equal(t, "Seasonal flu", examined.Diagnosis)

	invoice, err := invoiceUC.Create(ctx, &dto.CreateInvoiceRequest{
		PatientID:          patient.ID,
		MedicalRecordID:    record.ID,
		DailyAppointmentID: queued.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, record.ID, invoice.MedicalRecordID)
	// 100000 consultation + 10 x 5000 + 1 x 25000
	assert.True(t, invoice.TotalAmount.Equal(decimal.NewFromInt(175000)))

	paid, err := invoiceUC.Pay(ctx, invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, "paid", paid.PaymentStatus)

	completed, err := appointmentUC.GetByID(ctx, queued.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", completed.Status)
}
