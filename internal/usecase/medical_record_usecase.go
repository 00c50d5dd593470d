package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clinic-management-api/internal/converter"
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/domain/repository"
	"clinic-management-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrMedicalRecordNotFound = errors.New("medical record not found")

type MedicalRecordUsecase interface {
	Create(ctx context.Context, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error)
	GetByID(ctx context.Context, id int) (*dto.MedicalRecordResponse, error)
	ListByPatient(ctx context.Context, patientID, page, limit int) ([]dto.MedicalRecordResponse, int64, error)
	List(ctx context.Context, page, limit int) ([]dto.MedicalRecordResponse, int64, error)
}

type medicalRecordUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	recordRepo      repository.MedicalRecordRepository
	patientRepo     repository.PatientRepository
	diseaseRepo     repository.DiseaseRepository
	medicineRepo    repository.MedicineRepository
	methodRepo      repository.UsageMethodRepository
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
}

func NewMedicalRecordUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	recordRepo repository.MedicalRecordRepository,
	patientRepo repository.PatientRepository,
	diseaseRepo repository.DiseaseRepository,
	medicineRepo repository.MedicineRepository,
	methodRepo repository.UsageMethodRepository,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) MedicalRecordUsecase {
	return &medicalRecordUsecase{
		db:              db,
		log:             log,
		recordRepo:      recordRepo,
		patientRepo:     patientRepo,
		diseaseRepo:     diseaseRepo,
		medicineRepo:    medicineRepo,
		methodRepo:      methodRepo,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
	}
}

// Create records an examination and its prescription in one transaction.
//
// Flow:
// 1. Validate patient, disease and every prescription reference
// 2. Insert the record with its status derived from the diagnosis
// 3. Insert prescription lines
// 4. Advance the patient's waiting queue entry for today, if any
func (u *medicalRecordUsecase) Create(ctx context.Context, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error) {
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

	if req.DiseaseID != nil {
		disease, err := u.diseaseRepo.FindActiveByID(tx, *req.DiseaseID)
		if err != nil {
			u.log.Warnf("Failed to find disease %d: %+v", *req.DiseaseID, err)
			return nil, err
		}
		if disease == nil {
			return nil, fmt.Errorf("%w: id %d", ErrDiseaseNotFound, *req.DiseaseID)
		}
	}

	for _, line := range req.Prescriptions {
		medicine, err := u.medicineRepo.FindActiveByID(tx, line.MedicineID)
		if err != nil {
			u.log.Warnf("Failed to find medicine %d: %+v", line.MedicineID, err)
			return nil, err
		}
		if medicine == nil {
			return nil, fmt.Errorf("%w: id %d", ErrMedicineNotFound, line.MedicineID)
		}

		method, err := u.methodRepo.FindActiveByID(tx, line.UsageMethodID)
		if err != nil {
			u.log.Warnf("Failed to find usage method %d: %+v", line.UsageMethodID, err)
			return nil, err
		}
		if method == nil {
			return nil, fmt.Errorf("%w: id %d", ErrUsageMethodNotFound, line.UsageMethodID)
		}
	}

	actorID := actorIDFromContext(ctx)

	record := &entity.MedicalRecord{
		PatientID: req.PatientID,
		DoctorID:  actorID,
		Symptoms:  req.Symptoms,
		DiseaseID: req.DiseaseID,
		Diagnosis: req.Diagnosis,
		Status:    entity.DeriveRecordStatus(req.Diagnosis),
	}

	if err := u.recordRepo.Create(tx, record); err != nil {
		u.log.Warnf("Failed to create medical record: %+v", err)
		return nil, err
	}

	for _, line := range req.Prescriptions {
		detail := &entity.PrescriptionDetail{
			MedicalRecordID: record.ID,
			MedicineID:      line.MedicineID,
			Quantity:        line.Quantity,
			UsageMethodID:   line.UsageMethodID,
		}
		if err := u.recordRepo.CreateDetail(tx, detail); err != nil {
			u.log.Warnf("Failed to create prescription line: %+v", err)
			return nil, err
		}
	}

	today := time.Now().Format("2006-01-02")
	advanced, err := u.appointmentRepo.AdvanceFirstWaiting(tx, req.PatientID, today, record.ID)
	if err != nil {
		u.log.Warnf("Failed to advance appointment for patient %d: %+v", req.PatientID, err)
		return nil, err
	}
	if advanced == 0 {
		// Walk-in examination without a queue entry, the record still stands
		u.log.Infof("No waiting appointment for patient %d on %s", req.PatientID, today)
	}

	if err := u.auditService.LogCreate(ctx, tx, actorID, "medical_record.create", "medical_record", record.ID, map[string]interface{}{
		"patient_id":    req.PatientID,
		"status":        string(record.Status),
		"prescriptions": len(req.Prescriptions),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	full, err := u.recordRepo.FindByID(u.db.WithContext(ctx), record.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload medical record %d: %+v", record.ID, err)
		return converter.MedicalRecordToResponse(record), nil
	}

	u.log.Infof("Medical record created: id=%d, patient=%d, lines=%d", record.ID, req.PatientID, len(req.Prescriptions))
	return converter.MedicalRecordToResponse(full), nil
}

func (u *medicalRecordUsecase) GetByID(ctx context.Context, id int) (*dto.MedicalRecordResponse, error) {
	record, err := u.recordRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find medical record %d: %+v", id, err)
		return nil, err
	}
	if record == nil {
		return nil, ErrMedicalRecordNotFound
	}

	return converter.MedicalRecordToResponse(record), nil
}

func (u *medicalRecordUsecase) ListByPatient(ctx context.Context, patientID, page, limit int) ([]dto.MedicalRecordResponse, int64, error) {
	db := u.db.WithContext(ctx)

	patient, err := u.patientRepo.FindByID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", patientID, err)
		return nil, 0, err
	}
	if patient == nil {
		return nil, 0, ErrPatientNotFound
	}

	offset := (page - 1) * limit
	records, total, err := u.recordRepo.FindByPatient(db, patientID, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to list medical records for patient %d: %+v", patientID, err)
		return nil, 0, err
	}

	return converter.MedicalRecordsToResponses(records), total, nil
}

func (u *medicalRecordUsecase) List(ctx context.Context, page, limit int) ([]dto.MedicalRecordResponse, int64, error) {
	offset := (page - 1) * limit

	records, total, err := u.recordRepo.FindAll(u.db.WithContext(ctx), limit, offset)
	if err != nil {
		u.log.Warnf("Failed to list medical records: %+v", err)
		return nil, 0, err
	}

	return converter.MedicalRecordsToResponses(records), total, nil
}
