package usecase

import (
	"context"
	"errors"

	"clinic-management-api/internal/converter"
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPatientNotFound    = errors.New("patient not found")
	ErrPhoneAlreadyExists = errors.New("phone number already registered")
)

type PatientUsecase interface {
	Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	GetByID(ctx context.Context, id int) (*dto.PatientResponse, error)
	Search(ctx context.Context, search string, page, limit int) ([]dto.PatientResponse, int64, error)
	Update(ctx context.Context, id int, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
}

type patientUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	patientRepo repository.PatientRepository
}

func NewPatientUsecase(db *gorm.DB, log *logrus.Logger, patientRepo repository.PatientRepository) PatientUsecase {
	return &patientUsecase{
		db:          db,
		log:         log,
		patientRepo: patientRepo,
	}
}

func (u *patientUsecase) Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	db := u.db.WithContext(ctx)

	existing, err := u.patientRepo.FindByPhone(db, req.PhoneNumber, 0)
	if err != nil {
		u.log.Warnf("Failed to check phone number: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrPhoneAlreadyExists
	}

	patient := &entity.Patient{
		FullName:    req.FullName,
		Gender:      req.Gender,
		BirthYear:   req.BirthYear,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
	}

	if err := u.patientRepo.Create(db, patient); err != nil {
		if isDuplicateKeyError(err, "phone") {
			return nil, ErrPhoneAlreadyExists
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetByID(ctx context.Context, id int) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Search(ctx context.Context, search string, page, limit int) ([]dto.PatientResponse, int64, error) {
	offset := (page - 1) * limit

	patients, total, err := u.patientRepo.Search(u.db.WithContext(ctx), search, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to search patients: %+v", err)
		return nil, 0, err
	}

	return converter.PatientsToResponses(patients), total, nil
}

func (u *patientUsecase) Update(ctx context.Context, id int, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	db := u.db.WithContext(ctx)

	patient, err := u.patientRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	if req.PhoneNumber != nil && *req.PhoneNumber != patient.PhoneNumber {
		existing, err := u.patientRepo.FindByPhone(db, *req.PhoneNumber, id)
		if err != nil {
			u.log.Warnf("Failed to check phone number: %+v", err)
			return nil, err
		}
		if existing != nil {
			return nil, ErrPhoneAlreadyExists
		}
		patient.PhoneNumber = *req.PhoneNumber
	}

	if req.FullName != nil {
		patient.FullName = *req.FullName
	}
	if req.Gender != nil {
		patient.Gender = *req.Gender
	}
	if req.BirthYear != nil {
		patient.BirthYear = *req.BirthYear
	}
	if req.Address != nil {
		patient.Address = *req.Address
	}

	if err := u.patientRepo.Update(db, patient); err != nil {
		if isDuplicateKeyError(err, "phone") {
			return nil, ErrPhoneAlreadyExists
		}
		u.log.Warnf("Failed to update patient %d: %+v", id, err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}
