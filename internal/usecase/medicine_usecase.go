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
	ErrMedicineNotFound      = errors.New("medicine not found")
	ErrMedicineAlreadyExists = errors.New("medicine with this name and unit already exists")
	ErrInvalidPrice          = errors.New("price must be greater than zero")
)

type MedicineUsecase interface {
	Create(ctx context.Context, req *dto.CreateMedicineRequest) (*dto.MedicineResponse, error)
	GetByID(ctx context.Context, id int) (*dto.MedicineResponse, error)
	List(ctx context.Context, search string, activeOnly bool, page, limit int) ([]dto.MedicineResponse, int64, error)
	Update(ctx context.Context, id int, req *dto.UpdateMedicineRequest) (*dto.MedicineResponse, error)
	Deactivate(ctx context.Context, id int) error
}

type medicineUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	medicineRepo repository.MedicineRepository
}

func NewMedicineUsecase(db *gorm.DB, log *logrus.Logger, medicineRepo repository.MedicineRepository) MedicineUsecase {
	return &medicineUsecase{
		db:           db,
		log:          log,
		medicineRepo: medicineRepo,
	}
}

func (u *medicineUsecase) Create(ctx context.Context, req *dto.CreateMedicineRequest) (*dto.MedicineResponse, error) {
	if !req.Price.IsPositive() {
		return nil, ErrInvalidPrice
	}

	db := u.db.WithContext(ctx)

	existing, err := u.medicineRepo.FindByNameAndUnit(db, req.Name, req.Unit, 0)
	if err != nil {
		u.log.Warnf("Failed to check medicine name: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrMedicineAlreadyExists
	}

	medicine := &entity.Medicine{
		Name:     req.Name,
		Unit:     req.Unit,
		Price:    req.Price,
		IsActive: true,
	}

	if err := u.medicineRepo.Create(db, medicine); err != nil {
		u.log.Warnf("Failed to create medicine: %+v", err)
		return nil, err
	}

	return converter.MedicineToResponse(medicine), nil
}

func (u *medicineUsecase) GetByID(ctx context.Context, id int) (*dto.MedicineResponse, error) {
	medicine, err := u.medicineRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find medicine %d: %+v", id, err)
		return nil, err
	}
	if medicine == nil {
		return nil, ErrMedicineNotFound
	}

	return converter.MedicineToResponse(medicine), nil
}

func (u *medicineUsecase) List(ctx context.Context, search string, activeOnly bool, page, limit int) ([]dto.MedicineResponse, int64, error) {
	offset := (page - 1) * limit

	medicines, total, err := u.medicineRepo.FindAll(u.db.WithContext(ctx), search, activeOnly, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to list medicines: %+v", err)
		return nil, 0, err
	}

	return converter.MedicinesToResponses(medicines), total, nil
}

func (u *medicineUsecase) Update(ctx context.Context, id int, req *dto.UpdateMedicineRequest) (*dto.MedicineResponse, error) {
	db := u.db.WithContext(ctx)

	medicine, err := u.medicineRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find medicine %d: %+v", id, err)
		return nil, err
	}
	if medicine == nil {
		return nil, ErrMedicineNotFound
	}

	if req.Name != nil {
		medicine.Name = *req.Name
	}
	if req.Unit != nil {
		medicine.Unit = *req.Unit
	}
	if req.Price != nil {
		if !req.Price.IsPositive() {
			return nil, ErrInvalidPrice
		}
		medicine.Price = *req.Price
	}
	if req.IsActive != nil {
		medicine.IsActive = *req.IsActive
	}

	if req.Name != nil || req.Unit != nil {
		existing, err := u.medicineRepo.FindByNameAndUnit(db, medicine.Name, medicine.Unit, id)
		if err != nil {
			u.log.Warnf("Failed to check medicine name: %+v", err)
			return nil, err
		}
		if existing != nil {
			return nil, ErrMedicineAlreadyExists
		}
	}

	if err := u.medicineRepo.Update(db, medicine); err != nil {
		u.log.Warnf("Failed to update medicine %d: %+v", id, err)
		return nil, err
	}

	return converter.MedicineToResponse(medicine), nil
}

// Deactivate soft-deletes a medicine so historical prescriptions keep resolving.
func (u *medicineUsecase) Deactivate(ctx context.Context, id int) error {
	db := u.db.WithContext(ctx)

	medicine, err := u.medicineRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find medicine %d: %+v", id, err)
		return err
	}
	if medicine == nil {
		return ErrMedicineNotFound
	}

	medicine.IsActive = false
	if err := u.medicineRepo.Update(db, medicine); err != nil {
		u.log.Warnf("Failed to deactivate medicine %d: %+v", id, err)
		return err
	}

	return nil
}
