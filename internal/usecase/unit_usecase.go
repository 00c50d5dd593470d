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

var ErrUnitNotFound = errors.New("unit not found")

type UnitUsecase interface {
	Create(ctx context.Context, req *dto.CreateLookupRequest) (*dto.LookupResponse, error)
	List(ctx context.Context, activeOnly bool, page, limit int) ([]dto.LookupResponse, int64, error)
	Update(ctx context.Context, id int, req *dto.UpdateLookupRequest) (*dto.LookupResponse, error)
	Deactivate(ctx context.Context, id int) error
}

type unitUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	unitRepo repository.UnitRepository
}

func NewUnitUsecase(db *gorm.DB, log *logrus.Logger, unitRepo repository.UnitRepository) UnitUsecase {
	return &unitUsecase{
		db:       db,
		log:      log,
		unitRepo: unitRepo,
	}
}

func (u *unitUsecase) Create(ctx context.Context, req *dto.CreateLookupRequest) (*dto.LookupResponse, error) {
	unit := &entity.Unit{
		Name:     req.Name,
		IsActive: true,
	}

	if err := u.unitRepo.Create(u.db.WithContext(ctx), unit); err != nil {
		u.log.Warnf("Failed to create unit: %+v", err)
		return nil, err
	}

	return converter.UnitToResponse(unit), nil
}

func (u *unitUsecase) List(ctx context.Context, activeOnly bool, page, limit int) ([]dto.LookupResponse, int64, error) {
	offset := (page - 1) * limit

	units, total, err := u.unitRepo.FindAll(u.db.WithContext(ctx), activeOnly, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to list units: %+v", err)
		return nil, 0, err
	}

	return converter.UnitsToResponses(units), total, nil
}

func (u *unitUsecase) Update(ctx context.Context, id int, req *dto.UpdateLookupRequest) (*dto.LookupResponse, error) {
	db := u.db.WithContext(ctx)

	unit, err := u.unitRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find unit %d: %+v", id, err)
		return nil, err
	}
	if unit == nil {
		return nil, ErrUnitNotFound
	}

	if req.Name != nil {
		unit.Name = *req.Name
	}
	if req.IsActive != nil {
		unit.IsActive = *req.IsActive
	}

	if err := u.unitRepo.Update(db, unit); err != nil {
		u.log.Warnf("Failed to update unit %d: %+v", id, err)
		return nil, err
	}

	return converter.UnitToResponse(unit), nil
}

func (u *unitUsecase) Deactivate(ctx context.Context, id int) error {
	db := u.db.WithContext(ctx)

	unit, err := u.unitRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find unit %d: %+v", id, err)
		return err
	}
	if unit == nil {
		return ErrUnitNotFound
	}

	unit.IsActive = false
	if err := u.unitRepo.Update(db, unit); err != nil {
		u.log.Warnf("Failed to deactivate unit %d: %+v", id, err)
		return err
	}

	return nil
}
