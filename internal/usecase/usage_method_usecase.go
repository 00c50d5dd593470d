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

var ErrUsageMethodNotFound = errors.New("usage method not found")

type UsageMethodUsecase interface {
	Create(ctx context.Context, req *dto.CreateLookupRequest) (*dto.LookupResponse, error)
	List(ctx context.Context, activeOnly bool, page, limit int) ([]dto.LookupResponse, int64, error)
	Update(ctx context.Context, id int, req *dto.UpdateLookupRequest) (*dto.LookupResponse, error)
	Deactivate(ctx context.Context, id int) error
}

type usageMethodUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	methodRepo repository.UsageMethodRepository
}

func NewUsageMethodUsecase(db *gorm.DB, log *logrus.Logger, methodRepo repository.UsageMethodRepository) UsageMethodUsecase {
	return &usageMethodUsecase{
		db:         db,
		log:        log,
		methodRepo: methodRepo,
	}
}

func (u *usageMethodUsecase) Create(ctx context.Context, req *dto.CreateLookupRequest) (*dto.LookupResponse, error) {
	method := &entity.UsageMethod{
		Name:     req.Name,
		IsActive: true,
	}

	if err := u.methodRepo.Create(u.db.WithContext(ctx), method); err != nil {
		u.log.Warnf("Failed to create usage method: %+v", err)
		return nil, err
	}

	return converter.UsageMethodToResponse(method), nil
}

func (u *usageMethodUsecase) List(ctx context.Context, activeOnly bool, page, limit int) ([]dto.LookupResponse, int64, error) {
	offset := (page - 1) * limit

	methods, total, err := u.methodRepo.FindAll(u.db.WithContext(ctx), activeOnly, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to list usage methods: %+v", err)
		return nil, 0, err
	}

	return converter.UsageMethodsToResponses(methods), total, nil
}

func (u *usageMethodUsecase) Update(ctx context.Context, id int, req *dto.UpdateLookupRequest) (*dto.LookupResponse, error) {
	db := u.db.WithContext(ctx)

	method, err := u.methodRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find usage method %d: %+v", id, err)
		return nil, err
	}
	if method == nil {
		return nil, ErrUsageMethodNotFound
	}

	if req.Name != nil {
		method.Name = *req.Name
	}
	if req.IsActive != nil {
		method.IsActive = *req.IsActive
	}

	if err := u.methodRepo.Update(db, method); err != nil {
		u.log.Warnf("Failed to update usage method %d: %+v", id, err)
		return nil, err
	}

	return converter.UsageMethodToResponse(method), nil
}

func (u *usageMethodUsecase) Deactivate(ctx context.Context, id int) error {
	db := u.db.WithContext(ctx)

	method, err := u.methodRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find usage method %d: %+v", id, err)
		return err
	}
	if method == nil {
		return ErrUsageMethodNotFound
	}

	method.IsActive = false
	if err := u.methodRepo.Update(db, method); err != nil {
		u.log.Warnf("Failed to deactivate usage method %d: %+v", id, err)
		return err
	}

	return nil
}
