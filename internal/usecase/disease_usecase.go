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

var ErrDiseaseNotFound = errors.New("disease not found")

type DiseaseUsecase interface {
	Create(ctx context.Context, req *dto.CreateDiseaseRequest) (*dto.DiseaseResponse, error)
	GetByID(ctx context.Context, id int) (*dto.DiseaseResponse, error)
	List(ctx context.Context, search string, activeOnly bool, page, limit int) ([]dto.DiseaseResponse, int64, error)
	Update(ctx context.Context, id int, req *dto.UpdateDiseaseRequest) (*dto.DiseaseResponse, error)
	Deactivate(ctx context.Context, id int) error
}

type diseaseUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	diseaseRepo repository.DiseaseRepository
}

func NewDiseaseUsecase(db *gorm.DB, log *logrus.Logger, diseaseRepo repository.DiseaseRepository) DiseaseUsecase {
	return &diseaseUsecase{
		db:          db,
		log:         log,
		diseaseRepo: diseaseRepo,
	}
}

func (u *diseaseUsecase) Create(ctx context.Context, req *dto.CreateDiseaseRequest) (*dto.DiseaseResponse, error) {
	disease := &entity.Disease{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
	}

	if err := u.diseaseRepo.Create(u.db.WithContext(ctx), disease); err != nil {
		u.log.Warnf("Failed to create disease: %+v", err)
		return nil, err
	}

	return converter.DiseaseToResponse(disease), nil
}

func (u *diseaseUsecase) GetByID(ctx context.Context, id int) (*dto.DiseaseResponse, error) {
	disease, err := u.diseaseRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find disease %d: %+v", id, err)
		return nil, err
	}
	if disease == nil {
		return nil, ErrDiseaseNotFound
	}

	return converter.DiseaseToResponse(disease), nil
}

func (u *diseaseUsecase) List(ctx context.Context, search string, activeOnly bool, page, limit int) ([]dto.DiseaseResponse, int64, error) {
	offset := (page - 1) * limit

	diseases, total, err := u.diseaseRepo.FindAll(u.db.WithContext(ctx), search, activeOnly, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to list diseases: %+v", err)
		return nil, 0, err
	}

	return converter.DiseasesToResponses(diseases), total, nil
}

func (u *diseaseUsecase) Update(ctx context.Context, id int, req *dto.UpdateDiseaseRequest) (*dto.DiseaseResponse, error) {
	db := u.db.WithContext(ctx)

	disease, err := u.diseaseRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find disease %d: %+v", id, err)
		return nil, err
	}
	if disease == nil {
		return nil, ErrDiseaseNotFound
	}

	if req.Name != nil {
		disease.Name = *req.Name
	}
	if req.Description != nil {
		disease.Description = *req.Description
	}
	if req.IsActive != nil {
		disease.IsActive = *req.IsActive
	}

	if err := u.diseaseRepo.Update(db, disease); err != nil {
		u.log.Warnf("Failed to update disease %d: %+v", id, err)
		return nil, err
	}

	return converter.DiseaseToResponse(disease), nil
}

func (u *diseaseUsecase) Deactivate(ctx context.Context, id int) error {
	db := u.db.WithContext(ctx)

	disease, err := u.diseaseRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find disease %d: %+v", id, err)
		return err
	}
	if disease == nil {
		return ErrDiseaseNotFound
	}

	disease.IsActive = false
	if err := u.diseaseRepo.Update(db, disease); err != nil {
		u.log.Warnf("Failed to deactivate disease %d: %+v", id, err)
		return err
	}

	return nil
}
