package usecase

import (
	"context"
	"errors"
	"strconv"

	"clinic-management-api/internal/converter"
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrSettingNotFound   = errors.New("setting not found")
	ErrNothingToUpdate   = errors.New("no settings provided")
	ErrInvalidSettingFee = errors.New("consultation fee must be zero or greater")
)

type SettingUsecase interface {
	List(ctx context.Context) ([]dto.SettingResponse, error)
	GetByKey(ctx context.Context, key string) (*dto.SettingResponse, error)
	UpdateByKey(ctx context.Context, key string, req *dto.UpdateSettingRequest) (*dto.SettingResponse, error)
	UpdateBatch(ctx context.Context, req *dto.UpdateSettingsRequest) ([]dto.SettingResponse, error)
}

type settingUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	settingRepo repository.SettingRepository
}

func NewSettingUsecase(db *gorm.DB, log *logrus.Logger, settingRepo repository.SettingRepository) SettingUsecase {
	return &settingUsecase{
		db:          db,
		log:         log,
		settingRepo: settingRepo,
	}
}

func (u *settingUsecase) List(ctx context.Context) ([]dto.SettingResponse, error) {
	settings, err := u.settingRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list settings: %+v", err)
		return nil, err
	}

	return converter.SettingsToResponses(settings), nil
}

func (u *settingUsecase) GetByKey(ctx context.Context, key string) (*dto.SettingResponse, error) {
	setting, err := u.settingRepo.FindByKey(u.db.WithContext(ctx), key)
	if err != nil {
		u.log.Warnf("Failed to find setting %q: %+v", key, err)
		return nil, err
	}
	if setting == nil {
		return nil, ErrSettingNotFound
	}

	return converter.SettingToResponse(setting), nil
}

func (u *settingUsecase) UpdateByKey(ctx context.Context, key string, req *dto.UpdateSettingRequest) (*dto.SettingResponse, error) {
	db := u.db.WithContext(ctx)

	if key == entity.SettingMaxPatientsPerDay {
		n, err := strconv.Atoi(req.Value)
		if err != nil || n < 1 {
			return nil, errors.New("max_patients_per_day must be a positive integer")
		}
	}
	if key == entity.SettingConsultationFee {
		fee, err := decimal.NewFromString(req.Value)
		if err != nil || fee.IsNegative() {
			return nil, ErrInvalidSettingFee
		}
	}

	affected, err := u.settingRepo.UpdateValue(db, key, req.Value)
	if err != nil {
		u.log.Warnf("Failed to update setting %q: %+v", key, err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrSettingNotFound
	}

	setting, err := u.settingRepo.FindByKey(db, key)
	if err != nil {
		u.log.Warnf("Failed to reload setting %q: %+v", key, err)
		return nil, err
	}

	return converter.SettingToResponse(setting), nil
}

func (u *settingUsecase) UpdateBatch(ctx context.Context, req *dto.UpdateSettingsRequest) ([]dto.SettingResponse, error) {
	if req.MaxPatientsPerDay == nil && req.ConsultationFee == nil {
		return nil, ErrNothingToUpdate
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if req.MaxPatientsPerDay != nil {
		if _, err := u.settingRepo.UpdateValue(tx, entity.SettingMaxPatientsPerDay, strconv.Itoa(*req.MaxPatientsPerDay)); err != nil {
			u.log.Warnf("Failed to update max patients setting: %+v", err)
			return nil, err
		}
	}

	if req.ConsultationFee != nil {
		if req.ConsultationFee.IsNegative() {
			return nil, ErrInvalidSettingFee
		}
		if _, err := u.settingRepo.UpdateValue(tx, entity.SettingConsultationFee, req.ConsultationFee.String()); err != nil {
			u.log.Warnf("Failed to update consultation fee setting: %+v", err)
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	settings, err := u.settingRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list settings: %+v", err)
		return nil, err
	}

	return converter.SettingsToResponses(settings), nil
}

// maxPatientsPerDay reads the daily capacity setting with its fallback default.
func maxPatientsPerDay(db *gorm.DB, settingRepo repository.SettingRepository, log *logrus.Logger) int {
	setting, err := settingRepo.FindByKey(db, entity.SettingMaxPatientsPerDay)
	if err != nil {
		log.Warnf("Failed to read max patients setting, using default: %+v", err)
		return entity.DefaultMaxPatientsPerDay
	}
	if setting == nil {
		return entity.DefaultMaxPatientsPerDay
	}
	n, err := strconv.Atoi(setting.SettingValue)
	if err != nil || n < 1 {
		log.Warnf("Invalid max patients setting %q, using default", setting.SettingValue)
		return entity.DefaultMaxPatientsPerDay
	}
	return n
}

// consultationFee reads the consultation fee setting with its fallback default.
func consultationFee(db *gorm.DB, settingRepo repository.SettingRepository, log *logrus.Logger) decimal.Decimal {
	fallback, _ := decimal.NewFromString(entity.DefaultConsultationFee)

	setting, err := settingRepo.FindByKey(db, entity.SettingConsultationFee)
	if err != nil {
		log.Warnf("Failed to read consultation fee setting, using default: %+v", err)
		return fallback
	}
	if setting == nil {
		return fallback
	}
	fee, err := decimal.NewFromString(setting.SettingValue)
	if err != nil || fee.IsNegative() {
		log.Warnf("Invalid consultation fee setting %q, using default", setting.SettingValue)
		return fallback
	}
	return fee
}
