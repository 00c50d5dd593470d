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

func newSettingUsecase(db *gorm.DB) SettingUsecase {
	return NewSettingUsecase(db, newTestLogger(), repository.NewSettingRepository())
}

func TestListSettings(t *testing.T) {
	db := newTestDB(t)
	uc := newSettingUsecase(db)

	settings, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, settings, 2)

	byKey := map[string]string{}
	for _, s := range settings {
		byKey[s.SettingKey] = s.SettingValue
	}
	assert.Equal(t, "50", byKey[entity.SettingMaxPatientsPerDay])
	assert.Equal(t, "100000", byKey[entity.SettingConsultationFee])
}

func TestUpdateSettingByKey(t *testing.T) {
	db := newTestDB(t)
	uc := newSettingUsecase(db)
	ctx := context.Background()

	resp, err := uc.UpdateByKey(ctx, entity.SettingMaxPatientsPerDay, &dto.UpdateSettingRequest{Value: "30"})
	require.NoError(t, err)
	assert.Equal(t, "30", resp.SettingValue)

	_, err = uc.UpdateByKey(ctx, entity.SettingMaxPatientsPerDay, &dto.UpdateSettingRequest{Value: "zero"})
	assert.Error(t, err)

	_, err = uc.UpdateByKey(ctx, entity.SettingConsultationFee, &dto.UpdateSettingRequest{Value: "-5"})
	assert.ErrorIs(t, err, ErrInvalidSettingFee)

	_, err = uc.UpdateByKey(ctx, "no_such_key", &dto.UpdateSettingRequest{Value: "1"})
	assert.ErrorIs(t, err, ErrSettingNotFound)
}

func TestUpdateSettingsBatch(t *testing.T) {
	db := newTestDB(t)
	uc := newSettingUsecase(db)
	ctx := context.Background()

	limit := 25
	fee := decimal.NewFromInt(120000)
	settings, err := uc.UpdateBatch(ctx, &dto.UpdateSettingsRequest{
		MaxPatientsPerDay: &limit,
		ConsultationFee:   &fee,
	})
	require.NoError(t, err)

	byKey := map[string]string{}
	for _, s := range settings {
		byKey[s.SettingKey] = s.SettingValue
	}
	assert.Equal(t, "25", byKey[entity.SettingMaxPatientsPerDay])
	assert.Equal(t, "120000", byKey[entity.SettingConsultationFee])

	_, err = uc.UpdateBatch(ctx, &dto.UpdateSettingsRequest{})
	assert.ErrorIs(t, err, ErrNothingToUpdate)
}

func TestSettingHelpersFallBackToDefaults(t *testing.T) {
	db := newTestDB(t)
	log := newTestLogger()
	settingRepo := repository.NewSettingRepository()

	setSetting(t, db, entity.SettingMaxPatientsPerDay, "not-a-number")
	assert.Equal(t, entity.DefaultMaxPatientsPerDay, maxPatientsPerDay(db, settingRepo, log))

	setSetting(t, db, entity.SettingConsultationFee, "free")
	fallback, _ := decimal.NewFromString(entity.DefaultConsultationFee)
	assert.True(t, fallback.Equal(consultationFee(db, settingRepo, log)))
}
