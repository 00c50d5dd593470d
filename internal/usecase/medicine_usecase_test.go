package usecase

import (
	"context"
	"testing"

	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newMedicineUsecase(db *gorm.DB) MedicineUsecase {
	return NewMedicineUsecase(db, newTestLogger(), repository.NewMedicineRepository())
}

func TestCreateMedicine(t *testing.T) {
	db := newTestDB(t)
	uc := newMedicineUsecase(db)

	resp, err := uc.Create(context.Background(), &dto.CreateMedicineRequest{
		Name:  "Paracetamol",
		Unit:  "tablet",
		Price: decimal.NewFromInt(5000),
	})
	require.NoError(t, err)

	assert.Equal(t, "Paracetamol", resp.Name)
	assert.True(t, resp.IsActive)
	assert.True(t, resp.Price.Equal(decimal.NewFromInt(5000)))
}

func TestCreateMedicineRejectsNonPositivePrice(t *testing.T) {
	db := newTestDB(t)
	uc := newMedicineUsecase(db)

	_, err := uc.Create(context.Background(), &dto.CreateMedicineRequest{
		Name:  "Paracetamol",
		Unit:  "tablet",
		Price: decimal.Zero,
	})
	assert.ErrorIs(t, err, ErrInvalidPrice)
}

func TestCreateMedicineRejectsDuplicateNameAndUnit(t *testing.T) {
	db := newTestDB(t)
	uc := newMedicineUsecase(db)
	ctx := context.Background()

	createTestMedicine(t, db, "Paracetamol", "tablet", "5000")

	_, err := uc.Create(ctx, &dto.CreateMedicineRequest{
		Name:  "Paracetamol",
		Unit:  "tablet",
		Price: decimal.NewFromInt(6000),
	})
	assert.ErrorIs(t, err, ErrMedicineAlreadyExists)

	// Same name in a different unit is a distinct item
	_, err = uc.Create(ctx, &dto.CreateMedicineRequest{
		Name:  "Paracetamol",
		Unit:  "syrup",
		Price: decimal.NewFromInt(15000),
	})
	assert.NoError(t, err)
}

func TestListMedicinesFiltersInactive(t *testing.T) {
	db := newTestDB(t)
	uc := newMedicineUsecase(db)
	ctx := context.Background()

	active := createTestMedicine(t, db, "Paracetamol", "tablet", "5000")
	retired := createTestMedicine(t, db, "Old Tonic", "bottle", "9000")

	require.NoError(t, uc.Deactivate(ctx, retired.ID))

	medicines, total, err := uc.List(ctx, "", true, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, medicines, 1)
	assert.Equal(t, active.ID, medicines[0].ID)

	_, total, err = uc.List(ctx, "", false, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
}

func TestUpdateMedicinePrice(t *testing.T) {
	db := newTestDB(t)
	uc := newMedicineUsecase(db)
	ctx := context.Background()

	medicine := createTestMedicine(t, db, "Paracetamol", "tablet", "5000")

	price := decimal.NewFromInt(5500)
	resp, err := uc.Update(ctx, medicine.ID, &dto.UpdateMedicineRequest{Price: &price})
	require.NoError(t, err)
	assert.True(t, resp.Price.Equal(price))

	negative := decimal.NewFromInt(-1)
	_, err = uc.Update(ctx, medicine.ID, &dto.UpdateMedicineRequest{Price: &negative})
	assert.ErrorIs(t, err, ErrInvalidPrice)
}

func TestDeactivateMedicineNotFound(t *testing.T) {
	db := newTestDB(t)
	uc := newMedicineUsecase(db)

	err := uc.Deactivate(context.Background(), 999)
	assert.ErrorIs(t, err, ErrMedicineNotFound)
}
