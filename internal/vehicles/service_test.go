package vehicles

import (
	"context"
	"testing"

	"emis-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupVehicleTest(t *testing.T) *Service {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Vehicle{}))
	return &Service{DB: db}
}

func TestCreateVehicle(t *testing.T) {
	svc := setupVehicleTest(t)

	_, err := svc.Create(context.Background(), CreateInput{Make: "Toyota"})
	assert.ErrorIs(t, err, ErrPlateRequired)

	v, err := svc.Create(context.Background(), CreateInput{
		PlateNumber: "SKD-1234", Make: "Toyota", Model: "Hilux",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, v.VehicleID)
	assert.Nil(t, v.LGUID)
}

func TestListVehicles_TenantScoped(t *testing.T) {
	svc := setupVehicleTest(t)
	pagadian := uuid.New()
	dipolog := uuid.New()

	seed := []CreateInput{
		{LGUID: &pagadian, PlateNumber: "AAA-1111", Make: "Toyota"},
		{LGUID: &dipolog, PlateNumber: "BBB-2222", Make: "Isuzu"},
		{PlateNumber: "CCC-3333", Make: "Mitsubishi"}, // shared fleet
	}
	for _, in := range seed {
		_, err := svc.Create(context.Background(), in)
		require.NoError(t, err)
	}

	vs, err := svc.List(context.Background(), pagadian.String())
	require.NoError(t, err)
	require.Len(t, vs, 2)
	assert.Equal(t, "AAA-1111", vs[0].PlateNumber)
	assert.Equal(t, "CCC-3333", vs[1].PlateNumber)

	all, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestUpdateVehicle_PartialAndEmptyPlateRejected(t *testing.T) {
	svc := setupVehicleTest(t)
	v, err := svc.Create(context.Background(), CreateInput{
		PlateNumber: "SKD-1234", Make: "Toyota", Model: "Hilux",
	})
	require.NoError(t, err)

	empty := ""
	_, err = svc.Update(context.Background(), v.VehicleID, UpdateInput{PlateNumber: &empty})
	assert.ErrorIs(t, err, ErrPlateRequired)

	model := "Fortuner"
	got, err := svc.Update(context.Background(), v.VehicleID, UpdateInput{Model: &model})
	require.NoError(t, err)
	assert.Equal(t, "Fortuner", got.Model)
	assert.Equal(t, "SKD-1234", got.PlateNumber)
}

func TestDeleteVehicle(t *testing.T) {
	svc := setupVehicleTest(t)
	v, err := svc.Create(context.Background(), CreateInput{PlateNumber: "SKD-1234"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), v.VehicleID))
	assert.ErrorIs(t, svc.Delete(context.Background(), v.VehicleID), ErrNotFound)
	_, err = svc.Get(context.Background(), v.VehicleID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateVehicle_ClearLGUReleasesToSharedFleet(t *testing.T) {
	svc := setupVehicleTest(t)
	lgu := uuid.New()
	v, err := svc.Create(context.Background(), CreateInput{
		LGUID: &lgu, PlateNumber: "SKD-1234", Make: "Toyota",
	})
	require.NoError(t, err)
	require.NotNil(t, v.LGUID)

	got, err := svc.Update(context.Background(), v.VehicleID, UpdateInput{ClearLGU: true})
	require.NoError(t, err)
	assert.Nil(t, got.LGUID)

	// ClearLGU wins even when an lgu_id is sent alongside it.
	other := uuid.New()
	got, err = svc.Update(context.Background(), v.VehicleID, UpdateInput{LGUID: &other, ClearLGU: true})
	require.NoError(t, err)
	assert.Nil(t, got.LGUID)
}
