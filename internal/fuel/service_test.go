package fuel

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

func setupFuelTest(t *testing.T) *Service {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.FuelReport{}))
	return &Service{DB: db}
}

func TestCreate_DuplicateVehiclePeriodRejected(t *testing.T) {
	svc := setupFuelTest(t)
	vehicle := uuid.New()

	_, err := svc.Create(context.Background(), CreateInput{
		VehicleID: vehicle, ReportingYear: 2025, ReportingMonth: 6,
		Liters: 80, DistanceKM: 950, Cost: 5200,
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), CreateInput{
		VehicleID: vehicle, ReportingYear: 2025, ReportingMonth: 6, Liters: 90,
	})
	assert.ErrorIs(t, err, ErrDuplicatePeriod)
}

func TestCreate_VehicleRequired(t *testing.T) {
	svc := setupFuelTest(t)
	_, err := svc.Create(context.Background(), CreateInput{ReportingYear: 2025, ReportingMonth: 6})
	assert.ErrorIs(t, err, ErrVehicleRequired)
}

func TestListByVehicle_ScopedAndOrdered(t *testing.T) {
	svc := setupFuelTest(t)
	mine := uuid.New()
	other := uuid.New()

	for _, in := range []CreateInput{
		{VehicleID: mine, ReportingYear: 2025, ReportingMonth: 2, Liters: 70},
		{VehicleID: mine, ReportingYear: 2025, ReportingMonth: 1, Liters: 60},
		{VehicleID: other, ReportingYear: 2025, ReportingMonth: 1, Liters: 99},
	} {
		_, err := svc.Create(context.Background(), in)
		require.NoError(t, err)
	}

	items, err := svc.ListByVehicle(context.Background(), mine)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].ReportingMonth)
	assert.InDelta(t, 60, items[0].Liters, 1e-9)
}
