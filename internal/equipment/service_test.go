package equipment

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

func setupEquipmentTest(t *testing.T) (*Service, *models.Building) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Building{}, &models.Equipment{}))

	building := models.Building{Name: "City Hall"}
	require.NoError(t, db.Create(&building).Error)
	return &Service{DB: db}, &building
}

func TestCreate_DerivesMonthlyKWh(t *testing.T) {
	svc, b := setupEquipmentTest(t)

	e, err := svc.Create(context.Background(), CreateInput{
		FSBDID: b.FSBDID, Name: "Aircon", PowerRatingKW: 2.5, HoursPerDay: 8,
	})
	require.NoError(t, err)
	assert.InDelta(t, 600, e.MonthlyKWh, 1e-9) // 2.5 * 8 * 30
}

func TestCreate_UnknownBuildingRejected(t *testing.T) {
	svc, _ := setupEquipmentTest(t)

	_, err := svc.Create(context.Background(), CreateInput{
		FSBDID: uuid.New(), Name: "Aircon", PowerRatingKW: 1, HoursPerDay: 1,
	})
	assert.ErrorIs(t, err, ErrBuildingNotFound)
}

func TestUpdate_RecomputesFromNewPair(t *testing.T) {
	svc, b := setupEquipmentTest(t)

	e, err := svc.Create(context.Background(), CreateInput{
		FSBDID: b.FSBDID, Name: "Aircon", PowerRatingKW: 2.5, HoursPerDay: 8,
	})
	require.NoError(t, err)

	hours := 4.0
	updated, err := svc.Update(context.Background(), e.EquipmentID, UpdateInput{HoursPerDay: &hours})
	require.NoError(t, err)
	assert.InDelta(t, 300, updated.MonthlyKWh, 1e-9) // 2.5 * 4 * 30
	assert.InDelta(t, 2.5, updated.PowerRatingKW, 1e-9)
}

func TestUpdate_NameOnlyStillRecomputes(t *testing.T) {
	svc, b := setupEquipmentTest(t)

	e, err := svc.Create(context.Background(), CreateInput{
		FSBDID: b.FSBDID, Name: "Aircon", PowerRatingKW: 2, HoursPerDay: 10,
	})
	require.NoError(t, err)
	// Poke a stale value into the row to prove the service never trusts it.
	require.NoError(t, svc.DB.Model(&models.Equipment{}).
		Where("equipment_id = ?", e.EquipmentID).
		Update("monthly_kwh", 9999).Error)

	name := "Aircon Unit 2"
	updated, err := svc.Update(context.Background(), e.EquipmentID, UpdateInput{Name: &name})
	require.NoError(t, err)
	assert.InDelta(t, 600, updated.MonthlyKWh, 1e-9) // 2 * 10 * 30
}

func TestUpdate_Missing(t *testing.T) {
	svc, _ := setupEquipmentTest(t)
	name := "x"
	_, err := svc.Update(context.Background(), uuid.New(), UpdateInput{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
}
