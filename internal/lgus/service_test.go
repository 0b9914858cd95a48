package lgus

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

func setupLGUTest(t *testing.T) *Service {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.LGU{}))
	return &Service{DB: db}
}

func TestCreateLGU(t *testing.T) {
	svc := setupLGUTest(t)

	_, err := svc.Create(context.Background(), CreateInput{Region: "IX"})
	assert.ErrorIs(t, err, ErrNameRequired)

	lgu, err := svc.Create(context.Background(), CreateInput{
		Name: "Pagadian City", Region: "IX", Province: "Zamboanga del Sur",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, lgu.LGUID)
}

func TestListLGUs_SortedByName(t *testing.T) {
	svc := setupLGUTest(t)
	for _, name := range []string{"Zamboanga City", "Dipolog City", "Pagadian City"} {
		_, err := svc.Create(context.Background(), CreateInput{Name: name, Region: "IX", Province: "x"})
		require.NoError(t, err)
	}

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Dipolog City", items[0].Name)
	assert.Equal(t, "Zamboanga City", items[2].Name)
}

func TestUpdateLGU_PartialFields(t *testing.T) {
	svc := setupLGUTest(t)
	lgu, err := svc.Create(context.Background(), CreateInput{
		Name: "Pagadian City", Region: "IX", Province: "Zamboanga del Sur",
	})
	require.NoError(t, err)

	province := "Zamboanga Sibugay"
	updated, err := svc.Update(context.Background(), lgu.LGUID, UpdateInput{Province: &province})
	require.NoError(t, err)
	assert.Equal(t, "Pagadian City", updated.Name)
	assert.Equal(t, "Zamboanga Sibugay", updated.Province)
}

func TestDeleteLGU_Missing(t *testing.T) {
	svc := setupLGUTest(t)
	assert.ErrorIs(t, svc.Delete(context.Background(), uuid.New()), ErrNotFound)
}
