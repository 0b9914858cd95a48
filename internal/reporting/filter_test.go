package reporting

import (
	"testing"

	"emis-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tenant filter keeps owned + unassigned assets (shared-asset rule).
func TestFilterByTenant_OwnedAndUnassigned(t *testing.T) {
	lgu1 := uuid.New()
	lgu2 := uuid.New()
	buildings := []models.Building{
		{FSBDID: uuid.New(), LGUID: &lgu1, Name: "City Hall"},
		{FSBDID: uuid.New(), LGUID: nil, Name: "Shared Depot"},
		{FSBDID: uuid.New(), LGUID: &lgu2, Name: "Other Hall"},
	}

	got := FilterByTenant(buildings, lgu1.String())
	require.Len(t, got, 2)
	assert.Equal(t, "City Hall", got[0].Name)
	assert.Equal(t, "Shared Depot", got[1].Name)
}

// Empty tenant id is the system-wide view: input returned unchanged.
func TestFilterByTenant_SystemWide(t *testing.T) {
	lgu := uuid.New()
	vehicles := []models.Vehicle{
		{VehicleID: uuid.New(), LGUID: &lgu, PlateNumber: "AAA-1111"},
		{VehicleID: uuid.New(), PlateNumber: "BBB-2222"},
	}

	got := FilterByTenant(vehicles, "")
	assert.Equal(t, vehicles, got)
}

func TestFilterByTenant_NoMatches(t *testing.T) {
	lgu := uuid.New()
	buildings := []models.Building{
		{FSBDID: uuid.New(), LGUID: &lgu},
	}
	got := FilterByTenant(buildings, uuid.New().String())
	assert.Empty(t, got)
}
