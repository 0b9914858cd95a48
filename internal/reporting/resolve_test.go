package reporting

import (
	"testing"

	"emis-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNameIndex_Resolution(t *testing.T) {
	b := models.Building{FSBDID: uuid.New(), Name: "Municipal Hall"}
	v := models.Vehicle{VehicleID: uuid.New(), PlateNumber: "SGA-1234"}
	ix := BuildNameIndex([]models.Building{b}, []models.Vehicle{v})

	assert.Equal(t, "Municipal Hall", ix.BuildingName(b.FSBDID))
	assert.Equal(t, "SGA-1234", ix.VehicleName(v.VehicleID))
}

// A reference to a since-deleted asset degrades to a placeholder, never an
// error.
func TestNameIndex_DanglingReference(t *testing.T) {
	ix := BuildNameIndex(nil, nil)
	gone := uuid.New()

	assert.Equal(t, UnknownBuilding, ix.BuildingName(gone))
	assert.Equal(t, UnknownVehicle, ix.VehicleName(gone))
	assert.Equal(t, LabelNA, ix.RefLabel(AssetRef{}))
	assert.Equal(t, UnknownBuilding, ix.ColumnsLabel(&gone, nil))
	assert.Equal(t, LabelNA, ix.ColumnsLabel(nil, nil))
}

// Building the index twice from the same slices yields identical results.
func TestNameIndex_Idempotent(t *testing.T) {
	buildings := []models.Building{
		{FSBDID: uuid.New(), Name: "A"},
		{FSBDID: uuid.New(), Name: "B"},
	}
	vehicles := []models.Vehicle{
		{VehicleID: uuid.New(), PlateNumber: "XYZ-0001"},
	}

	first := BuildNameIndex(buildings, vehicles)
	second := BuildNameIndex(buildings, vehicles)
	assert.Equal(t, first, second)
}

func TestNewAssetRef_XOR(t *testing.T) {
	bID := uuid.New()
	vID := uuid.New()

	ref, err := NewAssetRef(&bID, nil)
	assert.NoError(t, err)
	assert.Equal(t, AssetBuilding, ref.Kind)
	assert.Equal(t, bID, ref.ID)

	ref, err = NewAssetRef(nil, &vID)
	assert.NoError(t, err)
	assert.Equal(t, AssetVehicle, ref.Kind)

	_, err = NewAssetRef(nil, nil)
	assert.ErrorIs(t, err, ErrAssetRefRequired)

	_, err = NewAssetRef(&bID, &vID)
	assert.ErrorIs(t, err, ErrAssetRefAmbiguous)
}
