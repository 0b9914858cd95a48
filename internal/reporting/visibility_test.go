package reporting

import (
	"testing"

	"emis-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestVisibility_EitherIDRule(t *testing.T) {
	b := models.Building{FSBDID: uuid.New()}
	v := models.Vehicle{VehicleID: uuid.New()}
	vis := NewVisibility([]models.Building{b}, []models.Vehicle{v})

	hidden := uuid.New()
	findings := []models.SEUFinding{
		{FindingID: uuid.New(), FSBDID: &b.FSBDID},
		{FindingID: uuid.New(), VehicleID: &v.VehicleID},
		{FindingID: uuid.New(), FSBDID: &hidden},
		{FindingID: uuid.New()}, // malformed, neither set
	}

	got := vis.FilterFindings(findings)
	require.Len(t, got, 2)
	assert.Equal(t, findings[0].FindingID, got[0].FindingID)
	assert.Equal(t, findings[1].FindingID, got[1].FindingID)
}

func TestVisibility_EquipmentAndReports(t *testing.T) {
	b := models.Building{FSBDID: uuid.New()}
	v := models.Vehicle{VehicleID: uuid.New()}
	vis := NewVisibility([]models.Building{b}, []models.Vehicle{v})

	eq := vis.FilterEquipment([]models.Equipment{
		{EquipmentID: uuid.New(), FSBDID: b.FSBDID},
		{EquipmentID: uuid.New(), FSBDID: uuid.New()},
	})
	assert.Len(t, eq, 1)

	mecr := vis.FilterElectricity([]models.ElectricityReport{
		{ReportID: uuid.New(), FSBDID: b.FSBDID},
		{ReportID: uuid.New(), FSBDID: uuid.New()},
	})
	assert.Len(t, mecr, 1)

	mfcr := vis.FilterFuel([]models.FuelReport{
		{ReportID: uuid.New(), VehicleID: v.VehicleID},
		{ReportID: uuid.New(), VehicleID: uuid.New()},
	})
	assert.Len(t, mfcr, 1)
}

// A project is visible when it references at least one visible
// recommendation.
func TestVisibility_TransitiveProjects(t *testing.T) {
	visibleRec := models.Recommendation{RIOID: uuid.New()}
	projects := []models.Project{
		{PPAID: uuid.New(), RelatedRIOIDs: datatypes.NewJSONSlice([]string{visibleRec.RIOID.String(), uuid.New().String()})},
		{PPAID: uuid.New(), RelatedRIOIDs: datatypes.NewJSONSlice([]string{uuid.New().String()})},
		{PPAID: uuid.New()}, // no links at all
	}

	vis := Visibility{}
	got := vis.FilterProjects(projects, []models.Recommendation{visibleRec})
	require.Len(t, got, 1)
	assert.Equal(t, projects[0].PPAID, got[0].PPAID)
}

func TestAllVisible_Passthrough(t *testing.T) {
	vis := AllVisible()
	gone := uuid.New()

	reports := []models.ElectricityReport{{FSBDID: gone, ReportingYear: 2025, ReportingMonth: 1, KWh: 50}}
	assert.Len(t, vis.FilterElectricity(reports), 1)

	findings := []models.SEUFinding{
		{FSBDID: &gone, Category: "HVAC"},
		{Category: "Malformed"},
	}
	// Even system-wide, a record pointing at no asset at all stays hidden.
	got := vis.FilterFindings(findings)
	require.Len(t, got, 1)
	assert.Equal(t, "HVAC", got[0].Category)
}
