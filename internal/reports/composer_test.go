package reports

import (
	"context"
	"fmt"
	"testing"

	"emis-backend/internal/models"
	"emis-backend/internal/reporting"
	"emis-backend/internal/scope"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func setupComposerTest(t *testing.T) (*Composer, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.LGU{}, &models.Building{}, &models.Vehicle{}, &models.Equipment{},
		&models.ElectricityReport{}, &models.FuelReport{}, &models.SEUFinding{},
		&models.Recommendation{}, &models.Project{},
	))
	return &Composer{DB: db}, db
}

func TestCompose_TenantScoping(t *testing.T) {
	cp, db := setupComposerTest(t)

	lgu := models.LGU{Name: "Pagadian City", Region: "IX", Province: "Zamboanga del Sur"}
	other := models.LGU{Name: "Dipolog City", Region: "IX", Province: "Zamboanga del Norte"}
	require.NoError(t, db.Create(&lgu).Error)
	require.NoError(t, db.Create(&other).Error)

	owned := models.Building{Name: "City Hall", LGUID: &lgu.LGUID}
	shared := models.Building{Name: "Shared Depot"}
	foreign := models.Building{Name: "Other Hall", LGUID: &other.LGUID}
	require.NoError(t, db.Create(&owned).Error)
	require.NoError(t, db.Create(&shared).Error)
	require.NoError(t, db.Create(&foreign).Error)

	report, err := cp.Compose(context.Background(), scope.Scope{TenantID: lgu.LGUID.String()})
	require.NoError(t, err)

	assert.Equal(t, "Pagadian City", report.LGUName)
	assert.Equal(t, 2, report.Summary.BuildingCount)
	assert.ElementsMatch(t, []string{"City Hall", "Shared Depot"}, report.Inventory.BuildingNames)
}

func TestCompose_SystemWideSeesEverything(t *testing.T) {
	cp, db := setupComposerTest(t)

	lgu := models.LGU{Name: "Pagadian City", Region: "IX", Province: "Zamboanga del Sur"}
	require.NoError(t, db.Create(&lgu).Error)
	require.NoError(t, db.Create(&models.Building{Name: "City Hall", LGUID: &lgu.LGUID}).Error)
	require.NoError(t, db.Create(&models.Building{Name: "Shared Depot"}).Error)

	report, err := cp.Compose(context.Background(), scope.Scope{})
	require.NoError(t, err)

	assert.Equal(t, "All LGUs", report.LGUName)
	assert.Equal(t, 2, report.Summary.BuildingCount)
}

func TestCompose_InventoryTruncation(t *testing.T) {
	cp, db := setupComposerTest(t)

	for i := 0; i < 8; i++ {
		require.NoError(t, db.Create(&models.Building{Name: fmt.Sprintf("Building %d", i)}).Error)
	}

	report, err := cp.Compose(context.Background(), scope.Scope{})
	require.NoError(t, err)

	assert.Equal(t, 8, report.Inventory.BuildingCount)
	require.Len(t, report.Inventory.BuildingNames, 6)
	assert.Equal(t, "+3 more", report.Inventory.BuildingNames[5])
}

func TestCompose_TrendRowsSortedWithTotals(t *testing.T) {
	cp, db := setupComposerTest(t)

	b := models.Building{Name: "City Hall"}
	require.NoError(t, db.Create(&b).Error)
	// Inserted out of chronological order on purpose.
	for _, r := range []models.ElectricityReport{
		{FSBDID: b.FSBDID, ReportingYear: 2025, ReportingMonth: 3, KWh: 150, Cost: 1500},
		{FSBDID: b.FSBDID, ReportingYear: 2025, ReportingMonth: 1, KWh: 100, Cost: 1000},
		{FSBDID: b.FSBDID, ReportingYear: 2025, ReportingMonth: 2, KWh: 90, Cost: 900},
	} {
		report := r
		require.NoError(t, db.Create(&report).Error)
	}

	report, err := cp.Compose(context.Background(), scope.Scope{})
	require.NoError(t, err)

	require.Len(t, report.Consumption.Electricity, 1)
	trend := report.Consumption.Electricity[0]
	assert.Equal(t, "City Hall", trend.AssetName)
	require.Len(t, trend.Rows, 3)
	assert.Equal(t, "2025-01", trend.Rows[0].Period)
	assert.Equal(t, "2025-02", trend.Rows[1].Period)
	assert.Equal(t, "2025-03", trend.Rows[2].Period)
	assert.InDelta(t, 340, trend.TotalValue, 1e-9)
	assert.InDelta(t, 3400, trend.TotalCost, 1e-9)
	assert.InDelta(t, 150, trend.Stats.Peak, 1e-9)
}

func TestCompose_DanglingFindingRef(t *testing.T) {
	cp, db := setupComposerTest(t)

	b := models.Building{Name: "City Hall"}
	require.NoError(t, db.Create(&b).Error)
	gone := uuid.New()
	require.NoError(t, db.Create(&models.SEUFinding{FSBDID: &b.FSBDID, Category: "HVAC", Status: "Open"}).Error)
	require.NoError(t, db.Create(&models.SEUFinding{FSBDID: &gone, Category: "Lighting", Status: "Open"}).Error)

	report, err := cp.Compose(context.Background(), scope.Scope{})
	require.NoError(t, err)

	require.Len(t, report.Findings, 2)
	labels := []string{report.Findings[0].AssetLabel, report.Findings[1].AssetLabel}
	assert.Contains(t, labels, "City Hall")
	assert.Contains(t, labels, reporting.UnknownBuilding)
}

func TestCompose_ROIPlaceholder(t *testing.T) {
	cp, db := setupComposerTest(t)

	b := models.Building{Name: "City Hall"}
	require.NoError(t, db.Create(&b).Error)
	payback := models.Recommendation{
		FSBDID: &b.FSBDID, Title: "LED retrofit",
		Priority: models.PriorityHigh, Status: models.RIOStatusIdentified,
		EstimatedCost: 100000, EstimatedAnnualSavings: 40000,
	}
	noSavings := models.Recommendation{
		FSBDID: &b.FSBDID, Title: "Signage",
		Priority: models.PriorityLow, Status: models.RIOStatusIdentified,
		EstimatedCost: 5000, EstimatedAnnualSavings: 0,
	}
	require.NoError(t, db.Create(&payback).Error)
	require.NoError(t, db.Create(&noSavings).Error)

	report, err := cp.Compose(context.Background(), scope.Scope{})
	require.NoError(t, err)
	require.Len(t, report.Recommendations, 2)

	byTitle := map[string]RecommendationRow{}
	for _, row := range report.Recommendations {
		byTitle[row.Title] = row
	}
	require.NotNil(t, byTitle["LED retrofit"].ROIYears)
	assert.InDelta(t, 2.5, *byTitle["LED retrofit"].ROIYears, 1e-9)
	assert.Equal(t, "2.5 years", byTitle["LED retrofit"].ROILabel)
	assert.Nil(t, byTitle["Signage"].ROIYears)
	assert.Equal(t, "N/A", byTitle["Signage"].ROILabel)
}

func TestCompose_ProjectVisibilityIsTransitive(t *testing.T) {
	cp, db := setupComposerTest(t)

	lgu := models.LGU{Name: "Pagadian City", Region: "IX", Province: "Zamboanga del Sur"}
	other := models.LGU{Name: "Dipolog City", Region: "IX", Province: "Zamboanga del Norte"}
	require.NoError(t, db.Create(&lgu).Error)
	require.NoError(t, db.Create(&other).Error)

	mine := models.Building{Name: "City Hall", LGUID: &lgu.LGUID}
	theirs := models.Building{Name: "Other Hall", LGUID: &other.LGUID}
	require.NoError(t, db.Create(&mine).Error)
	require.NoError(t, db.Create(&theirs).Error)

	myRIO := models.Recommendation{FSBDID: &mine.FSBDID, Title: "Mine", Priority: models.PriorityLow, Status: models.RIOStatusIdentified}
	theirRIO := models.Recommendation{FSBDID: &theirs.FSBDID, Title: "Theirs", Priority: models.PriorityLow, Status: models.RIOStatusIdentified}
	require.NoError(t, db.Create(&myRIO).Error)
	require.NoError(t, db.Create(&theirRIO).Error)

	visible := models.Project{ProjectName: "Retrofit", Status: models.PPAStatusPlanned, RelatedRIOIDs: datatypes.NewJSONSlice([]string{myRIO.RIOID.String()})}
	hidden := models.Project{ProjectName: "Foreign", Status: models.PPAStatusPlanned, RelatedRIOIDs: datatypes.NewJSONSlice([]string{theirRIO.RIOID.String()})}
	require.NoError(t, db.Create(&visible).Error)
	require.NoError(t, db.Create(&hidden).Error)

	report, err := cp.Compose(context.Background(), scope.Scope{TenantID: lgu.LGUID.String()})
	require.NoError(t, err)

	require.Len(t, report.Projects, 1)
	assert.Equal(t, "Retrofit", report.Projects[0].ProjectName)
}

func TestCompose_FailedReadDegradesSection(t *testing.T) {
	cp, db := setupComposerTest(t)

	hall := models.Building{Name: "City Hall"}
	require.NoError(t, db.Create(&hall).Error)
	require.NoError(t, db.Create(&models.Equipment{
		FSBDID: hall.FSBDID, Name: "Chiller", PowerRatingKW: 2, HoursPerDay: 8, MonthlyKWh: 480,
	}).Error)
	require.NoError(t, db.Create(&models.ElectricityReport{
		FSBDID: hall.FSBDID, ReportingYear: 2025, ReportingMonth: 1, KWh: 120, Cost: 1200,
	}).Error)

	// Simulate a broken store for one collection only.
	require.NoError(t, db.Migrator().DropTable(&models.Equipment{}))

	report, err := cp.Compose(context.Background(), scope.Scope{})
	require.NoError(t, err)

	// The equipment section is empty with a warning; every sibling section
	// still carries its data.
	assert.Equal(t, 0, report.Summary.EquipmentCount)
	assert.Contains(t, report.Warnings, "equipment could not be loaded; section is empty")
	assert.Equal(t, 1, report.Summary.BuildingCount)
	assert.InDelta(t, 120, report.Summary.TotalElectricityKWh, 1e-9)
}
