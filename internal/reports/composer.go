package reports

import (
	"context"
	"fmt"
	"sync"
	"time"

	"emis-backend/internal/models"
	"emis-backend/internal/reporting"
	"emis-backend/internal/scope"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// How many asset names the inventory section lists before collapsing the
// rest into "+N more".
const inventoryNameLimit = 5

// ComplianceReport is the assembled multi-section document. It is plain
// data; rendering it into a page or a file is someone else's job.
type ComplianceReport struct {
	GeneratedAt     time.Time           `json:"generated_at"`
	LGUName         string              `json:"lgu_name"`
	Region          string              `json:"region"`
	Province        string              `json:"province"`
	Summary         Summary             `json:"summary"`
	Inventory       Inventory           `json:"inventory"`
	Consumption     Consumption         `json:"consumption"`
	Findings        []FindingRow        `json:"findings"`
	Recommendations []RecommendationRow `json:"recommendations"`
	Projects        []ProjectRow        `json:"projects"`
	Warnings        []string            `json:"warnings,omitempty"`
}

// Summary holds the header KPIs.
type Summary struct {
	BuildingCount        int     `json:"building_count"`
	VehicleCount         int     `json:"vehicle_count"`
	EquipmentCount       int     `json:"equipment_count"`
	FindingCount         int     `json:"finding_count"`
	RecommendationCount  int     `json:"recommendation_count"`
	ProjectCount         int     `json:"project_count"`
	TotalElectricityKWh  float64 `json:"total_electricity_kwh"`
	TotalElectricityCost float64 `json:"total_electricity_cost"`
	TotalFuelLiters      float64 `json:"total_fuel_liters"`
	TotalFuelCost        float64 `json:"total_fuel_cost"`
}

// Inventory lists asset counts with truncated name lists.
type Inventory struct {
	BuildingCount int      `json:"building_count"`
	BuildingNames []string `json:"building_names"`
	VehicleCount  int      `json:"vehicle_count"`
	VehicleNames  []string `json:"vehicle_names"`
}

// TrendRow is one period of one asset's consumption.
type TrendRow struct {
	Period string  `json:"period"`
	Value  float64 `json:"value"`
	Cost   float64 `json:"cost"`
}

// AssetTrend is a per-asset consumption table: rows sorted by period
// ascending with trailing totals, plus the series statistics.
type AssetTrend struct {
	AssetID    string          `json:"asset_id"`
	AssetName  string          `json:"asset_name"`
	Rows       []TrendRow      `json:"rows"`
	TotalValue float64         `json:"total_value"`
	TotalCost  float64         `json:"total_cost"`
	Stats      reporting.Stats `json:"stats"`
}

// Consumption holds the electricity and fuel trend tables.
type Consumption struct {
	Electricity []AssetTrend `json:"electricity"`
	Fuel        []AssetTrend `json:"fuel"`
}

// FindingRow is one SEU finding annotated with its asset label.
type FindingRow struct {
	FindingID   string `json:"finding_id"`
	AssetLabel  string `json:"asset_label"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Method      string `json:"method"`
	Status      string `json:"status"`
}

// RecommendationRow is one RIO with its computed ROI. ROIYears is nil and
// ROILabel is "N/A" when annual savings are zero or negative: the payback
// question has no answer then, so none is invented.
type RecommendationRow struct {
	RIOID                  string   `json:"rio_id"`
	AssetLabel             string   `json:"asset_label"`
	Title                  string   `json:"title"`
	Priority               string   `json:"priority"`
	Status                 string   `json:"status"`
	EstimatedCost          float64  `json:"estimated_cost"`
	EstimatedAnnualSavings float64  `json:"estimated_annual_savings"`
	ROIYears               *float64 `json:"roi_years"`
	ROILabel               string   `json:"roi_label"`
	FindingCount           int      `json:"finding_count"`
}

// ProjectRow is one PPA.
type ProjectRow struct {
	PPAID         string   `json:"ppa_id"`
	ProjectName   string   `json:"project_name"`
	Status        string   `json:"status"`
	EstimatedCost float64  `json:"estimated_cost"`
	ActualCost    float64  `json:"actual_cost"`
	RelatedRIOIDs []string `json:"related_rio_ids"`
}

// Composer builds compliance reports.
type Composer struct {
	DB  *gorm.DB
	Now func() time.Time
}

// sourceData is everything the composer reads, fetched in one fan-out.
type sourceData struct {
	mu              sync.Mutex
	lgu             *models.LGU
	buildings       []models.Building
	vehicles        []models.Vehicle
	equipment       []models.Equipment
	electricity     []models.ElectricityReport
	fuel            []models.FuelReport
	findings        []models.SEUFinding
	recommendations []models.Recommendation
	projects        []models.Project
	warnings        []string
}

func (d *sourceData) warn(section string, err error) {
	log.Warn().Err(err).Str("section", section).Msg("report section load failed")
	d.mu.Lock()
	d.warnings = append(d.warnings, fmt.Sprintf("%s could not be loaded; section is empty", section))
	d.mu.Unlock()
}

// Compose fetches every collection concurrently, then assembles the report.
// A failed read degrades its section to empty with a warning instead of
// failing the whole document; Compose itself only errors on a cancelled
// context.
func (cp *Composer) Compose(ctx context.Context, sc scope.Scope) (*ComplianceReport, error) {
	data := &sourceData{}

	// Fan-out: all reads issued at once, no sequential round-trip chaining.
	// Loaders report store failures as warnings, not errors, so one bad read
	// does not cancel its siblings.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if sc.SystemWide() {
			return nil
		}
		var lgu models.LGU
		if err := cp.DB.WithContext(gctx).Where("lgu_id = ?", sc.TenantID).First(&lgu).Error; err != nil {
			if err != gorm.ErrRecordNotFound {
				data.warn("LGU header", err)
			}
			return nil
		}
		data.lgu = &lgu
		return nil
	})
	g.Go(func() error {
		if err := cp.DB.WithContext(gctx).Find(&data.buildings).Error; err != nil {
			data.warn("buildings", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := cp.DB.WithContext(gctx).Find(&data.vehicles).Error; err != nil {
			data.warn("vehicles", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := cp.DB.WithContext(gctx).Find(&data.equipment).Error; err != nil {
			data.warn("equipment", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := cp.DB.WithContext(gctx).Find(&data.electricity).Error; err != nil {
			data.warn("electricity reports", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := cp.DB.WithContext(gctx).Find(&data.fuel).Error; err != nil {
			data.warn("fuel reports", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := cp.DB.WithContext(gctx).Find(&data.findings).Error; err != nil {
			data.warn("SEU findings", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := cp.DB.WithContext(gctx).Find(&data.recommendations).Error; err != nil {
			data.warn("recommendations", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := cp.DB.WithContext(gctx).Find(&data.projects).Error; err != nil {
			data.warn("projects", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return cp.assemble(sc, data), nil
}

// assemble is the pure composition step over already-fetched data.
func (cp *Composer) assemble(sc scope.Scope, data *sourceData) *ComplianceReport {
	buildings := reporting.FilterByTenant(data.buildings, sc.TenantID)
	vehicles := reporting.FilterByTenant(data.vehicles, sc.TenantID)
	vis := reporting.AllVisible()
	if !sc.SystemWide() {
		vis = reporting.NewVisibility(buildings, vehicles)
	}
	ix := reporting.BuildNameIndex(buildings, vehicles)

	equipment := vis.FilterEquipment(data.equipment)
	electricity := vis.FilterElectricity(data.electricity)
	fuelReports := vis.FilterFuel(data.fuel)
	findings := vis.FilterFindings(data.findings)
	recommendations := vis.FilterRecommendations(data.recommendations)
	projects := vis.FilterProjects(data.projects, recommendations)

	now := time.Now
	if cp.Now != nil {
		now = cp.Now
	}

	report := &ComplianceReport{
		GeneratedAt: now(),
		LGUName:     "All LGUs",
		Warnings:    data.warnings,
	}
	if data.lgu != nil {
		report.LGUName = data.lgu.Name
		report.Region = data.lgu.Region
		report.Province = data.lgu.Province
	}

	report.Summary = Summary{
		BuildingCount:       len(buildings),
		VehicleCount:        len(vehicles),
		EquipmentCount:      len(equipment),
		FindingCount:        len(findings),
		RecommendationCount: len(recommendations),
		ProjectCount:        len(projects),
	}
	for _, r := range electricity {
		report.Summary.TotalElectricityKWh += r.KWh
		report.Summary.TotalElectricityCost += r.Cost
	}
	for _, r := range fuelReports {
		report.Summary.TotalFuelLiters += r.Liters
		report.Summary.TotalFuelCost += r.Cost
	}

	report.Inventory = Inventory{
		BuildingCount: len(buildings),
		BuildingNames: truncateNames(buildingNames(buildings)),
		VehicleCount:  len(vehicles),
		VehicleNames:  truncateNames(vehiclePlates(vehicles)),
	}

	report.Consumption = Consumption{
		Electricity: electricityTrends(buildings, electricity, ix),
		Fuel:        fuelTrends(vehicles, fuelReports, ix),
	}

	report.Findings = make([]FindingRow, 0, len(findings))
	for _, f := range findings {
		report.Findings = append(report.Findings, FindingRow{
			FindingID:   f.FindingID.String(),
			AssetLabel:  ix.ColumnsLabel(f.FSBDID, f.VehicleID),
			Category:    f.Category,
			Description: f.Description,
			Method:      f.Method,
			Status:      f.Status,
		})
	}

	report.Recommendations = make([]RecommendationRow, 0, len(recommendations))
	for _, r := range recommendations {
		years, label := ROIYears(r.EstimatedCost, r.EstimatedAnnualSavings)
		report.Recommendations = append(report.Recommendations, RecommendationRow{
			RIOID:                  r.RIOID.String(),
			AssetLabel:             ix.ColumnsLabel(r.FSBDID, r.VehicleID),
			Title:                  r.Title,
			Priority:               r.Priority,
			Status:                 r.Status,
			EstimatedCost:          r.EstimatedCost,
			EstimatedAnnualSavings: r.EstimatedAnnualSavings,
			ROIYears:               years,
			ROILabel:               label,
			FindingCount:           len(r.SEUFindingIDs),
		})
	}

	report.Projects = make([]ProjectRow, 0, len(projects))
	for _, p := range projects {
		report.Projects = append(report.Projects, ProjectRow{
			PPAID:         p.PPAID.String(),
			ProjectName:   p.ProjectName,
			Status:        p.Status,
			EstimatedCost: p.EstimatedCost,
			ActualCost:    p.ActualCost,
			RelatedRIOIDs: p.RelatedRIOIDs,
		})
	}

	return report
}

// ROIYears computes payback time in years (cost ÷ annual savings). With
// savings at or below zero there is nothing to divide by: nil + "N/A".
func ROIYears(cost, annualSavings float64) (*float64, string) {
	if annualSavings <= 0 {
		return nil, reporting.LabelNA
	}
	years := cost / annualSavings
	return &years, fmt.Sprintf("%.1f years", years)
}

func buildingNames(buildings []models.Building) []string {
	names := make([]string, 0, len(buildings))
	for _, b := range buildings {
		names = append(names, b.Name)
	}
	return names
}

func vehiclePlates(vehicles []models.Vehicle) []string {
	plates := make([]string, 0, len(vehicles))
	for _, v := range vehicles {
		plates = append(plates, v.PlateNumber)
	}
	return plates
}

// truncateNames keeps the first few names and collapses the rest into a
// "+N more" tail entry.
func truncateNames(names []string) []string {
	if len(names) <= inventoryNameLimit {
		return names
	}
	out := make([]string, inventoryNameLimit, inventoryNameLimit+1)
	copy(out, names[:inventoryNameLimit])
	return append(out, fmt.Sprintf("+%d more", len(names)-inventoryNameLimit))
}

func electricityTrends(buildings []models.Building, reports []models.ElectricityReport, ix reporting.NameIndex) []AssetTrend {
	byAsset := make(map[string][]models.ElectricityReport)
	for _, r := range reports {
		key := r.FSBDID.String()
		byAsset[key] = append(byAsset[key], r)
	}
	trends := make([]AssetTrend, 0, len(byAsset))
	// Iterate buildings in inventory order so table order is stable.
	for _, b := range buildings {
		assetReports := byAsset[b.FSBDID.String()]
		if len(assetReports) == 0 {
			continue
		}
		obs := make([]reporting.Observation, 0, len(assetReports))
		totals := &reporting.GroupTotals{}
		costs := &reporting.GroupTotals{}
		for _, r := range assetReports {
			obs = append(obs, reporting.Observation{Year: r.ReportingYear, Month: r.ReportingMonth, Value: r.KWh})
			key := reporting.PeriodKey(r.ReportingYear, r.ReportingMonth)
			totals.Add(key, r.KWh)
			costs.Add(key, r.Cost)
		}
		trends = append(trends, assetTrend(b.FSBDID.String(), ix.BuildingName(b.FSBDID), obs, totals, costs))
	}
	return trends
}

func fuelTrends(vehicles []models.Vehicle, reports []models.FuelReport, ix reporting.NameIndex) []AssetTrend {
	byAsset := make(map[string][]models.FuelReport)
	for _, r := range reports {
		key := r.VehicleID.String()
		byAsset[key] = append(byAsset[key], r)
	}
	trends := make([]AssetTrend, 0, len(byAsset))
	for _, v := range vehicles {
		assetReports := byAsset[v.VehicleID.String()]
		if len(assetReports) == 0 {
			continue
		}
		obs := make([]reporting.Observation, 0, len(assetReports))
		totals := &reporting.GroupTotals{}
		costs := &reporting.GroupTotals{}
		for _, r := range assetReports {
			obs = append(obs, reporting.Observation{Year: r.ReportingYear, Month: r.ReportingMonth, Value: r.Liters})
			key := reporting.PeriodKey(r.ReportingYear, r.ReportingMonth)
			totals.Add(key, r.Liters)
			costs.Add(key, r.Cost)
		}
		trends = append(trends, assetTrend(v.VehicleID.String(), ix.VehicleName(v.VehicleID), obs, totals, costs))
	}
	return trends
}

// assetTrend builds one trend table: rows in ascending period order with a
// trailing total, plus series statistics.
func assetTrend(assetID, assetName string, obs []reporting.Observation, totals, costs *reporting.GroupTotals) AssetTrend {
	set := reporting.AlignSeries(obs,
		func(reporting.Observation) string { return assetID },
		func(o reporting.Observation) string { return reporting.PeriodKey(o.Year, o.Month) },
		func(o reporting.Observation) float64 { return o.Value },
	)
	trend := AssetTrend{
		AssetID:   assetID,
		AssetName: assetName,
		Rows:      make([]TrendRow, 0, len(set.Periods)),
		Stats:     reporting.Compute(obs),
	}
	for _, period := range set.Periods {
		row := TrendRow{Period: period, Value: totals.Total(period), Cost: costs.Total(period)}
		trend.TotalValue += row.Value
		trend.TotalCost += row.Cost
		trend.Rows = append(trend.Rows, row)
	}
	return trend
}
