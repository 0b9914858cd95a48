package dashboard

import (
	"context"
	"sync"

	"emis-backend/internal/models"
	"emis-backend/internal/reporting"
	"emis-backend/internal/scope"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	topConsumerLimit = 3
	rankingLimit     = 10
)

// KPISet is the dashboard header numbers.
type KPISet struct {
	TotalElectricityKWh  float64 `json:"total_electricity_kwh"`
	TotalElectricityCost float64 `json:"total_electricity_cost"`
	TotalFuelLiters      float64 `json:"total_fuel_liters"`
	TotalFuelCost        float64 `json:"total_fuel_cost"`
	BuildingCount        int     `json:"building_count"`
	VehicleCount         int     `json:"vehicle_count"`
	EquipmentCount       int     `json:"equipment_count"`
	OpenFindingCount     int     `json:"open_finding_count"`
}

// Snapshot is one fully assembled dashboard view.
type Snapshot struct {
	KPIs                    KPISet                  `json:"kpis"`
	TopElectricityConsumers []reporting.RankedEntry `json:"top_electricity_consumers"`
	TopFuelConsumers        []reporting.RankedEntry `json:"top_fuel_consumers"`
	EquipmentRanking        []reporting.RankedEntry `json:"equipment_ranking"`
	ElectricitySeries       reporting.SeriesSet     `json:"electricity_series"`
	FuelSeries              reporting.SeriesSet     `json:"fuel_series"`
}

// Service builds and caches dashboard snapshots. Each tenant scope gets its
// own cache and generation counter, so refreshes race freely within a scope
// but snapshots never cross scopes.
type Service struct {
	DB *gorm.DB

	mu    sync.Mutex
	views map[string]*view
}

// view is the cached dashboard for one tenant scope. A stale refresh can
// only be displaced by a newer load of the same scope.
type view struct {
	loader  Loader
	mu      sync.RWMutex
	current *Snapshot
}

func (v *view) snapshot() *Snapshot {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.current
}

func (s *Service) view(sc scope.Scope) *view {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.views == nil {
		s.views = map[string]*view{}
	}
	v, ok := s.views[sc.TenantID]
	if !ok {
		v = &view{}
		s.views[sc.TenantID] = v
	}
	return v
}

// Current returns the last applied snapshot for the scope, nil before its
// first refresh.
func (s *Service) Current(sc scope.Scope) *Snapshot {
	return s.view(sc).snapshot()
}

// Refresh builds a snapshot for the given scope and installs it in the
// scope's cache unless a newer refresh of that scope started while this one
// was fetching. Either way the caller gets a snapshot of its own scope.
func (s *Service) Refresh(ctx context.Context, sc scope.Scope) (*Snapshot, error) {
	v := s.view(sc)
	gen := v.loader.Begin()

	snap, err := s.build(ctx, sc)
	if err != nil {
		return nil, err
	}

	applied := v.loader.Apply(gen, func() {
		v.mu.Lock()
		v.current = snap
		v.mu.Unlock()
	})
	if !applied {
		if latest := v.snapshot(); latest != nil {
			return latest, nil
		}
	}
	return snap, nil
}

func (s *Service) build(ctx context.Context, sc scope.Scope) (*Snapshot, error) {
	var (
		buildings   []models.Building
		vehicles    []models.Vehicle
		equipment   []models.Equipment
		electricity []models.ElectricityReport
		fuelReports []models.FuelReport
		findings    []models.SEUFinding
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.DB.WithContext(gctx).Find(&buildings).Error })
	g.Go(func() error { return s.DB.WithContext(gctx).Find(&vehicles).Error })
	g.Go(func() error { return s.DB.WithContext(gctx).Find(&equipment).Error })
	g.Go(func() error { return s.DB.WithContext(gctx).Find(&electricity).Error })
	g.Go(func() error { return s.DB.WithContext(gctx).Find(&fuelReports).Error })
	g.Go(func() error { return s.DB.WithContext(gctx).Find(&findings).Error })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	buildings = reporting.FilterByTenant(buildings, sc.TenantID)
	vehicles = reporting.FilterByTenant(vehicles, sc.TenantID)
	vis := reporting.AllVisible()
	if !sc.SystemWide() {
		vis = reporting.NewVisibility(buildings, vehicles)
	}
	ix := reporting.BuildNameIndex(buildings, vehicles)

	equipment = vis.FilterEquipment(equipment)
	electricity = vis.FilterElectricity(electricity)
	fuelReports = vis.FilterFuel(fuelReports)
	findings = vis.FilterFindings(findings)

	snap := &Snapshot{
		KPIs: KPISet{
			BuildingCount:  len(buildings),
			VehicleCount:   len(vehicles),
			EquipmentCount: len(equipment),
		},
	}
	for _, r := range electricity {
		snap.KPIs.TotalElectricityKWh += r.KWh
		snap.KPIs.TotalElectricityCost += r.Cost
	}
	for _, r := range fuelReports {
		snap.KPIs.TotalFuelLiters += r.Liters
		snap.KPIs.TotalFuelCost += r.Cost
	}
	for _, f := range findings {
		if f.Status == "Open" {
			snap.KPIs.OpenFindingCount++
		}
	}

	// Rankings are labeled by display name, with the defined fallbacks for
	// reports pointing at deleted assets.
	electricityByName := reporting.SumBy(electricity,
		func(r models.ElectricityReport) string { return ix.BuildingName(r.FSBDID) },
		func(r models.ElectricityReport) float64 { return r.KWh },
	)
	fuelByName := reporting.SumBy(fuelReports,
		func(r models.FuelReport) string { return ix.VehicleName(r.VehicleID) },
		func(r models.FuelReport) float64 { return r.Liters },
	)
	equipmentByName := reporting.SumBy(equipment,
		func(e models.Equipment) string { return e.Name },
		func(e models.Equipment) float64 { return e.MonthlyKWh },
	)
	snap.TopElectricityConsumers = reporting.TopN(electricityByName, topConsumerLimit)
	snap.TopFuelConsumers = reporting.TopN(fuelByName, topConsumerLimit)
	snap.EquipmentRanking = reporting.TopN(equipmentByName, rankingLimit)

	snap.ElectricitySeries = reporting.AlignSeries(electricity,
		func(r models.ElectricityReport) string { return ix.BuildingName(r.FSBDID) },
		func(r models.ElectricityReport) string { return reporting.PeriodKey(r.ReportingYear, r.ReportingMonth) },
		func(r models.ElectricityReport) float64 { return r.KWh },
	)
	snap.FuelSeries = reporting.AlignSeries(fuelReports,
		func(r models.FuelReport) string { return ix.VehicleName(r.VehicleID) },
		func(r models.FuelReport) string { return reporting.PeriodKey(r.ReportingYear, r.ReportingMonth) },
		func(r models.FuelReport) float64 { return r.Liters },
	)

	return snap, nil
}
