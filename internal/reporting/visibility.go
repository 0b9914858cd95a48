package reporting

import (
	"emis-backend/internal/models"

	"github.com/google/uuid"
)

// Visibility is the tenant-derived allow-list: the building and vehicle ids
// visible under the current tenant. Build it from already tenant-filtered
// asset lists and apply it to everything that references assets.
type Visibility struct {
	all       bool
	buildings map[uuid.UUID]bool
	vehicles  map[uuid.UUID]bool
}

// AllVisible is the system-wide view: every record passes, including records
// whose asset id no longer resolves. Those surface under the fallback labels
// instead of silently vanishing.
func AllVisible() Visibility {
	return Visibility{all: true}
}

// NewVisibility indexes the visible asset ids.
func NewVisibility(buildings []models.Building, vehicles []models.Vehicle) Visibility {
	v := Visibility{
		buildings: make(map[uuid.UUID]bool, len(buildings)),
		vehicles:  make(map[uuid.UUID]bool, len(vehicles)),
	}
	for _, b := range buildings {
		v.buildings[b.FSBDID] = true
	}
	for _, veh := range vehicles {
		v.vehicles[veh.VehicleID] = true
	}
	return v
}

// AllowsBuilding reports whether the building id is visible.
func (v Visibility) AllowsBuilding(id uuid.UUID) bool {
	return v.all || v.buildings[id]
}

// AllowsVehicle reports whether the vehicle id is visible.
func (v Visibility) AllowsVehicle(id uuid.UUID) bool {
	return v.all || v.vehicles[id]
}

// allowsColumns: a record with a nullable column pair is visible when either
// its building id or its vehicle id is in the allow-list. Per the data model
// exactly one will be set; a malformed record with neither is dropped.
func (v Visibility) allowsColumns(fsbdID, vehicleID *uuid.UUID) bool {
	if v.all {
		return fsbdID != nil || vehicleID != nil
	}
	if fsbdID != nil && v.buildings[*fsbdID] {
		return true
	}
	if vehicleID != nil && v.vehicles[*vehicleID] {
		return true
	}
	return false
}

// FilterEquipment keeps equipment attached to a visible building.
func (v Visibility) FilterEquipment(items []models.Equipment) []models.Equipment {
	if v.all {
		return items
	}
	out := make([]models.Equipment, 0, len(items))
	for _, e := range items {
		if v.buildings[e.FSBDID] {
			out = append(out, e)
		}
	}
	return out
}

// FilterElectricity keeps reports for visible buildings.
func (v Visibility) FilterElectricity(items []models.ElectricityReport) []models.ElectricityReport {
	if v.all {
		return items
	}
	out := make([]models.ElectricityReport, 0, len(items))
	for _, r := range items {
		if v.buildings[r.FSBDID] {
			out = append(out, r)
		}
	}
	return out
}

// FilterFuel keeps reports for visible vehicles.
func (v Visibility) FilterFuel(items []models.FuelReport) []models.FuelReport {
	if v.all {
		return items
	}
	out := make([]models.FuelReport, 0, len(items))
	for _, r := range items {
		if v.vehicles[r.VehicleID] {
			out = append(out, r)
		}
	}
	return out
}

// FilterFindings keeps findings whose asset is visible.
func (v Visibility) FilterFindings(items []models.SEUFinding) []models.SEUFinding {
	out := make([]models.SEUFinding, 0, len(items))
	for _, f := range items {
		if v.allowsColumns(f.FSBDID, f.VehicleID) {
			out = append(out, f)
		}
	}
	return out
}

// FilterRecommendations keeps recommendations whose asset is visible.
func (v Visibility) FilterRecommendations(items []models.Recommendation) []models.Recommendation {
	out := make([]models.Recommendation, 0, len(items))
	for _, r := range items {
		if v.allowsColumns(r.FSBDID, r.VehicleID) {
			out = append(out, r)
		}
	}
	return out
}

// FilterProjects keeps projects referencing at least one visible
// recommendation. Visibility is transitive through the RIO link since a
// project has no asset of its own.
func (v Visibility) FilterProjects(projects []models.Project, visibleRecs []models.Recommendation) []models.Project {
	if v.all {
		return projects
	}
	visible := make(map[string]bool, len(visibleRecs))
	for _, r := range visibleRecs {
		visible[r.RIOID.String()] = true
	}
	out := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		for _, rioID := range p.RelatedRIOIDs {
			if visible[rioID] {
				out = append(out, p)
				break
			}
		}
	}
	return out
}
