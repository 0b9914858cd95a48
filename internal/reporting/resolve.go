package reporting

import (
	"emis-backend/internal/models"

	"github.com/google/uuid"
)

// Placeholder labels for dangling references. The store enforces no
// referential integrity, so an id without a matching record is a defined
// fallback, never an error.
const (
	UnknownBuilding = "Unknown Building"
	UnknownVehicle  = "Unknown Vehicle"
	LabelNA         = "N/A"
)

// NameIndex maps asset ids to display names (building name, vehicle plate).
type NameIndex struct {
	buildings map[uuid.UUID]string
	vehicles  map[uuid.UUID]string
}

// BuildNameIndex builds the lookup maps. Building the index twice from the
// same inputs yields identical maps.
func BuildNameIndex(buildings []models.Building, vehicles []models.Vehicle) NameIndex {
	ix := NameIndex{
		buildings: make(map[uuid.UUID]string, len(buildings)),
		vehicles:  make(map[uuid.UUID]string, len(vehicles)),
	}
	for _, b := range buildings {
		ix.buildings[b.FSBDID] = b.Name
	}
	for _, v := range vehicles {
		ix.vehicles[v.VehicleID] = v.PlateNumber
	}
	return ix
}

// BuildingName resolves a building id, falling back to "Unknown Building".
func (ix NameIndex) BuildingName(id uuid.UUID) string {
	if name, ok := ix.buildings[id]; ok {
		return name
	}
	return UnknownBuilding
}

// VehicleName resolves a vehicle id, falling back to "Unknown Vehicle".
func (ix NameIndex) VehicleName(id uuid.UUID) string {
	if name, ok := ix.vehicles[id]; ok {
		return name
	}
	return UnknownVehicle
}

// RefLabel resolves an asset reference to a display label; "N/A" for a zero
// reference.
func (ix NameIndex) RefLabel(ref AssetRef) string {
	switch ref.Kind {
	case AssetBuilding:
		return ix.BuildingName(ref.ID)
	case AssetVehicle:
		return ix.VehicleName(ref.ID)
	default:
		return LabelNA
	}
}

// ColumnsLabel resolves the raw nullable column pair carried by findings and
// recommendations. Records violating the one-asset rule degrade to "N/A".
func (ix NameIndex) ColumnsLabel(fsbdID, vehicleID *uuid.UUID) string {
	ref, err := NewAssetRef(fsbdID, vehicleID)
	if err != nil {
		return LabelNA
	}
	return ix.RefLabel(ref)
}
