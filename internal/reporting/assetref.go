// Package reporting holds the pure data-transformation core: tenant
// filtering, cross-reference resolution, consumption statistics and
// aggregation. Nothing here touches the store; every function works over
// already-fetched slices and is safe to call from any goroutine.
package reporting

import (
	"errors"

	"github.com/google/uuid"
)

// AssetKind discriminates the two asset families a finding or recommendation
// can point at.
type AssetKind int

const (
	AssetBuilding AssetKind = iota + 1
	AssetVehicle
)

var (
	ErrAssetRefRequired  = errors.New("exactly one of building or vehicle must be set")
	ErrAssetRefAmbiguous = errors.New("building and vehicle cannot both be set")
)

// AssetRef is a reference to exactly one asset. The store keeps two nullable
// columns; this type is the only place the exactly-one-set rule is checked,
// so everything downstream can rely on it.
type AssetRef struct {
	Kind AssetKind
	ID   uuid.UUID
}

// NewAssetRef builds an AssetRef from the two nullable storage columns,
// rejecting zero or both.
func NewAssetRef(fsbdID, vehicleID *uuid.UUID) (AssetRef, error) {
	hasBuilding := fsbdID != nil && *fsbdID != uuid.Nil
	hasVehicle := vehicleID != nil && *vehicleID != uuid.Nil
	switch {
	case hasBuilding && hasVehicle:
		return AssetRef{}, ErrAssetRefAmbiguous
	case hasBuilding:
		return AssetRef{Kind: AssetBuilding, ID: *fsbdID}, nil
	case hasVehicle:
		return AssetRef{Kind: AssetVehicle, ID: *vehicleID}, nil
	default:
		return AssetRef{}, ErrAssetRefRequired
	}
}

// IsZero reports an unset reference.
func (r AssetRef) IsZero() bool {
	return r.Kind == 0
}
