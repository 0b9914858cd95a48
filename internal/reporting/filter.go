package reporting

import "github.com/google/uuid"

// TenantScoped is any asset carrying an optional owning LGU.
type TenantScoped interface {
	TenantID() *uuid.UUID
}

// FilterByTenant keeps the items owned by the given tenant plus every
// unassigned (nil lgu) item. Shared buildings and fleet vehicles are visible
// under every tenant on purpose. An empty tenantID is the system-wide view
// and returns the input unchanged.
func FilterByTenant[T TenantScoped](items []T, tenantID string) []T {
	if tenantID == "" {
		return items
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		id := item.TenantID()
		if id == nil || id.String() == tenantID {
			out = append(out, item)
		}
	}
	return out
}
