// Package scope carries the per-request tenant/user context that every query
// receives explicitly. There is no process-global "current tenant": the scope
// is built once per request and passed down.
package scope

// Scope identifies who is asking and which tenant they are looking at.
// An empty TenantID means the system-wide (admin) view.
type Scope struct {
	TenantID string
	UserID   string
	Role     string
}

// SystemWide returns true when no tenant is selected.
func (s Scope) SystemWide() bool {
	return s.TenantID == ""
}
