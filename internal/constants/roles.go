package constants

import "emis-backend/internal/models"

// Roles. Admin has full access everywhere; Pending accounts are locked out
// until approved; Staff access is governed by the per-module permission map.
const (
	RoleAdmin   = "Admin"
	RoleStaff   = "Staff"
	RolePending = "Pending"
)

// DefaultPermissions returns the permission map seeded for a role. Staff
// defaults to read-everything, write on the day-to-day encoding modules only;
// admins can widen per user afterwards.
func DefaultPermissions(role string) models.PermissionMap {
	perms := make(models.PermissionMap, len(AllModules))
	switch role {
	case RoleAdmin:
		for _, m := range AllModules {
			perms[m] = models.ModulePermission{Read: true, Write: true}
		}
	case RoleStaff:
		for _, m := range AllModules {
			perms[m] = models.ModulePermission{Read: true}
		}
		for _, m := range []string{ModuleEquipment, ModuleElectricity, ModuleFuel, ModuleFindings} {
			perms[m] = models.ModulePermission{Read: true, Write: true}
		}
	default:
		for _, m := range AllModules {
			perms[m] = models.ModulePermission{}
		}
	}
	return perms
}
