package middleware

import (
	"emis-backend/internal/scope"

	"github.com/gofiber/fiber/v2"
)

// ResolveScope builds the request scope from the lgu_id query parameter and
// the session user. A user with an assigned LGU is pinned to it: whatever
// tenant they ask for, they get their own. An empty tenant id is the
// system-wide view.
func ResolveScope(c *fiber.Ctx) scope.Scope {
	s := scope.Scope{TenantID: c.Query("lgu_id")}
	if u := CurrentUser(c); u != nil {
		s.UserID = u.UserID
		s.Role = u.Role
		if u.AssignedLGUID != nil && *u.AssignedLGUID != "" {
			s.TenantID = *u.AssignedLGUID
		}
	}
	return s
}
