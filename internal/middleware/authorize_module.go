package middleware

import (
	"emis-backend/internal/constants"
	"emis-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthorizeModule returns a handler that checks the session user's permission
// map for the given module. Admins pass every gate; Pending accounts pass
// none. write=true additionally requires write access.
func AuthorizeModule(moduleID string, write bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return response.Unauthorized(c, "Unauthorized")
		}
		switch user.Role {
		case constants.RoleAdmin:
			return c.Next()
		case constants.RolePending:
			return response.Error(c, "Account is pending approval", fiber.StatusForbidden, nil)
		}
		perm, ok := user.Permissions[moduleID]
		if !ok || !perm.Read {
			return response.Error(c, "User is Forbidden from performing this action", fiber.StatusForbidden, nil)
		}
		if write && !perm.Write {
			return response.Error(c, "User is Forbidden from performing this action", fiber.StatusForbidden, nil)
		}
		return c.Next()
	}
}
