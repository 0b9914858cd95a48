package dashboard

import (
	"emis-backend/internal/middleware"
	"emis-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *Service
}

// ViewDashboard refreshes and returns the dashboard for the requester's scope.
func (h *Handlers) ViewDashboard(c *fiber.Ctx) error {
	sc := middleware.ResolveScope(c)

	snap, err := h.Service.Refresh(c.Context(), sc)
	if err != nil {
		return response.Error(c, "Failed to load dashboard", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Dashboard loaded successfully", snap, nil)
}
