package reports

import (
	"emis-backend/internal/middleware"
	"emis-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Composer *Composer
}

// CompileReport assembles the compliance report for the requester's scope.
func (h *Handlers) CompileReport(c *fiber.Ctx) error {
	sc := middleware.ResolveScope(c)

	report, err := h.Composer.Compose(c.Context(), sc)
	if err != nil {
		return response.Error(c, "Failed to compile report", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Report compiled successfully", report, nil)
}
