package electricity

import (
	"emis-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Handlers bundles electricity report handlers.
type Handlers struct {
	Service *Service
}

// CreateReport POST /api/v1/electricity-reports/create-report
func (h *Handlers) CreateReport(c *fiber.Ctx) error {
	var input CreateInput
	if err := c.BodyParser(&input); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	r, err := h.Service.Create(c.Context(), input)
	if err != nil {
		switch err {
		case ErrBuildingRequired, ErrInvalidPeriod:
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		case ErrDuplicatePeriod:
			return response.Error(c, err.Error(), fiber.StatusConflict, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.SuccessCreated(c, "Electricity report created successfully", r, nil)
}

// ViewBuildingReports GET /api/v1/electricity-reports/view-building-reports/:fsbd_id
func (h *Handlers) ViewBuildingReports(c *fiber.Ctx) error {
	fsbdID, err := uuid.Parse(c.Params("fsbd_id"))
	if err != nil {
		return response.Error(c, "Invalid Building ID format (must be a valid UUID)", fiber.StatusBadRequest, nil)
	}
	items, err := h.Service.ListByBuilding(c.Context(), fsbdID)
	if err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Electricity reports fetched successfully", items, nil)
}

// RemoveReport DELETE /api/v1/electricity-reports/remove-report/:id
func (h *Handlers) RemoveReport(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid Report ID format (must be a valid UUID)", fiber.StatusBadRequest, nil)
	}
	if err := h.Service.Delete(c.Context(), id); err != nil {
		switch err {
		case ErrNotFound:
			return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.Success(c, "Electricity report removed successfully", fiber.Map{"report_id": id}, nil)
}
