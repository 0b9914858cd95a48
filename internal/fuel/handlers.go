package fuel

import (
	"emis-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Handlers bundles fuel report handlers.
type Handlers struct {
	Service *Service
}

// CreateReport POST /api/v1/fuel-reports/create-report
func (h *Handlers) CreateReport(c *fiber.Ctx) error {
	var input CreateInput
	if err := c.BodyParser(&input); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	r, err := h.Service.Create(c.Context(), input)
	if err != nil {
		switch err {
		case ErrVehicleRequired, ErrInvalidPeriod:
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		case ErrDuplicatePeriod:
			return response.Error(c, err.Error(), fiber.StatusConflict, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.SuccessCreated(c, "Fuel report created successfully", r, nil)
}

// ViewVehicleReports GET /api/v1/fuel-reports/view-vehicle-reports/:vehicle_id
func (h *Handlers) ViewVehicleReports(c *fiber.Ctx) error {
	vehicleID, err := uuid.Parse(c.Params("vehicle_id"))
	if err != nil {
		return response.Error(c, "Invalid Vehicle ID format (must be a valid UUID)", fiber.StatusBadRequest, nil)
	}
	items, err := h.Service.ListByVehicle(c.Context(), vehicleID)
	if err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Fuel reports fetched successfully", items, nil)
}

// RemoveReport DELETE /api/v1/fuel-reports/remove-report/:id
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
	return response.Success(c, "Fuel report removed successfully", fiber.Map{"report_id": id}, nil)
}
