package vehicles

import (
	"emis-backend/internal/middleware"
	"emis-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Handlers bundles vehicle handlers.
type Handlers struct {
	Service *Service
}

// CreateVehicle POST /api/v1/vehicles/create-vehicle
func (h *Handlers) CreateVehicle(c *fiber.Ctx) error {
	var input CreateInput
	if err := c.BodyParser(&input); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	v, err := h.Service.Create(c.Context(), input)
	if err != nil {
		switch err {
		case ErrPlateRequired:
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.SuccessCreated(c, "Vehicle created successfully", v, nil)
}

// ViewVehicles GET /api/v1/vehicles/view-vehicles?lgu_id=...
func (h *Handlers) ViewVehicles(c *fiber.Ctx) error {
	sc := middleware.ResolveScope(c)
	items, err := h.Service.List(c.Context(), sc.TenantID)
	if err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Vehicles fetched successfully", items, nil)
}

// ViewVehicle GET /api/v1/vehicles/view-vehicle/:id
func (h *Handlers) ViewVehicle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid Vehicle ID format (must be a valid UUID)", fiber.StatusBadRequest, nil)
	}
	v, err := h.Service.Get(c.Context(), id)
	if err != nil {
		switch err {
		case ErrNotFound:
			return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.Success(c, "Vehicle fetched successfully", v, nil)
}

// UpdateVehicle PATCH /api/v1/vehicles/update-vehicle/:id
func (h *Handlers) UpdateVehicle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid Vehicle ID format (must be a valid UUID)", fiber.StatusBadRequest, nil)
	}
	var input UpdateInput
	if err := c.BodyParser(&input); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	v, err := h.Service.Update(c.Context(), id, input)
	if err != nil {
		switch err {
		case ErrNotFound:
			return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
		case ErrPlateRequired:
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.Success(c, "Vehicle updated successfully", v, nil)
}

// RemoveVehicle DELETE /api/v1/vehicles/remove-vehicle/:id
func (h *Handlers) RemoveVehicle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid Vehicle ID format (must be a valid UUID)", fiber.StatusBadRequest, nil)
	}
	if err := h.Service.Delete(c.Context(), id); err != nil {
		switch err {
		case ErrNotFound:
			return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.Success(c, "Vehicle removed successfully", fiber.Map{"vehicle_id": id}, nil)
}
