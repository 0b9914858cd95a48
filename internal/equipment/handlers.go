package equipment

import (
	"emis-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Handlers bundles equipment handlers.
type Handlers struct {
	Service *Service
}

// CreateEquipment POST /api/v1/equipment/create-equipment
func (h *Handlers) CreateEquipment(c *fiber.Ctx) error {
	var input CreateInput
	if err := c.BodyParser(&input); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	e, err := h.Service.Create(c.Context(), input)
	if err != nil {
		switch err {
		case ErrNameRequired, ErrBuildingRequired:
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		case ErrBuildingNotFound:
			return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.SuccessCreated(c, "Equipment created successfully", e, nil)
}

// ViewBuildingEquipment GET /api/v1/equipment/view-building-equipment/:fsbd_id
func (h *Handlers) ViewBuildingEquipment(c *fiber.Ctx) error {
	fsbdID, err := uuid.Parse(c.Params("fsbd_id"))
	if err != nil {
		return response.Error(c, "Invalid Building ID format (must be a valid UUID)", fiber.StatusBadRequest, nil)
	}
	items, err := h.Service.ListByBuilding(c.Context(), fsbdID)
	if err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Equipment fetched successfully", items, nil)
}

// UpdateEquipment PATCH /api/v1/equipment/update-equipment/:id
func (h *Handlers) UpdateEquipment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid Equipment ID format (must be a valid UUID)", fiber.StatusBadRequest, nil)
	}
	var input UpdateInput
	if err := c.BodyParser(&input); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	e, err := h.Service.Update(c.Context(), id, input)
	if err != nil {
		switch err {
		case ErrNotFound:
			return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
		case ErrNameRequired:
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.Success(c, "Equipment updated successfully", e, nil)
}

// RemoveEquipment DELETE /api/v1/equipment/remove-equipment/:id
func (h *Handlers) RemoveEquipment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid Equipment ID format (must be a valid UUID)", fiber.StatusBadRequest, nil)
	}
	if err := h.Service.Delete(c.Context(), id); err != nil {
		switch err {
		case ErrNotFound:
			return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.Success(c, "Equipment removed successfully", fiber.Map{"equipment_id": id}, nil)
}
