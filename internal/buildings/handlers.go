package buildings

import (
	"emis-backend/internal/middleware"
	"emis-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Handlers bundles building handlers.
type Handlers struct {
	Service *Service
}

// CreateBuilding POST /api/v1/buildings/create-building
func (h *Handlers) CreateBuilding(c *fiber.Ctx) error {
	var input CreateInput
	if err := c.BodyParser(&input); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	b, err := h.Service.Create(c.Context(), input)
	if err != nil {
		switch err {
		case ErrNameRequired:
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.SuccessCreated(c, "Building created successfully", b, nil)
}

// ViewBuildings GET /api/v1/buildings/view-buildings?lgu_id=...
func (h *Handlers) ViewBuildings(c *fiber.Ctx) error {
	sc := middleware.ResolveScope(c)
	items, err := h.Service.List(c.Context(), sc.TenantID)
	if err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Buildings fetched successfully", items, nil)
}

// ViewBuilding GET /api/v1/buildings/view-building/:id
func (h *Handlers) ViewBuilding(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid Building ID format (must be a valid UUID)", fiber.StatusBadRequest, nil)
	}
	b, err := h.Service.Get(c.Context(), id)
	if err != nil {
		switch err {
		case ErrNotFound:
			return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.Success(c, "Building fetched successfully", b, nil)
}

// UpdateBuilding PATCH /api/v1/buildings/update-building/:id
func (h *Handlers) UpdateBuilding(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid Building ID format (must be a valid UUID)", fiber.StatusBadRequest, nil)
	}
	var input UpdateInput
	if err := c.BodyParser(&input); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	b, err := h.Service.Update(c.Context(), id, input)
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
	return response.Success(c, "Building updated successfully", b, nil)
}

// RemoveBuilding DELETE /api/v1/buildings/remove-building/:id
func (h *Handlers) RemoveBuilding(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid Building ID format (must be a valid UUID)", fiber.StatusBadRequest, nil)
	}
	if err := h.Service.Delete(c.Context(), id); err != nil {
		switch err {
		case ErrNotFound:
			return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.Success(c, "Building removed successfully", fiber.Map{"fsbd_id": id}, nil)
}
