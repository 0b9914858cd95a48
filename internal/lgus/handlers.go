package lgus

import (
	"emis-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Handlers bundles LGU handlers.
type Handlers struct {
	Service *Service
}

// CreateLGU POST /api/v1/lgus/create-lgu
func (h *Handlers) CreateLGU(c *fiber.Ctx) error {
	var input CreateInput
	if err := c.BodyParser(&input); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	lgu, err := h.Service.Create(c.Context(), input)
	if err != nil {
		switch err {
		case ErrNameRequired:
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.SuccessCreated(c, "LGU created successfully", lgu, nil)
}

// ViewLGUs GET /api/v1/lgus/view-lgus
func (h *Handlers) ViewLGUs(c *fiber.Ctx) error {
	lgus, err := h.Service.List(c.Context())
	if err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "LGUs fetched successfully", lgus, nil)
}

// ViewLGU GET /api/v1/lgus/view-lgu/:id
func (h *Handlers) ViewLGU(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid LGU ID format (must be a valid UUID)", fiber.StatusBadRequest, nil)
	}
	lgu, err := h.Service.Get(c.Context(), id)
	if err != nil {
		switch err {
		case ErrNotFound:
			return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.Success(c, "LGU fetched successfully", lgu, nil)
}

// UpdateLGU PATCH /api/v1/lgus/update-lgu/:id
func (h *Handlers) UpdateLGU(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid LGU ID format (must be a valid UUID)", fiber.StatusBadRequest, nil)
	}
	var input UpdateInput
	if err := c.BodyParser(&input); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	lgu, err := h.Service.Update(c.Context(), id, input)
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
	return response.Success(c, "LGU updated successfully", lgu, nil)
}

// RemoveLGU DELETE /api/v1/lgus/remove-lgu/:id
func (h *Handlers) RemoveLGU(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid LGU ID format (must be a valid UUID)", fiber.StatusBadRequest, nil)
	}
	if err := h.Service.Delete(c.Context(), id); err != nil {
		switch err {
		case ErrNotFound:
			return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.Success(c, "LGU removed successfully", fiber.Map{"lgu_id": id}, nil)
}
