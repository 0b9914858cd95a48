package findings

import (
	"emis-backend/internal/pkg/response"
	"emis-backend/internal/reporting"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Handlers bundles SEU finding handlers.
type Handlers struct {
	Service *Service
}

// CreateFinding POST /api/v1/seu-findings/create-finding
func (h *Handlers) CreateFinding(c *fiber.Ctx) error {
	var input CreateInput
	if err := c.BodyParser(&input); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	f, err := h.Service.Create(c.Context(), input)
	if err != nil {
		switch err {
		case ErrCategoryRequired, reporting.ErrAssetRefRequired, reporting.ErrAssetRefAmbiguous:
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.SuccessCreated(c, "SEU finding created successfully", f, nil)
}

// ViewFindings GET /api/v1/seu-findings/view-findings
func (h *Handlers) ViewFindings(c *fiber.Ctx) error {
	items, err := h.Service.List(c.Context())
	if err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "SEU findings fetched successfully", items, nil)
}

// UpdateFinding PATCH /api/v1/seu-findings/update-finding/:id
func (h *Handlers) UpdateFinding(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid Finding ID format (must be a valid UUID)", fiber.StatusBadRequest, nil)
	}
	var input UpdateInput
	if err := c.BodyParser(&input); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	f, err := h.Service.Update(c.Context(), id, input)
	if err != nil {
		switch err {
		case ErrNotFound:
			return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
		case ErrCategoryRequired:
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.Success(c, "SEU finding updated successfully", f, nil)
}

// RemoveFinding DELETE /api/v1/seu-findings/remove-finding/:id
func (h *Handlers) RemoveFinding(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid Finding ID format (must be a valid UUID)", fiber.StatusBadRequest, nil)
	}
	if err := h.Service.Delete(c.Context(), id); err != nil {
		switch err {
		case ErrNotFound:
			return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.Success(c, "SEU finding removed successfully", fiber.Map{"finding_id": id}, nil)
}
