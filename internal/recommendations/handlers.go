package recommendations

import (
	"emis-backend/internal/pkg/response"
	"emis-backend/internal/reporting"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Handlers bundles recommendation handlers.
type Handlers struct {
	Service *Service
}

// CreateRecommendation POST /api/v1/recommendations/create-recommendation
func (h *Handlers) CreateRecommendation(c *fiber.Ctx) error {
	var input CreateInput
	if err := c.BodyParser(&input); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	r, err := h.Service.Create(c.Context(), input)
	if err != nil {
		switch err {
		case ErrTitleRequired, ErrInvalidPriority, ErrInvalidStatus,
			reporting.ErrAssetRefRequired, reporting.ErrAssetRefAmbiguous:
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.SuccessCreated(c, "Recommendation created successfully", r, nil)
}

// ViewRecommendations GET /api/v1/recommendations/view-recommendations
func (h *Handlers) ViewRecommendations(c *fiber.Ctx) error {
	items, err := h.Service.List(c.Context())
	if err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Recommendations fetched successfully", items, nil)
}

// UpdateRecommendation PATCH /api/v1/recommendations/update-recommendation/:id
func (h *Handlers) UpdateRecommendation(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid Recommendation ID format (must be a valid UUID)", fiber.StatusBadRequest, nil)
	}
	var input UpdateInput
	if err := c.BodyParser(&input); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	r, err := h.Service.Update(c.Context(), id, input)
	if err != nil {
		switch err {
		case ErrNotFound:
			return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
		case ErrTitleRequired, ErrInvalidPriority, ErrInvalidStatus:
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.Success(c, "Recommendation updated successfully", r, nil)
}

// RemoveRecommendation DELETE /api/v1/recommendations/remove-recommendation/:id
func (h *Handlers) RemoveRecommendation(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid Recommendation ID format (must be a valid UUID)", fiber.StatusBadRequest, nil)
	}
	if err := h.Service.Delete(c.Context(), id); err != nil {
		switch err {
		case ErrNotFound:
			return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.Success(c, "Recommendation removed successfully", fiber.Map{"rio_id": id}, nil)
}
