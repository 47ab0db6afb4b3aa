package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tanakrit-dev/uninews-backend/internal/dto"
	"github.com/tanakrit-dev/uninews-backend/internal/services"
)

type AIHandler struct {
	summaryService *services.SummaryService
}

func NewAIHandler(summaryService *services.SummaryService) *AIHandler {
	return &AIHandler{summaryService: summaryService}
}

// Summarize returns a short synopsis of the posted article content.
// Failures are explicit: the client never receives an empty summary it
// could mistake for a real one.
func (h *AIHandler) Summarize(c *fiber.Ctx) error {
	var req dto.SummarizeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	summary, err := h.summaryService.Summarize(c.Context(), req.Content)
	if err != nil {
		if errors.Is(err, services.ErrContentTooShort) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Error: true, Message: "could not summarize: AI service unavailable, please retry",
		})
	}

	return c.JSON(dto.SummarizeResponse{Summary: summary})
}
