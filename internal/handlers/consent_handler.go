package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tanakrit-dev/uninews-backend/internal/dto"
	"github.com/tanakrit-dev/uninews-backend/internal/models"
	"gorm.io/gorm"
)

// ConsentHandler records PDPA cookie-consent acceptances. IP and
// user agent come from the request itself, not the body.
type ConsentHandler struct {
	db *gorm.DB
}

func NewConsentHandler(db *gorm.DB) *ConsentHandler {
	return &ConsentHandler{db: db}
}

func (h *ConsentHandler) LogConsent(c *fiber.Ctx) error {
	var req dto.ConsentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	entry := models.ConsentLog{
		ID:        uuid.New(),
		IPAddress: c.IP(),
		UserAgent: c.Get("User-Agent"),
	}
	if req.UserID != "" {
		if userID, err := uuid.Parse(req.UserID); err == nil {
			entry.UserID = &userID
		}
	}

	if err := h.db.Create(&entry).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to log consent",
		})
	}

	return c.JSON(fiber.Map{"message": "Consent logged"})
}
