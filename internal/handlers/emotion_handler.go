package handlers

import (
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/riskspace/emopop/internal/dto"
	"github.com/riskspace/emopop/internal/services"
)

type EmotionHandler struct {
	service *services.EmotionService
}

func NewEmotionHandler(service *services.EmotionService) *EmotionHandler {
	return &EmotionHandler{service: service}
}

// GetSummary handles GET /emotions/:userId?days=N.
func (h *EmotionHandler) GetSummary(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return internalError(c)
	}

	days, _ := strconv.Atoi(c.Query("days", "7"))
	if days <= 0 {
		days = 7
	}

	rows, err := h.service.Summary(userID, days)
	if err != nil {
		slog.Error("emotion summary failed", "user_id", userID, "error", err)
		return internalError(c)
	}
	return c.JSON(rows)
}

// Log handles POST /emotions/:userId.
func (h *EmotionHandler) Log(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return internalError(c)
	}

	var req dto.LogEmotionsRequest
	if err := c.BodyParser(&req); err != nil {
		slog.Error("emotion payload unreadable", "user_id", userID, "error", err)
		return internalError(c)
	}
	if req.Emotions == nil || req.Type == "" {
		slog.Error("emotion payload missing fields", "user_id", userID)
		return internalError(c)
	}

	if err := h.service.LogEmotions(userID, req.Emotions, req.Type); err != nil {
		slog.Error("emotion log failed", "user_id", userID, "error", err)
		return internalError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{
		Message: "Emotions created successfully",
	})
}

// LoadAll handles GET /load-emotions.
func (h *EmotionHandler) LoadAll(c *fiber.Ctx) error {
	emotions, err := h.service.LoadAll()
	if err != nil {
		slog.Error("loading emotions failed", "error", err)
		return internalError(c)
	}
	return c.JSON(emotions)
}
