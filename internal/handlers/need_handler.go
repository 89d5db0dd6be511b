package handlers

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/riskspace/emopop/internal/dto"
	"github.com/riskspace/emopop/internal/services"
)

type NeedHandler struct {
	service *services.NeedService
}

func NewNeedHandler(service *services.NeedService) *NeedHandler {
	return &NeedHandler{service: service}
}

// GetSummary handles GET /needs/:userId?days=N.
func (h *NeedHandler) GetSummary(c *fiber.Ctx) error {
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
		slog.Error("need summary failed", "user_id", userID, "error", err)
		return internalError(c)
	}
	return c.JSON(rows)
}

// Log handles POST /needs/:userId. Unlike the emotion path this verifies the
// user exists and answers 404 when it does not.
func (h *NeedHandler) Log(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return internalError(c)
	}

	var req dto.LogNeedsRequest
	if err := c.BodyParser(&req); err != nil {
		slog.Error("need payload unreadable", "user_id", userID, "error", err)
		return internalError(c)
	}
	if req.Needs == nil {
		slog.Error("need payload missing fields", "user_id", userID)
		return internalError(c)
	}

	if err := h.service.LogNeeds(userID, req.Needs); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: "User not found",
			})
		}
		slog.Error("need log failed", "user_id", userID, "error", err)
		return internalError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{
		Message: "Needs created successfully",
	})
}

// LoadAll handles GET /load-needs.
func (h *NeedHandler) LoadAll(c *fiber.Ctx) error {
	needs, err := h.service.LoadAll()
	if err != nil {
		slog.Error("loading needs failed", "error", err)
		return internalError(c)
	}
	return c.JSON(needs)
}
