package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/riskspace/emopop/internal/dto"
	"github.com/riskspace/emopop/internal/services"
)

type UserHandler struct {
	service *services.UserService
}

func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Create handles POST /users: find-or-create by display name.
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid request body",
		})
	}

	user, err := h.service.FindOrCreate(req.Name)
	if err != nil {
		if errors.Is(err, services.ErrMissingName) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: "name is required",
			})
		}
		slog.Error("user create failed", "error", err)
		return internalError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreateUserResponse{UserID: user.ID})
}

// CheckExistingData handles GET /check-existing-data/:userId.
func (h *UserHandler) CheckExistingData(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return internalError(c)
	}

	exists, err := h.service.HasDataToday(userID)
	if err != nil {
		slog.Error("existing data check failed", "user_id", userID, "error", err)
		return internalError(c)
	}
	return c.JSON(dto.ExistingDataResponse{Exists: exists})
}
