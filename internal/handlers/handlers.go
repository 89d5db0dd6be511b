// Package handlers translates the HTTP surface into service calls. Internal
// failures are logged with detail but reported to clients as a generic
// internal error, matching the original wire contract.
package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/riskspace/emopop/internal/dto"
)

var errBadUserID = errors.New("invalid user id")

func parseUserID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("userId"), 10, 32)
	if err != nil {
		return 0, errBadUserID
	}
	return uint(id), nil
}

func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: "Internal server error",
	})
}
