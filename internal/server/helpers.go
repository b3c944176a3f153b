package server

import (
	"errors"

	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper.  Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid ID"))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// respondServiceError translates a service-layer error to the wire contract:
// field-level validation failures ride a 200 body, denials and missing
// resources are bare statuses, and anything unexpected is a 500.
func (s *Server) respondServiceError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case models.CodeValidation:
			if len(appErr.Fields) > 0 {
				return models.RespondWithFieldErrors(c, fiber.StatusOK, appErr.Fields)
			}
			return models.RespondWithError(c, fiber.StatusBadRequest, appErr)
		case models.CodeForbidden:
			return c.SendStatus(fiber.StatusForbidden)
		case models.CodeNotFound:
			return c.SendStatus(fiber.StatusNotFound)
		case models.CodeUnauthorized:
			return models.RespondWithError(c, fiber.StatusUnauthorized, appErr)
		}
	}
	return models.RespondWithError(c, fiber.StatusInternalServerError,
		models.NewInternalError(err))
}
