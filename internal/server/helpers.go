package server

import (
	"errors"
	"strconv"

	"newsroom/internal/models"

	"github.com/gofiber/fiber/v2"
)

// parseID reads a numeric route parameter. On failure it writes a 400
// response and returns the error so the handler can bail with `return nil`.
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	raw := c.Params(param)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid id parameter"))
		return 0, err
	}
	return uint(id), nil
}

// statusForError maps the data-access error taxonomy to HTTP statuses.
func statusForError(err error) int {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case models.CodeValidation:
			return fiber.StatusBadRequest
		case models.CodeNotFound:
			return fiber.StatusNotFound
		}
	}
	return fiber.StatusInternalServerError
}
