package server

import (
	"newsroom/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ListAllComments returns one page of comments across all posts and
// statuses for the moderation dashboard. A malformed or missing page
// parameter falls back to page 1 (admin)
func (s *Server) ListAllComments(c *fiber.Ctx) error {
	ctx := c.UserContext()

	// QueryInt returns the default for non-numeric input; negative and
	// zero values are clamped by the pagination window.
	page := c.QueryInt("page", 1)

	result, err := s.commentService.ListAllComments(ctx, page)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.JSON(result)
}

// SetCommentStatus assigns a moderation status directly (admin)
func (s *Server) SetCommentStatus(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Status string `json:"status"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid request body"))
	}

	updated, err := s.commentService.SetCommentStatus(ctx, id, req.Status)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.JSON(updated)
}

// DeleteComment removes a comment unconditionally (admin)
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	existed, err := s.commentService.DeleteComment(ctx, id)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.JSON(fiber.Map{"deleted": existed})
}
