package server

import (
	"newsroom/internal/models"
	"newsroom/internal/repository"
	"newsroom/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListPosts returns the published posts, newest first, optionally filtered
// by exact category and case-insensitive title search (public)
func (s *Server) ListPosts(c *fiber.Ctx) error {
	ctx := c.UserContext()

	posts, err := s.postService.ListPosts(ctx, repository.PostFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	})
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.JSON(posts)
}

// GetPost returns a single post (public)
func (s *Server) GetPost(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(ctx, id)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.JSON(post)
}

// GetRelatedPosts returns up to three posts in the same category (public)
func (s *Server) GetRelatedPosts(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	posts, err := s.postService.RelatedPosts(ctx, id)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.JSON(posts)
}

type postPayload struct {
	Title           *string `json:"title"`
	Category        *string `json:"category"`
	Content         *string `json:"content"`
	VideoURL        *string `json:"video_url"`
	MediaURL        *string `json:"media_url"`
	MediaExternalID *string `json:"media_external_id"`
	Caption         *string `json:"caption"`
	PhotoCredit     *string `json:"photo_credit"`
	Author          *string `json:"author"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// CreatePost creates a new post (admin)
func (s *Server) CreatePost(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req postPayload
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid request body"))
	}

	created, err := s.postService.CreatePost(ctx, service.CreatePostInput{
		Title:           deref(req.Title),
		Category:        deref(req.Category),
		Content:         deref(req.Content),
		VideoURL:        deref(req.VideoURL),
		MediaURL:        deref(req.MediaURL),
		MediaExternalID: deref(req.MediaExternalID),
		Caption:         deref(req.Caption),
		PhotoCredit:     deref(req.PhotoCredit),
		Author:          deref(req.Author),
	})
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdatePost applies a partial update to a post: absent JSON fields are
// preserved (admin)
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req postPayload
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid request body"))
	}

	updated, err := s.postService.UpdatePost(ctx, service.UpdatePostInput{
		PostID:          id,
		Title:           req.Title,
		Category:        req.Category,
		Content:         req.Content,
		VideoURL:        req.VideoURL,
		MediaURL:        req.MediaURL,
		MediaExternalID: req.MediaExternalID,
		Caption:         req.Caption,
		PhotoCredit:     req.PhotoCredit,
		Author:          req.Author,
	})
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.JSON(updated)
}

// DeletePost removes a post; comments on it are not cascaded (admin)
func (s *Server) DeletePost(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	existed, err := s.postService.DeletePost(ctx, id)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.JSON(fiber.Map{"deleted": existed})
}
