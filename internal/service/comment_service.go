package service

import (
	"context"
	"strings"

	"newsroom/internal/middleware"
	"newsroom/internal/models"
	"newsroom/internal/pagination"
	"newsroom/internal/repository"
)

type CommentService struct {
	commentRepo repository.CommentRepository
}

type CreateCommentInput struct {
	PostID uint
	Author string
	Text   string
}

func NewCommentService(commentRepo repository.CommentRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo}
}

// CreateComment stores a new comment. Submissions always enter as approved;
// moderation happens after the fact via SetCommentStatus. The referenced
// post is not verified to exist: comments are accepted for any post id, and
// a post deletion does not cascade, so orphaned references are an accepted
// state.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if strings.TrimSpace(in.Text) == "" {
		return nil, models.NewValidationError("Text is required")
	}

	comment := &models.Comment{
		PostID: in.PostID,
		Author: in.Author,
		Text:   in.Text,
	}
	models.ApplyCommentDefaults(comment)

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListComments returns a post's publicly visible comments: approved only,
// most recent first.
func (s *CommentService) ListComments(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.commentRepo.ListApprovedByPost(ctx, postID)
}

// ListAllComments returns one moderation page across all comments,
// regardless of status.
func (s *CommentService) ListAllComments(ctx context.Context, page int) (pagination.Page[*models.Comment], error) {
	return s.commentRepo.ListAll(ctx, page)
}

func (s *CommentService) GetComment(ctx context.Context, id uint) (*models.Comment, error) {
	return s.commentRepo.GetByID(ctx, id)
}

func (s *CommentService) FlagComment(ctx context.Context, id uint) error {
	return s.commentRepo.Flag(ctx, id)
}

func (s *CommentService) UpvoteComment(ctx context.Context, id uint) (int, error) {
	count, err := s.commentRepo.Upvote(ctx, id)
	if err != nil {
		return 0, err
	}
	middleware.UpvotesApplied.Inc()
	return count, nil
}

// SetCommentStatus is the administrative status update; there is no
// transition function, any valid status may be assigned directly.
func (s *CommentService) SetCommentStatus(ctx context.Context, id uint, status string) (*models.Comment, error) {
	if !models.ValidCommentStatus(status) {
		return nil, models.NewValidationError("Invalid comment status")
	}
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	comment.Status = status
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) DeleteComment(ctx context.Context, id uint) (bool, error) {
	return s.commentRepo.Delete(ctx, id)
}
