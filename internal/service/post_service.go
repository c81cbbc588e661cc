// Package service implements the application's business logic on top of the
// repository layer.
package service

import (
	"context"
	"strings"
	"time"

	"newsroom/internal/models"
	"newsroom/internal/repository"
)

// relatedPostsLimit caps the related-content lookup on the article page.
const relatedPostsLimit = 3

type PostService struct {
	postRepo repository.PostRepository
}

type CreatePostInput struct {
	Title           string
	Category        string
	Content         string
	VideoURL        string
	MediaURL        string
	MediaExternalID string
	Caption         string
	PhotoCredit     string
	Author          string
}

// UpdatePostInput carries a partial update: nil fields are preserved,
// non-nil fields overwrite. Author is special-cased: an empty or
// whitespace value falls back to the prior byline.
type UpdatePostInput struct {
	PostID          uint
	Title           *string
	Category        *string
	Content         *string
	VideoURL        *string
	MediaURL        *string
	MediaExternalID *string
	Caption         *string
	PhotoCredit     *string
	Author          *string
}

func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if strings.TrimSpace(in.Content) == "" {
		return nil, models.NewValidationError("Content is required")
	}

	post := &models.Post{
		Title:           in.Title,
		Category:        in.Category,
		Content:         in.Content,
		VideoURL:        in.VideoURL,
		MediaURL:        in.MediaURL,
		MediaExternalID: in.MediaExternalID,
		Caption:         in.Caption,
		PhotoCredit:     in.PhotoCredit,
		Author:          in.Author,
	}
	models.ApplyPostDefaults(post, time.Now().UTC())

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

func (s *PostService) ListPosts(ctx context.Context, filter repository.PostFilter) ([]*models.Post, error) {
	return s.postRepo.List(ctx, filter)
}

// RelatedPosts returns up to three posts sharing the post's category,
// excluding the post itself. Posts without a category have no related
// content.
func (s *PostService) RelatedPosts(ctx context.Context, postID uint) ([]*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.Category == "" {
		return []*models.Post{}, nil
	}
	return s.postRepo.Related(ctx, postID, post.Category, relatedPostsLimit)
}

func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		post.Title = *in.Title
	}
	if in.Category != nil {
		post.Category = *in.Category
	}
	if in.Content != nil {
		post.Content = *in.Content
	}
	if in.VideoURL != nil {
		post.VideoURL = *in.VideoURL
	}
	if in.MediaURL != nil {
		post.MediaURL = *in.MediaURL
	}
	if in.MediaExternalID != nil {
		post.MediaExternalID = *in.MediaExternalID
	}
	if in.Caption != nil {
		post.Caption = *in.Caption
	}
	if in.PhotoCredit != nil {
		post.PhotoCredit = *in.PhotoCredit
	}
	if in.Author != nil && strings.TrimSpace(*in.Author) != "" {
		post.Author = *in.Author
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes the post and reports whether it existed. Comments
// referencing the post are intentionally left in place: the moderation
// dashboard still lists them, and the public comment listing for a
// deleted post simply has no page to appear on.
func (s *PostService) DeletePost(ctx context.Context, id uint) (bool, error) {
	return s.postRepo.Delete(ctx, id)
}
