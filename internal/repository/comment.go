// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"newsroom/internal/models"
	"newsroom/internal/pagination"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uint) (*models.Comment, error)
	ListApprovedByPost(ctx context.Context, postID uint) ([]*models.Comment, error)
	ListAll(ctx context.Context, page int) (pagination.Page[*models.Comment], error)
	Update(ctx context.Context, comment *models.Comment) error
	Flag(ctx context.Context, id uint) error
	Upvote(ctx context.Context, id uint) (int, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Comment", id)
		}
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) ListApprovedByPost(
	ctx context.Context,
	postID uint,
) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.WithContext(ctx).
		Where("post_id = ? AND status = ?", postID, models.CommentStatusApproved).
		Order("created_at DESC, id DESC").
		Find(&comments).Error
	return comments, err
}

// ListAll returns one page of comments across all posts and statuses,
// most recent first, for the moderation dashboard.
func (r *commentRepository) ListAll(ctx context.Context, page int) (pagination.Page[*models.Comment], error) {
	empty := pagination.Page[*models.Comment]{Items: []*models.Comment{}}

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Comment{}).Count(&total).Error; err != nil {
		return empty, err
	}

	offset, limit, currentPage, totalPages := pagination.Window(total, page, pagination.CommentsPerPage)
	result := pagination.Page[*models.Comment]{
		Items:       []*models.Comment{},
		CurrentPage: currentPage,
		TotalPages:  totalPages,
	}
	if limit == 0 {
		return result, nil
	}

	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&result.Items).Error
	if err != nil {
		return empty, err
	}
	return result, nil
}

func (r *commentRepository) Update(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Save(comment).Error
}

// Flag marks a comment for admin triage. Flagging an already-flagged
// comment is a no-op with the same success outcome.
func (r *commentRepository) Flag(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("id = ?", id).
		UpdateColumn("flagged", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Comment", id)
	}
	return nil
}

// Upvote increments the counter in a single UPDATE so concurrent upvotes
// never lose an increment to an interleaved read-modify-write. RETURNING
// yields the count this increment produced (supported by postgres and
// sqlite through gorm's Returning clause).
func (r *commentRepository) Upvote(ctx context.Context, id uint) (int, error) {
	var comment models.Comment
	res := r.db.WithContext(ctx).
		Model(&comment).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "upvotes"}}}).
		Where("id = ?", id).
		UpdateColumn("upvotes", gorm.Expr("upvotes + 1"))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, models.NewNotFoundError("Comment", id)
	}
	return comment.Upvotes, nil
}

func (r *commentRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.Comment{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
