// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Moderation statuses for comments. New comments are approved by default;
// there is no moderation gate on submission.
const (
	CommentStatusApproved = "approved"
	CommentStatusPending  = "pending"
	CommentStatusRejected = "rejected"
)

// DefaultCommentAuthor is the name applied when a comment is submitted
// without one.
const DefaultCommentAuthor = "Anonymous"

// Comment represents a reader comment on a post.
//
// PostID is intentionally not a foreign key: deleting a post leaves its
// comments in place, and a comment may reference a post that no longer
// exists.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"index" json:"post_id"`
	Author    string    `json:"author"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Status    string    `gorm:"index" json:"status"`
	Upvotes   int       `gorm:"not null;default:0" json:"upvotes"`
	Flagged   bool      `gorm:"not null;default:false" json:"flagged"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// ValidCommentStatus reports whether s is one of the moderation statuses.
func ValidCommentStatus(s string) bool {
	switch s {
	case CommentStatusApproved, CommentStatusPending, CommentStatusRejected:
		return true
	}
	return false
}

// ApplyCommentDefaults fills the per-field defaults for a new comment in
// one place.
func ApplyCommentDefaults(c *Comment) {
	if c.Author == "" {
		c.Author = DefaultCommentAuthor
	}
	if c.Status == "" {
		c.Status = CommentStatusApproved
	}
}
