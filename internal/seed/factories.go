// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"newsroom/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var categories = []string{"news", "sports", "culture", "opinion", "tech", ""}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	rand *rand.Rand
	opts Options
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
		opts: opts,
	}
}

// BuildPost constructs a post without persisting it. Useful for batching.
func (f *Factory) BuildPost(overrides ...func(*models.Post)) *models.Post {
	post := &models.Post{
		Title:    gofakeit.Sentence(6),
		Category: categories[f.rand.Intn(len(categories))],
		Content:  gofakeit.Paragraph(2, 4, 8, "\n"),
		Author:   gofakeit.Name(),
	}

	if f.rand.Intn(3) == 0 {
		post.MediaURL = fmt.Sprintf("https://picsum.photos/seed/%s/1200/800", uuid.NewString())
		post.Caption = gofakeit.Sentence(8)
		post.PhotoCredit = gofakeit.Name()
	}

	// realistic publish-date spread
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	daysBack := f.rand.Intn(maxDays)
	hoursBack := f.rand.Intn(24)
	post.PublishedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)

	for _, override := range overrides {
		override(post)
	}
	models.ApplyPostDefaults(post, time.Now().UTC())
	return post
}

// CreatePost persists a generated post.
func (f *Factory) CreatePost(overrides ...func(*models.Post)) (*models.Post, error) {
	post := f.BuildPost(overrides...)
	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// BuildComment constructs a comment for the given post without persisting it.
func (f *Factory) BuildComment(postID uint, overrides ...func(*models.Comment)) *models.Comment {
	statuses := []string{
		models.CommentStatusApproved,
		models.CommentStatusApproved,
		models.CommentStatusApproved,
		models.CommentStatusPending,
		models.CommentStatusRejected,
	}
	comment := &models.Comment{
		PostID:  postID,
		Author:  gofakeit.Name(),
		Text:    gofakeit.Sentence(12),
		Status:  statuses[f.rand.Intn(len(statuses))],
		Upvotes: f.rand.Intn(40),
		Flagged: f.rand.Intn(10) == 0,
	}
	for _, override := range overrides {
		override(comment)
	}
	models.ApplyCommentDefaults(comment)
	return comment
}

// CreateComment persists a generated comment.
func (f *Factory) CreateComment(postID uint, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := f.BuildComment(postID, overrides...)
	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}
