// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// DefaultPostAuthor is the byline applied when a post is created without one.
const DefaultPostAuthor = "Admin"

// Post represents a published article in the newsroom application.
type Post struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"not null" json:"title"`
	Category string `gorm:"index" json:"category"`
	Content  string `gorm:"type:text;not null" json:"content"`
	// MediaURL is either a plain upload URL or the URL half of a managed
	// asset pair. MediaExternalID identifies the asset at its origin so it
	// can be deleted there later; empty for plain URLs.
	MediaURL        string    `json:"media_url"`
	MediaExternalID string    `json:"media_external_id,omitempty"`
	VideoURL        string    `json:"video_url"`
	Caption         string    `json:"caption"`
	PhotoCredit     string    `json:"photo_credit"`
	Author          string    `json:"author"`
	PublishedAt     time.Time `gorm:"index" json:"published_at"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ApplyPostDefaults fills the per-field defaults for a new post in one
// place. now is injected so tests can pin the publish date.
func ApplyPostDefaults(p *Post, now time.Time) {
	if p.Author == "" {
		p.Author = DefaultPostAuthor
	}
	if p.PublishedAt.IsZero() {
		p.PublishedAt = now
	}
}
